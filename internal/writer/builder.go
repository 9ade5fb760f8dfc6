// internal/writer/builder.go
package writer

import (
	"errors"
	"io"

	cfg "github.com/tamzrod/mongo-prompt/internal/config"
)

// BuildPlan converts the style and watch config into a delivery Plan.
// Assumes config has already passed validation and normalization.
func BuildPlan(c cfg.Config, out io.Writer) (Plan, error) {
	if out == nil {
		return Plan{}, errors.New("writer: output required")
	}

	plan := Plan{
		Out:      out,
		Fallback: c.Style.Fallback,
		// watch mode is a line stream; a single render ends at "> "
		Newline: c.Watch.IntervalMs > 0,
	}

	if c.Style.Color {
		plan.Styler = NewRoleStyler(out, c.Style.Readline)
	}

	return plan, nil
}
