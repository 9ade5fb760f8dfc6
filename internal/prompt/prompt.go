// internal/prompt/prompt.go
package prompt

import (
	"context"

	"github.com/pkg/errors"

	"github.com/tamzrod/mongo-prompt/internal/status"
)

// Render builds the prompt string from already-fetched values.
// Pure: no IO.
func Render(server ServerInfo, db string, topo TopologyInfo) string {
	return NewLine(server, db, topo).String()
}

// NewLine classifies topology and returns the prompt parts.
func NewLine(server ServerInfo, db string, topo TopologyInfo) Line {
	l := Line{
		Server:   server,
		Database: db,
		Role:     status.Classify(topo),
	}
	if topo.SetName != nil {
		l.SetName = *topo.SetName
	}
	return l
}

// Build queries the handle in order (version, serverStatus, isMaster)
// and returns the prompt parts. The first failing query aborts the render.
func Build(ctx context.Context, h Handle) (Line, error) {
	version, err := h.Version(ctx)
	if err != nil {
		return Line{}, errors.Wrap(err, "prompt: version")
	}

	st, err := h.ServerStatus(ctx)
	if err != nil {
		return Line{}, errors.Wrap(err, "prompt: serverStatus")
	}

	im, err := h.IsMaster(ctx)
	if err != nil {
		return Line{}, errors.Wrap(err, "prompt: isMaster")
	}

	return NewLine(
		ServerInfo{Version: version, Host: st.Host},
		h.String(),
		TopologyInfo{
			SetName:   im.SetName,
			Me:        im.Me,
			Primary:   im.Primary,
			Secondary: im.Secondary,
		},
	), nil
}

// Format is Build rendered to a string.
func Format(ctx context.Context, h Handle) (string, error) {
	l, err := Build(ctx, h)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}
