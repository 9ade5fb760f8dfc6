// internal/mongo/results.go
package mongo

import "github.com/tamzrod/mongo-prompt/internal/prompt"

// buildInfoResult is the result of executing the buildInfo command.
// Version is what db.version() reports.
type buildInfoResult struct {
	Version    string `bson:"version"`
	GitVersion string `bson:"gitVersion,omitempty"`
}

// serverStatusResult is the subset of serverStatus the prompt reads.
type serverStatusResult struct {
	Host    string `bson:"host"`
	Version string `bson:"version,omitempty"`
	Process string `bson:"process,omitempty"`
}

// isMasterResult is the result of executing the isMaster command.
// SetName stays nil on a standalone server.
type isMasterResult struct {
	IsMaster    bool     `bson:"ismaster"`
	Secondary   bool     `bson:"secondary,omitempty"`
	ArbiterOnly bool     `bson:"arbiterOnly,omitempty"`
	Hidden      bool     `bson:"hidden,omitempty"`
	SetName     *string  `bson:"setName,omitempty"`
	Me          string   `bson:"me,omitempty"`
	Primary     string   `bson:"primary,omitempty"`
	Hosts       []string `bson:"hosts,omitempty"`
}

func (r isMasterResult) toPrompt() prompt.IsMasterResult {
	return prompt.IsMasterResult{
		SetName:   r.SetName,
		Me:        r.Me,
		Primary:   r.Primary,
		Secondary: r.Secondary,
	}
}
