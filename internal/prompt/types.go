// internal/prompt/types.go
package prompt

import (
	"context"

	"github.com/tamzrod/mongo-prompt/internal/status"
)

// Handle is the database-handle capability the formatter reads from.
// All three calls are read-only introspection.
// String yields the current database name.
type Handle interface {
	Version(ctx context.Context) (string, error)
	ServerStatus(ctx context.Context) (ServerStatus, error)
	IsMaster(ctx context.Context) (IsMasterResult, error)
	String() string
}

// ServerStatus is the subset of serverStatus the prompt uses.
type ServerStatus struct {
	Host string
}

// IsMasterResult is the subset of isMaster the prompt uses.
// SetName is nil when the server is not a replica-set member.
type IsMasterResult struct {
	SetName   *string
	Me        string
	Primary   string
	Secondary bool
}

// ServerInfo is what the prompt prints before the database name.
type ServerInfo struct {
	Version string
	Host    string
}

// TopologyInfo is the replica-set view of one render.
type TopologyInfo = status.Topology

// Line is one rendered prompt, kept in parts so delivery can decorate
// the role label without re-deriving it.
type Line struct {
	Server   ServerInfo
	Database string
	Role     status.Role
	SetName  string
}

// Prefix is "mongo-v<version>@<host> (db:<name>)".
func (l Line) Prefix() string {
	return "mongo-v" + l.Server.Version + "@" + l.Server.Host + " (db:" + l.Database + ")"
}

// Suffix is the role suffix, always ending in "> ".
func (l Line) Suffix() string {
	return status.Suffix(l.Role, l.SetName)
}

func (l Line) String() string {
	return l.Prefix() + l.Suffix()
}
