// internal/status/snapshot.go
package status

// Topology is what the member reported about its replica-set membership.
// It contains no logic and is read fresh on every render.
type Topology struct {
	// SetName is nil for a standalone server.
	SetName   *string
	Me        string
	Primary   string
	Secondary bool
}

// Classify applies the role branch.
// Order matters: me == primary wins over the secondary flag.
func Classify(t Topology) Role {
	if t.SetName == nil {
		return RoleStandalone
	}
	if t.Me == t.Primary {
		return RolePrimary
	}
	if t.Secondary {
		return RoleSecondary
	}
	return RoleArbiter
}
