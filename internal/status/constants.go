// internal/status/constants.go
package status

// Replica-set role layout constants.
// These values define the prompt format and MUST NOT be configurable.

// Role is the replica-set role of the connected member.
type Role uint8

// ---- ROLES ----

// RoleStandalone means the server is not a replica-set member.
const RoleStandalone Role = 0

// RolePrimary means the member reports itself as the set primary.
const RolePrimary Role = 1

// RoleSecondary means the member is a data-bearing secondary.
const RoleSecondary Role = 2

// RoleArbiter covers every other member state (arbiter, hidden, recovering...).
const RoleArbiter Role = 3

// ---- LABELS ----

const (
	LabelPrimary   = "PRIMARY"
	LabelSecondary = "SECONDARY"
	LabelArbiter   = "ARBITER"
)

// ---- SUFFIX GEOMETRY ----

// Terminator ends every prompt.
const Terminator = "> "

const (
	setOpen  = " ["
	setSep   = ":"
	setClose = "]"
)

func (r Role) String() string {
	switch r {
	case RoleStandalone:
		return "standalone"
	case RolePrimary:
		return LabelPrimary
	case RoleSecondary:
		return LabelSecondary
	case RoleArbiter:
		return LabelArbiter
	default:
		return "unknown"
	}
}
