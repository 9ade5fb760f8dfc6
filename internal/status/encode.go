// internal/status/encode.go
package status

// Suffix converts a role into the text that follows "(db:<name>)".
// Layout is format-locked.
// No IO. No side effects.
func Suffix(r Role, setName string) string {
	if r == RoleStandalone {
		return Terminator
	}
	return setOpen + setName + setSep + Label(r) + setClose + Terminator
}

// Label returns the bracketed role label, empty for standalone.
func Label(r Role) string {
	switch r {
	case RolePrimary:
		return LabelPrimary
	case RoleSecondary:
		return LabelSecondary
	case RoleStandalone:
		return ""
	default:
		return LabelArbiter
	}
}

// Split returns the suffix in three parts: the text before the label,
// the label itself, and the text after it. Styling layers use it to
// decorate only the label.
func Split(r Role, setName string) (head, label, tail string) {
	if r == RoleStandalone {
		return "", "", Terminator
	}
	return setOpen + setName + setSep, Label(r), setClose + Terminator
}
