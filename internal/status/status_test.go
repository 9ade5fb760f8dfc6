package status

import "testing"

func strp(s string) *string { return &s }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		topo Topology
		want Role
	}{
		{"standalone", Topology{}, RoleStandalone},
		{"standalone ignores me/primary", Topology{Me: "a", Primary: "a"}, RoleStandalone},
		{"primary", Topology{SetName: strp("rs0"), Me: "n1:27017", Primary: "n1:27017"}, RolePrimary},
		{"primary wins over secondary flag", Topology{SetName: strp("rs0"), Me: "n1", Primary: "n1", Secondary: true}, RolePrimary},
		{"secondary", Topology{SetName: strp("rs0"), Me: "n2", Primary: "n1", Secondary: true}, RoleSecondary},
		{"arbiter", Topology{SetName: strp("rs0"), Me: "n2", Primary: "n1"}, RoleArbiter},
		{"no primary known", Topology{SetName: strp("rs0"), Me: "n2"}, RoleArbiter},
		{"empty set name is still a set", Topology{SetName: strp(""), Me: "n1", Primary: "n1"}, RolePrimary},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.topo); got != tc.want {
				t.Fatalf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	cases := []struct {
		role Role
		want string
	}{
		{RoleStandalone, "> "},
		{RolePrimary, " [rs0:PRIMARY]> "},
		{RoleSecondary, " [rs0:SECONDARY]> "},
		{RoleArbiter, " [rs0:ARBITER]> "},
	}

	for _, tc := range cases {
		if got := Suffix(tc.role, "rs0"); got != tc.want {
			t.Fatalf("Suffix(%v) = %q, want %q", tc.role, got, tc.want)
		}
		head, label, tail := Split(tc.role, "rs0")
		if head+label+tail != tc.want {
			t.Fatalf("Split(%v) joined = %q, want %q", tc.role, head+label+tail, tc.want)
		}
	}
}
