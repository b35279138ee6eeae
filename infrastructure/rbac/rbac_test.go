package rbac

import "testing"

func TestMatchPathWildcardSegments(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		ok      bool
	}{
		{pattern: "/portal/returns/*/label", path: "/portal/returns/12/label", ok: true},
		{pattern: "/portal/returns/*", path: "/portal/returns/12", ok: true},
		{pattern: "/portal/admin/returns/*", path: "/portal/admin/returns/export.csv", ok: true},
		{pattern: "/portal/admin/users", path: "/portal/admin/users", ok: true},
		{pattern: "/portal/admin/users", path: "/portal/admin/users/1", ok: false},
		{pattern: "/portal/returns/*/label", path: "/portal/returns/12/approve", ok: false},
	}

	for _, tc := range cases {
		if got := matchPath(tc.pattern, tc.path); got != tc.ok {
			t.Fatalf("pattern=%s path=%s expected=%v got=%v", tc.pattern, tc.path, tc.ok, got)
		}
	}
}
