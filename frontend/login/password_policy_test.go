package login

import "testing"

func TestValidatePasswordPolicy(t *testing.T) {
	cases := []struct {
		name string
		pwd  string
		ok   bool
	}{
		{name: "valid mixed", pwd: "Partner123!Turnify", ok: true},
		{name: "short", pwd: "A1!bc", ok: false},
		{name: "missing digit", pwd: "Partners!Turnify", ok: false},
		{name: "missing symbol", pwd: "Partner123Turnify", ok: false},
		{name: "missing upper", pwd: "partner123!turnify", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordPolicy(tc.pwd)
			if tc.ok && err != nil {
				t.Fatalf("expected valid password, got error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected policy error")
			}
		})
	}
}
