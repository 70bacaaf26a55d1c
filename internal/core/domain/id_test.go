package domain

import "testing"

func TestCanonicalID(t *testing.T) {
	tests := map[string]string{
		"6F1C2B1E-8A3D-4C5E-9F10-1A2B3C4D5E6F": "6f1c2b1e-8a3d-4c5e-9f10-1a2b3c4d5e6f",
		"6f1c2b1e-8a3d-4c5e-9f10-1a2b3c4d5e6f": "6f1c2b1e-8a3d-4c5e-9f10-1a2b3c4d5e6f",
		"not-a-uuid":                           "not-a-uuid",
		"":                                     "",
	}
	for in, want := range tests {
		if got := CanonicalID(in); got != want {
			t.Errorf("CanonicalID(%q) = %q, want %q", in, got, want)
		}
	}
}
