package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"User", RoleUser, false},
		{"Admin", RoleAdmin, false},
		{"admin", 0, true},
		{"", 0, true},
		{"Root", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseRole(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestRole_TextRoundTrip(t *testing.T) {
	b, err := RoleAdmin.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var r Role
	if err := r.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r != RoleAdmin {
		t.Fatalf("expected Admin, got %v", r)
	}

	if _, err := Role(0).MarshalText(); err == nil {
		t.Fatal("expected error marshalling zero role")
	}
}

func TestHoldingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to HoldingStatus
		want     bool
	}{
		{HoldingActive, HoldingActive, true},
		{HoldingActive, HoldingClosed, true},
		{HoldingClosed, HoldingClosed, true},
		{HoldingClosed, HoldingActive, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestValidationError(t *testing.T) {
	ve := NewValidationError()
	if ve.OrNil() != nil {
		t.Fatal("empty ValidationError must collapse to nil")
	}

	ve.Add("email", "must be a valid email")
	ve.Add("email", "ignored")
	ve.Add("cpf", "must be 11 digits")

	if ve.Fields["email"] != "must be a valid email" {
		t.Errorf("first reason must win, got %q", ve.Fields["email"])
	}
	want := "validation failed: cpf: must be 11 digits; email: must be a valid email"
	if ve.Error() != want {
		t.Errorf("unexpected message %q", ve.Error())
	}
}
