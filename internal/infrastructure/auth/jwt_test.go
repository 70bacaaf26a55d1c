package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

type stubResolver struct {
	callers map[string]domain.Caller
	lastID  string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (domain.Caller, error) {
	s.lastID = token
	c, ok := s.callers[token]
	if !ok {
		return domain.Caller{}, domain.ErrIdentityNotFound
	}
	return c, nil
}

const secret = "test-secret"

func TestJWTResolver_RoundTrip(t *testing.T) {
	acc := &domain.Account{ID: "acc-1", Role: domain.RoleUser}
	stub := &stubResolver{callers: map[string]domain.Caller{
		"acc-1": {AccountID: "acc-1", Role: domain.RoleAdmin},
	}}

	token, err := NewIssuer(secret, time.Hour).Issue(acc)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	caller, err := NewJWTResolver(secret, stub).Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if stub.lastID != "acc-1" {
		t.Fatalf("expected lookup of acc-1, got %q", stub.lastID)
	}
	// The stored role wins over the role claim.
	if caller.Role != domain.RoleAdmin {
		t.Fatalf("expected stored role Admin, got %s", caller.Role)
	}
}

func TestJWTResolver_EmptyTokenIsAnonymous(t *testing.T) {
	caller, err := NewJWTResolver(secret, &stubResolver{}).Resolve(context.Background(), "  ")
	if err != nil || !caller.Anonymous() {
		t.Fatalf("expected anonymous caller, got %+v %v", caller, err)
	}
}

func TestJWTResolver_Rejects(t *testing.T) {
	acc := &domain.Account{ID: "acc-1", Role: domain.RoleUser}

	wrongSecret, _ := NewIssuer("other-secret", time.Hour).Issue(acc)

	expiredIssuer := NewIssuer(secret, time.Minute)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _ := expiredIssuer.Issue(acc)

	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "acc-1", Issuer: issuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	}).SignedString([]byte(secret))

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"wrong secret": wrongSecret,
		"expired":      expired,
		"alg none":     noneAlg,
		"no subject":   noSubject,
	}

	resolver := NewJWTResolver(secret, &stubResolver{callers: map[string]domain.Caller{
		"acc-1": {AccountID: "acc-1", Role: domain.RoleUser},
	}})
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := resolver.Resolve(context.Background(), token)
			if !errors.Is(err, domain.ErrIdentityNotFound) {
				t.Fatalf("expected ErrIdentityNotFound, got %v", err)
			}
		})
	}
}

func TestIssuer_RequiresAccountID(t *testing.T) {
	if _, err := NewIssuer(secret, time.Hour).Issue(&domain.Account{}); err == nil {
		t.Fatal("expected error for account without id")
	}
}
