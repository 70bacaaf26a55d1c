// Package auth resolves bearer tokens to callers and mints them.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

const issuer = "portfolio-api"

// Claims is the payload of an identity token. Subject carries the account id.
// Role is informational: the role in effect is always read from the store.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver validates HS256 tokens and delegates the account lookup to an
// id based resolver.
type JWTResolver struct {
	secret   []byte
	accounts ports.IdentityResolver
}

func NewJWTResolver(secret string, accounts ports.IdentityResolver) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), accounts: accounts}
}

// Resolve returns the anonymous caller for an empty token and
// domain.ErrIdentityNotFound for any token that fails verification.
func (r *JWTResolver) Resolve(ctx context.Context, token string) (domain.Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Caller{}, nil
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil || !tkn.Valid {
		return domain.Caller{}, domain.ErrIdentityNotFound
	}
	if claims.Subject == "" {
		return domain.Caller{}, domain.ErrIdentityNotFound
	}

	return r.accounts.Resolve(ctx, claims.Subject)
}

// Issuer mints identity tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the account.
func (i *Issuer) Issue(acc *domain.Account) (string, error) {
	if acc == nil || acc.ID == "" {
		return "", errors.New("issue token: account without id")
	}

	now := i.now()
	claims := Claims{
		Role: acc.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
