// Package service implements the use cases of the portfolio API.
//
// Every public method authorizes the caller first, then validates the payload,
// and only then touches the store. Read-modify-write sequences on a single
// record run through a ports.Serializer keyed by the record id.
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// passwordCost is the bcrypt work factor used for new credentials.
var passwordCost = bcrypt.DefaultCost

func accountKey(id string) string    { return "account:" + id }
func investmentKey(id string) string { return "investment:" + id }
func holdingKey(id string) string    { return "holding:" + id }

// expected reports whether err belongs to the domain taxonomy and therefore
// needs no error-level log line.
func expected(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrIdentityMissing) ||
		errors.Is(err, domain.ErrIdentityNotFound)
}

// asValidation extracts the field map of err, or returns ok=false when err is
// not a validation failure.
func asValidation(err error) (*domain.ValidationError, bool) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// withFieldError adds a violation to err, which is nil or a validation
// failure. Any other error is returned unchanged.
func withFieldError(err error, field, reason string) error {
	ve, ok := asValidation(err)
	if !ok {
		if err != nil {
			return err
		}
		ve = domain.NewValidationError()
	}
	ve.Add(field, reason)
	return ve
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
