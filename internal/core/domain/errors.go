package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrIdentityMissing  = errors.New("identity required")
	ErrIdentityNotFound = errors.New("identity not recognised")
	// ErrInvalidCredentials hides which of email or password was wrong.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrIdentityNotFound)

	ErrForbidden        = errors.New("access forbidden")
	ErrInsufficientRole = fmt.Errorf("%w: insufficient role", ErrForbidden)
	ErrNotOwner         = fmt.Errorf("%w: not the owner", ErrForbidden)

	ErrNotFound           = errors.New("not found")
	ErrAccountNotFound    = fmt.Errorf("account %w", ErrNotFound)
	ErrInvestmentNotFound = fmt.Errorf("investment %w", ErrNotFound)
	ErrHoldingNotFound    = fmt.Errorf("holding %w", ErrNotFound)

	ErrConflict   = errors.New("already in use")
	ErrEmailTaken = fmt.Errorf("email %w", ErrConflict)
	ErrTaxIDTaken = fmt.Errorf("cpf %w", ErrConflict)

	ErrValidation = errors.New("validation failed")
)

// ValidationError carries every violated field of a payload, keyed by the
// field's wire name.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a violation. The first reason recorded for a field wins.
func (e *ValidationError) Add(field, reason string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = reason
	}
}

// Merge copies the violations of other into e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, reason := range other.Fields {
		e.Add(field, reason)
	}
}

// Empty reports whether no violation has been recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns e when it holds violations and nil otherwise.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
