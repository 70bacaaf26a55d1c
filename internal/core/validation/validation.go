// Package validation checks request payloads before any state change.
//
// Rules are declared as struct tags on the ports input types and evaluated by
// go-playground/validator. Every violated field is reported, keyed by its JSON
// name, with the reason of the first tag that failed for that field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// Accepted timestamp layouts, tried in order.
var timestampLayouts = []string{time.RFC3339, time.DateOnly}

// ParseTimestamp parses an RFC3339 timestamp or a bare calendar date. The
// result is in UTC at the stored precision.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Timestamp(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// Engine validates structs. Services call it after authorization.
type Engine struct {
	v   *validator.Validate
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used by the notfuture rule.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns an Engine with the custom rules registered.
func New(opts ...Option) *Engine {
	e := &Engine{v: validator.New(validator.WithRequiredStructEnabled()), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	e.v.RegisterTagNameFunc(jsonName)
	e.v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	must(e.v.RegisterValidation("dotdomain", validDotDomain))
	must(e.v.RegisterValidation("timestamp", validTimestamp))
	must(e.v.RegisterValidation("notfuture", e.notFuture))
	must(e.v.RegisterValidation("risklevel", validRiskLevel))
	must(e.v.RegisterValidation("holdingstatus", validHoldingStatus))
	must(e.v.RegisterValidation("role", validRole))
	return e
}

// Validate returns nil or a *domain.ValidationError listing every violated field.
func (e *Engine) Validate(i any) error {
	err := e.v.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := domain.NewValidationError()
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), reason(fe))
	}
	return ve.OrNil()
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("validation: register rule: %v", err))
	}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// validDotDomain requires at least one dot inside the domain part of an email.
func validDotDomain(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return false
	}
	host := s[at+1:]
	dot := strings.IndexByte(host, '.')
	return dot > 0 && !strings.HasSuffix(host, ".")
}

func validTimestamp(fl validator.FieldLevel) bool {
	_, err := ParseTimestamp(fl.Field().String())
	return err == nil
}

// notFuture accepts strings holding a timestamp and time.Time values.
// Unparseable strings pass here and are reported by the timestamp rule.
func (e *Engine) notFuture(fl validator.FieldLevel) bool {
	var t time.Time
	switch v := fl.Field().Interface().(type) {
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return true
		}
		t = parsed
	case time.Time:
		t = v
	default:
		return false
	}
	return !t.After(e.now())
}

func validRiskLevel(fl validator.FieldLevel) bool {
	return domain.RiskLevel(fl.Field().String()).Valid()
}

func validHoldingStatus(fl validator.FieldLevel) bool {
	return domain.HoldingStatus(fl.Field().String()).Valid()
}

func validRole(fl validator.FieldLevel) bool {
	_, err := domain.ParseRole(fl.Field().String())
	return err == nil
}

// reason converts a single FieldError into a human-readable message.
func reason(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email", "dotdomain":
		return "must be a valid email address"
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "len":
		return fmt.Sprintf("must have exactly %s characters", fe.Param())
	case "number":
		return "must contain only digits"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "timestamp":
		return "must be an RFC3339 timestamp or a YYYY-MM-DD date"
	case "notfuture":
		return "must not be in the future"
	case "risklevel":
		return fmt.Sprintf("must be one of: %s, %s, %s", domain.RiskLow, domain.RiskMedium, domain.RiskHigh)
	case "holdingstatus":
		return fmt.Sprintf("must be one of: %s, %s", domain.HoldingActive, domain.HoldingClosed)
	case "role":
		return fmt.Sprintf("must be one of: %s, %s", domain.RoleUser, domain.RoleAdmin)
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
