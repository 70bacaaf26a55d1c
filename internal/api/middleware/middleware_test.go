package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/policy"
)

type stubResolver struct {
	callers map[string]domain.Caller
	err     error
}

func (s *stubResolver) Resolve(_ context.Context, token string) (domain.Caller, error) {
	if s.err != nil {
		return domain.Caller{}, s.err
	}
	if token == "" {
		return domain.Caller{}, nil
	}
	c, ok := s.callers[token]
	if !ok {
		return domain.Caller{}, domain.ErrIdentityNotFound
	}
	return c, nil
}

var resolver = &stubResolver{callers: map[string]domain.Caller{
	"alice": {AccountID: "alice", Role: domain.RoleUser},
	"root":  {AccountID: "root", Role: domain.RoleAdmin},
}}

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("userId", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIdentity_StoresCaller(t *testing.T) {
	c, rec := newContext("alice")

	var got domain.Caller
	handler := Identity(resolver, HeaderToken("userId"))(func(c echo.Context) error {
		got = CallerFrom(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.AccountID != "alice" || got.Role != domain.RoleUser {
		t.Fatalf("unexpected caller: %+v", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestIdentity_AnonymousContinues(t *testing.T) {
	c, _ := newContext("")

	called := false
	handler := Identity(resolver, HeaderToken("userId"))(func(c echo.Context) error {
		called = true
		if !CallerFrom(c).Anonymous() {
			t.Fatalf("expected anonymous caller")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestIdentity_UnknownTokenFails(t *testing.T) {
	c, _ := newContext("mallory")

	handler := Identity(resolver, HeaderToken("userId"))(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"Bearer abc.def":  "abc.def",
		"bearer   xyz":    "xyz",
		"Basic dXNlcjpw":  "Basic dXNlcjpw",
		"just-some-value": "just-some-value",
	}

	e := echo.New()
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		if got := BearerToken()(c); got != want {
			t.Errorf("BearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		caller  domain.Caller
		op      policy.Operation
		owner   string
		wantErr error
	}{
		{"admin passes admin-only", domain.Caller{AccountID: "root", Role: domain.RoleAdmin}, policy.CatalogCreate, "", nil},
		{"user blocked on admin-only", domain.Caller{AccountID: "alice", Role: domain.RoleUser}, policy.CatalogCreate, "", domain.ErrInsufficientRole},
		{"owner passes", domain.Caller{AccountID: "alice", Role: domain.RoleUser}, policy.HoldingList, "alice", nil},
		{"other user blocked", domain.Caller{AccountID: "alice", Role: domain.RoleUser}, policy.HoldingList, "bob", domain.ErrNotOwner},
		{"anonymous needs identity", domain.Caller{}, policy.HoldingList, "alice", domain.ErrIdentityMissing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newContext("")
			c.SetParamNames("userId")
			c.SetParamValues(tc.owner)
			c.Set(callerKey, tc.caller)

			called := false
			handler := Authorize(tc.op, "userId")(func(c echo.Context) error {
				called = true
				return nil
			})

			err := handler(c)
			if tc.wantErr == nil {
				if err != nil || !called {
					t.Fatalf("expected pass-through, got err=%v called=%v", err, called)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if called {
				t.Fatalf("next handler must not run on denial")
			}
		})
	}
}
