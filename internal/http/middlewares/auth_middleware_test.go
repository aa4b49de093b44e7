package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/geocoder89/mealshare/internal/actorctx"
	"github.com/geocoder89/mealshare/internal/auth"
	"github.com/geocoder89/mealshare/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct {
	calls  int
	claims auth.Claims
	err    error
}

func (f *fakeVerifier) Verify(token string) (auth.Claims, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type fakeRoles struct {
	calls int
	roles map[string]string
	err   error
}

func (f *fakeRoles) RoleByEmail(ctx context.Context, email string) (string, bool, error) {
	f.calls++
	if f.err != nil {
		return "", false, f.err
	}
	role, ok := f.roles[email]
	return role, ok, nil
}

type decisions map[string]int

func (d decisions) RecordAuthDecision(gate, outcome string) { d[gate+":"+outcome]++ }

func doGet(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	payload := auth.Claims{"email": "a@x.com", "name": "Ada", "iat": float64(1), "exp": float64(2)}

	tests := []struct {
		name          string
		header        string
		verifier      *fakeVerifier
		wantStatus    int
		wantVerifyHit int
	}{
		{name: "missing_header", header: "", verifier: &fakeVerifier{claims: payload}, wantStatus: http.StatusUnauthorized, wantVerifyHit: 0},
		{name: "no_token_after_scheme", header: "Bearer", verifier: &fakeVerifier{claims: payload}, wantStatus: http.StatusUnauthorized, wantVerifyHit: 0},
		{name: "wrong_scheme", header: "Basic abc", verifier: &fakeVerifier{claims: payload}, wantStatus: http.StatusUnauthorized, wantVerifyHit: 0},
		{name: "invalid_token", header: "Bearer abc", verifier: &fakeVerifier{err: auth.ErrInvalidToken}, wantStatus: http.StatusUnauthorized, wantVerifyHit: 1},
		{name: "valid_token", header: "Bearer abc", verifier: &fakeVerifier{claims: payload}, wantStatus: http.StatusOK, wantVerifyHit: 1},
		{name: "lowercase_scheme", header: "bearer abc", verifier: &fakeVerifier{claims: payload}, wantStatus: http.StatusOK, wantVerifyHit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen auth.Claims
			var ctxEmail string

			m := middlewares.NewAuthMiddleware(tt.verifier, nil)
			r := gin.New()
			r.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
				seen, _ = middlewares.ClaimsFromContext(c)
				ctxEmail, _ = actorctx.EmailFrom(c.Request.Context())
				c.Status(http.StatusOK)
			})

			w := doGet(r, tt.header)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.verifier.calls != tt.wantVerifyHit {
				t.Fatalf("verifier called %d times, want %d", tt.verifier.calls, tt.wantVerifyHit)
			}

			if tt.wantStatus == http.StatusOK {
				if !reflect.DeepEqual(seen, payload) {
					t.Fatalf("claims changed: got %v want %v", seen, payload)
				}
				if ctxEmail != "a@x.com" {
					t.Fatalf("expected actor on request context, got %q", ctxEmail)
				}
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		claims     auth.Claims
		roles      *fakeRoles
		wantStatus int
	}{
		{name: "admin", claims: auth.Claims{"email": "boss@x.com"}, roles: &fakeRoles{roles: map[string]string{"boss@x.com": "Admin"}}, wantStatus: http.StatusOK},
		{name: "lowercase_admin_is_not_admin", claims: auth.Claims{"email": "boss@x.com"}, roles: &fakeRoles{roles: map[string]string{"boss@x.com": "admin"}}, wantStatus: http.StatusForbidden},
		{name: "member", claims: auth.Claims{"email": "m@x.com"}, roles: &fakeRoles{roles: map[string]string{"m@x.com": "member"}}, wantStatus: http.StatusForbidden},
		{name: "missing_role_field", claims: auth.Claims{"email": "m@x.com"}, roles: &fakeRoles{roles: map[string]string{"m@x.com": ""}}, wantStatus: http.StatusForbidden},
		{name: "unknown_user", claims: auth.Claims{"email": "ghost@x.com"}, roles: &fakeRoles{roles: map[string]string{}}, wantStatus: http.StatusForbidden},
		{name: "store_error", claims: auth.Claims{"email": "boss@x.com"}, roles: &fakeRoles{err: errors.New("down")}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decisions{}
			m := middlewares.NewAuthMiddleware(&fakeVerifier{claims: tt.claims}, rec)

			r := gin.New()
			r.GET("/protected", m.RequireAuth(), m.RequireAdmin(tt.roles), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := doGet(r, "Bearer token")

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.roles.calls != 1 {
				t.Fatalf("expected exactly one role read, got %d", tt.roles.calls)
			}
			if rec["access:allow"] != 1 {
				t.Fatalf("expected access gate to allow, got %v", rec)
			}
		})
	}
}

func TestRequireAdmin_NoStoreReadWhenUnauthenticated(t *testing.T) {
	roles := &fakeRoles{roles: map[string]string{"boss@x.com": "Admin"}}
	rec := decisions{}
	m := middlewares.NewAuthMiddleware(&fakeVerifier{err: auth.ErrInvalidToken}, rec)

	r := gin.New()
	r.GET("/protected", m.RequireAuth(), m.RequireAdmin(roles), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"", "Bearer bad"} {
		w := doGet(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: got status %d, want 401", header, w.Code)
		}
	}

	if roles.calls != 0 {
		t.Fatalf("store must not be read before authentication, got %d reads", roles.calls)
	}
	if rec["access:unauthorized"] != 2 {
		t.Fatalf("expected two unauthorized decisions, got %v", rec)
	}
}

func TestRequireAdmin_WithoutAccessGate(t *testing.T) {
	roles := &fakeRoles{}
	m := middlewares.NewAuthMiddleware(&fakeVerifier{}, nil)

	r := gin.New()
	r.GET("/protected", m.RequireAdmin(roles), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doGet(r, "Bearer token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
	if roles.calls != 0 {
		t.Fatalf("expected no role read without identity")
	}
}
