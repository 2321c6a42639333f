package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
	"github.com/aussiebroadwan/clinicdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var secret = []byte("httpx-test-secret")

func mint(t *testing.T, sub string, role authz.Role, ttl time.Duration) string {
	t.Helper()
	s, err := jwtx.NewHMACSigner("HS256", secret)
	require.NoError(t, err)
	tok, err := s.Sign(jwtx.NewAccessClaims(sub, sub+"@x.io", role, ttl, time.Now()))
	require.NoError(t, err)
	return tok
}

func verifier(t *testing.T) jwtx.Verifier {
	t.Helper()
	v, err := jwtx.NewHMACVerifier("HS256", secret)
	require.NoError(t, err)
	return v
}

func TestExtractIdentity(t *testing.T) {
	v := verifier(t)
	tok := mint(t, "3", authz.RoleMember, time.Hour)

	t.Run("valid bearer", func(t *testing.T) {
		id := httpx.ExtractIdentity("Bearer "+tok, v)
		require.NotNil(t, id)
		require.Equal(t, "3", id.Subject)
		require.Equal(t, "3@x.io", id.Email)
		require.Equal(t, authz.RoleMember, id.Role)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"lowercase scheme", "bearer " + tok},
		{"uppercase scheme", "BEARER " + tok},
		{"no space", "Bearer" + tok},
		{"double space", "Bearer  " + tok},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"prefix only", "Bearer "},
		{"raw token", tok},
		{"garbage token", "Bearer abc.def.ghi"},
		{"expired token", "Bearer " + mint(t, "3", authz.RoleMember, -time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.Nil(t, httpx.ExtractIdentity(tt.header, v))
			})
		})
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIdentifyMiddleware(t *testing.T) {
	v := verifier(t)

	var seen *authz.Identity
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httpx.IdentityFromContext(r.Context())
	}), httpx.IdentifyMiddleware(v))

	serve(h, "Bearer "+mint(t, "9", authz.RoleAdmin, time.Hour))
	require.NotNil(t, seen)
	require.Equal(t, authz.RoleAdmin, seen.Role)

	seen = nil
	rec := serve(h, "Bearer nope")
	require.Nil(t, seen)
	require.Equal(t, http.StatusOK, rec.Code, "identify never rejects")
}

func TestGuards(t *testing.T) {
	v := verifier(t)
	adminTok := "Bearer " + mint(t, "1", authz.RoleAdmin, time.Hour)
	memberTok := "Bearer " + mint(t, "2", authz.RoleMember, time.Hour)

	tests := []struct {
		name   string
		guard  httpx.Middleware
		header string
		want   int
	}{
		{"authenticated anonymous", httpx.RequireAuthenticated(), "", http.StatusUnauthorized},
		{"authenticated bad token", httpx.RequireAuthenticated(), "Bearer junk", http.StatusUnauthorized},
		{"authenticated member", httpx.RequireAuthenticated(), memberTok, http.StatusOK},
		{"role admin anonymous", httpx.RequireRole(authz.RoleAdmin), "", http.StatusUnauthorized},
		{"role admin member", httpx.RequireRole(authz.RoleAdmin), memberTok, http.StatusForbidden},
		{"role admin admin", httpx.RequireRole(authz.RoleAdmin), adminTok, http.StatusOK},
		{"any role member", httpx.RequireAnyRole(authz.RoleAdmin, authz.RoleMember), memberTok, http.StatusOK},
		{"any role empty set", httpx.RequireAnyRole(), adminTok, http.StatusForbidden},
		{"any role empty set anonymous", httpx.RequireAnyRole(), "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := httpx.Chain(okHandler(), httpx.IdentifyMiddleware(v), tt.guard)
			rec := serve(h, tt.header)
			require.Equal(t, tt.want, rec.Code)

			if tt.want == http.StatusUnauthorized {
				require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
			}
			if tt.want != http.StatusOK {
				var env httpx.ErrorEnvelope
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
				require.False(t, env.Success)
				require.NotEmpty(t, env.Error)
			}
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	serve(httpx.Chain(okHandler(), mark("a"), mark("b"), mark("c")), "")
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst))
		require.Equal(t, "x", dst.Name)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "text/plain")
		require.ErrorIs(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst), httpx.ErrNotJSON)
	})

	t.Run("broken body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		require.ErrorIs(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst), httpx.ErrInvalidJSON)
	})
}
