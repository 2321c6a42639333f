package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/service"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
	"github.com/aussiebroadwan/clinicdesk/pkg/jwtx"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"

	_ "github.com/aussiebroadwan/clinicdesk/api/clinic" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string

	// TrustProxyHeaders keys per-address rate limits on X-Forwarded-For and
	// X-Real-IP. Set it only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	TokenService  *service.TokenService
	AuthService   *service.AuthService
	UserService   *service.UserService
	ClinicService *service.ClinicService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Every request gets a logger, then an identity if it carries a valid token
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.IdentifyMiddleware(r.verifier),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerClinics()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clinic Desk API
//	@version		0.1.0
//	@description	Users and clinics behind JWT bearer authentication with admin and member roles.
//	@description
//	@description				Access tokens are HS256 signed, expire after 24 hours by default and cannot be refreshed or revoked.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clinicdesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// clientIP picks the address used for per-IP rate limits.
func (r *Router) clientIP() httpx.KeyExtractor {
	if r.TrustProxyHeaders {
		return httpx.ForwardedIPKeyExtractor
	}
	return httpx.IPKeyExtractor
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/signup - strict rate limit by IP (public account creation)
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitMiddleware(httpx.StrictLimit, r.clientIP()),
		),
	)

	// POST /auth/login - strict rate limit by IP + email to slow down guessing
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByKeyAndJSONField(httpx.StrictLimit, r.clientIP(), "email"),
		),
	)

	r.Mux.Handle("GET /auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.RequireAuthenticated(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	admin := func(fn http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(fn,
			httpx.RequireRole(authz.RoleAdmin),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("POST /users", admin(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /users", admin(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("PATCH /users/{id}", admin(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /users/{id}", admin(h.HandleDelete, httpx.ModerateLimit))

	// Members may read their own record; the handler enforces ownership
	r.Mux.Handle("GET /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RequireAnyRole(authz.RoleAdmin, authz.RoleMember),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerClinics() {
	h := &ClinicsHandler{ClinicService: r.ClinicService}

	admin := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.RequireRole(authz.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}
	anyone := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.RequireAnyRole(authz.RoleAdmin, authz.RoleMember),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /clinics", admin(h.HandleCreate))
	r.Mux.Handle("GET /clinics", anyone(h.HandleList))
	r.Mux.Handle("GET /clinics/{id}", anyone(h.HandleGet))
	r.Mux.Handle("PATCH /clinics/{id}", admin(h.HandleUpdate))
	r.Mux.Handle("DELETE /clinics/{id}", admin(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Liveness is public and cheap; monitoring systems may poll frequently
	livez := httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
		httpx.RateLimitMiddleware(httpx.PublicLimit, r.clientIP()),
	)
	r.Mux.Handle("GET /livez", livez)
	r.Mux.Handle("GET /health", livez)

	r.Mux.Handle("GET /readyz",
		// Readiness touches the database, so it gets a tighter budget
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService),
			httpx.RateLimitMiddleware(httpx.LenientLimit, r.clientIP()),
		),
	)
}
