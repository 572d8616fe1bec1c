package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/service"
	"github.com/blockbite/tokensale/internal/tokensale/store"
	"github.com/blockbite/tokensale/pkg/httpx"
	"github.com/blockbite/tokensale/pkg/slogx"

	_ "github.com/blockbite/tokensale/api/tokensale" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	adminSecret  string
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	Program          service.Program
	ApplicantService *service.ApplicantService
	AdminService     *service.AdminService
	ReferralService  *service.ReferralService
}

func NewRouter(
	adminSecret, issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		adminSecret:  adminSecret,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerApplications()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Blockbite Token Sale API
//	@version		0.1.0
//	@description	Applicant management for the Blockbite token sale and air-drop programs: sign-up,
//	@description	profile updates against a per-program field policy, application locking, payment
//	@description	transaction tracking, referral trees and the admin outcome workflow.
//	@description
//	@description				Applicant endpoints are authenticated by possession of the private application id.
//	@description				Admin endpoints require a bearer token carrying the sale:read or sale:write scope.
//
//	@contact.name				Blockbite Team
//	@contact.url				https://github.com/blockbite/tokensale
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
//	@description				JWT admin token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerApplications() {
	applyHandler := &ApplyHandler{ApplicantService: r.ApplicantService}
	appHandler := &ApplicationHandler{ApplicantService: r.ApplicantService}

	// POST /applications - strict rate limit by IP (public signup endpoint,
	// every call can trigger an email)
	r.Mux.Handle("POST /v1/applications",
		httpx.Chain(applyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /applications/{privateId} - lenient rate limit (applicants poll
	// their own state)
	r.Mux.Handle("GET /v1/applications/{privateId}",
		httpx.Chain(http.HandlerFunc(appHandler.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// PATCH /applications/{privateId} - moderate rate limit
	r.Mux.Handle("PATCH /v1/applications/{privateId}",
		httpx.Chain(http.HandlerFunc(appHandler.HandlePatch),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /applications/{privateId}/lock - moderate rate limit (can
	// trigger the reminder email on some programs)
	r.Mux.Handle("POST /v1/applications/{privateId}/lock",
		httpx.Chain(http.HandlerFunc(appHandler.HandleLock),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /applications/{privateId}/transactions - moderate rate limit
	r.Mux.Handle("POST /v1/applications/{privateId}/transactions",
		httpx.Chain(http.HandlerFunc(appHandler.HandleAddTransaction),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{
		ApplicantService: r.ApplicantService,
		AdminService:     r.AdminService,
		ReferralService:  r.ReferralService,
	}

	authn := httpx.AuthnMiddleware(r.adminSecret, r.issuer)

	securedRead := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			authn,
			httpx.RequireAnyScope("sale:read"),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		)
	}
	securedWrite := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			authn,
			httpx.RequireAnyScope("sale:write"),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/admin/applications",
		securedRead(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/admin/applications/{publicId}",
		securedRead(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("GET /v1/admin/applications/{publicId}/referrals",
		securedRead(http.HandlerFunc(h.HandleReferrals)))

	r.Mux.Handle("POST /v1/admin/applications",
		securedWrite(http.HandlerFunc(h.HandleCreateGenesis)))
	r.Mux.Handle("POST /v1/admin/applications/{publicId}/reminder",
		securedWrite(http.HandlerFunc(h.HandleSendReminder)))
	r.Mux.Handle("POST /v1/admin/applications/{publicId}/accept",
		securedWrite(http.HandlerFunc(h.HandleAccept)))
	r.Mux.Handle("POST /v1/admin/applications/{publicId}/reject",
		securedWrite(http.HandlerFunc(h.HandleReject)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion, r.Program.Name),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.Program.Name, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
