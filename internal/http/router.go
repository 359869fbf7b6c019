// Package httpapi assembles the HTTP surface: middleware chain, public login
// and evaluator routes, authenticated student routes and admin routes.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	casehandler "ecrc42/internal/caseexample/handler"
	certhandler "ecrc42/internal/certificate/handler"
	checkhandler "ecrc42/internal/check/handler"
	evalhandler "ecrc42/internal/evaluator/handler"
	licensehandler "ecrc42/internal/license/handler"
	"ecrc42/internal/platform/metrics"
	userhandler "ecrc42/internal/user/handler"
	"ecrc42/pkg/platform/httputil"
	"ecrc42/pkg/platform/middleware/auth"
	"ecrc42/pkg/platform/middleware/metadata"
	"ecrc42/pkg/platform/middleware/request"
	"ecrc42/pkg/platform/middleware/requesttime"
)

// HealthCheck probes one backing service.
type HealthCheck func(ctx context.Context) error

type Handlers struct {
	Users        *userhandler.Handler
	Evaluator    *evalhandler.Handler
	Checks       *checkhandler.Handler
	Cases        *casehandler.Handler
	Licenses     *licensehandler.Handler
	Certificates *certhandler.Handler
}

type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	Tokens         auth.JWTValidator
	Revocations    auth.TokenRevocationChecker
	LoginLimiter   auth.Limiter
	Health         map[string]HealthCheck
}

func NewRouter(cfg Config, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Recovery(cfg.Logger))
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.Latency(cfg.Metrics))
	if cfg.RequestTimeout > 0 {
		r.Use(request.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", healthHandler(cfg.Health))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(request.ContentTypeJSON)

		r.Group(func(r chi.Router) {
			r.Use(auth.RateLimitByIP(cfg.LoginLimiter, "login", cfg.Logger))
			h.Users.RegisterPublic(r)
		})
		h.Evaluator.Register(r)
		h.Licenses.RegisterPublic(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(cfg.Tokens, cfg.Revocations, cfg.Logger))
			h.Users.RegisterProtected(r)
			h.Checks.Register(r)
			h.Cases.Register(r)
			h.Licenses.Register(r)
			h.Certificates.Register(r)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin(cfg.Logger))
				h.Cases.RegisterAdmin(r)
			})
		})
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
