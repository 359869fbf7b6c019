// Package handler exposes registration, login and profile endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ecrc42/internal/user/models"
	"ecrc42/internal/user/service"
	"ecrc42/pkg/platform/httputil"
	"ecrc42/pkg/requestcontext"
)

// Service defines the user operations exposed over HTTP.
type Service interface {
	Register(ctx context.Context, lernname string) (*service.Session, error)
	LoginWithCode(ctx context.Context, code string) (*service.Session, error)
	AdminLogin(ctx context.Context, email, password string) (*service.Session, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the login endpoints. Callers wrap them in rate limiting.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleCodeLogin)
	r.Post("/auth/admin/login", h.HandleAdminLogin)
}

// RegisterProtected mounts endpoints that need an authenticated caller.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/auth/logout", h.HandleLogout)
	r.Get("/me", h.HandleProfile)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	session, err := h.service.Register(ctx, req.Lernname)
	if err != nil {
		h.logger.ErrorContext(ctx, "registration failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		"request_id", requestID,
		"user_id", session.User.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromSession(session))
}

func (h *Handler) HandleCodeLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CodeLoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	session, err := h.service.LoginWithCode(ctx, req.Code)
	if err != nil {
		h.logger.WarnContext(ctx, "code login failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(session))
}

func (h *Handler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AdminLoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	session, err := h.service.AdminLogin(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "admin login failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(session))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.Logout(ctx); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			"request_id", requestcontext.RequestID(ctx),
			"user_id", requestcontext.UserID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, err := h.service.Profile(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(u))
}
