// Package handler exposes the case example board.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecrc42/internal/caseexample/models"
	id "ecrc42/pkg/domain"
	"ecrc42/pkg/platform/httputil"
	"ecrc42/pkg/requestcontext"
)

type Service interface {
	Create(ctx context.Context, title, description, category string) (*models.Case, error)
	List(ctx context.Context, search string, tags []string) ([]*models.Case, error)
	Get(ctx context.Context, caseID id.CaseID) (*models.Case, error)
	ToggleReaction(ctx context.Context, caseID id.CaseID, emoji string) (*models.Case, bool, error)
	ToggleTag(ctx context.Context, caseID id.CaseID, tag string) (*models.Case, bool, error)
	AddAdminComment(ctx context.Context, caseID id.CaseID, text string) (*models.Case, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the student routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/cases/options", h.HandleOptions)
	r.Post("/cases", h.HandleCreate)
	r.Get("/cases", h.HandleList)
	r.Get("/cases/{id}", h.HandleGet)
	r.Post("/cases/{id}/reactions", h.HandleToggleReaction)
	r.Post("/cases/{id}/tags", h.HandleToggleTag)
}

// RegisterAdmin mounts moderator routes. Callers wrap them in RequireAdmin.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Put("/cases/{id}/admin-comment", h.HandleAdminComment)
}

func (h *Handler) HandleOptions(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, OptionsResponse{Emojis: models.Emojis, Tags: models.Tags})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateCaseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c, err := h.service.Create(ctx, req.Title, req.Description, req.Category)
	if err != nil {
		h.fail(ctx, w, "create case failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromCase(c, requestcontext.UserID(ctx)))
}

// HandleList accepts ?q= and repeated ?tag= parameters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	cases, err := h.service.List(ctx, q.Get("q"), q["tag"])
	if err != nil {
		h.fail(ctx, w, "list cases failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCases(cases, requestcontext.UserID(ctx)))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, err := id.ParseCaseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.service.Get(ctx, caseID)
	if err != nil {
		h.fail(ctx, w, "get case failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCase(c, requestcontext.UserID(ctx)))
}

func (h *Handler) HandleToggleReaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, err := id.ParseCaseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReactionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, active, err := h.service.ToggleReaction(ctx, caseID, req.Emoji)
	if err != nil {
		h.fail(ctx, w, "toggle reaction failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ToggleResponse{Active: active, Case: FromCase(c, requestcontext.UserID(ctx))})
}

func (h *Handler) HandleToggleTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, err := id.ParseCaseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[TagRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, active, err := h.service.ToggleTag(ctx, caseID, req.Tag)
	if err != nil {
		h.fail(ctx, w, "toggle tag failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ToggleResponse{Active: active, Case: FromCase(c, requestcontext.UserID(ctx))})
}

func (h *Handler) HandleAdminComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, err := id.ParseCaseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[AdminCommentRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.service.AddAdminComment(ctx, caseID, req.Text)
	if err != nil {
		h.fail(ctx, w, "admin comment failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCase(c, requestcontext.UserID(ctx)))
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"user_id", requestcontext.UserID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
