// Package handler exposes the persisted check endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecrc42/internal/check/models"
	"ecrc42/internal/evaluator"
	"ecrc42/internal/export"
	id "ecrc42/pkg/domain"
	"ecrc42/pkg/platform/httputil"
	"ecrc42/pkg/requestcontext"
)

// Service defines the check operations exposed over HTTP.
type Service interface {
	Create(ctx context.Context, answers evaluator.AnswerSet, finalize bool) (*models.Check, error)
	Get(ctx context.Context, checkID id.CheckID) (*models.Check, error)
	List(ctx context.Context) ([]*models.Check, error)
	Update(ctx context.Context, checkID id.CheckID, answers evaluator.AnswerSet) (*models.Check, error)
	Complete(ctx context.Context, checkID id.CheckID) (*models.Check, error)
	Delete(ctx context.Context, checkID id.CheckID) error
	Export(ctx context.Context, checkID id.CheckID, format export.Format) (*export.File, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/checks", h.HandleCreate)
	r.Get("/checks", h.HandleList)
	r.Get("/checks/{id}", h.HandleGet)
	r.Put("/checks/{id}", h.HandleUpdate)
	r.Post("/checks/{id}/complete", h.HandleComplete)
	r.Delete("/checks/{id}", h.HandleDelete)
	r.Get("/checks/{id}/export", h.HandleExport)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c, err := h.service.Create(ctx, req.Answers, req.ShouldFinalize())
	if err != nil {
		h.fail(ctx, w, "create check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromCheck(c))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	checks, err := h.service.List(r.Context())
	if err != nil {
		h.fail(r.Context(), w, "list checks failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromChecks(checks))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checkID, err := id.ParseCheckID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.service.Get(ctx, checkID)
	if err != nil {
		h.fail(ctx, w, "get check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCheck(c))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	checkID, err := id.ParseCheckID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c, err := h.service.Update(ctx, checkID, req.Answers)
	if err != nil {
		h.fail(ctx, w, "update check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCheck(c))
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checkID, err := id.ParseCheckID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.service.Complete(ctx, checkID)
	if err != nil {
		h.fail(ctx, w, "complete check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCheck(c))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checkID, err := id.ParseCheckID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(ctx, checkID); err != nil {
		h.fail(ctx, w, "delete check failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checkID, err := id.ParseCheckID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	file, err := h.service.Export(ctx, checkID, format)
	if err != nil {
		h.fail(ctx, w, "export check failed", err)
		return
	}
	httputil.WriteAttachment(w, file.Name, file.ContentType, file.Body)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"user_id", requestcontext.UserID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
