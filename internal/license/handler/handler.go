// Package handler exposes the license generator endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecrc42/internal/export"
	"ecrc42/internal/license/models"
	id "ecrc42/pkg/domain"
	"ecrc42/pkg/platform/httputil"
	"ecrc42/pkg/requestcontext"
)

type Service interface {
	Generate(ctx context.Context, d models.Draft) (*models.License, error)
	Get(ctx context.Context, licenseID id.LicenseID) (*models.License, error)
	List(ctx context.Context) ([]*models.License, error)
	Certificate(ctx context.Context, licenseID id.LicenseID) (*export.File, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the form options, which need no session.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/licenses/options", h.HandleOptions)
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/licenses", h.HandleGenerate)
	r.Get("/licenses", h.HandleList)
	r.Get("/licenses/{id}", h.HandleGet)
	r.Get("/licenses/{id}/pdf", h.HandleCertificate)
}

func (h *Handler) HandleOptions(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, Options())
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GenerateLicenseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	l, err := h.service.Generate(ctx, req.Draft())
	if err != nil {
		h.fail(ctx, w, "generate license failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromLicense(l))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	licenses, err := h.service.List(r.Context())
	if err != nil {
		h.fail(r.Context(), w, "list licenses failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromLicenses(licenses))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	licenseID, err := id.ParseLicenseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	l, err := h.service.Get(ctx, licenseID)
	if err != nil {
		h.fail(ctx, w, "get license failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromLicense(l))
}

func (h *Handler) HandleCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	licenseID, err := id.ParseLicenseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	file, err := h.service.Certificate(ctx, licenseID)
	if err != nil {
		h.fail(ctx, w, "render license failed", err)
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
