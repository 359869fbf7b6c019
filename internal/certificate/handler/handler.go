// Package handler serves the certificate downloads.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecrc42/internal/export"
	"ecrc42/pkg/platform/httputil"
	"ecrc42/pkg/requestcontext"
)

type Service interface {
	Activity(ctx context.Context) (*export.File, error)
	Protocol(ctx context.Context) (*export.File, error)
	CC(ctx context.Context) (*export.File, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/certificates/activity.pdf", h.serve("activity certificate", Service.Activity))
	r.Get("/certificates/protocol.pdf", h.serve("protocol", Service.Protocol))
	r.Get("/certificates/cc.pdf", h.serve("cc certificate", Service.CC))
}

// serve binds render to the service per request, so routes can be mounted
// before the service is usable.
func (h *Handler) serve(name string, render func(Service, context.Context) (*export.File, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		file, err := render(h.service, ctx)
		if err != nil {
			h.logger.WarnContext(ctx, name+" failed",
				"request_id", requestcontext.RequestID(ctx),
				"user_id", requestcontext.UserID(ctx),
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteAttachment(w, file.Name, file.ContentType, file.Body)
	}
}
