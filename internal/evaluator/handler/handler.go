package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ecrc42/internal/evaluator"
	"ecrc42/pkg/platform/httputil"
	"ecrc42/pkg/requestcontext"
)

// Service defines the evaluator operations exposed over HTTP.
type Service interface {
	Evaluate(ctx context.Context, a evaluator.AnswerSet) evaluator.Outcome
	Next(ctx context.Context, st evaluator.WizardState) (evaluator.WizardState, *evaluator.Outcome, error)
	Back(ctx context.Context, st evaluator.WizardState) (evaluator.WizardState, error)
}

// Handler wires evaluation and wizard endpoints to the evaluator service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts evaluator endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/evaluate", h.HandleEvaluate)
	r.Post("/wizard/next", h.HandleWizardNext)
	r.Post("/wizard/back", h.HandleWizardBack)
}

// HandleEvaluate handles POST /evaluate, a stateless preview.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcome := h.service.Evaluate(ctx, req.Answers)

	h.logger.InfoContext(ctx, "answers evaluated",
		"request_id", requestID,
		"user_id", requestcontext.UserID(ctx),
		"rule", outcome.Rule,
		"category", outcome.Category,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, EvaluateResponse{Outcome: outcome})
}

// HandleWizardNext handles POST /wizard/next.
func (h *Handler) HandleWizardNext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[WizardRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	next, outcome, err := h.service.Next(ctx, req.State())
	if err != nil {
		h.logger.DebugContext(ctx, "wizard step rejected",
			"request_id", requestID,
			"step", req.Step,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromState(next, outcome))
}

// HandleWizardBack handles POST /wizard/back.
func (h *Handler) HandleWizardBack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[WizardRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	prev, err := h.service.Back(ctx, req.State())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromState(prev, nil))
}
