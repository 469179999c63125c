package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ankitraj/portfolio/internal/observability/metrics"
	"github.com/ankitraj/portfolio/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var contactTracer = otel.Tracer("portfolio.internal.contact")

const (
	maxBodyBytes    = 64 << 10
	dispatchFailure = "Failed to send message. Please try again later."
)

// Response is the JSON body returned by the submission endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handler serves POST /api/contact.
type Handler struct {
	sender  Sender
	metrics *metrics.ContactMetrics
	timeout time.Duration
	logger  *logging.Logger
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithMetrics records submission outcomes and dispatch latency.
func WithMetrics(m *metrics.ContactMetrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// WithDispatchTimeout bounds how long a single send may take.
func WithDispatchTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) { h.timeout = d }
}

// NewHandler creates a contact handler dispatching through sender.
func NewHandler(sender Sender, logger *logging.Logger, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	h := &Handler{
		sender: sender,
		logger: logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Submit handles POST /api/contact requests.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := contactTracer.Start(r.Context(), "contact.submit")
	defer span.End()

	channel := h.sender.Channel()
	span.SetAttributes(attribute.String("portfolio.contact.channel", channel))

	var sub Submission
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&sub); err != nil {
		h.logger.Warn("failed to decode contact request", "error", err)
		span.RecordError(err)
		h.metrics.ObserveSubmission(channel, "invalid")
		writeJSON(w, http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	if err := sub.Validate(); err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			verr = &ValidationError{Err: err}
		}
		span.RecordError(err)
		h.metrics.ObserveSubmission(channel, "invalid")
		writeJSON(w, http.StatusBadRequest, Response{Error: verr.Message()})
		return
	}

	if err := h.dispatch(ctx, sub); err != nil {
		h.logger.Error("contact form error", "error", err, "channel", channel)
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		h.metrics.ObserveSubmission(channel, "failed")
		writeJSON(w, http.StatusInternalServerError, Response{Error: dispatchFailure})
		return
	}

	h.metrics.ObserveSubmission(channel, "sent")
	writeJSON(w, http.StatusOK, Response{Success: true, Message: h.sender.Acknowledgement()})
}

func (h *Handler) dispatch(ctx context.Context, sub Submission) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	err := h.sender.Send(ctx, sub)
	h.metrics.ObserveDispatchLatency(h.sender.Channel(), time.Since(start).Seconds())
	if err != nil {
		var derr *DispatchError
		if !errors.As(err, &derr) {
			err = &DispatchError{Channel: h.sender.Channel(), Err: err}
		}
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
