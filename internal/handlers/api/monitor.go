package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gabapcia/escrowwatch/internal/conditionwatch"
	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/pkg/validator"
	"github.com/gabapcia/escrowwatch/internal/verification"

	"github.com/go-chi/chi/v5"
)

type conditionPayload struct {
	Kind       string            `json:"kind" validate:"required"`
	Parameters map[string]string `json:"parameters"`
}

type startMonitoringRequest struct {
	Conditions   []conditionPayload `json:"conditions" validate:"required,min=1,dive"`
	PollInterval string             `json:"poll_interval"`
}

type startMonitoringResponse struct {
	RequestID         string `json:"request_id"`
	EscrowID          string `json:"escrow_id"`
	WatchID           string `json:"watch_id"`
	AlreadyMonitoring bool   `json:"already_monitoring"`
}

type stopMonitoringResponse struct {
	RequestID string `json:"request_id"`
	EscrowID  string `json:"escrow_id"`
	WatchID   string `json:"watch_id,omitempty"`
	Stopped   bool   `json:"stopped"`
	Releasing bool   `json:"releasing,omitempty"`
}

type statusResponse struct {
	RequestID string `json:"request_id"`
	conditionwatch.Status
}

type handler struct {
	monitor conditionwatch.Service
}

// parseConditions converts the payload into conditions, rejecting any that
// could never be evaluated.
func parseConditions(payload []conditionPayload) ([]verification.VerifiableCondition, []string) {
	var (
		conditions = make([]verification.VerifiableCondition, 0, len(payload))
		problems   []string
	)

	for i, p := range payload {
		cond := verification.VerifiableCondition{
			Kind:       verification.Kind(p.Kind),
			Parameters: p.Parameters,
		}

		if err := cond.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("conditions[%d]: %v", i, err))
			continue
		}

		conditions = append(conditions, cond)
	}

	return conditions, problems
}

func (h *handler) startMonitoring(w http.ResponseWriter, r *http.Request) {
	escrowID := chi.URLParam(r, "escrow_id")

	var req startMonitoringRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_JSON", "invalid request body", err.Error())
		return
	}

	if err := validator.Validate(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body", err.Error())
		return
	}

	conditions, problems := parseConditions(req.Conditions)
	if len(problems) > 0 {
		writeError(w, r, http.StatusBadRequest, "INVALID_CONDITION", "one or more conditions cannot be evaluated", problems)
		return
	}

	var pollInterval time.Duration
	if req.PollInterval != "" {
		d, err := time.ParseDuration(req.PollInterval)
		if err != nil || d <= 0 {
			writeError(w, r, http.StatusBadRequest, "INVALID_POLL_INTERVAL", "poll_interval must be a positive duration", req.PollInterval)
			return
		}
		pollInterval = d
	}

	ack, err := h.monitor.StartMonitoring(r.Context(), escrowID, conditions, pollInterval)
	switch {
	case errors.Is(err, conditionwatch.ErrEmptyEscrowID), errors.Is(err, conditionwatch.ErrNoConditions):
		writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	case errors.Is(err, conditionwatch.ErrCapacityExceeded):
		writeError(w, r, http.StatusServiceUnavailable, "CAPACITY_EXCEEDED", err.Error(), nil)
		return
	case errors.Is(err, conditionwatch.ErrServiceClosed):
		writeError(w, r, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", err.Error(), nil)
		return
	case err != nil:
		logger.Error(r.Context(), "failed to start monitoring", "escrow.id", escrowID, "error", err)
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "failed to start monitoring", nil)
		return
	}

	writeJSON(w, http.StatusAccepted, startMonitoringResponse{
		RequestID:         requestID(r.Context()),
		EscrowID:          ack.EscrowID,
		WatchID:           ack.WatchID,
		AlreadyMonitoring: ack.AlreadyMonitoring,
	})
}

func (h *handler) stopMonitoring(w http.ResponseWriter, r *http.Request) {
	escrowID := chi.URLParam(r, "escrow_id")

	ack := h.monitor.StopMonitoring(r.Context(), escrowID)

	writeJSON(w, http.StatusOK, stopMonitoringResponse{
		RequestID: requestID(r.Context()),
		EscrowID:  ack.EscrowID,
		WatchID:   ack.WatchID,
		Stopped:   ack.Stopped,
		Releasing: ack.Releasing,
	})
}

func (h *handler) getStatus(w http.ResponseWriter, r *http.Request) {
	escrowID := chi.URLParam(r, "escrow_id")

	status, err := h.monitor.GetStatus(r.Context(), escrowID)
	switch {
	case errors.Is(err, conditionwatch.ErrWatchNotFound):
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "no watch found for escrow", escrowID)
		return
	case err != nil:
		logger.Error(r.Context(), "failed to get monitoring status", "escrow.id", escrowID, "error", err)
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "failed to get monitoring status", nil)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		RequestID: requestID(r.Context()),
		Status:    status,
	})
}
