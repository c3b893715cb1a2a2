package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/amansinghakash/legacy-battery/internal/contact"
	"github.com/amansinghakash/legacy-battery/internal/domain"
)

type ContactAckResponse struct {
	Message string `json:"message"`
}

type ContactHandler struct {
	svc     *contact.Service
	timeout time.Duration
}

func NewContactHandler(svc *contact.Service, timeout time.Duration) *ContactHandler {
	return &ContactHandler{svc: svc, timeout: timeout}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var msg contact.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	if err := h.svc.Submit(ctx, msg); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Code:    "validation_failed",
				Details: strings.Join(vErr.MissingFields, ", "),
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to submit message")
		return
	}

	respondJSON(w, http.StatusOK, ContactAckResponse{
		Message: "Message sent successfully! We'll get back to you soon.",
	})
}
