package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/amansinghakash/legacy-battery/internal/checkout"
	"github.com/amansinghakash/legacy-battery/internal/domain"
)

type CheckoutStateResponse struct {
	Step          string                 `json:"step"`
	Shipping      domain.ShippingDetails `json:"shipping"`
	PaymentMethod string                 `json:"payment_method"`
	Totals        domain.OrderTotals     `json:"totals"`
	Order         *domain.Order          `json:"order,omitempty"`
}

type ShippingDraftRequest struct {
	domain.ShippingDetails
	PaymentMethod string `json:"payment_method"`
}

// CheckoutHandler drives the checkout flow over HTTP. Step transitions that
// the flow forbids come back as 409; an incomplete shipping form as 422.
type CheckoutHandler struct {
	checkout *checkout.Service
	timeout  time.Duration
}

func NewCheckoutHandler(svc *checkout.Service, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc, timeout: timeout}
}

func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	state, err := h.checkout.Begin(ctx, sessionIDFromContext(ctx))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toStateResponse(state))
}

func (h *CheckoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	state, err := h.checkout.State(ctx, sessionIDFromContext(ctx))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateResponse(state))
}

// SaveShipping stores the shipping form and payment method as typed so far.
// Drafts are never validated; validation happens on the forward transition.
func (h *CheckoutHandler) SaveShipping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ShippingDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	sessionID := sessionIDFromContext(ctx)
	if err := h.checkout.SaveDraft(ctx, sessionID, req.ShippingDetails, domain.PaymentMethod(req.PaymentMethod)); err != nil {
		respondCheckoutError(w, err)
		return
	}

	state, err := h.checkout.State(ctx, sessionID)
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateResponse(state))
}

func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	state, err := h.checkout.Advance(ctx, sessionIDFromContext(ctx))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateResponse(state))
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	state, err := h.checkout.Back(ctx, sessionIDFromContext(ctx))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateResponse(state))
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	order, err := h.checkout.PlaceOrder(ctx, sessionIDFromContext(ctx))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.checkout.Abandon(ctx, sessionIDFromContext(ctx))
	w.WriteHeader(http.StatusNoContent)
}

func respondCheckoutError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Code:    "validation_failed",
			Details: strings.Join(vErr.MissingFields, ", "),
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", "transition not allowed from the current step")
	case errors.Is(err, checkout.ErrNotStarted):
		respondError(w, http.StatusNotFound, "checkout_not_started", "no checkout in progress for this session")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

func toStateResponse(state *checkout.State) CheckoutStateResponse {
	return CheckoutStateResponse{
		Step:          state.Step.String(),
		Shipping:      state.Shipping,
		PaymentMethod: string(state.Payment),
		Totals:        state.Totals,
		Order:         state.Order,
	}
}
