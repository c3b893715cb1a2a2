package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/amansinghakash/legacy-battery/internal/cart"
	"github.com/amansinghakash/legacy-battery/internal/catalog"
	"github.com/amansinghakash/legacy-battery/internal/domain"
)

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Capacity  string  `json:"capacity"`
	Voltage   string  `json:"voltage"`
	Quantity  int     `json:"quantity"`
}

type CartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []CartItemResponse `json:"items"`
	Count     int                `json:"count"`
	Total     float64            `json:"total"`
}

// CartHandler exposes the session cart. Product details on a line item are
// resolved through the catalog at add time and frozen on the cart.
type CartHandler struct {
	carts   *cart.Service
	catalog catalog.ProductRepository
	timeout time.Duration
}

func NewCartHandler(carts *cart.Service, catalogRepo catalog.ProductRepository, timeout time.Duration) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalogRepo, timeout: timeout}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.respondCart(ctx, w, http.StatusOK)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "missing_product_id", "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "product_not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	if err := h.carts.AddItem(ctx, sessionIDFromContext(ctx), product, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add item")
		return
	}

	h.respondCart(ctx, w, http.StatusCreated)
}

// UpdateQuantity sets a line item's quantity. Zero or less removes the item.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	productID := chi.URLParam(r, "productID")
	if err := h.carts.UpdateQuantity(ctx, sessionIDFromContext(ctx), productID, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
		return
	}

	h.respondCart(ctx, w, http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "productID")
	if err := h.carts.RemoveItem(ctx, sessionIDFromContext(ctx), productID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove item")
		return
	}

	h.respondCart(ctx, w, http.StatusOK)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.carts.ClearCart(ctx, sessionIDFromContext(ctx)); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) respondCart(ctx context.Context, w http.ResponseWriter, status int) {
	c, err := h.carts.GetCart(ctx, sessionIDFromContext(ctx))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	respondJSON(w, status, toCartResponse(c))
}

func toCartResponse(c *domain.Cart) CartResponse {
	resp := CartResponse{
		SessionID: c.SessionID,
		Items:     make([]CartItemResponse, 0, len(c.Items)),
		Count:     c.Count(),
		Total:     c.Total(),
	}
	for _, item := range c.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Capacity:  item.Capacity,
			Voltage:   item.Voltage,
			Quantity:  item.Quantity,
		})
	}
	return resp
}
