package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/amansinghakash/legacy-battery/internal/catalog"
	"github.com/amansinghakash/legacy-battery/internal/domain"
)

type ProductResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Category      string              `json:"category"`
	Capacity      string              `json:"capacity"`
	Voltage       string              `json:"voltage"`
	Price         float64             `json:"price"`
	OriginalPrice float64             `json:"original_price,omitempty"`
	Description   string              `json:"description"`
	Features      []string            `json:"features"`
	Specs         domain.ProductSpecs `json:"specs"`
	Applications  []string            `json:"applications"`
	InStock       bool                `json:"in_stock"`
	IsNew         bool                `json:"is_new,omitempty"`
	Discount      int                 `json:"discount,omitempty"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

type FiltersResponse struct {
	Categories []string `json:"categories"`
	Capacities []string `json:"capacities"`
	Voltages   []string `json:"voltages"`
}

type UpcomingProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Capacity    string `json:"capacity"`
	Voltage     string `json:"voltage"`
	Description string `json:"description"`
	LaunchDate  string `json:"launch_date"`
}

type OfferResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Discount    int      `json:"discount,omitempty"`
	ValidUntil  string   `json:"valid_until"`
	ProductIDs  []string `json:"product_ids"`
	BannerColor string   `json:"banner_color"`
}

// CatalogHandler serves the product catalog, selector lists, offers and
// upcoming launches.
type CatalogHandler struct {
	repo    catalog.ProductRepository
	timeout time.Duration
}

func NewCatalogHandler(repo catalog.ProductRepository, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{repo: repo, timeout: timeout}
}

// ListProducts returns the catalog, narrowed by the category, capacity and
// voltage query parameters. An omitted parameter means "All".
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.repo.GetAllProducts(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}

	filtered := catalog.FilterProducts(products,
		queryOr(r, "category", catalog.SelectorAll),
		queryOr(r, "capacity", catalog.SelectorAll),
		queryOr(r, "voltage", catalog.SelectorAll),
	)

	resp := ProductsResponse{Products: make([]ProductResponse, 0, len(filtered)), Count: len(filtered)}
	for _, p := range filtered {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	product, err := h.repo.GetProduct(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "product_not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(product))
}

// GetFilters returns the selector values for each filter dimension.
func (h *CatalogHandler) GetFilters(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, FiltersResponse{
		Categories: catalog.Categories(),
		Capacities: catalog.Capacities(),
		Voltages:   catalog.Voltages(),
	})
}

func (h *CatalogHandler) ListOffers(w http.ResponseWriter, _ *http.Request) {
	offers := catalog.Offers()
	resp := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, OfferResponse{
			ID:          o.ID,
			Title:       o.Title,
			Description: o.Description,
			Discount:    o.Discount,
			ValidUntil:  o.ValidUntil,
			ProductIDs:  o.ProductIDs,
			BannerColor: o.BannerColor,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) ListUpcoming(w http.ResponseWriter, _ *http.Request) {
	upcoming := catalog.UpcomingProducts()
	resp := make([]UpcomingProductResponse, 0, len(upcoming))
	for _, u := range upcoming {
		resp = append(resp, UpcomingProductResponse{
			ID:          u.ID,
			Name:        u.Name,
			Category:    u.Category.String(),
			Capacity:    u.Capacity,
			Voltage:     u.Voltage,
			Description: u.Description,
			LaunchDate:  u.LaunchDate,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category.String(),
		Capacity:      p.Capacity,
		Voltage:       p.Voltage,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Description:   p.Description,
		Features:      p.Features,
		Specs:         p.Specs,
		Applications:  p.Applications,
		InStock:       p.InStock,
		IsNew:         p.IsNew,
		Discount:      p.Discount,
	}
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}
