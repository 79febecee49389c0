package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bee-store-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(svc))
		pr.Post("/", createProductHandler(svc))
	})

	r.Post("/api/seed", seedProductsHandler(svc, log))
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	InStock     *bool   `json:"in_stock"` // opcional, default true
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

type listProductsResponse struct {
	Products []productResponse `json:"products"`
}

type createProductResponse struct {
	ID string `json:"id"`
}

type seedResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// listProductsHandler godoc
// @Summary Listar productos
// @Description Devuelve todos los productos del catálogo, sin filtros ni paginación, con ids en forma string.
// @Tags catalog
// @Produce json
// @Success 200 {object} listProductsResponse
// @Failure 500 {object} errorResponse
// @Router /api/products [get]
func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}

		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProductResponse(p))
		}

		writeJSON(w, http.StatusOK, listProductsResponse{Products: out})
	}
}

// createProductHandler godoc
// @Summary Crear producto
// @Description Valida el payload (name/species/description no vacíos, price >= 0) y persiste el documento. in_stock default true.
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body createProductRequest true "Producto a crear"
// @Success 201 {object} createProductResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/products [post]
func createProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			Description: req.Description,
			Price:       req.Price,
			Image:       req.Image,
			InStock:     req.InStock,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createProductResponse{ID: p.ID})
	}
}

// seedProductsHandler godoc
// @Summary Sembrar catálogo por defecto
// @Description Si el catálogo está vacío inserta los 4 productos canónicos. Idempotente: con count > 0 no escribe nada y reporta el count actual. Los fallos por item se loguean y no se propagan.
// @Tags catalog
// @Produce json
// @Success 200 {object} seedResponse
// @Failure 500 {object} errorResponse
// @Router /api/seed [post]
func seedProductsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Seed(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}

		if res.AlreadySeeded {
			writeJSON(w, http.StatusOK, seedResponse{
				Message: "Products already seeded",
				Count:   res.Count,
			})
			return
		}

		// Los fallos por item se absorben acá: quedan en el log, no en la respuesta.
		for _, item := range res.Items {
			if item.Err != nil {
				log.Warn("seed insert failed", map[string]any{
					"product": item.Name,
					"error":   item.Err.Error(),
				})
			}
		}

		writeJSON(w, http.StatusOK, seedResponse{
			Message: "Seeded products",
			Count:   res.Count,
		})
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON/writeError están duplicados a propósito en catalog y orders
// (mismo criterio que no compartir helpers entre módulos demasiado pronto).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnavailable) {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
