package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/orders", createOrderHandler(svc))
}

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []orderItemRequest `json:"items"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// createOrderHandler godoc
// @Summary Crear orden
// @Description Valida que items no sea vacío y que cada product_id exista en el catálogo antes del único insert. Id malformado y producto ausente son errores distintos.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Orden a crear"
// @Success 201 {object} createOrderResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func createOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		items := make([]ItemInput, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, ItemInput{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			})
		}

		o, err := svc.Create(r.Context(), CreateInput{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Items:         items,
		})
		if err != nil {
			var invalidID *InvalidProductIDError
			var notFound *ProductNotFoundError
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "order requires a non-empty items list with quantity >= 1")
			case errors.As(err, &invalidID), errors.As(err, &notFound):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrUnavailable):
				writeError(w, http.StatusInternalServerError, "Database not configured")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, createOrderResponse{ID: o.ID})
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Duplicado a propósito con catalog (ver nota en catalog/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
