package router

import (
	"context"
	"encoding/json"
	"net/http"

	"bee-store-api/internal/config"
)

// StoreDiagnostics es lo que /test necesita saber del backend de storage.
// Lo implementan los cuatro adapters (memory, mongo, postgres, unavailable).
type StoreDiagnostics interface {
	Kind() string
	DatabaseName() string
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

const maxCollectionsReported = 10

type messageResponse struct {
	Message string `json:"message"`
}

type testResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// rootHandler godoc
// @Summary Estado del API
// @Tags status
// @Produce json
// @Success 200 {object} messageResponse
// @Router / [get]
func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Bee Store API is running"})
	}
}

// helloHandler godoc
// @Summary Saludo
// @Tags status
// @Produce json
// @Success 200 {object} messageResponse
// @Router /api/hello [get]
func helloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to the Bee Store"})
	}
}

// testHandler godoc
// @Summary Diagnóstico de backend y base
// @Description Reporta si la base está configurada y accesible, más hasta 10 nombres de colección. Nunca falla: los errores se reportan en el body.
// @Tags status
// @Produce json
// @Success 200 {object} testResponse
// @Router /test [get]
func testHandler(cfg config.Config, diag StoreDiagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := testResponse{
			Backend:          "running",
			Database:         "not available",
			DatabaseURL:      setOrNot(cfg.DatabaseURL != ""),
			DatabaseName:     setOrNot(cfg.DatabaseName != ""),
			ConnectionStatus: "not connected",
			Collections:      []string{},
		}

		if diag.Kind() != "unavailable" {
			resp.Database = "available"
			resp.ConnectionStatus = "connected"

			if err := diag.Ping(r.Context()); err != nil {
				resp.Database = "connected but error: " + err.Error()
			} else if cols, err := diag.Collections(r.Context()); err != nil {
				resp.Database = "connected but error: " + err.Error()
			} else {
				if len(cols) > maxCollectionsReported {
					cols = cols[:maxCollectionsReported]
				}
				resp.Collections = cols
				resp.Database = "connected and working"
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
