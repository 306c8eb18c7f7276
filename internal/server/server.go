package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/export"
	"github.com/pathlight/insights-engine/internal/insight"
	"github.com/pathlight/insights-engine/internal/repository"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Deps carries the wired services. Repo and Exporter are nil when the process
// runs without a database; the affected routes answer 503.
type Deps struct {
	Orchestrator *insight.Orchestrator
	Repo         repository.InsightRepository
	Exporter     *export.Service
	Logger       *slog.Logger
}

func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestID)

	r.Post("/insights/{kind}", handleGenerate(deps))
	r.Get("/insights/roi/records", handleListROI(deps))
	r.Get("/insights/roi/export", handleExportROI(deps))
	r.Get("/health", handleHealth(deps))

	return r
}

// requestID tags every request with a correlation id, honoring one supplied
// by the caller.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(common.WithRequestID(r.Context(), rid)))
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func httpError(w http.ResponseWriter, code int, message string, details string) {
	body := map[string]any{"error": message}
	if details != "" {
		body["details"] = details
	}
	writeJSON(w, code, body)
}
