package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/insight"
)

type generateRequest struct {
	Profile    map[string]any `json:"profile"`
	Parameters map[string]any `json:"parameters"`
}

func handleGenerate(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		kind, ok := constants.ParseKind(chi.URLParam(r, "kind"))
		if !ok {
			httpError(w, http.StatusNotFound, "unknown insight kind", "supported kinds: "+joinKinds())
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}

		env, err := deps.Orchestrator.Generate(r.Context(), insight.Request{
			Kind:       kind,
			Profile:    req.Profile,
			Parameters: req.Parameters,
		})
		if err != nil {
			writeGenerateError(w, deps, err)
			return
		}

		writeJSON(w, http.StatusOK, env.Body())
	}
}

func writeGenerateError(w http.ResponseWriter, deps Deps, err error) {
	switch {
	case errors.Is(err, common.ErrMissingParameter):
		httpError(w, http.StatusBadRequest, "missing required parameter", err.Error())
	case errors.Is(err, common.ErrUnknownKind):
		httpError(w, http.StatusNotFound, "unknown insight kind", "supported kinds: "+joinKinds())
	case errors.Is(err, common.ErrUpstreamUnavailable):
		httpError(w, http.StatusServiceUnavailable, "completion service unavailable",
			"configure an API key for the completion provider and retry")
	default:
		deps.Logger.Error("insights.generate.failed", "error", err)
		httpError(w, http.StatusInternalServerError, "internal error", "")
	}
}

func handleListROI(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Repo == nil {
			httpError(w, http.StatusServiceUnavailable, "persistence disabled", "set DB_URL to enable stored analyses")
			return
		}

		var userID *string
		if id := r.URL.Query().Get("userId"); id != "" {
			userID = &id
		}

		recs, err := deps.Repo.ListInsights(r.Context(), string(constants.KindROIAnalysis), userID)
		if err != nil {
			deps.Logger.Error("insights.roi.list_failed", "error", err)
			httpError(w, http.StatusInternalServerError, "failed to list analyses", "")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"records": recs, "count": len(recs)})
	}
}

func handleExportROI(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Exporter == nil {
			httpError(w, http.StatusServiceUnavailable, "persistence disabled", "set DB_URL to enable exports")
			return
		}

		var userID *string
		if id := r.URL.Query().Get("userId"); id != "" {
			userID = &id
		}

		data, err := deps.Exporter.ExportROIXLSX(r.Context(), userID)
		if err != nil {
			deps.Logger.Error("insights.roi.export_failed", "error", err)
			httpError(w, http.StatusInternalServerError, "failed to export analyses", "")
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="roi-analyses.xlsx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":      "ok",
			"kinds":       constants.KindsAsStringSlice(),
			"persistence": deps.Repo != nil,
		})
	}
}

func joinKinds() string {
	return strings.Join(constants.KindsAsStringSlice(), ", ")
}
