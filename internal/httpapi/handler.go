// Package httpapi exposes the converter over a small JSON HTTP surface, the
// same engine the MCP server and the CLI use.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/wattwise/wattwise/internal/config"
	"github.com/wattwise/wattwise/internal/convert"
	"github.com/wattwise/wattwise/internal/logger"
	"github.com/wattwise/wattwise/internal/query"
)

// Handler routes the API endpoints.
type Handler struct {
	interp *query.Interpreter
}

// NewHandler creates the API handler. A nil interpreter gets the default
// configuration.
func NewHandler(interp *query.Interpreter) *Handler {
	if interp == nil {
		interp = query.New()
	}
	return &Handler{interp: interp}
}

// convertRequest is the structured conversion body.
type convertRequest struct {
	OriginalWattage int `json:"original_wattage"`
	TargetWattage   int `json:"target_wattage"`
	OriginalMinutes int `json:"original_minutes"`
	OriginalSeconds int `json:"original_seconds"`
}

// queryRequest is the natural-language conversion body.
type queryRequest struct {
	Query string `json:"query"`
}

// queryResponse mirrors the natural-language tool payload.
type queryResponse struct {
	convert.Result
	OriginalQuery    string `json:"original_query"`
	ParsedParameters struct {
		OriginalWattage int `json:"original_wattage"`
		TargetWattage   int `json:"target_wattage"`
		OriginalMinutes int `json:"original_minutes"`
		OriginalSeconds int `json:"original_seconds"`
	} `json:"parsed_parameters"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Mux builds the route table.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", h.handleConvert)
	mux.HandleFunc("/api/query", h.handleQuery)
	mux.HandleFunc("/healthz", h.handleHealth)
	return mux
}

// NewHTTPServer wires the handler into an http.Server using the configured
// address and timeouts, with server errors routed into the file logger.
func NewHTTPServer(cfg *config.Config, h *Handler) *http.Server {
	timeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      h.Mux(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	if l := logger.GetDefault(); l != nil {
		srv.ErrorLog = log.New(l.GetWriter(logger.ERROR), "", 0)
	}
	return srv
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := convert.Convert(req.OriginalWattage, req.TargetWattage, req.OriginalMinutes, req.OriginalSeconds)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query cannot be empty")
		return
	}

	parsed, err := h.interp.Interpret(req.Query)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := convert.Convert(parsed.OriginalWattage, parsed.TargetWattage, parsed.Minutes, parsed.Seconds)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := queryResponse{Result: *result, OriginalQuery: req.Query}
	resp.ParsedParameters.OriginalWattage = parsed.OriginalWattage
	resp.ParsedParameters.TargetWattage = parsed.TargetWattage
	resp.ParsedParameters.OriginalMinutes = parsed.Minutes
	resp.ParsedParameters.OriginalSeconds = parsed.Seconds

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
