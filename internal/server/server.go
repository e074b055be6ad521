// Package server exposes the planners over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/iwvelando/goal-planner/internal/config"
	"github.com/iwvelando/goal-planner/internal/plan"
	"github.com/iwvelando/goal-planner/pkg/constants"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, cfg config.ServerConfig, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := cfg.BodySizeBytes()
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	router := mux.NewRouter()
	router.Use(requestIDMiddleware, h.accessLogMiddleware)

	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/calc", h.handleCalc).Methods(http.MethodPost)
	router.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})

	return c.Handler(router)
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleCalc(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalc"

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req plan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	result, warnings, err := plan.Calculate(req)
	if err != nil {
		var validationErr *plan.ValidationError
		if errors.As(err, &validationErr) {
			h.respondError(w, r, http.StatusBadRequest, validationErr.Error(), op)
			return
		}
		h.respondError(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}

	logger := h.logger.With(
		zap.String("op", op),
		zap.String("requestId", RequestIDFromContext(r.Context())),
	)
	for _, warning := range warnings {
		logger.Warn("input advisory: " + warning)
	}
	logger.Info("plan computed",
		zap.String("goalType", string(result.GoalType())),
		zap.String("investmentType", string(result.AccumulationPlan().InvestmentType())),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.String("requestId", RequestIDFromContext(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"detail": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
