package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "molstd/pkg/http"
	"molstd/pkg/standardization"
)

type HealthResponse struct {
	Status           string `json:"status"`
	Standardizations int    `json:"standardizations,omitempty"`
}

type HealthHandler struct {
	registry *standardization.Registry
}

func NewHealthHandler(registry *standardization.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready reports ready once the registry holds at least one step.
func (h *HealthHandler) Ready(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if h.registry == nil || h.registry.Len() == 0 {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:           "ready",
		Standardizations: h.registry.Len(),
	})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
