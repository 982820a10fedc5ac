package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"molstd/pkg/contracts"
	apperrors "molstd/pkg/errors"
	httputil "molstd/pkg/http"
	"molstd/pkg/logger"
	"molstd/pkg/middleware"
)

type StandardizerHandler struct {
	service contracts.Standardizer
	log     *logger.Logger
}

func NewStandardizerHandler(service contracts.Standardizer, log *logger.Logger) *StandardizerHandler {
	return &StandardizerHandler{
		service: service,
		log:     log,
	}
}

func (h *StandardizerHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/standardizations", h.List)
	router.GET("/api/v1/standardizations/:name", h.Get)
	router.POST("/api/v1/standardize", h.Standardize)
}

func (h *StandardizerHandler) List(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	steps := h.service.List()
	httputil.WriteList(w, steps, len(steps))
}

func (h *StandardizerHandler) Get(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	step, err := h.service.Get(ps.ByName("name"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, step)
}

// Standardize answers 200 for both accepted and rejected molecules; the
// outcome tells them apart.
func (h *StandardizerHandler) Standardize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req contracts.StandardizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.WriteError(w, apperrors.PayloadTooLarge(tooLarge.Limit))
			return
		}
		h.log.Warn("Invalid standardize request body",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	out, err := h.service.Standardize(r.Context(), req.Molecule, req.Steps)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, contracts.NewStandardizeResult(out))
}
