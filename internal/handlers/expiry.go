package handlers

import (
	"errors"
	"net/http"

	"github.com/AlenaMolokova/cardform/internal/models"
	"github.com/AlenaMolokova/cardform/internal/usecase"
	"github.com/AlenaMolokova/cardform/internal/utils"
	"go.uber.org/zap"
)

type ExpiryHandler struct {
	service   CardInputService
	validator RequestValidator
	log       *zap.Logger
}

func NewExpiryHandler(service CardInputService, validator RequestValidator, log *zap.Logger) *ExpiryHandler {
	return &ExpiryHandler{service: service, validator: validator, log: log}
}

func (h *ExpiryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.ExpiryRequest
	if err := decodeRequest(w, r, h.validator, &req); err != nil {
		h.log.Debug("rejected expiry request", zap.Error(err))
		utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.OnExpiryInput(r.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidExpiry) {
			utils.WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.log.Error("expiry check failed", zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.log.Error("failed to encode expiry response", zap.Error(err))
	}
}
