package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardform/internal/models"
	"github.com/AlenaMolokova/cardform/internal/utils"
	"go.uber.org/zap"
)

type InputHandler struct {
	service   CardInputService
	validator RequestValidator
	log       *zap.Logger
}

func NewInputHandler(service CardInputService, validator RequestValidator, log *zap.Logger) *InputHandler {
	return &InputHandler{service: service, validator: validator, log: log}
}

func (h *InputHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.InputRequest
	if err := decodeRequest(w, r, h.validator, &req); err != nil {
		h.log.Debug("rejected input request", zap.Error(err))
		utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.service.OnInput(r.Context(), req)
	if err := utils.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.log.Error("failed to encode input response", zap.Error(err))
	}
}
