package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardform/internal/models"
	"github.com/AlenaMolokova/cardform/internal/utils"
	"go.uber.org/zap"
)

// ValidateHandler answers the blur/submit check. A rejected card is still a
// 200: the verdict is in the body.
type ValidateHandler struct {
	service   CardInputService
	validator RequestValidator
	log       *zap.Logger
}

func NewValidateHandler(service CardInputService, validator RequestValidator, log *zap.Logger) *ValidateHandler {
	return &ValidateHandler{service: service, validator: validator, log: log}
}

func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := decodeRequest(w, r, h.validator, &req); err != nil {
		h.log.Debug("rejected validate request", zap.Error(err))
		utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.service.OnBlur(r.Context(), req.Value)
	if err := utils.WriteJSON(w, http.StatusOK, res); err != nil {
		h.log.Error("failed to encode validation result", zap.Error(err))
	}
}
