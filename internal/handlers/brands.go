package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardform/internal/utils"
	"go.uber.org/zap"
)

type BrandsHandler struct {
	service CardInputService
	log     *zap.Logger
}

func NewBrandsHandler(service CardInputService, log *zap.Logger) *BrandsHandler {
	return &BrandsHandler{service: service, log: log}
}

func (h *BrandsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteJSON(w, http.StatusOK, h.service.Brands(r.Context())); err != nil {
		h.log.Error("failed to encode brands", zap.Error(err))
	}
}
