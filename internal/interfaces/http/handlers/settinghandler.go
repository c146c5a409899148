package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixtrack/internal/application/setting/usecases"
	"fixtrack/internal/shared/logger"
	"fixtrack/internal/shared/utils"
)

type SettingHandler struct {
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	getSettingsUC *usecases.GetSettingsUseCase,
	updateSettingsUC *usecases.UpdateSettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

type UpdateSettingsRequest struct {
	DefaultTechCommissionPct *int `json:"defaultTechCommissionPct" binding:"required"`
}

// GetSettings handles GET /api/settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSettingsUC.Execute(c.Request.Context(), actorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateSettings handles PATCH /api/settings
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "defaultTechCommissionPct is required")
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		ActorID:                  actorID,
		DefaultTechCommissionPct: *req.DefaultTechCommissionPct,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Settings updated successfully")
}
