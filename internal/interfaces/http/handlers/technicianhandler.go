package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountingUC "fixtrack/internal/application/accounting/usecases"
	"fixtrack/internal/application/user/usecases"
	"fixtrack/internal/shared/logger"
	"fixtrack/internal/shared/utils"
)

type TechnicianHandler struct {
	createTechnicianUC *usecases.CreateTechnicianUseCase
	updateTechnicianUC *usecases.UpdateTechnicianUseCase
	listTechniciansUC  *usecases.ListTechniciansUseCase
	getTechnicianUC    *usecases.GetTechnicianUseCase
	deleteTechnicianUC *usecases.DeleteTechnicianUseCase
	profileUC          *accountingUC.GetTechnicianProfileUseCase
	logger             logger.Interface
}

func NewTechnicianHandler(
	createTechnicianUC *usecases.CreateTechnicianUseCase,
	updateTechnicianUC *usecases.UpdateTechnicianUseCase,
	listTechniciansUC *usecases.ListTechniciansUseCase,
	getTechnicianUC *usecases.GetTechnicianUseCase,
	deleteTechnicianUC *usecases.DeleteTechnicianUseCase,
	profileUC *accountingUC.GetTechnicianProfileUseCase,
	logger logger.Interface,
) *TechnicianHandler {
	return &TechnicianHandler{
		createTechnicianUC: createTechnicianUC,
		updateTechnicianUC: updateTechnicianUC,
		listTechniciansUC:  listTechniciansUC,
		getTechnicianUC:    getTechnicianUC,
		deleteTechnicianUC: deleteTechnicianUC,
		profileUC:          profileUC,
		logger:             logger,
	}
}

type CreateTechnicianRequest struct {
	Username      string   `json:"username" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Password      string   `json:"password" binding:"required"`
	CommissionPct *int     `json:"commissionPct"`
	Capabilities  []string `json:"capabilities"`
}

type UpdateTechnicianRequest struct {
	Name            *string  `json:"name"`
	Username        *string  `json:"username"`
	Password        *string  `json:"password"`
	CommissionPct   *int     `json:"commissionPct"`
	ClearCommission bool     `json:"clearCommission"`
	Capabilities    []string `json:"capabilities"`
}

// CreateTechnician handles POST /api/technicians
func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create technician", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "username, name and password are required")
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTechnicianUC.Execute(c.Request.Context(), usecases.CreateTechnicianCommand{
		ActorID:       actorID,
		Username:      req.Username,
		Name:          req.Name,
		Password:      req.Password,
		CommissionPct: req.CommissionPct,
		Capabilities:  req.Capabilities,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Technician created successfully")
}

// ListTechnicians handles GET /api/technicians
func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTechniciansUC.Execute(c.Request.Context(), actorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetTechnician handles GET /api/technicians/:id
func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id", "technician")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTechnicianUC.Execute(c.Request.Context(), actorID, technicianID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateTechnician handles PATCH /api/technicians/:id
func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id", "technician")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update technician", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTechnicianUC.Execute(c.Request.Context(), usecases.UpdateTechnicianCommand{
		ActorID:         actorID,
		TechnicianID:    technicianID,
		Name:            req.Name,
		Username:        req.Username,
		Password:        req.Password,
		CommissionPct:   req.CommissionPct,
		ClearCommission: req.ClearCommission,
		Capabilities:    req.Capabilities,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Technician updated successfully")
}

// DeleteTechnician handles DELETE /api/technicians/:id
func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id", "technician")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTechnicianUC.Execute(c.Request.Context(), actorID, technicianID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetTechnicianProfile handles GET /api/technicians/:id/profile
func (h *TechnicianHandler) GetTechnicianProfile(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id", "technician")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.profileUC.Execute(c.Request.Context(), accountingUC.GetTechnicianProfileQuery{
		TechnicianID: technicianID,
		ActorID:      actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
