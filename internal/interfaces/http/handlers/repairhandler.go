package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixtrack/internal/application/repair/usecases"
	"fixtrack/internal/shared/logger"
	"fixtrack/internal/shared/utils"
)

type RepairHandler struct {
	createRepairUC *usecases.CreateRepairUseCase
	updateRepairUC *usecases.UpdateRepairUseCase
	deleteRepairUC *usecases.DeleteRepairUseCase
	getRepairUC    *usecases.GetRepairUseCase
	listRepairsUC  *usecases.ListRepairsUseCase
	getRepairLogUC *usecases.GetRepairLogUseCase
	logger         logger.Interface
}

func NewRepairHandler(
	createRepairUC *usecases.CreateRepairUseCase,
	updateRepairUC *usecases.UpdateRepairUseCase,
	deleteRepairUC *usecases.DeleteRepairUseCase,
	getRepairUC *usecases.GetRepairUseCase,
	listRepairsUC *usecases.ListRepairsUseCase,
	getRepairLogUC *usecases.GetRepairLogUseCase,
	logger logger.Interface,
) *RepairHandler {
	return &RepairHandler{
		createRepairUC: createRepairUC,
		updateRepairUC: updateRepairUC,
		deleteRepairUC: deleteRepairUC,
		getRepairUC:    getRepairUC,
		listRepairsUC:  listRepairsUC,
		getRepairLogUC: getRepairLogUC,
		logger:         logger,
	}
}

// CreateRepair handles POST /api/repairs
func (h *RepairHandler) CreateRepair(c *gin.Context) {
	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create repair", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "customer name, device type and issue are required")
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createRepairUC.Execute(c.Request.Context(), req.ToCommand(actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Repair created successfully")
}

// ListRepairs handles GET /api/repairs
func (h *RepairHandler) ListRepairs(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListRepairsQuery{
		ActorID:   actorID,
		Query:     c.Query("q"),
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      parseIntQuery(c, "page"),
		PageSize:  parseIntQuery(c, "pageSize"),
	}

	if raw := c.Query("technicianId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid technician ID")
			return
		}
		techID := uint(id)
		query.TechnicianID = &techID
	}

	result, err := h.listRepairsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"repairs":  result.Repairs,
		"total":    result.Total,
		"page":     result.Page,
		"pageSize": result.PageSize,
	})
}

// GetRepair handles GET /api/repairs/:id
func (h *RepairHandler) GetRepair(c *gin.Context) {
	repairID, err := utils.ParseIDParam(c, "id", "repair")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRepairUC.Execute(c.Request.Context(), usecases.GetRepairQuery{
		RepairID: repairID,
		ActorID:  actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateRepair handles PATCH /api/repairs/:id
func (h *RepairHandler) UpdateRepair(c *gin.Context) {
	repairID, err := utils.ParseIDParam(c, "id", "repair")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update repair", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateRepairUC.Execute(c.Request.Context(), req.ToCommand(repairID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Repair updated successfully")
}

// DeleteRepair handles DELETE /api/repairs/:id
func (h *RepairHandler) DeleteRepair(c *gin.Context) {
	repairID, err := utils.ParseIDParam(c, "id", "repair")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRepairUC.Execute(c.Request.Context(), usecases.DeleteRepairCommand{
		RepairID: repairID,
		ActorID:  actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetRepairLog handles GET /api/repairs/:id/log
func (h *RepairHandler) GetRepairLog(c *gin.Context) {
	repairID, err := utils.ParseIDParam(c, "id", "repair")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRepairLogUC.Execute(c.Request.Context(), usecases.GetRepairLogQuery{
		RepairID: repairID,
		ActorID:  actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func parseIntQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
