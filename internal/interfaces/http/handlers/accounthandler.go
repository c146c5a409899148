package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixtrack/internal/application/accounting/usecases"
	"fixtrack/internal/shared/logger"
	"fixtrack/internal/shared/utils"
)

type AccountHandler struct {
	summaryUC      *usecases.GetSummaryUseCase
	partsReportUC  *usecases.GetPartsReportUseCase
	transactionsUC *usecases.TransactionsUseCase
	logger         logger.Interface
}

func NewAccountHandler(
	summaryUC *usecases.GetSummaryUseCase,
	partsReportUC *usecases.GetPartsReportUseCase,
	transactionsUC *usecases.TransactionsUseCase,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		summaryUC:      summaryUC,
		partsReportUC:  partsReportUC,
		transactionsUC: transactionsUC,
		logger:         logger,
	}
}

type TransactionRequest struct {
	Direction   string      `json:"direction" binding:"required"`
	Amount      interface{} `json:"amount" binding:"required"`
	Description string      `json:"description" binding:"required"`
	OccurredAt  string      `json:"occurredAt"`
}

// GetSummary handles GET /api/accounts/summary
func (h *AccountHandler) GetSummary(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.summaryUC.Execute(c.Request.Context(), usecases.GetSummaryQuery{
		ActorID:   actorID,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetPartsReport handles GET /api/accounts/parts
func (h *AccountHandler) GetPartsReport(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.partsReportUC.Execute(c.Request.Context(), usecases.GetPartsReportQuery{
		ActorID:   actorID,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListTransactions handles GET /api/accounts/transactions
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.transactionsUC.List(c.Request.Context(), usecases.ListTransactionsQuery{
		ActorID:   actorID,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// CreateTransaction handles POST /api/accounts/transactions
func (h *AccountHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create transaction", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "direction, amount and description are required")
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.transactionsUC.Create(c.Request.Context(), usecases.CreateTransactionCommand{
		ActorID:     actorID,
		Direction:   req.Direction,
		Amount:      utils.CoerceDecimal(req.Amount),
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Transaction recorded successfully")
}

// UpdateTransaction handles PATCH /api/accounts/transactions/:id
func (h *AccountHandler) UpdateTransaction(c *gin.Context) {
	transactionID, err := utils.ParseIDParam(c, "id", "transaction")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update transaction", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "direction, amount and description are required")
		return
	}

	result, err := h.transactionsUC.Update(c.Request.Context(), usecases.UpdateTransactionCommand{
		ActorID:       actorID,
		TransactionID: transactionID,
		Direction:     req.Direction,
		Amount:        utils.CoerceDecimal(req.Amount),
		Description:   req.Description,
		OccurredAt:    req.OccurredAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Transaction updated successfully")
}

// DeleteTransaction handles DELETE /api/accounts/transactions/:id
func (h *AccountHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := utils.ParseIDParam(c, "id", "transaction")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.transactionsUC.Delete(c.Request.Context(), actorID, transactionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
