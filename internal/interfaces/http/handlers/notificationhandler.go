package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixtrack/internal/application/notification/usecases"
	sharedConfig "fixtrack/internal/shared/config"
	"fixtrack/internal/shared/logger"
	"fixtrack/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        *usecases.ListNotificationsUseCase
	markReadUC    *usecases.MarkReadUseCase
	markAllReadUC *usecases.MarkAllReadUseCase
	clearUC       *usecases.ClearNotificationsUseCase
	subscribeUC   *usecases.SubscribePushUseCase
	unsubscribeUC *usecases.UnsubscribePushUseCase
	pushCfg       sharedConfig.PushConfig
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC *usecases.ListNotificationsUseCase,
	markReadUC *usecases.MarkReadUseCase,
	markAllReadUC *usecases.MarkAllReadUseCase,
	clearUC *usecases.ClearNotificationsUseCase,
	subscribeUC *usecases.SubscribePushUseCase,
	unsubscribeUC *usecases.UnsubscribePushUseCase,
	pushCfg sharedConfig.PushConfig,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		clearUC:       clearUC,
		subscribeUC:   subscribeUC,
		unsubscribeUC: unsubscribeUC,
		pushCfg:       pushCfg,
		logger:        logger,
	}
}

type SubscribePushRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

type UnsubscribePushRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID: actorID,
		Limit:  parseIntQuery(c, "limit"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"notifications": result.Notifications,
		"unreadCount":   result.UnreadCount,
	})
}

// MarkRead handles POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), notificationID, actorID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Notification marked as read")
}

// MarkAllRead handles POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markAllReadUC.Execute(c.Request.Context(), actorID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "All notifications marked as read")
}

// ClearNotifications handles DELETE /api/notifications
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.clearUC.Execute(c.Request.Context(), actorID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetPushKey handles GET /api/push/key
func (h *NotificationHandler) GetPushKey(c *gin.Context) {
	if h.pushCfg.VAPIDPublicKey == "" {
		utils.ErrorResponse(c, http.StatusNotFound, "push notifications are not configured")
		return
	}
	utils.OKResponse(c, gin.H{"publicKey": h.pushCfg.VAPIDPublicKey})
}

// SubscribePush handles POST /api/push/subscribe
func (h *NotificationHandler) SubscribePush(c *gin.Context) {
	var req SubscribePushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid push subscription body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "endpoint and keys are required")
		return
	}

	actorID, err := utils.ActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.subscribeUC.Execute(c.Request.Context(), usecases.SubscribePushCommand{
		UserID:   actorID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Push subscription registered")
}

// UnsubscribePush handles POST /api/push/unsubscribe
func (h *NotificationHandler) UnsubscribePush(c *gin.Context) {
	var req UnsubscribePushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "endpoint is required")
		return
	}

	if _, err := utils.ActorID(c); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.unsubscribeUC.Execute(c.Request.Context(), req.Endpoint); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
