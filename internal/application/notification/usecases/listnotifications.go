package usecases

import (
	"context"

	"fixtrack/internal/domain/notification"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type NotificationDTO struct {
	ID           uint   `json:"id"`
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	RepairID     *uint  `json:"repairId,omitempty"`
	RepairNumber *int   `json:"repairNumber,omitempty"`
	Read         bool   `json:"read"`
	CreatedAt    string `json:"createdAt"`
}

type ListNotificationsQuery struct {
	UserID uint
	Limit  int
}

type ListNotificationsResult struct {
	Notifications []NotificationDTO
	UnreadCount   int64
}

type ListNotificationsUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	limit := query.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	items, err := uc.repo.ListByUser(ctx, query.UserID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	unread, err := uc.repo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	out := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationDTO{
			ID:           n.ID(),
			Kind:         string(n.Kind()),
			Message:      n.Message(),
			RepairID:     n.RepairID(),
			RepairNumber: n.RepairNum(),
			Read:         n.IsRead(),
			CreatedAt:    n.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return &ListNotificationsResult{Notifications: out, UnreadCount: unread}, nil
}
