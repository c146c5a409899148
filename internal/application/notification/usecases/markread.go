package usecases

import (
	"context"

	"fixtrack/internal/domain/notification"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

// MarkReadUseCase marks one notification read, scoped to the owner so a
// user cannot touch someone else's inbox.
type MarkReadUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewMarkReadUseCase(repo notification.NotificationRepository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, notificationID, userID uint) error {
	if notificationID == 0 || userID == 0 {
		return errors.NewValidationError("notification ID and user ID are required")
	}

	if err := uc.repo.MarkRead(ctx, notificationID, userID); err != nil {
		uc.logger.Warnw("failed to mark notification read",
			"notification_id", notificationID, "user_id", userID, "error", err)
		return errors.NewNotFoundError("notification not found")
	}
	return nil
}

type MarkAllReadUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewMarkAllReadUseCase(repo notification.NotificationRepository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, userID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if err := uc.repo.MarkAllRead(ctx, userID); err != nil {
		uc.logger.Errorw("failed to mark all notifications read", "user_id", userID, "error", err)
		return errors.NewInternalError("failed to mark notifications read")
	}
	return nil
}

// ClearNotificationsUseCase deletes every notification in the caller's
// inbox.
type ClearNotificationsUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewClearNotificationsUseCase(repo notification.NotificationRepository, logger logger.Interface) *ClearNotificationsUseCase {
	return &ClearNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ClearNotificationsUseCase) Execute(ctx context.Context, userID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if err := uc.repo.DeleteByUser(ctx, userID); err != nil {
		uc.logger.Errorw("failed to clear notifications", "user_id", userID, "error", err)
		return errors.NewInternalError("failed to clear notifications")
	}
	return nil
}
