package usecases

import (
	"context"

	"fixtrack/internal/domain/notification"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type SubscribePushCommand struct {
	UserID   uint
	Endpoint string
	P256dh   string
	Auth     string
}

// SubscribePushUseCase registers a browser push endpoint. Re-registering
// an existing endpoint refreshes its keys.
type SubscribePushUseCase struct {
	repo   notification.PushSubscriptionRepository
	logger logger.Interface
}

func NewSubscribePushUseCase(repo notification.PushSubscriptionRepository, logger logger.Interface) *SubscribePushUseCase {
	return &SubscribePushUseCase{repo: repo, logger: logger}
}

func (uc *SubscribePushUseCase) Execute(ctx context.Context, cmd SubscribePushCommand) error {
	sub, err := notification.NewPushSubscription(cmd.UserID, cmd.Endpoint, cmd.P256dh, cmd.Auth)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Upsert(ctx, sub); err != nil {
		uc.logger.Errorw("failed to store push subscription", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to store push subscription")
	}

	uc.logger.Infow("push subscription registered", "user_id", cmd.UserID)
	return nil
}

type UnsubscribePushUseCase struct {
	repo   notification.PushSubscriptionRepository
	logger logger.Interface
}

func NewUnsubscribePushUseCase(repo notification.PushSubscriptionRepository, logger logger.Interface) *UnsubscribePushUseCase {
	return &UnsubscribePushUseCase{repo: repo, logger: logger}
}

func (uc *UnsubscribePushUseCase) Execute(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return errors.NewValidationError("endpoint is required")
	}
	if err := uc.repo.DeleteByEndpoint(ctx, endpoint); err != nil {
		uc.logger.Warnw("failed to delete push subscription", "error", err)
		return errors.NewInternalError("failed to delete push subscription")
	}
	return nil
}
