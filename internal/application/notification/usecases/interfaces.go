package usecases

import (
	"context"

	"fixtrack/internal/domain/notification"
)

// PushSender delivers one web push message to a subscription endpoint.
type PushSender interface {
	Send(ctx context.Context, sub *notification.PushSubscription, payload []byte) error
	// IsGone reports whether the error means the endpoint is expired
	// and the subscription should be dropped.
	IsGone(err error) bool
}
