package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	CreateBatch(ctx context.Context, ns []*Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, id uint, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type PushSubscriptionRepository interface {
	// Upsert stores the subscription, replacing keys when the endpoint
	// is already registered.
	Upsert(ctx context.Context, sub *PushSubscription) error
	ListByUsers(ctx context.Context, userIDs []uint) ([]*PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}
