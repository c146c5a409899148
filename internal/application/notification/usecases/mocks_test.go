package usecases

import (
	"context"

	"fixtrack/internal/domain/notification"
	"fixtrack/internal/domain/shared/events"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/logger"
)

type mockNotificationRepository struct {
	CreateFunc       func(ctx context.Context, n *notification.Notification) error
	CreateBatchFunc  func(ctx context.Context, ns []*notification.Notification) error
	GetByIDFunc      func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserFunc   func(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error)
	CountUnreadFunc  func(ctx context.Context, userID uint) (int64, error)
	MarkReadFunc     func(ctx context.Context, id uint, userID uint) error
	MarkAllReadFunc  func(ctx context.Context, userID uint) error
	DeleteByUserFunc func(ctx context.Context, userID uint) error
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, ns)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id uint, userID uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id, userID)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return nil
}

func (m *mockNotificationRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	return nil
}

type mockPushSubscriptionRepository struct {
	UpsertFunc           func(ctx context.Context, sub *notification.PushSubscription) error
	ListByUsersFunc      func(ctx context.Context, userIDs []uint) ([]*notification.PushSubscription, error)
	DeleteByEndpointFunc func(ctx context.Context, endpoint string) error
}

func (m *mockPushSubscriptionRepository) Upsert(ctx context.Context, sub *notification.PushSubscription) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, sub)
	}
	return nil
}

func (m *mockPushSubscriptionRepository) ListByUsers(ctx context.Context, userIDs []uint) ([]*notification.PushSubscription, error) {
	if m.ListByUsersFunc != nil {
		return m.ListByUsersFunc(ctx, userIDs)
	}
	return nil, nil
}

func (m *mockPushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if m.DeleteByEndpointFunc != nil {
		return m.DeleteByEndpointFunc(ctx, endpoint)
	}
	return nil
}

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListByRoleFunc       func(ctx context.Context, role user.Role) ([]*user.User, error)
	ListAdminCapableFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAdminCapable(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminCapableFunc != nil {
		return m.ListAdminCapableFunc(ctx)
	}
	return nil, nil
}

type mockPushSender struct {
	SendFunc   func(ctx context.Context, sub *notification.PushSubscription, payload []byte) error
	IsGoneFunc func(err error) bool
}

func (m *mockPushSender) Send(ctx context.Context, sub *notification.PushSubscription, payload []byte) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, sub, payload)
	}
	return nil
}

func (m *mockPushSender) IsGone(err error) bool {
	if m.IsGoneFunc != nil {
		return m.IsGoneFunc(err)
	}
	return false
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockDispatcher struct {
	SubscribeFunc  func(eventType string, handler events.EventHandler) error
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evs []events.DomainEvent) error
}

func (m *mockDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(eventType, handler)
	}
	return nil
}

func (m *mockDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockDispatcher) PublishAll(evs []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evs)
	}
	return nil
}

func (m *mockDispatcher) Start() error { return nil }
func (m *mockDispatcher) Stop() error  { return nil }
