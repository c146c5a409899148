package mappers

import (
	"fixtrack/internal/domain/notification"
	"fixtrack/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between notifications and persistence models.
type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) *notification.Notification

	SubscriptionToModel(s *notification.PushSubscription) *models.PushSubscriptionModel
	SubscriptionToDomain(model *models.PushSubscriptionModel) *notification.PushSubscription
}

// NotificationMapperImpl is the concrete implementation of NotificationMapper.
type NotificationMapperImpl struct{}

// NewNotificationMapper creates a new NotificationMapper.
func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Kind:      string(n.Kind()),
		Message:   n.Message(),
		RepairID:  n.RepairID(),
		RepairNum: n.RepairNum(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) *notification.Notification {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notification.Kind(model.Kind),
		model.Message,
		model.RepairID,
		model.RepairNum,
		model.IsRead,
		millisToTime(model.CreatedAt),
	)
}

func (m *NotificationMapperImpl) SubscriptionToModel(s *notification.PushSubscription) *models.PushSubscriptionModel {
	return &models.PushSubscriptionModel{
		ID:        s.ID(),
		UserID:    s.UserID(),
		Endpoint:  s.Endpoint(),
		P256dh:    s.P256dh(),
		Auth:      s.Auth(),
		CreatedAt: s.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) SubscriptionToDomain(model *models.PushSubscriptionModel) *notification.PushSubscription {
	return notification.ReconstructPushSubscription(
		model.ID,
		model.UserID,
		model.Endpoint,
		model.P256dh,
		model.Auth,
		millisToTime(model.CreatedAt),
	)
}
