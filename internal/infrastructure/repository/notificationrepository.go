package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fixtrack/internal/domain/notification"
	"fixtrack/internal/infrastructure/persistence/mappers"
	"fixtrack/internal/infrastructure/persistence/models"
	db "fixtrack/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	modelList := make([]models.NotificationModel, 0, len(ns))
	for _, n := range ns {
		modelList = append(modelList, *r.mapper.ToModel(n))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	for i, n := range ns {
		if err := n.SetID(modelList[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	var modelList []models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	ns := make([]*notification.Notification, 0, len(modelList))
	for i := range modelList {
		ns = append(ns, r.mapper.ToDomain(&modelList[i]))
	}
	return ns, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead is scoped by user so one user cannot acknowledge another's
// notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uint, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteByUser(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Delete(&models.NotificationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

type PushSubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewPushSubscriptionRepository(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

// Upsert replaces keys and owner when the endpoint is already
// registered, so a browser re-subscribing under a new login takes the
// subscription over.
func (r *PushSubscriptionRepository) Upsert(ctx context.Context, sub *notification.PushSubscription) error {
	model := r.mapper.SubscriptionToModel(sub)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert push subscription: %w", err)
	}

	return nil
}

func (r *PushSubscriptionRepository) ListByUsers(ctx context.Context, userIDs []uint) ([]*notification.PushSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var modelList []models.PushSubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id IN ?", userIDs).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}

	subs := make([]*notification.PushSubscription, 0, len(modelList))
	for i := range modelList {
		subs = append(subs, r.mapper.SubscriptionToDomain(&modelList[i]))
	}
	return subs, nil
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("endpoint = ?", endpoint).
		Delete(&models.PushSubscriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete push subscription: %w", err)
	}
	return nil
}
