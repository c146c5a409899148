package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"fixtrack/internal/domain/notification"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/goroutine"
	"fixtrack/internal/shared/logger"
)

// FanoutMessage describes one repair event to broadcast.
type FanoutMessage struct {
	Kind         notification.Kind
	Message      string
	RepairID     uint
	RepairNumber int
	TechnicianID *uint
}

// FanoutService turns one repair event into per-recipient notifications:
// every admin-capable user plus the assigned technician, deduplicated.
// In-app rows are written synchronously; web push runs in the background
// and never blocks the caller.
type FanoutService struct {
	notificationRepo notification.NotificationRepository
	subscriptionRepo notification.PushSubscriptionRepository
	userRepo         user.UserRepository
	pushSender       PushSender
	logger           logger.Interface
}

func NewFanoutService(
	notificationRepo notification.NotificationRepository,
	subscriptionRepo notification.PushSubscriptionRepository,
	userRepo user.UserRepository,
	pushSender PushSender,
	logger logger.Interface,
) *FanoutService {
	return &FanoutService{
		notificationRepo: notificationRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		pushSender:       pushSender,
		logger:           logger,
	}
}

func (s *FanoutService) Fanout(ctx context.Context, msg FanoutMessage) error {
	recipients, err := s.recipients(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to resolve recipients: %w", err)
	}
	if len(recipients) == 0 {
		return nil
	}

	repairID := msg.RepairID
	repairNum := msg.RepairNumber
	notifications := make([]*notification.Notification, 0, len(recipients))
	for _, userID := range recipients {
		n, err := notification.NewNotification(userID, msg.Kind, msg.Message, &repairID, &repairNum)
		if err != nil {
			s.logger.Warnw("skipping invalid notification", "user_id", userID, "error", err)
			continue
		}
		notifications = append(notifications, n)
	}

	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return fmt.Errorf("failed to store notifications: %w", err)
	}

	s.logger.Infow("notifications fanned out",
		"repair_number", msg.RepairNumber, "kind", msg.Kind, "recipients", len(recipients))

	s.pushInBackground(recipients, msg)
	return nil
}

// recipients is the deduplicated admin-capable set plus the assigned
// technician.
func (s *FanoutService) recipients(ctx context.Context, msg FanoutMessage) ([]uint, error) {
	admins, err := s.userRepo.ListAdminCapable(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var out []uint
	add := func(id uint) {
		if id == 0 || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}

	for _, a := range admins {
		add(a.ID())
	}
	if msg.TechnicianID != nil {
		add(*msg.TechnicianID)
	}
	return out, nil
}

type pushPayload struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	RepairID uint   `json:"repairId,omitempty"`
}

func (s *FanoutService) pushInBackground(recipients []uint, msg FanoutMessage) {
	if s.pushSender == nil {
		return
	}

	payload, err := json.Marshal(pushPayload{
		Title:    fmt.Sprintf("Repair #%d", msg.RepairNumber),
		Body:     msg.Message,
		RepairID: msg.RepairID,
	})
	if err != nil {
		s.logger.Warnw("failed to marshal push payload", "error", err)
		return
	}

	goroutine.SafeGo(s.logger, "notification-push", func() {
		ctx := context.Background()
		subs, err := s.subscriptionRepo.ListByUsers(ctx, recipients)
		if err != nil {
			s.logger.Warnw("failed to load push subscriptions", "error", err)
			return
		}
		for _, sub := range subs {
			if err := s.pushSender.Send(ctx, sub, payload); err != nil {
				if s.pushSender.IsGone(err) {
					if delErr := s.subscriptionRepo.DeleteByEndpoint(ctx, sub.Endpoint()); delErr != nil {
						s.logger.Warnw("failed to drop expired subscription", "error", delErr)
					}
					continue
				}
				s.logger.Warnw("push delivery failed", "user_id", sub.UserID(), "error", err)
			}
		}
	})
}
