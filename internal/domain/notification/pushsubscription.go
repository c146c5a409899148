package notification

import (
	"fmt"
	"time"
)

// PushSubscription is a browser Web Push endpoint registered by a user.
// The endpoint URL is unique: re-registering the same endpoint replaces
// the stored keys instead of creating a duplicate.
type PushSubscription struct {
	id        uint
	userID    uint
	endpoint  string
	p256dh    string
	auth      string
	createdAt time.Time
}

func NewPushSubscription(userID uint, endpoint, p256dh, auth string) (*PushSubscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if p256dh == "" || auth == "" {
		return nil, fmt.Errorf("subscription keys are required")
	}

	return &PushSubscription{
		userID:    userID,
		endpoint:  endpoint,
		p256dh:    p256dh,
		auth:      auth,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructPushSubscription(id, userID uint, endpoint, p256dh, auth string, createdAt time.Time) *PushSubscription {
	return &PushSubscription{
		id:        id,
		userID:    userID,
		endpoint:  endpoint,
		p256dh:    p256dh,
		auth:      auth,
		createdAt: createdAt,
	}
}

func (s *PushSubscription) ID() uint             { return s.id }
func (s *PushSubscription) UserID() uint         { return s.userID }
func (s *PushSubscription) Endpoint() string     { return s.endpoint }
func (s *PushSubscription) P256dh() string       { return s.p256dh }
func (s *PushSubscription) Auth() string         { return s.auth }
func (s *PushSubscription) CreatedAt() time.Time { return s.createdAt }

func (s *PushSubscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}
