// Package push delivers web push notifications through the browser
// push services referenced by stored subscriptions.
package push

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"fixtrack/internal/domain/notification"
	sharedConfig "fixtrack/internal/shared/config"
)

// errSubscriptionGone marks endpoints the push service no longer serves.
var errSubscriptionGone = errors.New("push subscription gone")

// WebPushSender sends notifications using the VAPID key pair from
// configuration. An unconfigured key pair disables delivery without
// failing callers.
type WebPushSender struct {
	cfg     sharedConfig.PushConfig
	timeout time.Duration
}

func NewWebPushSender(cfg sharedConfig.PushConfig) *WebPushSender {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebPushSender{cfg: cfg, timeout: timeout}
}

func (s *WebPushSender) Send(ctx context.Context, sub *notification.PushSubscription, payload []byte) error {
	if s.cfg.VAPIDPrivateKey == "" || s.cfg.VAPIDPublicKey == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	target := &webpush.Subscription{
		Endpoint: sub.Endpoint(),
		Keys: webpush.Keys{
			P256dh: sub.P256dh(),
			Auth:   sub.Auth(),
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, target, &webpush.Options{
		Subscriber:      s.cfg.Subject,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             60,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: %s", errSubscriptionGone, sub.Endpoint())
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}

// IsGone reports whether the error means the endpoint should be dropped.
func (s *WebPushSender) IsGone(err error) bool {
	return errors.Is(err, errSubscriptionGone)
}
