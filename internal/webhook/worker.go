package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/floodguard/sos_dispatch_system/internal/config"
)

// Worker drains the notification queue and delivers events to the configured
// webhook endpoint. Delivery is retried with exponential backoff; a report
// that has already been dispatched or resolved is never rolled back because
// its notification could not be delivered.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start launches the queue-draining goroutine. It runs until ctx is canceled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP with timeout 0 blocks until an event arrives.
				result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop notification event from Redis")
					if !w.wait(ctx, w.cfg.WebhookTimeout) {
						return
					}
					continue
				}

				// result[0] is the queue key, result[1] the payload.
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification event")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_kind": event.Kind,
		"report_id":  event.ReportID,
	})
	log.Debug("Delivering notification event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping notification delivery.")
		return
	}

	delay := w.cfg.WebhookBaseDelay
	for attempt := 0; attempt < w.cfg.WebhookMaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Error("Failed to build notification request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if w.cfg.WebhookSecret != "" {
			req.Header.Set("X-Webhook-Signature", signPayload(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Notification delivery failed, retrying in %v", delay)
			if !w.wait(ctx, delay) {
				return
			}
			delay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Notification delivered.")
			return
		}
		log.Warnf("Notification delivery returned status %d, retrying in %v", resp.StatusCode, delay)
		if !w.wait(ctx, delay) {
			return
		}
		delay *= 2
	}

	log.Errorf("Giving up on notification delivery after %d attempts", w.cfg.WebhookMaxRetries)
}

// wait blocks for the back-off duration or until ctx is canceled. Returns
// false when the wait was cut short by cancellation.
func (w *Worker) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func signPayload(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
