package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const notificationQueueKey = "sos_notification_events"

// Event kinds emitted by the dispatch core.
const (
	EventUnitsDispatched = "units_dispatched"
	EventReportResolved  = "report_resolved"
)

// Event is the notification payload emitted when units are dispatched to a
// report or a report is resolved. The downstream receiver owns the actual
// delivery to reporters and responders.
type Event struct {
	Kind           string    `json:"kind"`
	ReportID       string    `json:"report_id"`
	Status         string    `json:"status"`
	RescueUnits    []string  `json:"rescue_units"`
	VolunteerUnits []string  `json:"volunteer_units"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher enqueues notification events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher pushes events onto a Redis list drained by the Worker.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// Publish serializes the event and appends it to the notification queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue notification event: %w", err)
	}
	return nil
}
