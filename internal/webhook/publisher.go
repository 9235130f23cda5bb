package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/chennai_live_alerts/internal/models"
)

const (
	webhookQueueKey = "chennai_live_alerts:webhook_events"
)

// Типы событий вебхука
const (
	EventAlertAcknowledged = "alert.acknowledged"
	EventAlertReported     = "alert.reported"
	EventModeChanged       = "sync.mode_changed"
	EventReportsFlushed    = "reports.flushed"
)

// AlertEvent - структура для данных вебхука
type AlertEvent struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"`
	Alert          *models.Alert `json:"alert,omitempty"`
	IsUsingBackend bool          `json:"is_using_backend"`
	PendingReports int           `json:"pending_reports"`
	Timestamp      time.Time     `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient redis.Cmdable
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client redis.Cmdable) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
