// Package notification hands engine events to the external notification
// system. Events are pushed as JSON onto a Redis list the dispatcher service
// consumes; when Redis is unavailable the event degrades to a structured log
// line. Delivery is fire-and-forget: publishing happens on its own goroutine
// with its own deadline, strictly after the storage commit, so a slow or
// failing queue can never block or fail the swipe path.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Event kinds on the queue.
const (
	KindMatchCreated       = "match_created"
	KindMatchStatusChanged = "match_status_changed"
)

const publishTimeout = 3 * time.Second

// envelope is the wire form consumed by the external dispatcher.
type envelope struct {
	Kind       string      `json:"kind"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type QueueDispatcher struct {
	client   *redis.Client
	queueKey string
}

// NewQueueDispatcher creates the Redis-list event publisher. client may be
// nil; events then go to the log only.
func NewQueueDispatcher(client *redis.Client, queueKey string) domain.EventDispatcher {
	return &QueueDispatcher{client: client, queueKey: queueKey}
}

// MatchCreated publishes a match-created event.
func (d *QueueDispatcher) MatchCreated(_ context.Context, event domain.MatchCreatedEvent) {
	d.publish(KindMatchCreated, event)
}

// MatchStatusChanged publishes a status-changed event.
func (d *QueueDispatcher) MatchStatusChanged(_ context.Context, event domain.MatchStatusChangedEvent) {
	d.publish(KindMatchStatusChanged, event)
}

// publish is detached from the request: the caller's context is deliberately
// not used so request completion never waits on the queue.
func (d *QueueDispatcher) publish(kind string, payload interface{}) {
	body, err := json.Marshal(envelope{
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		logger.Log.Error("event marshal failed", "kind", kind, "error", err)
		return
	}

	if d.client == nil {
		logger.Log.Info("event emitted (no queue configured)", "kind", kind, "event", string(body))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := d.client.RPush(ctx, d.queueKey, body).Err(); err != nil {
			// Lost event, not a lost match: the dispatcher service can
			// reconcile from the match store.
			logger.Log.Error("event publish failed", "kind", kind, "event", string(body), "error", err)
		}
	}()
}
