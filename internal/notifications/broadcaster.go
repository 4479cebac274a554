package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Broadcaster pushes seat status updates to the live viewers of one event.
// Delivery is fire-and-forget; offline subscribers miss updates.
type Broadcaster interface {
	Broadcast(ctx context.Context, eventID uuid.UUID, update SeatStatusUpdate) error
}

// Subscriber is the read side of the broadcast channel, consumed by the
// HTTP live-seat feed
type Subscriber interface {
	Subscribe(ctx context.Context, eventID uuid.UUID) (<-chan SeatStatusUpdate, func(), error)
}

// seatChannel names the per-event pub/sub channel
func seatChannel(eventID uuid.UUID) string {
	return "seats." + eventID.String()
}

// RedisBroadcaster implements Broadcaster and Subscriber over Redis pub/sub
type RedisBroadcaster struct {
	client *redis.Client
}

// NewRedisBroadcaster creates a broadcaster backed by the given Redis client
func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

// Broadcast publishes one seat status update to the event's channel
func (b *RedisBroadcaster) Broadcast(ctx context.Context, eventID uuid.UUID, update SeatStatusUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal seat status update: %w", err)
	}
	if err := b.client.Publish(ctx, seatChannel(eventID), payload).Err(); err != nil {
		return fmt.Errorf("failed to broadcast seat status: %w", err)
	}
	return nil
}

// Subscribe returns a channel of updates for one event plus a cancel func.
// The channel is closed when ctx ends or cancel is called.
func (b *RedisBroadcaster) Subscribe(ctx context.Context, eventID uuid.UUID) (<-chan SeatStatusUpdate, func(), error) {
	pubsub := b.client.Subscribe(ctx, seatChannel(eventID))

	// Force the subscription to be established before returning
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to seat channel: %w", err)
	}

	out := make(chan SeatStatusUpdate, 16)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var update SeatStatusUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				continue
			}
			select {
			case out <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { pubsub.Close() }
	return out, cancel, nil
}
