package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStream struct {
	mu     sync.Mutex
	events []BookingEvent
	err    error
}

func (s *stubStream) Publish(ctx context.Context, event BookingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *stubStream) Close() error { return nil }

type stubBroadcast struct {
	mu      sync.Mutex
	updates []SeatStatusUpdate
	err     error
}

func (b *stubBroadcast) Broadcast(ctx context.Context, eventID uuid.UUID, update SeatStatusUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.updates = append(b.updates, update)
	return nil
}

func sampleChange(transition Transition) StateChange {
	return StateChange{
		Transition: transition,
		BookingID:  uuid.New(),
		UserID:     uuid.New(),
		EventID:    uuid.New(),
		SeatNumber: "12",
	}
}

func TestFanout_PublishBothSinks(t *testing.T) {
	stream := &stubStream{}
	broadcast := &stubBroadcast{}
	f := NewFanout(stream, broadcast, nil)

	change := sampleChange(TransitionBooked)
	f.Publish(context.Background(), change)

	require.Len(t, stream.events, 1)
	assert.Equal(t, "BOOKED", stream.events[0].Type)
	assert.Equal(t, change.BookingID.String(), stream.events[0].BookingID)
	assert.Equal(t, "12", stream.events[0].SeatNumber)

	require.Len(t, broadcast.updates, 1)
	assert.Equal(t, "12", broadcast.updates[0].SeatNumber)
	assert.True(t, broadcast.updates[0].IsBooked)
}

func TestFanout_CancelledMapsToFreeSeat(t *testing.T) {
	stream := &stubStream{}
	broadcast := &stubBroadcast{}
	f := NewFanout(stream, broadcast, nil)

	f.Publish(context.Background(), sampleChange(TransitionCancelled))

	require.Len(t, stream.events, 1)
	assert.Equal(t, "CANCELLED", stream.events[0].Type)
	require.Len(t, broadcast.updates, 1)
	assert.False(t, broadcast.updates[0].IsBooked)
}

func TestFanout_StreamFailureStillBroadcasts(t *testing.T) {
	stream := &stubStream{err: errors.New("broker unreachable")}
	broadcast := &stubBroadcast{}
	f := NewFanout(stream, broadcast, nil)

	f.Publish(context.Background(), sampleChange(TransitionBooked))

	assert.Empty(t, stream.events)
	assert.Len(t, broadcast.updates, 1)
}

func TestFanout_BroadcastFailureStillStreams(t *testing.T) {
	stream := &stubStream{}
	broadcast := &stubBroadcast{err: errors.New("redis down")}
	f := NewFanout(stream, broadcast, nil)

	f.Publish(context.Background(), sampleChange(TransitionBooked))

	assert.Len(t, stream.events, 1)
	assert.Empty(t, broadcast.updates)
}

func TestFanout_NilSinksAreSkipped(t *testing.T) {
	f := NewFanout(nil, nil, nil)
	assert.NotPanics(t, func() {
		f.Publish(context.Background(), sampleChange(TransitionBooked))
	})
}
