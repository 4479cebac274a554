package notifications

import (
	"context"

	"bookly/pkg/logger"
)

// Fanout announces committed booking state transitions to the durable stream
// and the live broadcast channel. It must only be invoked after the unit of
// work that produced the transition has committed; sink failures are logged
// and never propagated back to the caller, so an already-committed booking
// can never be undone by a notification problem.
type Fanout interface {
	Publish(ctx context.Context, change StateChange)
}

type fanout struct {
	stream    StreamProducer
	broadcast Broadcaster
	log       *logger.Logger
}

// NewFanout creates the dual-sink fan-out. Either sink may be nil, in which
// case it is skipped.
func NewFanout(stream StreamProducer, broadcast Broadcaster, log *logger.Logger) Fanout {
	if log == nil {
		log = logger.GetDefault()
	}
	return &fanout{
		stream:    stream,
		broadcast: broadcast,
		log:       log,
	}
}

func (f *fanout) Publish(ctx context.Context, change StateChange) {
	if f.stream != nil {
		if err := f.stream.Publish(ctx, NewBookingEvent(change)); err != nil {
			f.log.ErrorWithContext(ctx, "failed to publish booking event", err, map[string]interface{}{
				"booking_id": change.BookingID.String(),
				"transition": string(change.Transition),
			})
		}
	}

	if f.broadcast != nil {
		if err := f.broadcast.Broadcast(ctx, change.EventID, NewSeatStatusUpdate(change)); err != nil {
			f.log.ErrorWithContext(ctx, "failed to broadcast seat status", err, map[string]interface{}{
				"event_id":    change.EventID.String(),
				"seat_number": change.SeatNumber,
			})
		}
	}
}
