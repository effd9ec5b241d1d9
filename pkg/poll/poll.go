// Package poll re-checks observable state a fixed number of times at a fixed interval.
//
// A Poller is a verification gate, not a retry wrapper: a check that is not yet
// satisfied is simply checked again, while a check that returns an error aborts the loop.
package poll

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otrace "go.opentelemetry.io/otel/trace"

	"github.com/nais/boshprobe/pkg/telemetry"
)

// Check reports whether the awaited condition holds.
type Check func(ctx context.Context) (bool, error)

type Poller struct {
	Attempts int
	Interval time.Duration
	Clock    Clock
}

func New(attempts int, interval time.Duration) Poller {
	return Poller{
		Attempts: attempts,
		Interval: interval,
	}
}

// WithClock returns a copy of the poller that waits on the given clock.
func (p Poller) WithClock(clock Clock) Poller {
	p.Clock = clock
	return p
}

// Bound is the total time spent waiting when every attempt fails.
func (p Poller) Bound() time.Duration {
	return time.Duration(p.Attempts) * p.Interval
}

// Until waits Interval before each attempt and runs check up to Attempts times.
// It returns true on the first satisfied check and false when attempts are exhausted.
// An error from check, or a done context, ends polling with that error.
func (p Poller) Until(ctx context.Context, name string, check Check) (bool, error) {
	ctx, span := telemetry.Tracer().Start(ctx, name, otrace.WithAttributes(
		attribute.Int("poll.attempts", p.Attempts),
		attribute.String("poll.interval", p.Interval.String()),
	))
	defer span.End()

	clock := p.Clock
	if clock == nil {
		clock = Real()
	}

	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-clock.After(p.Interval):
		}

		ok, err := check(ctx)
		span.SetAttributes(attribute.Int("poll.attempt", attempt))
		if err != nil {
			span.RecordError(err)
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}
