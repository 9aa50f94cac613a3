package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/heartlight/fixture"
)

// Ramp fades the fixtures from one value block to another over
// duration, emitting an interpolated frame every step and finishing
// with a frame holding the exact end values. A non-positive duration
// emits the final frame immediately. Cancellation is honoured between
// steps; the final frame is only sent if the ramp ran to completion.
func Ramp(ctx context.Context, s Sink, set fixture.ChannelSet, ids []int, from, to [][]float64, duration, step time.Duration) error {
	if s == nil {
		return ErrNilSink
	}
	if step <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadStep, step)
	}
	if err := checkShape(set, ids, from); err != nil {
		return err
	}
	if err := checkShape(set, ids, to); err != nil {
		return err
	}

	rows := set.Count()
	values := make([][]float64, rows)
	for i := range values {
		values[i] = make([]float64, len(ids))
	}

	start := time.Now()
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for {
		elapsed := time.Since(start)
		if elapsed >= duration {
			break
		}
		ratio := float64(elapsed) / float64(duration)
		for i := range values {
			for j := range values[i] {
				values[i][j] = lerp(from[i][j], to[i][j], ratio)
			}
		}
		if err := s.Send(ctx, Frame{Set: set, Fixtures: ids, Values: values}); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return s.Send(ctx, Frame{Set: set, Fixtures: ids, Values: to})
}

// Pulse flashes the fixtures' intensity: one frame, a wait, the second
// frame. offFirst starts from the off value (blackout before the hit),
// otherwise the on value leads.
func Pulse(ctx context.Context, s Sink, ids []int, on, off float64, wait time.Duration, offFirst bool) error {
	if s == nil {
		return ErrNilSink
	}
	if len(ids) == 0 {
		return ErrNoFixtures
	}

	first, second := on, off
	if offFirst {
		first, second = off, on
	}

	if err := s.Send(ctx, intensityFrame(ids, first)); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
	}
	return s.Send(ctx, intensityFrame(ids, second))
}

func intensityFrame(ids []int, value float64) Frame {
	row := make([]float64, len(ids))
	for i := range row {
		row[i] = value
	}
	return Frame{Set: fixture.Intensity, Fixtures: ids, Values: [][]float64{row}}
}

// lerp interpolates between a and b, clamping the ratio at 1 so late
// ticks never overshoot the target.
func lerp(a, b, ratio float64) float64 {
	if ratio > 1 {
		ratio = 1
	}
	return a + (b-a)*ratio
}

func checkShape(set fixture.ChannelSet, ids []int, values [][]float64) error {
	rows := set.Count()
	if rows == 0 {
		return fmt.Errorf("%w: %d", fixture.ErrChannelSet, set)
	}
	if len(ids) == 0 {
		return ErrNoFixtures
	}
	if len(values) != rows {
		return fmt.Errorf("%w: set %s wants %d channel rows, got %d",
			ErrShapeMismatch, set, rows, len(values))
	}
	for i, row := range values {
		if len(row) != len(ids) {
			return fmt.Errorf("%w: channel %d has %d values, want %d fixtures",
				ErrShapeMismatch, i, len(row), len(ids))
		}
	}
	return nil
}
