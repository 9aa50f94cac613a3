package show_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heartlight/show"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGroup_WaitsForEveryTask(t *testing.T) {
	g := show.NewGroup(context.Background(), quiet())

	var ran int32
	for i := 0; i < 3; i++ {
		g.Go("worker", func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(3), atomic.LoadInt32(&ran))
}

func TestGroup_FirstFailureCancelsSiblings(t *testing.T) {
	g := show.NewGroup(context.Background(), quiet())
	boom := errors.New("boom")

	g.Go("flaky", func(context.Context) error {
		time.Sleep(5 * time.Millisecond)
		return boom
	})
	var sibling int32
	g.Go("steady", func(ctx context.Context) error {
		<-ctx.Done()
		atomic.StoreInt32(&sibling, 1)
		return ctx.Err()
	})

	err := g.Wait()
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "task flaky")
	assert.Equal(t, int32(1), atomic.LoadInt32(&sibling), "sibling should have been cancelled")
}

func TestGroup_FirstErrorWins(t *testing.T) {
	g := show.NewGroup(context.Background(), quiet())
	fast := errors.New("fast")
	slow := errors.New("slow")

	g.Go("fast", func(context.Context) error { return fast })
	g.Go("slow", func(context.Context) error {
		time.Sleep(50 * time.Millisecond)
		return slow
	})

	err := g.Wait()
	require.ErrorIs(t, err, fast)
	assert.NotErrorIs(t, err, slow)
}

func TestGroup_StopIsClean(t *testing.T) {
	g := show.NewGroup(context.Background(), quiet())
	g.Go("patient", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	require.NoError(t, g.Stop())
}

func TestGroup_ParentCancelStopsTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := show.NewGroup(ctx, quiet())
	g.Go("patient", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	cancel()
	require.NoError(t, g.Wait())
}

func TestGroup_NilParentAndLogger(t *testing.T) {
	var missing context.Context
	g := show.NewGroup(missing, nil)
	g.Go("noop", func(context.Context) error { return nil })
	require.NoError(t, g.Wait())
}
