//go:build unit

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/worker"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweeper_RunsOnStartAndOnEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockSweepCommands(ctrl)

	var calls atomic.Int32
	cmds.EXPECT().SweepExpired(gomock.Any(), 15*time.Minute).
		DoAndReturn(func(context.Context, time.Duration) commands.SweepResult {
			calls.Add(1)
			return commands.SweepResult{}
		}).MinTimes(3)

	s := worker.NewSweeper(cmds, 15*time.Minute, 10*time.Millisecond)
	require.NoError(t, s.Start(context.Background()))

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no sweeps after Stop")
}

func TestSweeper_FailedCycleDoesNotStopTheLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockSweepCommands(ctrl)

	var calls atomic.Int32
	cmds.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Duration) commands.SweepResult {
			if calls.Add(1) == 1 {
				return commands.SweepResult{Err: assert.AnError}
			}
			return commands.SweepResult{TicketsCancelled: 1}
		}).MinTimes(2)

	s := worker.NewSweeper(cmds, time.Minute, 10*time.Millisecond)
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestSweeper_StartTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockSweepCommands(ctrl)
	cmds.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return(commands.SweepResult{}).AnyTimes()

	s := worker.NewSweeper(cmds, time.Minute, time.Hour)
	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
