package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
)

var errAlreadyRunning = errs.New("sweeper already running")

// Sweeper runs SweepExpired once on start and then every interval. A failed
// cycle is simply retried on the next tick.
type Sweeper struct {
	cmds     commands.SweepCommands
	grace    time.Duration
	interval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewSweeper(cmds commands.SweepCommands, grace, interval time.Duration) *Sweeper {
	return &Sweeper{cmds: cmds, grace: grace, interval: interval}
}

// Start returns immediately; the loop outlives ctx's caller and stops on Stop.
func (s *Sweeper) Start(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true

	slog.Info("expiry sweeper started", "grace", s.grace.String(), "interval", s.interval.String())
	s.wg.Add(1)
	go s.loop(ctx)
	return nil
}

func (s *Sweeper) Stop(context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	slog.Info("expiry sweeper stopped")
	return nil
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweepOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

// SweepExpired logs its own failures.
func (s *Sweeper) sweepOnce(ctx context.Context) {
	s.cmds.SweepExpired(ctx, s.grace)
}
