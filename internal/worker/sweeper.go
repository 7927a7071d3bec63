// Package worker hosts the background expiry sweep: coupons whose end date
// has passed are removed on a fixed interval so stale inventory never
// lingers between admin-triggered sweeps.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"coupon-market/internal/pkg/config"
	"coupon-market/internal/usecase/commands"
)

type Sweeper struct {
	cmds     commands.CouponCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(cmds commands.CouponCommands, cfg config.Config, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		cmds:     cmds,
		interval: cfg.Sweep.Interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. One sweep runs immediately so an instance
// that was down past several intervals catches up on startup.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.cmds.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expired coupon sweep failed", "error", err.Error())
		return
	}
	if removed > 0 {
		s.logger.Info("expired coupons removed", "count", removed)
	}
}
