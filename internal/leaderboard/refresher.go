package leaderboard

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultRefreshInterval replaces a non-positive interval.
const DefaultRefreshInterval = 30 * time.Second

type Refresher struct {
	board    *Board
	interval time.Duration
}

func NewRefresher(board *Board, interval time.Duration) *Refresher {
	if interval <= 0 {
		zap.L().Warn("non-positive leaderboard refresh interval, using default",
			zap.Duration("interval", interval), zap.Duration("default", DefaultRefreshInterval))
		interval = DefaultRefreshInterval
	}
	return &Refresher{board: board, interval: interval}
}

// Run refreshes the snapshots right away and then on every tick until ctx is
// done.
func (r *Refresher) Run(ctx context.Context) {
	zap.L().Info("Leaderboard refresher started", zap.Duration("interval", r.interval))
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping leaderboard refresher")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if err := r.board.Refresh(ctx); err != nil && ctx.Err() == nil {
		zap.L().Error("Failed to refresh leaderboard", zap.Error(err))
	}
}
