package leaderboard

//go:generate mockgen -source=board.go -destination=mock_board.go -package=leaderboard

import (
	"context"
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// SnapshotSize is how many rows a cached snapshot holds per category.
	SnapshotSize = 100
	DefaultLimit = 10
	allKey       = "all"
)

// Categories are the snapshots kept warm; the empty category means overall.
var Categories = []string{"", domain.CategorySorting, domain.CategoryBinary}

type Loader interface {
	Rankings(ctx context.Context, category string, limit int) ([]domain.RankingEntry, error)
}

type Board struct {
	loader Loader
	cache  Cache
	ttl    time.Duration
	sf     singleflight.Group
}

// New returns a board whose snapshots live for ttl; the refresher is expected
// to rewrite them before they expire. A non-positive ttl falls back to twice
// the default refresh interval so snapshots always expire.
func New(loader Loader, cache Cache, ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = 2 * DefaultRefreshInterval
	}
	return &Board{
		loader: loader,
		cache:  cache,
		ttl:    ttl,
	}
}

func cacheKey(category string) string {
	if category == "" {
		return allKey
	}
	return category
}

// Rankings returns the top limit rows of category. Limits beyond the
// snapshot size bypass the cache.
func (b *Board) Rankings(ctx context.Context, category string, limit int) ([]domain.RankingEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > SnapshotSize {
		return b.loader.Rankings(ctx, category, limit)
	}

	key := cacheKey(category)
	entries, ok, err := b.cache.Get(ctx, key)
	if err != nil {
		zap.L().Warn("rankings cache read failed", zap.Error(err), zap.String("key", key))
	}
	if !ok {
		v, err, _ := b.sf.Do(key, func() (interface{}, error) {
			return b.load(ctx, category)
		})
		if err != nil {
			return nil, err
		}
		entries = v.([]domain.RankingEntry)
	}
	return head(entries, limit), nil
}

func (b *Board) load(ctx context.Context, category string) ([]domain.RankingEntry, error) {
	entries, err := b.loader.Rankings(ctx, category, SnapshotSize)
	if err != nil {
		zap.L().Error("failed to load rankings", zap.Error(err), zap.String("category", category))
		return nil, err
	}
	if entries == nil {
		entries = []domain.RankingEntry{}
	}
	if err := b.cache.Set(ctx, cacheKey(category), entries, b.ttl); err != nil {
		zap.L().Warn("rankings cache write failed", zap.Error(err), zap.String("category", category))
	}
	return entries, nil
}

// Refresh rebuilds every category snapshot.
func (b *Board) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, category := range Categories {
		category := category
		g.Go(func() error {
			_, err := b.load(ctx, category)
			return err
		})
	}
	return g.Wait()
}

// Invalidate drops every snapshot so the next read reloads it.
func (b *Board) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, len(Categories))
	for _, category := range Categories {
		keys = append(keys, cacheKey(category))
	}
	return b.cache.Delete(ctx, keys...)
}

func head(entries []domain.RankingEntry, limit int) []domain.RankingEntry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
