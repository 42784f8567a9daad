package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/codequiz/internal/config"
	"github.com/GlebRadaev/codequiz/internal/handlers"
	"github.com/GlebRadaev/codequiz/internal/leaderboard"
	"github.com/GlebRadaev/codequiz/internal/pg"
	"github.com/GlebRadaev/codequiz/internal/repo"
	"github.com/GlebRadaev/codequiz/internal/service"
	"github.com/GlebRadaev/codequiz/pkg/auth"
	"github.com/GlebRadaev/codequiz/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	refresher *leaderboard.Refresher
	pool      *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		zap.L().Error("invalid config: ", zap.Error(err))
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		zap.L().Error("invalid config: ", zap.Error(err))
		return err
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	cache, err := getRankingsCache(ctx, cfg)
	if err != nil {
		zap.L().Error("redis unavailable: ", zap.Error(err))
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, service.Options{
		JWTService:    jwtService,
		TokenTTL:      cfg.TokenTTL,
		Location:      loc,
		CoinsPerPoint: cfg.CoinsPerPoint,
		RankingsCache: cache,
		RankingsTTL:   2 * cfg.LeaderboardRefresh,
	})
	a.api = handlers.New(a.srv, handlers.Options{
		JWTService:         jwtService,
		Location:           loc,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		AllowedOrigins:     cfg.AllowedOrigins(),
		TrustProxy:         cfg.TrustProxy,
	})
	a.refresher = leaderboard.NewRefresher(a.srv.Leaderboard, cfg.LeaderboardRefresh)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startLeaderboardRefresher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("rewardTimezone", loc.String()))
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// getRankingsCache returns the Redis cache when an address is configured and
// the in-process cache otherwise.
func getRankingsCache(ctx context.Context, cfg *config.Config) (leaderboard.Cache, error) {
	if cfg.RedisAddress == "" {
		zap.L().Info("redis address not set, using in-memory rankings cache")
		return leaderboard.NewMemoryCache(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	go func() {
		<-ctx.Done()
		_ = client.Close()
	}()
	return leaderboard.NewRedisCache(client), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startLeaderboardRefresher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.refresher.Run(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	if a.pool != nil {
		a.pool.Close()
	}
	close(a.errCh)
	wg.Wait()

	return appErr
}
