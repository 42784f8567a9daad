package service

import (
	"time"

	"github.com/GlebRadaev/codequiz/internal/handlers/auth"
	"github.com/GlebRadaev/codequiz/internal/handlers/progress"
	"github.com/GlebRadaev/codequiz/internal/handlers/reward"
	"github.com/GlebRadaev/codequiz/internal/handlers/user"
	"github.com/GlebRadaev/codequiz/internal/leaderboard"

	pkgauth "github.com/GlebRadaev/codequiz/pkg/auth"

	"github.com/GlebRadaev/codequiz/internal/repo"
	authservice "github.com/GlebRadaev/codequiz/internal/service/authservice"
	progressservice "github.com/GlebRadaev/codequiz/internal/service/progressservice"
	rewardservice "github.com/GlebRadaev/codequiz/internal/service/rewardservice"
	userservice "github.com/GlebRadaev/codequiz/internal/service/userservice"
)

type Options struct {
	JWTService    pkgauth.JWTServiceInterface
	TokenTTL      time.Duration
	Location      *time.Location
	CoinsPerPoint int
	RankingsCache leaderboard.Cache
	RankingsTTL   time.Duration
}

type Services struct {
	AuthService     auth.Service
	UserService     user.Service
	RewardService   reward.Service
	ProgressService progress.Service
	Leaderboard     *leaderboard.Board
}

func New(repo *repo.Repositories, opts Options) *Services {
	cache := opts.RankingsCache
	if cache == nil {
		cache = leaderboard.NewMemoryCache()
	}
	board := leaderboard.New(repo.ProgressRepo, cache, opts.RankingsTTL)

	return &Services{
		AuthService:     authservice.New(repo.UserRepo, &pkgauth.HashService{}, opts.JWTService, opts.TokenTTL),
		UserService:     userservice.New(repo.UserRepo),
		RewardService:   rewardservice.New(repo.UserRepo, repo.RewardRepo, repo.TxManager, opts.Location),
		ProgressService: progressservice.New(repo.UserRepo, repo.ProgressRepo, repo.TxManager, board, opts.CoinsPerPoint),
		Leaderboard:     board,
	}
}
