package repo

import (
	"github.com/GlebRadaev/codequiz/internal/leaderboard"
	"github.com/GlebRadaev/codequiz/internal/pg"
	progressrepo "github.com/GlebRadaev/codequiz/internal/repo/progress-repo"
	rewardrepo "github.com/GlebRadaev/codequiz/internal/repo/reward-repo"
	userrepo "github.com/GlebRadaev/codequiz/internal/repo/user-repo"
	"github.com/GlebRadaev/codequiz/internal/service/authservice"
	"github.com/GlebRadaev/codequiz/internal/service/progressservice"
	"github.com/GlebRadaev/codequiz/internal/service/rewardservice"
	"github.com/GlebRadaev/codequiz/internal/service/userservice"
)

type UserRepo interface {
	authservice.Repo
	userservice.Repo
	rewardservice.UserRepo
	progressservice.UserRepo
}

type ProgressRepo interface {
	progressservice.ProgressRepo
	leaderboard.Loader
}

type Repositories struct {
	UserRepo     UserRepo
	RewardRepo   rewardservice.RewardRepo
	ProgressRepo ProgressRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		RewardRepo:   rewardrepo.New(conn, txManager),
		ProgressRepo: progressrepo.New(conn),
		TxManager:    txManager,
	}
}
