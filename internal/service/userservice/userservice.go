package userservice

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

import (
	"context"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{userRepo: repo}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err), zap.Stringer("userID", userID))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
