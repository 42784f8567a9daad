package progressservice

//go:generate mockgen -source=progressservice.go -destination=mock_progressservice.go -package=progressservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepo interface {
	LockByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AddCoins(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

type ProgressRepo interface {
	GetByQuiz(ctx context.Context, userID uuid.UUID, quizID string) (*domain.QuizProgress, error)
	Upsert(ctx context.Context, progress *domain.QuizProgress) (*domain.QuizProgress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.QuizProgress, error)
}

// Invalidator drops cached rankings after scores change.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Service struct {
	userRepo      UserRepo
	progressRepo  ProgressRepo
	txManager     pg.TXManager
	invalidator   Invalidator
	coinsPerPoint int
	now           func() time.Time
}

func New(userRepo UserRepo, progressRepo ProgressRepo, txManager pg.TXManager, invalidator Invalidator, coinsPerPoint int) *Service {
	return &Service{
		userRepo:      userRepo,
		progressRepo:  progressRepo,
		txManager:     txManager,
		invalidator:   invalidator,
		coinsPerPoint: coinsPerPoint,
		now:           time.Now,
	}
}

func validCategory(category string) bool {
	return category == domain.CategorySorting || category == domain.CategoryBinary
}

// SubmitResult records a quiz attempt and pays coins for every point the
// attempt adds to the best score. Coins move under the same user row lock
// the daily reward claim takes.
func (s *Service) SubmitResult(ctx context.Context, userID uuid.UUID, quizID, category string, score, maxScore int) (*domain.ProgressResult, error) {
	if userID == uuid.Nil || quizID == "" || !validCategory(category) || maxScore <= 0 || score < 0 {
		return nil, domain.ErrInvalidInput
	}
	if score > maxScore {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrScoreOutOfRange, score, maxScore)
	}

	result := &domain.ProgressResult{}
	improved := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.LockByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		result.NewCoins = user.Coins

		previous, err := s.progressRepo.GetByQuiz(ctx, userID, quizID)
		if err != nil {
			return err
		}
		oldBest := 0
		if previous != nil {
			oldBest = previous.BestScore
		}

		progress, err := s.progressRepo.Upsert(ctx, &domain.QuizProgress{
			UserID:      userID,
			QuizID:      quizID,
			Category:    category,
			BestScore:   score,
			MaxScore:    maxScore,
			CompletedAt: s.now(),
		})
		if err != nil {
			return err
		}
		result.Progress = progress

		gained := progress.BestScore - oldBest
		improved = gained > 0
		if improved && s.coinsPerPoint > 0 {
			result.CoinsAwarded = gained * s.coinsPerPoint
			coins, err := s.userRepo.AddCoins(ctx, userID, result.CoinsAwarded)
			if err != nil {
				return err
			}
			result.NewCoins = coins
		}
		return nil
	})
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.Stringer("userID", userID), zap.String("quizID", quizID)}
		if errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Info("quiz result rejected", fields...)
		} else {
			zap.L().Error("failed to submit quiz result", fields...)
		}
		return nil, err
	}

	if improved && s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			zap.L().Warn("failed to invalidate rankings", zap.Error(err))
		}
	}
	return result, nil
}

func (s *Service) ListProgress(ctx context.Context, userID uuid.UUID) ([]domain.QuizProgress, error) {
	progress, err := s.progressRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list progress", zap.Error(err), zap.Stringer("userID", userID))
		return nil, err
	}
	return progress, nil
}
