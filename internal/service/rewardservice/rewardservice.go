package rewardservice

//go:generate mockgen -source=rewardservice.go -destination=mock_rewardservice.go -package=rewardservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreditReward(ctx context.Context, id uuid.UUID, amount int, day time.Time) (int, error)
}

type RewardRepo interface {
	GetLastClaim(ctx context.Context, userID uuid.UUID) (*domain.RewardClaim, error)
	GetClaimedDates(ctx context.Context, userID uuid.UUID) ([]domain.RewardClaim, error)
	HasClaimed(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error)
	AppendClaim(ctx context.Context, userID uuid.UUID, day time.Time, amount int) (*domain.RewardLedger, error)
}

type Service struct {
	userRepo   UserRepo
	rewardRepo RewardRepo
	txManager  pg.TXManager
	loc        *time.Location
	now        func() time.Time
}

func New(userRepo UserRepo, rewardRepo RewardRepo, txManager pg.TXManager, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		userRepo:   userRepo,
		rewardRepo: rewardRepo,
		txManager:  txManager,
		loc:        loc,
		now:        time.Now,
	}
}

// ClaimDailyReward credits the reward for claimDate once per calendar day.
// The user row stays locked from the lookup until the ledger entry and the
// credit commit, so concurrent claims for one user run one after another.
func (s *Service) ClaimDailyReward(ctx context.Context, userID uuid.UUID, amount int, claimDate time.Time) (*domain.RewardClaimResult, error) {
	if userID == uuid.Nil || claimDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	day := domain.Day(claimDate, s.loc)

	result := &domain.RewardClaimResult{ClaimedDate: day}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.LockByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		claimed, err := s.rewardRepo.HasClaimed(ctx, userID, day)
		if err != nil {
			return err
		}
		if claimed {
			return domain.ErrAlreadyClaimed
		}

		expected := domain.RewardAmountFor(day)
		if amount != expected {
			return &domain.AmountMismatchError{Expected: expected, Received: amount}
		}

		if _, err := s.rewardRepo.AppendClaim(ctx, userID, day, expected); err != nil {
			return err
		}
		coins, err := s.userRepo.CreditReward(ctx, userID, expected, day)
		if err != nil {
			return err
		}
		result.NewCoins = coins
		return nil
	})
	if err != nil {
		if !isRejection(err) {
			zap.L().Error("failed to claim daily reward", zap.Error(err), zap.Stringer("userID", userID))
		}
		return nil, err
	}

	zap.L().Info("daily reward claimed",
		zap.Stringer("userID", userID),
		zap.String("day", day.Format(time.DateOnly)),
		zap.Int("amount", domain.RewardAmountFor(day)),
		zap.Int("coins", result.NewCoins),
	)
	return result, nil
}

// GetStatus reports the ledger state of the user as seen today.
func (s *Service) GetStatus(ctx context.Context, userID uuid.UUID) (*domain.RewardStatus, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	last, err := s.rewardRepo.GetLastClaim(ctx, userID)
	if err != nil {
		return nil, err
	}
	claims, err := s.rewardRepo.GetClaimedDates(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.Day(now, s.loc)
	status := &domain.RewardStatus{
		ClaimedDates:  make([]domain.RewardClaim, 0, len(claims)),
		CanClaimToday: true,
		TodayReward:   domain.RewardAmountFor(today),
	}
	if last != nil {
		c := *last
		c.Date = domain.DateIn(c.Date, s.loc)
		status.LastClaim = &c
	}
	for _, c := range claims {
		c.Date = domain.DateIn(c.Date, s.loc)
		if domain.SameDay(c.Date, now, s.loc) {
			status.CanClaimToday = false
		}
		status.ClaimedDates = append(status.ClaimedDates, c)
	}
	return status, nil
}

// UserExists reports whether an account with userID exists.
func (s *Service) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrAlreadyClaimed) ||
		errors.Is(err, domain.ErrAmountMismatch)
}
