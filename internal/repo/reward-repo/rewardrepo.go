package rewardrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// GetLastClaim returns nil without error when the user never claimed.
func (r *Repository) GetLastClaim(ctx context.Context, userID uuid.UUID) (*domain.RewardClaim, error) {
	query := `
		SELECT c.claim_date, c.amount, c.claimed_at
		FROM reward_claims c
		JOIN reward_ledgers l ON l.id = c.ledger_id
		WHERE l.user_id = $1
		ORDER BY c.claim_date DESC
		LIMIT 1
	`
	var claim domain.RewardClaim
	err := r.db.QueryRow(ctx, query, userID).Scan(&claim.Date, &claim.Amount, &claim.ClaimedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get last reward claim", zap.Error(err), zap.Stringer("userID", userID))
		return nil, err
	}
	return &claim, nil
}

func (r *Repository) GetClaimedDates(ctx context.Context, userID uuid.UUID) ([]domain.RewardClaim, error) {
	query := `
		SELECT c.claim_date, c.amount, c.claimed_at
		FROM reward_claims c
		JOIN reward_ledgers l ON l.id = c.ledger_id
		WHERE l.user_id = $1
		ORDER BY c.claim_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch reward claims", zap.Error(err), zap.Stringer("userID", userID))
		return nil, err
	}
	defer rows.Close()

	var claims []domain.RewardClaim
	for rows.Next() {
		var claim domain.RewardClaim
		if err := rows.Scan(&claim.Date, &claim.Amount, &claim.ClaimedAt); err != nil {
			zap.L().Error("failed to scan reward claim row", zap.Error(err))
			return nil, err
		}
		claims = append(claims, claim)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate reward claims", zap.Error(err))
		return nil, err
	}
	return claims, nil
}

// HasClaimed compares on the DATE column, so day must already be truncated
// to the business calendar day.
func (r *Repository) HasClaimed(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM reward_claims c
			JOIN reward_ledgers l ON l.id = c.ledger_id
			WHERE l.user_id = $1 AND c.claim_date = $2::date
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, day).Scan(&exists); err != nil {
		zap.L().Error("failed to check reward claim", zap.Error(err), zap.Stringer("userID", userID))
		return false, err
	}
	return exists, nil
}

// AppendClaim creates the ledger on first use and appends one entry. A second
// entry for the same day is rejected by the (ledger_id, claim_date) unique
// index and reported as domain.ErrAlreadyClaimed.
func (r *Repository) AppendClaim(ctx context.Context, userID uuid.UUID, day time.Time, amount int) (*domain.RewardLedger, error) {
	if expected := domain.RewardAmountFor(day); amount != expected {
		return nil, &domain.AmountMismatchError{Expected: expected, Received: amount}
	}

	upsertLedger := `
		INSERT INTO reward_ledgers (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id
	`
	insertClaim := `
		INSERT INTO reward_claims (ledger_id, claim_date, amount)
		VALUES ($1, $2::date, $3)
		RETURNING claim_date, amount, claimed_at
	`

	ledger := &domain.RewardLedger{UserID: userID}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.db.QueryRow(ctx, upsertLedger, userID).Scan(&ledger.ID); err != nil {
			zap.L().Error("failed to upsert reward ledger", zap.Error(err), zap.Stringer("userID", userID))
			return err
		}

		var claim domain.RewardClaim
		err := r.db.QueryRow(ctx, insertClaim, ledger.ID, day, amount).Scan(&claim.Date, &claim.Amount, &claim.ClaimedAt)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return domain.ErrAlreadyClaimed
			}
			zap.L().Error("failed to append reward claim", zap.Error(err), zap.Stringer("userID", userID))
			return err
		}
		ledger.ClaimedDates = append(ledger.ClaimedDates, claim)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}
