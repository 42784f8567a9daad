package userrepo

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

const userColumns = "id, login, password_hash, role, coins, last_reward_claim, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Coins, &user.LastRewardClaim, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err), zap.Stringer("userID", id))
		return nil, err
	}
	return user, nil
}

// LockByID loads the user and holds a row lock until the surrounding
// transaction ends. Every write to coins happens under this lock.
func (repo *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 FOR UPDATE", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock user", zap.Error(err), zap.Stringer("userID", id))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, login, password_hash, role, coins)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Login, user.PasswordHash, user.Role, user.Coins).Scan(&user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrLoginTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) AddCoins(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	query := `
		UPDATE users
		SET coins = coins + $1
		WHERE id = $2
		RETURNING coins
	`
	var coins int
	err := repo.db.QueryRow(ctx, query, delta, id).Scan(&coins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("can't add coins", zap.Error(err), zap.Stringer("userID", id))
		return 0, err
	}
	return coins, nil
}

// CreditReward adds amount to the balance and advances the cached
// last claim date, never moving it backwards.
func (repo *Repository) CreditReward(ctx context.Context, id uuid.UUID, amount int, day time.Time) (int, error) {
	query := `
		UPDATE users
		SET coins = coins + $1,
			last_reward_claim = GREATEST(last_reward_claim, $2::date)
		WHERE id = $3
		RETURNING coins
	`
	var coins int
	err := repo.db.QueryRow(ctx, query, amount, day, id).Scan(&coins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("can't credit reward", zap.Error(err), zap.Stringer("userID", id))
		return 0, err
	}
	return coins, nil
}
