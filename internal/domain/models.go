package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	InitialCoins = 600

	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	CategorySorting = "sorting"
	CategoryBinary  = "binary"
)

type User struct {
	ID              uuid.UUID  `db:"id"`
	Login           string     `db:"login"`
	PasswordHash    string     `db:"password_hash"`
	Role            string     `db:"role"`
	Coins           int        `db:"coins"`
	LastRewardClaim *time.Time `db:"last_reward_claim"`
	CreatedAt       time.Time  `db:"created_at"`
}

type RewardLedger struct {
	ID           int64         `db:"id"`
	UserID       uuid.UUID     `db:"user_id"`
	ClaimedDates []RewardClaim `db:"-"`
}

type RewardClaim struct {
	Date      time.Time `db:"claim_date"`
	Amount    int       `db:"amount"`
	ClaimedAt time.Time `db:"claimed_at"`
}

type RewardClaimResult struct {
	NewCoins    int
	ClaimedDate time.Time
}

type RewardStatus struct {
	LastClaim     *RewardClaim
	ClaimedDates  []RewardClaim
	CanClaimToday bool
	TodayReward   int
}

type QuizProgress struct {
	ID          int64     `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	QuizID      string    `db:"quiz_id"`
	Category    string    `db:"category"`
	BestScore   int       `db:"best_score"`
	MaxScore    int       `db:"max_score"`
	Attempts    int       `db:"attempts"`
	CompletedAt time.Time `db:"completed_at"`
}

type ProgressResult struct {
	Progress     *QuizProgress
	CoinsAwarded int
	NewCoins     int
}

type RankingEntry struct {
	Rank             int       `json:"rank"`
	UserID           uuid.UUID `json:"userId"`
	Login            string    `json:"login"`
	TotalScore       int       `json:"totalScore"`
	QuizzesCompleted int       `json:"quizzesCompleted"`
}
