package dto

import (
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
)

type SubmitProgressRequestDTO struct {
	QuizID   string `json:"quizId" validate:"required,max=64"`
	Category string `json:"category" validate:"required,oneof=sorting binary"`
	Score    *int   `json:"score" validate:"required,min=0"`
	MaxScore int    `json:"maxScore" validate:"required,gt=0"`
}

type ProgressDTO struct {
	QuizID      string    `json:"quizId"`
	Category    string    `json:"category"`
	BestScore   int       `json:"bestScore"`
	MaxScore    int       `json:"maxScore"`
	Attempts    int       `json:"attempts"`
	CompletedAt time.Time `json:"completedAt"`
}

type SubmitProgressResponseDTO struct {
	Progress     ProgressDTO `json:"progress"`
	CoinsAwarded int         `json:"coinsAwarded"`
	NewCoins     int         `json:"newCoins"`
}

type RankingsResponseDTO struct {
	Category string                `json:"category"`
	Entries  []domain.RankingEntry `json:"entries"`
}

func NewProgressDTO(p domain.QuizProgress) ProgressDTO {
	return ProgressDTO{
		QuizID:      p.QuizID,
		Category:    p.Category,
		BestScore:   p.BestScore,
		MaxScore:    p.MaxScore,
		Attempts:    p.Attempts,
		CompletedAt: p.CompletedAt,
	}
}
