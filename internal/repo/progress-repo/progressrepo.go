package progressrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const progressColumns = "id, user_id, quiz_id, category, best_score, max_score, attempts, completed_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProgress(row pgx.Row) (*domain.QuizProgress, error) {
	var p domain.QuizProgress
	err := row.Scan(&p.ID, &p.UserID, &p.QuizID, &p.Category, &p.BestScore, &p.MaxScore, &p.Attempts, &p.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetByQuiz(ctx context.Context, userID uuid.UUID, quizID string) (*domain.QuizProgress, error) {
	query := "SELECT " + progressColumns + " FROM quiz_progress WHERE user_id = $1 AND quiz_id = $2"
	p, err := scanProgress(r.db.QueryRow(ctx, query, userID, quizID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get quiz progress", zap.Error(err), zap.String("quizID", quizID))
		return nil, err
	}
	return p, nil
}

// Upsert records an attempt, keeping the best score seen for the quiz.
func (r *Repository) Upsert(ctx context.Context, progress *domain.QuizProgress) (*domain.QuizProgress, error) {
	query := `
		INSERT INTO quiz_progress (user_id, quiz_id, category, best_score, max_score, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, quiz_id) DO UPDATE
		SET best_score = GREATEST(quiz_progress.best_score, EXCLUDED.best_score),
			max_score = GREATEST(quiz_progress.max_score, EXCLUDED.max_score),
			category = EXCLUDED.category,
			attempts = quiz_progress.attempts + 1,
			completed_at = EXCLUDED.completed_at
		RETURNING ` + progressColumns

	p, err := scanProgress(r.db.QueryRow(ctx, query,
		progress.UserID,
		progress.QuizID,
		progress.Category,
		progress.BestScore,
		progress.MaxScore,
		progress.CompletedAt,
	))
	if err != nil {
		zap.L().Error("can't save quiz progress", zap.Error(err), zap.String("quizID", progress.QuizID))
		return nil, err
	}
	return p, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.QuizProgress, error) {
	query := "SELECT " + progressColumns + " FROM quiz_progress WHERE user_id = $1 ORDER BY completed_at DESC"
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list quiz progress", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.QuizProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			zap.L().Error("can't scan quiz progress row", zap.Error(err))
			return nil, err
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// Rankings folds best scores per user into a leaderboard. An empty category
// ranks across all quizzes. Users tied on score and quiz count share a rank.
func (r *Repository) Rankings(ctx context.Context, category string, limit int) ([]domain.RankingEntry, error) {
	query := `
		SELECT u.id, u.login, SUM(p.best_score) AS total_score, COUNT(*) AS quizzes_completed
		FROM quiz_progress p
		JOIN users u ON u.id = p.user_id
		WHERE ($1::text = '' OR p.category = $1)
		GROUP BY u.id, u.login
		ORDER BY total_score DESC, quizzes_completed DESC, u.login ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, category, limit)
	if err != nil {
		zap.L().Error("can't aggregate rankings", zap.Error(err), zap.String("category", category))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RankingEntry
	for rows.Next() {
		var e domain.RankingEntry
		if err := rows.Scan(&e.UserID, &e.Login, &e.TotalScore, &e.QuizzesCompleted); err != nil {
			zap.L().Error("can't scan ranking row", zap.Error(err))
			return nil, err
		}
		e.Rank = len(entries) + 1
		if n := len(entries); n > 0 {
			prev := entries[n-1]
			if prev.TotalScore == e.TotalScore && prev.QuizzesCompleted == e.QuizzesCompleted {
				e.Rank = prev.Rank
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
