package leaderboard

//go:generate mockgen -source=leaderboard.go -destination=mock_leaderboard.go -package=leaderboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/dto"
	"github.com/GlebRadaev/codequiz/pkg/utils"
)

const maxLimit = 500

type Service interface {
	Rankings(ctx context.Context, category string, limit int) ([]domain.RankingEntry, error)
}

type LeaderboardHandler struct {
	board Service
}

func New(board Service) *LeaderboardHandler {
	return &LeaderboardHandler{board: board}
}

// GetRankings godoc
//
//	@Summary		Get rankings
//	@Description	Users ordered by the sum of their best quiz scores; equal scores share a rank
//	@Tags			Rankings
//	@Produce		json
//	@Param			category	query		string	false	"sorting or binary; empty for overall"
//	@Param			limit		query		int		false	"rows to return (default 10)"
//	@Success		200			{object}	dto.RankingsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid query"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/rankings [get]
func (h *LeaderboardHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && category != domain.CategorySorting && category != domain.CategoryBinary {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxLimit {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.board.Rankings(r.Context(), category, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if entries == nil {
		entries = []domain.RankingEntry{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RankingsResponseDTO{
		Category: category,
		Entries:  entries,
	})
}
