package progress

//go:generate mockgen -source=progress.go -destination=mock_progress.go -package=progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/dto"
	"github.com/GlebRadaev/codequiz/pkg/auth"
	"github.com/GlebRadaev/codequiz/pkg/utils"
	"github.com/GlebRadaev/codequiz/pkg/validate"
	"github.com/google/uuid"
)

type Service interface {
	SubmitResult(ctx context.Context, userID uuid.UUID, quizID, category string, score, maxScore int) (*domain.ProgressResult, error)
	ListProgress(ctx context.Context, userID uuid.UUID) ([]domain.QuizProgress, error)
}

type ProgressHandler struct {
	progressService Service
}

func New(progressService Service) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// Submit godoc
//
//	@Summary		Submit a quiz result
//	@Description	Stores the best score per quiz and credits coins for every newly earned point
//	@Tags			Progress
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitProgressRequestDTO	true	"Quiz result"
//	@Success		200		{object}	dto.SubmitProgressResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/progress [post]
func (h *ProgressHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.SubmitProgressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.progressService.SubmitResult(r.Context(), userID, req.QuizID, req.Category, *req.Score, req.MaxScore)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScoreOutOfRange):
			utils.RespondWithError(w, http.StatusBadRequest, "Score exceeds max score")
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitProgressResponseDTO{
		Progress:     dto.NewProgressDTO(*result.Progress),
		CoinsAwarded: result.CoinsAwarded,
		NewCoins:     result.NewCoins,
	})
}

// List godoc
//
//	@Summary		List the caller's quiz progress
//	@Tags			Progress
//	@Produce		json
//	@Success		200	{array}		dto.ProgressDTO
//	@Success		204	"No progress yet"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/progress [get]
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	progress, err := h.progressService.ListProgress(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(progress) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	resp := make([]dto.ProgressDTO, 0, len(progress))
	for _, p := range progress {
		resp = append(resp, dto.NewProgressDTO(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
