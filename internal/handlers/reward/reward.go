package reward

//go:generate mockgen -source=reward.go -destination=mock_reward.go -package=reward

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/dto"
	"github.com/GlebRadaev/codequiz/pkg/auth"
	"github.com/GlebRadaev/codequiz/pkg/utils"
	"github.com/GlebRadaev/codequiz/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	ClaimDailyReward(ctx context.Context, userID uuid.UUID, amount int, claimDate time.Time) (*domain.RewardClaimResult, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*domain.RewardStatus, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type RewardHandler struct {
	rewardService Service
	loc           *time.Location
}

func New(rewardService Service, loc *time.Location) *RewardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RewardHandler{
		rewardService: rewardService,
		loc:           loc,
	}
}

// targetUser resolves the {userID} path parameter and checks the caller may
// act on it. An unknown user is reported as not found before ownership is
// checked. It writes the error response itself.
func (h *RewardHandler) targetUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	if callerID != userID && auth.RoleFromContext(r.Context()) != domain.RoleAdmin {
		exists, err := h.rewardService.UserExists(r.Context(), userID)
		switch {
		case err != nil:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		case !exists:
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		}
		return uuid.Nil, false
	}
	return userID, true
}

// GetLastClaim godoc
//
//	@Summary		Get daily reward status
//	@Description	Returns the most recent claim, every claimed date and whether today's reward is still available
//	@Tags			DailyReward
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Success		200		{object}	dto.LastClaimResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user ID"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/daily-reward/{userID}/last-claim [get]
func (h *RewardHandler) GetLastClaim(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.targetUser(w, r)
	if !ok {
		return
	}
	status, err := h.rewardService.GetStatus(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLastClaimResponse(status))
}

// Claim godoc
//
//	@Summary		Claim the daily reward
//	@Description	Credits 50 coins on Saturday and Sunday and 25 coins otherwise, once per calendar day
//	@Tags			DailyReward
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string						true	"User ID"
//	@Param			request	body		dto.ClaimRewardRequestDTO	true	"Claim request body"
//	@Success		200		{object}	dto.ClaimRewardResponseDTO
//	@Failure		400		{object}	dto.ClaimRewardErrorDTO	"Invalid request, amount mismatch or already claimed"
//	@Failure		401		{object}	utils.Response			"Unauthorized"
//	@Failure		403		{object}	utils.Response			"Forbidden"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/daily-reward/{userID}/claim [post]
func (h *RewardHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	var req dto.ClaimRewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	claimDate, err := dto.ParseClaimDate(req.ClaimDate, h.loc)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid claim date")
		return
	}

	result, err := h.rewardService.ClaimDailyReward(r.Context(), userID, *req.RewardAmount, claimDate)
	if err != nil {
		var mismatch *domain.AmountMismatchError
		switch {
		case errors.As(err, &mismatch):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.ClaimRewardErrorDTO{
				Success:  false,
				Error:    "Invalid reward amount",
				Expected: mismatch.Expected,
				Received: mismatch.Received,
			})
		case errors.Is(err, domain.ErrAlreadyClaimed):
			utils.RespondWithError(w, http.StatusBadRequest, "Reward already claimed for this date")
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimRewardResponseDTO{
		Success:     true,
		NewCoins:    result.NewCoins,
		ClaimedDate: result.ClaimedDate.Format(dto.DateLayout),
	})
}
