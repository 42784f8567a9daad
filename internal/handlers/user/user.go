package user

//go:generate mockgen -source=user.go -destination=mock_user.go -package=user

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/dto"
	"github.com/GlebRadaev/codequiz/pkg/auth"
	"github.com/GlebRadaev/codequiz/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile godoc
//
//	@Summary		Get the caller's profile
//	@Tags			User
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponse(user))
}
