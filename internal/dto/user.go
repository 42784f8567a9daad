package dto

import "github.com/GlebRadaev/codequiz/internal/domain"

type ProfileResponseDTO struct {
	ID              string  `json:"id"`
	Login           string  `json:"login"`
	Role            string  `json:"role"`
	Coins           int     `json:"coins"`
	LastRewardClaim *string `json:"lastRewardClaim"`
}

func NewProfileResponse(user *domain.User) ProfileResponseDTO {
	resp := ProfileResponseDTO{
		ID:    user.ID.String(),
		Login: user.Login,
		Role:  user.Role,
		Coins: user.Coins,
	}
	if user.LastRewardClaim != nil {
		last := user.LastRewardClaim.Format(DateLayout)
		resp.LastRewardClaim = &last
	}
	return resp
}
