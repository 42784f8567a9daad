package dto

import (
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
)

const DateLayout = time.DateOnly

type ClaimRewardRequestDTO struct {
	RewardAmount *int   `json:"rewardAmount" validate:"required"`
	ClaimDate    string `json:"claimDate" validate:"required"`
}

type ClaimRewardResponseDTO struct {
	Success     bool   `json:"success"`
	NewCoins    int    `json:"newCoins"`
	ClaimedDate string `json:"claimedDate"`
}

type ClaimRewardErrorDTO struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Expected int    `json:"expected"`
	Received int    `json:"received"`
}

type RewardClaimDTO struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

type LastClaimResponseDTO struct {
	LastClaim     *string          `json:"lastClaim"`
	ClaimedDates  []string         `json:"claimedDates"`
	Claims        []RewardClaimDTO `json:"claims"`
	CanClaimToday bool             `json:"canClaimToday"`
	TodayReward   int              `json:"todayReward"`
}

// ParseClaimDate accepts a full RFC 3339 timestamp or a bare date, the
// latter read as midnight in loc.
func ParseClaimDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

func NewLastClaimResponse(status *domain.RewardStatus) LastClaimResponseDTO {
	resp := LastClaimResponseDTO{
		ClaimedDates:  make([]string, 0, len(status.ClaimedDates)),
		Claims:        make([]RewardClaimDTO, 0, len(status.ClaimedDates)),
		CanClaimToday: status.CanClaimToday,
		TodayReward:   status.TodayReward,
	}
	if status.LastClaim != nil {
		last := status.LastClaim.Date.Format(DateLayout)
		resp.LastClaim = &last
	}
	for _, c := range status.ClaimedDates {
		date := c.Date.Format(DateLayout)
		resp.ClaimedDates = append(resp.ClaimedDates, date)
		resp.Claims = append(resp.Claims, RewardClaimDTO{Date: date, Amount: c.Amount})
	}
	return resp
}
