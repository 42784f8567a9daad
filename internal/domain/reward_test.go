package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardAmountFor(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		expected int
	}{
		{"Monday", time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), WeekdayReward},
		{"Wednesday", time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC), WeekdayReward},
		{"Friday late evening", time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC), WeekdayReward},
		{"Saturday", time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC), WeekendReward},
		{"Sunday noon", time.Date(2024, time.March, 17, 12, 0, 0, 0, time.UTC), WeekendReward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RewardAmountFor(tt.day))
		})
	}
}

func TestRewardAmountFor_IsStableOverAYear(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 366; d++ {
		day := start.AddDate(0, 0, d)
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

		first := RewardAmountFor(day)
		require.Equal(t, first, RewardAmountFor(day), day.String())
		if weekend {
			require.Equal(t, 50, first, day.String())
		} else {
			require.Equal(t, 25, first, day.String())
		}
	}
}

func TestDay(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)

	tests := []struct {
		name     string
		in       time.Time
		loc      *time.Location
		expected time.Time
	}{
		{
			name:     "Truncates time of day",
			in:       time.Date(2024, time.March, 13, 17, 45, 12, 99, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Converts into the business timezone first",
			in:       time.Date(2024, time.March, 13, 23, 30, 0, 0, time.UTC),
			loc:      berlin,
			expected: time.Date(2024, time.March, 14, 0, 0, 0, 0, berlin),
		},
		{
			name:     "Nil location means UTC",
			in:       time.Date(2024, time.March, 13, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			loc:      nil,
			expected: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(Day(tt.in, tt.loc)))
		})
	}
}

func TestDateIn(t *testing.T) {
	minus5 := time.FixedZone("UTC-5", -5*60*60)
	plus9 := time.FixedZone("UTC+9", 9*60*60)
	stored := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		loc      *time.Location
		expected time.Time
	}{
		{"Zone west of UTC keeps the calendar date", minus5, time.Date(2024, time.May, 15, 0, 0, 0, 0, minus5)},
		{"Zone east of UTC keeps the calendar date", plus9, time.Date(2024, time.May, 15, 0, 0, 0, 0, plus9)},
		{"Nil location means UTC", nil, stored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateIn(stored, tt.loc)
			assert.True(t, tt.expected.Equal(got))
			assert.Equal(t, "2024-05-15", got.Format(time.DateOnly))
			assert.Equal(t, tt.expected.Location(), got.Location())
		})
	}

	// Day would move a UTC midnight into the previous day west of UTC.
	assert.Equal(t, "2024-05-14", Day(stored, minus5).Format(time.DateOnly))
	assert.True(t, SameDay(DateIn(stored, minus5), time.Date(2024, time.May, 16, 2, 0, 0, 0, time.UTC), minus5))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, time.March, 13, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 13, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, time.March, 14, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameDay(morning, evening, time.UTC))
	assert.False(t, SameDay(evening, nextDay, time.UTC))
}

func TestAmountMismatchError(t *testing.T) {
	err := fmt.Errorf("claim: %w", &AmountMismatchError{Expected: 50, Received: 25})

	assert.True(t, errors.Is(err, ErrAmountMismatch))

	var mismatch *AmountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 50, mismatch.Expected)
	assert.Equal(t, 25, mismatch.Received)
	assert.Contains(t, err.Error(), "expected 50, received 25")
}
