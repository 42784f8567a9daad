package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUserNotFound    = errors.New("user not found")
	ErrAmountMismatch  = errors.New("invalid reward amount")
	ErrAlreadyClaimed  = errors.New("reward already claimed for this date")
	ErrLoginTaken      = errors.New("username already taken")
	ErrInvalidCreds    = errors.New("invalid credentials")
	ErrScoreOutOfRange = errors.New("score exceeds max score")
)

type AmountMismatchError struct {
	Expected int
	Received int
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, received %d", ErrAmountMismatch, e.Expected, e.Received)
}

func (e *AmountMismatchError) Is(target error) bool {
	return target == ErrAmountMismatch
}
