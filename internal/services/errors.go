package services

import (
	"errors"
	"fmt"
)

// Check-in state machine errors
var (
	// ErrInvalidButtonNumber rejects button numbers outside the daily range.
	ErrInvalidButtonNumber = errors.New("button number must be between 1 and 10")

	// ErrInvalidTransition rejects out-of-order clicks: every earlier button
	// must be clicked and cooled down first.
	ErrInvalidTransition = errors.New("previous buttons must be clicked and cooled down first")

	// ErrAlreadyCompleted rejects clicks on a day that already reached all
	// ten buttons.
	ErrAlreadyCompleted = errors.New("check-in already completed for today")
)

// Reward errors
var (
	ErrPhoneRequired      = errors.New("a phone number is required to redeem rewards")
	ErrNoPendingReward    = errors.New("no pending reward to redeem")
	ErrRewardNotRetryable = errors.New("only failed rewards can be retried")
	ErrRewardNotFound     = errors.New("reward not found")
)

// Auth and profile errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPhone       = errors.New("phone number must be in international format, e.g. +2348012345678")
)

// CooldownError rejects a click on a button that is still cooling down. It
// carries the seconds the client must wait.
type CooldownError struct {
	RemainingSeconds int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("button is cooling down, retry in %d seconds", e.RemainingSeconds)
}
