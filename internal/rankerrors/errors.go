package rankerrors

import "errors"

// Store-level errors
var (
	ErrEventNotFound = errors.New("event not found")
	ErrVoterNotFound = errors.New("voter not found")
)

// business logic errors
var (
	ErrInvalidEvent        = errors.New("invalid event")
	ErrInvalidVote         = errors.New("invalid vote")
	ErrInvalidTrade        = errors.New("invalid trade")
	ErrInsufficientBalance = errors.New("insufficient vote balance")
	ErrAmountNotEnough     = errors.New("amount not enough")
	ErrRankOutOfRange      = errors.New("target rank out of range")
	ErrInvalidRange        = errors.New("list range out of bounds")
)
