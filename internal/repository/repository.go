package repository

import (
	"context"

	model "trending-list/internal/models"
)

// EventStore defines event persistence for the trending list
type EventStore interface {
	GetEvent(ctx context.Context, eventID string) (model.Event, error)
	SaveEvent(ctx context.Context, event model.Event) error
	ListEvents(ctx context.Context) ([]model.Event, error)
	// ListByDeletedAndRank returns events matching the deletion flag with the
	// given bought rank, ordered by vote count descending (stable on ties)
	ListByDeletedAndRank(ctx context.Context, deleted bool, rank int) ([]model.Event, error)
	// ListByDeletedAndRankNot returns events matching the deletion flag whose
	// bought rank differs from the given rank
	ListByDeletedAndRankNot(ctx context.Context, deleted bool, rank int) ([]model.Event, error)
	// LockEvent serializes concurrent writes to the same event within a transaction
	LockEvent(ctx context.Context, eventID string) error
	// DeleteAllByOwner removes the owner's events; events referenced by the
	// trade ledger are soft-deleted instead
	DeleteAllByOwner(ctx context.Context, ownerID string) error
}

// VoterStore defines voter persistence
type VoterStore interface {
	GetVoter(ctx context.Context, voterID string) (model.Voter, error)
	SaveVoter(ctx context.Context, voter model.Voter) error
	// LockVoter serializes concurrent votes by the same voter within a transaction
	LockVoter(ctx context.Context, voterID string) error
}

// TradeLedger defines the append-only bid history
type TradeLedger interface {
	RecordTrade(ctx context.Context, trade model.Trade) error
	ListTrades(ctx context.Context) ([]model.Trade, error)
	// ListTradesByRank returns all trades targeting a rank, earliest first
	ListTradesByRank(ctx context.Context, rank int) ([]model.Trade, error)
	// LockRank serializes concurrent bids on the same rank within a transaction
	LockRank(ctx context.Context, rank int) error
}

// VoteLedger defines the append-only vote history
type VoteLedger interface {
	RecordVote(ctx context.Context, vote model.Vote) error
	ListVotes(ctx context.Context) ([]model.Vote, error)
}

// Provider scopes store access to a single call: Transact wraps a
// read-decide-write unit, Readonly marks a pure read
type Provider interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	Readonly(ctx context.Context) context.Context
}
