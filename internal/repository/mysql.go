package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trending-list/internal/rankerrors"

	model "trending-list/internal/models"
)

type mysqlEventStore struct {
}

// NewMySQLEventStore creates the MySQL-backed EventStore
func NewMySQLEventStore() EventStore {
	return &mysqlEventStore{}
}

// GetEvent returns the event row regardless of its deletion flag
func (s *mysqlEventStore) GetEvent(ctx context.Context, eventID string) (model.Event, error) {
	query := `
SELECT event_id, event_name, keyword, vote_count, bought_rank, deleted, owner_id, created_at
FROM event WHERE event_id = ?
`
	var event model.Event
	err := GetRunner(ctx).GetContext(ctx, &event, query, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, fmt.Errorf("get event %s: %w", eventID, rankerrors.ErrEventNotFound)
	}
	return event, err
}

// SaveEvent upserts the event row
func (s *mysqlEventStore) SaveEvent(ctx context.Context, event model.Event) error {
	query := `
INSERT INTO event (
	event_id, event_name, keyword, vote_count, bought_rank, deleted, owner_id, created_at
) VALUES (
	:event_id, :event_name, :keyword, :vote_count, :bought_rank, :deleted, :owner_id, :created_at
) AS NEW
ON DUPLICATE KEY UPDATE
	event_name = NEW.event_name,
	keyword = NEW.keyword,
	vote_count = NEW.vote_count,
	bought_rank = NEW.bought_rank,
	deleted = NEW.deleted,
	owner_id = NEW.owner_id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	return err
}

// ListEvents returns every event row, deleted ones included
func (s *mysqlEventStore) ListEvents(ctx context.Context) ([]model.Event, error) {
	query := `
SELECT event_id, event_name, keyword, vote_count, bought_rank, deleted, owner_id, created_at
FROM event ORDER BY created_at ASC, event_id ASC
`
	var events []model.Event
	err := GetRunner(ctx).SelectContext(ctx, &events, query)
	return events, err
}

// ListByDeletedAndRank orders by vote count descending, insertion order on ties
func (s *mysqlEventStore) ListByDeletedAndRank(ctx context.Context, deleted bool, rank int) ([]model.Event, error) {
	query := `
SELECT event_id, event_name, keyword, vote_count, bought_rank, deleted, owner_id, created_at
FROM event WHERE deleted = ? AND bought_rank = ?
ORDER BY vote_count DESC, created_at ASC, event_id ASC
`
	var events []model.Event
	err := GetRunner(ctx).SelectContext(ctx, &events, query, deleted, rank)
	return events, err
}

// ListByDeletedAndRankNot ...
func (s *mysqlEventStore) ListByDeletedAndRankNot(ctx context.Context, deleted bool, rank int) ([]model.Event, error) {
	query := `
SELECT event_id, event_name, keyword, vote_count, bought_rank, deleted, owner_id, created_at
FROM event WHERE deleted = ? AND bought_rank <> ?
ORDER BY bought_rank ASC
`
	var events []model.Event
	err := GetRunner(ctx).SelectContext(ctx, &events, query, deleted, rank)
	return events, err
}

// LockEvent takes a row lock on the event for the current transaction
func (s *mysqlEventStore) LockEvent(ctx context.Context, eventID string) error {
	query := `SELECT event_id FROM event WHERE event_id = ? FOR UPDATE`
	var id string
	err := GetTx(ctx).GetContext(ctx, &id, query, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lock event %s: %w", eventID, rankerrors.ErrEventNotFound)
	}
	return err
}

// DeleteAllByOwner removes every event owned by the given user. Events the
// trade ledger references keep a tombstone row so the rank's price survives.
func (s *mysqlEventStore) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	softQuery := `
UPDATE event SET deleted = TRUE
WHERE owner_id = ? AND event_id IN (SELECT event_id FROM trade)
`
	if _, err := GetTx(ctx).ExecContext(ctx, softQuery, ownerID); err != nil {
		return err
	}
	hardQuery := `
DELETE FROM event
WHERE owner_id = ? AND event_id NOT IN (SELECT event_id FROM trade)
`
	_, err := GetTx(ctx).ExecContext(ctx, hardQuery, ownerID)
	return err
}

type mysqlVoterStore struct {
}

// NewMySQLVoterStore creates the MySQL-backed VoterStore
func NewMySQLVoterStore() VoterStore {
	return &mysqlVoterStore{}
}

// GetVoter ...
func (s *mysqlVoterStore) GetVoter(ctx context.Context, voterID string) (model.Voter, error) {
	query := `SELECT voter_id, username, vote_balance FROM voter WHERE voter_id = ?`
	var voter model.Voter
	err := GetRunner(ctx).GetContext(ctx, &voter, query, voterID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Voter{}, fmt.Errorf("get voter %s: %w", voterID, rankerrors.ErrVoterNotFound)
	}
	return voter, err
}

// SaveVoter upserts the voter row
func (s *mysqlVoterStore) SaveVoter(ctx context.Context, voter model.Voter) error {
	query := `
INSERT INTO voter (voter_id, username, vote_balance)
VALUES (:voter_id, :username, :vote_balance) AS NEW
ON DUPLICATE KEY UPDATE
	username = NEW.username,
	vote_balance = NEW.vote_balance
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, voter)
	return err
}

// LockVoter takes a row lock on the voter for the current transaction
func (s *mysqlVoterStore) LockVoter(ctx context.Context, voterID string) error {
	query := `SELECT voter_id FROM voter WHERE voter_id = ? FOR UPDATE`
	var id string
	err := GetTx(ctx).GetContext(ctx, &id, query, voterID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lock voter %s: %w", voterID, rankerrors.ErrVoterNotFound)
	}
	return err
}

type mysqlTradeLedger struct {
}

// NewMySQLTradeLedger creates the MySQL-backed TradeLedger
func NewMySQLTradeLedger() TradeLedger {
	return &mysqlTradeLedger{}
}

// RecordTrade appends one trade row; the ledger is never updated or deleted
func (s *mysqlTradeLedger) RecordTrade(ctx context.Context, trade model.Trade) error {
	query := `
INSERT INTO trade (trade_id, event_id, amount, target_rank, created_at)
VALUES (:trade_id, :event_id, :amount, :target_rank, :created_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, trade)
	return err
}

// ListTrades ...
func (s *mysqlTradeLedger) ListTrades(ctx context.Context) ([]model.Trade, error) {
	query := `
SELECT trade_id, event_id, amount, target_rank, created_at
FROM trade ORDER BY created_at ASC, trade_id ASC
`
	var trades []model.Trade
	err := GetRunner(ctx).SelectContext(ctx, &trades, query)
	return trades, err
}

// ListTradesByRank returns the rank's bid history, earliest first
func (s *mysqlTradeLedger) ListTradesByRank(ctx context.Context, rank int) ([]model.Trade, error) {
	query := `
SELECT trade_id, event_id, amount, target_rank, created_at
FROM trade WHERE target_rank = ?
ORDER BY created_at ASC, trade_id ASC
`
	var trades []model.Trade
	err := GetRunner(ctx).SelectContext(ctx, &trades, query, rank)
	return trades, err
}

// LockRank locks the rank's trade rows for the current transaction
func (s *mysqlTradeLedger) LockRank(ctx context.Context, rank int) error {
	query := `SELECT trade_id FROM trade WHERE target_rank = ? FOR UPDATE`
	var ids []string
	return GetTx(ctx).SelectContext(ctx, &ids, query, rank)
}

type mysqlVoteLedger struct {
}

// NewMySQLVoteLedger creates the MySQL-backed VoteLedger
func NewMySQLVoteLedger() VoteLedger {
	return &mysqlVoteLedger{}
}

// RecordVote appends one vote row
func (s *mysqlVoteLedger) RecordVote(ctx context.Context, vote model.Vote) error {
	query := `
INSERT INTO vote (vote_id, voter_id, event_id, quantity, created_at)
VALUES (:vote_id, :voter_id, :event_id, :quantity, :created_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, vote)
	return err
}

// ListVotes ...
func (s *mysqlVoteLedger) ListVotes(ctx context.Context) ([]model.Vote, error) {
	query := `
SELECT vote_id, voter_id, event_id, quantity, created_at
FROM vote ORDER BY created_at ASC, vote_id ASC
`
	var votes []model.Vote
	err := GetRunner(ctx).SelectContext(ctx, &votes, query)
	return votes, err
}
