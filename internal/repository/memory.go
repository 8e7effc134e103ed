package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"trending-list/internal/rankerrors"

	model "trending-list/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of the store
// contract, used as the dev/test backend. It also implements Provider:
// Transact serializes whole read-decide-write units behind a single mutex.
type MemoryStore struct {
	mu         sync.RWMutex
	events     map[string]model.Event
	eventOrder []string // insertion order, tie-break for equal vote counts
	voters     map[string]model.Voter
	trades     []model.Trade
	votes      []model.Vote

	txMu sync.Mutex
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string]model.Event),
		voters: make(map[string]model.Voter),
	}
}

// Transact serializes the unit against all other transactions
func (s *MemoryStore) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// Readonly is a no-op for the in-memory backend
func (s *MemoryStore) Readonly(ctx context.Context) context.Context {
	return ctx
}

// GetEvent returns the event regardless of its deletion flag
func (s *MemoryStore) GetEvent(ctx context.Context, eventID string) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[eventID]
	if !ok {
		return model.Event{}, fmt.Errorf("get event %s: %w", eventID, rankerrors.ErrEventNotFound)
	}
	return event, nil
}

// SaveEvent inserts or replaces the event
func (s *MemoryStore) SaveEvent(ctx context.Context, event model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.EventID]; !ok {
		s.eventOrder = append(s.eventOrder, event.EventID)
	}
	s.events[event.EventID] = event
	return nil
}

// ListEvents returns every stored event in insertion order
func (s *MemoryStore) ListEvents(ctx context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]model.Event, 0, len(s.events))
	for _, id := range s.eventOrder {
		events = append(events, s.events[id])
	}
	return events, nil
}

// ListByDeletedAndRank filters on the deletion flag and bought rank, sorted by
// vote count descending with insertion order preserved on ties
func (s *MemoryStore) ListByDeletedAndRank(ctx context.Context, deleted bool, rank int) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []model.Event
	for _, id := range s.eventOrder {
		event := s.events[id]
		if event.Deleted == deleted && event.BoughtRank == rank {
			events = append(events, event)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].VoteCount > events[j].VoteCount
	})
	return events, nil
}

// ListByDeletedAndRankNot filters on the deletion flag and bought rank inequality
func (s *MemoryStore) ListByDeletedAndRankNot(ctx context.Context, deleted bool, rank int) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []model.Event
	for _, id := range s.eventOrder {
		event := s.events[id]
		if event.Deleted == deleted && event.BoughtRank != rank {
			events = append(events, event)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].BoughtRank < events[j].BoughtRank
	})
	return events, nil
}

// LockEvent only checks existence; Transact already serializes units
func (s *MemoryStore) LockEvent(ctx context.Context, eventID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return fmt.Errorf("lock event %s: %w", eventID, rankerrors.ErrEventNotFound)
	}
	return nil
}

// DeleteAllByOwner removes every event owned by the given user. Events the
// trade ledger references keep a tombstone so the rank's price survives.
func (s *MemoryStore) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	traded := make(map[string]bool, len(s.trades))
	for _, trade := range s.trades {
		traded[trade.EventID] = true
	}

	remaining := s.eventOrder[:0]
	for _, id := range s.eventOrder {
		event := s.events[id]
		if event.OwnerID != ownerID {
			remaining = append(remaining, id)
			continue
		}
		if traded[id] {
			event.Deleted = true
			s.events[id] = event
			remaining = append(remaining, id)
			continue
		}
		delete(s.events, id)
	}
	s.eventOrder = remaining
	return nil
}

// GetVoter returns the voter by ID
func (s *MemoryStore) GetVoter(ctx context.Context, voterID string) (model.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	voter, ok := s.voters[voterID]
	if !ok {
		return model.Voter{}, fmt.Errorf("get voter %s: %w", voterID, rankerrors.ErrVoterNotFound)
	}
	return voter, nil
}

// SaveVoter inserts or replaces the voter
func (s *MemoryStore) SaveVoter(ctx context.Context, voter model.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.voters[voter.VoterID] = voter
	return nil
}

// LockVoter only checks existence; Transact already serializes units
func (s *MemoryStore) LockVoter(ctx context.Context, voterID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.voters[voterID]; !ok {
		return fmt.Errorf("lock voter %s: %w", voterID, rankerrors.ErrVoterNotFound)
	}
	return nil
}

// RecordTrade appends a trade to the ledger
func (s *MemoryStore) RecordTrade(ctx context.Context, trade model.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, trade)
	return nil
}

// ListTrades returns the full ledger in insertion order
func (s *MemoryStore) ListTrades(ctx context.Context) ([]model.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Trade(nil), s.trades...), nil
}

// ListTradesByRank returns the rank's bid history, earliest first
func (s *MemoryStore) ListTradesByRank(ctx context.Context, rank int) ([]model.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var trades []model.Trade
	for _, trade := range s.trades {
		if trade.Rank == rank {
			trades = append(trades, trade)
		}
	}
	return trades, nil
}

// LockRank is a no-op; Transact already serializes units
func (s *MemoryStore) LockRank(ctx context.Context, rank int) error {
	return nil
}

// RecordVote appends a vote to the ledger
func (s *MemoryStore) RecordVote(ctx context.Context, vote model.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.votes = append(s.votes, vote)
	return nil
}

// ListVotes returns the full vote history in insertion order
func (s *MemoryStore) ListVotes(ctx context.Context) ([]model.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Vote(nil), s.votes...), nil
}

var _ EventStore = &MemoryStore{}
var _ VoterStore = &MemoryStore{}
var _ TradeLedger = &MemoryStore{}
var _ VoteLedger = &MemoryStore{}
var _ Provider = &MemoryStore{}
