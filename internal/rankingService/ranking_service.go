package ranking

import (
	"context"
	"fmt"
	"time"

	"trending-list/internal/rankerrors"
	"trending-list/internal/repository"
	"trending-list/utils"

	model "trending-list/internal/models"
)

// RankingService builds the publicly visible ordered list by merging
// vote-ranked events with purchased slots, and manages event lifecycle
type RankingService struct {
	provider repository.Provider
	events   repository.EventStore
}

// NewRankingService creates a new RankingService instance
func NewRankingService(provider repository.Provider, events repository.EventStore) *RankingService {
	return &RankingService{
		provider: provider,
		events:   events,
	}
}

// BuildRankedList returns the full merged list. Purchased events occupy their
// bought rank exactly; vote-ranked events fill the remaining positions in
// descending vote order. Pure read, no side effects.
func (s *RankingService) BuildRankedList(ctx context.Context) ([]model.Event, error) {
	ctx = s.provider.Readonly(ctx)

	organic, err := s.events.ListByDeletedAndRank(ctx, false, 0)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list vote-ranked events: %w", err)
	}
	purchased, err := s.events.ListByDeletedAndRankNot(ctx, false, 0)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list purchased events: %w", err)
	}

	byRank := make(map[int]model.Event, len(purchased))
	for _, event := range purchased {
		byRank[event.BoughtRank] = event
	}

	total := len(organic) + len(purchased)
	merged := make([]model.Event, 0, total)
	next := 0
	for position := 1; position <= total; position++ {
		if event, ok := byRank[position]; ok {
			merged = append(merged, event)
			continue
		}
		// a bought rank beyond the list length leaves its position unfilled
		if next < len(organic) {
			merged = append(merged, organic[next])
			next++
		}
	}
	return merged, nil
}

// BuildRankedListRange returns the 1-based inclusive window [start, end] of
// the merged list
func (s *RankingService) BuildRankedListRange(ctx context.Context, start, end int) ([]model.Event, error) {
	list, err := s.BuildRankedList(ctx)
	if err != nil {
		return nil, err
	}
	if start < 1 || start > end || end > len(list) {
		return nil, fmt.Errorf("service: %w - window [%d, %d] of %d entries", rankerrors.ErrInvalidRange, start, end, len(list))
	}
	return list[start-1 : end], nil
}

// GetEventAt returns the single entry at a 1-based position of the merged list
func (s *RankingService) GetEventAt(ctx context.Context, position int) (model.Event, error) {
	window, err := s.BuildRankedListRange(ctx, position, position)
	if err != nil {
		return model.Event{}, err
	}
	return window[0], nil
}

// CreateEvent registers a new event competing for the list
func (s *RankingService) CreateEvent(ctx context.Context, eventName, keyword, ownerID string) (model.Event, error) {
	if eventName == "" {
		return model.Event{}, fmt.Errorf("service: %w - missing event name", rankerrors.ErrInvalidEvent)
	}

	event := model.Event{
		EventID:   utils.GenerateID(),
		EventName: eventName,
		Keyword:   keyword,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.events.SaveEvent(ctx, event)
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("service: failed to save event %s: %w", event.EventID, err)
	}

	utils.Info("event created", map[string]any{
		"event_id":   event.EventID,
		"event_name": event.EventName,
		"keyword":    event.Keyword,
	})
	return event, nil
}

// RemoveEventsByOwner removes every event owned by the given user
func (s *RankingService) RemoveEventsByOwner(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("service: %w - missing owner ID", rankerrors.ErrInvalidEvent)
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.events.DeleteAllByOwner(ctx, ownerID)
	})
	if err != nil {
		return fmt.Errorf("service: failed to remove events for owner %s: %w", ownerID, err)
	}
	return nil
}
