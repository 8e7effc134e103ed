package auction

import (
	"context"
	"fmt"
	"time"

	"trending-list/internal/rankerrors"
	"trending-list/internal/repository"
	"trending-list/utils"

	model "trending-list/internal/models"
)

// AuctionService validates and applies bids on ranking slots and vote spends.
// Every read-decide-write unit runs inside a single store transaction.
type AuctionService struct {
	provider repository.Provider
	events   repository.EventStore
	voters   repository.VoterStore
	trades   repository.TradeLedger
	votes    repository.VoteLedger
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(
	provider repository.Provider,
	events repository.EventStore,
	voters repository.VoterStore,
	trades repository.TradeLedger,
	votes repository.VoteLedger,
) *AuctionService {
	return &AuctionService{
		provider: provider,
		events:   events,
		voters:   voters,
		trades:   trades,
		votes:    votes,
	}
}

// Buy places a bid for a ranking slot. An unoccupied rank is won by any
// non-negative amount; an occupied one only by exceeding the incumbent's
// amount, which soft-deletes the incumbent's event. Exactly one trade record
// is appended per successful call.
func (s *AuctionService) Buy(ctx context.Context, eventID string, amount float64, targetRank int) (model.Trade, error) {
	if eventID == "" {
		return model.Trade{}, fmt.Errorf("service: %w - missing event ID", rankerrors.ErrInvalidTrade)
	}
	if amount < 0 {
		return model.Trade{}, fmt.Errorf("service: %w - negative amount", rankerrors.ErrInvalidTrade)
	}
	if targetRank < 1 {
		return model.Trade{}, fmt.Errorf("service: %w - non-positive rank", rankerrors.ErrInvalidTrade)
	}

	var trade model.Trade
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.events.LockEvent(ctx, eventID); err != nil {
			return err
		}
		target, err := s.events.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if target.Deleted {
			return fmt.Errorf("buy event %s: %w", eventID, rankerrors.ErrEventNotFound)
		}

		active, err := s.countActiveEvents(ctx)
		if err != nil {
			return err
		}

		if err := s.trades.LockRank(ctx, targetRank); err != nil {
			return err
		}
		history, err := s.trades.ListTradesByRank(ctx, targetRank)
		if err != nil {
			return err
		}

		var evicted *model.Event
		if len(history) > 0 {
			incumbent := incumbentOf(history)
			if incumbent.EventID != eventID {
				if amount <= incumbent.Amount {
					return fmt.Errorf("service: %w - current slot price is %.2f", rankerrors.ErrAmountNotEnough, incumbent.Amount)
				}
				if err := s.events.LockEvent(ctx, incumbent.EventID); err != nil {
					return err
				}
				holder, err := s.events.GetEvent(ctx, incumbent.EventID)
				if err != nil {
					return err
				}
				if !holder.Deleted {
					evicted = &holder
				}
			}
		}

		// the merge relies on bought ranks never exceeding the list length;
		// evicting a live incumbent shrinks the list by one
		bound := active
		if evicted != nil {
			bound--
		}
		if targetRank > bound {
			return fmt.Errorf("service: %w - rank %d exceeds list length %d", rankerrors.ErrRankOutOfRange, targetRank, bound)
		}

		if evicted != nil {
			evicted.Deleted = true
			if err := s.events.SaveEvent(ctx, *evicted); err != nil {
				return err
			}
		}

		target.BoughtRank = targetRank
		if err := s.events.SaveEvent(ctx, target); err != nil {
			return err
		}

		trade = model.Trade{
			TradeID:   utils.GenerateID(),
			EventID:   eventID,
			Amount:    amount,
			Rank:      targetRank,
			CreatedAt: time.Now().UTC(),
		}
		return s.trades.RecordTrade(ctx, trade)
	})
	if err != nil {
		return model.Trade{}, err
	}

	utils.Info("slot purchased", map[string]any{
		"trade_id": trade.TradeID,
		"event_id": trade.EventID,
		"rank":     trade.Rank,
		"amount":   trade.Amount,
	})
	return trade, nil
}

// Vote spends part of a voter's balance on an event: one vote record appended,
// balance decremented, event vote count incremented, all as one unit
func (s *AuctionService) Vote(ctx context.Context, voterID, eventID string, quantity int, at time.Time) (model.Vote, error) {
	if voterID == "" || eventID == "" {
		return model.Vote{}, fmt.Errorf("service: %w - missing voter or event ID", rankerrors.ErrInvalidVote)
	}
	if quantity <= 0 {
		return model.Vote{}, fmt.Errorf("service: %w - non-positive quantity", rankerrors.ErrInvalidVote)
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	var vote model.Vote
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.voters.LockVoter(ctx, voterID); err != nil {
			return err
		}
		if err := s.events.LockEvent(ctx, eventID); err != nil {
			return err
		}
		voter, err := s.voters.GetVoter(ctx, voterID)
		if err != nil {
			return err
		}
		event, err := s.events.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if event.Deleted {
			return fmt.Errorf("vote event %s: %w", eventID, rankerrors.ErrEventNotFound)
		}
		if quantity > voter.VoteBalance {
			return fmt.Errorf("service: %w - balance %d, requested %d", rankerrors.ErrInsufficientBalance, voter.VoteBalance, quantity)
		}

		vote = model.Vote{
			VoteID:    utils.GenerateID(),
			VoterID:   voterID,
			EventID:   eventID,
			Quantity:  quantity,
			CreatedAt: at,
		}
		if err := s.votes.RecordVote(ctx, vote); err != nil {
			return err
		}

		voter.VoteBalance -= quantity
		if err := s.voters.SaveVoter(ctx, voter); err != nil {
			return err
		}

		event.VoteCount += quantity
		return s.events.SaveEvent(ctx, event)
	})
	if err != nil {
		return model.Vote{}, err
	}

	utils.Info("vote recorded", map[string]any{
		"vote_id":  vote.VoteID,
		"voter_id": vote.VoterID,
		"event_id": vote.EventID,
		"quantity": vote.Quantity,
	})
	return vote, nil
}

// ListTrades returns the full bid ledger in insertion order
func (s *AuctionService) ListTrades(ctx context.Context) ([]model.Trade, error) {
	ctx = s.provider.Readonly(ctx)
	trades, err := s.trades.ListTrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list trades: %w", err)
	}
	return trades, nil
}

// incumbentOf picks the max-amount trade; the earliest wins on equal amounts
func incumbentOf(history []model.Trade) model.Trade {
	incumbent := history[0]
	for _, trade := range history[1:] {
		if trade.Amount > incumbent.Amount {
			incumbent = trade
		}
	}
	return incumbent
}

func (s *AuctionService) countActiveEvents(ctx context.Context) (int, error) {
	all, err := s.events.ListEvents(ctx)
	if err != nil {
		return 0, err
	}
	active := 0
	for _, event := range all {
		if !event.Deleted {
			active++
		}
	}
	return active, nil
}
