package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"trending-list/internal/rankerrors"
	"trending-list/internal/repository"

	model "trending-list/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestService(store *repository.MemoryStore) *AuctionService {
	return NewAuctionService(store, store, store, store, store)
}

func seedEvent(t *testing.T, store *repository.MemoryStore, eventID string, voteCount, boughtRank int) {
	t.Helper()
	err := store.SaveEvent(context.Background(), model.Event{
		EventID:    eventID,
		EventName:  eventID + " name",
		Keyword:    "keyword",
		VoteCount:  voteCount,
		BoughtRank: boughtRank,
		OwnerID:    "owner1",
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
}

func seedVoter(t *testing.T, store *repository.MemoryStore, voterID string, balance int) {
	t.Helper()
	err := store.SaveVoter(context.Background(), model.Voter{
		VoterID:     voterID,
		Username:    voterID,
		VoteBalance: balance,
	})
	require.NoError(t, err)
}

// Tests Buy input validation
func TestAuctionService_Buy_Validation(t *testing.T) {
	tests := []struct {
		name          string
		eventID       string
		amount        float64
		rank          int
		expectedError error
	}{
		{name: "empty_event_id", eventID: "", amount: 10, rank: 1, expectedError: rankerrors.ErrInvalidTrade},
		{name: "negative_amount", eventID: "event1", amount: -1, rank: 1, expectedError: rankerrors.ErrInvalidTrade},
		{name: "zero_rank", eventID: "event1", amount: 10, rank: 0, expectedError: rankerrors.ErrInvalidTrade},
		{name: "negative_rank", eventID: "event1", amount: 10, rank: -3, expectedError: rankerrors.ErrInvalidTrade},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := repository.NewMemoryStore()
			seedEvent(t, store, "event1", 0, 0)
			service := newTestService(store)

			_, err := service.Buy(context.Background(), tc.eventID, tc.amount, tc.rank)
			require.ErrorIs(t, err, tc.expectedError)

			trades, listErr := store.ListTrades(context.Background())
			require.NoError(t, listErr)
			require.Empty(t, trades, "failed bid must not touch the ledger")
		})
	}
}

// Tests buying an unoccupied rank, including a zero amount
func TestAuctionService_Buy_UnoccupiedRank(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 0)
	service := newTestService(store)

	trade, err := service.Buy(context.Background(), "event1", 0, 1)
	require.NoError(t, err)
	require.NotEmpty(t, trade.TradeID)
	_, parseErr := uuid.Parse(trade.TradeID)
	require.NoError(t, parseErr, "TradeID should be a valid UUID")
	require.Equal(t, 0.0, trade.Amount)
	require.Equal(t, 1, trade.Rank)

	event, err := store.GetEvent(context.Background(), "event1")
	require.NoError(t, err)
	require.Equal(t, 1, event.BoughtRank)
	require.Equal(t, 5, event.VoteCount, "buying must not change the vote count")

	trades, err := store.ListTrades(context.Background())
	require.NoError(t, err)
	require.Len(t, trades, 1)
}

// Tests outbidding: higher amount replaces and tombstones the incumbent
func TestAuctionService_Buy_OutbidReplacesIncumbent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 0)
	seedEvent(t, store, "event2", 2, 0)
	service := newTestService(store)

	_, err := service.Buy(ctx, "event1", 10, 1)
	require.NoError(t, err)

	_, err = service.Buy(ctx, "event2", 20, 1)
	require.NoError(t, err)

	outbid, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.True(t, outbid.Deleted, "outbid event must be soft-deleted")

	winner, err := store.GetEvent(ctx, "event2")
	require.NoError(t, err)
	require.False(t, winner.Deleted)
	require.Equal(t, 1, winner.BoughtRank)

	trades, err := store.ListTrades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 2, "the ledger keeps both bids")
}

// Tests that a bid not exceeding the incumbent fails without mutation
func TestAuctionService_Buy_AmountNotEnough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 0)
	seedEvent(t, store, "event2", 2, 0)
	service := newTestService(store)

	_, err := service.Buy(ctx, "event1", 10, 1)
	require.NoError(t, err)

	for _, amount := range []float64{5, 10} {
		_, err = service.Buy(ctx, "event2", amount, 1)
		require.ErrorIs(t, err, rankerrors.ErrAmountNotEnough)
	}

	incumbent, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.False(t, incumbent.Deleted)
	require.Equal(t, 1, incumbent.BoughtRank)

	challenger, err := store.GetEvent(ctx, "event2")
	require.NoError(t, err)
	require.Equal(t, 0, challenger.BoughtRank)

	trades, err := store.ListTrades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1, "failed bids must not reach the ledger")
}

// Tests that the current occupant may re-bid at any amount
func TestAuctionService_Buy_RebidByOccupant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 0)
	service := newTestService(store)

	_, err := service.Buy(ctx, "event1", 10, 1)
	require.NoError(t, err)

	// lower than its own previous bid, still accepted
	_, err = service.Buy(ctx, "event1", 3, 1)
	require.NoError(t, err)

	event, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.False(t, event.Deleted)
	require.Equal(t, 1, event.BoughtRank)

	trades, err := store.ListTrades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 2)
}

// Tests the earliest-wins tie-break between equal max amounts
func TestAuctionService_Buy_TieBreakEarliestIncumbent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 1)
	seedEvent(t, store, "event2", 4, 0)
	seedEvent(t, store, "event3", 3, 0)
	service := newTestService(store)

	now := time.Now().UTC()
	require.NoError(t, store.RecordTrade(ctx, model.Trade{TradeID: "trade1", EventID: "event1", Amount: 10, Rank: 1, CreatedAt: now}))
	require.NoError(t, store.RecordTrade(ctx, model.Trade{TradeID: "trade2", EventID: "event2", Amount: 10, Rank: 1, CreatedAt: now.Add(time.Second)}))

	// the earliest max-amount trade is the incumbent, so 10 is not enough
	_, err := service.Buy(ctx, "event3", 10, 1)
	require.ErrorIs(t, err, rankerrors.ErrAmountNotEnough)

	// beating the tie tombstones the earliest bidder's event
	_, err = service.Buy(ctx, "event3", 11, 1)
	require.NoError(t, err)

	earliest, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.True(t, earliest.Deleted)

	later, err := store.GetEvent(ctx, "event2")
	require.NoError(t, err)
	require.False(t, later.Deleted)
}

// Tests that evicting a live incumbent tightens the rank bound: the list
// shrinks by one, so winning its former last position would leave the
// winner's bought rank dangling past the end
func TestAuctionService_Buy_EvictionKeepsRankInRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 0)
	seedEvent(t, store, "event2", 2, 0)
	service := newTestService(store)

	_, err := service.Buy(ctx, "event1", 10, 2)
	require.NoError(t, err)

	// outbidding the last rank of a two-entry list would shrink it to one
	_, err = service.Buy(ctx, "event2", 20, 2)
	require.ErrorIs(t, err, rankerrors.ErrRankOutOfRange)

	incumbent, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.False(t, incumbent.Deleted, "rejected bid must not evict the incumbent")

	trades, err := store.ListTrades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	// the occupant itself may still re-bid the last rank, nothing is evicted
	_, err = service.Buy(ctx, "event1", 3, 2)
	require.NoError(t, err)

	// with a third event the eviction leaves rank 2 within the shrunk list
	seedEvent(t, store, "event3", 1, 0)
	_, err = service.Buy(ctx, "event2", 20, 2)
	require.NoError(t, err)

	evicted, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.True(t, evicted.Deleted)

	winner, err := store.GetEvent(ctx, "event2")
	require.NoError(t, err)
	require.Equal(t, 2, winner.BoughtRank)
}

// Tests that a rank stays biddable after its holder's owner removed the event:
// the ledger price persists and a higher bid wins without error
func TestAuctionService_Buy_AfterOwnerRemoval(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 0)
	event2 := model.Event{EventID: "event2", EventName: "event2 name", VoteCount: 2, OwnerID: "owner2", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.SaveEvent(ctx, event2))
	service := newTestService(store)

	_, err := service.Buy(ctx, "event1", 10, 1)
	require.NoError(t, err)
	require.NoError(t, store.DeleteAllByOwner(ctx, "owner1"))

	// the departed holder's price still guards the rank
	_, err = service.Buy(ctx, "event2", 10, 1)
	require.ErrorIs(t, err, rankerrors.ErrAmountNotEnough)

	_, err = service.Buy(ctx, "event2", 20, 1)
	require.NoError(t, err)

	winner, err := store.GetEvent(ctx, "event2")
	require.NoError(t, err)
	require.False(t, winner.Deleted)
	require.Equal(t, 1, winner.BoughtRank)
}

// Tests the rank bound against the current list length
func TestAuctionService_Buy_RankOutOfRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 5, 0)
	seedEvent(t, store, "event2", 2, 0)
	service := newTestService(store)

	_, err := service.Buy(ctx, "event1", 10, 3)
	require.ErrorIs(t, err, rankerrors.ErrRankOutOfRange)

	trades, err := store.ListTrades(ctx)
	require.NoError(t, err)
	require.Empty(t, trades)

	// rank equal to the list length is accepted
	_, err = service.Buy(ctx, "event1", 10, 2)
	require.NoError(t, err)
}

// Tests bids on missing or tombstoned events
func TestAuctionService_Buy_EventNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	tombstoned := model.Event{EventID: "event1", EventName: "gone", Deleted: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, store.SaveEvent(ctx, tombstoned))
	service := newTestService(store)

	_, err := service.Buy(ctx, "missing", 10, 1)
	require.ErrorIs(t, err, rankerrors.ErrEventNotFound)

	_, err = service.Buy(ctx, "event1", 10, 1)
	require.ErrorIs(t, err, rankerrors.ErrEventNotFound)
}

// Tests Vote input validation
func TestAuctionService_Vote_Validation(t *testing.T) {
	tests := []struct {
		name          string
		voterID       string
		eventID       string
		quantity      int
		expectedError error
	}{
		{name: "empty_voter_id", voterID: "", eventID: "event1", quantity: 1, expectedError: rankerrors.ErrInvalidVote},
		{name: "empty_event_id", voterID: "voter1", eventID: "", quantity: 1, expectedError: rankerrors.ErrInvalidVote},
		{name: "zero_quantity", voterID: "voter1", eventID: "event1", quantity: 0, expectedError: rankerrors.ErrInvalidVote},
		{name: "negative_quantity", voterID: "voter1", eventID: "event1", quantity: -2, expectedError: rankerrors.ErrInvalidVote},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := repository.NewMemoryStore()
			seedEvent(t, store, "event1", 0, 0)
			seedVoter(t, store, "voter1", 10)
			service := newTestService(store)

			_, err := service.Vote(context.Background(), tc.voterID, tc.eventID, tc.quantity, time.Time{})
			require.ErrorIs(t, err, tc.expectedError)

			votes, listErr := store.ListVotes(context.Background())
			require.NoError(t, listErr)
			require.Empty(t, votes)
		})
	}
}

// Tests the successful vote unit: record + decrement + increment
func TestAuctionService_Vote_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 0, 0)
	seedVoter(t, store, "voter1", 10)
	service := newTestService(store)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	vote, err := service.Vote(ctx, "voter1", "event1", 1, at)
	require.NoError(t, err)
	require.NotEmpty(t, vote.VoteID)
	_, parseErr := uuid.Parse(vote.VoteID)
	require.NoError(t, parseErr, "VoteID should be a valid UUID")
	require.Equal(t, at, vote.CreatedAt)

	voter, err := store.GetVoter(ctx, "voter1")
	require.NoError(t, err)
	require.Equal(t, 9, voter.VoteBalance)

	event, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.Equal(t, 1, event.VoteCount)

	votes, err := store.ListVotes(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	require.Equal(t, vote, votes[0])
}

// Tests spending the whole balance
func TestAuctionService_Vote_ExactBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 2, 0)
	seedVoter(t, store, "voter1", 7)
	service := newTestService(store)

	_, err := service.Vote(ctx, "voter1", "event1", 7, time.Time{})
	require.NoError(t, err)

	voter, err := store.GetVoter(ctx, "voter1")
	require.NoError(t, err)
	require.Equal(t, 0, voter.VoteBalance)

	event, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.Equal(t, 9, event.VoteCount)
}

// Tests the insufficient balance failure leaves state unchanged
func TestAuctionService_Vote_InsufficientBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 3, 0)
	seedVoter(t, store, "voter1", 2)
	service := newTestService(store)

	_, err := service.Vote(ctx, "voter1", "event1", 5, time.Time{})
	require.ErrorIs(t, err, rankerrors.ErrInsufficientBalance)

	voter, err := store.GetVoter(ctx, "voter1")
	require.NoError(t, err)
	require.Equal(t, 2, voter.VoteBalance)

	event, err := store.GetEvent(ctx, "event1")
	require.NoError(t, err)
	require.Equal(t, 3, event.VoteCount)

	votes, err := store.ListVotes(ctx)
	require.NoError(t, err)
	require.Empty(t, votes)
}

// Tests missing voter and missing event failures
func TestAuctionService_Vote_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedEvent(t, store, "event1", 0, 0)
	seedVoter(t, store, "voter1", 10)
	service := newTestService(store)

	_, err := service.Vote(ctx, "ghost", "event1", 1, time.Time{})
	require.ErrorIs(t, err, rankerrors.ErrVoterNotFound)

	_, err = service.Vote(ctx, "voter1", "missing", 1, time.Time{})
	require.ErrorIs(t, err, rankerrors.ErrEventNotFound)

	voter, err := store.GetVoter(ctx, "voter1")
	require.NoError(t, err)
	require.Equal(t, 10, voter.VoteBalance, "failed votes must not spend balance")
}

// Tests that the vote unit locks both the voter and event rows before
// reading them, so concurrent votes on one event cannot lose increments
func TestAuctionService_Vote_LocksRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := repository.NewMockProvider(ctrl)
	mockEvents := repository.NewMockEventStore(ctrl)
	mockVoters := repository.NewMockVoterStore(ctrl)
	mockTrades := repository.NewMockTradeLedger(ctrl)
	mockVotes := repository.NewMockVoteLedger(ctrl)
	service := NewAuctionService(mockProvider, mockEvents, mockVoters, mockTrades, mockVotes)

	mockProvider.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	gomock.InOrder(
		mockVoters.EXPECT().LockVoter(gomock.Any(), "voter1").Return(nil),
		mockEvents.EXPECT().LockEvent(gomock.Any(), "event1").Return(nil),
		mockVoters.EXPECT().GetVoter(gomock.Any(), "voter1").Return(model.Voter{VoterID: "voter1", VoteBalance: 10}, nil),
		mockEvents.EXPECT().GetEvent(gomock.Any(), "event1").Return(model.Event{EventID: "event1", VoteCount: 3}, nil),
		mockVotes.EXPECT().RecordVote(gomock.Any(), gomock.Any()).Return(nil),
		mockVoters.EXPECT().SaveVoter(gomock.Any(), model.Voter{VoterID: "voter1", VoteBalance: 8}).Return(nil),
		mockEvents.EXPECT().SaveEvent(gomock.Any(), model.Event{EventID: "event1", VoteCount: 5}).Return(nil),
	)

	vote, err := service.Vote(context.Background(), "voter1", "event1", 2, time.Time{})
	require.NoError(t, err)
	require.Equal(t, 2, vote.Quantity)
}

// Tests store failure propagation through the transaction
func TestAuctionService_Buy_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := repository.NewMockProvider(ctrl)
	mockEvents := repository.NewMockEventStore(ctrl)
	mockVoters := repository.NewMockVoterStore(ctrl)
	mockTrades := repository.NewMockTradeLedger(ctrl)
	mockVotes := repository.NewMockVoteLedger(ctrl)
	service := NewAuctionService(mockProvider, mockEvents, mockVoters, mockTrades, mockVotes)

	repoErr := errors.New("repo write failed")

	mockProvider.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	mockEvents.EXPECT().LockEvent(gomock.Any(), "event1").Return(nil)
	mockEvents.EXPECT().GetEvent(gomock.Any(), "event1").Return(model.Event{EventID: "event1"}, nil)
	mockEvents.EXPECT().ListEvents(gomock.Any()).Return([]model.Event{{EventID: "event1"}}, nil)
	mockTrades.EXPECT().LockRank(gomock.Any(), 1).Return(nil)
	mockTrades.EXPECT().ListTradesByRank(gomock.Any(), 1).Return(nil, nil)
	mockEvents.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockTrades.EXPECT().RecordTrade(gomock.Any(), gomock.Any()).Return(repoErr)

	_, err := service.Buy(context.Background(), "event1", 10, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, repoErr)
}
