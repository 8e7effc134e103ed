package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"trending-list/config"
	auction "trending-list/internal/auctionService"
	ranking "trending-list/internal/rankingService"
	"trending-list/internal/repository"
	"trending-list/internal/server"
	"trending-list/utils"

	model "trending-list/internal/models"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	conf := config.Load()
	utils.SetLevel(conf.Log.Level)

	var (
		provider repository.Provider
		events   repository.EventStore
		voters   repository.VoterStore
		trades   repository.TradeLedger
		votes    repository.VoteLedger
	)

	switch conf.Storage.Backend {
	case "mysql":
		db := conf.MySQL.MustConnect()
		provider = repository.NewSQLProvider(db)
		events = repository.NewMySQLEventStore()
		voters = repository.NewMySQLVoterStore()
		trades = repository.NewMySQLTradeLedger()
		votes = repository.NewMySQLVoteLedger()
	default:
		store := repository.NewMemoryStore()
		prepopulate(store)
		provider, events, voters, trades, votes = store, store, store, store, store
	}

	rankingService := ranking.NewRankingService(provider, events)
	auctionService := auction.NewAuctionService(provider, events, voters, trades, votes)

	router := server.SetupRouter(rankingService, auctionService)

	addr := conf.Server.ListenString()
	fmt.Printf("Starting trending-list server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate seeds sample events and voters into the in-memory store
func prepopulate(store *repository.MemoryStore) {
	ctx := context.Background()
	now := time.Now().UTC()

	eventList := []model.Event{
		{EventID: "event1", EventName: "first event", Keyword: "news", VoteCount: 5, OwnerID: "owner1", CreatedAt: now},
		{EventID: "event2", EventName: "second event", Keyword: "sports", VoteCount: 3, OwnerID: "owner1", CreatedAt: now},
		{EventID: "event3", EventName: "third event", Keyword: "tech", VoteCount: 1, OwnerID: "owner2", CreatedAt: now},
	}
	for _, event := range eventList {
		if err := store.SaveEvent(ctx, event); err != nil {
			utils.Fatal("failed to seed event", map[string]any{"event_id": event.EventID, "error": err.Error()})
		}
	}

	voterList := []model.Voter{
		{VoterID: "voter1", Username: "alice", VoteBalance: 10},
		{VoterID: "voter2", Username: "bob", VoteBalance: 10},
	}
	for _, voter := range voterList {
		if err := store.SaveVoter(ctx, voter); err != nil {
			utils.Fatal("failed to seed voter", map[string]any{"voter_id": voter.VoterID, "error": err.Error()})
		}
	}
}
