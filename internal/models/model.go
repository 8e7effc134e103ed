package models

import "time"

// Event represents an entry on the trending list, ranked by votes or
// by a purchased slot
type Event struct {
	EventID   string `json:"event_id" db:"event_id"`
	EventName string `json:"event_name" db:"event_name"`
	Keyword   string `json:"keyword" db:"keyword"`
	VoteCount int    `json:"vote_count" db:"vote_count"`
	// BoughtRank is 0 for vote-ranked events, otherwise the 1-based slot the event holds
	BoughtRank int       `json:"bought_rank" db:"bought_rank"`
	Deleted    bool      `json:"deleted" db:"deleted"`
	OwnerID    string    `json:"owner_id" db:"owner_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Voter represents a user holding a spendable vote balance
type Voter struct {
	VoterID     string `json:"voter_id" db:"voter_id"`
	Username    string `json:"username" db:"username"`
	VoteBalance int    `json:"vote_balance" db:"vote_balance"`
}

// Vote represents a single spend of votes on an event
type Vote struct {
	VoteID    string    `json:"vote_id" db:"vote_id"`
	VoterID   string    `json:"voter_id" db:"voter_id"`
	EventID   string    `json:"event_id" db:"event_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Trade represents a bid placed on a ranking slot
type Trade struct {
	TradeID   string    `json:"trade_id" db:"trade_id"`
	EventID   string    `json:"event_id" db:"event_id"`
	Amount    float64   `json:"amount" db:"amount"`
	Rank      int       `json:"rank" db:"target_rank"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
