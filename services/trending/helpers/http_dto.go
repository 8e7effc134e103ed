package helpers

// Request/Response DTOs
type CreateEventRequest struct {
	EventName string `json:"event_name" binding:"required"`
	Keyword   string `json:"keyword"`
	OwnerID   string `json:"owner_id"`
}

type VoteRequest struct {
	VoterID  string `json:"voter_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Time     string `json:"time"` // RFC3339, optional
}

// Amount deliberately has no "required" tag: a zero bid is valid on an
// unoccupied rank
type BuyRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	Rank   int     `json:"rank" binding:"required,gt=0"`
}

type EventResponse struct {
	EventID    string `json:"event_id"`
	EventName  string `json:"event_name"`
	Keyword    string `json:"keyword"`
	VoteCount  int    `json:"vote_count"`
	BoughtRank int    `json:"bought_rank"`
}

type VoteResponse struct {
	VoteID    string `json:"vote_id"`
	VoterID   string `json:"voter_id"`
	EventID   string `json:"event_id"`
	Quantity  int    `json:"quantity"`
	CreatedAt string `json:"created_at"`
}

type TradeResponse struct {
	TradeID   string  `json:"trade_id"`
	EventID   string  `json:"event_id"`
	Amount    float64 `json:"amount"`
	Rank      int     `json:"rank"`
	CreatedAt string  `json:"created_at"`
}
