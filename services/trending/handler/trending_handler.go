package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trending-list/services/trending/helpers"
	"trending-list/utils"

	model "trending-list/internal/models"

	"github.com/gin-gonic/gin"
)

type RankingServiceInterface interface {
	BuildRankedList(ctx context.Context) ([]model.Event, error)
	BuildRankedListRange(ctx context.Context, start, end int) ([]model.Event, error)
	GetEventAt(ctx context.Context, position int) (model.Event, error)
	CreateEvent(ctx context.Context, eventName, keyword, ownerID string) (model.Event, error)
	RemoveEventsByOwner(ctx context.Context, ownerID string) error
}

type AuctionServiceInterface interface {
	Buy(ctx context.Context, eventID string, amount float64, targetRank int) (model.Trade, error)
	Vote(ctx context.Context, voterID, eventID string, quantity int, at time.Time) (model.Vote, error)
	ListTrades(ctx context.Context) ([]model.Trade, error)
}

type TrendingHandler struct {
	ranking RankingServiceInterface
	auction AuctionServiceInterface
}

func NewTrendingHandler(ranking RankingServiceInterface, auction AuctionServiceInterface) *TrendingHandler {
	return &TrendingHandler{ranking: ranking, auction: auction}
}

// ListRankingHandler handles GET /ranking with an optional ?start=&end= window
func (h *TrendingHandler) ListRankingHandler(c *gin.Context) {
	startStr, hasStart := c.GetQuery("start")
	endStr, hasEnd := c.GetQuery("end")

	var events []model.Event
	var err error
	if hasStart || hasEnd {
		start, convErr := strconv.Atoi(startStr)
		if convErr != nil {
			helpers.HandleBindError(c, "ListRankingHandler", fmt.Errorf("invalid start %q", startStr))
			return
		}
		end, convErr := strconv.Atoi(endStr)
		if convErr != nil {
			helpers.HandleBindError(c, "ListRankingHandler", fmt.Errorf("invalid end %q", endStr))
			return
		}
		events, err = h.ranking.BuildRankedListRange(c.Request.Context(), start, end)
	} else {
		events, err = h.ranking.BuildRankedList(c.Request.Context())
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListRankingHandler: error building list", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.EventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, toEventResponse(event))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "ranking retrieved successfully")
	helpers.LogSuccess("ListRankingHandler", "ranking retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetRankingEntryHandler handles GET /ranking/:position
func (h *TrendingHandler) GetRankingEntryHandler(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		helpers.HandleBindError(c, "GetRankingEntryHandler", fmt.Errorf("invalid position %q", c.Param("position")))
		return
	}

	event, err := h.ranking.GetEventAt(c.Request.Context(), position)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetRankingEntryHandler: error retrieving entry", map[string]any{
			"position": position,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toEventResponse(event), "entry retrieved successfully")
	helpers.LogSuccess("GetRankingEntryHandler", "entry retrieved successfully", map[string]any{
		"position": position,
		"event_id": event.EventID,
	})
}

// CreateEventHandler handles POST /events
func (h *TrendingHandler) CreateEventHandler(c *gin.Context) {
	var req helpers.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateEventHandler", err)
		return
	}

	event, err := h.ranking.CreateEvent(c.Request.Context(), req.EventName, req.Keyword, req.OwnerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateEventHandler: failed to create event", map[string]any{
			"event_name": req.EventName,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toEventResponse(event), "event created successfully")
	helpers.LogSuccess("CreateEventHandler", "event created successfully", map[string]any{
		"event_id":   event.EventID,
		"event_name": event.EventName,
	})
}

// VoteHandler handles POST /events/:event_id/votes
func (h *TrendingHandler) VoteHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	var req helpers.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VoteHandler", err)
		return
	}

	var at time.Time
	if req.Time != "" {
		parsed, err := time.Parse(time.RFC3339, req.Time)
		if err != nil {
			helpers.HandleBindError(c, "VoteHandler", fmt.Errorf("invalid time %q", req.Time))
			return
		}
		at = parsed
	}

	vote, err := h.auction.Vote(c.Request.Context(), req.VoterID, eventID, req.Quantity, at)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("VoteHandler: failed to record vote", map[string]any{
			"event_id": eventID,
			"voter_id": req.VoterID,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.VoteResponse{
		VoteID:    vote.VoteID,
		VoterID:   vote.VoterID,
		EventID:   vote.EventID,
		Quantity:  vote.Quantity,
		CreatedAt: vote.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "vote recorded successfully")
	helpers.LogSuccess("VoteHandler", "vote recorded successfully", map[string]any{
		"vote_id":  vote.VoteID,
		"event_id": vote.EventID,
		"voter_id": vote.VoterID,
		"quantity": vote.Quantity,
	})
}

// BuyHandler handles POST /events/:event_id/trades
func (h *TrendingHandler) BuyHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	var req helpers.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyHandler", err)
		return
	}

	trade, err := h.auction.Buy(c.Request.Context(), eventID, req.Amount, req.Rank)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("BuyHandler: failed to buy slot", map[string]any{
			"event_id": eventID,
			"rank":     req.Rank,
			"amount":   req.Amount,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toTradeResponse(trade), "slot purchased successfully")
	helpers.LogSuccess("BuyHandler", "slot purchased successfully", map[string]any{
		"trade_id": trade.TradeID,
		"event_id": trade.EventID,
		"rank":     trade.Rank,
		"amount":   trade.Amount,
	})
}

// ListTradesHandler handles GET /trades
func (h *TrendingHandler) ListTradesHandler(c *gin.Context) {
	trades, err := h.auction.ListTrades(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListTradesHandler: error retrieving trades", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.TradeResponse, 0, len(trades))
	for _, trade := range trades {
		resp = append(resp, toTradeResponse(trade))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "trades retrieved successfully")
	helpers.LogSuccess("ListTradesHandler", "trades retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// RemoveOwnerEventsHandler handles DELETE /owners/:owner_id/events
func (h *TrendingHandler) RemoveOwnerEventsHandler(c *gin.Context) {
	ownerID := c.Param("owner_id")

	if err := h.ranking.RemoveEventsByOwner(c.Request.Context(), ownerID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RemoveOwnerEventsHandler: failed to remove events", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "events removed successfully")
	helpers.LogSuccess("RemoveOwnerEventsHandler", "events removed successfully", map[string]any{
		"owner_id": ownerID,
	})
}

func toEventResponse(event model.Event) helpers.EventResponse {
	return helpers.EventResponse{
		EventID:    event.EventID,
		EventName:  event.EventName,
		Keyword:    event.Keyword,
		VoteCount:  event.VoteCount,
		BoughtRank: event.BoughtRank,
	}
}

func toTradeResponse(trade model.Trade) helpers.TradeResponse {
	return helpers.TradeResponse{
		TradeID:   trade.TradeID,
		EventID:   trade.EventID,
		Amount:    trade.Amount,
		Rank:      trade.Rank,
		CreatedAt: trade.CreatedAt.UTC().Format(time.RFC3339),
	}
}
