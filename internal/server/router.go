package server

import (
	auction "trending-list/internal/auctionService"
	ranking "trending-list/internal/rankingService"
	handler "trending-list/services/trending/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(rankingService *ranking.RankingService, auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	trendingHandler := handler.NewTrendingHandler(rankingService, auctionService)

	rankingGroup := router.Group("/ranking")
	{
		rankingGroup.GET("", trendingHandler.ListRankingHandler)
		rankingGroup.GET("/:position", trendingHandler.GetRankingEntryHandler)
	}

	events := router.Group("/events")
	{
		events.POST("", trendingHandler.CreateEventHandler)
		events.POST("/:event_id/votes", trendingHandler.VoteHandler)
		events.POST("/:event_id/trades", trendingHandler.BuyHandler)
	}

	trades := router.Group("/trades")
	{
		trades.GET("", trendingHandler.ListTradesHandler)
	}

	owners := router.Group("/owners")
	{
		owners.DELETE("/:owner_id/events", trendingHandler.RemoveOwnerEventsHandler)
	}

	return router
}
