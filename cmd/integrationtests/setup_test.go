package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "trending-list/internal/auctionService"
	model "trending-list/internal/models"
	ranking "trending-list/internal/rankingService"
	"trending-list/internal/repository"
	"trending-list/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with the in-memory store for integration testing.
func SetupTestRouter() (*gin.Engine, *repository.MemoryStore) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	rankingService := ranking.NewRankingService(store, store)
	auctionService := auction.NewAuctionService(store, store, store, store, store)
	router := server.SetupRouter(rankingService, auctionService)
	return router, store
}

// SetupTestRouterWithSeed initializes the router and seeds the store with events and voters.
func SetupTestRouterWithSeed(t *testing.T, events []model.Event, voters []model.Voter) *gin.Engine {
	t.Helper()

	router, store := SetupTestRouter()
	ctx := context.Background()
	for _, event := range events {
		if err := store.SaveEvent(ctx, event); err != nil {
			t.Fatalf("failed to seed event: %v", err)
		}
	}
	for _, voter := range voters {
		if err := store.SaveVoter(ctx, voter); err != nil {
			t.Fatalf("failed to seed voter: %v", err)
		}
	}
	return router
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
