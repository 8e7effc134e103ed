package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"trending-list/internal/rankerrors"
	"trending-list/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, rankerrors.ErrEventNotFound):
		return http.StatusNotFound, "event not found"
	case errors.Is(err, rankerrors.ErrVoterNotFound):
		return http.StatusNotFound, "voter not found"
	case errors.Is(err, rankerrors.ErrInvalidEvent):
		return http.StatusBadRequest, "invalid event details"
	case errors.Is(err, rankerrors.ErrInvalidVote):
		return http.StatusBadRequest, "invalid vote details"
	case errors.Is(err, rankerrors.ErrInvalidTrade):
		return http.StatusBadRequest, "invalid trade details"
	case errors.Is(err, rankerrors.ErrInsufficientBalance):
		return http.StatusBadRequest, "insufficient vote balance"
	case errors.Is(err, rankerrors.ErrAmountNotEnough):
		return http.StatusBadRequest, "amount not enough"
	case errors.Is(err, rankerrors.ErrRankOutOfRange):
		return http.StatusBadRequest, "target rank out of range"
	case errors.Is(err, rankerrors.ErrInvalidRange):
		return http.StatusBadRequest, "invalid list range"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
