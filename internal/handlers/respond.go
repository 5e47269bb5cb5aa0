package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"Shop/internal/permissions"
	"Shop/internal/service"

	"github.com/gin-gonic/gin"
)

// bindError responds 422 for request-binding failures (wrong types, missing
// or out-of-range fields), before any domain logic runs.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// domainError maps service error kinds onto HTTP statuses. Client-facing
// errors pass their message through as detail; anything unclassified is
// logged in full and withheld from the client.
func domainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, permissions.ErrNotEnoughPermissions):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrIntegrity):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrReminderInPast):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	default:
		slog.Error("unhandled error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"err", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

// MethodNotAllowed answers paths that only exist with a different method or
// with an id segment, e.g. GET /cart/get-by-id without an id.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "method not allowed"})
}
