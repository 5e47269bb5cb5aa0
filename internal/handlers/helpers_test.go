package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Shop/internal/permissions"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// grantChecker is a permissions.Checker granting exactly the listed permissions.
type grantChecker struct {
	granted map[string]bool
}

func grants(perms ...string) grantChecker {
	g := map[string]bool{}
	for _, p := range perms {
		g[p] = true
	}
	return grantChecker{granted: g}
}

func (g grantChecker) Check(ctx context.Context, userID int64, required ...string) error {
	for _, p := range required {
		if !g.granted[p] {
			return fmt.Errorf("%w: missing %q", permissions.ErrNotEnoughPermissions, p)
		}
	}
	return nil
}

// withUser stands in for the auth middleware in tests.
func withUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
