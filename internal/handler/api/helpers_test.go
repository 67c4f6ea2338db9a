//go:build unit

package api_test

import (
	"net/http"
	"time"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/handler/httperr"
	"vehicle-parking/internal/handler/middleware"
	"vehicle-parking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var handlerNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

// fakeAuth stands in for RequireAuth: any Authorization header signs in as
// userID with role.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, "Unauthorized"))
			return
		}
		middleware.SetIdentity(c, userID, role)
		c.Next()
	}
}

func errValidation(msg string) error {
	return errs.Mark(errs.New(msg), errs.ErrValidation)
}
