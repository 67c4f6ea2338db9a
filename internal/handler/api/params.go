package api

import (
	"errors"
	"net/http"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/handler/httperr"
	"vehicle-parking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNotAuthenticated = errors.New("identity missing from context")

// uuidParam aborts with 400 when the path parameter is not a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func identity(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return userID, role, true
}
