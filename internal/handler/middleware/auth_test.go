//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/handler/middleware"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/jwt"
	"vehicle-parking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	clock  *clock.MockClock
	jwt    *jwt.Service
	router *gin.Engine
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.clock = clock.NewMockClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	s.jwt = jwt.NewService("middleware-secret", time.Hour, s.clock)

	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt))
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	}

	s.router = gin.New()
	s.router.GET("/me", m.RequireAuth(), whoami)
	s.router.GET("/admin", m.RequireAuth(), m.RequireRole(user.RoleAdmin), whoami)
	s.router.GET("/misconfigured", m.RequireRole(user.RoleAdmin), whoami)
}

func (s *AuthMiddlewareTestSuite) token(role user.Role) (uuid.UUID, string) {
	id := uuid.New()
	token, _, err := s.jwt.GenerateToken(id, "someone", role)
	require.NoError(s.T(), err)
	return id, token
}

func (s *AuthMiddlewareTestSuite) do(path, header string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer header", func() {
		id, token := s.token(user.RoleUser)
		w := s.do("/me", "Bearer "+token)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Contains(s.T(), w.Body.String(), id.String())
	})

	s.Run("cookie", func() {
		id, token := s.token(user.RoleUser)
		w := s.do("/me", "", &http.Cookie{Name: "access_token", Value: token})
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Contains(s.T(), w.Body.String(), id.String())
	})

	s.Run("header wins over cookie", func() {
		_, token := s.token(user.RoleUser)
		w := s.do("/me", "Bearer broken", &http.Cookie{Name: "access_token", Value: token})
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("missing", func() {
		w := s.do("/me", "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
		assert.JSONEq(s.T(), `{"error":{"message":"Access token required","code":"unauthorized"}}`, w.Body.String())
	})

	s.Run("non bearer scheme", func() {
		_, token := s.token(user.RoleUser)
		w := s.do("/me", "Basic "+token)
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("expired", func() {
		_, token := s.token(user.RoleUser)
		s.clock.Add(2 * time.Hour)
		w := s.do("/me", "Bearer "+token)
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
		assert.Contains(s.T(), w.Body.String(), "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("admin passes", func() {
		_, token := s.token(user.RoleAdmin)
		w := s.do("/admin", "Bearer "+token)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Contains(s.T(), w.Body.String(), `"role":"admin"`)
	})

	s.Run("user is forbidden", func() {
		_, token := s.token(user.RoleUser)
		w := s.do("/admin", "Bearer "+token)
		assert.Equal(s.T(), http.StatusForbidden, w.Code)
		assert.JSONEq(s.T(), `{"error":{"message":"Insufficient permissions","code":"forbidden"}}`, w.Body.String())
	})

	s.Run("without RequireAuth", func() {
		w := s.do("/misconfigured", "")
		assert.Equal(s.T(), http.StatusInternalServerError, w.Code)
	})
}
