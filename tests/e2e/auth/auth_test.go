//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/handler/dto/request"
	"vehicle-parking/internal/handler/dto/response"
	"vehicle-parking/tests/common/authtest"
	"vehicle-parking/tests/common/builder"
	"vehicle-parking/tests/common/dbtest"
	"vehicle-parking/tests/common/httptest"
	"vehicle-parking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestRegister() {
	s.Run("Normal case: new driver is registered with the user role", func() {
		t := s.T()

		body := builder.NewAuthBuilder().BuildRegisterDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")

		var res response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, body.Username, res.Username)
		require.Equal(t, body.Email, res.Email)
		require.Equal(t, string(user.RoleUser), res.Role)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("Error case: username already taken", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "driver01", string(user.RoleUser))

		body := builder.NewAuthBuilder().WithEmail("other@example.com").BuildRegisterDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorCode(t, w, http.StatusConflict, "conflict")
	})

	s.Run("Error case: email already taken", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "someone", string(user.RoleUser))

		body := builder.NewAuthBuilder().WithEmail("someone@example.com").BuildRegisterDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorCode(t, w, http.StatusConflict, "conflict")
	})

	s.Run("Error case: short password", func() {
		t := s.T()

		body := builder.NewAuthBuilder().WithPassword("short").BuildRegisterDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "validation")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: "driver01", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", username: "nobody", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", username: "driver01", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "empty username", username: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", username: "driver01", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			userID := dbtest.CreateTestUser(t, s.DB, "driver01", string(user.RoleUser))

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, "Bearer", res.TokenType)
				require.Equal(t, userID, res.UserID)

				cookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, cookie)
				require.True(t, cookie.HttpOnly)
				require.Equal(t, res.AccessToken, cookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: token from login resolves the profile", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "driver01", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "driver01", res.Username)
		require.Equal(t, "driver01@example.com", res.Email)
	})

	s.Run("Normal case: profile update keeps blank fields", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "driver01", string(user.RoleUser))

		pincode := "560001"
		blank := " "
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, meURL,
			request.UpdateMeRequest{Email: &blank, Pincode: &pincode}, token)

		var res response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "driver01@example.com", res.Email)
		require.NotNil(t, res.Pincode)
		require.Equal(t, pincode, *res.Pincode)
	})

	s.Run("Error case: invalid pincode", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "driver01", string(user.RoleUser))

		pincode := "12ab"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, meURL,
			request.UpdateMeRequest{Pincode: &pincode}, token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "validation")
	})

	s.Run("Error case: token of a deleted user", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), "ghost", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "not_found")
	})
}

func (s *authSuite) TestTokenRejected() {
	s.Run("expired token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry", string(user.RoleUser))
		token := s.jwt.CreateExpiredToken(t, userID, "expiry", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("no token", func() {
		t := s.T()
		for _, ep := range []struct{ method, path string }{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodPut, meURL},
			{http.MethodGet, "/api/user/parking-lots"},
			{http.MethodGet, "/api/admin/parking-lots"},
		} {
			w := httptest.PerformRequest(t, s.Router, ep.method, ep.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, ep.path)
		}
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: cookie is cleared", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "driver01", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			builder.NewAuthBuilder().BuildLoginDTO(), "")
		require.Equal(t, http.StatusOK, w.Code)
		cookies := httptest.ExtractCookies(w)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})
}
