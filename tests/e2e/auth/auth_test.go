//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"deskbook/internal/domain/user"
	"deskbook/internal/handler/dto/request"
	"deskbook/internal/handler/dto/response"
	"deskbook/tests/common/authtest"
	"deskbook/tests/common/dbtest"
	"deskbook/tests/common/httptest"
	"deskbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	desksURL = "/api/desks"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "employee@example.com", string(user.RoleEmployee), "password123")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleEmployee), "password123")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Valid credentials succeed",
			email:          "employee@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown user is rejected",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong password is rejected",
			email:          "employee@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Inactive account is forbidden",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Empty email fails validation",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Short password fails validation",
			email:          "employee@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, string(user.RoleEmployee), res.Role)
			}
		})
	}
}

func (s *authSuite) TestTokenAuthorization() {
	s.Run("Valid token grants access to protected routes", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "employee@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, desksURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, desksURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Malformed token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, desksURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expired@example.com", string(user.RoleEmployee), "password123")
		token := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleEmployee)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, desksURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Employee cannot create desks", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "employee@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, desksURL,
			request.CreateDeskRequest{Code: "A-99"}, token)
		require.Equal(t, http.StatusForbidden, w.Code, "Desk management requires admin role")
	})
}
