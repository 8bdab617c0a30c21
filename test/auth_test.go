//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/gymtrack/internal/profiles"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestAuth_SignupLoginLogout() {
	ctx := context.Background()
	email := gofakeit.Email()

	user := s.signup(ctx, email)
	assert.Equal(s.T(), email, user.Profile.Email)
	assert.False(s.T(), user.Profile.IsAdmin)

	// same email again
	status, _ := s.doRequest(ctx, "POST", "/auth/signup", "", profiles.SignupParams{
		Email:    email,
		Password: "gymtrack-pass",
	})
	assert.Equal(s.T(), http.StatusConflict, status)

	status, _ = s.doRequest(ctx, "POST", "/auth/login", "", profiles.LoginParams{
		Email:    email,
		Password: "wrong-password",
	})
	assert.Equal(s.T(), http.StatusUnauthorized, status)

	var loginResp profiles.SessionResponse
	s.doJSON(ctx, "POST", "/auth/login", "", profiles.LoginParams{
		Email:    email,
		Password: "gymtrack-pass",
	}, http.StatusOK, &loginResp)
	require.NotEmpty(s.T(), loginResp.Token)
	assert.Equal(s.T(), user.Profile.ID, loginResp.Profile.ID)

	var profile profiles.Profile
	s.doJSON(ctx, "GET", "/profile", loginResp.Token, nil, http.StatusOK, &profile)
	assert.Equal(s.T(), email, profile.Email)

	s.doJSON(ctx, "PUT", "/profile", loginResp.Token, profiles.UpdateProfileRequest{Name: "Renamed"}, http.StatusOK, &profile)
	assert.Equal(s.T(), "Renamed", profile.Name)

	var logoutResp profiles.LogoutResponse
	s.doJSON(ctx, "GET", "/auth/logout", loginResp.Token, nil, http.StatusOK, &logoutResp)
	assert.True(s.T(), logoutResp.LoggedOut)

	status, _ = s.doRequest(ctx, "GET", "/profile", loginResp.Token, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, status)

	// the signup session is independent from the logged out one
	status, _ = s.doRequest(ctx, "GET", "/profile", user.Token, nil)
	assert.Equal(s.T(), http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestAuth_ProtectedRoutes() {
	ctx := context.Background()

	for _, path := range []string{"/workouts", "/progress", "/measurements", "/exercises", "/profile"} {
		status, _ := s.doRequest(ctx, "GET", path, "", nil)
		assert.Equal(s.T(), http.StatusUnauthorized, status, path)

		status, _ = s.doRequest(ctx, "GET", path, "not-a-real-token", nil)
		assert.Equal(s.T(), http.StatusUnauthorized, status, path)
	}

	status, body := s.doRequest(ctx, "GET", "/version", "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	assert.JSONEq(s.T(), `{"version":"test-version-info"}`, string(body))
}

func (s *IntegrationTestSuite) TestAuth_SignupWithAdminEmail() {
	ctx := context.Background()

	user := s.signup(ctx, strings.ToUpper(testLateAdminEmail))
	assert.False(s.T(), user.Profile.IsAdmin)

	var profile profiles.Profile
	s.doJSON(ctx, "GET", "/profile", user.Token, nil, http.StatusOK, &profile)
	assert.False(s.T(), profile.IsAdmin)

	status, _ := s.doRequest(ctx, "GET", "/exercises/pending", user.Token, nil)
	assert.Equal(s.T(), http.StatusForbidden, status)

	// promotion of existing profiles happens only through database init
	s.doJSON(ctx, "POST", "/setup/init-database", user.Token, nil, http.StatusOK, nil)
	s.doJSON(ctx, "GET", "/profile", user.Token, nil, http.StatusOK, &profile)
	assert.True(s.T(), profile.IsAdmin)

	status, _ = s.doRequest(ctx, "GET", "/exercises/pending", user.Token, nil)
	assert.Equal(s.T(), http.StatusOK, status)
}
