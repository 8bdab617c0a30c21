//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/gymtrack/internal/profiles"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

type testUser struct {
	Token   string
	Profile profiles.Profile
}

// doRequest sends a JSON request to the running service and returns the status and the raw body.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, payload any) (int, []byte) {
	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(s.T(), err)
		body = bytes.NewReader(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp.StatusCode, respBytes
}

// doJSON is doRequest that also checks the status and decodes the response into dst.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, payload any, expectedStatus int, dst any) {
	status, respBytes := s.doRequest(ctx, method, path, token, payload)
	require.Equal(s.T(), expectedStatus, status, string(respBytes))
	if dst != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, dst), string(respBytes))
	}
}

func (s *IntegrationTestSuite) signup(ctx context.Context, email string) testUser {
	var resp profiles.SessionResponse
	s.doJSON(ctx, "POST", "/auth/signup", "", profiles.SignupParams{
		Email:    email,
		Password: "gymtrack-pass",
		Name:     gofakeit.FirstName(),
	}, http.StatusCreated, &resp)
	require.NotEmpty(s.T(), resp.Token)

	return testUser{Token: resp.Token, Profile: resp.Profile}
}

func (s *IntegrationTestSuite) newUser(ctx context.Context) testUser {
	return s.signup(ctx, gofakeit.Email())
}

// adminUser signs up the configured admin once, promotes it via database init and reuses the session.
func (s *IntegrationTestSuite) adminUser(ctx context.Context) testUser {
	if s.admin == nil {
		admin := s.signup(ctx, testAdminEmail)
		require.False(s.T(), admin.Profile.IsAdmin)

		s.doJSON(ctx, "POST", "/setup/init-database", admin.Token, nil, http.StatusOK, nil)
		s.doJSON(ctx, "GET", "/profile", admin.Token, nil, http.StatusOK, &admin.Profile)
		require.True(s.T(), admin.Profile.IsAdmin)
		s.admin = &admin
	}
	return *s.admin
}
