//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/gymtrack/internal/gymtrack/bootstrap"

	"github.com/stretchr/testify/assert"
)

func (s *IntegrationTestSuite) TestBootstrap_InitDatabaseIsIdempotent() {
	ctx := context.Background()
	user := s.newUser(ctx)

	exercisesBefore := s.countRows(`SELECT COUNT(*) FROM exercise`)
	assert.Positive(s.T(), exercisesBefore)

	var result bootstrap.Result
	s.doJSON(ctx, "POST", "/setup/init-database", user.Token, nil, http.StatusOK, &result)
	assert.Positive(s.T(), result.SchemaStatements)
	assert.Zero(s.T(), result.ExercisesSeeded)

	s.doJSON(ctx, "POST", "/setup/init-database", user.Token, nil, http.StatusOK, &result)
	assert.Zero(s.T(), result.ExercisesSeeded)
	assert.Equal(s.T(), exercisesBefore, s.countRows(`SELECT COUNT(*) FROM exercise`))

	status, _ := s.doRequest(ctx, "POST", "/setup/init-database", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, status)
}
