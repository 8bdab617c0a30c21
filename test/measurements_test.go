//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/gymtrack/internal/gymtrack/charts"
	"github.com/2beens/gymtrack/internal/gymtrack/measurements"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func (s *IntegrationTestSuite) TestMeasurements_CRUDAndChart() {
	ctx := context.Background()
	user := s.newUser(ctx)
	other := s.newUser(ctx)

	var first, second measurements.Measurement
	s.doJSON(ctx, "POST", "/measurements", user.Token, measurements.Params{
		Date:   "2024-03-01",
		Values: measurements.Values{Weight: floatPtr(82.5), Waist: floatPtr(90)},
	}, http.StatusCreated, &first)
	s.doJSON(ctx, "POST", "/measurements", user.Token, measurements.Params{
		Date:   "2024-03-15",
		Values: measurements.Values{Weight: floatPtr(81)},
		Notes:  "morning",
	}, http.StatusCreated, &second)

	var list []measurements.Measurement
	s.doJSON(ctx, "GET", "/measurements", user.Token, nil, http.StatusOK, &list)
	require.Len(s.T(), list, 2)
	assert.Equal(s.T(), second.ID, list[0].ID)

	s.doJSON(ctx, "GET", "/measurements", other.Token, nil, http.StatusOK, &list)
	assert.Empty(s.T(), list)

	var series charts.Series
	s.doJSON(ctx, "GET", "/measurements/chart?field=weight", user.Token, nil, http.StatusOK, &series)
	assert.Equal(s.T(), []string{"1/3", "15/3"}, series.Labels)
	assert.Equal(s.T(), []float64{82.5, 81}, series.Values)

	// the second entry has no waist
	s.doJSON(ctx, "GET", "/measurements/chart?field=waist", user.Token, nil, http.StatusOK, &series)
	assert.Equal(s.T(), []float64{90}, series.Values)

	status, _ := s.doRequest(ctx, "POST", "/measurements", user.Token, measurements.Params{
		Values: measurements.Values{Chest: floatPtr(-1)},
	})
	assert.Equal(s.T(), http.StatusBadRequest, status)

	var updated measurements.Measurement
	s.doJSON(ctx, "PUT", "/measurements/"+first.ID.String(), user.Token, measurements.Params{
		Date:   "2024-03-01",
		Values: measurements.Values{Weight: floatPtr(83)},
	}, http.StatusOK, &updated)
	require.NotNil(s.T(), updated.Weight)
	assert.Equal(s.T(), 83.0, *updated.Weight)
	assert.Nil(s.T(), updated.Waist)

	status, _ = s.doRequest(ctx, "DELETE", "/measurements/"+first.ID.String(), other.Token, nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
	s.doJSON(ctx, "DELETE", "/measurements/"+first.ID.String(), user.Token, nil, http.StatusOK, nil)
	assert.Equal(s.T(), 1, s.countRows(`SELECT COUNT(*) FROM body_measurement WHERE owner_id = $1`, user.Profile.ID))
}
