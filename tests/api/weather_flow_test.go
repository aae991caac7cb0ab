//go:build integration

package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherunion/weatherunion-go/internal/models"
)

func getBody(t *testing.T, url string) (int, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			log.Printf("failed to close response body: %v", cErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestWeatherFlow_GetByLocality(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		wantStatus int
		wantTemp   float64
		wantName   string
	}{
		{
			name:       "known locality",
			query:      "?locality_id=ZWL003467",
			wantStatus: http.StatusOK,
			wantTemp:   24.69,
			wantName:   "Bengaluru Banashankari",
		},
		{
			name:       "unsupported locality",
			query:      "?locality_id=ZWL000001",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "station temporarily down",
			query:      "?locality_id=ZWLDOWN1",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "missing locality id",
			query:      "",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := getBody(t, testServerURL+"/weather"+tc.query)
			require.Equal(t, tc.wantStatus, status, "body: %s", body)

			if tc.wantStatus != http.StatusOK {
				return
			}

			var got models.LocalityWeather
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tc.wantTemp, got.Temperature)
			assert.Equal(t, tc.wantName, got.LocalityName)
		})
	}
}

func TestWeatherFlow_Localities(t *testing.T) {
	status, body := getBody(t, testServerURL+"/localities")
	require.Equal(t, http.StatusOK, status)

	var got []models.LocalityInfo
	require.NoError(t, json.Unmarshal(body, &got))
	require.NotEmpty(t, got)

	status, body = getBody(t, testServerURL+"/localities/ZWL003467")
	require.Equal(t, http.StatusOK, status)

	var info models.LocalityInfo
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, "Bengaluru Banashankari", info.Name)

	status, _ = getBody(t, testServerURL+"/localities/ZWL000000")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWeatherFlow_MetricsExposed(t *testing.T) {
	status, body := getBody(t, testServerURL+"/metrics")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(string(body), "weather_union_test_weather_requests_total"),
		"domain counters should be exported after the weather calls above")
}
