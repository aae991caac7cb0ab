//go:build unit

package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlersHTTP "github.com/weatherunion/weatherunion-go/internal/handlers/http"
	"github.com/weatherunion/weatherunion-go/internal/models"
	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

type mockWeatherService struct {
	mock.Mock
}

func (m *mockWeatherService) GetByLocality(ctx context.Context, localityID string) (models.LocalityWeather, error) {
	args := m.Called(ctx, localityID)
	data, ok := args.Get(0).(models.LocalityWeather)
	if !ok {
		return models.LocalityWeather{}, args.Error(1)
	}
	return data, args.Error(1)
}

func (m *mockWeatherService) Localities() []models.LocalityInfo {
	args := m.Called()
	infos, _ := args.Get(0).([]models.LocalityInfo)
	return infos
}

func (m *mockWeatherService) LocalityInfo(id string) (models.LocalityInfo, error) {
	args := m.Called(id)
	info, ok := args.Get(0).(models.LocalityInfo)
	if !ok {
		return models.LocalityInfo{}, args.Error(1)
	}
	return info, args.Error(1)
}

func newRouter(svc *mockWeatherService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlersHTTP.NewHandler(svc)
	router := gin.New()
	router.GET("/weather", h.GetWeather)
	router.GET("/localities", h.ListLocalities)
	router.GET("/localities/:id", h.GetLocality)
	return router
}

func TestGetWeather_Success(t *testing.T) {
	svc := &mockWeatherService{}
	svc.On("GetByLocality", mock.Anything, "ZWL003467").
		Return(models.LocalityWeather{
			LocalityID:   "ZWL003467",
			LocalityName: "Bengaluru Banashankari",
			Temperature:  24.69,
		}, nil).Once()

	router := newRouter(svc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/weather?locality_id=ZWL003467", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.LocalityWeather
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ZWL003467", got.LocalityID)
	assert.Equal(t, "Bengaluru Banashankari", got.LocalityName)
	assert.Equal(t, 24.69, got.Temperature)

	svc.AssertExpectations(t)
}

func TestGetWeather_MissingLocalityID(t *testing.T) {
	svc := &mockWeatherService{}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/weather", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByLocality", mock.Anything, mock.Anything)
}

func TestGetWeather_ErrorStatusMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not supported",
			err:        fmt.Errorf("get weather: %w", weatherunion.ErrNotSupported),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "key limit",
			err:        fmt.Errorf("get weather: %w", weatherunion.ErrKeyLimitExhausted),
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "auth",
			err:        fmt.Errorf("get weather: %w", weatherunion.ErrCouldNotAuthenticate),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "invalid upstream body",
			err:        fmt.Errorf("get weather: %w", weatherunion.ErrInvalidResponse),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "temporarily unavailable",
			err:        fmt.Errorf("get weather: %w", &weatherunion.UnavailableError{Message: "station down"}),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "upstream retrieval failure",
			err:        fmt.Errorf("get weather: %w", weatherunion.ErrRetrievingData),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "transport",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockWeatherService{}
			svc.On("GetByLocality", mock.Anything, "ZWL003467").
				Return(models.LocalityWeather{}, tc.err).Once()

			router := newRouter(svc)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/weather?locality_id=ZWL003467", nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestListLocalities(t *testing.T) {
	svc := &mockWeatherService{}
	svc.On("Localities").Return([]models.LocalityInfo{
		{ID: "ZWL003467", Name: "Bengaluru Banashankari", Latitude: 12.936787, Longitude: 77.556079},
	}).Once()

	router := newRouter(svc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/localities", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.LocalityInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ZWL003467", got[0].ID)
}

func TestGetLocality_Unknown(t *testing.T) {
	svc := &mockWeatherService{}
	svc.On("LocalityInfo", "ZWL000000").
		Return(models.LocalityInfo{}, fmt.Errorf("%w: %q", weatherunion.ErrUnknownLocality, "ZWL000000")).
		Once()

	router := newRouter(svc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/localities/ZWL000000", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
