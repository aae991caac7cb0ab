//go:build unit

package weather_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/weatherunion/weatherunion-go/internal/services/weather"
	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

var breakerCfg = weather.BreakerConfig{
	TimeInterval: 30 * time.Second,
	TimeTimeOut:  15 * time.Second,
	RepeatNumber: 5,
}

const (
	breakerName = "WeatherUnion"
	localityID  = "ZWL003467"
)

func TestBreakerClient_Success(t *testing.T) {
	wrapped := new(mockClient)
	expected := weatherunion.WeatherInfo{Temperature: 20, Humidity: 55}

	wrapped.
		On("Fetch", mock.Anything, localityID).
		Return(expected, nil).
		Once()

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	data, err := bc.Fetch(context.Background(), localityID)
	assert.NoError(t, err)
	assert.Equal(t, expected, data)

	wrapped.AssertExpectations(t)
	wrapped.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestBreakerClient_UnderlyingErrorBeforeTrip(t *testing.T) {
	wrapped := new(mockClient)
	underlyingErr := errors.New("service down")

	wrapped.
		On("Fetch", mock.Anything, localityID).
		Return(weatherunion.WeatherInfo{}, underlyingErr).
		Once()

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	data, err := bc.Fetch(context.Background(), localityID)
	assert.Error(t, err)
	assert.Empty(t, data)
	assert.Contains(t, err.Error(), breakerName+" unavailable: "+underlyingErr.Error())

	wrapped.AssertExpectations(t)
	wrapped.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestBreakerClient_KeepsErrorTaxonomy(t *testing.T) {
	wrapped := new(mockClient)

	wrapped.
		On("Fetch", mock.Anything, localityID).
		Return(weatherunion.WeatherInfo{}, weatherunion.ErrKeyLimitExhausted).
		Once()

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	_, err := bc.Fetch(context.Background(), localityID)
	assert.ErrorIs(t, err, weatherunion.ErrKeyLimitExhausted)
}

func TestBreakerClient_TripCircuitAfterFiveFailures(t *testing.T) {
	wrapped := new(mockClient)
	underlyingErr := errors.New("timeout")

	for i := 0; i < 5; i++ {
		wrapped.
			On("Fetch", mock.Anything, localityID).
			Return(weatherunion.WeatherInfo{}, underlyingErr).
			Once()
	}

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	for i := 1; i <= 5; i++ {
		_, err := bc.Fetch(context.Background(), localityID)
		assert.Error(t, err, "call #%d should error before trip", i)
		assert.Contains(t, err.Error(), breakerName+" unavailable: "+underlyingErr.Error())
	}

	_, err := bc.Fetch(context.Background(), localityID)
	assert.Error(t, err)
	assert.True(t,
		strings.Contains(err.Error(), "circuit breaker is open"),
		"6th call should return open-circuit error",
	)

	wrapped.AssertExpectations(t)
	wrapped.AssertNumberOfCalls(t, "Fetch", 5)
}
