//go:build unit

package weather_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/weatherunion/weatherunion-go/internal/services/weather"
	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Fetch(ctx context.Context, localityID string) (weatherunion.WeatherInfo, error) {
	args := m.Called(ctx, localityID)
	data, ok := args.Get(0).(weatherunion.WeatherInfo)
	if !ok {
		return weatherunion.WeatherInfo{}, args.Error(1)
	}
	return data, args.Error(1)
}

type fakeCollector struct {
	mu       sync.Mutex
	requests map[string]int
	errors   map[string]int
}

func newFakeCollector() *fakeCollector {
	return &fakeCollector{requests: map[string]int{}, errors: map[string]int{}}
}

func (f *fakeCollector) IncWeatherRequest(locality string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[locality]++
}

func (f *fakeCollector) IncWeatherError(locality, errType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[locality+"/"+errType]++
}

func TestGetByLocality_Success(t *testing.T) {
	cl := &mockClient{}
	cl.On("Fetch", mock.Anything, "ZWL003467").
		Return(weatherunion.WeatherInfo{Temperature: 23.4, Humidity: 61.2, DeviceType: 1}, nil).
		Once()

	met := newFakeCollector()
	svc := weather.NewService(zap.NewNop(), cl, met)

	data, err := svc.GetByLocality(context.Background(), "ZWL003467")
	require.NoError(t, err)
	assert.Equal(t, "ZWL003467", data.LocalityID)
	assert.Equal(t, "Bengaluru Banashankari", data.LocalityName)
	assert.Equal(t, 23.4, data.Temperature)
	assert.Equal(t, 61.2, data.Humidity)
	assert.Equal(t, 1, met.requests["ZWL003467"])

	cl.AssertExpectations(t)
}

func TestGetByLocality_UnknownIDHasNoName(t *testing.T) {
	cl := &mockClient{}
	cl.On("Fetch", mock.Anything, "ZWL999999").
		Return(weatherunion.WeatherInfo{Temperature: 30}, nil).
		Once()

	svc := weather.NewService(zap.NewNop(), cl, newFakeCollector())

	data, err := svc.GetByLocality(context.Background(), "ZWL999999")
	require.NoError(t, err)
	assert.Empty(t, data.LocalityName)
	assert.Equal(t, 30.0, data.Temperature)
}

func TestGetByLocality_ErrorKeepsTaxonomyAndCountsBucket(t *testing.T) {
	cl := &mockClient{}
	cl.On("Fetch", mock.Anything, "ZWL003467").
		Return(weatherunion.WeatherInfo{}, weatherunion.ErrNotSupported).
		Once()

	met := newFakeCollector()
	svc := weather.NewService(zap.NewNop(), cl, met)

	_, err := svc.GetByLocality(context.Background(), "ZWL003467")
	assert.ErrorIs(t, err, weatherunion.ErrNotSupported)
	assert.Equal(t, 1, met.errors["ZWL003467/not_supported"])
}

func TestLocalities_MatchesBundledTable(t *testing.T) {
	svc := weather.NewService(zap.NewNop(), &mockClient{}, newFakeCollector())

	all := svc.Localities()
	require.Len(t, all, len(weatherunion.Localities()))
	for _, info := range all {
		assert.NotEmpty(t, info.ID)
		assert.NotEmpty(t, info.Name)
	}
}

func TestLocalityInfo(t *testing.T) {
	svc := weather.NewService(zap.NewNop(), &mockClient{}, newFakeCollector())

	info, err := svc.LocalityInfo("ZWL003467")
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru Banashankari", info.Name)
	assert.Equal(t, 12.936787, info.Latitude)

	_, err = svc.LocalityInfo("ZWL000000")
	assert.ErrorIs(t, err, weatherunion.ErrUnknownLocality)
}
