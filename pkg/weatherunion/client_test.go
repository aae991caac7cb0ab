//go:build unit

package weatherunion_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, ok := args.Get(0).(*http.Response)
	if !ok {
		return nil, args.Error(1)
	}
	return resp, args.Error(1)
}

const fullBody = `{
	"message": "",
	"locality_weather_data": {
		"temperature": 24.69,
		"humidity": 44.32,
		"wind_speed": 1.54,
		"wind_direction": 266.0,
		"rain_intensity": 0.0,
		"rain_accumulation": 0.4
	},
	"device_type": 1
}`

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestLocalityID_Success(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("x-zomato-api-key") == "test-key" &&
			strings.HasSuffix(req.URL.Path, "/get_locality_weather_data") &&
			req.URL.Query().Get("locality_id") == "ZWL003467"
	})).Return(jsonResponse(http.StatusOK, fullBody), nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	info, err := client.LocalityID(context.Background(), "ZWL003467")
	require.NoError(t, err)
	assert.Equal(t, 24.69, info.Temperature)
	assert.Equal(t, 44.32, info.Humidity)
	assert.Equal(t, 1.54, info.WindSpeed)
	assert.Equal(t, 266.0, info.WindDirection)
	assert.Equal(t, 0.0, info.RainIntensity)
	assert.Equal(t, 0.4, info.RainAccumulation)
	assert.Equal(t, uint8(1), info.DeviceType)
}

func TestLocality_ConstantResolvesToTableID(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Query().Get("locality_id") == "ZWL003467"
	})).Return(jsonResponse(http.StatusOK, fullBody), nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	_, err := client.Locality(context.Background(), weatherunion.ZWL003467)
	assert.NoError(t, err)
}

func TestLatLong_Success(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return strings.HasSuffix(req.URL.Path, "/get_weather_data") &&
			q.Get("latitude") == "12.936787" &&
			q.Get("longitude") == "77.556079"
	})).Return(jsonResponse(http.StatusOK, fullBody), nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	info, err := client.LatLong(context.Background(), 12.936787, 77.556079)
	require.NoError(t, err)
	assert.Equal(t, 24.69, info.Temperature)
}

func TestLocalityID_NullReadingsDecodeToZero(t *testing.T) {
	body := `{
		"message": "",
		"locality_weather_data": {
			"temperature": 21.5,
			"humidity": null,
			"wind_speed": null
		},
		"device_type": 2
	}`

	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, body), nil).Once()

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	info, err := client.LocalityID(context.Background(), "ZWL003467")
	require.NoError(t, err)
	assert.Equal(t, 21.5, info.Temperature)
	assert.Equal(t, 0.0, info.Humidity)
	assert.Equal(t, 0.0, info.WindSpeed)
	assert.Equal(t, 0.0, info.RainAccumulation)
}

func TestLocalityID_TemporarilyUnavailable(t *testing.T) {
	body := `{"message": "temporarily unavailable", "locality_weather_data": {}, "device_type": 1}`

	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, body), nil).Once()

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	_, err := client.LocalityID(context.Background(), "ZWL003467")
	require.Error(t, err)

	var unavailable *weatherunion.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "temporarily unavailable", unavailable.Message)
}

func TestLocalityID_StatusTaxonomy(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "retrieval failure", status: http.StatusInternalServerError, wantErr: weatherunion.ErrRetrievingData},
		{name: "not supported", status: http.StatusBadRequest, wantErr: weatherunion.ErrNotSupported},
		{name: "key limit exhausted", status: http.StatusTooManyRequests, wantErr: weatherunion.ErrKeyLimitExhausted},
		{name: "could not authenticate", status: http.StatusForbidden, wantErr: weatherunion.ErrCouldNotAuthenticate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockHTTPClient{}
			m.On("Do", mock.Anything).
				Return(jsonResponse(tc.status, `{"error": "upstream"}`), nil).Once()

			client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

			info, err := client.LocalityID(context.Background(), "ZWL003467")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, weatherunion.WeatherInfo{}, info)
		})
	}
}

func TestLocalityID_UnexpectedStatus(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusTeapot, ""), nil).Once()

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	_, err := client.LocalityID(context.Background(), "ZWL003467")
	require.Error(t, err)

	var unexpected *weatherunion.UnexpectedStatusError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, http.StatusTeapot, unexpected.StatusCode)
}

func TestLocalityID_MalformedBody(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusOK, `{not json`), nil).Once()

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	info, err := client.LocalityID(context.Background(), "ZWL003467")
	assert.ErrorIs(t, err, weatherunion.ErrInvalidResponse)
	assert.Equal(t, weatherunion.WeatherInfo{}, info)
}

func TestLocalityID_TransportErrorIsNotDecodeError(t *testing.T) {
	transportErr := errors.New("connection refused")

	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(nil, transportErr).Once()

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	_, err := client.LocalityID(context.Background(), "ZWL003467")
	assert.ErrorIs(t, err, transportErr)
	assert.NotErrorIs(t, err, weatherunion.ErrInvalidResponse)
}

func TestLocalityID_EmptyIDDoesNotHitNetwork(t *testing.T) {
	m := &mockHTTPClient{}

	client := weatherunion.FromKey("test-key", weatherunion.WithHTTPClient(m))

	_, err := client.LocalityID(context.Background(), "")
	assert.ErrorIs(t, err, weatherunion.ErrEmptyLocalityID)
	m.AssertNotCalled(t, "Do", mock.Anything)
}

func TestFromKey_EmptyKeyRejectedOnFirstFetch(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("x-zomato-api-key") == ""
	})).Return(jsonResponse(http.StatusForbidden, ""), nil).Once()

	client := weatherunion.FromKey("", weatherunion.WithHTTPClient(m))

	_, err := client.LocalityID(context.Background(), "ZWL003467")
	assert.ErrorIs(t, err, weatherunion.ErrCouldNotAuthenticate)
}

func TestConcurrentFetchesAreIndependent(t *testing.T) {
	// Temperature is derived from the requested id so each goroutine can verify
	// it got its own response back.
	temps := map[string]float64{
		"ZWL003467": 21.0,
		"ZWL001156": 24.5,
		"ZWL006536": 31.25,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("locality_id")
		temp, ok := temps[id]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w,
			`{"message": "", "locality_weather_data": {"temperature": %g}, "device_type": 1}`,
			temp)
	}))
	defer srv.Close()

	client := weatherunion.FromKey("test-key", weatherunion.WithBaseURL(srv.URL))

	var wg sync.WaitGroup
	for id, want := range temps {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(id string, want float64) {
				defer wg.Done()
				info, err := client.LocalityID(context.Background(), id)
				assert.NoError(t, err)
				assert.Equal(t, want, info.Temperature)
			}(id, want)
		}
	}
	wg.Wait()
}
