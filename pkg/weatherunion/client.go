// Package weatherunion is a client for the Weather Union live weather API.
package weatherunion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production Weather Union endpoint.
const DefaultBaseURL = "https://www.weatherunion.com/gw/weather/external/v0"

const apiKeyHeader = "x-zomato-api-key"

// HTTPClient is the transport surface the client needs; *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an immutable handle for the Weather Union API. It is safe for
// concurrent use: concurrent fetches share nothing but the key and the transport.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	logger     *zap.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default http.DefaultClient transport. Timeout and
// retry policy belong to the injected client; this library sets neither.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL replaces DefaultBaseURL, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger attaches a zap logger; the default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// FromKey builds a client around an api key. The key is not validated here; a
// bad or empty key surfaces as ErrCouldNotAuthenticate on the first fetch.
func FromKey(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WeatherInfo holds the live readings for one locality. Readings the station did
// not report come back as 0, matching the provider's nullable fields.
type WeatherInfo struct {
	DeviceType       uint8   `json:"device_type"`
	Temperature      float64 `json:"temperature"`
	Humidity         float64 `json:"humidity"`
	WindSpeed        float64 `json:"wind_speed"`
	WindDirection    float64 `json:"wind_direction"`
	RainIntensity    float64 `json:"rain_intensity"`
	RainAccumulation float64 `json:"rain_accumulation"`
}

// Locality fetches readings for a known locality constant.
func (c *Client) Locality(ctx context.Context, loc Locality) (WeatherInfo, error) {
	return c.LocalityID(ctx, string(loc))
}

// LocalityID fetches readings for a raw locality id string.
func (c *Client) LocalityID(ctx context.Context, id string) (WeatherInfo, error) {
	if id == "" {
		return WeatherInfo{}, ErrEmptyLocalityID
	}
	return c.fetch(ctx, "get_locality_weather_data", url.Values{"locality_id": {id}})
}

// LatLong fetches readings for raw coordinates.
func (c *Client) LatLong(ctx context.Context, lat, long float64) (WeatherInfo, error) {
	return c.fetch(ctx, "get_weather_data", url.Values{
		"latitude":  {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(long, 'f', -1, 64)},
	})
}

func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values) (WeatherInfo, error) {
	reqURL := c.baseURL + "/" + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return WeatherInfo{}, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WeatherInfo{}, fmt.Errorf("weatherunion: request failed: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cErr := body.Close(); cErr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cErr))
		}
	}(resp.Body)

	return c.processPayload(resp)
}

// processPayload maps the documented status contract onto the error taxonomy and
// decodes a successful body.
func (c *Client) processPayload(resp *http.Response) (WeatherInfo, error) {
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusInternalServerError:
		return WeatherInfo{}, ErrRetrievingData
	case http.StatusBadRequest:
		return WeatherInfo{}, ErrNotSupported
	case http.StatusTooManyRequests:
		return WeatherInfo{}, ErrKeyLimitExhausted
	case http.StatusForbidden:
		return WeatherInfo{}, ErrCouldNotAuthenticate
	default:
		return WeatherInfo{}, &UnexpectedStatusError{StatusCode: resp.StatusCode}
	}

	var body struct {
		Message             string              `json:"message"`
		LocalityWeatherData map[string]*float64 `json:"locality_weather_data"`
		DeviceType          uint8               `json:"device_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return WeatherInfo{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	// A 200 with a non-empty message means the station has no data right now.
	if body.Message != "" {
		return WeatherInfo{}, &UnavailableError{Message: body.Message}
	}

	reading := func(key string) float64 {
		if v := body.LocalityWeatherData[key]; v != nil {
			return *v
		}
		return 0
	}
	return WeatherInfo{
		DeviceType:       body.DeviceType,
		Temperature:      reading("temperature"),
		Humidity:         reading("humidity"),
		WindSpeed:        reading("wind_speed"),
		WindDirection:    reading("wind_direction"),
		RainIntensity:    reading("rain_intensity"),
		RainAccumulation: reading("rain_accumulation"),
	}, nil
}
