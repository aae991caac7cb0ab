package weather

import (
	"context"

	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

// ClientWeatherUnion adapts the library client to the service client interface.
type ClientWeatherUnion struct {
	api *weatherunion.Client
}

func NewClientWeatherUnion(api *weatherunion.Client) *ClientWeatherUnion {
	return &ClientWeatherUnion{api: api}
}

func (c *ClientWeatherUnion) Fetch(ctx context.Context, localityID string) (weatherunion.WeatherInfo, error) {
	return c.api.LocalityID(ctx, localityID)
}
