package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient fails fast once the upstream keeps erroring; it never retries.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Fetch(ctx context.Context, localityID string) (weatherunion.WeatherInfo, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, localityID)
	})
	if err != nil {
		return weatherunion.WeatherInfo{},
			fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	res, ok := result.(weatherunion.WeatherInfo)
	if !ok {
		return weatherunion.WeatherInfo{},
			fmt.Errorf("%s returned unexpected result", b.name)
	}
	return res, nil
}
