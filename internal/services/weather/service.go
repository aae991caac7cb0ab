package weather

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/weatherunion/weatherunion-go/internal/models"
	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

type client interface {
	Fetch(ctx context.Context, localityID string) (weatherunion.WeatherInfo, error)
}

type collector interface {
	IncWeatherRequest(locality string)
	IncWeatherError(locality, errType string)
}

// Service answers locality weather queries through a single upstream client and
// resolves display names from the bundled locality table.
type Service struct {
	logger  *zap.Logger
	client  client
	metrics collector
}

func NewService(logger *zap.Logger, cl client, met collector) *Service {
	return &Service{logger: logger, client: cl, metrics: met}
}

func (s *Service) GetByLocality(ctx context.Context, localityID string) (models.LocalityWeather, error) {
	s.logger.Info("fetching locality weather", zap.String("locality_id", localityID))
	s.metrics.IncWeatherRequest(localityID)

	info, err := s.client.Fetch(ctx, localityID)
	if err != nil {
		s.metrics.IncWeatherError(localityID, errType(err))
		s.logger.Error("fetch failed",
			zap.String("locality_id", localityID),
			zap.Error(err),
		)
		return models.LocalityWeather{}, fmt.Errorf("get weather for %s: %w", localityID, err)
	}

	s.logger.Info("fetch succeeded", zap.String("locality_id", localityID))
	return models.LocalityWeather{
		LocalityID:       localityID,
		LocalityName:     weatherunion.Locality(localityID).Name(),
		DeviceType:       info.DeviceType,
		Temperature:      info.Temperature,
		Humidity:         info.Humidity,
		WindSpeed:        info.WindSpeed,
		WindDirection:    info.WindDirection,
		RainIntensity:    info.RainIntensity,
		RainAccumulation: info.RainAccumulation,
	}, nil
}

// Localities lists the bundled locality table, sorted by id.
func (s *Service) Localities() []models.LocalityInfo {
	ids := weatherunion.Localities()
	out := make([]models.LocalityInfo, 0, len(ids))
	for _, l := range ids {
		lat, long, _ := l.LatLong()
		out = append(out, models.LocalityInfo{
			ID:        l.ID(),
			Name:      l.Name(),
			Latitude:  lat,
			Longitude: long,
		})
	}
	return out
}

// LocalityInfo resolves one bundled table entry by id.
func (s *Service) LocalityInfo(id string) (models.LocalityInfo, error) {
	l, err := weatherunion.LocalityFromID(id)
	if err != nil {
		return models.LocalityInfo{}, err
	}
	lat, long, _ := l.LatLong()
	return models.LocalityInfo{ID: l.ID(), Name: l.Name(), Latitude: lat, Longitude: long}, nil
}

// errType buckets taxonomy errors into metric label values.
func errType(err error) string {
	var unavailable *weatherunion.UnavailableError
	var unexpected *weatherunion.UnexpectedStatusError
	switch {
	case errors.Is(err, weatherunion.ErrNotSupported):
		return "not_supported"
	case errors.Is(err, weatherunion.ErrCouldNotAuthenticate):
		return "auth"
	case errors.Is(err, weatherunion.ErrKeyLimitExhausted):
		return "key_limit"
	case errors.Is(err, weatherunion.ErrRetrievingData):
		return "upstream"
	case errors.Is(err, weatherunion.ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, weatherunion.ErrEmptyLocalityID):
		return "empty_id"
	case errors.As(err, &unavailable):
		return "unavailable"
	case errors.As(err, &unexpected):
		return "unexpected_status"
	default:
		return "transport"
	}
}
