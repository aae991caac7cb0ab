//go:build integration

package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/weatherunion/weatherunion-go/internal/app"
	"github.com/weatherunion/weatherunion-go/internal/config"
	"github.com/weatherunion/weatherunion-go/internal/services/metrics"
)

const testAPIKey = "secret-key-weather-union"

var testServerURL string

func newTestWeatherUnionServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_locality_weather_data" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-zomato-api-key") != testAPIKey {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		switch r.URL.Query().Get("locality_id") {
		case "ZWL003467":
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "",
				"locality_weather_data": map[string]interface{}{
					"temperature":       24.69,
					"humidity":          44.32,
					"wind_speed":        1.54,
					"wind_direction":    266.0,
					"rain_intensity":    0.0,
					"rain_accumulation": 0.4,
				},
				"device_type": 1,
			})
			if err != nil {
				log.Printf("failed to encode fake upstream body: %v", err)
			}
		case "ZWLDOWN1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message": "temporarily unavailable", "locality_weather_data": {}, "device_type": 1}`))
		case "ZWL000001":
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
}

func waitUntilReady(baseURL string) {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/localities")
		if err == nil {
			if cErr := resp.Body.Close(); cErr != nil {
				log.Printf("failed to close readiness response body: %v", cErr)
			}
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Panic("weather union service did not become ready")
}

func TestMain(m *testing.M) {
	log.Println("Starting integration tests for weather union service..")

	upstream := newTestWeatherUnionServer()
	defer upstream.Close()

	if err := os.Setenv("WEATHER_UNION_API_KEY", testAPIKey); err != nil {
		log.Panicf("failed to set api key env: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	cfg.WeatherUnionURL = upstream.URL
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "8089"
	cfg.LogsPath = filepath.Join(os.TempDir(), "weatherunion-integration.log")

	application := app.New(*cfg, zap.NewNop(), metrics.NewMetrics("weather_union_test"))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if startErr := application.Start(ctx); startErr != nil {
			log.Panic(startErr)
		}
	}()

	testServerURL = "http://" + cfg.ServerAddress()
	waitUntilReady(testServerURL)

	code := m.Run()

	cancel()
	time.Sleep(200 * time.Millisecond)
	os.Exit(code)
}
