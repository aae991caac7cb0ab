package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/weatherunion/weatherunion-go/internal/config"
	handlersHTTP "github.com/weatherunion/weatherunion-go/internal/handlers/http"
	loggerT "github.com/weatherunion/weatherunion-go/internal/services/logger"
	metricsSvc "github.com/weatherunion/weatherunion-go/internal/services/metrics"
	serviceWeather "github.com/weatherunion/weatherunion-go/internal/services/weather"
	fLogger "github.com/weatherunion/weatherunion-go/pkg/logger"
	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

const shutdownTimeout = 5 * time.Second

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService *serviceWeather.Service
	Router         *gin.Engine
	Srv            *http.Server
	fileLogger     *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   *zap.Logger
	m   *metricsSvc.Metrics
}

// New prepares a new App with given config, logger, and metrics.
func New(cfg config.Config, logger *zap.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start initializes services, mounts routes, and serves until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	srvContainer := a.init()

	a.l.Info("starting weather union service",
		zap.String("address", a.cfg.ServerAddress()),
	)

	srvContainer.Router.GET("/metrics", gin.WrapH(a.m.Handler()))
	srvContainer.Router.Use(a.m.HTTPMiddleware())

	weatherHandler := handlersHTTP.NewHandler(srvContainer.WeatherService)
	srvContainer.Router.GET("/weather", weatherHandler.GetWeather)
	srvContainer.Router.GET("/localities", weatherHandler.ListLocalities)
	srvContainer.Router.GET("/localities/:id", weatherHandler.GetLocality)

	go func() {
		if err := srvContainer.Srv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			a.l.Error("http server failed", zap.Error(err))
		}
	}()

	a.l.Info("weather union service started successfully")

	<-ctx.Done()
	a.l.Info("shutdown signal received, stopping weather union service")

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error("failed to shutdown application", zap.Error(err))
		return err
	}
	a.l.Info("application shutdown successfully")
	return nil
}

// Shutdown drains the HTTP server and syncs the file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error("failed to sync file logger", zap.Error(err))
		}
	}(srvContainer.fileLogger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.l.Info("shutdown complete")
	return nil
}

// init sets up logging, the upstream client chain, and the HTTP server without
// starting anything.
func (a *App) init() ServiceContainer {
	fileLogger, err := fLogger.NewFileLogger(a.cfg.LogsPath)
	if err != nil {
		a.l.Error("failed to create file logger, upstream traffic will not be logged",
			zap.Error(err))
		fileLogger = zap.NewNop()
	}

	// HTTP client logging for upstream calls
	roundTripper := loggerT.NewRoundTripper(fileLogger)
	httpLogClient := &http.Client{Transport: roundTripper}

	clientOpts := []weatherunion.Option{
		weatherunion.WithHTTPClient(httpLogClient),
		weatherunion.WithLogger(a.l),
	}
	if a.cfg.WeatherUnionURL != "" {
		clientOpts = append(clientOpts, weatherunion.WithBaseURL(a.cfg.WeatherUnionURL))
	}
	apiClient := weatherunion.FromKey(a.cfg.WeatherUnionAPIKey, clientOpts...)

	// Upstream client with circuit breaker
	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}
	unionClient := serviceWeather.NewBreakerClient("WeatherUnion", breakerCfg,
		serviceWeather.NewClientWeatherUnion(apiClient),
	)

	weatherService := serviceWeather.NewService(a.l, unionClient, a.m)

	router := gin.New()
	router.Use(gin.Recovery())

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		Router:         router,
		Srv:            httpServer,
		fileLogger:     fileLogger,
	}
}
