package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Host        string `envconfig:"WU_SERVER_HOST" default:"0.0.0.0"`
	Port        string `envconfig:"WU_SERVER_PORT" default:"8080"`
	ReadTimeout int    `envconfig:"WU_SERVER_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Config struct {
	WeatherUnionAPIKey string `envconfig:"WEATHER_UNION_API_KEY" required:"true"`
	// WeatherUnionURL overrides the production endpoint; leave empty outside tests.
	WeatherUnionURL string `envconfig:"WEATHER_UNION_URL" default:""`

	Server  Server
	Breaker Breaker

	LogsPath string `envconfig:"LOGS_PATH" default:"./log/weatherunion-api.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}
