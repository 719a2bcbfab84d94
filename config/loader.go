package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse unmarshals, validates and applies defaults to a raw yaml config.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.OSRM); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Nav); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	if cfg.OSRM.BaseURL == "" {
		cfg.OSRM.BaseURL = "http://router.project-osrm.org"
	}
	if cfg.OSRM.Profile == "" {
		cfg.OSRM.Profile = "driving"
	}
	if cfg.OSRM.TimeoutMS == 0 {
		cfg.OSRM.TimeoutMS = 5000
	}
	if cfg.Feed.HistorySeconds == 0 {
		cfg.Feed.HistorySeconds = 30
	}
	if cfg.Nav.DriftThresholdM == 0 {
		cfg.Nav.DriftThresholdM = 50
	}
	if cfg.Nav.DebounceMS == 0 {
		cfg.Nav.DebounceMS = 3000
	}
	if cfg.Nav.CooldownMS == 0 {
		cfg.Nav.CooldownMS = 10000
	}
	if cfg.Nav.FailureCooldownMS == 0 {
		cfg.Nav.FailureCooldownMS = 3000
	}
	if cfg.Nav.MaxRerouteAttempts == 0 {
		cfg.Nav.MaxRerouteAttempts = 3
	}
	if cfg.Nav.DensifyStepM == 0 {
		cfg.Nav.DensifyStepM = 0.5
	}
	if cfg.Nav.ProjectionWindow == 0 {
		cfg.Nav.ProjectionWindow = 20
	}
	if cfg.Nav.BackwardTolerance == 0 {
		cfg.Nav.BackwardTolerance = 3
	}
	if cfg.Nav.WaypointPassedBufferM == 0 {
		cfg.Nav.WaypointPassedBufferM = 5
	}
}
