package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// OSRMConfig contains routing engine configuration
type OSRMConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	Profile   string `yaml:"profile"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// FeedConfig contains position feed configuration
type FeedConfig struct {
	// HistorySeconds bounds the trailing fix history kept for smoothing.
	HistorySeconds int `yaml:"historySeconds" validate:"gte=0"`
}

// NavConfig contains the live-navigation tunables. Drift threshold, debounce
// and cooldown values are deployment-specific and come from configuration,
// never from code.
type NavConfig struct {
	DriftThresholdM       float64 `yaml:"driftThresholdM" validate:"gte=0"`
	DebounceMS            int     `yaml:"debounceMS" validate:"gte=0"`
	CooldownMS            int     `yaml:"cooldownMS" validate:"gte=0"`
	FailureCooldownMS     int     `yaml:"failureCooldownMS" validate:"gte=0"`
	MaxRerouteAttempts    int     `yaml:"maxRerouteAttempts" validate:"gte=0"`
	DensifyStepM          float64 `yaml:"densifyStepM" validate:"gte=0"`
	ProjectionWindow      int     `yaml:"projectionWindow" validate:"gte=0"`
	BackwardTolerance     int     `yaml:"backwardTolerance" validate:"gte=0"`
	WaypointPassedBufferM float64 `yaml:"waypointPassedBufferM" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	OSRM   OSRMConfig   `yaml:"osrm"`
	Feed   FeedConfig   `yaml:"feed"`
	Nav    NavConfig    `yaml:"nav"`
}
