package config

import "time"

// Default values for optional configuration parameters.
const (
	// DefaultAPITimeout bounds JSON requests against the backend.
	DefaultAPITimeout = 15 * time.Second

	// DefaultMediaTimeout matches the dashboard's media download bound.
	DefaultMediaTimeout = 30 * time.Second

	// DefaultFetchPageSize is the bulk message fetch cap. Results beyond
	// the cap are simply absent from the cache.
	DefaultFetchPageSize = 1000

	// DefaultViewPageSize is the dashboard page size.
	DefaultViewPageSize = 20

	DefaultGeminiModel       = "gemini-2.5-flash"
	DefaultGeminiTemperature = 0.7
)
