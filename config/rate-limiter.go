package config

// Rate limit configuration for the HTTP surface
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`   // Sustained requests per second per client
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"150"` // Burst capacity per client
}

var DefaultRateLimitConfig = RateLimitConfig{
	RequestsPerSecond: 100,
	Burst:             150,
}
