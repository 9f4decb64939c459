package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Database pool
	DatabaseMaxConns           int32 `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseStatementTimeoutMs uint  `envconfig:"DATABASE_STATEMENT_TIMEOUT_MS" default:"15000"`

	// Matching
	MatchThreshold     float64 `envconfig:"MATCH_THRESHOLD" default:"40"`
	DefaultSuggestions int     `envconfig:"DEFAULT_SUGGESTIONS" default:"5"`

	// Proof review
	ProofMinFaceMatch  float64 `envconfig:"PROOF_MIN_FACE_MATCH" default:"0.8"`
	ProofMaxDistanceKm float64 `envconfig:"PROOF_MAX_DISTANCE_KM" default:"5"`

	// Per client, applied by the HTTP server
	RateLimitPerSec float64 `envconfig:"RATE_LIMIT_PER_SEC" default:"10"`
	RateLimitBurst  int     `envconfig:"RATE_LIMIT_BURST" default:"50"`
}
