package matching

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Matcher scores providers against beneficiaries and donations. It holds
// no mutable state and is safe for concurrent use.
type Matcher struct {
	config Config
	logger logrus.FieldLogger
}

// New returns a Matcher. Zero fields in config fall back to DefaultConfig.
func New(config Config, logger logrus.FieldLogger) *Matcher {
	defaults := DefaultConfig()

	if config.Weights == (Weights{}) {
		config.Weights = defaults.Weights
	}
	if config.MatchThreshold <= 0 {
		config.MatchThreshold = defaults.MatchThreshold
	}
	if config.PreferredBonus <= 0 {
		config.PreferredBonus = defaults.PreferredBonus
	}
	if config.DefaultSuggestions <= 0 {
		config.DefaultSuggestions = defaults.DefaultSuggestions
	}

	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Matcher{config: config, logger: logger}
}

func (m *Matcher) Config() Config {
	return m.config
}
