package generic

import (
	"strings"

	"go.uber.org/zap"
)

// =============================================================================
// ENGINE OPTIONS
// =============================================================================

// IDMatching controls how participant ids are compared on lookup and
// combine.
type IDMatching string

const (
	// MatchExact compares ids byte for byte.
	MatchExact IDMatching = "exact"
	// MatchFold compares ids case-insensitively.
	MatchFold IDMatching = "fold"
)

// ParseIDMatching maps a config string to an IDMatching. Unknown values
// fall back to MatchExact.
func ParseIDMatching(s string) IDMatching {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "case_insensitive", "insensitive":
		return MatchFold
	default:
		return MatchExact
	}
}

func (m IDMatching) matches(a, b string) bool {
	if m == MatchFold {
		return strings.EqualFold(a, b)
	}
	return a == b
}

type options struct {
	granularity float64
	matching    IDMatching
	logger      *zap.Logger
}

func defaultOptions() options {
	return options{
		matching: MatchExact,
		logger:   zap.NewNop(),
	}
}

// Option configures an Engine.
type Option func(*options)

// WithGranularity sets the unit amounts are rounded to. 0 disables rounding;
// negative values are treated as 0.
func WithGranularity(g float64) Option {
	return func(o *options) {
		if g < 0 || !isFinite(g) {
			g = 0
		}
		o.granularity = g
	}
}

// WithIDMatching selects exact or case-insensitive id lookup.
func WithIDMatching(m IDMatching) Option {
	return func(o *options) {
		if m != MatchFold {
			m = MatchExact
		}
		o.matching = m
	}
}

// WithLogger injects a logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
