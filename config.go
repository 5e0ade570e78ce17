package skipmap

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxLevel is the level ceiling used by NewConfig.
	DefaultMaxLevel = 32
	// DefaultProbability is the level-growth probability used by NewConfig.
	DefaultProbability = 0.5
)

// DuplicatePolicy decides what Insert does with a key that is already present.
type DuplicatePolicy int

const (
	// DuplicateReject makes Insert fail with ErrDuplicateKey.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateIgnore makes Insert a silent no-op.
	DuplicateIgnore
	// DuplicateOverwrite makes Insert replace the stored value.
	DuplicateOverwrite
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReject:
		return "reject"
	case DuplicateIgnore:
		return "ignore"
	case DuplicateOverwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "reject", "ignore" or "overwrite" to a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return DuplicateReject, nil
	case "ignore":
		return DuplicateIgnore, nil
	case "overwrite", "upsert":
		return DuplicateOverwrite, nil
	default:
		return DuplicateReject, fmt.Errorf("%w: unknown duplicate policy %q", ErrInvalidConfiguration, s)
	}
}

// Config holds configuration for an OrderedMap.
type Config struct {
	// maxLevel is the immutable ceiling on node height
	maxLevel int

	// probability drives the geometric height distribution
	probability float64

	duplicates DuplicatePolicy

	// src feeds RandomLevel; nil means a clock-seeded RNG
	src Source
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig(opts ...Option) Config {
	c := Config{
		maxLevel:    DefaultMaxLevel,
		probability: DefaultProbability,
		duplicates:  DuplicateReject,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMaxLevel sets the maximum height of the skip list.
func WithMaxLevel(maxLevel int) Option {
	return func(c *Config) { c.maxLevel = maxLevel }
}

// WithProbability sets the level-growth probability.
func WithProbability(p float64) Option {
	return func(c *Config) { c.probability = p }
}

// WithDuplicatePolicy sets how Insert treats an existing key.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(c *Config) { c.duplicates = p }
}

// WithRandSource replaces the random source used for node heights.
func WithRandSource(src Source) Option {
	return func(c *Config) { c.src = src }
}

// WithSeed makes node heights reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.src = NewRNGWithSeed(seed) }
}

// MaxLevel returns the configured level ceiling.
func (c Config) MaxLevel() int { return c.maxLevel }

// Probability returns the configured level-growth probability.
func (c Config) Probability() float64 { return c.probability }

// DuplicatePolicy returns the configured duplicate-key policy.
func (c Config) DuplicatePolicy() DuplicatePolicy { return c.duplicates }

// Validate reports whether the configuration can build a skip list.
func (c Config) Validate() error {
	if c.maxLevel <= 0 {
		return fmt.Errorf("%w: max level must be positive, got %d", ErrInvalidConfiguration, c.maxLevel)
	}
	if !(c.probability > 0 && c.probability < 1) {
		return fmt.Errorf("%w: probability must be in (0,1), got %v", ErrInvalidConfiguration, c.probability)
	}
	switch c.duplicates {
	case DuplicateReject, DuplicateIgnore, DuplicateOverwrite:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, c.duplicates)
	}
	return nil
}
