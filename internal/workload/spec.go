package workload

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
	"k8s.io/klog/v2"

	"github.com/metailurini/skipmap"
)

// Key distributions.
const (
	DistUniform   = "uniform"
	DistZipf      = "zipf"
	DistAscending = "ascending"
)

var ErrInvalidSpec = errors.New("invalid workload spec")

// Mix holds relative operation weights. They need not sum to 100.
type Mix struct {
	Insert int `yaml:"insert"`
	Select int `yaml:"select"`
	Update int `yaml:"update"`
	Delete int `yaml:"delete"`
}

func (m Mix) total() int {
	return m.Insert + m.Select + m.Update + m.Delete
}

// Spec describes a reproducible stream of map operations and the map that
// receives them.
type Spec struct {
	Ops          int     `yaml:"ops"`
	KeySpace     int     `yaml:"key_space"`
	Distribution string  `yaml:"distribution"`
	ZipfS        float64 `yaml:"zipf_s"`
	Mix          Mix     `yaml:"mix"`
	Seed         int64   `yaml:"seed"`

	MaxLevel        int     `yaml:"max_level"`
	Probability     float64 `yaml:"probability"`
	DuplicatePolicy string  `yaml:"duplicate_policy"`
}

// DefaultSpec returns a write-heavy uniform workload over 64k keys.
func DefaultSpec() Spec {
	return Spec{
		Ops:             100000,
		KeySpace:        1 << 16,
		Distribution:    DistUniform,
		ZipfS:           1.2,
		Mix:             Mix{Insert: 40, Select: 40, Update: 10, Delete: 10},
		Seed:            1,
		MaxLevel:        skipmap.DefaultMaxLevel,
		Probability:     skipmap.DefaultProbability,
		DuplicatePolicy: skipmap.DuplicateReject.String(),
	}
}

// LoadSpec reads a YAML spec. Fields missing from the file keep their
// DefaultSpec values; unknown fields are rejected.
func LoadSpec(path string) (Spec, error) {
	spec := DefaultSpec()
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("read workload spec %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &spec); err != nil {
		return spec, fmt.Errorf("%w: %s: %v", ErrInvalidSpec, path, err)
	}
	klog.V(2).InfoS("Loaded workload spec", "path", path, "ops", spec.Ops, "distribution", spec.Distribution)
	return spec, spec.Validate()
}

// Dump writes spec as YAML to path.
func (s Spec) Dump(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the workload fields and the map configuration they imply.
func (s Spec) Validate() error {
	if s.Ops < 0 {
		return fmt.Errorf("%w: ops must not be negative, got %d", ErrInvalidSpec, s.Ops)
	}
	if s.KeySpace <= 0 {
		return fmt.Errorf("%w: key_space must be positive, got %d", ErrInvalidSpec, s.KeySpace)
	}
	switch s.Distribution {
	case DistUniform, DistAscending:
	case DistZipf:
		if s.ZipfS <= 1 {
			return fmt.Errorf("%w: zipf_s must be > 1, got %v", ErrInvalidSpec, s.ZipfS)
		}
	default:
		return fmt.Errorf("%w: unknown distribution %q", ErrInvalidSpec, s.Distribution)
	}
	if s.Mix.Insert < 0 || s.Mix.Select < 0 || s.Mix.Update < 0 || s.Mix.Delete < 0 || s.Mix.total() == 0 {
		return fmt.Errorf("%w: mix weights must be non-negative with a positive sum", ErrInvalidSpec)
	}
	_, err := s.MapConfig()
	return err
}

// MapConfig returns the skipmap configuration described by the spec.
func (s Spec) MapConfig() (skipmap.Config, error) {
	policy, err := skipmap.ParseDuplicatePolicy(s.DuplicatePolicy)
	if err != nil {
		return skipmap.Config{}, err
	}
	c := skipmap.NewConfig(
		skipmap.WithMaxLevel(s.MaxLevel),
		skipmap.WithProbability(s.Probability),
		skipmap.WithDuplicatePolicy(policy),
		skipmap.WithSeed(uint64(s.Seed)),
	)
	return c, c.Validate()
}
