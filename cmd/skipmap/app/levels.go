package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/metailurini/skipmap"
	"github.com/metailurini/skipmap/internal/report"
)

// LevelsOptions configures the levels command.
type LevelsOptions struct {
	n           int
	maxLevel    int
	probability float64
	seed        uint64
}

func NewLevelsOptions() *LevelsOptions {
	return &LevelsOptions{}
}

func (o *LevelsOptions) AddFlags(fs *pflag.FlagSet) {
	fs.Int("n", 100000, "Number of keys to insert")
	fs.Int("max-level", skipmap.DefaultMaxLevel, "Skip list level ceiling")
	fs.Float64("probability", skipmap.DefaultProbability, "Level-growth probability in (0,1)")
	fs.Uint64("seed", 1, "Seed for node heights")
}

func (o *LevelsOptions) Validate() []error {
	o.n = viper.GetInt("n")
	o.maxLevel = viper.GetInt("max-level")
	o.probability = viper.GetFloat64("probability")
	o.seed = viper.GetUint64("seed")

	var errs []error
	if o.n < 0 {
		errs = append(errs, fmt.Errorf("--n must not be negative, got %d", o.n))
	}
	c := skipmap.NewConfig(skipmap.WithMaxLevel(o.maxLevel), skipmap.WithProbability(o.probability))
	if err := c.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errs
}

func (o *LevelsOptions) Run(cmd *cobra.Command) error {
	m, err := skipmap.New[int, struct{}](o.maxLevel, o.probability, skipmap.WithSeed(o.seed))
	if err != nil {
		return err
	}
	for i := 0; i < o.n; i++ {
		if err := m.Insert(i, struct{}{}); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v %d keys, level %d of %d\n", color.GreenString("==>"), m.Len(), m.Level(), m.MaxLevel())
	report.Histogram(out, m.LevelHistogram(), o.probability)
	return nil
}
