package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/metailurini/skipmap/internal/report"
	"github.com/metailurini/skipmap/internal/workload"
)

// BenchOptions configures the bench command. Workload knobs live in viper so
// a flag, an environment variable or the --config file can set them; they
// override the YAML spec given with --spec.
type BenchOptions struct {
	SpecFile string
	DumpSpec string
	Runs     int

	spec workload.Spec
}

func NewBenchOptions() *BenchOptions {
	return &BenchOptions{Runs: 1}
}

func (o *BenchOptions) AddFlags(fs *pflag.FlagSet) {
	def := workload.DefaultSpec()

	fs.StringVar(&o.SpecFile, "spec", o.SpecFile,
		"Read the workload from a YAML `FILE`; flags override its fields")
	fs.StringVar(&o.DumpSpec, "dump-spec", o.DumpSpec,
		"Write the effective workload spec to `FILE` before running")
	fs.IntVar(&o.Runs, "runs", o.Runs,
		"How many times to replay the workload, bumping the seed each time")

	fs.Int("ops", def.Ops, "Number of operations per run")
	fs.Int("keys", def.KeySpace, "Size of the key space")
	fs.String("dist", def.Distribution, "Key distribution: uniform, zipf or ascending")
	fs.Float64("zipf-s", def.ZipfS, "Zipf skew, must be > 1")
	fs.Int("mix-insert", def.Mix.Insert, "Relative weight of inserts")
	fs.Int("mix-select", def.Mix.Select, "Relative weight of selects")
	fs.Int("mix-update", def.Mix.Update, "Relative weight of updates")
	fs.Int("mix-delete", def.Mix.Delete, "Relative weight of deletes")
	fs.Int64("seed", def.Seed, "Seed for operations and node heights")
	fs.Int("max-level", def.MaxLevel, "Skip list level ceiling")
	fs.Float64("probability", def.Probability, "Level-growth probability in (0,1)")
	fs.String("duplicates", def.DuplicatePolicy, "Insert policy for existing keys: reject, ignore or overwrite")
}

// Validate merges the spec file with viper overrides and checks the result.
func (o *BenchOptions) Validate() []error {
	var errs []error
	if o.Runs <= 0 {
		errs = append(errs, fmt.Errorf("--runs must be positive, got %d", o.Runs))
	}

	spec := workload.DefaultSpec()
	if o.SpecFile != "" {
		loaded, err := workload.LoadSpec(o.SpecFile)
		if err != nil {
			return append(errs, err)
		}
		spec = loaded
	}
	overlay(&spec)
	if err := spec.Validate(); err != nil {
		errs = append(errs, err)
	}
	o.spec = spec
	return errs
}

// overlay copies every key that was explicitly set onto spec.
func overlay(spec *workload.Spec) {
	setInt := func(key string, dst *int) {
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	setInt("ops", &spec.Ops)
	setInt("keys", &spec.KeySpace)
	setInt("mix-insert", &spec.Mix.Insert)
	setInt("mix-select", &spec.Mix.Select)
	setInt("mix-update", &spec.Mix.Update)
	setInt("mix-delete", &spec.Mix.Delete)
	setInt("max-level", &spec.MaxLevel)
	if viper.IsSet("dist") {
		spec.Distribution = viper.GetString("dist")
	}
	if viper.IsSet("zipf-s") {
		spec.ZipfS = viper.GetFloat64("zipf-s")
	}
	if viper.IsSet("seed") {
		spec.Seed = viper.GetInt64("seed")
	}
	if viper.IsSet("probability") {
		spec.Probability = viper.GetFloat64("probability")
	}
	if viper.IsSet("duplicates") {
		spec.DuplicatePolicy = viper.GetString("duplicates")
	}
}

func (o *BenchOptions) Run(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if o.DumpSpec != "" {
		if err := o.spec.Dump(o.DumpSpec); err != nil {
			return fmt.Errorf("dump spec: %w", err)
		}
		klog.InfoS("Wrote workload spec", "path", o.DumpSpec)
	}

	results := make([]workload.Result, 0, o.Runs)
	for i := 0; i < o.Runs; i++ {
		spec := o.spec
		spec.Seed += int64(i)
		res, err := workload.Run(fmt.Sprintf("%s#%d", spec.Distribution, i+1), spec)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	fmt.Fprintf(out, "%v Results:\n", color.GreenString("==>"))
	report.Results(out, results)

	last := results[len(results)-1]
	fmt.Fprintf(out, "%v Level histogram (%s):\n", color.GreenString("==>"), last.Name)
	report.Histogram(out, last.Histogram, o.spec.Probability)
	return nil
}
