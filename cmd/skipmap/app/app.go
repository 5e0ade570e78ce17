package app

import (
	"errors"
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// CliOptions abstracts configuration options for reading parameters from the
// command line.
type CliOptions interface {
	// AddFlags adds flags to the specified FlagSet object.
	AddFlags(fs *pflag.FlagSet)
	// Validate checks the options after flags, env and config file are merged.
	Validate() []error
}

// NewRootCommand builds the skipmap command tree.
func NewRootCommand(basename string) *cobra.Command {
	root := &cobra.Command{
		Use:           basename,
		Short:         "Exercise and inspect skip list ordered maps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(os.Stdout)

	klogFlags := goflag.NewFlagSet(basename, goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)
	addConfigFlag(basename, root.PersistentFlags())

	root.AddCommand(
		newCommand("bench", "Replay a generated workload and report throughput", NewBenchOptions()),
		newCommand("levels", "Insert keys and compare the height histogram with the geometric expectation", NewLevelsOptions()),
	)
	return root
}

type runnable interface {
	CliOptions
	Run(cmd *cobra.Command) error
}

func newCommand(use, short string, opts runnable) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bind here, not at construction, so sibling commands sharing a
			// flag name don't steal each other's viper key.
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if errs := opts.Validate(); len(errs) > 0 {
				return errors.Join(errs...)
			}
			printConfig(cmd.OutOrStdout())
			return opts.Run(cmd)
		},
	}
	cmd.Flags().SortFlags = false
	opts.AddFlags(cmd.Flags())
	return cmd
}
