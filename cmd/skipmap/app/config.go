package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/metailurini/skipmap/internal/report"
)

var cfgFile string

// addConfigFlag adds the --config flag and wires environment variables with
// the basename as prefix, so --max-level can also come from SKIPMAP_MAX_LEVEL.
func addConfigFlag(basename string, fs *pflag.FlagSet) {
	viper.SetEnvPrefix(strings.Replace(strings.ToUpper(basename), "-", "_", -1))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	cobra.OnInitialize(initForCobra)
	fs.StringVarP(&cfgFile, "config", "C", cfgFile,
		"Read configuration from specified `FILE`, support JSON, TOML, YAML, HCL, or Java properties formats.")
}

func initForCobra() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: failed to read configuration file(%s): %v\n", cfgFile, err)
			os.Exit(1)
		}
	}
}

// printConfig lists the effective value of every known key. klog's flags and
// --config itself are skipped.
func printConfig(w io.Writer) {
	keys := viper.AllKeys()
	sort.Strings(keys)
	rows := make([][2]interface{}, 0, len(keys))
	for _, k := range keys {
		if hiddenKeys[k] {
			continue
		}
		rows = append(rows, [2]interface{}{k, viper.Get(k)})
	}
	report.Settings(w, "Configuration items", rows)
}

var hiddenKeys = map[string]bool{
	"v": true, "vmodule": true, "logtostderr": true, "alsologtostderr": true,
	"log_dir": true, "log_file": true, "log_file_max_size": true, "log_backtrace_at": true,
	"skip_headers": true, "skip_log_headers": true, "stderrthreshold": true,
	"add_dir_header": true, "one_output": true, "config": true,
}
