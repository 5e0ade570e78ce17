// Command skipmap drives skip list workloads and reports their shape and
// throughput.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"k8s.io/klog/v2"

	"github.com/metailurini/skipmap/cmd/skipmap/app"
)

func main() {
	defer klog.Flush()

	if err := app.NewRootCommand("skipmap").Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v %v\n", color.RedString("Error:"), err)
		klog.Flush()
		os.Exit(1)
	}
}
