// Package report renders workload results and map shape as terminal tables.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/olekukonko/tablewriter"

	"github.com/metailurini/skipmap/internal/workload"
)

// Results writes one row per run.
func Results(w io.Writer, results []workload.Result) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.Ops),
			fmt.Sprintf("%.3f", float64(r.Elapsed.Microseconds())/1000.0),
			fmt.Sprintf("%.0f", r.OpsPerSec()),
			strconv.Itoa(r.Hits),
			strconv.Itoa(r.Misses),
			strconv.Itoa(r.Duplicates),
			strconv.Itoa(r.Len),
			fmt.Sprintf("%d/%d", r.Level, r.MaxLevel),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Ops", "Elapsed(ms)", "Ops/s", "Hits", "Misses", "Dups", "Len", "Level"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// Histogram writes the node count per height next to the share a geometric
// distribution with parameter p predicts. Heights above the tallest node are
// omitted.
func Histogram(w io.Writer, hist []int, p float64) {
	total := 0
	top := 0
	for h, c := range hist {
		total += c
		if c > 0 {
			top = h + 1
		}
	}

	rows := make([][]string, 0, top)
	for h := 1; h <= top; h++ {
		share := 0.0
		if total > 0 {
			share = float64(hist[h-1]) / float64(total)
		}
		rows = append(rows, []string{
			strconv.Itoa(h),
			strconv.Itoa(hist[h-1]),
			fmt.Sprintf("%.4f", share),
			fmt.Sprintf("%.4f", ExpectedShare(h, len(hist), p)),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Height", "Nodes", "Share", "Expected"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetFooter([]string{"", strconv.Itoa(total), "", ""})
	table.AppendBulk(rows)
	table.Render()
}

// ExpectedShare is the probability that a node drawn with level-growth
// probability p has height h when heights are truncated at maxLevel.
func ExpectedShare(h, maxLevel int, p float64) float64 {
	switch {
	case h < 1 || h > maxLevel:
		return 0
	case h == maxLevel:
		return math.Pow(1-p, float64(h-1))
	default:
		return math.Pow(1-p, float64(h-1)) * p
	}
}

// Settings writes key/value rows under a coloured heading.
func Settings(w io.Writer, title string, rows [][2]interface{}) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "%v %s:\n", color.GreenString("==>"), title)
	table := uitable.New()
	table.Separator = " "
	table.MaxColWidth = 80
	table.RightAlign(0)
	for _, row := range rows {
		table.AddRow(fmt.Sprintf("%v:", row[0]), row[1])
	}
	fmt.Fprintln(w, table)
}
