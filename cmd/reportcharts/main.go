// Command reportcharts renders the research-report statistics charts
// (step frequency, score distribution, industry averages and the per-report
// radar) to PNG/SVG files and an optional HTML page.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
