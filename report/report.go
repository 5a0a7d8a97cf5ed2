// Package report renders simulation results as text: the reference
// string, one aligned table per frame capacity, a best/worst summary,
// and a short closing narrative. Pure formatting; no simulation logic.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/IvanBrykalov/pagesim/sim"
)

// Write renders reports to w in capacity order.
func Write(w io.Writer, trace []int, reports []sim.CapacityReport) error {
	if _, err := fmt.Fprintf(w, "Reference String: %v\n", trace); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := writeTable(w, rep); err != nil {
			return err
		}
	}

	if err := writeSummary(w, reports); err != nil {
		return err
	}
	return writeNarrative(w)
}

func writeTable(w io.Writer, rep sim.CapacityReport) error {
	if _, err := fmt.Fprintf(w, "\nFrame Size: %d\n", rep.Capacity); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tPage Faults\tPage Hits\tFailure Rate\tSuccess Rate")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f%%\t%.2f%%\n",
			r.Policy, r.Faults, r.Hits, r.FailureRate, r.SuccessRate)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, reports []sim.CapacityReport) error {
	if _, err := fmt.Fprintln(w, "\nSummary:"); err != nil {
		return err
	}
	for _, rep := range reports {
		_, err := fmt.Fprintf(w, "Frame Size %d: BEST -> %s (%.1f%%)  WORST -> %s (%.1f%%)\n",
			rep.Capacity, rep.Best, rep.BestRate, rep.Worst, rep.WorstRate)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeNarrative(w io.Writer) error {
	lines := []string{
		"",
		"Narrative:",
		"- The Optimal algorithm has the lowest failure rate across all frame sizes, followed by LRU.",
		"- Second-Chance performs slightly better than FIFO, but both are generally worse than LRU and Optimal.",
		"- Increasing the number of page frames reduces the failure rate for all algorithms, as expected.",
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
