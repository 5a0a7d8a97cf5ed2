// Command pagesim generates a reference string, replays it under the four
// page-replacement policies at each requested frame size, and prints a
// comparative report. Optionally exposes Prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	pmet "github.com/IvanBrykalov/pagesim/metrics/prom"
	"github.com/IvanBrykalov/pagesim/report"
	"github.com/IvanBrykalov/pagesim/sim"
	"github.com/IvanBrykalov/pagesim/trace"
)

func main() {
	// ---- Flags ----
	var (
		length    = flag.Int("length", 16, "reference string length")
		pageRange = flag.Int("pages", 7, "page universe size (ids in [0, pages))")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		frames    = flag.String("frames", "3,4,5", "comma-separated frame sizes to evaluate")

		dist  = flag.String("dist", "uniform", "reference distribution: uniform | zipf")
		zipfS = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV = flag.Float64("zipf_v", 1.0, "Zipf v >= 1")

		parallel    = flag.Bool("parallel", false, "run (policy, frame size) pairs concurrently")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	)
	flag.Parse()

	capacities, err := parseFrames(*frames)
	if err != nil {
		log.Fatalf("bad -frames: %v", err)
	}

	// ---- Reference string ----
	var ref []int
	switch *dist {
	case "uniform":
		ref, err = trace.Uniform(*length, *pageRange, *seed)
	case "zipf":
		ref, err = trace.Zipf(*length, *pageRange, *zipfS, *zipfV, *seed)
	default:
		log.Fatalf("unknown distribution: %q (use uniform or zipf)", *dist)
	}
	if err != nil {
		log.Fatalf("generate reference string: %v", err)
	}

	// ---- Optional Prometheus metrics (on DefaultServeMux) ----
	opt := sim.Options{Parallel: *parallel}
	if *metricsAddr != "" {
		opt.Metrics = pmet.New(nil, "pagesim", "run", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Simulate and report ----
	reports, err := sim.Run(ref, capacities, opt)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	if err := report.Write(os.Stdout, ref, reports); err != nil {
		log.Fatalf("write report: %v", err)
	}

	if *metricsAddr != "" {
		log.Printf("metrics: still serving at %s, interrupt to exit", *metricsAddr)
		select {}
	}
}

// parseFrames parses a comma-separated list of frame sizes, e.g. "3,4,5".
func parseFrames(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("frame size %q: %w", p, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no frame sizes given")
	}
	return sizes, nil
}
