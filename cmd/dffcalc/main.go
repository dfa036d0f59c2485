// Command dffcalc computes dF/F traces from raw fluorescence CSV data.
//
// Usage:
//
//	dffcalc [flags] [input.csv]
//
// The input is CSV with one row per channel and one column per frame;
// without a file argument it is read from stdin. The dF/F matrix is written
// as CSV to stdout, one row per channel.
//
// Examples:
//
//	dffcalc traces.csv > dff.csv
//	dffcalc -fps 15 -invert traces.csv
//	dffcalc -low-background -events -threshold 0.2 traces.csv
//	dffcalc -stats traces.csv > dff.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	timestats "github.com/cwbudde/algo-dsp/stats/time"
	"github.com/cwbudde/algo-fluo/dff"
	"github.com/cwbudde/algo-fluo/measure/events"
)

func main() {
	var (
		fps           = flag.Float64("fps", 30, "acquisition frame rate in Hz")
		tau0          = flag.Float64("tau0", 0.1, "exponential smoothing half-life in seconds")
		tau1          = flag.Float64("tau1", 0.35, "baseline boxcar width in seconds")
		tau2          = flag.Float64("tau2", 2.0, "baseline minimum lookback in seconds")
		invert        = flag.Bool("invert", false, "signal of interest is a fluorescence decrease")
		lowBackground = flag.Bool("low-background", false, "low-background acquisition (photon counting etc.)")
		workers       = flag.Int("workers", 1, "channels processed concurrently")
		showEvents    = flag.Bool("events", false, "print a per-channel event table to stderr")
		threshold     = flag.Float64("threshold", 0.1, "event onset threshold in dF/F units")
		showStats     = flag.Bool("stats", false, "print per-channel dF/F statistics to stderr")
	)

	flag.Parse()

	data, err := readTraces(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "dffcalc: %v\n", err)
		os.Exit(1)
	}

	opts := []dff.Option{
		dff.WithFrameRate(*fps),
		dff.WithTimeConstants(*tau0, *tau1, *tau2),
		dff.WithWorkers(*workers),
	}

	if *invert {
		opts = append(opts, dff.WithInvert())
	}

	if *lowBackground {
		opts = append(opts, dff.WithLowBackground())
	}

	out, err := dff.Compute(data, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dffcalc: %v\n", err)
		os.Exit(1)
	}

	if err := writeTraces(os.Stdout, out); err != nil {
		fmt.Fprintf(os.Stderr, "dffcalc: %v\n", err)
		os.Exit(1)
	}

	if *showEvents {
		printEvents(out, *threshold, *fps)
	}

	if *showStats {
		printStats(out)
	}
}

// readTraces parses a channels-by-frames CSV from the named file, or from
// stdin when name is empty.
func readTraces(name string) ([][]float64, error) {
	var in io.Reader = os.Stdin

	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		in = f
	}

	records, err := csv.NewReader(in).ReadAll()
	if err != nil {
		return nil, err
	}

	data := make([][]float64, len(records))
	for i, record := range records {
		data[i] = make([]float64, len(record))

		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}

			data[i][j] = v
		}
	}

	return data, nil
}

func writeTraces(w io.Writer, data [][]float64) error {
	out := csv.NewWriter(w)

	record := []string{}
	for _, row := range data {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}

		if err := out.Write(record); err != nil {
			return err
		}
	}

	out.Flush()

	return out.Error()
}

func printEvents(data [][]float64, threshold, fps float64) {
	w := tabwriter.NewWriter(os.Stderr, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "channel\tonset\tpeak\tduration\tamplitude\tarea")

	for c, row := range data {
		found := events.Detect(row, events.WithThreshold(threshold))
		for _, e := range found {
			fmt.Fprintf(w, "%d\t%.3fs\t%.3fs\t%.3fs\t%.4f\t%.4f\n",
				c,
				float64(e.Onset)/fps,
				float64(e.Peak)/fps,
				float64(e.Duration())/fps,
				e.Amplitude,
				e.Area)
		}
	}

	w.Flush()
}

func printStats(data [][]float64) {
	w := tabwriter.NewWriter(os.Stderr, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "channel\trms\tpeak\tmax\tmin\tvariance")

	for c, row := range data {
		s := timestats.Calculate(row)
		fmt.Fprintf(w, "%d\t%.5f\t%.5f\t%.5f\t%.5f\t%.6f\n",
			c, s.RMS, s.Peak, s.Max, s.Min, s.Variance)
	}

	w.Flush()
}
