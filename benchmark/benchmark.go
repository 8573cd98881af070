// Package benchmark times repeated invocations of an operation and prints
// running statistics. It knows nothing about what it times.
package benchmark

import (
	"fmt"
	"io"
	"os"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Report is the running state after one invocation.
type Report struct {
	Run    int
	Mean   float64
	StdDev float64
}

type Benchmark struct {
	// Runs defaults to 100.
	Runs int
	// Out receives the report lines. Defaults to os.Stdout.
	Out io.Writer
	// Silence redirects os.Stdout to the null device while the operation
	// runs.
	Silence bool
}

func New() *Benchmark {
	return &Benchmark{
		Runs:    100,
		Out:     os.Stdout,
		Silence: true,
	}
}

// Run invokes fn Runs times and prints "run mean stddev" (seconds) after each
// of the first 10 runs and after every 10th run thereafter. The standard
// deviation is the sample one and is 0 for the first run. All reports are
// returned, printed or not.
func (b *Benchmark) Run(fn func()) ([]Report, error) {
	runs := b.Runs
	if runs <= 0 {
		runs = 100
	}
	out := b.Out
	if out == nil {
		out = os.Stdout
	}

	timings := make([]float64, 0, runs)
	reports := make([]Report, 0, runs)

	for i := 0; i < runs; i++ {
		seconds, err := b.time(fn)
		if err != nil {
			return reports, err
		}
		timings = append(timings, seconds)

		r := Report{Run: i + 1, Mean: stat.Mean(timings, nil)}
		if i > 0 {
			r.StdDev = stat.StdDev(timings, nil)
		}
		reports = append(reports, r)

		if i < 10 || i%10 == 9 {
			fmt.Fprintf(out, "%d %3.2f %3.2f\n", r.Run, r.Mean, r.StdDev)
		}
	}
	return reports, nil
}

func (b *Benchmark) time(fn func()) (float64, error) {
	if !b.Silence {
		start := time.Now()
		fn()
		return time.Since(start).Seconds(), nil
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	stdout := os.Stdout
	os.Stdout = devNull
	defer func() { os.Stdout = stdout }()

	start := time.Now()
	fn()
	return time.Since(start).Seconds(), nil
}
