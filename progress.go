// Progress reporting for the record-reading loop.
// Pure side-channel instrumentation: observers are invoked at record
// boundaries and no progress state threads through the statistics logic

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shenwei356/util/bytesize"
)

// ProgressFunc observes the reading loop. It is called once per processed
// record with the running record count, and a final time with done=true after
// the source is exhausted
type ProgressFunc func(records int, done bool)

// noProgress ignores all updates
func noProgress(int, bool) {}

// stderrProgress returns an observer that reports progress on stderr,
// throttled to one update per 200 ms. The input size is announced up front in
// human-readable form; the progress line is cleared when the run completes
func stderrProgress(inputSize int64) ProgressFunc {
	fmt.Fprintf(os.Stderr, "Reading input (%s)...\n", bytesize.ByteSize(inputSize))

	lastUpdate := time.Now()
	return func(records int, done bool) {
		if done {
			fmt.Fprintf(os.Stderr, "\r%d records processed\n", records)
			return
		}

		now := time.Now()
		if now.Sub(lastUpdate) < 200*time.Millisecond {
			return
		}
		lastUpdate = now
		fmt.Fprintf(os.Stderr, "\r%d records...", records)
	}
}
