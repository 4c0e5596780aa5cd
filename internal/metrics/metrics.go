// Package metrics formats the small set of performance numbers the CLI
// reports for training and encoding runs: latency, throughput, and
// compression ratio, shared by the train, encode, and repl subcommands
// rather than kept private to any one of them.
package metrics

import (
	"fmt"
	"time"
)

// FormatLatency renders d with the coarsest unit that keeps at least two
// significant digits.
func FormatLatency(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fμs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// TokensPerSecond returns count/duration, or 0 if duration is zero.
func TokensPerSecond(count int, d time.Duration) int {
	if d == 0 {
		return 0
	}
	return int(float64(count) / d.Seconds())
}

// CompressionRatio returns originalLen/finalLen, or 0 if finalLen is zero
// (a fully collapsed sequence has no meaningful ratio).
func CompressionRatio(originalLen, finalLen int) float64 {
	if finalLen == 0 {
		return 0
	}
	return float64(originalLen) / float64(finalLen)
}
