package probe

import (
	"time"

	"llmbenchlauncher/report"
)

// RequestMetrics holds the measurements for a single model request. In
// streaming mode the time-to-first-token is really time-to-first-delta,
// since the Converse APIs report content blocks rather than raw tokens.
type RequestMetrics struct {
	TTFT              time.Duration // time to first content delta (streaming only)
	InterTokenLatency time.Duration // summed delta gaps, including the first
	E2ELatency        time.Duration
	OutputThroughput  float64 // output tokens per second
	InputTokens       int32
	OutputTokens      int32
	TotalTokens       int32
	StopReason        string
	GeneratedText     string
	ErrorCode         string
	ErrorMsg          string
}

// Failed reports whether the request ended in an error.
func (m RequestMetrics) Failed() bool {
	return m.ErrorCode != "" || m.ErrorMsg != ""
}

// Summarize aggregates per-request metrics into a displayable summary.
// Means are taken over completed requests only.
func Summarize(results []RequestMetrics, elapsed time.Duration) report.ProbeSummary {
	summary := report.ProbeSummary{Elapsed: elapsed}

	var ttft, interToken, e2e time.Duration
	var throughput float64
	for _, m := range results {
		if m.Failed() {
			summary.Failed++
			continue
		}
		summary.Completed++
		ttft += m.TTFT
		interToken += m.InterTokenLatency
		e2e += m.E2ELatency
		throughput += m.OutputThroughput
		summary.TotalOutputTokens += int64(m.OutputTokens)
	}

	if summary.Completed > 0 {
		n := time.Duration(summary.Completed)
		summary.MeanTTFT = ttft / n
		summary.MeanInterToken = interToken / n
		summary.MeanE2ELatency = e2e / n
		summary.MeanThroughput = throughput / float64(summary.Completed)
	}
	return summary
}
