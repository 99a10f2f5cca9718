package probe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	results := []RequestMetrics{
		{
			TTFT:              100 * time.Millisecond,
			InterTokenLatency: 2 * time.Second,
			E2ELatency:        3 * time.Second,
			OutputThroughput:  50,
			OutputTokens:      150,
		},
		{
			TTFT:              300 * time.Millisecond,
			InterTokenLatency: 4 * time.Second,
			E2ELatency:        5 * time.Second,
			OutputThroughput:  30,
			OutputTokens:      130,
		},
		{ErrorCode: "ThrottlingException", ErrorMsg: "slow down"},
	}

	summary := Summarize(results, 10*time.Second)

	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 200*time.Millisecond, summary.MeanTTFT)
	assert.Equal(t, 3*time.Second, summary.MeanInterToken)
	assert.Equal(t, 4*time.Second, summary.MeanE2ELatency)
	assert.Equal(t, float64(40), summary.MeanThroughput)
	assert.Equal(t, int64(280), summary.TotalOutputTokens)
	assert.Equal(t, 10*time.Second, summary.Elapsed)
}

func TestSummarizeAllFailed(t *testing.T) {
	results := []RequestMetrics{{ErrorMsg: "boom"}, {ErrorMsg: "boom"}}

	summary := Summarize(results, time.Second)

	assert.Equal(t, 0, summary.Completed)
	assert.Equal(t, 2, summary.Failed)
	assert.Zero(t, summary.MeanTTFT)
	assert.Zero(t, summary.MeanThroughput)
}
