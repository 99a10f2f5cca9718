package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fatih/color"
)

// ProbeSummary aggregates the per-request probe measurements for display.
type ProbeSummary struct {
	Completed         int
	Failed            int
	MeanTTFT          time.Duration
	MeanInterToken    time.Duration
	MeanE2ELatency    time.Duration
	MeanThroughput    float64 // output tokens per second
	TotalOutputTokens int64
	Elapsed           time.Duration
}

// DisplayProbeResults shows the summary of a preflight probe run.
func DisplayProbeResults(summary ProbeSummary) {
	color.New(color.FgGreen, color.Bold).Println("\nProbe Results:")
	fmt.Printf("Duration: %v\n", summary.Elapsed)
	fmt.Printf("Completed Requests: %d\n", summary.Completed)
	fmt.Printf("Failed Requests: %d\n", summary.Failed)
	if summary.Completed == 0 {
		return
	}
	fmt.Printf("Mean TTFT: %v\n", summary.MeanTTFT)
	fmt.Printf("Mean Inter-Token Latency: %v\n", summary.MeanInterToken)
	fmt.Printf("Mean E2E Latency: %v\n", summary.MeanE2ELatency)
	fmt.Printf("Mean Output Throughput: %.2f tokens/s\n", summary.MeanThroughput)
	fmt.Printf("Total Output Tokens: %d\n", summary.TotalOutputTokens)
}

// DisplaySummary locates the newest *_summary.json the external benchmark
// tool wrote under resultsDir and prints its scalar fields sorted by key.
// The file's schema belongs to the tool, so it is treated as an opaque flat
// JSON object.
func DisplaySummary(resultsDir string) error {
	path, err := newestSummaryFile(resultsDir)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read summary file %s: %v", path, err)
	}

	summary := map[string]interface{}{}
	if err := json.Unmarshal(data, &summary); err != nil {
		return fmt.Errorf("failed to parse summary file %s: %v", path, err)
	}

	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	color.New(color.FgGreen, color.Bold).Printf("\nBenchmark Summary (%s):\n", filepath.Base(path))
	for _, k := range keys {
		switch v := summary[k].(type) {
		case float64:
			fmt.Printf("%s: %g\n", k, v)
		case string:
			fmt.Printf("%s: %s\n", k, v)
		case bool:
			fmt.Printf("%s: %t\n", k, v)
		}
	}
	return nil
}

// newestSummaryFile returns the most recently modified *_summary.json under
// the results directory.
func newestSummaryFile(resultsDir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(resultsDir, "*_summary.json"))
	if err != nil {
		return "", fmt.Errorf("failed to scan results dir %s: %v", resultsDir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no summary files found under %s", resultsDir)
	}

	newest := ""
	var newestMod time.Time
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = m
			newestMod = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no readable summary files under %s", resultsDir)
	}
	return newest, nil
}
