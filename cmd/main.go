package main

import (
	"flag"
	"fmt"
	"os"

	"llmbenchlauncher/config"
	"llmbenchlauncher/launcher"
	"llmbenchlauncher/probe"
	"llmbenchlauncher/report"
)

func main() {
	// Define command-line flags
	operation := flag.String("operation", "LAUNCH", "Operation to perform: LAUNCH, PROBE, SUMMARY")

	model := flag.String("model", "meta.llama3-1-8b-instruct-v1:0", "Model identifier passed to the benchmark tool")
	llmAPI := flag.String("llm-api", "bedrock", "API backend selector for the benchmark tool")
	meanInput := flag.Int("mean-input-tokens", 550, "Mean input token count per request")
	stddevInput := flag.Int("stddev-input-tokens", 150, "Stddev of input token count")
	meanOutput := flag.Int("mean-output-tokens", 150, "Mean output token count per request")
	stddevOutput := flag.Int("stddev-output-tokens", 10, "Stddev of output token count")
	maxCompleted := flag.Int("max-num-completed-requests", 100, "Stop after this many completed requests")
	timeout := flag.Int("timeout", 600, "Benchmark timeout in seconds (enforced by the tool)")
	concurrency := flag.Int("num-concurrent-requests", 1, "Number of concurrent requests inside the tool")
	resultsDir := flag.String("results-dir", "result_outputs", "Directory the tool writes results under")
	metadata := flag.String("metadata", "", "key=value,... metadata forwarded to the tool")
	samplingParams := flag.String("additional-sampling-params", `{"temperature": 0.9, "stream": true}`, "JSON object of sampling params")
	requestBody := flag.String("additional-request-body", `{"stream": true}`, "JSON object merged into the request body")

	python := flag.String("python", "python", "Python interpreter used to run the benchmark tool")
	script := flag.String("benchmark-script", "token_benchmark_ray.py", "Path to the benchmark script")

	probeRequests := flag.Int("probe-requests", 1, "Number of sequential probe requests")
	probeRate := flag.Int("probe-rate", 0, "Max probe requests per second (0 means no limit)")
	probePrompt := flag.String("probe-prompt", "Briefly describe what a token benchmark measures.", "Prompt used by the probe")

	flag.Parse()

	// Set system resource limits before the run
	err := launcher.SetMaxResources()
	if err != nil {
		fmt.Printf("Error setting resources: %v\n", err)
		return
	}

	scenario := launcher.ScenarioParams{
		Model:                   *model,
		LLMAPI:                  *llmAPI,
		MeanInputTokens:         *meanInput,
		StddevInputTokens:       *stddevInput,
		MeanOutputTokens:        *meanOutput,
		StddevOutputTokens:      *stddevOutput,
		MaxNumCompletedRequests: *maxCompleted,
		Timeout:                 *timeout,
		NumConcurrentRequests:   *concurrency,
		ResultsDir:              *resultsDir,
		Metadata:                *metadata,
		SamplingParams:          *samplingParams,
		RequestBody:             *requestBody,
	}

	creds := config.LoadCredentials()

	// Run the selected operation
	switch *operation {
	case "LAUNCH":
		fmt.Println("Launching token benchmark...")
		launch := launcher.LaunchParams{Python: *python, Script: *script}
		code, err := launcher.Run(launch, scenario, creds)
		if err != nil {
			fmt.Printf("Error launching benchmark: %v\n", err)
		}
		if code == 0 {
			if err := report.DisplaySummary(scenario.ResultsDir); err != nil {
				fmt.Printf("No summary to display: %v\n", err)
			}
		}
		os.Exit(code)
	case "PROBE":
		fmt.Println("Probing model API...")
		err := probe.Run(probe.Params{
			Model:          scenario.Model,
			Prompt:         *probePrompt,
			SamplingParams: scenario.SamplingParams,
			RequestBody:    scenario.RequestBody,
			Requests:       *probeRequests,
			Rate:           *probeRate,
		}, creds)
		if err != nil {
			fmt.Printf("Error probing model API: %v\n", err)
			os.Exit(1)
		}
	case "SUMMARY":
		fmt.Println("Displaying latest benchmark summary...")
		if err := report.DisplaySummary(scenario.ResultsDir); err != nil {
			fmt.Printf("Error displaying summary: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Println("Unknown operation:", *operation)
		os.Exit(2)
	}
}
