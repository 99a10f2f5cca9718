package probe

import (
	"context"
	"fmt"
	"os"
	"time"

	"llmbenchlauncher/config"
	"llmbenchlauncher/progress"
	"llmbenchlauncher/report"

	"golang.org/x/time/rate"
)

// Params holds the parameters for a preflight probe run.
type Params struct {
	Model          string
	Prompt         string
	SamplingParams string // JSON object, same blob the launch forwards
	RequestBody    string // JSON object, same blob the launch forwards
	Requests       int    // Number of sequential probe requests
	Rate           int    // Max requests per second (0 means no limit)
}

// Per-request deadline. Model responses are slow compared to object
// storage, so this is deliberately generous.
const requestTimeout = 60 * time.Second

// Run executes the preflight probe: sequential requests against the model
// API with the scenario's sampling params and request body, so credential
// or parameter problems surface before a full benchmark run is spent.
func Run(params Params, creds config.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	sampling, err := ParseSamplingParams(params.SamplingParams)
	if err != nil {
		return err
	}
	body, err := ParseRequestBody(params.RequestBody)
	if err != nil {
		return err
	}

	ctx := context.Background()
	cfg, err := config.LoadAWSConfig(ctx, creds, newHTTPClient())
	if err != nil {
		return err
	}
	client := NewClient(cfg)

	// Create log file to track errors
	timestamp := time.Now().Format("20060102_150405")
	logFileName := fmt.Sprintf("probe_logs_%s.txt", timestamp)
	logFile, err := os.Create(logFileName)
	if err != nil {
		panic(fmt.Sprintf("Failed to create log file: %s", err.Error()))
	}
	defer logFile.Close()

	var rateLimiter *rate.Limiter
	if params.Rate > 0 {
		rateLimiter = rate.NewLimiter(rate.Limit(params.Rate), 1)
		fmt.Println("Rate limiter: ", params.Rate)
	}

	pb := progress.NewProgressBar(int64(params.Requests))
	pb.SetCaption("Probing")

	request := Request{
		Model:    params.Model,
		Prompt:   params.Prompt,
		Sampling: sampling,
		Body:     body,
	}

	results := make([]RequestMetrics, 0, params.Requests)
	startTime := time.Now()

	for i := 0; i < params.Requests; i++ {
		if rateLimiter != nil {
			if err := rateLimiter.Wait(ctx); err != nil {
				fmt.Fprintf(logFile, "Rate limiter error: %s\n", err.Error())
				break
			}
		}

		reqCtx, reqCancel := context.WithTimeout(ctx, requestTimeout)
		metrics := client.Do(reqCtx, request)
		reqCancel()

		if metrics.Failed() {
			fmt.Fprintf(logFile, "Error probing model %s: %s %s\n",
				params.Model, metrics.ErrorCode, metrics.ErrorMsg)
		}
		results = append(results, metrics)
		pb.Increment()
	}

	pb.Finish()

	elapsed := time.Since(startTime)
	report.DisplayProbeResults(Summarize(results, elapsed))

	// Check if throttling occurred by scanning the log file
	if CheckLogForThrottling(logFileName) {
		fmt.Printf("API Throttled: Check %s for more details.\n", logFileName)
	} else {
		fmt.Println("No API throttling detected.")
	}
	return nil
}
