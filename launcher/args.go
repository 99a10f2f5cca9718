package launcher

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// BuildArgs renders the argv tail for the external benchmark tool. The flag
// set and ordering are fixed; numeric values are rendered as plain decimal
// literals and the two JSON-valued flags are forwarded verbatim. The
// --metadata flag is only emitted when metadata is non-empty.
func BuildArgs(params ScenarioParams) []string {
	args := []string{
		"--model", params.Model,
		"--llm-api", params.LLMAPI,
		"--mean-input-tokens", strconv.Itoa(params.MeanInputTokens),
		"--stddev-input-tokens", strconv.Itoa(params.StddevInputTokens),
		"--mean-output-tokens", strconv.Itoa(params.MeanOutputTokens),
		"--stddev-output-tokens", strconv.Itoa(params.StddevOutputTokens),
		"--max-num-completed-requests", strconv.Itoa(params.MaxNumCompletedRequests),
		"--timeout", strconv.Itoa(params.Timeout),
		"--num-concurrent-requests", strconv.Itoa(params.NumConcurrentRequests),
		"--results-dir", params.ResultsDir,
	}
	if params.Metadata != "" {
		args = append(args, "--metadata", params.Metadata)
	}
	args = append(args,
		"--additional-sampling-params", params.SamplingParams,
		"--additional-request-body", params.RequestBody,
	)
	return args
}

// ValidateParams rejects scenarios the external tool would choke on: the
// two JSON-valued flags must parse as JSON objects before anything is
// spawned.
func ValidateParams(params ScenarioParams) error {
	if err := validateJSONObject(params.SamplingParams); err != nil {
		return fmt.Errorf("invalid --additional-sampling-params: %v", err)
	}
	if err := validateJSONObject(params.RequestBody); err != nil {
		return fmt.Errorf("invalid --additional-request-body: %v", err)
	}
	return nil
}

func validateJSONObject(s string) error {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return fmt.Errorf("not a JSON object: %v", err)
	}
	return nil
}
