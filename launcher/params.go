package launcher

// ScenarioParams holds the parameters for a token benchmark scenario. They
// map one-to-one onto the external benchmark tool's command-line flags.
type ScenarioParams struct {
	Model                   string // Model identifier, e.g. a Bedrock model ID
	LLMAPI                  string // API backend selector for the external tool
	MeanInputTokens         int    // Mean of the input token distribution
	StddevInputTokens       int    // Stddev of the input token distribution
	MeanOutputTokens        int    // Mean of the output token distribution
	StddevOutputTokens      int    // Stddev of the output token distribution
	MaxNumCompletedRequests int    // Stop after this many completed requests
	Timeout                 int    // Benchmark timeout in seconds (enforced by the tool)
	NumConcurrentRequests   int    // Concurrency level inside the tool
	ResultsDir              string // Directory the tool writes results under
	Metadata                string // key=value,... string forwarded verbatim
	SamplingParams          string // JSON object, forwarded verbatim
	RequestBody             string // JSON object, forwarded verbatim
}

// LaunchParams describes how to start the external benchmark tool.
type LaunchParams struct {
	Python string // Python interpreter to run the tool with
	Script string // Path to the benchmark script
}
