package probe

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// SamplingConfig is the probe-side reading of the --additional-sampling-params
// JSON blob. Known keys map onto the typed inference configuration; a
// "stream" key selects the streaming API and is not forwarded; everything
// else rides along as additional model request fields.
type SamplingConfig struct {
	Stream           bool
	Inference        *types.InferenceConfiguration
	AdditionalFields map[string]interface{}
}

// RequestBodyConfig is the probe-side reading of the --additional-request-body
// JSON blob: an optional system prompt, extra model request fields, and
// response field paths.
type RequestBodyConfig struct {
	System             string
	AdditionalFields   map[string]interface{}
	ResponseFieldPaths []string
}

// ParseSamplingParams decodes a sampling-params JSON object. The external
// benchmark tool renames max_tokens to maxTokens before calling the model
// API; the probe does the same so both see identical request shapes.
func ParseSamplingParams(raw string) (SamplingConfig, error) {
	cfg := SamplingConfig{}
	params := map[string]interface{}{}
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return cfg, fmt.Errorf("sampling params are not a JSON object: %v", err)
	}

	if v, ok := params["max_tokens"]; ok {
		params["maxTokens"] = v
		delete(params, "max_tokens")
	}

	if v, ok := params["stream"]; ok {
		stream, ok := v.(bool)
		if !ok {
			return cfg, fmt.Errorf("sampling param %q must be a boolean", "stream")
		}
		cfg.Stream = stream
		delete(params, "stream")
	}

	inference := &types.InferenceConfiguration{}
	configured := false

	if v, ok := takeNumber(params, "maxTokens"); ok {
		inference.MaxTokens = aws.Int32(int32(v))
		configured = true
	}
	if v, ok := takeNumber(params, "temperature"); ok {
		inference.Temperature = aws.Float32(float32(v))
		configured = true
	}
	if v, ok := takeNumber(params, "top_p"); ok {
		inference.TopP = aws.Float32(float32(v))
		configured = true
	}
	if v, ok := takeNumber(params, "topP"); ok {
		inference.TopP = aws.Float32(float32(v))
		configured = true
	}
	if v, ok := takeStrings(params, "stop_sequences"); ok {
		inference.StopSequences = v
		configured = true
	}
	if v, ok := takeStrings(params, "stopSequences"); ok {
		inference.StopSequences = v
		configured = true
	}
	if configured {
		cfg.Inference = inference
	}

	if len(params) > 0 {
		cfg.AdditionalFields = params
	}
	return cfg, nil
}

// ParseRequestBody decodes a request-body JSON object. A "stream" key is
// accepted and ignored (streaming is decided by the sampling params); a
// "toolConfig" key is rejected since the probe has no generic mapping onto
// the typed tool configuration.
func ParseRequestBody(raw string) (RequestBodyConfig, error) {
	cfg := RequestBodyConfig{}
	body := map[string]interface{}{}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return cfg, fmt.Errorf("request body is not a JSON object: %v", err)
	}

	if _, ok := body["toolConfig"]; ok {
		return cfg, fmt.Errorf("request body key %q is not supported by the probe", "toolConfig")
	}
	delete(body, "stream")

	if v, ok := body["system"]; ok {
		s, ok := v.(string)
		if !ok {
			return cfg, fmt.Errorf("request body key %q must be a string", "system")
		}
		cfg.System = s
		delete(body, "system")
	}

	if v, ok := body["additionalModelRequestFields"]; ok {
		fields, ok := v.(map[string]interface{})
		if !ok {
			return cfg, fmt.Errorf("request body key %q must be an object", "additionalModelRequestFields")
		}
		cfg.AdditionalFields = fields
		delete(body, "additionalModelRequestFields")
	}

	if v, ok := body["additionalModelResponseFieldPaths"]; ok {
		paths, ok := takeStringSlice(v)
		if !ok {
			return cfg, fmt.Errorf("request body key %q must be an array of strings", "additionalModelResponseFieldPaths")
		}
		cfg.ResponseFieldPaths = paths
		delete(body, "additionalModelResponseFieldPaths")
	}

	if len(body) > 0 {
		for k := range body {
			return cfg, fmt.Errorf("request body key %q is not recognized", k)
		}
	}
	return cfg, nil
}

// MergedAdditionalFields overlays the request body's extra fields on top of
// the sampling params' leftovers, matching how the external tool composes
// the final request.
func MergedAdditionalFields(sampling SamplingConfig, body RequestBodyConfig) map[string]interface{} {
	if sampling.AdditionalFields == nil && body.AdditionalFields == nil {
		return nil
	}
	merged := map[string]interface{}{}
	for k, v := range sampling.AdditionalFields {
		merged[k] = v
	}
	for k, v := range body.AdditionalFields {
		merged[k] = v
	}
	return merged
}

func takeNumber(params map[string]interface{}, key string) (float64, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	if !ok {
		return 0, false
	}
	delete(params, key)
	return n, true
}

func takeStrings(params map[string]interface{}, key string) ([]string, bool) {
	v, ok := params[key]
	if !ok {
		return nil, false
	}
	out, ok := takeStringSlice(v)
	if !ok {
		return nil, false
	}
	delete(params, key)
	return out, true
}

func takeStringSlice(v interface{}) ([]string, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
