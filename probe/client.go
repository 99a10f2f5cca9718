package probe

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
)

// converseAPI is the slice of the Bedrock runtime client the probe uses.
type converseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput,
		optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
	ConverseStream(ctx context.Context, params *bedrockruntime.ConverseStreamInput,
		optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseStreamOutput, error)
}

// Client issues single Converse / ConverseStream requests against the model
// API and measures them the same way the external benchmark tool does.
type Client struct {
	api converseAPI
}

// NewClient builds a probe client from an SDK configuration.
func NewClient(cfg aws.Config) *Client {
	return &Client{api: bedrockruntime.NewFromConfig(cfg)}
}

// Request describes one probe request against the model.
type Request struct {
	Model    string
	Prompt   string
	Sampling SamplingConfig
	Body     RequestBodyConfig
}

// Do performs one request and returns its metrics. Errors never propagate
// as Go errors: they land in the metrics' error fields, mirroring how the
// external tool records per-request failures.
func (c *Client) Do(ctx context.Context, req Request) RequestMetrics {
	metrics := RequestMetrics{}

	messages := []types.Message{{
		Role: types.ConversationRoleUser,
		Content: []types.ContentBlock{
			&types.ContentBlockMemberText{Value: req.Prompt},
		},
	}}

	var system []types.SystemContentBlock
	if req.Body.System != "" {
		system = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: req.Body.System},
		}
	}

	var additional document.Interface
	if merged := MergedAdditionalFields(req.Sampling, req.Body); merged != nil {
		additional = document.NewLazyDocument(merged)
	}

	var usage *types.TokenUsage
	startTime := time.Now()

	if req.Sampling.Stream {
		out, err := c.api.ConverseStream(ctx, &bedrockruntime.ConverseStreamInput{
			ModelId:                           aws.String(req.Model),
			Messages:                          messages,
			System:                            system,
			InferenceConfig:                   req.Sampling.Inference,
			AdditionalModelRequestFields:      additional,
			AdditionalModelResponseFieldPaths: req.Body.ResponseFieldPaths,
		})
		if err != nil {
			return failedMetrics(err)
		}

		stream := out.GetStream()
		defer stream.Close()

		mostRecent := startTime
		for event := range stream.Events() {
			switch v := event.(type) {
			case *types.ConverseStreamOutputMemberContentBlockDelta:
				now := time.Now()
				if metrics.TTFT == 0 {
					metrics.TTFT = now.Sub(startTime)
					metrics.InterTokenLatency += metrics.TTFT
				} else {
					metrics.InterTokenLatency += now.Sub(mostRecent)
				}
				mostRecent = now
				if delta, ok := v.Value.Delta.(*types.ContentBlockDeltaMemberText); ok {
					metrics.GeneratedText += delta.Value
				}
			case *types.ConverseStreamOutputMemberMessageStop:
				metrics.StopReason = string(v.Value.StopReason)
			case *types.ConverseStreamOutputMemberMetadata:
				if v.Value.Usage != nil {
					usage = v.Value.Usage
				}
			}
		}
		if err := stream.Err(); err != nil {
			return failedMetrics(err)
		}
	} else {
		out, err := c.api.Converse(ctx, &bedrockruntime.ConverseInput{
			ModelId:                           aws.String(req.Model),
			Messages:                          messages,
			System:                            system,
			InferenceConfig:                   req.Sampling.Inference,
			AdditionalModelRequestFields:      additional,
			AdditionalModelResponseFieldPaths: req.Body.ResponseFieldPaths,
		})
		if err != nil {
			return failedMetrics(err)
		}

		if msg, ok := out.Output.(*types.ConverseOutputMemberMessage); ok {
			for _, block := range msg.Value.Content {
				if text, ok := block.(*types.ContentBlockMemberText); ok {
					metrics.GeneratedText += text.Value
				}
			}
		}
		metrics.StopReason = string(out.StopReason)
		usage = out.Usage
	}

	metrics.E2ELatency = time.Since(startTime)
	if usage != nil {
		metrics.InputTokens = aws.ToInt32(usage.InputTokens)
		metrics.OutputTokens = aws.ToInt32(usage.OutputTokens)
		metrics.TotalTokens = aws.ToInt32(usage.TotalTokens)
	}
	if metrics.E2ELatency > 0 {
		metrics.OutputThroughput = float64(metrics.OutputTokens) / metrics.E2ELatency.Seconds()
	}
	return metrics
}

// failedMetrics records an error the way the external tool does: code and
// message, everything else zero.
func failedMetrics(err error) RequestMetrics {
	metrics := RequestMetrics{ErrorMsg: err.Error()}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		metrics.ErrorCode = apiErr.ErrorCode()
		if msg := apiErr.ErrorMessage(); msg != "" {
			metrics.ErrorMsg = msg
		}
	}
	return metrics
}
