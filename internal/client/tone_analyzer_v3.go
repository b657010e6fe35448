package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/watson/internal/constants"
	tone "github.com/fivetwenty-io/watson/pkg/services/toneanalyzerv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// ToneAnalyzerV3 implements tone.Client.
type ToneAnalyzerV3 struct {
	*service
}

// NewToneAnalyzerV3 creates a Tone Analyzer V3 client.
func NewToneAnalyzerV3(config *watson.Config) (*ToneAnalyzerV3, error) {
	svc, err := newService(config, serviceInfo{name: "tone_analyzer", version: "V3", versioned: true})
	if err != nil {
		return nil, err
	}

	return &ToneAnalyzerV3{service: svc}, nil
}

// Tone analyzes general-purpose text.
func (c *ToneAnalyzerV3) Tone(ctx context.Context, options *tone.ToneOptions) (*tone.ToneAnalysis, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("analyzing tone: %w", err)
	}

	if options.ToneInput == nil && options.Body == nil {
		return nil, nil, fmt.Errorf("analyzing tone: %w: tone_input or body", watson.ErrMissingParameter)
	}

	req := c.newRequest(http.MethodPost, "/v3/tone", "tone", options.Headers)
	req.Headers[constants.HeaderContentLanguage] = watson.StringValue(options.ContentLanguage)
	req.Headers[constants.HeaderAcceptLanguage] = watson.StringValue(options.AcceptLanguage)
	req.Params = struct {
		Sentences *bool      `schema:"sentences,omitempty"`
		Tones     watson.CSV `schema:"tones,omitempty"`
	}{options.Sentences, options.Tones}

	if options.ToneInput != nil {
		req.Body = options.ToneInput
	} else {
		req.RawBody = options.Body
		req.ContentType = watson.StringValue(options.ContentType)
	}

	var result tone.ToneAnalysis

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("analyzing tone: %w", err)
	}

	return &result, resp, nil
}

// ToneChat analyzes customer-engagement conversations.
func (c *ToneAnalyzerV3) ToneChat(ctx context.Context, options *tone.ToneChatOptions) (*tone.UtteranceAnalyses, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("analyzing chat tone: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v3/tone_chat", "tone_chat", options.Headers)
	req.Headers[constants.HeaderContentLanguage] = watson.StringValue(options.ContentLanguage)
	req.Headers[constants.HeaderAcceptLanguage] = watson.StringValue(options.AcceptLanguage)
	req.Body = options

	var result tone.UtteranceAnalyses

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("analyzing chat tone: %w", err)
	}

	return &result, resp, nil
}

var _ tone.Client = (*ToneAnalyzerV3)(nil)
