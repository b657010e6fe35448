package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	nlu "github.com/fivetwenty-io/watson/pkg/services/naturallanguageunderstandingv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// NaturalLanguageUnderstandingV1 implements nlu.Client.
type NaturalLanguageUnderstandingV1 struct {
	*service
}

// NewNaturalLanguageUnderstandingV1 creates a Natural Language Understanding V1 client.
func NewNaturalLanguageUnderstandingV1(config *watson.Config) (*NaturalLanguageUnderstandingV1, error) {
	svc, err := newService(config, serviceInfo{name: "natural-language-understanding", version: "V1", versioned: true})
	if err != nil {
		return nil, err
	}

	return &NaturalLanguageUnderstandingV1{service: svc}, nil
}

// Analyze runs the requested features over text, HTML or a public URL.
func (c *NaturalLanguageUnderstandingV1) Analyze(ctx context.Context, options *nlu.AnalyzeOptions) (*nlu.AnalysisResults, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("analyzing content: %w", err)
	}

	if options.Text == nil && options.HTML == nil && options.URL == nil {
		return nil, nil, fmt.Errorf("analyzing content: %w: text, html or url", watson.ErrMissingParameter)
	}

	req := c.newRequest(http.MethodPost, "/v1/analyze", "analyze", options.Headers)
	req.Body = options

	var result nlu.AnalysisResults

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("analyzing content: %w", err)
	}

	return &result, resp, nil
}

// ListModels lists the custom models deployed to the instance.
func (c *NaturalLanguageUnderstandingV1) ListModels(ctx context.Context, options *nlu.ListModelsOptions) (*nlu.ListModelsResults, *watson.DetailedResponse, error) {
	if options == nil {
		options = &nlu.ListModelsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/models", "list_models", options.Headers)

	var result nlu.ListModelsResults

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing models: %w", err)
	}

	return &result, resp, nil
}

// DeleteModel deletes a custom model.
func (c *NaturalLanguageUnderstandingV1) DeleteModel(ctx context.Context, options *nlu.DeleteModelOptions) (*nlu.DeleteModelResults, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("deleting model: %w", err)
	}

	req := c.newRequest(http.MethodDelete, internalhttp.PathJoin("v1", "models", options.ModelID), "delete_model", options.Headers)

	var result nlu.DeleteModelResults

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("deleting model %s: %w", options.ModelID, err)
	}

	return &result, resp, nil
}

var _ nlu.Client = (*NaturalLanguageUnderstandingV1)(nil)
