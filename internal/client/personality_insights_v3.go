package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/watson/internal/constants"
	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	pi "github.com/fivetwenty-io/watson/pkg/services/personalityinsightsv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// PersonalityInsightsV3 implements pi.Client.
type PersonalityInsightsV3 struct {
	*service
}

// NewPersonalityInsightsV3 creates a Personality Insights V3 client.
func NewPersonalityInsightsV3(config *watson.Config) (*PersonalityInsightsV3, error) {
	svc, err := newService(config, serviceInfo{name: "personality_insights", version: "V3", versioned: true})
	if err != nil {
		return nil, err
	}

	return &PersonalityInsightsV3{service: svc}, nil
}

// Profile builds a personality profile from the author's text.
func (c *PersonalityInsightsV3) Profile(ctx context.Context, options *pi.ProfileOptions) (*pi.Profile, *watson.DetailedResponse, error) {
	req, err := c.profileRequest(options, "profile")
	if err != nil {
		return nil, nil, fmt.Errorf("getting profile: %w", err)
	}

	req.Accept = constants.ContentTypeJSON

	var result pi.Profile

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting profile: %w", err)
	}

	return &result, resp, nil
}

// ProfileAsCSV builds a personality profile and returns it as CSV.
func (c *PersonalityInsightsV3) ProfileAsCSV(ctx context.Context, options *pi.ProfileOptions) ([]byte, *watson.DetailedResponse, error) {
	req, err := c.profileRequest(options, "profile_as_csv")
	if err != nil {
		return nil, nil, fmt.Errorf("getting profile as csv: %w", err)
	}

	req.Accept = constants.ContentTypeCSV

	csv, resp, err := c.invokeBinary(ctx, req)
	if err != nil {
		return nil, resp, fmt.Errorf("getting profile as csv: %w", err)
	}

	return csv, resp, nil
}

func (c *PersonalityInsightsV3) profileRequest(options *pi.ProfileOptions, operation string) (*internalhttp.Request, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, err
	}

	if options.Content == nil && options.Body == nil {
		return nil, fmt.Errorf("%w: content or body", watson.ErrMissingParameter)
	}

	req := c.newRequest(http.MethodPost, "/v3/profile", operation, options.Headers)
	req.Headers[constants.HeaderContentLanguage] = watson.StringValue(options.ContentLanguage)
	req.Headers[constants.HeaderAcceptLanguage] = watson.StringValue(options.AcceptLanguage)
	req.Params = struct {
		RawScores              *bool `schema:"raw_scores,omitempty"`
		CSVHeaders             *bool `schema:"csv_headers,omitempty"`
		ConsumptionPreferences *bool `schema:"consumption_preferences,omitempty"`
	}{options.RawScores, options.CSVHeaders, options.ConsumptionPreferences}

	if options.Content != nil {
		req.Body = options.Content

		return req, nil
	}

	req.RawBody = options.Body
	req.ContentType = constants.ContentTypeTextPlain

	if options.ContentType != nil {
		req.ContentType = *options.ContentType
	}

	return req, nil
}

var _ pi.Client = (*PersonalityInsightsV3)(nil)
