// Package watsonclient provides the constructors for the Watson service clients
package watsonclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fivetwenty-io/watson/internal/auth"
	"github.com/fivetwenty-io/watson/internal/client"
	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/services/assistantv1"
	"github.com/fivetwenty-io/watson/pkg/services/assistantv2"
	"github.com/fivetwenty-io/watson/pkg/services/discoveryv1"
	"github.com/fivetwenty-io/watson/pkg/services/languagetranslatorv3"
	"github.com/fivetwenty-io/watson/pkg/services/naturallanguageclassifierv1"
	"github.com/fivetwenty-io/watson/pkg/services/naturallanguageunderstandingv1"
	"github.com/fivetwenty-io/watson/pkg/services/personalityinsightsv3"
	"github.com/fivetwenty-io/watson/pkg/services/speechtotextv1"
	"github.com/fivetwenty-io/watson/pkg/services/texttospeechv1"
	"github.com/fivetwenty-io/watson/pkg/services/toneanalyzerv3"
	"github.com/fivetwenty-io/watson/pkg/services/visualrecognitionv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// build normalizes config and hands it to the internal constructor. The
// caller's config is never modified.
func build[T any](config *watson.Config, serviceName, serviceURL string, newClient func(*watson.Config) (T, error)) (T, error) {
	var zero T

	resolved, err := ResolveConfig(config, serviceName, serviceURL)
	if err != nil {
		return zero, err
	}

	svc, err := newClient(resolved)
	if err != nil {
		return zero, fmt.Errorf("failed to create %s client: %w", resolved.ServiceName, err)
	}

	return svc, nil
}

// ResolveConfig returns a copy of config with the service defaults applied
// and, when no credentials are configured, the VCAP_SERVICES credentials of
// the service merged in.
func ResolveConfig(config *watson.Config, serviceName, serviceURL string) (*watson.Config, error) {
	if config == nil {
		return nil, watson.ErrConfigRequired
	}

	resolved := config.Clone()

	if resolved.ServiceName == "" {
		resolved.ServiceName = serviceName
	}

	if !resolved.IgnoreVCAPServices && !hasCredentials(resolved) {
		creds, err := watson.LoadVCAPCredentials(resolved.ServiceName)
		if err != nil {
			return nil, fmt.Errorf("loading VCAP_SERVICES: %w", err)
		}

		applyVCAPCredentials(resolved, creds)
	}

	if resolved.URL == "" {
		resolved.URL = serviceURL
	}

	// Normalize service URL
	resolved.URL = strings.TrimSuffix(resolved.URL, "/")
	if !strings.HasPrefix(resolved.URL, "http://") && !strings.HasPrefix(resolved.URL, "https://") {
		resolved.URL = "https://" + resolved.URL
	}

	return resolved, nil
}

// hasCredentials checks if the config carries any credential.
func hasCredentials(config *watson.Config) bool {
	return config.APIKey != "" || config.IAMAPIKey != "" || config.IAMAccessToken != "" ||
		(config.Username != "" && config.Password != "")
}

// applyVCAPCredentials copies VCAP credentials into config. The VCAP url only
// fills an empty URL.
func applyVCAPCredentials(config *watson.Config, creds *watson.VCAPCredentials) {
	if creds == nil {
		return
	}

	switch {
	case creds.APIKey != "":
		config.IAMAPIKey = creds.APIKey
	case creds.IAMAPIKey != "":
		config.IAMAPIKey = creds.IAMAPIKey
	default:
		config.Username = creds.Username
		config.Password = creds.Password
	}

	if config.IAMURL == "" {
		config.IAMURL = creds.IAMURL
	}

	if config.URL == "" {
		config.URL = creds.URL
	}
}

// NewLanguageTranslatorV3 creates a Language Translator V3 client.
func NewLanguageTranslatorV3(config *watson.Config) (languagetranslatorv3.Client, error) {
	return build(config, languagetranslatorv3.DefaultServiceName, languagetranslatorv3.DefaultServiceURL,
		func(c *watson.Config) (languagetranslatorv3.Client, error) { return client.NewLanguageTranslatorV3(c) })
}

// NewToneAnalyzerV3 creates a Tone Analyzer V3 client.
func NewToneAnalyzerV3(config *watson.Config) (toneanalyzerv3.Client, error) {
	return build(config, toneanalyzerv3.DefaultServiceName, toneanalyzerv3.DefaultServiceURL,
		func(c *watson.Config) (toneanalyzerv3.Client, error) { return client.NewToneAnalyzerV3(c) })
}

// NewAssistantV1 creates an Assistant V1 client.
func NewAssistantV1(config *watson.Config) (assistantv1.Client, error) {
	return build(config, assistantv1.DefaultServiceName, assistantv1.DefaultServiceURL,
		func(c *watson.Config) (assistantv1.Client, error) { return client.NewAssistantV1(c) })
}

// NewAssistantV2 creates an Assistant V2 client.
func NewAssistantV2(config *watson.Config) (assistantv2.Client, error) {
	return build(config, assistantv2.DefaultServiceName, assistantv2.DefaultServiceURL,
		func(c *watson.Config) (assistantv2.Client, error) { return client.NewAssistantV2(c) })
}

// NewSpeechToTextV1 creates a Speech to Text V1 client.
func NewSpeechToTextV1(config *watson.Config) (speechtotextv1.Client, error) {
	return build(config, speechtotextv1.DefaultServiceName, speechtotextv1.DefaultServiceURL,
		func(c *watson.Config) (speechtotextv1.Client, error) { return client.NewSpeechToTextV1(c) })
}

// NewTextToSpeechV1 creates a Text to Speech V1 client.
func NewTextToSpeechV1(config *watson.Config) (texttospeechv1.Client, error) {
	return build(config, texttospeechv1.DefaultServiceName, texttospeechv1.DefaultServiceURL,
		func(c *watson.Config) (texttospeechv1.Client, error) { return client.NewTextToSpeechV1(c) })
}

// NewNaturalLanguageUnderstandingV1 creates a Natural Language Understanding V1 client.
func NewNaturalLanguageUnderstandingV1(config *watson.Config) (naturallanguageunderstandingv1.Client, error) {
	return build(config, naturallanguageunderstandingv1.DefaultServiceName, naturallanguageunderstandingv1.DefaultServiceURL,
		func(c *watson.Config) (naturallanguageunderstandingv1.Client, error) {
			return client.NewNaturalLanguageUnderstandingV1(c)
		})
}

// NewNaturalLanguageClassifierV1 creates a Natural Language Classifier V1 client.
func NewNaturalLanguageClassifierV1(config *watson.Config) (naturallanguageclassifierv1.Client, error) {
	return build(config, naturallanguageclassifierv1.DefaultServiceName, naturallanguageclassifierv1.DefaultServiceURL,
		func(c *watson.Config) (naturallanguageclassifierv1.Client, error) {
			return client.NewNaturalLanguageClassifierV1(c)
		})
}

// NewPersonalityInsightsV3 creates a Personality Insights V3 client.
func NewPersonalityInsightsV3(config *watson.Config) (personalityinsightsv3.Client, error) {
	return build(config, personalityinsightsv3.DefaultServiceName, personalityinsightsv3.DefaultServiceURL,
		func(c *watson.Config) (personalityinsightsv3.Client, error) { return client.NewPersonalityInsightsV3(c) })
}

// NewVisualRecognitionV3 creates a Visual Recognition V3 client.
func NewVisualRecognitionV3(config *watson.Config) (visualrecognitionv3.Client, error) {
	return build(config, visualrecognitionv3.DefaultServiceName, visualrecognitionv3.DefaultServiceURL,
		func(c *watson.Config) (visualrecognitionv3.Client, error) { return client.NewVisualRecognitionV3(c) })
}

// NewDiscoveryV1 creates a Discovery V1 client.
func NewDiscoveryV1(config *watson.Config) (discoveryv1.Client, error) {
	return build(config, discoveryv1.DefaultServiceName, discoveryv1.DefaultServiceURL,
		func(c *watson.Config) (discoveryv1.Client, error) { return client.NewDiscoveryV1(c) })
}

// TokenInfo describes an IAM access token.
type TokenInfo struct {
	AccessToken string    `json:"access_token" yaml:"access_token"`
	TokenType   string    `json:"token_type"   yaml:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"   yaml:"expires_at"`
	// RefreshAt is when clients start requesting a replacement.
	RefreshAt time.Time `json:"refresh_at" yaml:"refresh_at"`
}

// RequestIAMToken exchanges the IAM API key in config for an access token.
// Username "apikey" with a password is accepted as an API key as well.
func RequestIAMToken(ctx context.Context, config *watson.Config) (*TokenInfo, error) {
	if config == nil {
		return nil, watson.ErrConfigRequired
	}

	apiKey := config.IAMAPIKey
	if apiKey == "" && config.Username == constants.IAMAPIKeyUsername {
		apiKey = config.Password
	}

	if apiKey == "" {
		return nil, fmt.Errorf("%w: IAM API key", watson.ErrMissingCredentials)
	}

	manager := auth.NewIAMTokenManager(&auth.IAMConfig{
		APIKey:       apiKey,
		URL:          config.IAMURL,
		ClientID:     config.IAMClientID,
		ClientSecret: config.IAMClientSecret,
	})

	_, err := manager.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting IAM token: %w", err)
	}

	token := manager.Token()

	return &TokenInfo{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		RefreshAt:   token.RefreshAt(),
	}, nil
}
