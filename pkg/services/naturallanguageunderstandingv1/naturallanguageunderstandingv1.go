// Package naturallanguageunderstandingv1 defines the Natural Language
// Understanding V1 service: text analysis features and custom models.
package naturallanguageunderstandingv1

import (
	"context"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.NaturalLanguageUnderstandingServiceName
	DefaultServiceURL  = constants.NaturalLanguageUnderstandingURL
)

// Client is the Natural Language Understanding V1 API.
type Client interface {
	Analyze(ctx context.Context, options *AnalyzeOptions) (*AnalysisResults, *watson.DetailedResponse, error)
	ListModels(ctx context.Context, options *ListModelsOptions) (*ListModelsResults, *watson.DetailedResponse, error)
	DeleteModel(ctx context.Context, options *DeleteModelOptions) (*DeleteModelResults, *watson.DetailedResponse, error)
	ServiceURL() string
}

// AnalyzeOptions are the parameters of Analyze. Exactly one of Text, HTML or
// URL is expected.
type AnalyzeOptions struct {
	Features            *Features `json:"features"                        validate:"required"`
	Text                *string   `json:"text,omitempty"`
	HTML                *string   `json:"html,omitempty"`
	URL                 *string   `json:"url,omitempty"`
	Clean               *bool     `json:"clean,omitempty"`
	Xpath               *string   `json:"xpath,omitempty"`
	FallbackToRaw       *bool     `json:"fallback_to_raw,omitempty"`
	ReturnAnalyzedText  *bool     `json:"return_analyzed_text,omitempty"`
	Language            *string   `json:"language,omitempty"`
	LimitTextCharacters *int64    `json:"limit_text_characters,omitempty"`

	Headers map[string]string `json:"-"`
}

// ListModelsOptions are the parameters of ListModels.
type ListModelsOptions struct {
	Headers map[string]string `json:"-"`
}

// DeleteModelOptions are the parameters of DeleteModel.
type DeleteModelOptions struct {
	ModelID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// Features selects the analyses to run. At least one must be set.
type Features struct {
	Concepts      *ConceptsOptions      `json:"concepts,omitempty"`
	Emotion       *EmotionOptions       `json:"emotion,omitempty"`
	Entities      *EntitiesOptions      `json:"entities,omitempty"`
	Keywords      *KeywordsOptions      `json:"keywords,omitempty"`
	Metadata      *MetadataOptions      `json:"metadata,omitempty"`
	Relations     *RelationsOptions     `json:"relations,omitempty"`
	SemanticRoles *SemanticRolesOptions `json:"semantic_roles,omitempty"`
	Sentiment     *SentimentOptions     `json:"sentiment,omitempty"`
	Categories    *CategoriesOptions    `json:"categories,omitempty"`
}

// ConceptsOptions tune concept detection.
type ConceptsOptions struct {
	Limit *int64 `json:"limit,omitempty"`
}

// EmotionOptions tune emotion analysis.
type EmotionOptions struct {
	Document *bool    `json:"document,omitempty"`
	Targets  []string `json:"targets,omitempty"`
}

// EntitiesOptions tune entity extraction.
type EntitiesOptions struct {
	Limit     *int64  `json:"limit,omitempty"`
	Mentions  *bool   `json:"mentions,omitempty"`
	Model     *string `json:"model,omitempty"`
	Sentiment *bool   `json:"sentiment,omitempty"`
	Emotion   *bool   `json:"emotion,omitempty"`
}

// KeywordsOptions tune keyword extraction.
type KeywordsOptions struct {
	Limit     *int64 `json:"limit,omitempty"`
	Sentiment *bool  `json:"sentiment,omitempty"`
	Emotion   *bool  `json:"emotion,omitempty"`
}

// MetadataOptions request document metadata. It has no parameters.
type MetadataOptions struct{}

// RelationsOptions tune relation extraction.
type RelationsOptions struct {
	Model *string `json:"model,omitempty"`
}

// SemanticRolesOptions tune semantic role extraction.
type SemanticRolesOptions struct {
	Limit    *int64 `json:"limit,omitempty"`
	Keywords *bool  `json:"keywords,omitempty"`
	Entities *bool  `json:"entities,omitempty"`
}

// SentimentOptions tune sentiment analysis.
type SentimentOptions struct {
	Document *bool    `json:"document,omitempty"`
	Targets  []string `json:"targets,omitempty"`
}

// CategoriesOptions tune categorization.
type CategoriesOptions struct {
	Limit *int64 `json:"limit,omitempty"`
}
