// Package personalityinsightsv3 defines the Personality Insights V3 service.
package personalityinsightsv3

import (
	"context"
	"io"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.PersonalityInsightsServiceName
	DefaultServiceURL  = constants.PersonalityInsightsURL
)

// Client is the Personality Insights V3 API.
type Client interface {
	Profile(ctx context.Context, options *ProfileOptions) (*Profile, *watson.DetailedResponse, error)
	// ProfileAsCSV returns the profile as CSV rows.
	ProfileAsCSV(ctx context.Context, options *ProfileOptions) ([]byte, *watson.DetailedResponse, error)
	ServiceURL() string
}

// ContentItem is one piece of authored text.
type ContentItem struct {
	Content     string  `json:"content"               validate:"required"`
	ID          *string `json:"id,omitempty"`
	Created     *int64  `json:"created,omitempty"`
	Updated     *int64  `json:"updated,omitempty"`
	ContentType *string `json:"contenttype,omitempty"`
	Language    *string `json:"language,omitempty"`
	ParentID    *string `json:"parentid,omitempty"`
	Reply       *bool   `json:"reply,omitempty"`
	Forward     *bool   `json:"forward,omitempty"`
}

// Content is the JSON input of a profile.
type Content struct {
	ContentItems []ContentItem `json:"contentItems" validate:"required"`
}

// ProfileOptions are the parameters of Profile and ProfileAsCSV. Either
// Content or Body must be set; Body is sent with ContentType, which defaults
// to text/plain.
type ProfileOptions struct {
	Content     *Content  `json:"content,omitempty"`
	Body        io.Reader `json:"-"`
	ContentType *string   `json:"-"`

	RawScores              *bool `json:"-"`
	CSVHeaders             *bool `json:"-"`
	ConsumptionPreferences *bool `json:"-"`

	ContentLanguage *string `json:"-"`
	AcceptLanguage  *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// Trait is a personality characteristic and its children.
type Trait struct {
	TraitID     string   `json:"trait_id"              yaml:"trait_id"              validate:"required"`
	Name        string   `json:"name"                  yaml:"name"`
	Category    string   `json:"category"              yaml:"category"`
	Percentile  float64  `json:"percentile"            yaml:"percentile"`
	RawScore    *float64 `json:"raw_score,omitempty"   yaml:"raw_score,omitempty"`
	Significant *bool    `json:"significant,omitempty" yaml:"significant,omitempty"`
	Children    []Trait  `json:"children,omitempty"    yaml:"children,omitempty"`
}

// Behavior is the share of content created in a time slot.
type Behavior struct {
	TraitID    string  `json:"trait_id"   yaml:"trait_id"`
	Name       string  `json:"name"       yaml:"name"`
	Category   string  `json:"category"   yaml:"category"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ConsumptionPreferences is one preference and its likelihood score.
type ConsumptionPreferences struct {
	ConsumptionPreferenceID string  `json:"consumption_preference_id" yaml:"consumption_preference_id"`
	Name                    string  `json:"name"                      yaml:"name"`
	Score                   float64 `json:"score"                     yaml:"score"`
}

// ConsumptionPreferencesCategory groups preferences.
type ConsumptionPreferencesCategory struct {
	ConsumptionPreferenceCategoryID string                   `json:"consumption_preference_category_id" yaml:"consumption_preference_category_id"`
	Name                            string                   `json:"name"                               yaml:"name"`
	ConsumptionPreferences          []ConsumptionPreferences `json:"consumption_preferences"            yaml:"consumption_preferences"`
}

// Warning is a non-fatal problem with the input.
type Warning struct {
	WarningID string `json:"warning_id" yaml:"warning_id"`
	Message   string `json:"message"    yaml:"message"`
}

// Profile is the response of Profile.
type Profile struct {
	ProcessedLanguage      string                           `json:"processed_language"                yaml:"processed_language"      validate:"required"`
	WordCount              int64                            `json:"word_count"                        yaml:"word_count"`
	WordCountMessage       *string                          `json:"word_count_message,omitempty"      yaml:"word_count_message,omitempty"`
	Personality            []Trait                          `json:"personality"                       yaml:"personality"             validate:"required"`
	Needs                  []Trait                          `json:"needs"                             yaml:"needs"`
	Values                 []Trait                          `json:"values"                            yaml:"values"`
	Behavior               []Behavior                       `json:"behavior,omitempty"                yaml:"behavior,omitempty"`
	ConsumptionPreferences []ConsumptionPreferencesCategory `json:"consumption_preferences,omitempty" yaml:"consumption_preferences,omitempty"`
	Warnings               []Warning                        `json:"warnings"                          yaml:"warnings"`
}
