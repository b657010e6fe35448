// Package toneanalyzerv3 defines the Tone Analyzer V3 service.
package toneanalyzerv3

import (
	"context"
	"io"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.ToneAnalyzerServiceName
	DefaultServiceURL  = constants.ToneAnalyzerURL
)

// Client analyzes the emotional and language tones of text.
type Client interface {
	Tone(ctx context.Context, options *ToneOptions) (*ToneAnalysis, *watson.DetailedResponse, error)
	ToneChat(ctx context.Context, options *ToneChatOptions) (*UtteranceAnalyses, *watson.DetailedResponse, error)
	ServiceURL() string
}

// Tone identifiers accepted by ToneOptions.Tones.
const (
	ToneEmotion  = "emotion"
	ToneLanguage = "language"
	ToneSocial   = "social"
)

// ToneInput is the JSON form of the text to analyze.
type ToneInput struct {
	Text string `json:"text" validate:"required"`
}

// ToneOptions are the parameters of Tone. Supply ToneInput for a JSON body,
// or Body together with ContentType (text/plain or text/html).
type ToneOptions struct {
	ToneInput   *ToneInput `json:"-"`
	Body        io.Reader  `json:"-"`
	ContentType *string    `json:"-"`

	Sentences       *bool      `json:"-"`
	Tones           watson.CSV `json:"-"`
	ContentLanguage *string    `json:"-"`
	AcceptLanguage  *string    `json:"-"`

	Headers map[string]string `json:"-"`
}

// Utterance is one turn of a conversation passed to ToneChat.
type Utterance struct {
	Text string  `json:"text"           validate:"required"`
	User *string `json:"user,omitempty"`
}

// ToneChatOptions are the parameters of ToneChat.
type ToneChatOptions struct {
	Utterances      []Utterance `json:"utterances" validate:"required"`
	ContentLanguage *string     `json:"-"`
	AcceptLanguage  *string     `json:"-"`

	Headers map[string]string `json:"-"`
}

// ToneScore is the score of one tone.
type ToneScore struct {
	Score    float64 `json:"score"     yaml:"score"`
	ToneID   string  `json:"tone_id"   yaml:"tone_id"   validate:"required"`
	ToneName string  `json:"tone_name" yaml:"tone_name" validate:"required"`
}

// ToneCategory groups tone scores in the legacy response format.
type ToneCategory struct {
	Tones        []ToneScore `json:"tones"         yaml:"tones"`
	CategoryID   string      `json:"category_id"   yaml:"category_id"`
	CategoryName string      `json:"category_name" yaml:"category_name"`
}

// DocumentAnalysis holds document-level tones.
type DocumentAnalysis struct {
	Tones          []ToneScore    `json:"tones,omitempty"           yaml:"tones,omitempty"`
	ToneCategories []ToneCategory `json:"tone_categories,omitempty" yaml:"tone_categories,omitempty"`
	Warning        *string        `json:"warning,omitempty"         yaml:"warning,omitempty"`
}

// SentenceAnalysis holds the tones of one sentence.
type SentenceAnalysis struct {
	SentenceID     int64          `json:"sentence_id"               yaml:"sentence_id"`
	Text           string         `json:"text"                      yaml:"text"`
	Tones          []ToneScore    `json:"tones,omitempty"           yaml:"tones,omitempty"`
	ToneCategories []ToneCategory `json:"tone_categories,omitempty" yaml:"tone_categories,omitempty"`
	InputFrom      *int64         `json:"input_from,omitempty"      yaml:"input_from,omitempty"`
	InputTo        *int64         `json:"input_to,omitempty"        yaml:"input_to,omitempty"`
}

// ToneAnalysis is the response of Tone.
type ToneAnalysis struct {
	DocumentTone  *DocumentAnalysis  `json:"document_tone"            yaml:"document_tone"            validate:"required"`
	SentencesTone []SentenceAnalysis `json:"sentences_tone,omitempty" yaml:"sentences_tone,omitempty"`
}

// UtteranceAnalysis holds the tones of one utterance.
type UtteranceAnalysis struct {
	UtteranceID   int64       `json:"utterance_id"    yaml:"utterance_id"`
	UtteranceText string      `json:"utterance_text"  yaml:"utterance_text"`
	Tones         []ToneScore `json:"tones"           yaml:"tones"`
	Error         *string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// UtteranceAnalyses is the response of ToneChat.
type UtteranceAnalyses struct {
	UtterancesTone []UtteranceAnalysis `json:"utterances_tone"   yaml:"utterances_tone"   validate:"required"`
	Warning        *string             `json:"warning,omitempty" yaml:"warning,omitempty"`
}
