// Package texttospeechv1 defines the Text to Speech V1 service.
package texttospeechv1

import (
	"context"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.TextToSpeechServiceName
	DefaultServiceURL  = constants.TextToSpeechURL
)

// Client is the Text to Speech V1 API.
type Client interface {
	ListVoices(ctx context.Context, options *ListVoicesOptions) (*Voices, *watson.DetailedResponse, error)
	GetVoice(ctx context.Context, options *GetVoiceOptions) (*Voice, *watson.DetailedResponse, error)
	// Synthesize returns the audio bytes in the format requested by Accept.
	Synthesize(ctx context.Context, options *SynthesizeOptions) ([]byte, *watson.DetailedResponse, error)
	GetPronunciation(ctx context.Context, options *GetPronunciationOptions) (*Pronunciation, *watson.DetailedResponse, error)

	CreateVoiceModel(ctx context.Context, options *CreateVoiceModelOptions) (*VoiceModel, *watson.DetailedResponse, error)
	ListVoiceModels(ctx context.Context, options *ListVoiceModelsOptions) (*VoiceModels, *watson.DetailedResponse, error)
	GetVoiceModel(ctx context.Context, options *GetVoiceModelOptions) (*VoiceModel, *watson.DetailedResponse, error)
	UpdateVoiceModel(ctx context.Context, options *UpdateVoiceModelOptions) (*watson.DetailedResponse, error)
	DeleteVoiceModel(ctx context.Context, options *DeleteVoiceModelOptions) (*watson.DetailedResponse, error)

	AddWords(ctx context.Context, options *AddWordsOptions) (*watson.DetailedResponse, error)
	ListWords(ctx context.Context, options *ListWordsOptions) (*Words, *watson.DetailedResponse, error)
	AddWord(ctx context.Context, options *AddWordOptions) (*watson.DetailedResponse, error)
	GetWord(ctx context.Context, options *GetWordOptions) (*Translation, *watson.DetailedResponse, error)
	DeleteWord(ctx context.Context, options *DeleteWordOptions) (*watson.DetailedResponse, error)

	DeleteUserData(ctx context.Context, options *DeleteUserDataOptions) (*watson.DetailedResponse, error)

	ServiceURL() string
}

// Audio formats accepted by Synthesize.
const (
	AudioBasic         = "audio/basic"
	AudioFLAC          = "audio/flac"
	AudioL16           = "audio/l16"
	AudioMP3           = "audio/mp3"
	AudioMPEG          = "audio/mpeg"
	AudioMulaw         = "audio/mulaw"
	AudioOgg           = "audio/ogg"
	AudioOggCodecsOpus = "audio/ogg;codecs=opus"
	AudioWAV           = "audio/wav"
	AudioWebM          = "audio/webm"
)

// Phoneme formats.
const (
	FormatIBM = "ibm"
	FormatIPA = "ipa"
)

// ListVoicesOptions are the parameters of ListVoices.
type ListVoicesOptions struct {
	Headers map[string]string `json:"-"`
}

// GetVoiceOptions are the parameters of GetVoice.
type GetVoiceOptions struct {
	Voice           string  `json:"-" validate:"required"`
	CustomizationID *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// SynthesizeOptions are the parameters of Synthesize. Accept defaults to
// audio/ogg;codecs=opus.
type SynthesizeOptions struct {
	Text            string  `json:"text" validate:"required"`
	Accept          *string `json:"-"`
	Voice           *string `json:"-"`
	CustomizationID *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetPronunciationOptions are the parameters of GetPronunciation.
type GetPronunciationOptions struct {
	Text            string  `json:"-" validate:"required"`
	Voice           *string `json:"-"`
	Format          *string `json:"-"`
	CustomizationID *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// CreateVoiceModelOptions are the parameters of CreateVoiceModel.
type CreateVoiceModelOptions struct {
	Name        string  `json:"name"                  validate:"required"`
	Language    *string `json:"language,omitempty"`
	Description *string `json:"description,omitempty"`

	Headers map[string]string `json:"-"`
}

// ListVoiceModelsOptions are the parameters of ListVoiceModels.
type ListVoiceModelsOptions struct {
	Language *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetVoiceModelOptions are the parameters of GetVoiceModel.
type GetVoiceModelOptions struct {
	CustomizationID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// UpdateVoiceModelOptions are the parameters of UpdateVoiceModel.
type UpdateVoiceModelOptions struct {
	CustomizationID string  `json:"-"                     validate:"required"`
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Words           []Word  `json:"words,omitempty"`

	Headers map[string]string `json:"-"`
}

// DeleteVoiceModelOptions are the parameters of DeleteVoiceModel.
type DeleteVoiceModelOptions struct {
	CustomizationID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// AddWordsOptions are the parameters of AddWords.
type AddWordsOptions struct {
	CustomizationID string `json:"-"     validate:"required"`
	Words           []Word `json:"words" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListWordsOptions are the parameters of ListWords.
type ListWordsOptions struct {
	CustomizationID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// AddWordOptions are the parameters of AddWord.
type AddWordOptions struct {
	CustomizationID string  `json:"-"                        validate:"required"`
	Word            string  `json:"-"                        validate:"required"`
	Translation     string  `json:"translation"              validate:"required"`
	PartOfSpeech    *string `json:"part_of_speech,omitempty"`

	Headers map[string]string `json:"-"`
}

// GetWordOptions are the parameters of GetWord.
type GetWordOptions struct {
	CustomizationID string `json:"-" validate:"required"`
	Word            string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteWordOptions are the parameters of DeleteWord.
type DeleteWordOptions struct {
	CustomizationID string `json:"-" validate:"required"`
	Word            string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteUserDataOptions are the parameters of DeleteUserData.
type DeleteUserDataOptions struct {
	CustomerID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}
