package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	tts "github.com/fivetwenty-io/watson/pkg/services/texttospeechv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// TextToSpeechV1 implements tts.Client.
type TextToSpeechV1 struct {
	*service
}

// NewTextToSpeechV1 creates a Text to Speech V1 client.
func NewTextToSpeechV1(config *watson.Config) (*TextToSpeechV1, error) {
	svc, err := newService(config, serviceInfo{name: "text_to_speech", version: "V1"})
	if err != nil {
		return nil, err
	}

	return &TextToSpeechV1{service: svc}, nil
}

func voiceModelPath(customizationID string, segments ...string) string {
	return internalhttp.PathJoin(append([]string{"v1", "customizations", customizationID}, segments...)...)
}

// ListVoices lists the available voices.
func (c *TextToSpeechV1) ListVoices(ctx context.Context, options *tts.ListVoicesOptions) (*tts.Voices, *watson.DetailedResponse, error) {
	if options == nil {
		options = &tts.ListVoicesOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/voices", "list_voices", options.Headers)

	var result tts.Voices

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing voices: %w", err)
	}

	return &result, resp, nil
}

// GetVoice gets one voice, optionally with a custom model's details.
func (c *TextToSpeechV1) GetVoice(ctx context.Context, options *tts.GetVoiceOptions) (*tts.Voice, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting voice: %w", err)
	}

	req := c.newRequest(http.MethodGet, internalhttp.PathJoin("v1", "voices", options.Voice), "get_voice", options.Headers)
	req.Params = struct {
		CustomizationID *string `schema:"customization_id,omitempty"`
	}{options.CustomizationID}

	var result tts.Voice

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting voice %s: %w", options.Voice, err)
	}

	return &result, resp, nil
}

// Synthesize renders text as audio.
func (c *TextToSpeechV1) Synthesize(ctx context.Context, options *tts.SynthesizeOptions) ([]byte, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("synthesizing audio: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/synthesize", "synthesize", options.Headers)
	req.Params = struct {
		Voice           *string `schema:"voice,omitempty"`
		CustomizationID *string `schema:"customization_id,omitempty"`
	}{options.Voice, options.CustomizationID}
	req.Body = options
	req.Accept = tts.AudioOggCodecsOpus

	if options.Accept != nil {
		req.Accept = *options.Accept
	}

	audio, resp, err := c.invokeBinary(ctx, req)
	if err != nil {
		return nil, resp, fmt.Errorf("synthesizing audio: %w", err)
	}

	return audio, resp, nil
}

// GetPronunciation returns the phonetic pronunciation of a word.
func (c *TextToSpeechV1) GetPronunciation(ctx context.Context, options *tts.GetPronunciationOptions) (*tts.Pronunciation, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting pronunciation: %w", err)
	}

	req := c.newRequest(http.MethodGet, "/v1/pronunciation", "get_pronunciation", options.Headers)
	req.Params = struct {
		Text            string  `schema:"text"`
		Voice           *string `schema:"voice,omitempty"`
		Format          *string `schema:"format,omitempty"`
		CustomizationID *string `schema:"customization_id,omitempty"`
	}{options.Text, options.Voice, options.Format, options.CustomizationID}

	var result tts.Pronunciation

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting pronunciation: %w", err)
	}

	return &result, resp, nil
}

// CreateVoiceModel creates an empty custom voice model.
func (c *TextToSpeechV1) CreateVoiceModel(ctx context.Context, options *tts.CreateVoiceModelOptions) (*tts.VoiceModel, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating voice model: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/customizations", "create_voice_model", options.Headers)
	req.Body = options

	var result tts.VoiceModel

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating voice model: %w", err)
	}

	return &result, resp, nil
}

// ListVoiceModels lists the caller's custom voice models.
func (c *TextToSpeechV1) ListVoiceModels(ctx context.Context, options *tts.ListVoiceModelsOptions) (*tts.VoiceModels, *watson.DetailedResponse, error) {
	if options == nil {
		options = &tts.ListVoiceModelsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/customizations", "list_voice_models", options.Headers)
	req.Params = struct {
		Language *string `schema:"language,omitempty"`
	}{options.Language}

	var result tts.VoiceModels

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing voice models: %w", err)
	}

	return &result, resp, nil
}

// GetVoiceModel gets a custom voice model and its words.
func (c *TextToSpeechV1) GetVoiceModel(ctx context.Context, options *tts.GetVoiceModelOptions) (*tts.VoiceModel, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting voice model: %w", err)
	}

	req := c.newRequest(http.MethodGet, voiceModelPath(options.CustomizationID), "get_voice_model", options.Headers)

	var result tts.VoiceModel

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting voice model %s: %w", options.CustomizationID, err)
	}

	return &result, resp, nil
}

// UpdateVoiceModel renames a custom voice model or adds words to it.
func (c *TextToSpeechV1) UpdateVoiceModel(ctx context.Context, options *tts.UpdateVoiceModelOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("updating voice model: %w", err)
	}

	req := c.newRequest(http.MethodPost, voiceModelPath(options.CustomizationID), "update_voice_model", options.Headers)
	req.Body = options

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("updating voice model %s: %w", options.CustomizationID, err)
	}

	return resp, nil
}

// DeleteVoiceModel deletes a custom voice model.
func (c *TextToSpeechV1) DeleteVoiceModel(ctx context.Context, options *tts.DeleteVoiceModelOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting voice model: %w", err)
	}

	req := c.newRequest(http.MethodDelete, voiceModelPath(options.CustomizationID), "delete_voice_model", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting voice model %s: %w", options.CustomizationID, err)
	}

	return resp, nil
}

// AddWords adds or replaces several custom words.
func (c *TextToSpeechV1) AddWords(ctx context.Context, options *tts.AddWordsOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("adding words: %w", err)
	}

	req := c.newRequest(http.MethodPost, voiceModelPath(options.CustomizationID, "words"), "add_words", options.Headers)
	req.Body = options

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("adding words: %w", err)
	}

	return resp, nil
}

// ListWords lists the custom words of a voice model.
func (c *TextToSpeechV1) ListWords(ctx context.Context, options *tts.ListWordsOptions) (*tts.Words, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("listing words: %w", err)
	}

	req := c.newRequest(http.MethodGet, voiceModelPath(options.CustomizationID, "words"), "list_words", options.Headers)

	var result tts.Words

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing words: %w", err)
	}

	return &result, resp, nil
}

// AddWord adds or replaces one custom word.
func (c *TextToSpeechV1) AddWord(ctx context.Context, options *tts.AddWordOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("adding word: %w", err)
	}

	req := c.newRequest(http.MethodPut, voiceModelPath(options.CustomizationID, "words", options.Word), "add_word", options.Headers)
	req.Body = options

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("adding word %s: %w", options.Word, err)
	}

	return resp, nil
}

// GetWord gets the translation of one custom word.
func (c *TextToSpeechV1) GetWord(ctx context.Context, options *tts.GetWordOptions) (*tts.Translation, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting word: %w", err)
	}

	req := c.newRequest(http.MethodGet, voiceModelPath(options.CustomizationID, "words", options.Word), "get_word", options.Headers)

	var result tts.Translation

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting word %s: %w", options.Word, err)
	}

	return &result, resp, nil
}

// DeleteWord removes one custom word.
func (c *TextToSpeechV1) DeleteWord(ctx context.Context, options *tts.DeleteWordOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting word: %w", err)
	}

	req := c.newRequest(http.MethodDelete, voiceModelPath(options.CustomizationID, "words", options.Word), "delete_word", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting word %s: %w", options.Word, err)
	}

	return resp, nil
}

// DeleteUserData deletes all data labeled with a customer ID.
func (c *TextToSpeechV1) DeleteUserData(ctx context.Context, options *tts.DeleteUserDataOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting user data: %w", err)
	}

	req := c.newRequest(http.MethodDelete, "/v1/user_data", "delete_user_data", options.Headers)
	req.Params = customerIDParams{CustomerID: options.CustomerID}

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting user data: %w", err)
	}

	return resp, nil
}

var _ tts.Client = (*TextToSpeechV1)(nil)
