package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/watson/internal/constants"
	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	stt "github.com/fivetwenty-io/watson/pkg/services/speechtotextv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// SpeechToTextV1 implements stt.Client.
type SpeechToTextV1 struct {
	*service
}

// NewSpeechToTextV1 creates a Speech to Text V1 client.
func NewSpeechToTextV1(config *watson.Config) (*SpeechToTextV1, error) {
	svc, err := newService(config, serviceInfo{name: "speech_to_text", version: "V1"})
	if err != nil {
		return nil, err
	}

	return &SpeechToTextV1{service: svc}, nil
}

// recognizeParams carries the tuning parameters of a recognition. Fields
// with a json name travel in the websocket start message, the others in the
// handshake query. HTTP recognitions send everything as query parameters.
type recognizeParams struct {
	Model                     *string    `schema:"model,omitempty"                       json:"-"`
	LanguageCustomizationID   *string    `schema:"language_customization_id,omitempty"   json:"-"`
	AcousticCustomizationID   *string    `schema:"acoustic_customization_id,omitempty"   json:"-"`
	BaseModelVersion          *string    `schema:"base_model_version,omitempty"          json:"-"`
	CustomizationWeight       *float64   `schema:"customization_weight,omitempty"        json:"customization_weight,omitempty"`
	InactivityTimeout         *int64     `schema:"inactivity_timeout,omitempty"          json:"inactivity_timeout,omitempty"`
	Keywords                  watson.CSV `schema:"keywords,omitempty"                    json:"keywords,omitempty"`
	KeywordsThreshold         *float64   `schema:"keywords_threshold,omitempty"          json:"keywords_threshold,omitempty"`
	MaxAlternatives           *int64     `schema:"max_alternatives,omitempty"            json:"max_alternatives,omitempty"`
	WordAlternativesThreshold *float64   `schema:"word_alternatives_threshold,omitempty" json:"word_alternatives_threshold,omitempty"`
	WordConfidence            *bool      `schema:"word_confidence,omitempty"             json:"word_confidence,omitempty"`
	Timestamps                *bool      `schema:"timestamps,omitempty"                  json:"timestamps,omitempty"`
	ProfanityFilter           *bool      `schema:"profanity_filter,omitempty"            json:"profanity_filter,omitempty"`
	SmartFormatting           *bool      `schema:"smart_formatting,omitempty"            json:"smart_formatting,omitempty"`
	SpeakerLabels             *bool      `schema:"speaker_labels,omitempty"              json:"speaker_labels,omitempty"`
}

func newRecognizeParams(params stt.RecognizeParameters) recognizeParams {
	return recognizeParams{
		Model:                     params.Model,
		LanguageCustomizationID:   params.LanguageCustomizationID,
		AcousticCustomizationID:   params.AcousticCustomizationID,
		BaseModelVersion:          params.BaseModelVersion,
		CustomizationWeight:       params.CustomizationWeight,
		InactivityTimeout:         params.InactivityTimeout,
		Keywords:                  watson.CSV(params.Keywords),
		KeywordsThreshold:         params.KeywordsThreshold,
		MaxAlternatives:           params.MaxAlternatives,
		WordAlternativesThreshold: params.WordAlternativesThreshold,
		WordConfidence:            params.WordConfidence,
		Timestamps:                params.Timestamps,
		ProfanityFilter:           params.ProfanityFilter,
		SmartFormatting:           params.SmartFormatting,
		SpeakerLabels:             params.SpeakerLabels,
	}
}

func audioContentType(contentType *string) string {
	if contentType == nil || *contentType == "" {
		return constants.ContentTypeOctetStream
	}

	return *contentType
}

func customizationPath(customizationID string, segments ...string) string {
	return internalhttp.PathJoin(append([]string{"v1", "customizations", customizationID}, segments...)...)
}

// ListModels lists the available recognition models.
func (c *SpeechToTextV1) ListModels(ctx context.Context, options *stt.ListModelsOptions) (*stt.SpeechModels, *watson.DetailedResponse, error) {
	if options == nil {
		options = &stt.ListModelsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/models", "list_models", options.Headers)

	var result stt.SpeechModels

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing speech models: %w", err)
	}

	return &result, resp, nil
}

// GetModel gets one recognition model.
func (c *SpeechToTextV1) GetModel(ctx context.Context, options *stt.GetModelOptions) (*stt.SpeechModel, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting speech model: %w", err)
	}

	req := c.newRequest(http.MethodGet, internalhttp.PathJoin("v1", "models", options.ModelID), "get_model", options.Headers)

	var result stt.SpeechModel

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting speech model %s: %w", options.ModelID, err)
	}

	return &result, resp, nil
}

// Recognize sends audio in one request and returns the transcription.
func (c *SpeechToTextV1) Recognize(ctx context.Context, options *stt.RecognizeOptions) (*stt.SpeechRecognitionResults, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("recognizing audio: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/recognize", "recognize", options.Headers)
	req.Params = newRecognizeParams(options.RecognizeParameters)
	req.RawBody = options.Audio
	req.ContentType = audioContentType(options.ContentType)

	var result stt.SpeechRecognitionResults

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("recognizing audio: %w", err)
	}

	return &result, resp, nil
}

// CreateJob starts an asynchronous recognition.
func (c *SpeechToTextV1) CreateJob(ctx context.Context, options *stt.CreateJobOptions) (*stt.RecognitionJob, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating recognition job: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/recognitions", "create_job", options.Headers)
	req.Params = newRecognizeParams(options.RecognizeParameters)
	req.RawBody = options.Audio
	req.ContentType = audioContentType(options.ContentType)

	if options.CallbackURL != nil {
		req.Query.Set("callback_url", *options.CallbackURL)
	}

	if options.Events != nil {
		req.Query.Set("events", *options.Events)
	}

	if options.UserToken != nil {
		req.Query.Set("user_token", *options.UserToken)
	}

	if options.ResultsTTL != nil {
		req.Query.Set("results_ttl", strconv.FormatInt(*options.ResultsTTL, 10))
	}

	var result stt.RecognitionJob

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating recognition job: %w", err)
	}

	return &result, resp, nil
}

// CheckJobs lists the caller's recent recognition jobs.
func (c *SpeechToTextV1) CheckJobs(ctx context.Context, options *stt.CheckJobsOptions) (*stt.RecognitionJobs, *watson.DetailedResponse, error) {
	if options == nil {
		options = &stt.CheckJobsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/recognitions", "check_jobs", options.Headers)

	var result stt.RecognitionJobs

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("checking recognition jobs: %w", err)
	}

	return &result, resp, nil
}

// CheckJob gets the status and, once completed, the results of a job.
func (c *SpeechToTextV1) CheckJob(ctx context.Context, options *stt.CheckJobOptions) (*stt.RecognitionJob, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("checking recognition job: %w", err)
	}

	req := c.newRequest(http.MethodGet, internalhttp.PathJoin("v1", "recognitions", options.ID), "check_job", options.Headers)

	var result stt.RecognitionJob

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("checking recognition job %s: %w", options.ID, err)
	}

	return &result, resp, nil
}

// DeleteJob deletes a job and its results.
func (c *SpeechToTextV1) DeleteJob(ctx context.Context, options *stt.DeleteJobOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting recognition job: %w", err)
	}

	req := c.newRequest(http.MethodDelete, internalhttp.PathJoin("v1", "recognitions", options.ID), "delete_job", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting recognition job %s: %w", options.ID, err)
	}

	return resp, nil
}

// RegisterCallback allowlists a callback URL for job notifications.
func (c *SpeechToTextV1) RegisterCallback(ctx context.Context, options *stt.RegisterCallbackOptions) (*stt.RegisterStatus, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("registering callback: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/register_callback", "register_callback", options.Headers)
	req.Params = struct {
		CallbackURL string  `schema:"callback_url"`
		UserSecret  *string `schema:"user_secret,omitempty"`
	}{options.CallbackURL, options.UserSecret}

	var result stt.RegisterStatus

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("registering callback: %w", err)
	}

	return &result, resp, nil
}

// UnregisterCallback removes a callback URL from the allowlist.
func (c *SpeechToTextV1) UnregisterCallback(ctx context.Context, options *stt.UnregisterCallbackOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("unregistering callback: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/unregister_callback", "unregister_callback", options.Headers)
	req.Params = struct {
		CallbackURL string `schema:"callback_url"`
	}{options.CallbackURL}

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("unregistering callback: %w", err)
	}

	return resp, nil
}

// CreateLanguageModel creates a custom language model.
func (c *SpeechToTextV1) CreateLanguageModel(ctx context.Context, options *stt.CreateLanguageModelOptions) (*stt.LanguageModel, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating language model: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/customizations", "create_language_model", options.Headers)
	req.Body = options

	var result stt.LanguageModel

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating language model: %w", err)
	}

	return &result, resp, nil
}

// ListLanguageModels lists custom language models, optionally for one language.
func (c *SpeechToTextV1) ListLanguageModels(ctx context.Context, options *stt.ListLanguageModelsOptions) (*stt.LanguageModels, *watson.DetailedResponse, error) {
	if options == nil {
		options = &stt.ListLanguageModelsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/customizations", "list_language_models", options.Headers)
	req.Params = struct {
		Language *string `schema:"language,omitempty"`
	}{options.Language}

	var result stt.LanguageModels

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing language models: %w", err)
	}

	return &result, resp, nil
}

// GetLanguageModel gets a custom language model.
func (c *SpeechToTextV1) GetLanguageModel(ctx context.Context, options *stt.GetLanguageModelOptions) (*stt.LanguageModel, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting language model: %w", err)
	}

	req := c.newRequest(http.MethodGet, customizationPath(options.CustomizationID), "get_language_model", options.Headers)

	var result stt.LanguageModel

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting language model %s: %w", options.CustomizationID, err)
	}

	return &result, resp, nil
}

// DeleteLanguageModel deletes a custom language model.
func (c *SpeechToTextV1) DeleteLanguageModel(ctx context.Context, options *stt.DeleteLanguageModelOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting language model: %w", err)
	}

	req := c.newRequest(http.MethodDelete, customizationPath(options.CustomizationID), "delete_language_model", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting language model %s: %w", options.CustomizationID, err)
	}

	return resp, nil
}

// TrainLanguageModel starts training a custom language model.
func (c *SpeechToTextV1) TrainLanguageModel(ctx context.Context, options *stt.TrainLanguageModelOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("training language model: %w", err)
	}

	req := c.newRequest(http.MethodPost, customizationPath(options.CustomizationID, "train"), "train_language_model", options.Headers)
	req.Params = struct {
		WordTypeToAdd       *string  `schema:"word_type_to_add,omitempty"`
		CustomizationWeight *float64 `schema:"customization_weight,omitempty"`
	}{options.WordTypeToAdd, options.CustomizationWeight}

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("training language model %s: %w", options.CustomizationID, err)
	}

	return resp, nil
}

// ResetLanguageModel removes all corpora and words from a custom language model.
func (c *SpeechToTextV1) ResetLanguageModel(ctx context.Context, options *stt.ResetLanguageModelOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("resetting language model: %w", err)
	}

	req := c.newRequest(http.MethodPost, customizationPath(options.CustomizationID, "reset"), "reset_language_model", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("resetting language model %s: %w", options.CustomizationID, err)
	}

	return resp, nil
}

// AddCorpus uploads a text corpus to a custom language model.
func (c *SpeechToTextV1) AddCorpus(ctx context.Context, options *stt.AddCorpusOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("adding corpus: %w", err)
	}

	req := c.newRequest(http.MethodPost, customizationPath(options.CustomizationID, "corpora", options.CorpusName), "add_corpus", options.Headers)
	req.Params = struct {
		AllowOverwrite *bool `schema:"allow_overwrite,omitempty"`
	}{options.AllowOverwrite}
	req.Form = append(req.Form, filePart("corpus_file", options.CorpusFile, "", watson.String(constants.ContentTypeTextPlain)))

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("adding corpus %s: %w", options.CorpusName, err)
	}

	return resp, nil
}

// ListCorpora lists the corpora of a custom language model.
func (c *SpeechToTextV1) ListCorpora(ctx context.Context, options *stt.ListCorporaOptions) (*stt.Corpora, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("listing corpora: %w", err)
	}

	req := c.newRequest(http.MethodGet, customizationPath(options.CustomizationID, "corpora"), "list_corpora", options.Headers)

	var result stt.Corpora

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing corpora: %w", err)
	}

	return &result, resp, nil
}

// ListWords lists the words of a custom language model.
func (c *SpeechToTextV1) ListWords(ctx context.Context, options *stt.ListWordsOptions) (*stt.Words, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("listing words: %w", err)
	}

	req := c.newRequest(http.MethodGet, customizationPath(options.CustomizationID, "words"), "list_words", options.Headers)
	req.Params = struct {
		WordType *string `schema:"word_type,omitempty"`
		Sort     *string `schema:"sort,omitempty"`
	}{options.WordType, options.Sort}

	var result stt.Words

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing words: %w", err)
	}

	return &result, resp, nil
}

// AddWords adds custom words to a custom language model.
func (c *SpeechToTextV1) AddWords(ctx context.Context, options *stt.AddWordsOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("adding words: %w", err)
	}

	req := c.newRequest(http.MethodPost, customizationPath(options.CustomizationID, "words"), "add_words", options.Headers)
	req.Body = options

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("adding words: %w", err)
	}

	return resp, nil
}

// DeleteWord removes a custom word from a custom language model.
func (c *SpeechToTextV1) DeleteWord(ctx context.Context, options *stt.DeleteWordOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting word: %w", err)
	}

	req := c.newRequest(http.MethodDelete, customizationPath(options.CustomizationID, "words", options.WordName), "delete_word", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting word %s: %w", options.WordName, err)
	}

	return resp, nil
}

// DeleteUserData deletes all data labeled with a customer ID.
func (c *SpeechToTextV1) DeleteUserData(ctx context.Context, options *stt.DeleteUserDataOptions) (*watson.DetailedResponse, error) {
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

var _ stt.Client = (*SpeechToTextV1)(nil)
