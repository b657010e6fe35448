package speechtotextv1

import "io"

// ListModelsOptions are the parameters of ListModels.
type ListModelsOptions struct {
	Headers map[string]string `json:"-"`
}

// GetModelOptions are the parameters of GetModel.
type GetModelOptions struct {
	ModelID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// RecognizeParameters tune a recognition request. They are shared by
// Recognize, RecognizeUsingWebsocket and CreateJob.
type RecognizeParameters struct {
	Model                     *string
	LanguageCustomizationID   *string
	AcousticCustomizationID   *string
	BaseModelVersion          *string
	CustomizationWeight       *float64
	InactivityTimeout         *int64
	Keywords                  []string
	KeywordsThreshold         *float64
	MaxAlternatives           *int64
	WordAlternativesThreshold *float64
	WordConfidence            *bool
	Timestamps                *bool
	ProfanityFilter           *bool
	SmartFormatting           *bool
	SpeakerLabels             *bool
}

// RecognizeOptions are the parameters of Recognize.
type RecognizeOptions struct {
	Audio       io.Reader `json:"audio" validate:"required"`
	ContentType *string   `json:"-"`

	RecognizeParameters

	Headers map[string]string `json:"-"`
}

// RecognizeUsingWebsocketOptions are the parameters of RecognizeUsingWebsocket.
type RecognizeUsingWebsocketOptions struct {
	Audio       io.Reader         `json:"audio"    validate:"required"`
	ContentType *string           `json:"-"`
	Callback    RecognizeCallback `json:"callback" validate:"required"`

	// InterimResults requests non-final hypotheses while audio is streamed.
	InterimResults *bool `json:"-"`

	RecognizeParameters

	Headers map[string]string `json:"-"`
}

// Job callback events.
const (
	EventRecognitionsStarted              = "recognitions.started"
	EventRecognitionsCompleted            = "recognitions.completed"
	EventRecognitionsCompletedWithResults = "recognitions.completed_with_results"
	EventRecognitionsFailed               = "recognitions.failed"
)

// CreateJobOptions are the parameters of CreateJob.
type CreateJobOptions struct {
	Audio       io.Reader `json:"audio" validate:"required"`
	ContentType *string   `json:"-"`

	CallbackURL *string `json:"-"`
	Events      *string `json:"-"`
	UserToken   *string `json:"-"`
	ResultsTTL  *int64  `json:"-"`

	RecognizeParameters

	Headers map[string]string `json:"-"`
}

// CheckJobsOptions are the parameters of CheckJobs.
type CheckJobsOptions struct {
	Headers map[string]string `json:"-"`
}

// CheckJobOptions are the parameters of CheckJob.
type CheckJobOptions struct {
	ID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteJobOptions are the parameters of DeleteJob.
type DeleteJobOptions struct {
	ID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// RegisterCallbackOptions are the parameters of RegisterCallback.
type RegisterCallbackOptions struct {
	CallbackURL string  `json:"-" validate:"required"`
	UserSecret  *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// UnregisterCallbackOptions are the parameters of UnregisterCallback.
type UnregisterCallbackOptions struct {
	CallbackURL string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// CreateLanguageModelOptions are the parameters of CreateLanguageModel.
type CreateLanguageModelOptions struct {
	Name          string  `json:"name"                  validate:"required"`
	BaseModelName string  `json:"base_model_name"       validate:"required"`
	Dialect       *string `json:"dialect,omitempty"`
	Description   *string `json:"description,omitempty"`

	Headers map[string]string `json:"-"`
}

// ListLanguageModelsOptions are the parameters of ListLanguageModels.
type ListLanguageModelsOptions struct {
	Language *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetLanguageModelOptions are the parameters of GetLanguageModel.
type GetLanguageModelOptions struct {
	CustomizationID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteLanguageModelOptions are the parameters of DeleteLanguageModel.
type DeleteLanguageModelOptions struct {
	CustomizationID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// Word types accepted by TrainLanguageModelOptions and ListWordsOptions.
const (
	WordTypeAll      = "all"
	WordTypeUser     = "user"
	WordTypeCorpora  = "corpora"
	WordTypeGrammars = "grammars"
)

// TrainLanguageModelOptions are the parameters of TrainLanguageModel.
type TrainLanguageModelOptions struct {
	CustomizationID     string   `json:"-" validate:"required"`
	WordTypeToAdd       *string  `json:"-"`
	CustomizationWeight *float64 `json:"-"`

	Headers map[string]string `json:"-"`
}

// ResetLanguageModelOptions are the parameters of ResetLanguageModel.
type ResetLanguageModelOptions struct {
	CustomizationID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// AddCorpusOptions are the parameters of AddCorpus.
type AddCorpusOptions struct {
	CustomizationID string    `json:"-"           validate:"required"`
	CorpusName      string    `json:"-"           validate:"required"`
	CorpusFile      io.Reader `json:"corpus_file" validate:"required"`
	AllowOverwrite  *bool     `json:"-"`

	Headers map[string]string `json:"-"`
}

// ListCorporaOptions are the parameters of ListCorpora.
type ListCorporaOptions struct {
	CustomizationID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListWordsOptions are the parameters of ListWords.
type ListWordsOptions struct {
	CustomizationID string  `json:"-" validate:"required"`
	WordType        *string `json:"-"`
	Sort            *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// CustomWord is a word added to a custom language model.
type CustomWord struct {
	Word       string   `json:"word"                  validate:"required"`
	SoundsLike []string `json:"sounds_like,omitempty"`
	DisplayAs  *string  `json:"display_as,omitempty"`
}

// AddWordsOptions are the parameters of AddWords.
type AddWordsOptions struct {
	CustomizationID string       `json:"-"     validate:"required"`
	Words           []CustomWord `json:"words" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteWordOptions are the parameters of DeleteWord.
type DeleteWordOptions struct {
	CustomizationID string `json:"-" validate:"required"`
	WordName        string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteUserDataOptions are the parameters of DeleteUserData.
type DeleteUserDataOptions struct {
	CustomerID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}
