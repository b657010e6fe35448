package speechtotextv1

import "time"

// SupportedFeatures lists optional features of a model.
type SupportedFeatures struct {
	CustomLanguageModel bool `json:"custom_language_model" yaml:"custom_language_model"`
	SpeakerLabels       bool `json:"speaker_labels"        yaml:"speaker_labels"`
}

// SpeechModel describes a recognition model.
type SpeechModel struct {
	Name              string             `json:"name"                         yaml:"name"              validate:"required"`
	Language          string             `json:"language"                     yaml:"language"          validate:"required"`
	Rate              int64              `json:"rate"                         yaml:"rate"`
	URL               string             `json:"url"                          yaml:"url"`
	SupportedFeatures *SupportedFeatures `json:"supported_features,omitempty" yaml:"supported_features,omitempty"`
	Description       string             `json:"description"                  yaml:"description"`
}

// SpeechModels is the response of ListModels.
type SpeechModels struct {
	Models []SpeechModel `json:"models" yaml:"models" validate:"required"`
}

// SpeechRecognitionAlternative is one transcript hypothesis. Timestamps and
// word confidences are [word, start, end] and [word, confidence] tuples.
type SpeechRecognitionAlternative struct {
	Transcript     string          `json:"transcript"                yaml:"transcript"                validate:"required"`
	Confidence     *float64        `json:"confidence,omitempty"      yaml:"confidence,omitempty"`
	Timestamps     [][]interface{} `json:"timestamps,omitempty"      yaml:"timestamps,omitempty"`
	WordConfidence [][]interface{} `json:"word_confidence,omitempty" yaml:"word_confidence,omitempty"`
}

// KeywordResult is one spotted keyword occurrence.
type KeywordResult struct {
	NormalizedText string  `json:"normalized_text" yaml:"normalized_text"`
	StartTime      float64 `json:"start_time"      yaml:"start_time"`
	EndTime        float64 `json:"end_time"        yaml:"end_time"`
	Confidence     float64 `json:"confidence"      yaml:"confidence"`
}

// WordAlternativeResult is one alternative word.
type WordAlternativeResult struct {
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Word       string  `json:"word"       yaml:"word"`
}

// WordAlternativeResults are the alternatives for one time span.
type WordAlternativeResults struct {
	StartTime    float64                 `json:"start_time"   yaml:"start_time"`
	EndTime      float64                 `json:"end_time"     yaml:"end_time"`
	Alternatives []WordAlternativeResult `json:"alternatives" yaml:"alternatives"`
}

// SpeechRecognitionResult is one result of a recognition.
type SpeechRecognitionResult struct {
	Final            bool                           `json:"final"                       yaml:"final"`
	Alternatives     []SpeechRecognitionAlternative `json:"alternatives"                yaml:"alternatives"                validate:"required"`
	KeywordsResult   map[string][]KeywordResult     `json:"keywords_result,omitempty"   yaml:"keywords_result,omitempty"`
	WordAlternatives []WordAlternativeResults       `json:"word_alternatives,omitempty" yaml:"word_alternatives,omitempty"`
}

// SpeakerLabelsResult assigns a time span to a speaker.
type SpeakerLabelsResult struct {
	From       float64 `json:"from"       yaml:"from"`
	To         float64 `json:"to"         yaml:"to"`
	Speaker    int64   `json:"speaker"    yaml:"speaker"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Final      bool    `json:"final"      yaml:"final"`
}

// SpeechRecognitionResults is the response of Recognize and the payload of
// websocket result messages.
type SpeechRecognitionResults struct {
	Results       []SpeechRecognitionResult `json:"results,omitempty"        yaml:"results,omitempty"`
	ResultIndex   *int64                    `json:"result_index,omitempty"   yaml:"result_index,omitempty"`
	SpeakerLabels []SpeakerLabelsResult     `json:"speaker_labels,omitempty" yaml:"speaker_labels,omitempty"`
	Warnings      []string                  `json:"warnings,omitempty"       yaml:"warnings,omitempty"`
}

// Job status values.
const (
	JobStatusWaiting    = "waiting"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// RecognitionJob is an asynchronous recognition job.
type RecognitionJob struct {
	ID        string                     `json:"id"                   yaml:"id"                   validate:"required"`
	Status    string                     `json:"status"               yaml:"status"               validate:"required"`
	Created   string                     `json:"created"              yaml:"created"`
	Updated   *string                    `json:"updated,omitempty"    yaml:"updated,omitempty"`
	URL       *string                    `json:"url,omitempty"        yaml:"url,omitempty"`
	UserToken *string                    `json:"user_token,omitempty" yaml:"user_token,omitempty"`
	Results   []SpeechRecognitionResults `json:"results,omitempty"    yaml:"results,omitempty"`
	Warnings  []string                   `json:"warnings,omitempty"   yaml:"warnings,omitempty"`
}

// RecognitionJobs is the response of CheckJobs.
type RecognitionJobs struct {
	Recognitions []RecognitionJob `json:"recognitions" yaml:"recognitions" validate:"required"`
}

// RegisterStatus is the response of RegisterCallback.
type RegisterStatus struct {
	Status string `json:"status" yaml:"status" validate:"required"`
	URL    string `json:"url"    yaml:"url"    validate:"required"`
}

// LanguageModel is a custom language model.
type LanguageModel struct {
	CustomizationID string     `json:"customization_id"          yaml:"customization_id"          validate:"required"`
	Created         *time.Time `json:"created,omitempty"         yaml:"created,omitempty"`
	Language        *string    `json:"language,omitempty"        yaml:"language,omitempty"`
	Dialect         *string    `json:"dialect,omitempty"         yaml:"dialect,omitempty"`
	Versions        []string   `json:"versions,omitempty"        yaml:"versions,omitempty"`
	Owner           *string    `json:"owner,omitempty"           yaml:"owner,omitempty"`
	Name            *string    `json:"name,omitempty"            yaml:"name,omitempty"`
	Description     *string    `json:"description,omitempty"     yaml:"description,omitempty"`
	BaseModelName   *string    `json:"base_model_name,omitempty" yaml:"base_model_name,omitempty"`
	Status          *string    `json:"status,omitempty"          yaml:"status,omitempty"`
	Progress        *int64     `json:"progress,omitempty"        yaml:"progress,omitempty"`
	Error           *string    `json:"error,omitempty"           yaml:"error,omitempty"`
	Warnings        *string    `json:"warnings,omitempty"        yaml:"warnings,omitempty"`
}

// LanguageModels is the response of ListLanguageModels.
type LanguageModels struct {
	Customizations []LanguageModel `json:"customizations" yaml:"customizations" validate:"required"`
}

// Corpus is a corpus added to a custom language model.
type Corpus struct {
	Name                 string  `json:"name"                    yaml:"name"                    validate:"required"`
	TotalWords           int64   `json:"total_words"             yaml:"total_words"`
	OutOfVocabularyWords int64   `json:"out_of_vocabulary_words" yaml:"out_of_vocabulary_words"`
	Status               string  `json:"status"                  yaml:"status"`
	Error                *string `json:"error,omitempty"         yaml:"error,omitempty"`
}

// Corpora is the response of ListCorpora.
type Corpora struct {
	Corpora []Corpus `json:"corpora" yaml:"corpora" validate:"required"`
}

// Word is a word of a custom language model.
type Word struct {
	Word       string              `json:"word"            yaml:"word"            validate:"required"`
	SoundsLike []string            `json:"sounds_like"     yaml:"sounds_like"`
	DisplayAs  string              `json:"display_as"      yaml:"display_as"`
	Count      int64               `json:"count"           yaml:"count"`
	Source     []string            `json:"source"          yaml:"source"`
	Error      []map[string]string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Words is the response of ListWords.
type Words struct {
	Words []Word `json:"words" yaml:"words" validate:"required"`
}
