package languagetranslatorv3

import "time"

// Translation is one translated text.
type Translation struct {
	Translation string `json:"translation" validate:"required" yaml:"translation"`
}

// TranslationResult is the response of Translate.
type TranslationResult struct {
	WordCount                  int64         `json:"word_count"                             yaml:"word_count"`
	CharacterCount             int64         `json:"character_count"                        yaml:"character_count"`
	DetectedLanguage           *string       `json:"detected_language,omitempty"            yaml:"detected_language,omitempty"`
	DetectedLanguageConfidence *float64      `json:"detected_language_confidence,omitempty" yaml:"detected_language_confidence,omitempty"`
	Translations               []Translation `json:"translations"                           yaml:"translations"                           validate:"required"`
}

// IdentifiableLanguage is a language Identify can detect.
type IdentifiableLanguage struct {
	Language string `json:"language" validate:"required" yaml:"language"`
	Name     string `json:"name"     validate:"required" yaml:"name"`
}

// IdentifiableLanguages is the response of ListIdentifiableLanguages.
type IdentifiableLanguages struct {
	Languages []IdentifiableLanguage `json:"languages" validate:"required" yaml:"languages"`
}

// IdentifiedLanguage is one candidate language with its confidence.
type IdentifiedLanguage struct {
	Language   string  `json:"language"   validate:"required" yaml:"language"`
	Confidence float64 `json:"confidence"                     yaml:"confidence"`
}

// IdentifiedLanguages is the response of Identify.
type IdentifiedLanguages struct {
	Languages []IdentifiedLanguage `json:"languages" validate:"required" yaml:"languages"`
}

// Model status values.
const (
	ModelStatusUploading   = "uploading"
	ModelStatusUploaded    = "uploaded"
	ModelStatusDispatching = "dispatching"
	ModelStatusQueued      = "queued"
	ModelStatusTraining    = "training"
	ModelStatusTrained     = "trained"
	ModelStatusPublishing  = "publishing"
	ModelStatusAvailable   = "available"
	ModelStatusDeleted     = "deleted"
	ModelStatusError       = "error"
)

// TranslationModel describes a base or custom translation model.
type TranslationModel struct {
	ModelID      string  `json:"model_id"                yaml:"model_id"                validate:"required"`
	Name         *string `json:"name,omitempty"          yaml:"name,omitempty"`
	Source       *string `json:"source,omitempty"        yaml:"source,omitempty"`
	Target       *string `json:"target,omitempty"        yaml:"target,omitempty"`
	BaseModelID  *string `json:"base_model_id,omitempty" yaml:"base_model_id,omitempty"`
	Domain       *string `json:"domain,omitempty"        yaml:"domain,omitempty"`
	Customizable *bool   `json:"customizable,omitempty"  yaml:"customizable,omitempty"`
	DefaultModel *bool   `json:"default_model,omitempty" yaml:"default_model,omitempty"`
	Owner        *string `json:"owner,omitempty"         yaml:"owner,omitempty"`
	Status       *string `json:"status,omitempty"        yaml:"status,omitempty"`
}

// TranslationModels is the response of ListModels.
type TranslationModels struct {
	Models []TranslationModel `json:"models" validate:"required" yaml:"models"`
}

// DeleteModelResult is the response of DeleteModel.
type DeleteModelResult struct {
	Status string `json:"status" validate:"required" yaml:"status"`
}

// Document status values.
const (
	DocumentStatusProcessing = "processing"
	DocumentStatusAvailable  = "available"
	DocumentStatusFailed     = "failed"
)

// DocumentStatus describes a document submitted to TranslateDocument.
type DocumentStatus struct {
	DocumentID                 string     `json:"document_id"                            yaml:"document_id"                            validate:"required"`
	Filename                   string     `json:"filename"                               yaml:"filename"                               validate:"required"`
	Status                     string     `json:"status"                                 yaml:"status"                                 validate:"required"`
	ModelID                    string     `json:"model_id"                               yaml:"model_id"                               validate:"required"`
	BaseModelID                *string    `json:"base_model_id,omitempty"                yaml:"base_model_id,omitempty"`
	Source                     string     `json:"source"                                 yaml:"source"`
	DetectedLanguageConfidence *float64   `json:"detected_language_confidence,omitempty" yaml:"detected_language_confidence,omitempty"`
	Target                     string     `json:"target"                                 yaml:"target"`
	Created                    *time.Time `json:"created,omitempty"                      yaml:"created,omitempty"`
	Completed                  *time.Time `json:"completed,omitempty"                    yaml:"completed,omitempty"`
	WordCount                  *int64     `json:"word_count,omitempty"                   yaml:"word_count,omitempty"`
	CharacterCount             *int64     `json:"character_count,omitempty"              yaml:"character_count,omitempty"`
}

// DocumentList is the response of ListDocuments.
type DocumentList struct {
	Documents []DocumentStatus `json:"documents" validate:"required" yaml:"documents"`
}
