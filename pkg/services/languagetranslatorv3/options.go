package languagetranslatorv3

import "io"

// TranslateOptions are the parameters of Translate. Either ModelID or Target
// must be set.
type TranslateOptions struct {
	Text    []string `json:"text"               validate:"required"`
	ModelID *string  `json:"model_id,omitempty"`
	Source  *string  `json:"source,omitempty"`
	Target  *string  `json:"target,omitempty"`

	Headers map[string]string `json:"-"`
}

// ListIdentifiableLanguagesOptions are the parameters of ListIdentifiableLanguages.
type ListIdentifiableLanguagesOptions struct {
	Headers map[string]string `json:"-"`
}

// IdentifyOptions are the parameters of Identify. Text is sent as text/plain.
type IdentifyOptions struct {
	Text string `json:"text" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListModelsOptions are the parameters of ListModels.
type ListModelsOptions struct {
	Source  *string `json:"-"`
	Target  *string `json:"-"`
	Default *bool   `json:"-"`

	Headers map[string]string `json:"-"`
}

// CreateModelOptions are the parameters of CreateModel. At least one of
// ForcedGlossary and ParallelCorpus should be supplied.
type CreateModelOptions struct {
	BaseModelID    string    `json:"base_model_id" validate:"required"`
	Name           *string   `json:"-"`
	ForcedGlossary io.Reader `json:"-"`
	ParallelCorpus io.Reader `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetModelOptions are the parameters of GetModel.
type GetModelOptions struct {
	ModelID string `json:"model_id" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteModelOptions are the parameters of DeleteModel.
type DeleteModelOptions struct {
	ModelID string `json:"model_id" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListDocumentsOptions are the parameters of ListDocuments.
type ListDocumentsOptions struct {
	Headers map[string]string `json:"-"`
}

// TranslateDocumentOptions are the parameters of TranslateDocument.
type TranslateDocumentOptions struct {
	File            io.Reader `json:"file"     validate:"required"`
	Filename        string    `json:"filename" validate:"required"`
	FileContentType *string   `json:"-"`
	ModelID         *string   `json:"-"`
	Source          *string   `json:"-"`
	Target          *string   `json:"-"`
	DocumentID      *string   `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetDocumentStatusOptions are the parameters of GetDocumentStatus.
type GetDocumentStatusOptions struct {
	DocumentID string `json:"document_id" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteDocumentOptions are the parameters of DeleteDocument.
type DeleteDocumentOptions struct {
	DocumentID string `json:"document_id" validate:"required"`

	Headers map[string]string `json:"-"`
}

// GetTranslatedDocumentOptions are the parameters of GetTranslatedDocument.
type GetTranslatedDocumentOptions struct {
	DocumentID string `json:"document_id" validate:"required"`
	// Accept selects the output format, e.g. application/pdf.
	Accept *string `json:"-"`

	Headers map[string]string `json:"-"`
}
