// Package languagetranslatorv3 defines the Language Translator V3 service:
// its client interface, method options and response models.
package languagetranslatorv3

import (
	"context"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.LanguageTranslatorServiceName
	DefaultServiceURL  = constants.LanguageTranslatorURL
)

// Client translates text and documents and manages custom translation models.
type Client interface {
	// Translate translates one or more input texts.
	Translate(ctx context.Context, options *TranslateOptions) (*TranslationResult, *watson.DetailedResponse, error)
	// ListIdentifiableLanguages lists the languages Identify can detect.
	ListIdentifiableLanguages(ctx context.Context, options *ListIdentifiableLanguagesOptions) (*IdentifiableLanguages, *watson.DetailedResponse, error)
	// Identify detects the language of the input text.
	Identify(ctx context.Context, options *IdentifyOptions) (*IdentifiedLanguages, *watson.DetailedResponse, error)

	ListModels(ctx context.Context, options *ListModelsOptions) (*TranslationModels, *watson.DetailedResponse, error)
	CreateModel(ctx context.Context, options *CreateModelOptions) (*TranslationModel, *watson.DetailedResponse, error)
	GetModel(ctx context.Context, options *GetModelOptions) (*TranslationModel, *watson.DetailedResponse, error)
	DeleteModel(ctx context.Context, options *DeleteModelOptions) (*DeleteModelResult, *watson.DetailedResponse, error)

	ListDocuments(ctx context.Context, options *ListDocumentsOptions) (*DocumentList, *watson.DetailedResponse, error)
	TranslateDocument(ctx context.Context, options *TranslateDocumentOptions) (*DocumentStatus, *watson.DetailedResponse, error)
	GetDocumentStatus(ctx context.Context, options *GetDocumentStatusOptions) (*DocumentStatus, *watson.DetailedResponse, error)
	DeleteDocument(ctx context.Context, options *DeleteDocumentOptions) (*watson.DetailedResponse, error)
	// GetTranslatedDocument downloads a translated document as raw bytes.
	GetTranslatedDocument(ctx context.Context, options *GetTranslatedDocumentOptions) ([]byte, *watson.DetailedResponse, error)

	// ServiceURL returns the base URL the client talks to.
	ServiceURL() string
}
