package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	lt "github.com/fivetwenty-io/watson/pkg/services/languagetranslatorv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// LanguageTranslatorV3 implements lt.Client.
type LanguageTranslatorV3 struct {
	*service
}

// NewLanguageTranslatorV3 creates a Language Translator V3 client.
func NewLanguageTranslatorV3(config *watson.Config) (*LanguageTranslatorV3, error) {
	svc, err := newService(config, serviceInfo{name: "language_translator", version: "V3", versioned: true})
	if err != nil {
		return nil, err
	}

	return &LanguageTranslatorV3{service: svc}, nil
}

// Translate translates one or more input texts.
func (c *LanguageTranslatorV3) Translate(ctx context.Context, options *lt.TranslateOptions) (*lt.TranslationResult, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("translating text: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v3/translate", "translate", options.Headers)
	req.Body = options

	var result lt.TranslationResult

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("translating text: %w", err)
	}

	return &result, resp, nil
}

// ListIdentifiableLanguages lists the languages Identify can detect.
func (c *LanguageTranslatorV3) ListIdentifiableLanguages(ctx context.Context, options *lt.ListIdentifiableLanguagesOptions) (*lt.IdentifiableLanguages, *watson.DetailedResponse, error) {
	if options == nil {
		options = &lt.ListIdentifiableLanguagesOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v3/identifiable_languages", "list_identifiable_languages", options.Headers)

	var result lt.IdentifiableLanguages

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing identifiable languages: %w", err)
	}

	return &result, resp, nil
}

// Identify detects the language of the input text.
func (c *LanguageTranslatorV3) Identify(ctx context.Context, options *lt.IdentifyOptions) (*lt.IdentifiedLanguages, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("identifying language: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v3/identify", "identify", options.Headers)
	req.RawBody = strings.NewReader(options.Text)
	req.ContentType = constants.ContentTypeTextPlain

	var result lt.IdentifiedLanguages

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("identifying language: %w", err)
	}

	return &result, resp, nil
}

// ListModels lists base and custom translation models.
func (c *LanguageTranslatorV3) ListModels(ctx context.Context, options *lt.ListModelsOptions) (*lt.TranslationModels, *watson.DetailedResponse, error) {
	if options == nil {
		options = &lt.ListModelsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v3/models", "list_models", options.Headers)
	req.Params = struct {
		Source  *string `schema:"source,omitempty"`
		Target  *string `schema:"target,omitempty"`
		Default *bool   `schema:"default,omitempty"`
	}{options.Source, options.Target, options.Default}

	var result lt.TranslationModels

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing translation models: %w", err)
	}

	return &result, resp, nil
}

// CreateModel uploads a glossary or corpus to customize a base model.
func (c *LanguageTranslatorV3) CreateModel(ctx context.Context, options *lt.CreateModelOptions) (*lt.TranslationModel, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating translation model: %w", err)
	}

	if options.ForcedGlossary == nil && options.ParallelCorpus == nil {
		return nil, nil, fmt.Errorf("creating translation model: %w: forced_glossary or parallel_corpus", watson.ErrMissingParameter)
	}

	req := c.newRequest(http.MethodPost, "/v3/models", "create_model", options.Headers)
	req.Params = struct {
		BaseModelID string  `schema:"base_model_id"`
		Name        *string `schema:"name,omitempty"`
	}{options.BaseModelID, options.Name}

	if options.ForcedGlossary != nil {
		req.Form = append(req.Form, filePart("forced_glossary", options.ForcedGlossary, "", watson.String(constants.ContentTypeOctetStream)))
	}

	if options.ParallelCorpus != nil {
		req.Form = append(req.Form, filePart("parallel_corpus", options.ParallelCorpus, "", watson.String(constants.ContentTypeOctetStream)))
	}

	var result lt.TranslationModel

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating translation model: %w", err)
	}

	return &result, resp, nil
}

// GetModel returns one translation model.
func (c *LanguageTranslatorV3) GetModel(ctx context.Context, options *lt.GetModelOptions) (*lt.TranslationModel, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting translation model: %w", err)
	}

	req := c.newRequest(http.MethodGet, internalhttp.PathJoin("v3", "models", options.ModelID), "get_model", options.Headers)

	var result lt.TranslationModel

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting translation model %s: %w", options.ModelID, err)
	}

	return &result, resp, nil
}

// DeleteModel deletes a custom translation model.
func (c *LanguageTranslatorV3) DeleteModel(ctx context.Context, options *lt.DeleteModelOptions) (*lt.DeleteModelResult, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("deleting translation model: %w", err)
	}

	req := c.newRequest(http.MethodDelete, internalhttp.PathJoin("v3", "models", options.ModelID), "delete_model", options.Headers)

	var result lt.DeleteModelResult

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("deleting translation model %s: %w", options.ModelID, err)
	}

	return &result, resp, nil
}

// ListDocuments lists submitted documents.
func (c *LanguageTranslatorV3) ListDocuments(ctx context.Context, options *lt.ListDocumentsOptions) (*lt.DocumentList, *watson.DetailedResponse, error) {
	if options == nil {
		options = &lt.ListDocumentsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v3/documents", "list_documents", options.Headers)

	var result lt.DocumentList

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing documents: %w", err)
	}

	return &result, resp, nil
}

// TranslateDocument submits a document for asynchronous translation.
func (c *LanguageTranslatorV3) TranslateDocument(ctx context.Context, options *lt.TranslateDocumentOptions) (*lt.DocumentStatus, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("translating document: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v3/documents", "translate_document", options.Headers)
	req.Form = []internalhttp.FormPart{filePart("file", options.File, options.Filename, options.FileContentType)}

	addFormValue(req, "model_id", options.ModelID)
	addFormValue(req, "source", options.Source)
	addFormValue(req, "target", options.Target)
	addFormValue(req, "document_id", options.DocumentID)

	var result lt.DocumentStatus

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("translating document: %w", err)
	}

	return &result, resp, nil
}

// GetDocumentStatus returns the translation status of a document.
func (c *LanguageTranslatorV3) GetDocumentStatus(ctx context.Context, options *lt.GetDocumentStatusOptions) (*lt.DocumentStatus, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting document status: %w", err)
	}

	req := c.newRequest(http.MethodGet, internalhttp.PathJoin("v3", "documents", options.DocumentID), "get_document_status", options.Headers)

	var result lt.DocumentStatus

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting document status %s: %w", options.DocumentID, err)
	}

	return &result, resp, nil
}

// DeleteDocument deletes a submitted document.
func (c *LanguageTranslatorV3) DeleteDocument(ctx context.Context, options *lt.DeleteDocumentOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting document: %w", err)
	}

	req := c.newRequest(http.MethodDelete, internalhttp.PathJoin("v3", "documents", options.DocumentID), "delete_document", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting document %s: %w", options.DocumentID, err)
	}

	return resp, nil
}

// GetTranslatedDocument downloads a translated document.
func (c *LanguageTranslatorV3) GetTranslatedDocument(ctx context.Context, options *lt.GetTranslatedDocumentOptions) ([]byte, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting translated document: %w", err)
	}

	req := c.newRequest(http.MethodGet, internalhttp.PathJoin("v3", "documents", options.DocumentID, "translated_document"), "get_translated_document", options.Headers)
	req.Accept = watson.StringValue(options.Accept)

	if req.Accept == "" {
		req.Accept = "*/*"
	}

	data, resp, err := c.invokeBinary(ctx, req)
	if err != nil {
		return nil, resp, fmt.Errorf("getting translated document %s: %w", options.DocumentID, err)
	}

	return data, resp, nil
}

var _ lt.Client = (*LanguageTranslatorV3)(nil)
