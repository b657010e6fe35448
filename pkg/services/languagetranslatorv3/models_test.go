package languagetranslatorv3_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/internal/modeltest"
	translator "github.com/fivetwenty-io/watson/pkg/services/languagetranslatorv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_RoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	completed := created.Add(90 * time.Second)

	document := translator.DocumentStatus{
		DocumentID:                 "doc-1",
		Filename:                   "manual.docx",
		Status:                     translator.DocumentStatusAvailable,
		ModelID:                    "en-es",
		BaseModelID:                watson.String("en-es"),
		Source:                     "en",
		DetectedLanguageConfidence: watson.Float64(0.97),
		Target:                     "es",
		Created:                    &created,
		Completed:                  &completed,
		WordCount:                  watson.Int64(420),
		CharacterCount:             watson.Int64(2600),
	}

	modeltest.Run(t, []modeltest.Case{
		{Name: "TranslationResult populated", Model: translator.TranslationResult{
			WordCount:                  2,
			CharacterCount:             11,
			DetectedLanguage:           watson.String("en"),
			DetectedLanguageConfidence: watson.Float64(0.99),
			Translations:               []translator.Translation{{Translation: "Hola mundo"}, {Translation: "Adiós"}},
		}},
		{Name: "TranslationResult minimal", Model: translator.TranslationResult{Translations: []translator.Translation{}}},
		{Name: "IdentifiableLanguages", Model: translator.IdentifiableLanguages{
			Languages: []translator.IdentifiableLanguage{{Language: "af", Name: "Afrikaans"}, {Language: "ar", Name: "Arabic"}},
		}},
		{Name: "IdentifiableLanguages minimal", Model: translator.IdentifiableLanguages{Languages: []translator.IdentifiableLanguage{}}},
		{Name: "IdentifiedLanguages", Model: translator.IdentifiedLanguages{
			Languages: []translator.IdentifiedLanguage{{Language: "en", Confidence: 0.92}, {Language: "nn", Confidence: 0.01}},
		}},
		{Name: "TranslationModel populated", Model: translator.TranslationModel{
			ModelID:      "cust-1",
			Name:         watson.String("glossary"),
			Source:       watson.String("en"),
			Target:       watson.String("es"),
			BaseModelID:  watson.String("en-es"),
			Domain:       watson.String("general"),
			Customizable: watson.Bool(false),
			DefaultModel: watson.Bool(false),
			Owner:        watson.String("owner-guid"),
			Status:       watson.String(translator.ModelStatusTraining),
		}},
		{Name: "TranslationModel minimal", Model: translator.TranslationModel{ModelID: "en-es"}},
		{Name: "TranslationModels", Model: translator.TranslationModels{
			Models: []translator.TranslationModel{{ModelID: "en-es", DefaultModel: watson.Bool(true)}},
		}},
		{Name: "DeleteModelResult", Model: translator.DeleteModelResult{Status: "OK"}},
		{Name: "DocumentStatus populated", Model: document},
		{Name: "DocumentStatus minimal", Model: translator.DocumentStatus{
			DocumentID: "doc-2",
			Filename:   "a.txt",
			Status:     translator.DocumentStatusProcessing,
			ModelID:    "en-fr",
		}},
		{Name: "DocumentList", Model: translator.DocumentList{Documents: []translator.DocumentStatus{document}}},
	})
}

func TestModels_RequiredKeysInArrays(t *testing.T) {
	t.Parallel()

	t.Run("translation element", func(t *testing.T) {
		t.Parallel()

		var result translator.TranslationResult

		err := watson.UnmarshalModel([]byte(`{"word_count":1,"character_count":5,"translations":[{}]}`), &result)
		require.ErrorIs(t, err, watson.ErrInvalidModel)
		assert.Contains(t, err.Error(), "translations[0].translation")
	})

	t.Run("second model element", func(t *testing.T) {
		t.Parallel()

		var models translator.TranslationModels

		err := watson.UnmarshalModel([]byte(`{"models":[{"model_id":"en-es"},{"name":"no id"}]}`), &models)
		require.ErrorIs(t, err, watson.ErrInvalidModel)
		assert.Contains(t, err.Error(), "models[1].model_id")
	})

	t.Run("document element", func(t *testing.T) {
		t.Parallel()

		var list translator.DocumentList

		err := watson.UnmarshalModel([]byte(`{"documents":[{"document_id":"d","filename":"f","status":"available"}]}`), &list)
		require.ErrorIs(t, err, watson.ErrInvalidModel)
		assert.Contains(t, err.Error(), "documents[0].model_id")
	})

	t.Run("complete elements", func(t *testing.T) {
		t.Parallel()

		var languages translator.IdentifiedLanguages

		err := watson.UnmarshalModel([]byte(`{"languages":[{"language":"en","confidence":0.9}]}`), &languages)
		require.NoError(t, err)
		assert.Equal(t, "en", languages.Languages[0].Language)
	})
}
