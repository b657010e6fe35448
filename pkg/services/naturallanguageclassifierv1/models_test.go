package naturallanguageclassifierv1_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/internal/modeltest"
	nlc "github.com/fivetwenty-io/watson/pkg/services/naturallanguageclassifierv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_RoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2017, 2, 3, 4, 5, 6, 0, time.UTC)
	classes := []nlc.ClassifiedClass{
		{Confidence: 0.98, ClassName: "temperature"},
		{Confidence: 0.02, ClassName: "conditions"},
	}

	modeltest.Run(t, []modeltest.Case{
		{Name: "Classification populated", Model: nlc.Classification{
			ClassifierID: "10D41B-nlc-1",
			URL:          "https://example.com/v1/classifiers/10D41B-nlc-1",
			Text:         "How hot will it be today?",
			TopClass:     "temperature",
			Classes:      classes,
		}},
		{Name: "Classification minimal", Model: nlc.Classification{TopClass: "temperature"}},
		{Name: "ClassificationCollection", Model: nlc.ClassificationCollection{
			ClassifierID: "10D41B-nlc-1",
			URL:          "https://example.com/v1/classifiers/10D41B-nlc-1",
			Collection: []nlc.CollectionItem{
				{Text: "How hot will it be today?", TopClass: "temperature", Classes: classes},
				{Text: "Is it hot outside?", TopClass: "temperature"},
			},
		}},
		{Name: "ClassificationCollection minimal", Model: nlc.ClassificationCollection{Collection: []nlc.CollectionItem{}}},
		{Name: "Classifier populated", Model: nlc.Classifier{
			ClassifierID:      "10D41B-nlc-1",
			URL:               "https://example.com/v1/classifiers/10D41B-nlc-1",
			Name:              watson.String("weather"),
			Status:            watson.String("Available"),
			Created:           &created,
			StatusDescription: watson.String("The classifier instance is now available and is ready to take classifier requests."),
			Language:          watson.String("en"),
		}},
		{Name: "ClassifierList", Model: nlc.ClassifierList{Classifiers: []nlc.Classifier{{ClassifierID: "a"}, {ClassifierID: "b", Language: watson.String("es")}}}},
	})
}

func TestClassifierList_RequiredKeysInArrays(t *testing.T) {
	t.Parallel()

	var list nlc.ClassifierList

	err := watson.UnmarshalModel([]byte(`{"classifiers":[{"url":"https://example.com/v1/classifiers/x"}]}`), &list)
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "classifiers[0].classifier_id")
}

func TestClassifyCollectionOptions_ValidatesCollection(t *testing.T) {
	t.Parallel()

	err := watson.ValidateOptions(&nlc.ClassifyCollectionOptions{
		ClassifierID: "10D41B-nlc-1",
		Collection:   []nlc.ClassifyInput{{Text: "How hot will it be today?"}, {}},
	})
	require.ErrorIs(t, err, watson.ErrMissingParameter)
	assert.Contains(t, err.Error(), "collection[1].text")
}
