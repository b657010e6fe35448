package naturallanguageunderstandingv1_test

import (
	"testing"

	"github.com/fivetwenty-io/watson/internal/modeltest"
	nlu "github.com/fivetwenty-io/watson/pkg/services/naturallanguageunderstandingv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_RoundTrip(t *testing.T) {
	t.Parallel()

	emotion := &nlu.EmotionScores{
		Anger:   watson.Float64(0.04),
		Disgust: watson.Float64(0.01),
		Fear:    watson.Float64(0.02),
		Joy:     watson.Float64(0.72),
		Sadness: watson.Float64(0.1),
	}
	sentiment := &nlu.FeatureSentimentResults{Score: watson.Float64(0.64)}

	modeltest.Run(t, []modeltest.Case{
		{Name: "AnalysisResults populated", Model: nlu.AnalysisResults{
			Language:     watson.String("en"),
			AnalyzedText: watson.String("IBM is an American multinational technology company"),
			RetrievedURL: watson.String("https://www.ibm.com/"),
			Usage:        &nlu.Usage{Features: 8, TextCharacters: 1188, TextUnits: 1},
			Concepts: []nlu.ConceptsResult{{
				Text:            "Social network service",
				Relevance:       0.92,
				DbpediaResource: watson.String("http://dbpedia.org/resource/Social_network_service"),
			}},
			Entities: []nlu.EntitiesResult{{
				Type:           "Company",
				Text:           "IBM",
				Relevance:      0.33,
				Count:          1,
				Mentions:       []nlu.EntityMention{{Text: "IBM", Location: []int64{0, 3}}},
				Emotion:        emotion,
				Sentiment:      sentiment,
				Disambiguation: map[string]interface{}{"name": "IBM", "subtype": []interface{}{"SoftwareLicense"}},
			}},
			Keywords: []nlu.KeywordsResult{{
				Text:      "American multinational technology",
				Relevance: 0.99,
				Count:     watson.Int64(1),
				Emotion:   emotion,
				Sentiment: sentiment,
			}},
			Categories: []nlu.CategoriesResult{{Label: "/technology and computing/software", Score: 0.59}},
			Emotion: &nlu.EmotionResult{
				Document: &nlu.DocumentEmotionResults{Emotion: emotion},
				Targets:  []nlu.TargetedEmotionResults{{Text: "apples", Emotion: emotion}},
			},
			Metadata: &nlu.MetadataResult{
				Authors:         []nlu.Author{{Name: "Jane Doe"}},
				PublicationDate: watson.String("2015-12-01T00:00:00"),
				Title:           watson.String("IBM - United States"),
				Image:           watson.String("https://example.com/image.png"),
				Feeds:           []map[string]string{{"link": "https://example.com/feed"}},
			},
			Relations: []nlu.RelationsResult{{
				Score:    0.68,
				Sentence: "Leonardo DiCaprio won Best Actor in a Leading Role.",
				Type:     "awardedTo",
				Arguments: []nlu.RelationArgument{{
					Entities: []map[string]interface{}{{"text": "Best Actor", "type": "EntertainmentAward"}},
					Location: []int64{22, 32},
					Text:     "Best Actor",
				}},
			}},
			SemanticRoles: []nlu.SemanticRolesResult{{
				Sentence: "IBM has one of the largest workforces in the world",
				Subject:  map[string]interface{}{"text": "IBM"},
				Action:   map[string]interface{}{"text": "has", "normalized": "have"},
				Object:   map[string]interface{}{"text": "one of the largest workforces in the world"},
			}},
			Sentiment: &nlu.SentimentResult{
				Document: &nlu.DocumentSentimentResults{Label: watson.String("positive"), Score: watson.Float64(0.13)},
				Targets:  []nlu.TargetedSentimentResults{{Text: "stocks", Score: watson.Float64(0.28)}},
			},
		}},
		{Name: "AnalysisResults minimal", Model: nlu.AnalysisResults{}},
		{Name: "RelationsResult minimal", Model: nlu.RelationsResult{}},
		{Name: "ListModelsResults", Model: nlu.ListModelsResults{Models: []nlu.Model{{
			ModelID:     "model-1",
			Status:      watson.String("available"),
			Language:    watson.String("en"),
			Description: watson.String("entities and relations"),
			WorkspaceID: watson.String("ws-1"),
			Version:     watson.String("1.0.0"),
		}}}},
		{Name: "Model minimal", Model: nlu.Model{ModelID: "model-2"}},
		{Name: "DeleteModelResults", Model: nlu.DeleteModelResults{Deleted: watson.String("model-1")}},
	})
}

func TestListModelsResults_RequiredKeysInArrays(t *testing.T) {
	t.Parallel()

	var results nlu.ListModelsResults

	err := watson.UnmarshalModel([]byte(`{"models":[{"model_id":"m1"},{"status":"training"}]}`), &results)
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "models[1].model_id")
}
