package toneanalyzerv3_test

import (
	"testing"

	"github.com/fivetwenty-io/watson/internal/modeltest"
	tone "github.com/fivetwenty-io/watson/pkg/services/toneanalyzerv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_RoundTrip(t *testing.T) {
	t.Parallel()

	joy := tone.ToneScore{Score: 0.61, ToneID: "joy", ToneName: "Joy"}
	category := tone.ToneCategory{
		Tones:        []tone.ToneScore{joy, {Score: 0.2, ToneID: "anger", ToneName: "Anger"}},
		CategoryID:   "emotion_tone",
		CategoryName: "Emotion Tone",
	}

	modeltest.Run(t, []modeltest.Case{
		{Name: "ToneAnalysis populated", Model: tone.ToneAnalysis{
			DocumentTone: &tone.DocumentAnalysis{
				Tones:          []tone.ToneScore{joy},
				ToneCategories: []tone.ToneCategory{category},
				Warning:        watson.String("text truncated"),
			},
			SentencesTone: []tone.SentenceAnalysis{{
				SentenceID:     0,
				Text:           "Team, I know that times are tough!",
				Tones:          []tone.ToneScore{joy},
				ToneCategories: []tone.ToneCategory{category},
				InputFrom:      watson.Int64(0),
				InputTo:        watson.Int64(34),
			}},
		}},
		{Name: "ToneAnalysis minimal", Model: tone.ToneAnalysis{DocumentTone: &tone.DocumentAnalysis{}}},
		{Name: "ToneCategory minimal", Model: tone.ToneCategory{}},
		{Name: "UtteranceAnalyses populated", Model: tone.UtteranceAnalyses{
			UtterancesTone: []tone.UtteranceAnalysis{
				{UtteranceID: 0, UtteranceText: "Hello, I'm having a problem.", Tones: []tone.ToneScore{{Score: 0.68, ToneID: "sad", ToneName: "Sad"}}},
				{UtteranceID: 1, UtteranceText: "", Tones: []tone.ToneScore{}, Error: watson.String("empty utterance")},
			},
			Warning: watson.String("over 50 utterances"),
		}},
		{Name: "UtteranceAnalyses minimal", Model: tone.UtteranceAnalyses{UtterancesTone: []tone.UtteranceAnalysis{}}},
	})
}

func TestModels_RequiredKeysInArrays(t *testing.T) {
	t.Parallel()

	var analysis tone.ToneAnalysis

	err := watson.UnmarshalModel([]byte(`{"document_tone":{"tone_categories":[{"tones":[{"score":0.5,"tone_id":"joy"}]}]}}`), &analysis)
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "document_tone.tone_categories[0].tones[0].tone_name")

	var chat tone.UtteranceAnalyses

	err = watson.UnmarshalModel([]byte(`{"utterances_tone":[{"utterance_id":0,"tones":[{"score":0.5,"tone_name":"Joy"}]}]}`), &chat)
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "utterances_tone[0].tones[0].tone_id")
}

func TestToneChatOptions_ValidatesUtterances(t *testing.T) {
	t.Parallel()

	err := watson.ValidateOptions(&tone.ToneChatOptions{
		Utterances: []tone.Utterance{{Text: "hi"}, {User: watson.String("agent")}},
	})
	require.ErrorIs(t, err, watson.ErrMissingParameter)
	assert.Contains(t, err.Error(), "utterances[1].text")

	require.NoError(t, watson.ValidateOptions(&tone.ToneChatOptions{
		Utterances: []tone.Utterance{{Text: "hi", User: watson.String("customer")}},
	}))
}
