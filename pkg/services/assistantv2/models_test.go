package assistantv2_test

import (
	"testing"

	"github.com/fivetwenty-io/watson/internal/modeltest"
	assistant "github.com/fivetwenty-io/watson/pkg/services/assistantv2"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_RoundTrip(t *testing.T) {
	t.Parallel()

	output := assistant.MessageOutput{
		Generic: []assistant.RuntimeResponseGeneric{{
			ResponseType: "text",
			Text:         watson.String("Welcome!"),
		}, {
			ResponseType: "option",
			Title:        watson.String("Pick a size"),
			Description:  watson.String("Sizes in stock"),
			Preference:   watson.String("dropdown"),
			Options:      []map[string]interface{}{{"label": "Large", "value": map[string]interface{}{"input": map[string]interface{}{"text": "large"}}}},
		}, {
			ResponseType: "pause",
			Time:         watson.Int64(250),
			Typing:       watson.Bool(false),
		}, {
			ResponseType: "image",
			Source:       watson.String("https://example.com/logo.png"),
		}},
		Intents:     []assistant.RuntimeIntent{{Intent: "greeting", Confidence: 0.9}},
		Entities:    []assistant.RuntimeEntity{{Entity: "size", Location: []int64{4, 9}, Value: "large", Confidence: watson.Float64(0.8), Metadata: map[string]interface{}{"calendar_type": "GREGORIAN"}}},
		Actions:     []assistant.DialogNodeAction{{Name: "order", Type: watson.String("client"), Parameters: map[string]interface{}{"qty": 2.0}, ResultVariable: "context.order", Credentials: watson.String("$creds")}},
		Debug:       map[string]interface{}{"nodes_visited": []interface{}{map[string]interface{}{"dialog_node": "welcome"}}},
		UserDefined: map[string]interface{}{"coupon": "SAVE10"},
	}
	output.SetProperty("spelling", map[string]interface{}{"text": "large"})

	context := assistant.MessageContext{
		Global: &assistant.MessageContextGlobal{System: map[string]interface{}{"turn_count": 3.0, "user_id": "u-1"}},
		Skills: map[string]map[string]interface{}{"main skill": {"user_defined": map[string]interface{}{"size": "large"}}},
	}

	modeltest.Run(t, []modeltest.Case{
		{Name: "MessageInput populated", Model: assistant.MessageInput{
			MessageType: watson.String(assistant.MessageTypeText),
			Text:        watson.String("I want a large one"),
			Options: &assistant.MessageInputOptions{
				Debug:            watson.Bool(true),
				Restart:          watson.Bool(false),
				AlternateIntents: watson.Bool(true),
				ReturnContext:    watson.Bool(true),
			},
			Intents:      []assistant.RuntimeIntent{{Intent: "order", Confidence: 1}},
			Entities:     []assistant.RuntimeEntity{{Entity: "size", Location: []int64{9, 14}, Value: "large"}},
			SuggestionID: watson.String("s-1"),
		}},
		{Name: "MessageInput minimal", Model: assistant.MessageInput{}},
		{Name: "MessageContext populated", Model: context},
		{Name: "MessageContext minimal", Model: assistant.MessageContext{}},
		{Name: "MessageOutput populated", Model: output},
		{Name: "MessageOutput minimal", Model: assistant.MessageOutput{}},
		{Name: "MessageResponse populated", Model: assistant.MessageResponse{Output: &output, Context: &context}},
		{Name: "MessageResponse minimal", Model: assistant.MessageResponse{Output: &assistant.MessageOutput{}}},
		{Name: "SessionResponse", Model: assistant.SessionResponse{SessionID: "sess-1"}},
		{Name: "DialogNodeAction minimal", Model: assistant.DialogNodeAction{Name: "n"}},
		{Name: "RuntimeResponseGeneric minimal", Model: assistant.RuntimeResponseGeneric{ResponseType: "text"}},
	})
}

func TestMessageResponse_RequiredKeysInArrays(t *testing.T) {
	t.Parallel()

	var response assistant.MessageResponse

	err := watson.UnmarshalModel([]byte(`{"output":{"generic":[{"response_type":"text"}],"actions":[{"type":"client"}]}}`), &response)
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "output.actions[0].name")

	err = watson.UnmarshalModel([]byte(`{"output":{"entities":[{"entity":"size","value":"large"}]}}`), &response)
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "output.entities[0].location")
}
