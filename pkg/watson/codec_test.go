package watson_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleOptions struct {
	ModelID string   `json:"-"    validate:"required"`
	Text    []string `json:"text" validate:"required,min=1"`
	Source  *string  `json:"source,omitempty"`
}

type sampleModel struct {
	Name  string  `json:"name"            validate:"required"`
	Score float64 `json:"score"`
	Label *string `json:"label,omitempty"`
}

type sampleList struct {
	Models  []sampleModel           `json:"models"            validate:"required"`
	ByName  map[string]*sampleModel `json:"by_name,omitempty"`
	Batches [][]sampleModel         `json:"batches,omitempty"`
	Seen    []time.Time             `json:"seen,omitempty"`
}

type sampleBatchOptions struct {
	Items []sampleModel `json:"items" validate:"required"`
}

type sampleContext struct {
	ConversationID string                 `json:"conversation_id,omitempty"`
	System         map[string]interface{} `json:"system,omitempty"`

	watson.AdditionalProperties
}

func (c *sampleContext) UnmarshalJSON(data []byte) error {
	type plain sampleContext

	return watson.DecodeWithResidual(data, (*plain)(c), &c.Extra)
}

func (c sampleContext) MarshalJSON() ([]byte, error) {
	type plain sampleContext

	return watson.EncodeWithResidual(plain(c), c.Extra)
}

func TestValidateOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		var options *sampleOptions

		err := watson.ValidateOptions(options)
		require.ErrorIs(t, err, watson.ErrMissingOptions)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		err := watson.ValidateOptions(&sampleOptions{})
		require.ErrorIs(t, err, watson.ErrMissingParameter)
		assert.Contains(t, err.Error(), "ModelID")
		assert.Contains(t, err.Error(), "text")
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		err := watson.ValidateOptions(&sampleOptions{ModelID: "en-es", Text: []string{"hello"}})
		require.NoError(t, err)
	})
}

func TestUnmarshalModel(t *testing.T) {
	t.Parallel()

	model, err := watson.DecodeModel[sampleModel]([]byte(`{"name":"x","score":0.5}`))
	require.NoError(t, err)
	assert.Equal(t, "x", model.Name)
	assert.Nil(t, model.Label)

	_, err = watson.DecodeModel[sampleModel]([]byte(`{"score":0.5}`))
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "name")

	_, err = watson.DecodeModel[sampleModel]([]byte(`not json`))
	require.ErrorIs(t, err, watson.ErrInvalidModel)
}

func TestUnmarshalModel_Elements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "slice element", body: `{"models":[{"name":"a"},{"score":1}]}`, expected: "models[1].name"},
		{name: "map element", body: `{"models":[],"by_name":{"b":{"score":1}}}`, expected: "by_name[b].name"},
		{name: "nested slice element", body: `{"models":[],"batches":[[{"name":"a"}],[{"label":"x"}]]}`, expected: "batches[1][0].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := watson.DecodeModel[sampleList]([]byte(tt.body))
			require.ErrorIs(t, err, watson.ErrInvalidModel)
			assert.Equal(t, "invalid model: "+tt.expected, err.Error())
		})
	}

	t.Run("valid elements", func(t *testing.T) {
		t.Parallel()

		list, err := watson.DecodeModel[sampleList]([]byte(
			`{"models":[{"name":"a"}],"by_name":{"a":{"name":"a"},"nil":null},"seen":["2020-01-02T03:04:05Z"]}`))
		require.NoError(t, err)
		assert.Len(t, list.Models, 1)
		assert.Nil(t, list.ByName["nil"])
		assert.Len(t, list.Seen, 1)
	})

	t.Run("top level slice", func(t *testing.T) {
		t.Parallel()

		var models []sampleModel

		err := watson.UnmarshalModel([]byte(`[{"name":"a"},{}]`), &models)
		require.ErrorIs(t, err, watson.ErrInvalidModel)
		assert.Contains(t, err.Error(), "[1].name")
	})
}

func TestValidateOptions_Elements(t *testing.T) {
	t.Parallel()

	err := watson.ValidateOptions(&sampleBatchOptions{Items: []sampleModel{{Name: "a"}, {Score: 2}}})
	require.ErrorIs(t, err, watson.ErrMissingParameter)
	assert.Equal(t, "missing required parameter: items[1].name", err.Error())

	require.NoError(t, watson.ValidateOptions(&sampleBatchOptions{Items: []sampleModel{{Name: "a"}}}))
}

func TestAdditionalProperties_RoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"conversation_id":"c1","system":{"turn":1},"user_name":"ana","cart":["a","b"]}`

	var ctx sampleContext

	require.NoError(t, json.Unmarshal([]byte(input), &ctx))
	assert.Equal(t, "c1", ctx.ConversationID)
	assert.Equal(t, "ana", ctx.GetProperty("user_name"))
	assert.NotContains(t, ctx.Extra, "conversation_id")
	assert.NotContains(t, ctx.Extra, "system")

	output, err := watson.MarshalModel(ctx)
	require.NoError(t, err)

	var want, got map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(input), &want))
	require.NoError(t, json.Unmarshal(output, &got))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAdditionalProperties_DeclaredKeysWin(t *testing.T) {
	t.Parallel()

	ctx := sampleContext{ConversationID: "declared"}
	ctx.SetProperty("conversation_id", "extra")
	ctx.SetProperty("topic", "weather")

	data, err := json.Marshal(ctx)
	require.NoError(t, err)

	converted := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &converted))
	assert.Equal(t, "declared", converted["conversation_id"])
	assert.Equal(t, "weather", converted["topic"])
}

func TestConvertModel(t *testing.T) {
	t.Parallel()

	converted, err := watson.ConvertModel(&sampleModel{Name: "n", Label: watson.String("l")})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "n", "score": 0.0, "label": "l"}, converted)
}

func TestPointerHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", *watson.String("a"))
	assert.True(t, *watson.Bool(true))
	assert.Equal(t, int64(3), *watson.Int64(3))
	assert.InDelta(t, 0.5, *watson.Float64(0.5), 0.0001)
	assert.Empty(t, watson.StringValue(nil))
	assert.Equal(t, "a,b", watson.CSV{"a", "b"}.String())
}
