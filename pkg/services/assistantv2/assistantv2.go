// Package assistantv2 defines the Watson Assistant V2 service: sessions and
// stateful messages.
package assistantv2

import (
	"context"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.AssistantServiceName
	DefaultServiceURL  = constants.AssistantURL
)

// Client is the Assistant V2 API.
type Client interface {
	CreateSession(ctx context.Context, options *CreateSessionOptions) (*SessionResponse, *watson.DetailedResponse, error)
	DeleteSession(ctx context.Context, options *DeleteSessionOptions) (*watson.DetailedResponse, error)
	Message(ctx context.Context, options *MessageOptions) (*MessageResponse, *watson.DetailedResponse, error)
	ServiceURL() string
}

// CreateSessionOptions are the parameters of CreateSession.
type CreateSessionOptions struct {
	AssistantID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteSessionOptions are the parameters of DeleteSession.
type DeleteSessionOptions struct {
	AssistantID string `json:"-" validate:"required"`
	SessionID   string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// MessageOptions are the parameters of Message.
type MessageOptions struct {
	AssistantID string `json:"-" validate:"required"`
	SessionID   string `json:"-" validate:"required"`

	Input   *MessageInput   `json:"input,omitempty"`
	Context *MessageContext `json:"context,omitempty"`

	Headers map[string]string `json:"-"`
}

// Message input types.
const (
	MessageTypeText = "text"
)

// MessageInputOptions tune how the assistant processes input.
type MessageInputOptions struct {
	Debug            *bool `json:"debug,omitempty"`
	Restart          *bool `json:"restart,omitempty"`
	AlternateIntents *bool `json:"alternate_intents,omitempty"`
	ReturnContext    *bool `json:"return_context,omitempty"`
}

// MessageInput is the user input of a V2 message.
type MessageInput struct {
	MessageType  *string              `json:"message_type,omitempty"`
	Text         *string              `json:"text,omitempty"`
	Options      *MessageInputOptions `json:"options,omitempty"`
	Intents      []RuntimeIntent      `json:"intents,omitempty"`
	Entities     []RuntimeEntity      `json:"entities,omitempty"`
	SuggestionID *string              `json:"suggestion_id,omitempty"`
}

// MessageContextGlobal holds session-wide context.
type MessageContextGlobal struct {
	System map[string]interface{} `json:"system,omitempty"`
}

// MessageContext is the state returned when ReturnContext is set. Skill
// variables are kept under Skills keyed by skill name.
type MessageContext struct {
	Global *MessageContextGlobal             `json:"global,omitempty"`
	Skills map[string]map[string]interface{} `json:"skills,omitempty"`
}

// RuntimeIntent is an intent recognized in the user input.
type RuntimeIntent struct {
	Intent     string  `json:"intent"     validate:"required"`
	Confidence float64 `json:"confidence"`
}

// RuntimeEntity is an entity recognized in the user input.
type RuntimeEntity struct {
	Entity     string                 `json:"entity"               validate:"required"`
	Location   []int64                `json:"location"             validate:"required"`
	Value      string                 `json:"value"                validate:"required"`
	Confidence *float64               `json:"confidence,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// RuntimeResponseGeneric is one generic response element.
type RuntimeResponseGeneric struct {
	ResponseType string                   `json:"response_type"         validate:"required"`
	Text         *string                  `json:"text,omitempty"`
	Time         *int64                   `json:"time,omitempty"`
	Typing       *bool                    `json:"typing,omitempty"`
	Source       *string                  `json:"source,omitempty"`
	Title        *string                  `json:"title,omitempty"`
	Description  *string                  `json:"description,omitempty"`
	Preference   *string                  `json:"preference,omitempty"`
	Options      []map[string]interface{} `json:"options,omitempty"`
}

// DialogNodeAction is an action requested by the dialog.
type DialogNodeAction struct {
	Name           string                 `json:"name"                  validate:"required"`
	Type           *string                `json:"type,omitempty"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	ResultVariable string                 `json:"result_variable"`
	Credentials    *string                `json:"credentials,omitempty"`
}

// MessageOutput is the assistant output. Keys other than the declared ones
// are kept as additional properties.
type MessageOutput struct {
	Generic     []RuntimeResponseGeneric `json:"generic,omitempty"`
	Intents     []RuntimeIntent          `json:"intents,omitempty"`
	Entities    []RuntimeEntity          `json:"entities,omitempty"`
	Actions     []DialogNodeAction       `json:"actions,omitempty"`
	Debug       map[string]interface{}   `json:"debug,omitempty"`
	UserDefined map[string]interface{}   `json:"user_defined,omitempty"`

	watson.AdditionalProperties `yaml:",inline"`
}

// UnmarshalJSON keeps undeclared keys.
func (o *MessageOutput) UnmarshalJSON(data []byte) error {
	type plain MessageOutput

	return watson.DecodeWithResidual(data, (*plain)(o), &o.Extra)
}

// MarshalJSON writes undeclared keys back.
func (o MessageOutput) MarshalJSON() ([]byte, error) {
	type plain MessageOutput

	return watson.EncodeWithResidual(plain(o), o.Extra)
}

// MessageResponse is the response of Message.
type MessageResponse struct {
	Output  *MessageOutput  `json:"output"            validate:"required"`
	Context *MessageContext `json:"context,omitempty"`
}

// SessionResponse is the response of CreateSession.
type SessionResponse struct {
	SessionID string `json:"session_id" validate:"required"`
}
