package assistantv1

import (
	"time"

	"github.com/fivetwenty-io/watson/pkg/watson"
)

// MessageInput is the user input. Keys other than text are kept as
// additional properties.
type MessageInput struct {
	Text *string `json:"text,omitempty"`

	watson.AdditionalProperties `yaml:",inline"`
}

// UnmarshalJSON keeps undeclared keys.
func (m *MessageInput) UnmarshalJSON(data []byte) error {
	type plain MessageInput

	return watson.DecodeWithResidual(data, (*plain)(m), &m.Extra)
}

// MarshalJSON writes undeclared keys back.
func (m MessageInput) MarshalJSON() ([]byte, error) {
	type plain MessageInput

	return watson.EncodeWithResidual(plain(m), m.Extra)
}

// MessageContextMetadata identifies the deployment and user of a conversation.
type MessageContextMetadata struct {
	Deployment *string `json:"deployment,omitempty"`
	UserID     *string `json:"user_id,omitempty"`
}

// Context is the conversation state. It must be sent back unchanged with the
// next message; application variables live in the additional properties.
type Context struct {
	ConversationID *string                 `json:"conversation_id,omitempty"`
	System         map[string]interface{}  `json:"system,omitempty"`
	Metadata       *MessageContextMetadata `json:"metadata,omitempty"`

	watson.AdditionalProperties `yaml:",inline"`
}

// UnmarshalJSON keeps undeclared keys.
func (c *Context) UnmarshalJSON(data []byte) error {
	type plain Context

	return watson.DecodeWithResidual(data, (*plain)(c), &c.Extra)
}

// MarshalJSON writes undeclared keys back.
func (c Context) MarshalJSON() ([]byte, error) {
	type plain Context

	return watson.EncodeWithResidual(plain(c), c.Extra)
}

// LogMessage is a dialog log entry.
type LogMessage struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

// RuntimeResponseGeneric is one generic response element, e.g. text or option.
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

// OutputData is the dialog output. Keys other than the declared ones are kept
// as additional properties.
type OutputData struct {
	LogMessages  []LogMessage             `json:"log_messages"`
	Text         []string                 `json:"text"`
	Generic      []RuntimeResponseGeneric `json:"generic,omitempty"`
	NodesVisited []string                 `json:"nodes_visited,omitempty"`

	watson.AdditionalProperties `yaml:",inline"`
}

// UnmarshalJSON keeps undeclared keys.
func (o *OutputData) UnmarshalJSON(data []byte) error {
	type plain OutputData

	return watson.DecodeWithResidual(data, (*plain)(o), &o.Extra)
}

// MarshalJSON writes undeclared keys back.
func (o OutputData) MarshalJSON() ([]byte, error) {
	type plain OutputData

	return watson.EncodeWithResidual(plain(o), o.Extra)
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

// DialogNodeAction is an action requested by the dialog.
type DialogNodeAction struct {
	Name           string                 `json:"name"                  validate:"required"`
	Type           *string                `json:"type,omitempty"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	ResultVariable string                 `json:"result_variable"`
	Credentials    *string                `json:"credentials,omitempty"`
}

// MessageResponse is the response of Message.
type MessageResponse struct {
	Input            *MessageInput      `json:"input,omitempty"`
	Intents          []RuntimeIntent    `json:"intents"                     validate:"required"`
	Entities         []RuntimeEntity    `json:"entities"                    validate:"required"`
	AlternateIntents *bool              `json:"alternate_intents,omitempty"`
	Context          *Context           `json:"context"                     validate:"required"`
	Output           *OutputData        `json:"output"                      validate:"required"`
	Actions          []DialogNodeAction `json:"actions,omitempty"`
}

// Pagination links a page of a collection to its neighbours.
type Pagination struct {
	RefreshURL    string  `json:"refresh_url"`
	NextURL       *string `json:"next_url,omitempty"`
	Total         *int64  `json:"total,omitempty"`
	Matched       *int64  `json:"matched,omitempty"`
	RefreshCursor *string `json:"refresh_cursor,omitempty"`
	NextCursor    *string `json:"next_cursor,omitempty"`
}

// Example is a training utterance for an intent.
type Example struct {
	Text    string     `json:"text"              validate:"required"`
	Created *time.Time `json:"created,omitempty"`
	Updated *time.Time `json:"updated,omitempty"`
}

// Intent is a workspace intent.
type Intent struct {
	Intent      string     `json:"intent"                validate:"required"`
	Description *string    `json:"description,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Updated     *time.Time `json:"updated,omitempty"`
	Examples    []Example  `json:"examples,omitempty"`
}

// Value is an entity value with its synonyms or patterns.
type Value struct {
	Value    string                 `json:"value"              validate:"required"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Type     *string                `json:"type,omitempty"`
	Synonyms []string               `json:"synonyms,omitempty"`
	Patterns []string               `json:"patterns,omitempty"`
	Created  *time.Time             `json:"created,omitempty"`
	Updated  *time.Time             `json:"updated,omitempty"`
}

// Entity is a workspace entity.
type Entity struct {
	Entity      string                 `json:"entity"                validate:"required"`
	Description *string                `json:"description,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	FuzzyMatch  *bool                  `json:"fuzzy_match,omitempty"`
	Created     *time.Time             `json:"created,omitempty"`
	Updated     *time.Time             `json:"updated,omitempty"`
	Values      []Value                `json:"values,omitempty"`
}

// Counterexample is input the workspace should not match to any intent.
type Counterexample struct {
	Text string `json:"text" validate:"required"`
}

// Workspace is an Assistant V1 workspace.
type Workspace struct {
	Name            string                 `json:"name"                       validate:"required"`
	Description     *string                `json:"description,omitempty"`
	Language        string                 `json:"language"                   validate:"required"`
	WorkspaceID     string                 `json:"workspace_id"               validate:"required"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	LearningOptOut  bool                   `json:"learning_opt_out"`
	SystemSettings  map[string]interface{} `json:"system_settings,omitempty"`
	Status          *string                `json:"status,omitempty"`
	Created         *time.Time             `json:"created,omitempty"`
	Updated         *time.Time             `json:"updated,omitempty"`
	Intents         []Intent               `json:"intents,omitempty"`
	Entities        []Entity               `json:"entities,omitempty"`
	Counterexamples []Counterexample       `json:"counterexamples,omitempty"`
}

// WorkspaceCollection is the response of ListWorkspaces.
type WorkspaceCollection struct {
	Workspaces []Workspace `json:"workspaces" validate:"required"`
	Pagination Pagination  `json:"pagination"`
}

// IntentCollection is the response of ListIntents.
type IntentCollection struct {
	Intents    []Intent   `json:"intents"    validate:"required"`
	Pagination Pagination `json:"pagination"`
}

// EntityCollection is the response of ListEntities.
type EntityCollection struct {
	Entities   []Entity   `json:"entities"   validate:"required"`
	Pagination Pagination `json:"pagination"`
}

// ExampleCollection is the response of ListExamples.
type ExampleCollection struct {
	Examples   []Example  `json:"examples"   validate:"required"`
	Pagination Pagination `json:"pagination"`
}
