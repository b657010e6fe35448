package assistantv1

// ListOptions are the paging parameters shared by the list operations.
type ListOptions struct {
	PageLimit    *int64  `json:"-"`
	IncludeCount *bool   `json:"-"`
	Sort         *string `json:"-"`
	Cursor       *string `json:"-"`
	IncludeAudit *bool   `json:"-"`
}

// MessageOptions are the parameters of Message. The JSON-tagged fields form
// the request body.
type MessageOptions struct {
	WorkspaceID string `json:"-" validate:"required"`

	Input            *MessageInput   `json:"input,omitempty"`
	Intents          []RuntimeIntent `json:"intents,omitempty"`
	Entities         []RuntimeEntity `json:"entities,omitempty"`
	AlternateIntents *bool           `json:"alternate_intents,omitempty"`
	Context          *Context        `json:"context,omitempty"`
	Output           *OutputData     `json:"output,omitempty"`

	NodesVisitedDetails *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// ListWorkspacesOptions are the parameters of ListWorkspaces.
type ListWorkspacesOptions struct {
	ListOptions

	Headers map[string]string `json:"-"`
}

// WorkspaceContent is the body of CreateWorkspace and UpdateWorkspace.
type WorkspaceContent struct {
	Name            *string                `json:"name,omitempty"`
	Description     *string                `json:"description,omitempty"`
	Language        *string                `json:"language,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	LearningOptOut  *bool                  `json:"learning_opt_out,omitempty"`
	SystemSettings  map[string]interface{} `json:"system_settings,omitempty"`
	Intents         []Intent               `json:"intents,omitempty"`
	Entities        []Entity               `json:"entities,omitempty"`
	Counterexamples []Counterexample       `json:"counterexamples,omitempty"`
}

// CreateWorkspaceOptions are the parameters of CreateWorkspace.
type CreateWorkspaceOptions struct {
	WorkspaceContent

	IncludeAudit *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetWorkspaceOptions are the parameters of GetWorkspace. Export includes
// intents, entities and dialog content.
type GetWorkspaceOptions struct {
	WorkspaceID  string  `json:"-" validate:"required"`
	Export       *bool   `json:"-"`
	IncludeAudit *bool   `json:"-"`
	Sort         *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// UpdateWorkspaceOptions are the parameters of UpdateWorkspace. With Append
// set, new content is added instead of replacing existing content.
type UpdateWorkspaceOptions struct {
	WorkspaceID string `json:"-" validate:"required"`

	WorkspaceContent

	Append       *bool `json:"-"`
	IncludeAudit *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// DeleteWorkspaceOptions are the parameters of DeleteWorkspace.
type DeleteWorkspaceOptions struct {
	WorkspaceID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListIntentsOptions are the parameters of ListIntents.
type ListIntentsOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Export      *bool  `json:"-"`

	ListOptions

	Headers map[string]string `json:"-"`
}

// CreateIntentOptions are the parameters of CreateIntent.
type CreateIntentOptions struct {
	WorkspaceID string `json:"-" validate:"required"`

	Intent      string    `json:"intent"                validate:"required"`
	Description *string   `json:"description,omitempty"`
	Examples    []Example `json:"examples,omitempty"`

	IncludeAudit *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetIntentOptions are the parameters of GetIntent.
type GetIntentOptions struct {
	WorkspaceID  string `json:"-" validate:"required"`
	Intent       string `json:"-" validate:"required"`
	Export       *bool  `json:"-"`
	IncludeAudit *bool  `json:"-"`

	Headers map[string]string `json:"-"`
}

// UpdateIntentOptions are the parameters of UpdateIntent.
type UpdateIntentOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Intent      string `json:"-" validate:"required"`

	NewIntent      *string   `json:"intent,omitempty"`
	NewDescription *string   `json:"description,omitempty"`
	NewExamples    []Example `json:"examples,omitempty"`

	IncludeAudit *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// DeleteIntentOptions are the parameters of DeleteIntent.
type DeleteIntentOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Intent      string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListEntitiesOptions are the parameters of ListEntities.
type ListEntitiesOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Export      *bool  `json:"-"`

	ListOptions

	Headers map[string]string `json:"-"`
}

// CreateEntityOptions are the parameters of CreateEntity.
type CreateEntityOptions struct {
	WorkspaceID string `json:"-" validate:"required"`

	Entity      string                 `json:"entity"                validate:"required"`
	Description *string                `json:"description,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	FuzzyMatch  *bool                  `json:"fuzzy_match,omitempty"`
	Values      []Value                `json:"values,omitempty"`

	IncludeAudit *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetEntityOptions are the parameters of GetEntity.
type GetEntityOptions struct {
	WorkspaceID  string `json:"-" validate:"required"`
	Entity       string `json:"-" validate:"required"`
	Export       *bool  `json:"-"`
	IncludeAudit *bool  `json:"-"`

	Headers map[string]string `json:"-"`
}

// UpdateEntityOptions are the parameters of UpdateEntity.
type UpdateEntityOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Entity      string `json:"-" validate:"required"`

	NewEntity      *string                `json:"entity,omitempty"`
	NewDescription *string                `json:"description,omitempty"`
	NewMetadata    map[string]interface{} `json:"metadata,omitempty"`
	NewFuzzyMatch  *bool                  `json:"fuzzy_match,omitempty"`
	NewValues      []Value                `json:"values,omitempty"`

	IncludeAudit *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// DeleteEntityOptions are the parameters of DeleteEntity.
type DeleteEntityOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Entity      string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListExamplesOptions are the parameters of ListExamples.
type ListExamplesOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Intent      string `json:"-" validate:"required"`

	ListOptions

	Headers map[string]string `json:"-"`
}

// CreateExampleOptions are the parameters of CreateExample.
type CreateExampleOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Intent      string `json:"-" validate:"required"`

	Text string `json:"text" validate:"required"`

	IncludeAudit *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// DeleteExampleOptions are the parameters of DeleteExample.
type DeleteExampleOptions struct {
	WorkspaceID string `json:"-" validate:"required"`
	Intent      string `json:"-" validate:"required"`
	Text        string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteUserDataOptions are the parameters of DeleteUserData.
type DeleteUserDataOptions struct {
	CustomerID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}
