// Package assistantv1 defines the Watson Assistant V1 service: dialog
// messages and workspace, intent, entity and example management.
package assistantv1

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

// Client is the Assistant V1 API.
type Client interface {
	// Message sends user input to a workspace and returns the dialog response.
	Message(ctx context.Context, options *MessageOptions) (*MessageResponse, *watson.DetailedResponse, error)

	ListWorkspaces(ctx context.Context, options *ListWorkspacesOptions) (*WorkspaceCollection, *watson.DetailedResponse, error)
	CreateWorkspace(ctx context.Context, options *CreateWorkspaceOptions) (*Workspace, *watson.DetailedResponse, error)
	GetWorkspace(ctx context.Context, options *GetWorkspaceOptions) (*Workspace, *watson.DetailedResponse, error)
	UpdateWorkspace(ctx context.Context, options *UpdateWorkspaceOptions) (*Workspace, *watson.DetailedResponse, error)
	DeleteWorkspace(ctx context.Context, options *DeleteWorkspaceOptions) (*watson.DetailedResponse, error)

	ListIntents(ctx context.Context, options *ListIntentsOptions) (*IntentCollection, *watson.DetailedResponse, error)
	CreateIntent(ctx context.Context, options *CreateIntentOptions) (*Intent, *watson.DetailedResponse, error)
	GetIntent(ctx context.Context, options *GetIntentOptions) (*Intent, *watson.DetailedResponse, error)
	UpdateIntent(ctx context.Context, options *UpdateIntentOptions) (*Intent, *watson.DetailedResponse, error)
	DeleteIntent(ctx context.Context, options *DeleteIntentOptions) (*watson.DetailedResponse, error)

	ListEntities(ctx context.Context, options *ListEntitiesOptions) (*EntityCollection, *watson.DetailedResponse, error)
	CreateEntity(ctx context.Context, options *CreateEntityOptions) (*Entity, *watson.DetailedResponse, error)
	GetEntity(ctx context.Context, options *GetEntityOptions) (*Entity, *watson.DetailedResponse, error)
	UpdateEntity(ctx context.Context, options *UpdateEntityOptions) (*Entity, *watson.DetailedResponse, error)
	DeleteEntity(ctx context.Context, options *DeleteEntityOptions) (*watson.DetailedResponse, error)

	ListExamples(ctx context.Context, options *ListExamplesOptions) (*ExampleCollection, *watson.DetailedResponse, error)
	CreateExample(ctx context.Context, options *CreateExampleOptions) (*Example, *watson.DetailedResponse, error)
	DeleteExample(ctx context.Context, options *DeleteExampleOptions) (*watson.DetailedResponse, error)

	// DeleteUserData deletes all data associated with a customer ID.
	DeleteUserData(ctx context.Context, options *DeleteUserDataOptions) (*watson.DetailedResponse, error)

	ServiceURL() string
}
