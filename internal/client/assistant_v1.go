package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	assistant "github.com/fivetwenty-io/watson/pkg/services/assistantv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// AssistantV1 implements assistant.Client.
type AssistantV1 struct {
	*service
}

// NewAssistantV1 creates an Assistant V1 client.
func NewAssistantV1(config *watson.Config) (*AssistantV1, error) {
	svc, err := newService(config, serviceInfo{name: "conversation", version: "V1", versioned: true})
	if err != nil {
		return nil, err
	}

	return &AssistantV1{service: svc}, nil
}

// assistantListParams is the query of the V1 list and get operations.
type assistantListParams struct {
	Export       *bool   `schema:"export,omitempty"`
	Append       *bool   `schema:"append,omitempty"`
	PageLimit    *int64  `schema:"page_limit,omitempty"`
	IncludeCount *bool   `schema:"include_count,omitempty"`
	Sort         *string `schema:"sort,omitempty"`
	Cursor       *string `schema:"cursor,omitempty"`
	IncludeAudit *bool   `schema:"include_audit,omitempty"`
}

func listParams(export *bool, list assistant.ListOptions) assistantListParams {
	return assistantListParams{
		Export:       export,
		PageLimit:    list.PageLimit,
		IncludeCount: list.IncludeCount,
		Sort:         list.Sort,
		Cursor:       list.Cursor,
		IncludeAudit: list.IncludeAudit,
	}
}

func workspacePath(workspaceID string, segments ...string) string {
	return internalhttp.PathJoin(append([]string{"v1", "workspaces", workspaceID}, segments...)...)
}

// Message sends user input to a workspace.
func (c *AssistantV1) Message(ctx context.Context, options *assistant.MessageOptions) (*assistant.MessageResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("sending message: %w", err)
	}

	req := c.newRequest(http.MethodPost, workspacePath(options.WorkspaceID, "message"), "message", options.Headers)
	req.Params = struct {
		NodesVisitedDetails *bool `schema:"nodes_visited_details,omitempty"`
	}{options.NodesVisitedDetails}
	req.Body = options

	var result assistant.MessageResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("sending message to workspace %s: %w", options.WorkspaceID, err)
	}

	return &result, resp, nil
}

// ListWorkspaces lists the workspaces of the instance.
func (c *AssistantV1) ListWorkspaces(ctx context.Context, options *assistant.ListWorkspacesOptions) (*assistant.WorkspaceCollection, *watson.DetailedResponse, error) {
	if options == nil {
		options = &assistant.ListWorkspacesOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/workspaces", "list_workspaces", options.Headers)
	req.Params = listParams(nil, options.ListOptions)

	var result assistant.WorkspaceCollection

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing workspaces: %w", err)
	}

	return &result, resp, nil
}

// CreateWorkspace creates a workspace.
func (c *AssistantV1) CreateWorkspace(ctx context.Context, options *assistant.CreateWorkspaceOptions) (*assistant.Workspace, *watson.DetailedResponse, error) {
	if options == nil {
		options = &assistant.CreateWorkspaceOptions{}
	}

	req := c.newRequest(http.MethodPost, "/v1/workspaces", "create_workspace", options.Headers)
	req.Params = assistantListParams{IncludeAudit: options.IncludeAudit}
	req.Body = options.WorkspaceContent

	var result assistant.Workspace

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating workspace: %w", err)
	}

	return &result, resp, nil
}

// GetWorkspace returns one workspace.
func (c *AssistantV1) GetWorkspace(ctx context.Context, options *assistant.GetWorkspaceOptions) (*assistant.Workspace, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting workspace: %w", err)
	}

	req := c.newRequest(http.MethodGet, workspacePath(options.WorkspaceID), "get_workspace", options.Headers)
	req.Params = assistantListParams{Export: options.Export, IncludeAudit: options.IncludeAudit, Sort: options.Sort}

	var result assistant.Workspace

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting workspace %s: %w", options.WorkspaceID, err)
	}

	return &result, resp, nil
}

// UpdateWorkspace updates a workspace.
func (c *AssistantV1) UpdateWorkspace(ctx context.Context, options *assistant.UpdateWorkspaceOptions) (*assistant.Workspace, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("updating workspace: %w", err)
	}

	req := c.newRequest(http.MethodPost, workspacePath(options.WorkspaceID), "update_workspace", options.Headers)
	req.Params = assistantListParams{Append: options.Append, IncludeAudit: options.IncludeAudit}
	req.Body = options.WorkspaceContent

	var result assistant.Workspace

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("updating workspace %s: %w", options.WorkspaceID, err)
	}

	return &result, resp, nil
}

// DeleteWorkspace deletes a workspace.
func (c *AssistantV1) DeleteWorkspace(ctx context.Context, options *assistant.DeleteWorkspaceOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting workspace: %w", err)
	}

	req := c.newRequest(http.MethodDelete, workspacePath(options.WorkspaceID), "delete_workspace", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting workspace %s: %w", options.WorkspaceID, err)
	}

	return resp, nil
}

// ListIntents lists the intents of a workspace.
func (c *AssistantV1) ListIntents(ctx context.Context, options *assistant.ListIntentsOptions) (*assistant.IntentCollection, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("listing intents: %w", err)
	}

	req := c.newRequest(http.MethodGet, workspacePath(options.WorkspaceID, "intents"), "list_intents", options.Headers)
	req.Params = listParams(options.Export, options.ListOptions)

	var result assistant.IntentCollection

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing intents of workspace %s: %w", options.WorkspaceID, err)
	}

	return &result, resp, nil
}

// CreateIntent creates an intent.
func (c *AssistantV1) CreateIntent(ctx context.Context, options *assistant.CreateIntentOptions) (*assistant.Intent, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating intent: %w", err)
	}

	req := c.newRequest(http.MethodPost, workspacePath(options.WorkspaceID, "intents"), "create_intent", options.Headers)
	req.Params = assistantListParams{IncludeAudit: options.IncludeAudit}
	req.Body = options

	var result assistant.Intent

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating intent %s: %w", options.Intent, err)
	}

	return &result, resp, nil
}

// GetIntent returns one intent.
func (c *AssistantV1) GetIntent(ctx context.Context, options *assistant.GetIntentOptions) (*assistant.Intent, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting intent: %w", err)
	}

	req := c.newRequest(http.MethodGet, workspacePath(options.WorkspaceID, "intents", options.Intent), "get_intent", options.Headers)
	req.Params = assistantListParams{Export: options.Export, IncludeAudit: options.IncludeAudit}

	var result assistant.Intent

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting intent %s: %w", options.Intent, err)
	}

	return &result, resp, nil
}

// UpdateIntent updates an intent.
func (c *AssistantV1) UpdateIntent(ctx context.Context, options *assistant.UpdateIntentOptions) (*assistant.Intent, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("updating intent: %w", err)
	}

	req := c.newRequest(http.MethodPost, workspacePath(options.WorkspaceID, "intents", options.Intent), "update_intent", options.Headers)
	req.Params = assistantListParams{IncludeAudit: options.IncludeAudit}
	req.Body = options

	var result assistant.Intent

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("updating intent %s: %w", options.Intent, err)
	}

	return &result, resp, nil
}

// DeleteIntent deletes an intent.
func (c *AssistantV1) DeleteIntent(ctx context.Context, options *assistant.DeleteIntentOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting intent: %w", err)
	}

	req := c.newRequest(http.MethodDelete, workspacePath(options.WorkspaceID, "intents", options.Intent), "delete_intent", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting intent %s: %w", options.Intent, err)
	}

	return resp, nil
}

// ListEntities lists the entities of a workspace.
func (c *AssistantV1) ListEntities(ctx context.Context, options *assistant.ListEntitiesOptions) (*assistant.EntityCollection, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("listing entities: %w", err)
	}

	req := c.newRequest(http.MethodGet, workspacePath(options.WorkspaceID, "entities"), "list_entities", options.Headers)
	req.Params = listParams(options.Export, options.ListOptions)

	var result assistant.EntityCollection

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing entities of workspace %s: %w", options.WorkspaceID, err)
	}

	return &result, resp, nil
}

// CreateEntity creates an entity.
func (c *AssistantV1) CreateEntity(ctx context.Context, options *assistant.CreateEntityOptions) (*assistant.Entity, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating entity: %w", err)
	}

	req := c.newRequest(http.MethodPost, workspacePath(options.WorkspaceID, "entities"), "create_entity", options.Headers)
	req.Params = assistantListParams{IncludeAudit: options.IncludeAudit}
	req.Body = options

	var result assistant.Entity

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating entity %s: %w", options.Entity, err)
	}

	return &result, resp, nil
}

// GetEntity returns one entity.
func (c *AssistantV1) GetEntity(ctx context.Context, options *assistant.GetEntityOptions) (*assistant.Entity, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting entity: %w", err)
	}

	req := c.newRequest(http.MethodGet, workspacePath(options.WorkspaceID, "entities", options.Entity), "get_entity", options.Headers)
	req.Params = assistantListParams{Export: options.Export, IncludeAudit: options.IncludeAudit}

	var result assistant.Entity

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting entity %s: %w", options.Entity, err)
	}

	return &result, resp, nil
}

// UpdateEntity updates an entity.
func (c *AssistantV1) UpdateEntity(ctx context.Context, options *assistant.UpdateEntityOptions) (*assistant.Entity, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("updating entity: %w", err)
	}

	req := c.newRequest(http.MethodPost, workspacePath(options.WorkspaceID, "entities", options.Entity), "update_entity", options.Headers)
	req.Params = assistantListParams{IncludeAudit: options.IncludeAudit}
	req.Body = options

	var result assistant.Entity

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("updating entity %s: %w", options.Entity, err)
	}

	return &result, resp, nil
}

// DeleteEntity deletes an entity.
func (c *AssistantV1) DeleteEntity(ctx context.Context, options *assistant.DeleteEntityOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting entity: %w", err)
	}

	req := c.newRequest(http.MethodDelete, workspacePath(options.WorkspaceID, "entities", options.Entity), "delete_entity", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting entity %s: %w", options.Entity, err)
	}

	return resp, nil
}

// ListExamples lists the examples of an intent.
func (c *AssistantV1) ListExamples(ctx context.Context, options *assistant.ListExamplesOptions) (*assistant.ExampleCollection, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("listing examples: %w", err)
	}

	req := c.newRequest(http.MethodGet, workspacePath(options.WorkspaceID, "intents", options.Intent, "examples"), "list_examples", options.Headers)
	req.Params = listParams(nil, options.ListOptions)

	var result assistant.ExampleCollection

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing examples of intent %s: %w", options.Intent, err)
	}

	return &result, resp, nil
}

// CreateExample adds a training example to an intent.
func (c *AssistantV1) CreateExample(ctx context.Context, options *assistant.CreateExampleOptions) (*assistant.Example, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating example: %w", err)
	}

	req := c.newRequest(http.MethodPost, workspacePath(options.WorkspaceID, "intents", options.Intent, "examples"), "create_example", options.Headers)
	req.Params = assistantListParams{IncludeAudit: options.IncludeAudit}
	req.Body = options

	var result assistant.Example

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating example for intent %s: %w", options.Intent, err)
	}

	return &result, resp, nil
}

// DeleteExample removes a training example from an intent.
func (c *AssistantV1) DeleteExample(ctx context.Context, options *assistant.DeleteExampleOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting example: %w", err)
	}

	path := workspacePath(options.WorkspaceID, "intents", options.Intent, "examples", options.Text)
	req := c.newRequest(http.MethodDelete, path, "delete_example", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting example from intent %s: %w", options.Intent, err)
	}

	return resp, nil
}

// DeleteUserData deletes all data associated with a customer ID.
func (c *AssistantV1) DeleteUserData(ctx context.Context, options *assistant.DeleteUserDataOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting user data: %w", err)
	}

	req := c.newRequest(http.MethodDelete, "/v1/user_data", "delete_user_data", options.Headers)
	req.Params = customerIDParams{CustomerID: options.CustomerID}

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting user data: %w", err)
	}

	return resp, nil
}

// customerIDParams is the query of the DeleteUserData operations.
type customerIDParams struct {
	CustomerID string `schema:"customer_id"`
}

var _ assistant.Client = (*AssistantV1)(nil)
