package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	assistant "github.com/fivetwenty-io/watson/pkg/services/assistantv2"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// AssistantV2 implements assistant.Client.
type AssistantV2 struct {
	*service
}

// NewAssistantV2 creates an Assistant V2 client.
func NewAssistantV2(config *watson.Config) (*AssistantV2, error) {
	svc, err := newService(config, serviceInfo{name: "conversation", version: "V2", versioned: true})
	if err != nil {
		return nil, err
	}

	return &AssistantV2{service: svc}, nil
}

// CreateSession starts a session with an assistant.
func (c *AssistantV2) CreateSession(ctx context.Context, options *assistant.CreateSessionOptions) (*assistant.SessionResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	path := internalhttp.PathJoin("v2", "assistants", options.AssistantID, "sessions")
	req := c.newRequest(http.MethodPost, path, "create_session", options.Headers)

	var result assistant.SessionResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating session for assistant %s: %w", options.AssistantID, err)
	}

	return &result, resp, nil
}

// DeleteSession ends a session.
func (c *AssistantV2) DeleteSession(ctx context.Context, options *assistant.DeleteSessionOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting session: %w", err)
	}

	path := internalhttp.PathJoin("v2", "assistants", options.AssistantID, "sessions", options.SessionID)
	req := c.newRequest(http.MethodDelete, path, "delete_session", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting session %s: %w", options.SessionID, err)
	}

	return resp, nil
}

// Message sends user input within a session.
func (c *AssistantV2) Message(ctx context.Context, options *assistant.MessageOptions) (*assistant.MessageResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("sending message: %w", err)
	}

	path := internalhttp.PathJoin("v2", "assistants", options.AssistantID, "sessions", options.SessionID, "message")
	req := c.newRequest(http.MethodPost, path, "message", options.Headers)
	req.Body = options

	var result assistant.MessageResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("sending message to session %s: %w", options.SessionID, err)
	}

	return &result, resp, nil
}

var _ assistant.Client = (*AssistantV2)(nil)
