package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	discovery "github.com/fivetwenty-io/watson/pkg/services/discoveryv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// DiscoveryV1 implements discovery.Client.
type DiscoveryV1 struct {
	*service
}

// NewDiscoveryV1 creates a Discovery V1 client.
func NewDiscoveryV1(config *watson.Config) (*DiscoveryV1, error) {
	svc, err := newService(config, serviceInfo{name: "discovery", version: "V1", versioned: true})
	if err != nil {
		return nil, err
	}

	return &DiscoveryV1{service: svc}, nil
}

func environmentPath(environmentID string, segments ...string) string {
	return internalhttp.PathJoin(append([]string{"v1", "environments", environmentID}, segments...)...)
}

func collectionPath(environmentID, collectionID string, segments ...string) string {
	return environmentPath(environmentID, append([]string{"collections", collectionID}, segments...)...)
}

// joinValues returns values comma-joined, or nil when there are none.
func joinValues(values []string) *string {
	if len(values) == 0 {
		return nil
	}

	return watson.String(strings.Join(values, ","))
}

type nameParams struct {
	Name *string `schema:"name,omitempty"`
}

// CreateEnvironment creates an environment.
func (c *DiscoveryV1) CreateEnvironment(ctx context.Context, options *discovery.CreateEnvironmentOptions) (*discovery.Environment, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating environment: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/environments", "create_environment", options.Headers)
	req.Body = options

	var result discovery.Environment

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating environment: %w", err)
	}

	return &result, resp, nil
}

// ListEnvironments lists environments, optionally filtered by name.
func (c *DiscoveryV1) ListEnvironments(ctx context.Context, options *discovery.ListEnvironmentsOptions) (*discovery.ListEnvironmentsResponse, *watson.DetailedResponse, error) {
	if options == nil {
		options = &discovery.ListEnvironmentsOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/environments", "list_environments", options.Headers)
	req.Params = nameParams{Name: options.Name}

	var result discovery.ListEnvironmentsResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing environments: %w", err)
	}

	return &result, resp, nil
}

// GetEnvironment gets an environment.
func (c *DiscoveryV1) GetEnvironment(ctx context.Context, options *discovery.GetEnvironmentOptions) (*discovery.Environment, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting environment: %w", err)
	}

	req := c.newRequest(http.MethodGet, environmentPath(options.EnvironmentID), "get_environment", options.Headers)

	var result discovery.Environment

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting environment %s: %w", options.EnvironmentID, err)
	}

	return &result, resp, nil
}

// DeleteEnvironment deletes an environment and everything in it.
func (c *DiscoveryV1) DeleteEnvironment(ctx context.Context, options *discovery.DeleteEnvironmentOptions) (*discovery.DeleteEnvironmentResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("deleting environment: %w", err)
	}

	req := c.newRequest(http.MethodDelete, environmentPath(options.EnvironmentID), "delete_environment", options.Headers)

	var result discovery.DeleteEnvironmentResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("deleting environment %s: %w", options.EnvironmentID, err)
	}

	return &result, resp, nil
}

// CreateCollection creates a collection in an environment.
func (c *DiscoveryV1) CreateCollection(ctx context.Context, options *discovery.CreateCollectionOptions) (*discovery.Collection, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating collection: %w", err)
	}

	req := c.newRequest(http.MethodPost, environmentPath(options.EnvironmentID, "collections"), "create_collection", options.Headers)
	req.Body = options

	var result discovery.Collection

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating collection: %w", err)
	}

	return &result, resp, nil
}

// ListCollections lists the collections of an environment.
func (c *DiscoveryV1) ListCollections(ctx context.Context, options *discovery.ListCollectionsOptions) (*discovery.ListCollectionsResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("listing collections: %w", err)
	}

	req := c.newRequest(http.MethodGet, environmentPath(options.EnvironmentID, "collections"), "list_collections", options.Headers)
	req.Params = nameParams{Name: options.Name}

	var result discovery.ListCollectionsResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing collections: %w", err)
	}

	return &result, resp, nil
}

// GetCollection gets a collection.
func (c *DiscoveryV1) GetCollection(ctx context.Context, options *discovery.GetCollectionOptions) (*discovery.Collection, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting collection: %w", err)
	}

	req := c.newRequest(http.MethodGet, collectionPath(options.EnvironmentID, options.CollectionID), "get_collection", options.Headers)

	var result discovery.Collection

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting collection %s: %w", options.CollectionID, err)
	}

	return &result, resp, nil
}

// DeleteCollection deletes a collection and its documents.
func (c *DiscoveryV1) DeleteCollection(ctx context.Context, options *discovery.DeleteCollectionOptions) (*discovery.DeleteCollectionResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("deleting collection: %w", err)
	}

	req := c.newRequest(http.MethodDelete, collectionPath(options.EnvironmentID, options.CollectionID), "delete_collection", options.Headers)

	var result discovery.DeleteCollectionResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("deleting collection %s: %w", options.CollectionID, err)
	}

	return &result, resp, nil
}

// AddDocument uploads a document for ingestion.
func (c *DiscoveryV1) AddDocument(ctx context.Context, options *discovery.AddDocumentOptions) (*discovery.DocumentAccepted, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("adding document: %w", err)
	}

	if options.File == nil && options.Metadata == nil {
		return nil, nil, fmt.Errorf("adding document: %w: file or metadata", watson.ErrMissingParameter)
	}

	req := c.newRequest(http.MethodPost, collectionPath(options.EnvironmentID, options.CollectionID, "documents"), "add_document", options.Headers)

	if options.File != nil {
		req.Form = append(req.Form, filePart("file", options.File, watson.StringValue(options.Filename), options.FileContentType))
	}

	if options.Metadata != nil {
		metadata, err := watson.MarshalModel(options.Metadata)
		if err != nil {
			return nil, nil, fmt.Errorf("adding document: %w", err)
		}

		addFormValue(req, "metadata", watson.String(string(metadata)))
	}

	var result discovery.DocumentAccepted

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("adding document: %w", err)
	}

	return &result, resp, nil
}

// GetDocumentStatus returns the ingestion state of a document.
func (c *DiscoveryV1) GetDocumentStatus(ctx context.Context, options *discovery.GetDocumentStatusOptions) (*discovery.DocumentStatus, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting document status: %w", err)
	}

	path := collectionPath(options.EnvironmentID, options.CollectionID, "documents", options.DocumentID)
	req := c.newRequest(http.MethodGet, path, "get_document_status", options.Headers)

	var result discovery.DocumentStatus

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting document status %s: %w", options.DocumentID, err)
	}

	return &result, resp, nil
}

// DeleteDocument removes a document from a collection.
func (c *DiscoveryV1) DeleteDocument(ctx context.Context, options *discovery.DeleteDocumentOptions) (*discovery.DeleteDocumentResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("deleting document: %w", err)
	}

	path := collectionPath(options.EnvironmentID, options.CollectionID, "documents", options.DocumentID)
	req := c.newRequest(http.MethodDelete, path, "delete_document", options.Headers)

	var result discovery.DeleteDocumentResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("deleting document %s: %w", options.DocumentID, err)
	}

	return &result, resp, nil
}

// queryBody is the JSON form of a query. List parameters are comma-joined.
type queryBody struct {
	Filter               *string `json:"filter,omitempty"`
	Query                *string `json:"query,omitempty"`
	NaturalLanguageQuery *string `json:"natural_language_query,omitempty"`
	Aggregation          *string `json:"aggregation,omitempty"`
	Count                *int64  `json:"count,omitempty"`
	Return               *string `json:"return,omitempty"`
	Offset               *int64  `json:"offset,omitempty"`
	Sort                 *string `json:"sort,omitempty"`
	Highlight            *bool   `json:"highlight,omitempty"`
	Passages             *bool   `json:"passages,omitempty"`
	PassagesFields       *string `json:"passages.fields,omitempty"`
	PassagesCount        *int64  `json:"passages.count,omitempty"`
	PassagesCharacters   *int64  `json:"passages.characters,omitempty"`
	Deduplicate          *bool   `json:"deduplicate,omitempty"`
	DeduplicateField     *string `json:"deduplicate.field,omitempty"`
	Similar              *bool   `json:"similar,omitempty"`
	SimilarDocumentIDs   *string `json:"similar.document_ids,omitempty"`
	SimilarFields        *string `json:"similar.fields,omitempty"`
}

// Query searches a collection.
func (c *DiscoveryV1) Query(ctx context.Context, options *discovery.QueryOptions) (*discovery.QueryResponse, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("querying collection: %w", err)
	}

	req := c.newRequest(http.MethodPost, collectionPath(options.EnvironmentID, options.CollectionID, "query"), "query", options.Headers)

	if options.LoggingOptOut != nil {
		req.Headers[constants.HeaderLoggingOptOut] = strconv.FormatBool(*options.LoggingOptOut)
	}

	req.Body = queryBody{
		Filter:               options.Filter,
		Query:                options.Query,
		NaturalLanguageQuery: options.NaturalLanguageQuery,
		Aggregation:          options.Aggregation,
		Count:                options.Count,
		Return:               joinValues(options.Return),
		Offset:               options.Offset,
		Sort:                 joinValues(options.Sort),
		Highlight:            options.Highlight,
		Passages:             options.Passages,
		PassagesFields:       joinValues(options.PassagesFields),
		PassagesCount:        options.PassagesCount,
		PassagesCharacters:   options.PassagesCharacters,
		Deduplicate:          options.Deduplicate,
		DeduplicateField:     options.DeduplicateField,
		Similar:              options.Similar,
		SimilarDocumentIDs:   joinValues(options.SimilarDocumentIDs),
		SimilarFields:        joinValues(options.SimilarFields),
	}

	var result discovery.QueryResponse

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("querying collection %s: %w", options.CollectionID, err)
	}

	return &result, resp, nil
}

var _ discovery.Client = (*DiscoveryV1)(nil)
