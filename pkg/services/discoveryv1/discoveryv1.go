// Package discoveryv1 defines the Discovery V1 service: environments,
// collections, document ingestion and query.
package discoveryv1

import (
	"context"
	"io"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.DiscoveryServiceName
	DefaultServiceURL  = constants.DiscoveryURL
)

// Client is the Discovery V1 API.
type Client interface {
	CreateEnvironment(ctx context.Context, options *CreateEnvironmentOptions) (*Environment, *watson.DetailedResponse, error)
	ListEnvironments(ctx context.Context, options *ListEnvironmentsOptions) (*ListEnvironmentsResponse, *watson.DetailedResponse, error)
	GetEnvironment(ctx context.Context, options *GetEnvironmentOptions) (*Environment, *watson.DetailedResponse, error)
	DeleteEnvironment(ctx context.Context, options *DeleteEnvironmentOptions) (*DeleteEnvironmentResponse, *watson.DetailedResponse, error)

	CreateCollection(ctx context.Context, options *CreateCollectionOptions) (*Collection, *watson.DetailedResponse, error)
	ListCollections(ctx context.Context, options *ListCollectionsOptions) (*ListCollectionsResponse, *watson.DetailedResponse, error)
	GetCollection(ctx context.Context, options *GetCollectionOptions) (*Collection, *watson.DetailedResponse, error)
	DeleteCollection(ctx context.Context, options *DeleteCollectionOptions) (*DeleteCollectionResponse, *watson.DetailedResponse, error)

	// AddDocument ingests a file, a metadata document or both.
	AddDocument(ctx context.Context, options *AddDocumentOptions) (*DocumentAccepted, *watson.DetailedResponse, error)
	GetDocumentStatus(ctx context.Context, options *GetDocumentStatusOptions) (*DocumentStatus, *watson.DetailedResponse, error)
	DeleteDocument(ctx context.Context, options *DeleteDocumentOptions) (*DeleteDocumentResponse, *watson.DetailedResponse, error)

	Query(ctx context.Context, options *QueryOptions) (*QueryResponse, *watson.DetailedResponse, error)

	ServiceURL() string
}

// Environment sizes.
const (
	EnvironmentSizeLT  = "LT"
	EnvironmentSizeXS  = "XS"
	EnvironmentSizeS   = "S"
	EnvironmentSizeMS  = "MS"
	EnvironmentSizeM   = "M"
	EnvironmentSizeML  = "ML"
	EnvironmentSizeL   = "L"
	EnvironmentSizeXL  = "XL"
	EnvironmentSizeXXL = "XXL"
)

// CreateEnvironmentOptions are the parameters of CreateEnvironment.
type CreateEnvironmentOptions struct {
	Name        string  `json:"name"                  validate:"required"`
	Description *string `json:"description,omitempty"`
	Size        *string `json:"size,omitempty"`

	Headers map[string]string `json:"-"`
}

// ListEnvironmentsOptions are the parameters of ListEnvironments.
type ListEnvironmentsOptions struct {
	Name *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetEnvironmentOptions are the parameters of GetEnvironment.
type GetEnvironmentOptions struct {
	EnvironmentID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteEnvironmentOptions are the parameters of DeleteEnvironment.
type DeleteEnvironmentOptions struct {
	EnvironmentID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// CreateCollectionOptions are the parameters of CreateCollection.
type CreateCollectionOptions struct {
	EnvironmentID   string  `json:"-"                          validate:"required"`
	Name            string  `json:"name"                       validate:"required"`
	Description     *string `json:"description,omitempty"`
	ConfigurationID *string `json:"configuration_id,omitempty"`
	Language        *string `json:"language,omitempty"`

	Headers map[string]string `json:"-"`
}

// ListCollectionsOptions are the parameters of ListCollections.
type ListCollectionsOptions struct {
	EnvironmentID string  `json:"-" validate:"required"`
	Name          *string `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetCollectionOptions are the parameters of GetCollection.
type GetCollectionOptions struct {
	EnvironmentID string `json:"-" validate:"required"`
	CollectionID  string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteCollectionOptions are the parameters of DeleteCollection.
type DeleteCollectionOptions struct {
	EnvironmentID string `json:"-" validate:"required"`
	CollectionID  string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// AddDocumentOptions are the parameters of AddDocument. File, Metadata or
// both must be set.
type AddDocumentOptions struct {
	EnvironmentID   string                 `json:"-" validate:"required"`
	CollectionID    string                 `json:"-" validate:"required"`
	File            io.Reader              `json:"-"`
	Filename        *string                `json:"-"`
	FileContentType *string                `json:"-"`
	Metadata        map[string]interface{} `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetDocumentStatusOptions are the parameters of GetDocumentStatus.
type GetDocumentStatusOptions struct {
	EnvironmentID string `json:"-" validate:"required"`
	CollectionID  string `json:"-" validate:"required"`
	DocumentID    string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteDocumentOptions are the parameters of DeleteDocument.
type DeleteDocumentOptions struct {
	EnvironmentID string `json:"-" validate:"required"`
	CollectionID  string `json:"-" validate:"required"`
	DocumentID    string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// QueryOptions are the parameters of Query. Filter, Query and Aggregation use
// the Discovery query language; NaturalLanguageQuery takes free text.
type QueryOptions struct {
	EnvironmentID        string   `json:"-" validate:"required"`
	CollectionID         string   `json:"-" validate:"required"`
	Filter               *string  `json:"-"`
	Query                *string  `json:"-"`
	NaturalLanguageQuery *string  `json:"-"`
	Aggregation          *string  `json:"-"`
	Count                *int64   `json:"-"`
	Return               []string `json:"-"`
	Offset               *int64   `json:"-"`
	Sort                 []string `json:"-"`
	Highlight            *bool    `json:"-"`
	Passages             *bool    `json:"-"`
	PassagesFields       []string `json:"-"`
	PassagesCount        *int64   `json:"-"`
	PassagesCharacters   *int64   `json:"-"`
	Deduplicate          *bool    `json:"-"`
	DeduplicateField     *string  `json:"-"`
	Similar              *bool    `json:"-"`
	SimilarDocumentIDs   []string `json:"-"`
	SimilarFields        []string `json:"-"`
	// LoggingOptOut asks the service not to log the query.
	LoggingOptOut *bool `json:"-"`

	Headers map[string]string `json:"-"`
}
