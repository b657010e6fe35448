package discoveryv1

import (
	"time"

	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Environment status values.
const (
	EnvironmentStatusActive      = "active"
	EnvironmentStatusPending     = "pending"
	EnvironmentStatusMaintenance = "maintenance"
	EnvironmentStatusResizing    = "resizing"
	EnvironmentStatusQuiesced    = "quiesced"
)

// Capacity is a used/maximum pair.
type Capacity struct {
	Available      *int64 `json:"available,omitempty"       yaml:"available,omitempty"`
	MaximumAllowed *int64 `json:"maximum_allowed,omitempty" yaml:"maximum_allowed,omitempty"`
}

// EnvironmentDiskUsage is the disk used by an environment.
type EnvironmentDiskUsage struct {
	UsedBytes           *int64 `json:"used_bytes,omitempty"            yaml:"used_bytes,omitempty"`
	MaximumAllowedBytes *int64 `json:"maximum_allowed_bytes,omitempty" yaml:"maximum_allowed_bytes,omitempty"`
}

// IndexCapacity describes the limits of an environment.
type IndexCapacity struct {
	Documents   *Capacity             `json:"documents,omitempty"   yaml:"documents,omitempty"`
	DiskUsage   *EnvironmentDiskUsage `json:"disk_usage,omitempty"  yaml:"disk_usage,omitempty"`
	Collections *Capacity             `json:"collections,omitempty" yaml:"collections,omitempty"`
}

// Environment is a Discovery environment.
type Environment struct {
	EnvironmentID *string        `json:"environment_id,omitempty" yaml:"environment_id,omitempty"`
	Name          *string        `json:"name,omitempty"           yaml:"name,omitempty"`
	Description   *string        `json:"description,omitempty"    yaml:"description,omitempty"`
	Created       *time.Time     `json:"created,omitempty"        yaml:"created,omitempty"`
	Updated       *time.Time     `json:"updated,omitempty"        yaml:"updated,omitempty"`
	Status        *string        `json:"status,omitempty"         yaml:"status,omitempty"`
	ReadOnly      *bool          `json:"read_only,omitempty"      yaml:"read_only,omitempty"`
	Size          *string        `json:"size,omitempty"           yaml:"size,omitempty"`
	RequestedSize *string        `json:"requested_size,omitempty" yaml:"requested_size,omitempty"`
	IndexCapacity *IndexCapacity `json:"index_capacity,omitempty" yaml:"index_capacity,omitempty"`
}

// ListEnvironmentsResponse is the response of ListEnvironments.
type ListEnvironmentsResponse struct {
	Environments []Environment `json:"environments" yaml:"environments"`
}

// DeleteEnvironmentResponse is the response of DeleteEnvironment.
type DeleteEnvironmentResponse struct {
	EnvironmentID string `json:"environment_id" yaml:"environment_id" validate:"required"`
	Status        string `json:"status"         yaml:"status"         validate:"required"`
}

// DocumentCounts are the document counts of a collection by state.
type DocumentCounts struct {
	Available  *int64 `json:"available,omitempty"  yaml:"available,omitempty"`
	Processing *int64 `json:"processing,omitempty" yaml:"processing,omitempty"`
	Failed     *int64 `json:"failed,omitempty"     yaml:"failed,omitempty"`
	Pending    *int64 `json:"pending,omitempty"    yaml:"pending,omitempty"`
}

// CollectionDiskUsage is the disk used by a collection.
type CollectionDiskUsage struct {
	UsedBytes *int64 `json:"used_bytes,omitempty" yaml:"used_bytes,omitempty"`
}

// Collection is a Discovery collection.
type Collection struct {
	CollectionID    *string              `json:"collection_id,omitempty"    yaml:"collection_id,omitempty"`
	Name            *string              `json:"name,omitempty"             yaml:"name,omitempty"`
	Description     *string              `json:"description,omitempty"      yaml:"description,omitempty"`
	Created         *time.Time           `json:"created,omitempty"          yaml:"created,omitempty"`
	Updated         *time.Time           `json:"updated,omitempty"          yaml:"updated,omitempty"`
	Status          *string              `json:"status,omitempty"           yaml:"status,omitempty"`
	ConfigurationID *string              `json:"configuration_id,omitempty" yaml:"configuration_id,omitempty"`
	Language        *string              `json:"language,omitempty"         yaml:"language,omitempty"`
	DocumentCounts  *DocumentCounts      `json:"document_counts,omitempty"  yaml:"document_counts,omitempty"`
	DiskUsage       *CollectionDiskUsage `json:"disk_usage,omitempty"       yaml:"disk_usage,omitempty"`
}

// ListCollectionsResponse is the response of ListCollections.
type ListCollectionsResponse struct {
	Collections []Collection `json:"collections" yaml:"collections"`
}

// DeleteCollectionResponse is the response of DeleteCollection.
type DeleteCollectionResponse struct {
	CollectionID string `json:"collection_id" yaml:"collection_id" validate:"required"`
	Status       string `json:"status"        yaml:"status"        validate:"required"`
}

// Notice is a warning or error raised while ingesting or querying.
type Notice struct {
	NoticeID    *string    `json:"notice_id,omitempty"   yaml:"notice_id,omitempty"`
	Created     *time.Time `json:"created,omitempty"     yaml:"created,omitempty"`
	DocumentID  *string    `json:"document_id,omitempty" yaml:"document_id,omitempty"`
	QueryID     *string    `json:"query_id,omitempty"    yaml:"query_id,omitempty"`
	Severity    *string    `json:"severity,omitempty"    yaml:"severity,omitempty"`
	Step        *string    `json:"step,omitempty"        yaml:"step,omitempty"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Document status values.
const (
	DocumentStatusAvailable            = "available"
	DocumentStatusAvailableWithNotices = "available with notices"
	DocumentStatusFailed               = "failed"
	DocumentStatusProcessing           = "processing"
	DocumentStatusPending              = "pending"
)

// DocumentAccepted is the response of AddDocument.
type DocumentAccepted struct {
	DocumentID *string  `json:"document_id,omitempty" yaml:"document_id,omitempty"`
	Status     *string  `json:"status,omitempty"      yaml:"status,omitempty"`
	Notices    []Notice `json:"notices,omitempty"     yaml:"notices,omitempty"`
}

// DocumentStatus is the ingestion state of a document.
type DocumentStatus struct {
	DocumentID        string   `json:"document_id"               yaml:"document_id"               validate:"required"`
	ConfigurationID   *string  `json:"configuration_id,omitempty" yaml:"configuration_id,omitempty"`
	Status            string   `json:"status"                    yaml:"status"                    validate:"required"`
	StatusDescription string   `json:"status_description"        yaml:"status_description"`
	Filename          *string  `json:"filename,omitempty"        yaml:"filename,omitempty"`
	FileType          *string  `json:"file_type,omitempty"       yaml:"file_type,omitempty"`
	Sha1              *string  `json:"sha1,omitempty"            yaml:"sha1,omitempty"`
	Notices           []Notice `json:"notices"                   yaml:"notices"`
}

// DeleteDocumentResponse is the response of DeleteDocument.
type DeleteDocumentResponse struct {
	DocumentID *string `json:"document_id,omitempty" yaml:"document_id,omitempty"`
	Status     *string `json:"status,omitempty"      yaml:"status,omitempty"`
}

// QueryResultMetadata is the relevance of one result.
type QueryResultMetadata struct {
	Score      float64  `json:"score"                yaml:"score"`
	Confidence *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// QueryResult is one matching document. Document fields other than the
// declared ones are kept as additional properties.
type QueryResult struct {
	ID             *string                `json:"id,omitempty"              yaml:"id,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"        yaml:"metadata,omitempty"`
	CollectionID   *string                `json:"collection_id,omitempty"   yaml:"collection_id,omitempty"`
	ResultMetadata *QueryResultMetadata   `json:"result_metadata,omitempty" yaml:"result_metadata,omitempty"`

	watson.AdditionalProperties `yaml:",inline"`
}

// UnmarshalJSON keeps undeclared keys.
func (q *QueryResult) UnmarshalJSON(data []byte) error {
	type plain QueryResult

	return watson.DecodeWithResidual(data, (*plain)(q), &q.Extra)
}

// MarshalJSON writes undeclared keys back.
func (q QueryResult) MarshalJSON() ([]byte, error) {
	type plain QueryResult

	return watson.EncodeWithResidual(plain(q), q.Extra)
}

// AggregationResult is one bucket of an aggregation.
type AggregationResult struct {
	Key             interface{}        `json:"key,omitempty"              yaml:"key,omitempty"`
	MatchingResults *int64             `json:"matching_results,omitempty" yaml:"matching_results,omitempty"`
	Aggregations    []QueryAggregation `json:"aggregations,omitempty"     yaml:"aggregations,omitempty"`
}

// QueryAggregation is an aggregation requested by the query.
type QueryAggregation struct {
	Type            *string             `json:"type,omitempty"             yaml:"type,omitempty"`
	Field           *string             `json:"field,omitempty"            yaml:"field,omitempty"`
	Count           *int64              `json:"count,omitempty"            yaml:"count,omitempty"`
	Interval        *string             `json:"interval,omitempty"         yaml:"interval,omitempty"`
	Value           *float64            `json:"value,omitempty"            yaml:"value,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty" yaml:"matching_results,omitempty"`
	Results         []AggregationResult `json:"results,omitempty"          yaml:"results,omitempty"`
}

// QueryPassages is a relevant passage of a matching document.
type QueryPassages struct {
	DocumentID   *string  `json:"document_id,omitempty"   yaml:"document_id,omitempty"`
	PassageScore *float64 `json:"passage_score,omitempty" yaml:"passage_score,omitempty"`
	PassageText  *string  `json:"passage_text,omitempty"  yaml:"passage_text,omitempty"`
	StartOffset  *int64   `json:"start_offset,omitempty"  yaml:"start_offset,omitempty"`
	EndOffset    *int64   `json:"end_offset,omitempty"    yaml:"end_offset,omitempty"`
	Field        *string  `json:"field,omitempty"         yaml:"field,omitempty"`
}

// RetrievalDetails names the strategy used to retrieve documents.
type RetrievalDetails struct {
	DocumentRetrievalStrategy *string `json:"document_retrieval_strategy,omitempty" yaml:"document_retrieval_strategy,omitempty"`
}

// QueryResponse is the response of Query.
type QueryResponse struct {
	MatchingResults   *int64             `json:"matching_results,omitempty"   yaml:"matching_results,omitempty"`
	Results           []QueryResult      `json:"results,omitempty"            yaml:"results,omitempty"`
	Aggregations      []QueryAggregation `json:"aggregations,omitempty"       yaml:"aggregations,omitempty"`
	Passages          []QueryPassages    `json:"passages,omitempty"           yaml:"passages,omitempty"`
	DuplicatesRemoved *int64             `json:"duplicates_removed,omitempty" yaml:"duplicates_removed,omitempty"`
	SessionToken      *string            `json:"session_token,omitempty"      yaml:"session_token,omitempty"`
	RetrievalDetails  *RetrievalDetails  `json:"retrieval_details,omitempty"  yaml:"retrieval_details,omitempty"`
}
