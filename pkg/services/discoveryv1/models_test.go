package discoveryv1_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/internal/modeltest"
	discovery "github.com/fivetwenty-io/watson/pkg/services/discoveryv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_RoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2019, 3, 4, 8, 30, 0, 0, time.UTC)

	result := discovery.QueryResult{
		ID:             watson.String("doc-1"),
		Metadata:       map[string]interface{}{"source": "crawler"},
		CollectionID:   watson.String("col-1"),
		ResultMetadata: &discovery.QueryResultMetadata{Score: 1.5, Confidence: watson.Float64(0.42)},
	}
	result.SetProperty("title", "IBM Watson")
	result.SetProperty("enriched_text", map[string]interface{}{"sentiment": map[string]interface{}{"score": 0.8}})

	modeltest.Run(t, []modeltest.Case{
		{Name: "Environment populated", Model: discovery.Environment{
			EnvironmentID: watson.String("env-1"),
			Name:          watson.String("byod"),
			Description:   watson.String("private data"),
			Created:       &created,
			Updated:       &created,
			Status:        watson.String(discovery.EnvironmentStatusActive),
			ReadOnly:      watson.Bool(false),
			Size:          watson.String("LT"),
			RequestedSize: watson.String("S"),
			IndexCapacity: &discovery.IndexCapacity{
				Documents:   &discovery.Capacity{Available: watson.Int64(10), MaximumAllowed: watson.Int64(2000)},
				DiskUsage:   &discovery.EnvironmentDiskUsage{UsedBytes: watson.Int64(1024), MaximumAllowedBytes: watson.Int64(1 << 30)},
				Collections: &discovery.Capacity{Available: watson.Int64(1), MaximumAllowed: watson.Int64(4)},
			},
		}},
		{Name: "Environment minimal", Model: discovery.Environment{}},
		{Name: "ListEnvironmentsResponse", Model: discovery.ListEnvironmentsResponse{
			Environments: []discovery.Environment{{EnvironmentID: watson.String("system"), ReadOnly: watson.Bool(true)}},
		}},
		{Name: "ListEnvironmentsResponse minimal", Model: discovery.ListEnvironmentsResponse{}},
		{Name: "DeleteEnvironmentResponse", Model: discovery.DeleteEnvironmentResponse{EnvironmentID: "env-1", Status: "deleted"}},
		{Name: "Collection populated", Model: discovery.Collection{
			CollectionID:    watson.String("col-1"),
			Name:            watson.String("news"),
			Description:     watson.String("news articles"),
			Created:         &created,
			Updated:         &created,
			Status:          watson.String("active"),
			ConfigurationID: watson.String("cfg-1"),
			Language:        watson.String("en"),
			DocumentCounts: &discovery.DocumentCounts{
				Available:  watson.Int64(5),
				Processing: watson.Int64(1),
				Failed:     watson.Int64(0),
				Pending:    watson.Int64(2),
			},
			DiskUsage: &discovery.CollectionDiskUsage{UsedBytes: watson.Int64(2048)},
		}},
		{Name: "Collection minimal", Model: discovery.Collection{}},
		{Name: "ListCollectionsResponse", Model: discovery.ListCollectionsResponse{Collections: []discovery.Collection{{Name: watson.String("news")}}}},
		{Name: "DeleteCollectionResponse", Model: discovery.DeleteCollectionResponse{CollectionID: "col-1", Status: "deleted"}},
		{Name: "DocumentAccepted populated", Model: discovery.DocumentAccepted{
			DocumentID: watson.String("doc-1"),
			Status:     watson.String(discovery.DocumentStatusProcessing),
			Notices: []discovery.Notice{{
				NoticeID:    watson.String("index_342"),
				Created:     &created,
				DocumentID:  watson.String("doc-1"),
				QueryID:     watson.String("q-1"),
				Severity:    watson.String("warning"),
				Step:        watson.String("indexing"),
				Description: watson.String("field too long"),
			}},
		}},
		{Name: "DocumentAccepted minimal", Model: discovery.DocumentAccepted{}},
		{Name: "DocumentStatus populated", Model: discovery.DocumentStatus{
			DocumentID:        "doc-1",
			ConfigurationID:   watson.String("cfg-1"),
			Status:            discovery.DocumentStatusAvailableWithNotices,
			StatusDescription: "Document is available",
			Filename:          watson.String("report.pdf"),
			FileType:          watson.String("pdf"),
			Sha1:              watson.String("da39a3ee5e6b4b0d3255bfef95601890afd80709"),
			Notices:           []discovery.Notice{{Severity: watson.String("warning")}},
		}},
		{Name: "DocumentStatus minimal", Model: discovery.DocumentStatus{DocumentID: "doc-1", Status: discovery.DocumentStatusPending}},
		{Name: "DeleteDocumentResponse", Model: discovery.DeleteDocumentResponse{DocumentID: watson.String("doc-1"), Status: watson.String("deleted")}},
		{Name: "QueryResult populated", Model: result},
		{Name: "QueryResult minimal", Model: discovery.QueryResult{}},
		{Name: "QueryResponse populated", Model: discovery.QueryResponse{
			MatchingResults: watson.Int64(1),
			Results:         []discovery.QueryResult{result},
			Aggregations: []discovery.QueryAggregation{{
				Type:            watson.String("term"),
				Field:           watson.String("enriched_text.entities.type"),
				Count:           watson.Int64(3),
				Interval:        watson.String("1d"),
				Value:           watson.Float64(12.5),
				MatchingResults: watson.Int64(7),
				Results: []discovery.AggregationResult{{
					Key:             "Company",
					MatchingResults: watson.Int64(4),
					Aggregations:    []discovery.QueryAggregation{{Type: watson.String("max"), Value: watson.Float64(1)}},
				}},
			}},
			Passages: []discovery.QueryPassages{{
				DocumentID:   watson.String("doc-1"),
				PassageScore: watson.Float64(14.3),
				PassageText:  watson.String("Watson answers questions"),
				StartOffset:  watson.Int64(0),
				EndOffset:    watson.Int64(24),
				Field:        watson.String("text"),
			}},
			DuplicatesRemoved: watson.Int64(0),
			SessionToken:      watson.String("tok"),
			RetrievalDetails:  &discovery.RetrievalDetails{DocumentRetrievalStrategy: watson.String("untrained")},
		}},
		{Name: "QueryResponse minimal", Model: discovery.QueryResponse{}},
	})
}

func TestQueryResult_KeepsUndeclaredFields(t *testing.T) {
	t.Parallel()

	var response discovery.QueryResponse

	err := watson.UnmarshalModel([]byte(`{"results":[{"id":"doc-1","title":"Watson","year":2011}]}`), &response)
	require.NoError(t, err)
	require.Len(t, response.Results, 1)

	assert.Equal(t, "Watson", response.Results[0].GetProperty("title"))
	assert.Equal(t, 2011.0, response.Results[0].GetProperty("year"))
	assert.Equal(t, "doc-1", watson.StringValue(response.Results[0].ID))
}

func TestDocumentStatus_RequiredKeys(t *testing.T) {
	t.Parallel()

	var status discovery.DocumentStatus

	err := watson.UnmarshalModel([]byte(`{"document_id":"doc-1"}`), &status)
	require.ErrorIs(t, err, watson.ErrInvalidModel)
	assert.Contains(t, err.Error(), "status")
}
