package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/watson/internal/constants"
	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	nlc "github.com/fivetwenty-io/watson/pkg/services/naturallanguageclassifierv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// NaturalLanguageClassifierV1 implements nlc.Client.
type NaturalLanguageClassifierV1 struct {
	*service
}

// NewNaturalLanguageClassifierV1 creates a Natural Language Classifier V1 client.
func NewNaturalLanguageClassifierV1(config *watson.Config) (*NaturalLanguageClassifierV1, error) {
	svc, err := newService(config, serviceInfo{name: "natural_language_classifier", version: "V1"})
	if err != nil {
		return nil, err
	}

	return &NaturalLanguageClassifierV1{service: svc}, nil
}

// Classify returns the top classes for one phrase.
func (c *NaturalLanguageClassifierV1) Classify(ctx context.Context, options *nlc.ClassifyOptions) (*nlc.Classification, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("classifying text: %w", err)
	}

	req := c.newRequest(http.MethodPost, internalhttp.PathJoin("v1", "classifiers", options.ClassifierID, "classify"), "classify", options.Headers)
	req.Body = options

	var result nlc.Classification

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("classifying text: %w", err)
	}

	return &result, resp, nil
}

// ClassifyCollection classifies several phrases in one call.
func (c *NaturalLanguageClassifierV1) ClassifyCollection(ctx context.Context, options *nlc.ClassifyCollectionOptions) (*nlc.ClassificationCollection, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("classifying collection: %w", err)
	}

	path := internalhttp.PathJoin("v1", "classifiers", options.ClassifierID, "classify_collection")
	req := c.newRequest(http.MethodPost, path, "classify_collection", options.Headers)
	req.Body = options

	var result nlc.ClassificationCollection

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("classifying collection: %w", err)
	}

	return &result, resp, nil
}

// CreateClassifier uploads training data and starts training.
func (c *NaturalLanguageClassifierV1) CreateClassifier(ctx context.Context, options *nlc.CreateClassifierOptions) (*nlc.Classifier, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating classifier: %w", err)
	}

	metadata, err := jsonPart("training_metadata", options.Metadata)
	if err != nil {
		return nil, nil, fmt.Errorf("creating classifier: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v1/classifiers", "create_classifier", options.Headers)
	req.Form = append(req.Form,
		metadata,
		filePart("training_data", options.TrainingData, "", watson.String(constants.ContentTypeCSV)),
	)

	var result nlc.Classifier

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating classifier: %w", err)
	}

	return &result, resp, nil
}

// ListClassifiers lists the classifiers of the instance.
func (c *NaturalLanguageClassifierV1) ListClassifiers(ctx context.Context, options *nlc.ListClassifiersOptions) (*nlc.ClassifierList, *watson.DetailedResponse, error) {
	if options == nil {
		options = &nlc.ListClassifiersOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v1/classifiers", "list_classifiers", options.Headers)

	var result nlc.ClassifierList

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing classifiers: %w", err)
	}

	return &result, resp, nil
}

// GetClassifier gets a classifier and its training status.
func (c *NaturalLanguageClassifierV1) GetClassifier(ctx context.Context, options *nlc.GetClassifierOptions) (*nlc.Classifier, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting classifier: %w", err)
	}

	req := c.newRequest(http.MethodGet, internalhttp.PathJoin("v1", "classifiers", options.ClassifierID), "get_classifier", options.Headers)

	var result nlc.Classifier

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting classifier %s: %w", options.ClassifierID, err)
	}

	return &result, resp, nil
}

// DeleteClassifier deletes a classifier.
func (c *NaturalLanguageClassifierV1) DeleteClassifier(ctx context.Context, options *nlc.DeleteClassifierOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting classifier: %w", err)
	}

	req := c.newRequest(http.MethodDelete, internalhttp.PathJoin("v1", "classifiers", options.ClassifierID), "delete_classifier", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting classifier %s: %w", options.ClassifierID, err)
	}

	return resp, nil
}

var _ nlc.Client = (*NaturalLanguageClassifierV1)(nil)
