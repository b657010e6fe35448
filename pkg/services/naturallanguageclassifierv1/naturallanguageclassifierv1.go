// Package naturallanguageclassifierv1 defines the Natural Language Classifier
// V1 service.
package naturallanguageclassifierv1

import (
	"context"
	"io"
	"time"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.NaturalLanguageClassifierServiceName
	DefaultServiceURL  = constants.NaturalLanguageClassifierURL
)

// Client is the Natural Language Classifier V1 API.
type Client interface {
	Classify(ctx context.Context, options *ClassifyOptions) (*Classification, *watson.DetailedResponse, error)
	ClassifyCollection(ctx context.Context, options *ClassifyCollectionOptions) (*ClassificationCollection, *watson.DetailedResponse, error)
	CreateClassifier(ctx context.Context, options *CreateClassifierOptions) (*Classifier, *watson.DetailedResponse, error)
	ListClassifiers(ctx context.Context, options *ListClassifiersOptions) (*ClassifierList, *watson.DetailedResponse, error)
	GetClassifier(ctx context.Context, options *GetClassifierOptions) (*Classifier, *watson.DetailedResponse, error)
	DeleteClassifier(ctx context.Context, options *DeleteClassifierOptions) (*watson.DetailedResponse, error)
	ServiceURL() string
}

// ClassifyOptions are the parameters of Classify.
type ClassifyOptions struct {
	ClassifierID string `json:"-"    validate:"required"`
	Text         string `json:"text" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ClassifyInput is one phrase of a collection.
type ClassifyInput struct {
	Text string `json:"text" validate:"required"`
}

// ClassifyCollectionOptions are the parameters of ClassifyCollection. Up to
// 30 phrases are accepted per call.
type ClassifyCollectionOptions struct {
	ClassifierID string          `json:"-"          validate:"required"`
	Collection   []ClassifyInput `json:"collection" validate:"required"`

	Headers map[string]string `json:"-"`
}

// TrainingMetadata describes the classifier to train.
type TrainingMetadata struct {
	Language string  `json:"language"       validate:"required"`
	Name     *string `json:"name,omitempty"`
}

// CreateClassifierOptions are the parameters of CreateClassifier. TrainingData
// is a CSV of phrase,class rows.
type CreateClassifierOptions struct {
	Metadata     *TrainingMetadata `json:"training_metadata" validate:"required"`
	TrainingData io.Reader         `json:"training_data"     validate:"required"`

	Headers map[string]string `json:"-"`
}

// ListClassifiersOptions are the parameters of ListClassifiers.
type ListClassifiersOptions struct {
	Headers map[string]string `json:"-"`
}

// GetClassifierOptions are the parameters of GetClassifier.
type GetClassifierOptions struct {
	ClassifierID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteClassifierOptions are the parameters of DeleteClassifier.
type DeleteClassifierOptions struct {
	ClassifierID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// ClassifiedClass is a class and its confidence.
type ClassifiedClass struct {
	Confidence float64 `json:"confidence" yaml:"confidence"`
	ClassName  string  `json:"class_name" yaml:"class_name"`
}

// Classification is the response of Classify.
type Classification struct {
	ClassifierID string            `json:"classifier_id"       yaml:"classifier_id"`
	URL          string            `json:"url"                 yaml:"url"`
	Text         string            `json:"text"                yaml:"text"`
	TopClass     string            `json:"top_class"           yaml:"top_class"           validate:"required"`
	Classes      []ClassifiedClass `json:"classes"             yaml:"classes"`
}

// CollectionItem is the classification of one phrase of a collection.
type CollectionItem struct {
	Text     string            `json:"text"      yaml:"text"`
	TopClass string            `json:"top_class" yaml:"top_class"`
	Classes  []ClassifiedClass `json:"classes"   yaml:"classes"`
}

// ClassificationCollection is the response of ClassifyCollection.
type ClassificationCollection struct {
	ClassifierID string           `json:"classifier_id" yaml:"classifier_id"`
	URL          string           `json:"url"           yaml:"url"`
	Collection   []CollectionItem `json:"collection"    yaml:"collection"    validate:"required"`
}

// Classifier status values.
const (
	StatusNonExistent = "Non Existent"
	StatusTraining    = "Training"
	StatusFailed      = "Failed"
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
)

// Classifier describes a trained or training classifier.
type Classifier struct {
	ClassifierID      string     `json:"classifier_id"                yaml:"classifier_id"                validate:"required"`
	URL               string     `json:"url"                          yaml:"url"`
	Name              *string    `json:"name,omitempty"               yaml:"name,omitempty"`
	Status            *string    `json:"status,omitempty"             yaml:"status,omitempty"`
	Created           *time.Time `json:"created,omitempty"            yaml:"created,omitempty"`
	StatusDescription *string    `json:"status_description,omitempty" yaml:"status_description,omitempty"`
	Language          *string    `json:"language,omitempty"           yaml:"language,omitempty"`
}

// ClassifierList is the response of ListClassifiers.
type ClassifierList struct {
	Classifiers []Classifier `json:"classifiers" yaml:"classifiers" validate:"required"`
}
