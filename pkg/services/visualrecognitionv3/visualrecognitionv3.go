// Package visualrecognitionv3 defines the Visual Recognition V3 service:
// image classification, face detection and custom classifiers.
package visualrecognitionv3

import (
	"context"
	"io"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.VisualRecognitionServiceName
	DefaultServiceURL  = constants.VisualRecognitionURL
)

// Client is the Visual Recognition V3 API.
type Client interface {
	Classify(ctx context.Context, options *ClassifyOptions) (*ClassifiedImages, *watson.DetailedResponse, error)
	DetectFaces(ctx context.Context, options *DetectFacesOptions) (*DetectedFaces, *watson.DetailedResponse, error)

	CreateClassifier(ctx context.Context, options *CreateClassifierOptions) (*Classifier, *watson.DetailedResponse, error)
	ListClassifiers(ctx context.Context, options *ListClassifiersOptions) (*Classifiers, *watson.DetailedResponse, error)
	GetClassifier(ctx context.Context, options *GetClassifierOptions) (*Classifier, *watson.DetailedResponse, error)
	UpdateClassifier(ctx context.Context, options *UpdateClassifierOptions) (*Classifier, *watson.DetailedResponse, error)
	DeleteClassifier(ctx context.Context, options *DeleteClassifierOptions) (*watson.DetailedResponse, error)
	// GetCoreMLModel downloads a classifier as a Core ML model.
	GetCoreMLModel(ctx context.Context, options *GetCoreMLModelOptions) ([]byte, *watson.DetailedResponse, error)

	DeleteUserData(ctx context.Context, options *DeleteUserDataOptions) (*watson.DetailedResponse, error)

	ServiceURL() string
}

// Classifier owners.
const (
	OwnerIBM = "IBM"
	OwnerMe  = "me"
)

// ClassifyOptions are the parameters of Classify. Set ImagesFile, URL or both.
type ClassifyOptions struct {
	ImagesFile            io.Reader `json:"-"`
	ImagesFilename        *string   `json:"-"`
	ImagesFileContentType *string   `json:"-"`
	URL                   *string   `json:"-"`
	Threshold             *float64  `json:"-"`
	Owners                []string  `json:"-"`
	ClassifierIDs         []string  `json:"-"`
	AcceptLanguage        *string   `json:"-"`

	Headers map[string]string `json:"-"`
}

// DetectFacesOptions are the parameters of DetectFaces. Set ImagesFile, URL
// or both.
type DetectFacesOptions struct {
	ImagesFile            io.Reader `json:"-"`
	ImagesFilename        *string   `json:"-"`
	ImagesFileContentType *string   `json:"-"`
	URL                   *string   `json:"-"`
	AcceptLanguage        *string   `json:"-"`

	Headers map[string]string `json:"-"`
}

// CreateClassifierOptions are the parameters of CreateClassifier.
// PositiveExamples maps class names to zip files of example images.
type CreateClassifierOptions struct {
	Name             string               `json:"-" validate:"required"`
	PositiveExamples map[string]io.Reader `json:"-" validate:"required"`
	NegativeExamples io.Reader            `json:"-"`

	Headers map[string]string `json:"-"`
}

// ListClassifiersOptions are the parameters of ListClassifiers.
type ListClassifiersOptions struct {
	Verbose *bool `json:"-"`

	Headers map[string]string `json:"-"`
}

// GetClassifierOptions are the parameters of GetClassifier.
type GetClassifierOptions struct {
	ClassifierID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// UpdateClassifierOptions are the parameters of UpdateClassifier.
type UpdateClassifierOptions struct {
	ClassifierID     string               `json:"-" validate:"required"`
	PositiveExamples map[string]io.Reader `json:"-"`
	NegativeExamples io.Reader            `json:"-"`

	Headers map[string]string `json:"-"`
}

// DeleteClassifierOptions are the parameters of DeleteClassifier.
type DeleteClassifierOptions struct {
	ClassifierID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// GetCoreMLModelOptions are the parameters of GetCoreMLModel.
type GetCoreMLModelOptions struct {
	ClassifierID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}

// DeleteUserDataOptions are the parameters of DeleteUserData.
type DeleteUserDataOptions struct {
	CustomerID string `json:"-" validate:"required"`

	Headers map[string]string `json:"-"`
}
