package client

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/fivetwenty-io/watson/internal/constants"
	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	vr "github.com/fivetwenty-io/watson/pkg/services/visualrecognitionv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// VisualRecognitionV3 implements vr.Client.
type VisualRecognitionV3 struct {
	*service
}

// NewVisualRecognitionV3 creates a Visual Recognition V3 client.
func NewVisualRecognitionV3(config *watson.Config) (*VisualRecognitionV3, error) {
	svc, err := newService(config, serviceInfo{name: "watson_vision_combined", version: "V3", versioned: true})
	if err != nil {
		return nil, err
	}

	return &VisualRecognitionV3{service: svc}, nil
}

func classifierPath(classifierID string, segments ...string) string {
	return internalhttp.PathJoin(append([]string{"v3", "classifiers", classifierID}, segments...)...)
}

// addImages appends the images_file part and the url field.
func addImages(req *internalhttp.Request, file io.Reader, filename, contentType, imageURL *string) error {
	if file == nil && imageURL == nil {
		return fmt.Errorf("%w: images_file or url", watson.ErrMissingParameter)
	}

	if file != nil {
		req.Form = append(req.Form, filePart("images_file", file, watson.StringValue(filename), contentType))
	}

	addFormValue(req, "url", imageURL)

	return nil
}

// addExamples appends one part per class, in class name order, plus the
// negative examples.
func addExamples(req *internalhttp.Request, positive map[string]io.Reader, negative io.Reader) {
	for _, class := range slices.Sorted(maps.Keys(positive)) {
		name := class + "_positive_examples"
		req.Form = append(req.Form, filePart(name, positive[class], name+".zip", watson.String(constants.ContentTypeOctetStream)))
	}

	if negative != nil {
		req.Form = append(req.Form, filePart("negative_examples", negative, "negative_examples.zip", watson.String(constants.ContentTypeOctetStream)))
	}
}

// Classify classifies an image or a zip of images with the built-in or custom classifiers.
func (c *VisualRecognitionV3) Classify(ctx context.Context, options *vr.ClassifyOptions) (*vr.ClassifiedImages, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("classifying images: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v3/classify", "classify", options.Headers)
	req.Headers[constants.HeaderAcceptLanguage] = watson.StringValue(options.AcceptLanguage)

	err = addImages(req, options.ImagesFile, options.ImagesFilename, options.ImagesFileContentType, options.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("classifying images: %w", err)
	}

	if options.Threshold != nil {
		addFormValue(req, "threshold", watson.String(strconv.FormatFloat(*options.Threshold, 'f', -1, 64)))
	}

	addFormValue(req, "owners", joinValues(options.Owners))
	addFormValue(req, "classifier_ids", joinValues(options.ClassifierIDs))

	var result vr.ClassifiedImages

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("classifying images: %w", err)
	}

	return &result, resp, nil
}

// DetectFaces detects faces and estimates age and gender.
func (c *VisualRecognitionV3) DetectFaces(ctx context.Context, options *vr.DetectFacesOptions) (*vr.DetectedFaces, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("detecting faces: %w", err)
	}

	req := c.newRequest(http.MethodPost, "/v3/detect_faces", "detect_faces", options.Headers)
	req.Headers[constants.HeaderAcceptLanguage] = watson.StringValue(options.AcceptLanguage)

	err = addImages(req, options.ImagesFile, options.ImagesFilename, options.ImagesFileContentType, options.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("detecting faces: %w", err)
	}

	var result vr.DetectedFaces

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("detecting faces: %w", err)
	}

	return &result, resp, nil
}

// CreateClassifier trains a custom classifier from example images.
func (c *VisualRecognitionV3) CreateClassifier(ctx context.Context, options *vr.CreateClassifierOptions) (*vr.Classifier, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("creating classifier: %w", err)
	}

	if len(options.PositiveExamples) == 0 {
		return nil, nil, fmt.Errorf("creating classifier: %w: positive examples", watson.ErrMissingParameter)
	}

	req := c.newRequest(http.MethodPost, "/v3/classifiers", "create_classifier", options.Headers)
	addFormValue(req, "name", &options.Name)
	addExamples(req, options.PositiveExamples, options.NegativeExamples)

	var result vr.Classifier

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating classifier: %w", err)
	}

	return &result, resp, nil
}

// ListClassifiers lists custom classifiers.
func (c *VisualRecognitionV3) ListClassifiers(ctx context.Context, options *vr.ListClassifiersOptions) (*vr.Classifiers, *watson.DetailedResponse, error) {
	if options == nil {
		options = &vr.ListClassifiersOptions{}
	}

	req := c.newRequest(http.MethodGet, "/v3/classifiers", "list_classifiers", options.Headers)
	req.Params = struct {
		Verbose *bool `schema:"verbose,omitempty"`
	}{options.Verbose}

	var result vr.Classifiers

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing classifiers: %w", err)
	}

	return &result, resp, nil
}

// GetClassifier gets a custom classifier.
func (c *VisualRecognitionV3) GetClassifier(ctx context.Context, options *vr.GetClassifierOptions) (*vr.Classifier, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting classifier: %w", err)
	}

	req := c.newRequest(http.MethodGet, classifierPath(options.ClassifierID), "get_classifier", options.Headers)

	var result vr.Classifier

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting classifier %s: %w", options.ClassifierID, err)
	}

	return &result, resp, nil
}

// UpdateClassifier retrains a custom classifier with more examples.
func (c *VisualRecognitionV3) UpdateClassifier(ctx context.Context, options *vr.UpdateClassifierOptions) (*vr.Classifier, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("updating classifier: %w", err)
	}

	if len(options.PositiveExamples) == 0 && options.NegativeExamples == nil {
		return nil, nil, fmt.Errorf("updating classifier: %w: positive or negative examples", watson.ErrMissingParameter)
	}

	req := c.newRequest(http.MethodPost, classifierPath(options.ClassifierID), "update_classifier", options.Headers)
	addExamples(req, options.PositiveExamples, options.NegativeExamples)

	var result vr.Classifier

	resp, err := c.invoke(ctx, req, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("updating classifier %s: %w", options.ClassifierID, err)
	}

	return &result, resp, nil
}

// DeleteClassifier deletes a custom classifier.
func (c *VisualRecognitionV3) DeleteClassifier(ctx context.Context, options *vr.DeleteClassifierOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting classifier: %w", err)
	}

	req := c.newRequest(http.MethodDelete, classifierPath(options.ClassifierID), "delete_classifier", options.Headers)

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting classifier %s: %w", options.ClassifierID, err)
	}

	return resp, nil
}

// GetCoreMLModel downloads a classifier as a Core ML model.
func (c *VisualRecognitionV3) GetCoreMLModel(ctx context.Context, options *vr.GetCoreMLModelOptions) ([]byte, *watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, nil, fmt.Errorf("getting core ml model: %w", err)
	}

	req := c.newRequest(http.MethodGet, classifierPath(options.ClassifierID, "core_ml_model"), "get_core_ml_model", options.Headers)
	req.Accept = constants.ContentTypeOctetStream

	model, resp, err := c.invokeBinary(ctx, req)
	if err != nil {
		return nil, resp, fmt.Errorf("getting core ml model %s: %w", options.ClassifierID, err)
	}

	return model, resp, nil
}

// DeleteUserData deletes all data labeled with a customer ID.
func (c *VisualRecognitionV3) DeleteUserData(ctx context.Context, options *vr.DeleteUserDataOptions) (*watson.DetailedResponse, error) {
	err := watson.ValidateOptions(options)
	if err != nil {
		return nil, fmt.Errorf("deleting user data: %w", err)
	}

	req := c.newRequest(http.MethodDelete, "/v3/user_data", "delete_user_data", options.Headers)
	req.Params = customerIDParams{CustomerID: options.CustomerID}

	resp, err := c.invoke(ctx, req, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting user data: %w", err)
	}

	return resp, nil
}

var _ vr.Client = (*VisualRecognitionV3)(nil)
