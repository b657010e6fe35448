package visualrecognitionv3

import "time"

// ClassResult is a class assigned to an image.
type ClassResult struct {
	Class         string  `json:"class"                    yaml:"class"`
	Score         float64 `json:"score"                    yaml:"score"`
	TypeHierarchy *string `json:"type_hierarchy,omitempty" yaml:"type_hierarchy,omitempty"`
}

// ClassifierResult holds the classes one classifier assigned.
type ClassifierResult struct {
	Name         string        `json:"name"          yaml:"name"`
	ClassifierID string        `json:"classifier_id" yaml:"classifier_id"`
	Classes      []ClassResult `json:"classes"       yaml:"classes"`
}

// ErrorInfo is a per-image or per-request error.
type ErrorInfo struct {
	Code        int64  `json:"code"        yaml:"code"`
	Description string `json:"description" yaml:"description"`
	ErrorID     string `json:"error_id"    yaml:"error_id"`
}

// WarningInfo is a per-image or per-request warning.
type WarningInfo struct {
	WarningID   string `json:"warning_id"  yaml:"warning_id"`
	Description string `json:"description" yaml:"description"`
}

// ClassifiedImage is the classification of one image.
type ClassifiedImage struct {
	SourceURL   *string            `json:"source_url,omitempty"   yaml:"source_url,omitempty"`
	ResolvedURL *string            `json:"resolved_url,omitempty" yaml:"resolved_url,omitempty"`
	Image       *string            `json:"image,omitempty"        yaml:"image,omitempty"`
	Error       *ErrorInfo         `json:"error,omitempty"        yaml:"error,omitempty"`
	Classifiers []ClassifierResult `json:"classifiers"            yaml:"classifiers"`
}

// ClassifiedImages is the response of Classify.
type ClassifiedImages struct {
	CustomClasses   *int64            `json:"custom_classes,omitempty"   yaml:"custom_classes,omitempty"`
	ImagesProcessed *int64            `json:"images_processed,omitempty" yaml:"images_processed,omitempty"`
	Images          []ClassifiedImage `json:"images"                     yaml:"images"                     validate:"required"`
	Warnings        []WarningInfo     `json:"warnings,omitempty"         yaml:"warnings,omitempty"`
}

// FaceLocation is the bounding box of a face in pixels.
type FaceLocation struct {
	Width  float64 `json:"width"  yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Left   float64 `json:"left"   yaml:"left"`
	Top    float64 `json:"top"    yaml:"top"`
}

// FaceAge is the estimated age range.
type FaceAge struct {
	Min   *int64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max   *int64  `json:"max,omitempty" yaml:"max,omitempty"`
	Score float64 `json:"score"         yaml:"score"`
}

// FaceGender is the estimated gender.
type FaceGender struct {
	Gender string  `json:"gender" yaml:"gender"`
	Score  float64 `json:"score"  yaml:"score"`
}

// Face is one detected face.
type Face struct {
	Age          *FaceAge      `json:"age,omitempty"           yaml:"age,omitempty"`
	Gender       *FaceGender   `json:"gender,omitempty"        yaml:"gender,omitempty"`
	FaceLocation *FaceLocation `json:"face_location,omitempty" yaml:"face_location,omitempty"`
}

// ImageWithFaces is the detection result for one image.
type ImageWithFaces struct {
	Faces       []Face     `json:"faces"                  yaml:"faces"`
	Image       *string    `json:"image,omitempty"        yaml:"image,omitempty"`
	SourceURL   *string    `json:"source_url,omitempty"   yaml:"source_url,omitempty"`
	ResolvedURL *string    `json:"resolved_url,omitempty" yaml:"resolved_url,omitempty"`
	Error       *ErrorInfo `json:"error,omitempty"        yaml:"error,omitempty"`
}

// DetectedFaces is the response of DetectFaces.
type DetectedFaces struct {
	ImagesProcessed int64            `json:"images_processed"   yaml:"images_processed"`
	Images          []ImageWithFaces `json:"images"             yaml:"images"             validate:"required"`
	Warnings        []WarningInfo    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Class is a class of a custom classifier.
type Class struct {
	Class string `json:"class" yaml:"class"`
}

// Classifier status values.
const (
	ClassifierStatusReady      = "ready"
	ClassifierStatusTraining   = "training"
	ClassifierStatusRetraining = "retraining"
	ClassifierStatusFailed     = "failed"
)

// Classifier describes a custom classifier.
type Classifier struct {
	ClassifierID  string     `json:"classifier_id"            yaml:"classifier_id"            validate:"required"`
	Name          string     `json:"name"                     yaml:"name"                     validate:"required"`
	Owner         *string    `json:"owner,omitempty"          yaml:"owner,omitempty"`
	Status        *string    `json:"status,omitempty"         yaml:"status,omitempty"`
	CoreMLEnabled *bool      `json:"core_ml_enabled,omitempty" yaml:"core_ml_enabled,omitempty"`
	Explanation   *string    `json:"explanation,omitempty"    yaml:"explanation,omitempty"`
	Created       *time.Time `json:"created,omitempty"        yaml:"created,omitempty"`
	Classes       []Class    `json:"classes,omitempty"        yaml:"classes,omitempty"`
	Retrained     *time.Time `json:"retrained,omitempty"      yaml:"retrained,omitempty"`
	Updated       *time.Time `json:"updated,omitempty"        yaml:"updated,omitempty"`
}

// Classifiers is the response of ListClassifiers.
type Classifiers struct {
	Classifiers []Classifier `json:"classifiers" yaml:"classifiers" validate:"required"`
}
