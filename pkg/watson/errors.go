package watson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
)

// ServiceError represents a non-2xx response from a Watson service.
type ServiceError struct {
	StatusCode    int                    `json:"code"                     yaml:"code"`
	Message       string                 `json:"error"                    yaml:"error"`
	Info          map[string]interface{} `json:"info,omitempty"           yaml:"info,omitempty"`
	TransactionID string                 `json:"transaction_id,omitempty" yaml:"transaction_id,omitempty"`
	Headers       http.Header            `json:"-"                        yaml:"-"`
	Body          []byte                 `json:"-"                        yaml:"-"`
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("Error: %s, Code: %d", e.Message, e.StatusCode)
	if e.TransactionID != "" {
		msg += ", X-global-transaction-id: " + e.TransactionID
	}

	return msg
}

const (
	unauthorizedMessage = "Unauthorized: Access is denied due to invalid credentials"
	unknownErrorMessage = "Unknown error"
)

// errorMessageKeys are tried in order when extracting a message from an
// error response body.
var errorMessageKeys = []string{
	"error",
	"error_message",
	"errorMessage",
	"msg",
	"statusInfo",
	"message",
	"description",
}

// errorInfoKeys is the allow-list of structured details copied into Info.
var errorInfoKeys = []string{
	"code_description",
	"description",
	"errors",
	"help",
	"sub_code",
	"warnings",
}

// NewServiceError builds a ServiceError from a raw HTTP response.
func NewServiceError(statusCode int, headers http.Header, body []byte) *ServiceError {
	serviceErr := &ServiceError{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
	}

	var payload map[string]interface{}

	jsonErr := json.Unmarshal(body, &payload)
	if jsonErr != nil {
		payload = nil
	}

	serviceErr.Message = extractErrorMessage(statusCode, payload, body)
	serviceErr.Info = extractErrorInfo(payload)

	if headers != nil {
		serviceErr.TransactionID = headers.Get(constants.HeaderGlobalTransaction)
		if serviceErr.TransactionID == "" {
			serviceErr.TransactionID = headers.Get(constants.HeaderWatsonTransaction)
		}
	}

	return serviceErr
}

func extractErrorMessage(statusCode int, payload map[string]interface{}, body []byte) string {
	if statusCode == http.StatusUnauthorized {
		return unauthorizedMessage
	}

	if payload != nil {
		for _, key := range errorMessageKeys {
			if msg := messageFromValue(payload[key]); msg != "" {
				return msg
			}
		}

		if msg := messageFromErrorList(payload["errors"]); msg != "" {
			return msg
		}
	} else if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}

	return unknownErrorMessage
}

func messageFromValue(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case map[string]interface{}:
		if description, ok := typed["description"].(string); ok {
			return description
		}

		if message, ok := typed["message"].(string); ok {
			return message
		}
	}

	return ""
}

func messageFromErrorList(value interface{}) string {
	list, ok := value.([]interface{})
	if !ok || len(list) == 0 {
		return ""
	}

	return messageFromValue(list[0])
}

func extractErrorInfo(payload map[string]interface{}) map[string]interface{} {
	if payload == nil {
		return nil
	}

	info := make(map[string]interface{})

	for _, key := range errorInfoKeys {
		if value, ok := payload[key]; ok {
			info[key] = value
		}
	}

	if len(info) == 0 {
		return nil
	}

	return info
}

// Validation and configuration errors.
var (
	ErrMissingOptions          = errors.New("options are required")
	ErrMissingParameter        = errors.New("missing required parameter")
	ErrInvalidParameter        = errors.New("invalid parameter")
	ErrMissingCredentials      = errors.New("you must specify your IAM api key or username and password service credentials (Note: these are different from your IBM Cloud id)")
	ErrInvalidCredentialFormat = errors.New("the credentials shouldn't start or end with curly brackets or quotes. Be sure to remove any {} and \" characters surrounding your credentials")
	ErrMissingURL              = errors.New("service URL is required")
	ErrVersionRequired         = errors.New("version is required")
	ErrConfigRequired          = errors.New("config is required")
	ErrInvalidModel            = errors.New("invalid model")
	ErrInvalidVCAPServices     = errors.New("invalid VCAP_SERVICES")
)

// Recognition errors.
var (
	ErrRecognitionFailed = errors.New("recognition failed")
	ErrCallbackRequired  = errors.New("recognize callback is required")
)

// AsServiceError returns the ServiceError wrapped by err, if any.
func AsServiceError(err error) (*ServiceError, bool) {
	serviceErr := &ServiceError{}
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a 404 service error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 service error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 service error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	serviceErr, ok := AsServiceError(err)

	return ok && serviceErr.StatusCode == status
}
