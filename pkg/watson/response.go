package watson

import (
	"encoding/json"
	"net/http"
)

// DetailedResponse is the envelope returned alongside every service result.
type DetailedResponse struct {
	StatusCode int         `json:"status_code"      yaml:"status_code"`
	Headers    http.Header `json:"headers"          yaml:"headers"`
	Result     interface{} `json:"result,omitempty" yaml:"result,omitempty"`
	RawResult  []byte      `json:"-"                yaml:"-"`
}

// GetHeader returns the first value of the named response header.
func (r *DetailedResponse) GetHeader(key string) string {
	if r == nil || r.Headers == nil {
		return ""
	}

	return r.Headers.Get(key)
}

// String renders the envelope as indented JSON.
func (r *DetailedResponse) String() string {
	if r == nil {
		return ""
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}

	return string(data)
}
