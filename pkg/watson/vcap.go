package watson

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fivetwenty-io/watson/internal/constants"
)

// VCAPCredentials are the credential fields Watson services publish in
// VCAP_SERVICES.
type VCAPCredentials struct {
	URL       string `json:"url,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	APIKey    string `json:"apikey,omitempty"`
	IAMAPIKey string `json:"iam_apikey,omitempty"`
	IAMURL    string `json:"iam_url,omitempty"`
}

// HasCredentials reports whether any usable credential is present.
func (v *VCAPCredentials) HasCredentials() bool {
	return v.APIKey != "" || v.IAMAPIKey != "" || v.Username != "" || v.Password != ""
}

type vcapEntry struct {
	Name        string          `json:"name"`
	Credentials VCAPCredentials `json:"credentials"`
}

// LoadVCAPCredentials reads VCAP_SERVICES from the environment and returns
// the credentials for serviceName. It returns nil when the variable is unset
// or holds no matching entry.
func LoadVCAPCredentials(serviceName string) (*VCAPCredentials, error) {
	raw := os.Getenv(constants.VCAPServicesEnv)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent VCAP is not an error
	}

	return ParseVCAPServices([]byte(raw), serviceName)
}

// ParseVCAPServices looks serviceName up in a VCAP_SERVICES document. The
// service type key is tried first, then an instance with that name.
func ParseVCAPServices(data []byte, serviceName string) (*VCAPCredentials, error) {
	var services map[string][]vcapEntry

	err := json.Unmarshal(data, &services)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVCAPServices, err)
	}

	if entries := services[serviceName]; len(entries) > 0 {
		creds := entries[0].Credentials

		return &creds, nil
	}

	for _, entries := range services {
		for _, entry := range entries {
			if entry.Name == serviceName {
				creds := entry.Credentials

				return &creds, nil
			}
		}
	}

	return nil, nil //nolint:nilnil // no entry for the service
}
