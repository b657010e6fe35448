package client

import (
	"strings"

	"github.com/fivetwenty-io/watson/internal/auth"
	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/internal/http"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// createAuthenticator picks the authentication scheme for config. The order
// of the checks is the documented precedence on watson.Config.
func createAuthenticator(config *watson.Config) (http.Authenticator, error) {
	err := validateCredentials(config)
	if err != nil {
		return nil, err
	}

	switch {
	case config.APIKey != "":
		return createAPIKeyAuthenticator(config), nil

	case config.Username != "" && config.Password != "":
		return createUsernamePasswordAuthenticator(config), nil

	case config.IAMAccessToken != "" || config.IAMAPIKey != "":
		return createIAMAuthenticator(config, config.IAMAPIKey), nil

	default:
		return nil, watson.ErrMissingCredentials
	}
}

// createAPIKeyAuthenticator handles the legacy static key. ICP keys are sent
// as basic auth instead.
func createAPIKeyAuthenticator(config *watson.Config) http.Authenticator {
	if strings.HasPrefix(config.APIKey, constants.ICPPrefix) {
		return auth.NewBasicAuthenticator(constants.IAMAPIKeyUsername, config.APIKey)
	}

	return auth.NewAPIKeyAuthenticator(config.APIKey, config.URL)
}

// createUsernamePasswordAuthenticator treats username "apikey" as an IAM key
// carrier unless the key is an ICP key.
func createUsernamePasswordAuthenticator(config *watson.Config) http.Authenticator {
	if config.Username == constants.IAMAPIKeyUsername && !strings.HasPrefix(config.Password, constants.ICPPrefix) {
		return createIAMAuthenticator(config, config.Password)
	}

	return auth.NewBasicAuthenticator(config.Username, config.Password)
}

func createIAMAuthenticator(config *watson.Config, apiKey string) http.Authenticator {
	if config.IAMAccessToken == "" && strings.HasPrefix(apiKey, constants.ICPPrefix) {
		return auth.NewBasicAuthenticator(constants.IAMAPIKeyUsername, apiKey)
	}

	return auth.NewBearerTokenAuthenticator(createTokenManager(config, apiKey))
}

// createTokenManager creates the IAM token manager, sharing tokens through
// config.TokenCache when one is configured.
func createTokenManager(config *watson.Config, apiKey string) auth.TokenManager {
	iamConfig := &auth.IAMConfig{
		APIKey:       apiKey,
		AccessToken:  config.IAMAccessToken,
		URL:          config.IAMURL,
		ClientID:     config.IAMClientID,
		ClientSecret: config.IAMClientSecret,
		Options:      iamHTTPOptions(config),
	}

	if config.TokenCache != nil && config.IAMAccessToken == "" {
		return auth.NewCachedTokenManager(iamConfig, config.TokenCache, config.Logger)
	}

	return auth.NewIAMTokenManager(iamConfig)
}

func iamHTTPOptions(config *watson.Config) []http.Option {
	var opts []http.Option

	if config.DisableSSLVerification {
		opts = append(opts, http.WithInsecureSkipVerify(true))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	return opts
}

// validateCredentials rejects values that still carry JSON punctuation, a
// common copy-paste mistake.
func validateCredentials(config *watson.Config) error {
	for _, value := range []string{
		config.APIKey,
		config.Username,
		config.Password,
		config.IAMAPIKey,
		config.IAMAccessToken,
		config.URL,
	} {
		if hasBadCredentialFormat(value) {
			return watson.ErrInvalidCredentialFormat
		}
	}

	return nil
}

func hasBadCredentialFormat(value string) bool {
	if value == "" {
		return false
	}

	return strings.HasPrefix(value, "{") || strings.HasPrefix(value, "\"") ||
		strings.HasSuffix(value, "}") || strings.HasSuffix(value, "\"")
}

// TokenManager returns the token manager behind an IAM-authenticated
// service, or nil.
func (s *service) TokenManager() auth.TokenManager {
	bearer, ok := s.authenticator.(*auth.BearerTokenAuthenticator)
	if !ok {
		return nil
	}

	return bearer.TokenManager()
}
