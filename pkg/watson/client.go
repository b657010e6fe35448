package watson

import (
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents the configuration for building a Watson service client.
//
// # Authentication precedence
//
// The following precedence is applied by the service constructors
// (see pkg/watsonclient and internal/client):
//  1. APIKey: a legacy static key. Keys prefixed "icp-" are sent with basic
//     auth as "apikey:<key>"; other keys are sent as the api_key query
//     parameter.
//  2. Username/Password: when Username is "apikey" and the password does not
//     start with "icp-", the password is used as an IAM API key. Otherwise
//     basic auth is used.
//  3. IAMAccessToken/IAMAPIKey: an "icp-" IAM API key uses basic auth;
//     otherwise an IAM token manager is created. A supplied IAMAccessToken is
//     user-managed and is sent as-is; it is never refreshed.
//  4. No credentials: unless IgnoreVCAPServices is set, credentials are read
//     from VCAP_SERVICES under ServiceName and rules 2-3 are applied to them.
//     A VCAP url only fills an empty URL.
//  5. Still nothing: construction fails with ErrMissingCredentials.
//
// # Timeouts and retries
//
// Every call uses HTTPTimeout (60 seconds by default) in addition to any
// deadline on the context passed to the method. Calls are single-attempt
// unless RetryMax is set, in which case 429 and 5xx responses and connection
// errors are retried with backoff between RetryWaitMin and RetryWaitMax.
type Config struct {
	// URL: base URL of the service instance. Defaults to the public endpoint
	// of the service. A trailing slash is trimmed.
	URL string
	// ServiceName: key looked up in VCAP_SERVICES. Defaults per service.
	ServiceName string
	// Version: dated API version (e.g. "2018-05-01") sent as the version
	// query parameter. Required by versioned services.
	Version string

	// Authentication options (provide one)
	// Username: service username for basic auth, or "apikey".
	Username string
	// Password: service password, or an IAM API key when Username is "apikey".
	Password string
	// APIKey: legacy static API key.
	APIKey string
	// IAMAPIKey: IAM API key exchanged for bearer tokens.
	IAMAPIKey string
	// IAMAccessToken: user-managed IAM access token.
	IAMAccessToken string
	// IAMURL: IAM token endpoint. Defaults to the public IAM endpoint.
	IAMURL string
	// IAMClientID: optional client id sent to the IAM token endpoint.
	IAMClientID string
	// IAMClientSecret: optional client secret sent to the IAM token endpoint.
	IAMClientSecret string
	// IgnoreVCAPServices: do not consult VCAP_SERVICES.
	IgnoreVCAPServices bool

	// Optional configurations
	// HTTPTimeout: per-call timeout. Defaults to 60 seconds.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. 0 disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// DisableSSLVerification: skip TLS certificate verification.
	DisableSSLVerification bool
	// DefaultHeaders: headers sent with every request, e.g. X-Watson-Learning-Opt-Out.
	DefaultHeaders map[string]string
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Interceptors: optional request/response interceptors.
	Interceptors *InterceptorChain
	// TokenCache: optional cache used to share IAM tokens between clients or processes.
	TokenCache Cache
}

// Clone returns a shallow copy of the configuration with its own header map.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c

	if c.DefaultHeaders != nil {
		clone.DefaultHeaders = make(map[string]string, len(c.DefaultHeaders))
		for key, value := range c.DefaultHeaders {
			clone.DefaultHeaders[key] = value
		}
	}

	return &clone
}
