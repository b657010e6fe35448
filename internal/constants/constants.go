package constants

import "time"

// SDK identification.
const (
	// SDKVersion is reported in the User-Agent header.
	SDKVersion = "1.0.0"

	// DefaultUserAgent is sent on every request unless overridden.
	DefaultUserAgent = "watson-apis-go-sdk-" + SDKVersion
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single service call.
	DefaultHTTPTimeout = 60 * time.Second

	// ShortHTTPTimeout is used for quick operations such as token requests.
	ShortHTTPTimeout = 10 * time.Second

	// WebsocketHandshakeTimeout bounds the speech-to-text websocket upgrade.
	WebsocketHandshakeTimeout = 45 * time.Second
)

// DefaultBatchConcurrency is the number of batch calls run at once.
const DefaultBatchConcurrency = 5

// Retry limits. Watson calls are single-attempt unless RetryMax is configured.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// IAM token service.
const (
	// DefaultIAMURL is the IAM token endpoint.
	DefaultIAMURL = "https://iam.cloud.ibm.com/identity/token"

	// IAMRequestTokenGrantType exchanges an API key for a token.
	IAMRequestTokenGrantType = "urn:ibm:params:oauth:grant-type:apikey"

	// IAMRequestTokenResponseType is required by the apikey grant.
	IAMRequestTokenResponseType = "cloud_iam"

	// IAMRefreshTokenGrantType exchanges a refresh token for a token.
	IAMRefreshTokenGrantType = "refresh_token"

	// IAMDefaultClientID and IAMDefaultClientSecret form the default basic
	// auth pair sent to the token endpoint.
	IAMDefaultClientID     = "bx"
	IAMDefaultClientSecret = "bx"

	// IAMTokenTTLFraction is the fraction of the token TTL after which the
	// token is considered expired and refreshed.
	IAMTokenTTLFraction = 0.8

	// IAMRefreshTokenLifetime is how long after access-token expiry the
	// refresh token may still be used.
	IAMRefreshTokenLifetime = 7 * 24 * time.Hour

	// IAMAPIKeyUsername is the username that marks the password as an IAM API key.
	IAMAPIKeyUsername = "apikey"

	// ICPPrefix marks IBM Cloud Private keys, which use basic auth instead of IAM.
	ICPPrefix = "icp-"
)

// Legacy static API key handling.
const (
	// APIKeyQueryParam carries the legacy static API key.
	APIKeyQueryParam = "api_key"

	// GatewayAPIKeyQueryParam is used by the legacy gateway-a host.
	GatewayAPIKeyQueryParam = "apikey"

	// GatewayAURLPrefix identifies the legacy gateway-a host.
	GatewayAURLPrefix = "https://gateway-a.watsonplatform.net/calls"
)

// Header names.
const (
	HeaderAccept            = "Accept"
	HeaderAcceptLanguage    = "Accept-Language"
	HeaderAuthorization     = "Authorization"
	HeaderContentLanguage   = "Content-Language"
	HeaderContentType       = "Content-Type"
	HeaderUserAgent         = "User-Agent"
	HeaderSDKAnalytics      = "X-IBMCloud-SDK-Analytics"
	HeaderGlobalTransaction = "X-Global-Transaction-Id"
	HeaderWatsonTransaction = "X-Dp-Watson-Tran-Id"
	HeaderWatsonMetadata    = "X-Watson-Metadata"
	HeaderLearningOptOut    = "X-Watson-Learning-Opt-Out"
	HeaderLoggingOptOut     = "X-Watson-Logging-Opt-Out"
)

// Content types.
const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeTextPlain      = "text/plain"
	ContentTypeOctetStream    = "application/octet-stream"
	ContentTypeCSV            = "text/csv"
)

// Environment.
const (
	// VCAPServicesEnv is the Cloud Foundry credentials variable.
	VCAPServicesEnv = "VCAP_SERVICES"

	// QueryParamVersion is the dated API version query parameter.
	QueryParamVersion = "version"
)

// Service defaults: VCAP_SERVICES key, default URL and analytics version.
const (
	LanguageTranslatorServiceName = "language_translator"
	LanguageTranslatorURL         = "https://gateway.watsonplatform.net/language-translator/api"

	AssistantServiceName = "conversation"
	AssistantURL         = "https://gateway.watsonplatform.net/assistant/api"

	SpeechToTextServiceName = "speech_to_text"
	SpeechToTextURL         = "https://stream.watsonplatform.net/speech-to-text/api"

	TextToSpeechServiceName = "text_to_speech"
	TextToSpeechURL         = "https://stream.watsonplatform.net/text-to-speech/api"

	ToneAnalyzerServiceName = "tone_analyzer"
	ToneAnalyzerURL         = "https://gateway.watsonplatform.net/tone-analyzer/api"

	NaturalLanguageUnderstandingServiceName = "natural-language-understanding"
	NaturalLanguageUnderstandingURL         = "https://gateway.watsonplatform.net/natural-language-understanding/api"

	NaturalLanguageClassifierServiceName = "natural_language_classifier"
	NaturalLanguageClassifierURL         = "https://gateway.watsonplatform.net/natural-language-classifier/api"

	PersonalityInsightsServiceName = "personality_insights"
	PersonalityInsightsURL         = "https://gateway.watsonplatform.net/personality-insights/api"

	VisualRecognitionServiceName = "watson_vision_combined"
	VisualRecognitionURL         = "https://gateway.watsonplatform.net/visual-recognition/api"

	DiscoveryServiceName = "discovery"
	DiscoveryURL         = "https://gateway.watsonplatform.net/discovery/api"
)

// Cache defaults.
const (
	// DefaultCacheSize is the default number of entries in the memory cache.
	DefaultCacheSize = 100

	// DefaultNATSBucket is the JetStream KV bucket used for shared tokens.
	DefaultNATSBucket = "watson-tokens"

	// DefaultNATSTTL bounds how long a shared token entry lives in the bucket.
	DefaultNATSTTL = 1 * time.Hour
)

// Speech-to-text websocket.
const (
	// WebsocketChunkSize is the audio chunk size sent per binary frame.
	WebsocketChunkSize = 8192

	// WebsocketReadLimit caps a single server message.
	WebsocketReadLimit = 4 << 20
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)
