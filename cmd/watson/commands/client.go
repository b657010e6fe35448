package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ErrUnknownService is returned for a service name the CLI does not know.
var ErrUnknownService = errors.New("unknown service")

// Default API versions used when the config sets none.
const (
	defaultTranslatorVersion = "2018-05-01"
	defaultToneVersion       = "2017-09-21"
)

// serviceAliases maps short names to VCAP_SERVICES names.
var serviceAliases = map[string]string{
	"translator":         constants.LanguageTranslatorServiceName,
	"assistant":          constants.AssistantServiceName,
	"stt":                constants.SpeechToTextServiceName,
	"tts":                constants.TextToSpeechServiceName,
	"tone":               constants.ToneAnalyzerServiceName,
	"nlu":                constants.NaturalLanguageUnderstandingServiceName,
	"nlc":                constants.NaturalLanguageClassifierServiceName,
	"personality":        constants.PersonalityInsightsServiceName,
	"visual_recognition": constants.VisualRecognitionServiceName,
	"discovery":          constants.DiscoveryServiceName,
}

// resolveServiceName accepts a VCAP_SERVICES name or one of its aliases.
func resolveServiceName(name string) (string, error) {
	name = strings.ToLower(name)

	if canonical, ok := serviceAliases[name]; ok {
		return canonical, nil
	}

	for _, canonical := range serviceAliases {
		if canonical == name {
			return canonical, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownService, name)
}

// watsonConfig builds the client configuration of serviceName from the CLI
// config file, the environment and the global flags.
func watsonConfig(serviceName, defaultVersion string) (*watson.Config, error) {
	cliConfig := loadConfig()
	svc := cliConfig.service(serviceName)

	config := &watson.Config{
		URL:                    svc.URL,
		ServiceName:            serviceName,
		Version:                svc.Version,
		IAMAPIKey:              svc.APIKey,
		Username:               svc.Username,
		Password:               svc.Password,
		IAMURL:                 svc.IAMURL,
		DisableSSLVerification: svc.SkipSSLValidation || viper.GetBool("skip-ssl-validation"),
	}

	if config.Version == "" {
		config.Version = defaultVersion
	}

	if viper.GetBool("verbose") {
		logger, err := newLogger()
		if err != nil {
			return nil, err
		}

		config.Logger = logger
		config.Debug = true
	}

	if viper.GetBool("learning-opt-out") {
		chain := watson.NewInterceptorChain()
		chain.AddRequestInterceptor(watson.LearningOptOutInterceptor())
		config.Interceptors = chain
	}

	cache, err := newTokenCache(cliConfig.Cache)
	if err != nil {
		return nil, err
	}

	config.TokenCache = cache

	return config, nil
}

// newLogger returns a development zap logger writing to stderr.
func newLogger() (*watson.ZapLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return watson.NewZapLogger(logger), nil
}

// newTokenCache builds the configured token cache, or nil when none is set.
func newTokenCache(settings *CacheSettings) (watson.Cache, error) {
	if settings == nil || settings.Type == "" {
		return nil, nil //nolint:nilnil // no cache configured
	}

	config := &watson.CacheConfig{Type: watson.CacheType(settings.Type)}

	if config.Type == watson.CacheTypeNATS {
		config.NATS = &watson.NATSKVConfig{URL: settings.NATSURL, Bucket: settings.Bucket}
		config.Options = watson.DefaultCacheOptions()
	}

	cache, err := watson.NewCacheFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}

	return cache, nil
}
