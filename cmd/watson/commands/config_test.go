package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveServiceName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"translator", constants.LanguageTranslatorServiceName, false},
		{"TTS", constants.TextToSpeechServiceName, false},
		{"speech_to_text", constants.SpeechToTextServiceName, false},
		{"natural-language-understanding", constants.NaturalLanguageUnderstandingServiceName, false},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			name, err := resolveServiceName(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownService)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, setConfigValue(config, "output", constants.FormatYAML))
	require.NoError(t, setConfigValue(config, "tone.url", "https://tone.example.com"))
	require.NoError(t, setConfigValue(config, "tone.version", "2017-09-21"))
	require.NoError(t, setConfigValue(config, "stt.skip_ssl_validation", "true"))
	require.NoError(t, setConfigValue(config, "cache.type", "nats"))
	require.NoError(t, setConfigValue(config, "cache.bucket", "tokens"))

	assert.Equal(t, constants.FormatYAML, config.Output)
	assert.Equal(t, "https://tone.example.com", config.Services[constants.ToneAnalyzerServiceName].URL)
	assert.Equal(t, "2017-09-21", config.Services[constants.ToneAnalyzerServiceName].Version)
	assert.True(t, config.Services[constants.SpeechToTextServiceName].SkipSSLValidation)
	assert.Equal(t, &CacheSettings{Type: "nats", Bucket: "tokens"}, config.Cache)

	require.ErrorIs(t, setConfigValue(config, "output", "xml"), ErrInvalidOutput)
	require.ErrorIs(t, setConfigValue(config, "tone.colour", "red"), ErrUnknownConfigKey)
	require.ErrorIs(t, setConfigValue(config, "cache.size", "1"), ErrUnknownConfigKey)
	require.ErrorIs(t, setConfigValue(config, "nokey", "1"), ErrUnknownConfigKey)
	require.ErrorIs(t, setConfigValue(config, "bogus.url", "x"), ErrUnknownService)
	require.Error(t, setConfigValue(config, "stt.skip_ssl_validation", "maybe"))
}

func TestMaskSecrets(t *testing.T) {
	t.Parallel()

	config := &Config{Services: map[string]*ServiceConfig{
		"tone_analyzer":       {URL: "https://tone", APIKey: "secret-key"},
		"language_translator": {Username: "user", Password: "pass"},
		"empty":               nil,
	}}

	masked := maskSecrets(config)

	assert.Equal(t, Masked, masked.Services["tone_analyzer"].APIKey)
	assert.Equal(t, "https://tone", masked.Services["tone_analyzer"].URL)
	assert.Equal(t, "user", masked.Services["language_translator"].Username)
	assert.Equal(t, Masked, masked.Services["language_translator"].Password)
	assert.NotContains(t, masked.Services, "empty")

	// the original is untouched
	assert.Equal(t, "secret-key", config.Services["tone_analyzer"].APIKey)
}

func TestAuthKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "iam", authKind(&ServiceConfig{APIKey: "k"}))
	assert.Equal(t, "iam", authKind(&ServiceConfig{Username: constants.IAMAPIKeyUsername, Password: "k"}))
	assert.Equal(t, "basic", authKind(&ServiceConfig{Username: "u", Password: "p"}))
	assert.Equal(t, "none", authKind(&ServiceConfig{}))
}

func executeConfig(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	cmd := NewConfigCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	require.NoError(t, viper.ReadInConfig())

	return out.String()
}

func TestConfigCommand_RoundTrip(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)

	out := executeConfig(t, "set", "translator.url", "https://api.eu-de.language-translator.watson.cloud.ibm.com")
	assert.Contains(t, out, "Set translator.url")

	out = executeConfig(t, "set-credentials", "tone", "--apikey", "tone-key", "--url", "https://tone.example.com")
	assert.Contains(t, out, "Stored credentials for tone_analyzer")

	config := loadConfig()
	assert.Equal(t, "https://api.eu-de.language-translator.watson.cloud.ibm.com", config.Services[constants.LanguageTranslatorServiceName].URL)
	assert.Equal(t, "tone-key", config.Services[constants.ToneAnalyzerServiceName].APIKey)

	viper.Set("output", constants.FormatJSON)

	var shown Config

	out = executeConfig(t, "show")
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, Masked, shown.Services[constants.ToneAnalyzerServiceName].APIKey)
	assert.Equal(t, "https://tone.example.com", shown.Services[constants.ToneAnalyzerServiceName].URL)
}

func TestConfigSetCredentials_ReadsPromptFromStdin(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))

	cmd := NewConfigCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("prompted-key\n"))
	cmd.SetArgs([]string{"set-credentials", "nlu"})
	require.NoError(t, cmd.Execute())

	require.NoError(t, viper.ReadInConfig())
	assert.Equal(t, "prompted-key", loadConfig().Services[constants.NaturalLanguageUnderstandingServiceName].APIKey)
}
