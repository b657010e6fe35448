//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranslatorWorkflow stores credentials, then translates and identifies text
func TestTranslatorWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	runner.StoreCredentials("translator", config.TranslatorAPIKey, config.TranslatorURL)

	t.Run("ConfigShowMasksSecrets", func(t *testing.T) {
		stdout, _, err := runner.Run("config", "show", "--output", "json")
		require.NoError(t, err)

		var shown struct {
			Services map[string]struct {
				APIKey string `json:"apikey"`
			} `json:"services"`
		}
		DecodeJSON(t, stdout, &shown)
		assert.Equal(t, "***", shown.Services["language_translator"].APIKey)
	})

	t.Run("Translate", func(t *testing.T) {
		stdout, stderr, err := runner.Run("translate", "Hello, world", "--model", "en-es", "--output", "json")
		require.NoError(t, err, stderr)

		var result struct {
			Translations []struct {
				Translation string `json:"translation"`
			} `json:"translations"`
			WordCount int `json:"word_count"`
		}
		DecodeJSON(t, stdout, &result)
		require.Len(t, result.Translations, 1)
		assert.NotEmpty(t, result.Translations[0].Translation)
		assert.Positive(t, result.WordCount)
	})

	t.Run("Identify", func(t *testing.T) {
		stdout, stderr, err := runner.Run("identify", "Bonjour", "tout", "le", "monde", "--output", "json")
		require.NoError(t, err, stderr)

		var result struct {
			Languages []struct {
				Language string `json:"language"`
			} `json:"languages"`
		}
		DecodeJSON(t, stdout, &result)
		require.NotEmpty(t, result.Languages)
		assert.Equal(t, "fr", result.Languages[0].Language)
	})

	t.Run("LanguagesYAML", func(t *testing.T) {
		stdout, stderr, err := runner.Run("languages", "--output", "yaml")
		require.NoError(t, err, stderr)
		AssertYAMLOutput(t, stdout)
		assert.Contains(t, stdout, "language: en")
	})

	t.Run("UnknownModel", func(t *testing.T) {
		_, stderr, err := runner.Run("translate", "Hello", "--model", "xx-yy")
		require.Error(t, err)
		assert.Contains(t, stderr, "Code: 404")
	})
}

// TestTokenWorkflow exchanges the translator API key for an IAM token
func TestTokenWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	runner.StoreCredentials("translator", config.TranslatorAPIKey, config.TranslatorURL)

	stdout, stderr, err := runner.Run("token", "--service", "translator", "--output", "json")
	require.NoError(t, err, stderr)

	var token struct {
		AccessToken string    `json:"access_token"`
		TokenType   string    `json:"token_type"`
		ExpiresAt   time.Time `json:"expires_at"`
		RefreshAt   time.Time `json:"refresh_at"`
	}
	DecodeJSON(t, stdout, &token)

	assert.Equal(t, "***", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))
	assert.True(t, token.RefreshAt.Before(token.ExpiresAt))
}

// TestSpeechWorkflow lists voices and synthesizes a short phrase
func TestSpeechWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	if config.TTSAPIKey == "" {
		t.Skip("TEXT_TO_SPEECH_APIKEY not set, skipping speech workflow")
	}

	runner := NewCommandRunner(config, t)
	runner.StoreCredentials("tts", config.TTSAPIKey, config.TTSURL)

	stdout, stderr, err := runner.Run("voices", "--output", "json")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "en-US_AllisonV3Voice")

	target := filepath.Join(t.TempDir(), "hello.wav")

	_, stderr, err = runner.Run("synthesize", "Hello", "world", "--voice", "en-US_AllisonV3Voice", "--out", target)
	require.NoError(t, err, stderr)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
