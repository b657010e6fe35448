//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	TranslatorAPIKey string
	TranslatorURL    string
	TTSAPIKey        string
	TTSURL           string
	WatsonPath       string
	Verbose          bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		TranslatorAPIKey: os.Getenv("LANGUAGE_TRANSLATOR_APIKEY"),
		TranslatorURL:    os.Getenv("LANGUAGE_TRANSLATOR_URL"),
		TTSAPIKey:        os.Getenv("TEXT_TO_SPEECH_APIKEY"),
		TTSURL:           os.Getenv("TEXT_TO_SPEECH_URL"),
		WatsonPath:       getWatsonPath(),
		Verbose:          os.Getenv("WATSON_VERBOSE") == "true",
	}
}

// getWatsonPath determines the path to the watson binary
func getWatsonPath() string {
	if path := os.Getenv("WATSON_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../watson",
		"./watson",
		"../watson",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "watson"
}

// SkipIfMissingConfig skips test if translator credentials or the binary are missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.TranslatorAPIKey == "" {
		t.Skip("LANGUAGE_TRANSLATOR_APIKEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.WatsonPath); err != nil {
		t.Skipf("watson binary not found at %s, skipping integration test", config.WatsonPath)
	}
}

// CommandRunner runs watson commands against an isolated config file
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner with a private config file
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a watson command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a watson command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.WatsonPath, args...)
	cmd.Env = append(os.Environ(), "VCAP_SERVICES=")
	cmd.Stdin = strings.NewReader(input)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.WatsonPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// StoreCredentials saves the API key and URL of service in the runner's config file
func (runner *CommandRunner) StoreCredentials(service, apiKey, url string) {
	runner.t.Helper()

	args := []string{"config", "set-credentials", service}
	if url != "" {
		args = append(args, "--url", url)
	}

	_, stderr, err := runner.RunWithInput(apiKey+"\n", args...)
	if err != nil {
		runner.t.Fatalf("failed to store credentials for %s: %s", service, stderr)
	}
}

// DecodeJSON unmarshals command output into target
func DecodeJSON(t *testing.T, output string, target interface{}) {
	t.Helper()

	err := json.Unmarshal([]byte(strings.TrimSpace(output)), target)
	if err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
}

// AssertYAMLOutput verifies command output looks like YAML
func AssertYAMLOutput(t *testing.T, output string) {
	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
