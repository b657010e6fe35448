package commands

import (
	"bufio"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Static errors for the config commands.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidOutput    = errors.New("output must be table, json or yaml")
	ErrNoCredentials    = errors.New("no credentials given")
)

// Config represents the CLI configuration file.
type Config struct {
	Output   string                    `json:"output,omitempty"   mapstructure:"output"   yaml:"output,omitempty"`
	Services map[string]*ServiceConfig `json:"services,omitempty" mapstructure:"services" yaml:"services,omitempty"`
	Cache    *CacheSettings            `json:"cache,omitempty"    mapstructure:"cache"    yaml:"cache,omitempty"`
}

// ServiceConfig holds the endpoint and credentials of one service. Services
// are keyed by their VCAP_SERVICES name.
type ServiceConfig struct {
	URL               string `json:"url,omitempty"                 mapstructure:"url"                 yaml:"url,omitempty"`
	Version           string `json:"version,omitempty"             mapstructure:"version"             yaml:"version,omitempty"`
	APIKey            string `json:"apikey,omitempty"              mapstructure:"apikey"              yaml:"apikey,omitempty"`
	Username          string `json:"username,omitempty"            mapstructure:"username"            yaml:"username,omitempty"`
	Password          string `json:"password,omitempty"            mapstructure:"password"            yaml:"password,omitempty"`
	IAMURL            string `json:"iam_url,omitempty"             mapstructure:"iam_url"             yaml:"iam_url,omitempty"`
	SkipSSLValidation bool   `json:"skip_ssl_validation,omitempty" mapstructure:"skip_ssl_validation" yaml:"skip_ssl_validation,omitempty"`
}

// CacheSettings selects the IAM token cache shared between CLI invocations.
type CacheSettings struct {
	Type    string `json:"type,omitempty"     mapstructure:"type"     yaml:"type,omitempty"`
	NATSURL string `json:"nats_url,omitempty" mapstructure:"nats_url" yaml:"nats_url,omitempty"`
	Bucket  string `json:"bucket,omitempty"   mapstructure:"bucket"   yaml:"bucket,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Watson CLI configuration including service endpoints and credentials",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetCredentialsCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := maskSecrets(loadConfig())

			return render(cmd, config, func(table *tablewriter.Table) error {
				table.Header("Service", "URL", "Version", "Auth")

				for _, name := range slices.Sorted(maps.Keys(config.Services)) {
					svc := config.Services[name]
					_ = table.Append(name, orNA(svc.URL), orNA(svc.Version), authKind(svc))
				}

				if config.Cache != nil {
					_ = table.Append("token cache", orNA(config.Cache.NATSURL), "", config.Cache.Type)
				}

				return nil
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Keys are "output", "cache.<type|nats_url|bucket>"
or "<service>.<url|version|apikey|username|password|iam_url|skip_ssl_validation>".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetCredentialsCommand() *cobra.Command {
	var apiKey, username, password, serviceURL, iamURL string

	cmd := &cobra.Command{
		Use:   "set-credentials SERVICE",
		Short: "Store credentials for a service",
		Long: `Store credentials for a service. Without --apikey or --username the API key
is read from the terminal without echo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveServiceName(args[0])
			if err != nil {
				return err
			}

			if apiKey == "" && username == "" {
				apiKey, err = promptSecret(cmd, "API key: ")
				if err != nil {
					return err
				}
			}

			if username != "" && password == "" {
				password, err = promptSecret(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			if apiKey == "" && (username == "" || password == "") {
				return ErrNoCredentials
			}

			config := loadConfig()
			svc := config.service(name)
			svc.APIKey, svc.Username, svc.Password = apiKey, username, password

			if serviceURL != "" {
				svc.URL = serviceURL
			}

			if iamURL != "" {
				svc.IAMURL = iamURL
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored credentials for %s\n", name)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "apikey", "", "IAM API key")
	cmd.Flags().StringVarP(&username, "username", "u", "", "service username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "service password")
	cmd.Flags().StringVar(&serviceURL, "url", "", "service URL")
	cmd.Flags().StringVar(&iamURL, "iam-url", "", "IAM token endpoint")

	return cmd
}

// promptSecret reads a secret without echo when stdin is a terminal.
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)

	fd := int(os.Stdin.Fd()) //nolint:gosec // stdin descriptor fits in int

	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// service returns the entry for name, creating it if needed.
func (c *Config) service(name string) *ServiceConfig {
	if c.Services == nil {
		c.Services = make(map[string]*ServiceConfig)
	}

	svc, ok := c.Services[name]
	if !ok || svc == nil {
		svc = &ServiceConfig{}
		c.Services[name] = svc
	}

	return svc
}

// setConfigValue applies one "config set" key.
func setConfigValue(config *Config, key, value string) error {
	if key == "output" {
		if !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, value) {
			return ErrInvalidOutput
		}

		config.Output = value

		return nil
	}

	prefix, field, ok := strings.Cut(key, ".")
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	if prefix == "cache" {
		return setCacheValue(config, field, value)
	}

	name, err := resolveServiceName(prefix)
	if err != nil {
		return err
	}

	svc := config.service(name)

	switch field {
	case "url":
		svc.URL = value
	case "version":
		svc.Version = value
	case "apikey":
		svc.APIKey = value
	case "username":
		svc.Username = value
	case "password":
		svc.Password = value
	case "iam_url":
		svc.IAMURL = value
	case "skip_ssl_validation":
		skip, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		svc.SkipSSLValidation = skip
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return nil
}

func setCacheValue(config *Config, field, value string) error {
	if config.Cache == nil {
		config.Cache = &CacheSettings{}
	}

	switch field {
	case "type":
		config.Cache.Type = value
	case "nats_url":
		config.Cache.NATSURL = value
	case "bucket":
		config.Cache.Bucket = value
	default:
		return fmt.Errorf("%w: cache.%s", ErrUnknownConfigKey, field)
	}

	return nil
}

func loadConfig() *Config {
	config := &Config{
		Output:   viper.GetString("output"),
		Services: make(map[string]*ServiceConfig),
	}

	_ = viper.UnmarshalKey("services", &config.Services)

	if viper.IsSet("cache") {
		var cache CacheSettings

		err := viper.UnmarshalKey("cache", &cache)
		if err == nil {
			config.Cache = &cache
		}
	}

	return config
}

// configFilePath returns the file in use, or $HOME/.watson/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".watson", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// maskSecrets returns a copy of config safe to print.
func maskSecrets(config *Config) *Config {
	masked := &Config{Output: config.Output, Cache: config.Cache, Services: make(map[string]*ServiceConfig, len(config.Services))}

	for name, svc := range config.Services {
		if svc == nil {
			continue
		}

		copied := *svc
		if copied.APIKey != "" {
			copied.APIKey = Masked
		}

		if copied.Password != "" {
			copied.Password = Masked
		}

		masked.Services[name] = &copied
	}

	return masked
}

func authKind(svc *ServiceConfig) string {
	switch {
	case svc.APIKey != "":
		return "iam"
	case svc.Username == constants.IAMAPIKeyUsername && svc.Password != "":
		return "iam"
	case svc.Username != "":
		return "basic"
	default:
		return "none"
	}
}

func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
