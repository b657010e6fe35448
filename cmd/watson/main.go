package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/watson/cmd/watson/commands"
	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "watson",
	Short: "IBM Watson services CLI",
	Long: `A command-line interface for the IBM Watson cognitive services.

Credentials are read from the config file ($HOME/.watson/config.yml), from
WATSON_* environment variables or from VCAP_SERVICES.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.watson/config.yml)")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP traffic to stderr")
	rootCmd.PersistentFlags().Bool("skip-ssl-validation", false, "skip SSL certificate validation")
	rootCmd.PersistentFlags().Bool("learning-opt-out", false, "ask the services not to use request data for training")

	// Bind flags to viper
	for _, name := range []string{"config", "output", "verbose", "skip-ssl-validation", "learning-opt-out"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewTranslateCommand())
	rootCmd.AddCommand(commands.NewIdentifyCommand())
	rootCmd.AddCommand(commands.NewLanguagesCommand())
	rootCmd.AddCommand(commands.NewToneCommand())
	rootCmd.AddCommand(commands.NewVoicesCommand())
	rootCmd.AddCommand(commands.NewSynthesizeCommand())
	rootCmd.AddCommand(commands.NewRecognizeCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.watson/config.yml
		viper.AddConfigPath(filepath.Join(home, ".watson"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// WATSON_SERVICES_LANGUAGE_TRANSLATOR_APIKEY overrides services.language_translator.apikey
	viper.SetEnvPrefix("WATSON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
