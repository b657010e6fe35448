package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/watson/pkg/watsonclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	var (
		service   string
		showToken bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Request an IAM access token",
		Long:  "Exchange the IAM API key of a configured service for an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveServiceName(service)
			if err != nil {
				return err
			}

			config, err := watsonConfig(name, "")
			if err != nil {
				return err
			}

			config, err = watsonclient.ResolveConfig(config, name, "")
			if err != nil {
				return err
			}

			token, err := watsonclient.RequestIAMToken(context.Background(), config)
			if err != nil {
				return fmt.Errorf("failed to request token: %w", err)
			}

			if !showToken {
				token.AccessToken = Masked
			}

			return render(cmd, token, func(table *tablewriter.Table) error {
				table.Header("Field", "Value")
				_ = table.Append("Access token", token.AccessToken)
				_ = table.Append("Token type", token.TokenType)
				_ = table.Append("Expires at", token.ExpiresAt.Format(time.RFC3339))
				_ = table.Append("Refresh at", token.RefreshAt.Format(time.RFC3339))

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", "language_translator", "service whose credentials are used")
	cmd.Flags().BoolVar(&showToken, "show-token", false, "print the access token instead of masking it")

	return cmd
}
