package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = constants.NotAvailable
	Masked       = "***"

	defaultJSONIndent = "  "
)

// render writes data in the selected output format. fill populates the table
// for the default format.
func render(cmd *cobra.Command, data interface{}, fill func(table *tablewriter.Table) error) error {
	out := cmd.OutOrStdout()

	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(data)
	default:
		table := tablewriter.NewWriter(out)

		err := fill(table)
		if err != nil {
			return err
		}

		err = table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 3, 64)
}

func valueOrNA(value *string) string {
	if value == nil || *value == "" {
		return NotAvailable
	}

	return *value
}
