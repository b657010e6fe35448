package commands

import (
	"context"
	"fmt"
	"strings"

	lt "github.com/fivetwenty-io/watson/pkg/services/languagetranslatorv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/fivetwenty-io/watson/pkg/watsonclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTranslator() (lt.Client, error) {
	config, err := watsonConfig(lt.DefaultServiceName, defaultTranslatorVersion)
	if err != nil {
		return nil, err
	}

	translator, err := watsonclient.NewLanguageTranslatorV3(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return translator, nil
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	var source, target, modelID string

	cmd := &cobra.Command{
		Use:   "translate TEXT...",
		Short: "Translate text",
		Long:  "Translate text with Language Translator. Each argument is translated separately.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			translator, err := newTranslator()
			if err != nil {
				return err
			}

			options := &lt.TranslateOptions{Text: args}

			if modelID != "" {
				options.ModelID = watson.String(modelID)
			}

			if source != "" {
				options.Source = watson.String(source)
			}

			if target != "" {
				options.Target = watson.String(target)
			}

			result, _, err := translator.Translate(context.Background(), options)
			if err != nil {
				return fmt.Errorf("failed to translate: %w", err)
			}

			return render(cmd, result, func(table *tablewriter.Table) error {
				table.Header("Text", "Translation")

				for i, translation := range result.Translations {
					text := NotAvailable
					if i < len(args) {
						text = args[i]
					}

					_ = table.Append(text, translation.Translation)
				}

				if modelID == "" && source == "" {
					_ = table.Append("(detected language)", valueOrNA(result.DetectedLanguage))
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source language code")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target language code")
	cmd.Flags().StringVarP(&modelID, "model", "m", "", "translation model ID (overrides source and target)")

	return cmd
}

// NewIdentifyCommand creates the identify command.
func NewIdentifyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "identify TEXT...",
		Short: "Identify the language of text",
		Long:  "Identify the language of text with Language Translator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			translator, err := newTranslator()
			if err != nil {
				return err
			}

			result, _, err := translator.Identify(context.Background(), &lt.IdentifyOptions{Text: strings.Join(args, " ")})
			if err != nil {
				return fmt.Errorf("failed to identify language: %w", err)
			}

			if limit > 0 && len(result.Languages) > limit {
				result.Languages = result.Languages[:limit]
			}

			return render(cmd, result, func(table *tablewriter.Table) error {
				table.Header("Language", "Confidence")

				for _, language := range result.Languages {
					_ = table.Append(language.Language, formatScore(language.Confidence))
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 5, "number of candidates to show (0 for all)")

	return cmd
}

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List identifiable languages",
		Long:  "List the languages Language Translator can identify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			translator, err := newTranslator()
			if err != nil {
				return err
			}

			result, _, err := translator.ListIdentifiableLanguages(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list languages: %w", err)
			}

			return render(cmd, result, func(table *tablewriter.Table) error {
				table.Header("Language", "Name")

				for _, language := range result.Languages {
					_ = table.Append(language.Language, language.Name)
				}

				return nil
			})
		},
	}
}
