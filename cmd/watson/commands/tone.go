package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	ta "github.com/fivetwenty-io/watson/pkg/services/toneanalyzerv3"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/fivetwenty-io/watson/pkg/watsonclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewToneCommand creates the tone command.
func NewToneCommand() *cobra.Command {
	var (
		sentences bool
		tones     []string
		language  string
	)

	cmd := &cobra.Command{
		Use:   "tone TEXT...",
		Short: "Analyze the tone of text",
		Long:  "Analyze the emotional and language tones of text with Tone Analyzer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := watsonConfig(ta.DefaultServiceName, defaultToneVersion)
			if err != nil {
				return err
			}

			analyzer, err := watsonclient.NewToneAnalyzerV3(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			options := &ta.ToneOptions{
				ToneInput: &ta.ToneInput{Text: strings.Join(args, " ")},
				Sentences: watson.Bool(sentences),
				Tones:     watson.CSV(tones),
			}

			if language != "" {
				options.ContentLanguage = watson.String(language)
			}

			analysis, _, err := analyzer.Tone(context.Background(), options)
			if err != nil {
				return fmt.Errorf("failed to analyze tone: %w", err)
			}

			return render(cmd, analysis, func(table *tablewriter.Table) error {
				table.Header("Scope", "Tone", "Score")

				if analysis.DocumentTone != nil {
					for _, tone := range analysis.DocumentTone.Tones {
						_ = table.Append("document", tone.ToneName, formatScore(tone.Score))
					}
				}

				for _, sentence := range analysis.SentencesTone {
					scope := "sentence " + strconv.FormatInt(sentence.SentenceID, 10)
					for _, tone := range sentence.Tones {
						_ = table.Append(scope, tone.ToneName, formatScore(tone.Score))
					}
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&sentences, "sentences", true, "analyze each sentence as well as the document")
	cmd.Flags().StringSliceVar(&tones, "tones", nil, "legacy tone categories (emotion, language, social)")
	cmd.Flags().StringVar(&language, "language", "", "language of the text (en or fr)")

	return cmd
}
