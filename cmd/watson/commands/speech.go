package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	stt "github.com/fivetwenty-io/watson/pkg/services/speechtotextv1"
	tts "github.com/fivetwenty-io/watson/pkg/services/texttospeechv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/fivetwenty-io/watson/pkg/watsonclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTextToSpeech() (tts.Client, error) {
	config, err := watsonConfig(tts.DefaultServiceName, "")
	if err != nil {
		return nil, err
	}

	client, err := watsonclient.NewTextToSpeechV1(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// NewVoicesCommand creates the voices command.
func NewVoicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "List synthesis voices",
		Long:  "List the voices available in Text to Speech",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newTextToSpeech()
			if err != nil {
				return err
			}

			voices, _, err := client.ListVoices(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list voices: %w", err)
			}

			return render(cmd, voices, func(table *tablewriter.Table) error {
				table.Header("Name", "Language", "Gender", "Description")

				for _, voice := range voices.Voices {
					_ = table.Append(voice.Name, voice.Language, voice.Gender, voice.Description)
				}

				return nil
			})
		},
	}
}

// NewSynthesizeCommand creates the synthesize command.
func NewSynthesizeCommand() *cobra.Command {
	var voice, accept, out string

	cmd := &cobra.Command{
		Use:   "synthesize TEXT...",
		Short: "Synthesize speech from text",
		Long:  "Synthesize speech from text with Text to Speech and write the audio to a file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newTextToSpeech()
			if err != nil {
				return err
			}

			options := &tts.SynthesizeOptions{
				Text:   strings.Join(args, " "),
				Accept: watson.String(accept),
			}

			if voice != "" {
				options.Voice = watson.String(voice)
			}

			audio, _, err := client.Synthesize(context.Background(), options)
			if err != nil {
				return fmt.Errorf("failed to synthesize: %w", err)
			}

			err = os.WriteFile(out, audio, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write audio: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(audio), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&voice, "voice", "", "voice name (for example en-US_AllisonV3Voice)")
	cmd.Flags().StringVar(&accept, "accept", "audio/wav", "audio format")
	cmd.Flags().StringVarP(&out, "out", "O", "", "output file")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// transcriptCollector gathers the final results of a websocket recognition.
type transcriptCollector struct {
	stt.BaseRecognizeCallback

	cmd     *cobra.Command
	interim bool
	results []stt.SpeechRecognitionResult
	err     error
}

func (c *transcriptCollector) OnTranscription(results *stt.SpeechRecognitionResults) {
	for _, result := range results.Results {
		if result.Final {
			c.results = append(c.results, result)

			continue
		}

		if c.interim && len(result.Alternatives) > 0 {
			_, _ = fmt.Fprintf(c.cmd.ErrOrStderr(), "... %s\n", result.Alternatives[0].Transcript)
		}
	}
}

func (c *transcriptCollector) OnError(err error) {
	c.err = errors.Join(c.err, err)
}

// FileTranscript is the recognition outcome of one audio file.
type FileTranscript struct {
	File    string                        `json:"file"              yaml:"file"`
	Results *stt.SpeechRecognitionResults `json:"results,omitempty" yaml:"results,omitempty"`
	Error   string                        `json:"error,omitempty"   yaml:"error,omitempty"`
}

// recognizer transcribes audio files over HTTP or a websocket.
type recognizer struct {
	client    stt.Client
	cmd       *cobra.Command
	params    stt.RecognizeParameters
	mediaType *string
	websocket bool
	interim   bool
}

func (r *recognizer) recognizeFile(ctx context.Context, path string) (*stt.SpeechRecognitionResults, error) {
	audio, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open audio: %w", err)
	}
	defer func() { _ = audio.Close() }()

	if !r.websocket {
		results, _, err := r.client.Recognize(ctx, &stt.RecognizeOptions{
			Audio:               audio,
			ContentType:         r.mediaType,
			RecognizeParameters: r.params,
		})

		return results, err
	}

	collector := &transcriptCollector{cmd: r.cmd, interim: r.interim}

	err = r.client.RecognizeUsingWebsocket(ctx, &stt.RecognizeUsingWebsocketOptions{
		Audio:               audio,
		ContentType:         r.mediaType,
		Callback:            collector,
		InterimResults:      watson.Bool(r.interim),
		RecognizeParameters: r.params,
	})
	if err == nil {
		err = collector.err
	}

	if err != nil {
		return nil, err
	}

	return &stt.SpeechRecognitionResults{Results: collector.results}, nil
}

// NewRecognizeCommand creates the recognize command.
func NewRecognizeCommand() *cobra.Command {
	var (
		model, contentType string
		websocket, interim bool
		concurrency        int
	)

	cmd := &cobra.Command{
		Use:   "recognize FILE...",
		Short: "Transcribe audio files",
		Long:  "Transcribe audio files with Speech to Text, over HTTP or a websocket. Files are transcribed concurrently.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := watsonConfig(stt.DefaultServiceName, "")
			if err != nil {
				return err
			}

			client, err := watsonclient.NewSpeechToTextV1(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			rec := &recognizer{client: client, cmd: cmd, websocket: websocket, interim: interim}

			if model != "" {
				rec.params.Model = watson.String(model)
			}

			if contentType != "" {
				rec.mediaType = watson.String(contentType)
			}

			operations := make([]watson.BatchOperation, len(args))
			for i, path := range args {
				operations[i] = watson.BatchOperation{
					ID: path,
					Run: func(ctx context.Context) (interface{}, error) {
						return rec.recognizeFile(ctx, path)
					},
				}
			}

			results := watson.NewBatchExecutor(concurrency).Execute(context.Background(), operations)

			transcripts := make([]FileTranscript, len(results))
			for i, result := range results {
				transcripts[i] = FileTranscript{File: result.ID}

				if result.Error != nil {
					transcripts[i].Error = result.Error.Error()

					continue
				}

				transcripts[i].Results, _ = result.Data.(*stt.SpeechRecognitionResults)
			}

			err = render(cmd, transcripts, func(table *tablewriter.Table) error {
				table.Header("File", "Transcript", "Confidence")

				for _, transcript := range transcripts {
					if transcript.Error != "" {
						_ = table.Append(transcript.File, transcript.Error, NotAvailable)

						continue
					}

					if transcript.Results == nil {
						continue
					}

					for _, result := range transcript.Results.Results {
						if len(result.Alternatives) == 0 {
							continue
						}

						best := result.Alternatives[0]

						confidence := NotAvailable
						if best.Confidence != nil {
							confidence = formatScore(*best.Confidence)
						}

						_ = table.Append(transcript.File, strings.TrimSpace(best.Transcript), confidence)
					}
				}

				return nil
			})
			if err != nil {
				return err
			}

			if failed := watson.Failed(results); len(failed) > 0 {
				return fmt.Errorf("failed to recognize %d of %d files: %w", len(failed), len(results), failed[0].Error)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "recognition model (for example en-US_BroadbandModel)")
	cmd.Flags().StringVar(&contentType, "content-type", "", "audio MIME type (detected by the service if omitted)")
	cmd.Flags().BoolVar(&websocket, "websocket", false, "stream the audio over a websocket")
	cmd.Flags().BoolVar(&interim, "interim", false, "print interim hypotheses while streaming")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of files transcribed at once")

	return cmd
}
