// Package speechtotextv1 defines the Speech to Text V1 service: synchronous,
// streaming and asynchronous recognition plus custom language models.
package speechtotextv1

import (
	"context"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Service defaults.
const (
	DefaultServiceName = constants.SpeechToTextServiceName
	DefaultServiceURL  = constants.SpeechToTextURL
)

// Client is the Speech to Text V1 API.
type Client interface {
	ListModels(ctx context.Context, options *ListModelsOptions) (*SpeechModels, *watson.DetailedResponse, error)
	GetModel(ctx context.Context, options *GetModelOptions) (*SpeechModel, *watson.DetailedResponse, error)

	// Recognize transcribes audio in a single request.
	Recognize(ctx context.Context, options *RecognizeOptions) (*SpeechRecognitionResults, *watson.DetailedResponse, error)
	// RecognizeUsingWebsocket streams audio over a websocket and reports
	// events to options.Callback. It blocks until the service has returned
	// the final results, the context is done or an error occurs.
	RecognizeUsingWebsocket(ctx context.Context, options *RecognizeUsingWebsocketOptions) error

	CreateJob(ctx context.Context, options *CreateJobOptions) (*RecognitionJob, *watson.DetailedResponse, error)
	CheckJobs(ctx context.Context, options *CheckJobsOptions) (*RecognitionJobs, *watson.DetailedResponse, error)
	CheckJob(ctx context.Context, options *CheckJobOptions) (*RecognitionJob, *watson.DetailedResponse, error)
	DeleteJob(ctx context.Context, options *DeleteJobOptions) (*watson.DetailedResponse, error)
	RegisterCallback(ctx context.Context, options *RegisterCallbackOptions) (*RegisterStatus, *watson.DetailedResponse, error)
	UnregisterCallback(ctx context.Context, options *UnregisterCallbackOptions) (*watson.DetailedResponse, error)

	CreateLanguageModel(ctx context.Context, options *CreateLanguageModelOptions) (*LanguageModel, *watson.DetailedResponse, error)
	ListLanguageModels(ctx context.Context, options *ListLanguageModelsOptions) (*LanguageModels, *watson.DetailedResponse, error)
	GetLanguageModel(ctx context.Context, options *GetLanguageModelOptions) (*LanguageModel, *watson.DetailedResponse, error)
	DeleteLanguageModel(ctx context.Context, options *DeleteLanguageModelOptions) (*watson.DetailedResponse, error)
	TrainLanguageModel(ctx context.Context, options *TrainLanguageModelOptions) (*watson.DetailedResponse, error)
	ResetLanguageModel(ctx context.Context, options *ResetLanguageModelOptions) (*watson.DetailedResponse, error)

	AddCorpus(ctx context.Context, options *AddCorpusOptions) (*watson.DetailedResponse, error)
	ListCorpora(ctx context.Context, options *ListCorporaOptions) (*Corpora, *watson.DetailedResponse, error)
	ListWords(ctx context.Context, options *ListWordsOptions) (*Words, *watson.DetailedResponse, error)
	AddWords(ctx context.Context, options *AddWordsOptions) (*watson.DetailedResponse, error)
	DeleteWord(ctx context.Context, options *DeleteWordOptions) (*watson.DetailedResponse, error)

	DeleteUserData(ctx context.Context, options *DeleteUserDataOptions) (*watson.DetailedResponse, error)

	ServiceURL() string
}

// RecognizeCallback receives the events of a websocket recognition. Methods
// are called from the goroutine running RecognizeUsingWebsocket.
type RecognizeCallback interface {
	// OnOpen is called once the websocket is connected.
	OnOpen()
	// OnListening is called when the service is ready to receive audio.
	OnListening()
	// OnTranscription is called for every interim or final result message.
	OnTranscription(results *SpeechRecognitionResults)
	// OnError is called for service-reported and connection errors.
	OnError(err error)
	// OnClose is called when the connection has been closed.
	OnClose()
}

// BaseRecognizeCallback implements RecognizeCallback with no-ops, for
// embedding in callbacks that only care about some events.
type BaseRecognizeCallback struct{}

// OnOpen does nothing.
func (BaseRecognizeCallback) OnOpen() {}

// OnListening does nothing.
func (BaseRecognizeCallback) OnListening() {}

// OnTranscription does nothing.
func (BaseRecognizeCallback) OnTranscription(*SpeechRecognitionResults) {}

// OnError does nothing.
func (BaseRecognizeCallback) OnError(error) {}

// OnClose does nothing.
func (BaseRecognizeCallback) OnClose() {}
