package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fivetwenty-io/watson/internal/constants"
	internalhttp "github.com/fivetwenty-io/watson/internal/http"
	stt "github.com/fivetwenty-io/watson/pkg/services/speechtotextv1"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

const (
	actionStart    = "start"
	actionStop     = "stop"
	stateListening = "listening"
	closeTimeout   = time.Second
)

// recognizeStart is the first text frame of a websocket recognition.
type recognizeStart struct {
	Action         string `json:"action"`
	ContentType    string `json:"content-type"`
	InterimResults *bool  `json:"interim_results,omitempty"`

	recognizeParams
}

// recognizeMessage is any text frame sent by the service.
type recognizeMessage struct {
	State string `json:"state,omitempty"`
	Error string `json:"error,omitempty"`

	stt.SpeechRecognitionResults
}

// RecognizeUsingWebsocket streams audio to /v1/recognize and reports the
// session to the callback.
func (c *SpeechToTextV1) RecognizeUsingWebsocket(ctx context.Context, options *stt.RecognizeUsingWebsocketOptions) error {
	if options != nil && options.Callback == nil {
		return fmt.Errorf("recognizing audio over websocket: %w", watson.ErrCallbackRequired)
	}

	err := watson.ValidateOptions(options)
	if err != nil {
		return fmt.Errorf("recognizing audio over websocket: %w", err)
	}

	params := newRecognizeParams(options.RecognizeParameters)

	query, err := internalhttp.EncodeQuery(struct {
		Model                   *string `schema:"model,omitempty"`
		LanguageCustomizationID *string `schema:"language_customization_id,omitempty"`
		AcousticCustomizationID *string `schema:"acoustic_customization_id,omitempty"`
		BaseModelVersion        *string `schema:"base_model_version,omitempty"`
	}{params.Model, params.LanguageCustomizationID, params.AcousticCustomizationID, params.BaseModelVersion})
	if err != nil {
		return fmt.Errorf("recognizing audio over websocket: %w", err)
	}

	conn, err := c.httpClient.DialWebsocket(ctx, "/v1/recognize", query)
	if err != nil {
		options.Callback.OnError(err)

		return fmt.Errorf("recognizing audio over websocket: %w", err)
	}

	session := &recognizeSession{
		conn:     conn,
		callback: options.Callback,
		logger:   c.logger,
	}

	start := recognizeStart{
		Action:          actionStart,
		ContentType:     audioContentType(options.ContentType),
		InterimResults:  options.InterimResults,
		recognizeParams: params,
	}

	err = session.run(ctx, start, options.Audio)
	if err != nil {
		return fmt.Errorf("recognizing audio over websocket: %w", err)
	}

	return nil
}

// recognizeSession drives one websocket recognition. The audio goroutine is
// the only writer until it has sent the stop action.
type recognizeSession struct {
	conn     *websocket.Conn
	callback stt.RecognizeCallback
	logger   watson.Logger
}

func (s *recognizeSession) run(ctx context.Context, start recognizeStart, audio io.Reader) error {
	defer func() {
		_ = s.conn.Close()

		s.callback.OnClose()
	}()

	s.callback.OnOpen()

	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.Close()
	})
	defer stop()

	err := s.conn.WriteJSON(start)
	if err != nil {
		return s.fail(fmt.Errorf("sending start message: %w", err))
	}

	sent := make(chan error, 1)

	go func() {
		sent <- s.sendAudio(audio)
	}()

	listening := false

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return s.fail(ctx.Err())
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}

			select {
			case sendErr := <-sent:
				if sendErr != nil {
					return s.fail(sendErr)
				}
			default:
			}

			return s.fail(fmt.Errorf("reading message: %w", err))
		}

		var message recognizeMessage

		err = json.Unmarshal(data, &message)
		if err != nil {
			return s.fail(fmt.Errorf("%w: %w", watson.ErrInvalidModel, err))
		}

		switch {
		case message.Error != "":
			return s.fail(fmt.Errorf("%w: %s", watson.ErrRecognitionFailed, message.Error))
		case message.State == stateListening && !listening:
			listening = true

			s.callback.OnListening()
		case message.State == stateListening:
			// The second listening state follows the final results of the stop action.
			err = <-sent
			if err != nil {
				return s.fail(err)
			}

			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(closeTimeout))

			return nil
		case len(message.Results) > 0 || len(message.SpeakerLabels) > 0:
			results := message.SpeechRecognitionResults
			s.callback.OnTranscription(&results)
		}
	}
}

// sendAudio writes audio as binary frames followed by the stop action.
func (s *recognizeSession) sendAudio(audio io.Reader) error {
	buf := make([]byte, constants.WebsocketChunkSize)
	total := 0

	for {
		n, err := audio.Read(buf)
		if n > 0 {
			total += n

			writeErr := s.conn.WriteMessage(websocket.BinaryMessage, buf[:n])
			if writeErr != nil {
				return fmt.Errorf("sending audio: %w", writeErr)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("reading audio: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Debug("Audio sent", map[string]interface{}{"bytes": total})
	}

	err := s.conn.WriteJSON(map[string]string{"action": actionStop})
	if err != nil {
		return fmt.Errorf("sending stop message: %w", err)
	}

	return nil
}

func (s *recognizeSession) fail(err error) error {
	if s.logger != nil {
		s.logger.Error("Recognition failed", map[string]interface{}{"error": err.Error()})
	}

	s.callback.OnError(err)

	return err
}
