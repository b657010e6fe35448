package constants

import "errors"

// Configuration errors.
var (
	ErrNoServiceConfigured = errors.New("no credentials configured for service, use 'watson config set-credentials' first")
	ErrUnknownService      = errors.New("unknown service")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
)

// Input errors.
var (
	ErrTextRequired       = errors.New("text is required (pass it as an argument or with --file)")
	ErrAudioFileRequired  = errors.New("audio file is required")
	ErrOutputFileRequired = errors.New("output file is required")
	ErrTargetRequired     = errors.New("--target or --model is required")
	ErrEmptySecret        = errors.New("empty value entered")
)
