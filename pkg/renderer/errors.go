package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: invalid image dimensions")
	ErrNoSamples         = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidGamma      = errors.New("renderer: gamma must be positive")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
