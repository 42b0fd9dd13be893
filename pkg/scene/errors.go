package scene

import "errors"

var (
	ErrUnknownScene = errors.New("unknown scene")
)
