package ascii

import "errors"

// ErrUnknownResampler indicates a resampler name that is not registered.
var ErrUnknownResampler = errors.New("ascii: unknown resampler")
