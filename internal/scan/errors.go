package scan

import "errors"

// ErrMalformedMessage marks a feed frame that cannot be classified. Callers
// log and drop such frames without changing the display.
var ErrMalformedMessage = errors.New("malformed scan message")
