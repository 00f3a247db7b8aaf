package memory

import (
	"github.com/ekarademir/vm16/translate"
)

var f = translate.From

// ErrOutOfBounds reports a byte or word access past the end of the buffer.
// Memory accessors panic with this value; the fault is not recoverable.
type ErrOutOfBounds struct {
	Offset int // Offending address.
	Width  int // Access width in bytes (1 or 2).
	Size   int // Buffer length.
}

func (err ErrOutOfBounds) Error() string {
	return f("%d byte access at %#04x out of bounds of %d byte buffer", err.Width, err.Offset, err.Size)
}
