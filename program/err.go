package program

import (
	"github.com/ekarademir/vm16/translate"
)

var f = translate.From

// ErrBadRegister reports a register index outside the register set.
type ErrBadRegister int

func (err ErrBadRegister) Error() string {
	return f("%d is not a register index", int(err))
}

// ErrBadWord reports a literal or address that does not fit in a word.
type ErrBadWord int

func (err ErrBadWord) Error() string {
	return f("%d does not fit in a 16-bit word", int(err))
}

// ErrBadByte reports a data value that does not fit in a byte.
type ErrBadByte int

func (err ErrBadByte) Error() string {
	return f("%d does not fit in a byte", int(err))
}

// ErrKeywordArgs reports keyword arguments passed to a data builtin.
type ErrKeywordArgs string

func (err ErrKeywordArgs) Error() string {
	return f("%v: unexpected keyword argument", string(err))
}

// ErrScript wraps a failure while evaluating a program script.
type ErrScript struct {
	Name string
	Err  error
}

func (err ErrScript) Error() string {
	return f("script %v: %v", err.Name, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
