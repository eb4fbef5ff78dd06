package internal

import (
	"github.com/pkg/errors"
)

// Fatal VM conditions. They end the emulated session but never the host
// process; hosts match them with errors.Is.
var (
	ErrProgramTooLarge   = errors.New("program size exceeds the maximum size")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrInvalidKey        = errors.New("invalid key index")
	ErrAddressOutOfRange = errors.New("program counter out of addressable range")
)

var fatalErrors = []error{
	ErrProgramTooLarge,
	ErrStackOverflow,
	ErrStackUnderflow,
	ErrInvalidKey,
	ErrAddressOutOfRange,
}

// IsFatal returns whether err terminates the emulated session
func IsFatal(err error) bool {
	for _, fatal := range fatalErrors {
		if errors.Is(err, fatal) {
			return true
		}
	}
	return false
}
