// Package uncertainty generates center/generator pairs for the uncertainty
// sets of a catalog entry under one of three policies.
//
// The "standard" policy returns hand-specified literals and is bit-for-bit
// reproducible. The "diag" policy draws axis-aligned boxes and the "rand"
// policy draws dense, arbitrarily oriented generator matrices; both draw from
// an explicitly supplied [Source].
package uncertainty

import (
	"errors"
	"fmt"
)

type Mode string

const (
	Standard Mode = "standard"
	Diag     Mode = "diag"
	Rand     Mode = "rand"
)

var (
	ErrUnknownMode     = errors.New("uncertainty: unknown mode")
	ErrUnsupportedMode = errors.New("uncertainty: mode not supported")
	ErrNilSource       = errors.New("uncertainty: random source required")
	ErrInvalidParams   = errors.New("uncertainty: invalid parameters")
)

// Modes lists every mode in a stable order.
func Modes() []Mode {
	return []Mode{Standard, Diag, Rand}
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Standard, Diag, Rand:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	return string(m)
}

// Random reports whether the mode draws from a Source.
func (m Mode) Random() bool {
	return m == Diag || m == Rand
}

// Source is the random number source used by the diag and rand modes.
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
	NormFloat64() float64
}
