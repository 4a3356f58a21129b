package kernels

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is returned for characters outside 0-9, A-Z, a-z.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrDigitExceedsBase is returned when a digit value is >= the base.
	ErrDigitExceedsBase = errors.New("digit exceeds base")
)

// DigitError describes the first character ParseInt rejected.
type DigitError struct {
	Pos  int
	Char byte
	Base int64
	Err  error
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("parse byte %#02x at %d (base %d): %v",
		e.Char, e.Pos, e.Base, e.Err)
}

func (e *DigitError) Unwrap() error {
	return e.Err
}

// ParseInt reads s as a big-endian digit sequence in the given base.
// Digits are 0-9 then A-Z (or a-z) for 10-35.
func ParseInt(s string, base int64) (int64, error) {
	var n int64

	for i := 0; i < len(s); i++ {
		c := s[i]

		var d int64

		switch {
		case c >= '0' && c <= '9':
			d = int64(c - '0')
		case c >= 'A' && c <= 'Z':
			d = int64(c-'A') + 10
		case c >= 'a' && c <= 'z':
			d = int64(c-'a') + 10
		default:
			return 0, &DigitError{Pos: i, Char: c, Base: base, Err: ErrInvalidDigit}
		}

		if base <= d {
			return 0, &DigitError{Pos: i, Char: c, Base: base, Err: ErrDigitExceedsBase}
		}

		n = n*base + d
	}

	return n, nil
}
