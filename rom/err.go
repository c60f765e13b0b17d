package rom

import (
	"errors"

	"github.com/MalachiBurnett/Logic-Gate-CPU/translate"
)

var f = translate.From

var (
	ErrRejected    = errors.New(f("memory image rejected"))
	ErrSelectLines = errors.New(f("select line count invalid"))
)

// ErrWordDigit reports a character other than '0' or '1' in a word.
type ErrWordDigit struct {
	Row    int
	Column int
	Char   rune
}

func (err *ErrWordDigit) Error() string {
	return f("row %d column %d '%c' is not a bit", err.Row, err.Column, err.Char)
}

func (err *ErrWordDigit) Is(target error) bool {
	return target == ErrRejected
}

// ErrWordWidth reports a word whose width differs from the first row.
type ErrWordWidth struct {
	Row      int
	Width    int
	Expected int
}

func (err *ErrWordWidth) Error() string {
	return f("row %d has %d bits, expected %d", err.Row, err.Width, err.Expected)
}

func (err *ErrWordWidth) Is(target error) bool {
	return target == ErrRejected
}

// ErrMismatch reports an address whose network output differs from the image.
type ErrMismatch struct {
	Address int
	Got     Word
	Want    Word
}

func (err *ErrMismatch) Error() string {
	return f("address %d reads %v, expected %v", err.Address, string(err.Got), string(err.Want))
}
