package export

import (
	"errors"

	"github.com/MalachiBurnett/Logic-Gate-CPU/translate"
)

var f = translate.From

var (
	ErrFormatInvalid = errors.New(f("export format invalid"))
)

// ErrExport indicates the format whose export failed.
type ErrExport struct {
	Format Format
	Err    error
}

func (err *ErrExport) Error() string {
	return f("export %v %v", err.Format.String(), err.Err)
}

func (err *ErrExport) Unwrap() error {
	return err.Err
}
