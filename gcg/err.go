package gcg

import (
	"errors"

	"github.com/MalachiBurnett/Logic-Gate-CPU/translate"
)

var f = translate.From

var (
	ErrTemplateEmpty = errors.New(f("template has no root element"))
)

// ErrTemplate reports a template document that cannot be loaded or parsed.
type ErrTemplate struct {
	Err error
}

func (err *ErrTemplate) Error() string {
	return f("template %v", err.Err)
}

func (err *ErrTemplate) Unwrap() error {
	return err.Err
}

// ErrDocument reports a document that cannot be decoded.
type ErrDocument struct {
	Err error
}

func (err *ErrDocument) Error() string {
	return f("document %v", err.Err)
}

func (err *ErrDocument) Unwrap() error {
	return err.Err
}

// ErrCircuitMissing names a circuit absent from a document.
type ErrCircuitMissing string

func (err ErrCircuitMissing) Error() string {
	return f("circuit %v missing", string(err))
}

// ErrGateType reports a gate type the network model does not know.
type ErrGateType struct {
	ID   int
	Type string
}

func (err *ErrGateType) Error() string {
	return f("gate %d type %v unknown", err.ID, err.Type)
}

// ErrDangling reports a wire whose endpoint names no gate in its circuit.
type ErrDangling struct {
	Wire int
	ID   int
}

func (err *ErrDangling) Error() string {
	return f("wire %d refers to missing gate %d", err.Wire, err.ID)
}

// ErrDuplicate reports a gate identity used more than once in a circuit.
type ErrDuplicate struct {
	ID int
}

func (err *ErrDuplicate) Error() string {
	return f("gate %d duplicated", err.ID)
}
