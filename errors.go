package fielddata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFieldData is wrapped by every structural validation error.
	ErrInvalidFieldData = errors.New("invalid field data")
)

// ErrOrdinalOutOfRange indicates a document referencing a slot outside the dictionary.
type ErrOrdinalOutOfRange struct {
	DocID       int
	Ordinal     int
	NumOrdinals int
}

func (e *ErrOrdinalOutOfRange) Error() string {
	return fmt.Sprintf("doc %d: ordinal %d out of range [0, %d)", e.DocID, e.Ordinal, e.NumOrdinals)
}

func (e *ErrOrdinalOutOfRange) Unwrap() error { return ErrInvalidFieldData }

// ErrLengthMismatch indicates values and freqs of different lengths.
type ErrLengthMismatch struct {
	Values int
	Freqs  int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("values/freqs length mismatch: %d != %d", e.Values, e.Freqs)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidFieldData }

// ErrMissingSentinel indicates a dictionary without the reserved slot 0.
type ErrMissingSentinel struct{}

func (e *ErrMissingSentinel) Error() string {
	return "dictionary has no sentinel slot"
}

func (e *ErrMissingSentinel) Unwrap() error { return ErrInvalidFieldData }
