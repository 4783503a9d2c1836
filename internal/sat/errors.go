package sat

import "errors"

// Precondition violations reported by the ingestion path (FromDIMACS,
// AddClause). These are the only errors the core ever returns; everything
// else either succeeds or sets the solver's unsat flag.
var (
	// ErrMalformedLiteral is returned by FromDIMACS when given 0, which
	// DIMACS reserves as a clause terminator.
	ErrMalformedLiteral = errors.New("sat: 0 is not a valid literal")

	// ErrVariableOutOfRange is returned when a clause references a variable
	// index that was never declared with AddVariable.
	ErrVariableOutOfRange = errors.New("sat: variable index out of range")
)
