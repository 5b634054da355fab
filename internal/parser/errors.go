package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports an add or edit line missing a required marker or field.
	ErrSyntax = errors.New("invalid transaction syntax")
	// ErrTransactionType reports a type token other than Income or Expense.
	ErrTransactionType = errors.New("invalid transaction type")
	// ErrEmptyArgument reports an index-bearing command with nothing after its name.
	ErrEmptyArgument = errors.New("empty argument")
	// ErrCategory reports a category that is not in the taxonomy.
	ErrCategory = errors.New("invalid category")
	// ErrDate reports a date that is not dd-MM-yyyy.
	ErrDate = errors.New("invalid date")
)

// NumericFormatError reports a token that should have been a number.
type NumericFormatError struct {
	Field string
	Text  string
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("%s %q is not a valid number", e.Field, e.Text)
}
