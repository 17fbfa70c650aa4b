package internals

import (
	"errors"
	"fmt"
)

// kinds of line failures, every one of them is reported as SyntaxErrorMessage
var (
	ErrLexicalLength      = errors.New("identifier or number longer than 10 characters")
	ErrUndeclaredVariable = errors.New("undeclared variable")
	ErrSyntax             = errors.New("syntax error")
	ErrArithmetic         = errors.New("arithmetic error")
	ErrLoopConditionFalse = errors.New("do-while condition is false")
)

// the only message the user ever sees for a failed line
const SyntaxErrorMessage = "Syntax Error!!"

// LineError is the first failure raised while running one line
type LineError struct {
	Kind   error
	Pos    int
	Detail string
}

func NewLineError(kind error, pos int, format string, a ...any) *LineError {
	return &LineError{
		Kind:   kind,
		Pos:    pos,
		Detail: fmt.Sprintf(format, a...),
	}
}

func (e *LineError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at column %d", e.Kind, e.Pos+1)
	}
	return fmt.Sprintf("%v at column %d: %s", e.Kind, e.Pos+1, e.Detail)
}

func (e *LineError) Unwrap() error { return e.Kind }

// FailedLine keeps the source of a line that didn't run to the end
type FailedLine struct {
	Number int
	Source string
	Err    error
}

// This file handles an error collector obj

type ErrorCollector struct {
	Errors []FailedLine
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		Errors: make([]FailedLine, 0),
	}
}

func (ec *ErrorCollector) Add(number int, source string, err error) {
	ec.Errors = append(ec.Errors, FailedLine{
		Number: number,
		Source: source,
		Err:    err,
	})
}

func (ec *ErrorCollector) Len() int {
	return len(ec.Errors)
}

// Count returns how many collected failures are of the given kind
func (ec *ErrorCollector) Count(kind error) int {
	count := 0
	for _, failed := range ec.Errors {
		if errors.Is(failed.Err, kind) {
			count++
		}
	}
	return count
}
