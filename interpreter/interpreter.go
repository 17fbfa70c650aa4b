package interpreter

import (
	"io"
	"rdparser/internals"
	"rdparser/lexer"
	"rdparser/object"
	"strings"
)

var (
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Interpreter parses and executes one line at a time, nothing is kept between
// two lines. It is not safe for concurrent use.
type Interpreter struct {
	env   *object.Environment
	sc    *lexer.Scanner
	out   io.Writer
	trace *tracer
}

func NewInterpreter(env *object.Environment, out io.Writer) *Interpreter {
	if env == nil {
		env = object.NewEnvironment()
	}
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{
		env: env,
		out: out,
	}
}

// Env exposes the variable table of the last line that ran
func (i *Interpreter) Env() *object.Environment { return i.env }

// Run executes a whole line. prints are written to the output as soon as they
// are reached, so a failing line may already have printed something.
func (i *Interpreter) Run(line string) error {
	i.env.Clear()
	i.sc = lexer.NewScanner(line)

	// evalProgram only succeeds with the cursor at the end of the line
	err := i.evalProgram()
	i.trace.verdict(line, err, i.env.Names())
	return err
}

func nativeBooleanObject(val bool) *object.Boolean {
	if val {
		return TRUE
	}
	return FALSE
}

func (i *Interpreter) syntaxError(format string, a ...any) error {
	return internals.NewLineError(internals.ErrSyntax, i.sc.Pos(), format, a...)
}

// expect skips the whitespace and consumes lit, or fails the line
func (i *Interpreter) expect(lit lexer.Literal) error {
	i.sc.SkipWhiteSpace()
	if !i.sc.Match(lit) {
		return i.syntaxError("expected %q", lit)
	}
	return nil
}

func (i *Interpreter) evalProgram() error {
	for !i.sc.AtEnd() {
		i.sc.SkipWhiteSpace()
		if i.sc.AtEnd() {
			break
		}

		var err error
		if i.sc.Peek(lexer.TokenInt) {
			err = i.evalDeclaration()
		} else {
			err = i.evalStatement()
		}
		if err != nil {
			return err
		}

		i.sc.SkipWhiteSpace()
	}
	return nil
}

func (i *Interpreter) parseVar() (string, error) {
	i.sc.SkipWhiteSpace()
	start := i.sc.Pos()
	name, err := i.sc.ReadIdentifier()
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", internals.NewLineError(internals.ErrSyntax, start, "expected a variable name")
	}
	return name, nil
}

// int name ;
func (i *Interpreter) evalDeclaration() error {
	start := i.sc.Pos()
	i.sc.Match(lexer.TokenInt)

	name, err := i.parseVar()
	if err != nil {
		return err
	}
	if err := i.expect(lexer.TokenSemiColon); err != nil {
		return err
	}

	i.env.Declare(name)
	i.trace.statement("declaration", i.sc.Content[start:i.sc.Pos()])
	return nil
}

func (i *Interpreter) evalStatement() error {
	i.sc.SkipWhiteSpace()
	start := i.sc.Pos()

	var (
		kind string
		err  error
	)
	switch {
	case i.sc.Match(lexer.TokenPrint):
		kind, err = "print", i.evalPrintStatement()
	case i.sc.Match(lexer.TokenDo):
		kind, err = "do-while", i.evalDoWhileStatement()
	default:
		kind, err = "assignment", i.evalAssignStatement()
	}
	if err != nil {
		return err
	}

	i.trace.statement(kind, i.sc.Content[start:i.sc.Pos()])
	return nil
}

// print (bexpr | aexpr) ;
func (i *Interpreter) evalPrintStatement() error {
	i.sc.SkipWhiteSpace()

	var result object.Object
	if _, isRelop := i.sc.PeekRelOperator(); isRelop {
		value, err := i.evalBexpr()
		if err != nil {
			return err
		}
		result = nativeBooleanObject(value)
	} else {
		value, err := i.evalAexpr()
		if err != nil {
			return err
		}
		result = &object.Integer{Value: value}
	}

	if err := i.expect(lexer.TokenSemiColon); err != nil {
		return err
	}
	PRINT(i.out, result)
	return nil
}

// do { statement* } while ( bexpr )
// the body runs exactly once while it is parsed, the condition is then checked
// once and a false condition fails the line
func (i *Interpreter) evalDoWhileStatement() error {
	if err := i.expect(lexer.TokenCurlyBraceOpen); err != nil {
		return err
	}

	for {
		i.sc.SkipWhiteSpace()
		if i.sc.Peek(lexer.TokenCurlyBraceClose) {
			break
		}
		// declarations aren't allowed in the body
		if err := i.evalStatement(); err != nil {
			return err
		}
	}
	i.sc.Match(lexer.TokenCurlyBraceClose)

	if err := i.expect(lexer.TokenWhile); err != nil {
		return err
	}
	if err := i.expect(lexer.TokenBraceOpen); err != nil {
		return err
	}

	i.sc.SkipWhiteSpace()
	condPos := i.sc.Pos()
	cond, err := i.evalBexpr()
	if err != nil {
		return err
	}
	if err := i.expect(lexer.TokenBraceClose); err != nil {
		return err
	}

	if !cond {
		return internals.NewLineError(internals.ErrLoopConditionFalse, condPos, "%s", strings.TrimSpace(string(i.sc.Content[condPos:i.sc.Pos()-1])))
	}
	return nil
}

// name = aexpr ;
func (i *Interpreter) evalAssignStatement() error {
	name, err := i.parseVar()
	if err != nil {
		return err
	}
	namePos := i.sc.Pos() - len([]rune(name))

	if err := i.expect(lexer.TokenAssign); err != nil {
		return err
	}
	value, err := i.evalAexpr()
	if err != nil {
		return err
	}
	if err := i.expect(lexer.TokenSemiColon); err != nil {
		return err
	}

	// the variable is checked last, after the whole statement parsed
	if err := i.env.Assign(name, value); err != nil {
		return internals.NewLineError(internals.ErrUndeclaredVariable, namePos, "%s", name)
	}
	return nil
}
