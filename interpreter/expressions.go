package interpreter

import (
	"rdparser/internals"
	"rdparser/lexer"
)

// term { (+|-|*|/) term }, folded left to right with no precedence
func (i *Interpreter) evalAexpr() (int32, error) {
	value, err := i.evalTerm()
	if err != nil {
		return 0, err
	}
	i.sc.SkipWhiteSpace()

	for {
		char, ok := i.sc.Current()
		if !ok {
			return value, nil
		}
		op, isOp := lexer.ArithOperators[char]
		if !isOp {
			return value, nil
		}
		opPos := i.sc.Pos()
		i.sc.Match(op)

		right, err := i.evalTerm()
		if err != nil {
			return 0, err
		}
		value, err = evalIntegerInfixExpression(op, value, right, opPos)
		if err != nil {
			return 0, err
		}
		i.sc.SkipWhiteSpace()
	}
}

// number | identifier | ( aexpr )
func (i *Interpreter) evalTerm() (int32, error) {
	i.sc.SkipWhiteSpace()
	start := i.sc.Pos()

	switch {
	case i.sc.AtDigit():
		return i.sc.ReadNumber()

	case i.sc.AtLetter():
		name, err := i.sc.ReadIdentifier()
		if err != nil {
			return 0, err
		}
		value, err := i.env.Resolve(name)
		if err != nil {
			return 0, internals.NewLineError(internals.ErrUndeclaredVariable, start, "%s", name)
		}
		return value, nil

	case i.sc.Match(lexer.TokenBraceOpen):
		value, err := i.evalAexpr()
		if err != nil {
			return 0, err
		}
		if err := i.expect(lexer.TokenBraceClose); err != nil {
			return 0, err
		}
		return value, nil

	default:
		return 0, i.syntaxError("expected a number, a variable or '('")
	}
}

// relop aexpr aexpr
func (i *Interpreter) evalBexpr() (bool, error) {
	i.sc.SkipWhiteSpace()
	op, ok := i.sc.PeekRelOperator()
	if !ok {
		return false, i.syntaxError("expected a relational operator")
	}
	opPos := i.sc.Pos()
	i.sc.Match(op)

	left, err := i.evalAexpr()
	if err != nil {
		return false, err
	}
	right, err := i.evalAexpr()
	if err != nil {
		return false, err
	}

	switch op {
	case lexer.TokenEquals:
		return left == right, nil
	case lexer.TokenNotEquals:
		return left != right, nil
	case lexer.TokenLess:
		return left < right, nil
	case lexer.TokenGreater:
		return left > right, nil
	case lexer.TokenLessOrEqual:
		return left <= right, nil
	case lexer.TokenGreaterOrEqual:
		return left >= right, nil
	default:
		return false, internals.NewLineError(internals.ErrSyntax, opPos, "unknown operator %q", op)
	}
}

func evalIntegerInfixExpression(op lexer.Literal, left, right int32, pos int) (int32, error) {
	switch op {
	case lexer.TokenPlus:
		return left + right, nil
	case lexer.TokenMinus:
		return left - right, nil
	case lexer.TokenMultiply:
		return left * right, nil
	case lexer.TokenSlash:
		if right == 0 {
			return 0, internals.NewLineError(internals.ErrArithmetic, pos, "division by zero")
		}
		// truncates toward zero, MinInt32 / -1 stays MinInt32
		return left / right, nil
	default:
		return 0, internals.NewLineError(internals.ErrSyntax, pos, "unknown operator %q", op)
	}
}
