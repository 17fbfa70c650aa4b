package lexer

var (
	// trial order matters, two char operators go before their one char prefix
	RelOperators = []Literal{
		TokenEquals,
		TokenNotEquals,
		TokenLessOrEqual,
		TokenGreaterOrEqual,
		TokenLess,
		TokenGreater,
	}

	ArithOperators = map[rune]Literal{
		'+': TokenPlus,
		'-': TokenMinus,
		'*': TokenMultiply,
		'/': TokenSlash,
	}
)
