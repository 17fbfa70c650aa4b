package lexer

type Literal = string

const (

	// Keywords
	TokenInt   Literal = "int"
	TokenPrint Literal = "print"
	TokenDo    Literal = "do"
	TokenWhile Literal = "while"

	// Units
	TokenCurlyBraceOpen  Literal = "{"
	TokenCurlyBraceClose Literal = "}"
	TokenBraceOpen       Literal = "("
	TokenBraceClose      Literal = ")"
	TokenSemiColon       Literal = ";"
	TokenAssign          Literal = "="

	// Arithmetic Operators
	TokenPlus     Literal = "+"
	TokenMinus    Literal = "-"
	TokenMultiply Literal = "*"
	TokenSlash    Literal = "/"

	// Relational Operators
	TokenEquals         Literal = "=="
	TokenNotEquals      Literal = "!="
	TokenLessOrEqual    Literal = "<="
	TokenGreaterOrEqual Literal = ">="
	TokenLess           Literal = "<"
	TokenGreater        Literal = ">"
)

// identifiers and number literals can't be longer than this
const MaxRunLength = 10

type Scanner struct {
	Content []rune
	Cur     int
}
