package lexer

import (
	"rdparser/internals"
	"unicode"
)

func NewScanner(line string) *Scanner {
	scanner := Scanner{
		Content: []rune(line),
		Cur:     0,
	}
	return &scanner
}

func (s *Scanner) Pos() int { return s.Cur }
func (s *Scanner) Len() int { return len(s.Content) }

func (s *Scanner) AtEnd() bool {
	return s.Cur >= len(s.Content)
}

// Current returns the rune under the cursor, false when the line is exhausted
func (s *Scanner) Current() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.Content[s.Cur], true
}

func (s *Scanner) AtLetter() bool {
	char, ok := s.Current()
	return ok && isLetter(char)
}

func (s *Scanner) AtDigit() bool {
	char, ok := s.Current()
	return ok && isDigit(char)
}

// Peek checks that the remaining text starts with lit without moving
func (s *Scanner) Peek(lit Literal) bool {
	runes := []rune(lit)
	if len(runes) > len(s.Content)-s.Cur {
		return false
	}
	for idx, char := range runes {
		if s.Content[s.Cur+idx] != char {
			return false
		}
	}
	return true
}

// Match consumes lit if the remaining text starts with it
func (s *Scanner) Match(lit Literal) bool {
	if !s.Peek(lit) {
		return false
	}
	s.Cur += len([]rune(lit))
	return true
}

// PeekRelOperator returns the first relational operator (in trial order) the
// remaining text starts with
func (s *Scanner) PeekRelOperator() (Literal, bool) {
	for _, op := range RelOperators {
		if s.Peek(op) {
			return op, true
		}
	}
	return "", false
}

func (s *Scanner) SkipWhiteSpace() {
	for s.Cur < len(s.Content) && isWhiteSpace(s.Content[s.Cur]) {
		s.Cur++
	}
}

// ReadIdentifier consumes a maximal run of letters, the run is consumed even
// when it's too long
func (s *Scanner) ReadIdentifier() (string, error) {
	startPos := s.Cur
	for s.Cur < len(s.Content) && isLetter(s.Content[s.Cur]) {
		s.Cur++
	}

	text := string(s.Content[startPos:s.Cur])
	if s.Cur-startPos > MaxRunLength {
		return "", internals.NewLineError(internals.ErrLexicalLength, startPos, "identifier %q", text)
	}
	return text, nil
}

// ReadNumber consumes a maximal run of digits and converts it to an int32
func (s *Scanner) ReadNumber() (int32, error) {
	startPos := s.Cur
	for s.Cur < len(s.Content) && isDigit(s.Content[s.Cur]) {
		s.Cur++
	}

	text := string(s.Content[startPos:s.Cur])
	if len(text) == 0 {
		return 0, internals.NewLineError(internals.ErrArithmetic, startPos, "expected a number literal")
	}
	if s.Cur-startPos > MaxRunLength {
		return 0, internals.NewLineError(internals.ErrLexicalLength, startPos, "number %q", text)
	}

	var value int64
	for _, char := range s.Content[startPos:s.Cur] {
		value = value*10 + int64(digitValue(char))
	}
	if value > 1<<31-1 {
		return 0, internals.NewLineError(internals.ErrArithmetic, startPos, "number %q doesn't fit in 32 bits", text)
	}
	return int32(value), nil
}

func isLetter(char rune) bool {
	return unicode.IsLetter(char)
}

// any decimal digit (Nd), not only ascii
func isDigit(char rune) bool {
	return unicode.IsDigit(char)
}

// digitValue gives the value of a decimal digit. Nd digits are laid out in
// contiguous 0-9 blocks, each range of the table starts on a zero.
func digitValue(char rune) int {
	if '0' <= char && char <= '9' {
		return int(char - '0')
	}
	for _, r := range unicode.Nd.R16 {
		if lo, hi := rune(r.Lo), rune(r.Hi); lo <= char && char <= hi {
			return int((char-lo)/rune(r.Stride)) % 10
		}
	}
	for _, r := range unicode.Nd.R32 {
		if lo, hi := rune(r.Lo), rune(r.Hi); lo <= char && char <= hi {
			return int((char-lo)/rune(r.Stride)) % 10
		}
	}
	return -1
}

// isWhiteSpace accepts the space separators and the ascii control separators,
// the no-break spaces and NEL are regular characters
func isWhiteSpace(char rune) bool {
	switch char {
	case '\u00A0', '\u2007', '\u202F':
		return false
	case '\u001C', '\u001D', '\u001E', '\u001F':
		return true
	}
	return unicode.IsSpace(char) && char != '\u0085'
}
