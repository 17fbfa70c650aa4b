package lexer_test

import (
	"errors"
	"rdparser/internals"
	"rdparser/lexer"
	"testing"
)

func TestPeekAndMatch(t *testing.T) {
	sc := lexer.NewScanner("print x;")

	if !sc.Peek("print") {
		t.Fatalf("expected peek(print) to be true")
	}
	if sc.Pos() != 0 {
		t.Fatalf("peek moved the cursor to %d", sc.Pos())
	}
	if sc.Match("int") {
		t.Fatalf("match(int) should fail on %q", "print x;")
	}
	if sc.Pos() != 0 {
		t.Fatalf("failed match moved the cursor to %d", sc.Pos())
	}
	if !sc.Match("print") || sc.Pos() != 5 {
		t.Fatalf("expected cursor at 5 after match(print), got=%d", sc.Pos())
	}
	if sc.Peek("x; and more") {
		t.Fatalf("peek past the end of line should be false")
	}
}

func TestPeekRelOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"== 1 2", "==", true},
		{"!= 1 2", "!=", true},
		{"<= 1 2", "<=", true},
		{">= 1 2", ">=", true},
		{"< 1 2", "<", true},
		{"> 1 2", ">", true},
		{"<1 2", "<", true},
		{"= 1 2", "", false},
		{"! 1 2", "", false},
		{"x", "", false},
	}

	for _, tt := range tests {
		sc := lexer.NewScanner(tt.input)
		op, ok := sc.PeekRelOperator()
		if ok != tt.ok || op != tt.expected {
			t.Errorf("input=%q expected=(%q,%v), got=(%q,%v)", tt.input, tt.expected, tt.ok, op, ok)
		}
	}
}

func TestSkipWhiteSpace(t *testing.T) {
	sc := lexer.NewScanner(" \t\n x")
	sc.SkipWhiteSpace()
	if sc.Pos() != 4 {
		t.Fatalf("expected cursor at 4, got=%d", sc.Pos())
	}
	sc.SkipWhiteSpace()
	if sc.Pos() != 4 {
		t.Fatalf("skipping on a letter moved the cursor to %d", sc.Pos())
	}

	tests := []struct {
		input string
		end   int
	}{
		{"\u2003\u2028\u001fx", 3},
		{"\u00a0x", 0},
		{"\u2007x", 0},
		{"\u202fx", 0},
		{"\u0085x", 0},
	}
	for _, tt := range tests {
		sc := lexer.NewScanner(tt.input)
		sc.SkipWhiteSpace()
		if sc.Pos() != tt.end {
			t.Errorf("input=%q expected cursor=%d, got=%d", tt.input, tt.end, sc.Pos())
		}
	}
}

func TestReadIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		end      int
		err      error
	}{
		{"x;", "x", 1, nil},
		{"abcdefghij;", "abcdefghij", 10, nil},
		{"abcdefghijk;", "", 11, internals.ErrLexicalLength},
		{"ab1", "ab", 2, nil},
		{"1ab", "", 0, nil},
		{"éte=", "éte", 3, nil},
	}

	for _, tt := range tests {
		sc := lexer.NewScanner(tt.input)
		name, err := sc.ReadIdentifier()
		if !errors.Is(err, tt.err) {
			t.Errorf("input=%q expected err=%v, got=%v", tt.input, tt.err, err)
		}
		if name != tt.expected {
			t.Errorf("input=%q expected=%q, got=%q", tt.input, tt.expected, name)
		}
		// the run is consumed even when it's too long
		if sc.Pos() != tt.end {
			t.Errorf("input=%q expected cursor=%d, got=%d", tt.input, tt.end, sc.Pos())
		}
	}
}

func TestReadNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected int32
		end      int
		err      error
	}{
		{"0;", 0, 1, nil},
		{"42+1", 42, 2, nil},
		{"2147483647", 2147483647, 10, nil},
		{"0000000001", 1, 10, nil},
		{"2147483648", 0, 10, internals.ErrArithmetic},
		{"9999999999", 0, 10, internals.ErrArithmetic},
		{"12345678901", 0, 11, internals.ErrLexicalLength},
		{"x", 0, 0, internals.ErrArithmetic},
		// other decimal digit scripts
		{"٣;", 3, 1, nil},
		{"४२+1", 42, 2, nil},
		{"１０", 10, 2, nil},
		{"٢١٤٧٤٨٣٦٤٨", 0, 10, internals.ErrArithmetic},
	}

	for _, tt := range tests {
		sc := lexer.NewScanner(tt.input)
		value, err := sc.ReadNumber()
		if !errors.Is(err, tt.err) {
			t.Errorf("input=%q expected err=%v, got=%v", tt.input, tt.err, err)
		}
		if value != tt.expected {
			t.Errorf("input=%q expected=%d, got=%d", tt.input, tt.expected, value)
		}
		if sc.Pos() != tt.end {
			t.Errorf("input=%q expected cursor=%d, got=%d", tt.input, tt.end, sc.Pos())
		}
	}
}

func TestErrorPosition(t *testing.T) {
	sc := lexer.NewScanner("  abcdefghijkl")
	sc.SkipWhiteSpace()
	_, err := sc.ReadIdentifier()

	var lineErr *internals.LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected a *LineError, got=%T", err)
	}
	if lineErr.Pos != 2 {
		t.Errorf("expected the error at the start of the run (2), got=%d", lineErr.Pos)
	}
}
