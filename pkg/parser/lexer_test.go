package parser

import (
	"errors"
	"testing"

	"github.com/asevik/symexpr/pkg/types"
)

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "integer",
			input: "42",
			want:  []Token{{TokenNumber, "42", 0}},
		},
		{
			name:  "decimal",
			input: "3.14",
			want:  []Token{{TokenNumber, "3.14", 0}},
		},
		{
			name:  "trailing dot",
			input: "2.",
			want:  []Token{{TokenNumber, "2.", 0}},
		},
		{
			name:  "imaginary literal",
			input: "2.5i",
			want:  []Token{{TokenNumber, "2.5i", 0}},
		},
		{
			name:  "operators",
			input: "+-*/^",
			want: []Token{
				{TokenPlus, "+", 0},
				{TokenMinus, "-", 1},
				{TokenMult, "*", 2},
				{TokenDiv, "/", 3},
				{TokenPow, "^", 4},
			},
		},
		{
			name:  "whitespace skipped positions kept",
			input: "  x  +  1",
			want: []Token{
				{TokenName, "x", 2},
				{TokenPlus, "+", 5},
				{TokenNumber, "1", 8},
			},
		},
		{
			name:  "identifiers lower cased",
			input: "Sin(X)",
			want: []Token{
				{TokenName, "sin", 0},
				{TokenParenOpen, "(", 3},
				{TokenName, "x", 4},
				{TokenParenClose, ")", 5},
			},
		},
		{
			name:  "number glued to name",
			input: "2x",
			want: []Token{
				{TokenNumber, "2", 0},
				{TokenName, "x", 1},
			},
		},
		{
			name:  "full expression",
			input: "2*x + sin(y)",
			want: []Token{
				{TokenNumber, "2", 0},
				{TokenMult, "*", 1},
				{TokenName, "x", 2},
				{TokenPlus, "+", 4},
				{TokenName, "sin", 6},
				{TokenParenOpen, "(", 9},
				{TokenName, "y", 10},
				{TokenParenClose, ")", 11},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := ScanAll(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.want))
			}
			for i, tok := range toks {
				if tok != tt.want[i] {
					t.Errorf("token %d: got %+v, want %+v", i, tok, tt.want[i])
				}
			}
		})
	}
}

func TestLexerEOF(t *testing.T) {
	l := NewLexer("x")
	if tok := l.Next(); tok.Type != TokenName {
		t.Fatalf("first token %v, want name", tok.Type)
	}
	// EOF is sticky.
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Type != TokenEOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok.Type)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode types.ErrorCode
		wantPos  int
	}{
		{name: "double decimal point", input: "1.2.3", wantCode: types.ErrBadNumber, wantPos: 0},
		{name: "stray character", input: "x + $", wantCode: types.ErrBadNumber, wantPos: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanAll(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var serr *types.Error
			if !errors.As(err, &serr) {
				t.Fatalf("error type %T, want *types.Error", err)
			}
			if serr.Code != tt.wantCode {
				t.Errorf("code %s, want %s", serr.Code, tt.wantCode)
			}
			if serr.Position != tt.wantPos {
				t.Errorf("position %d, want %d", serr.Position, tt.wantPos)
			}
		})
	}
}
