/*
File    : golox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/reporter"
)

// kinds extracts just the token kinds, dropping lexeme/literal/line, so
// test tables can assert on shape without repeating source positions.
func kinds(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func scanAll(t *testing.T, src string) ([]Token, *reporter.Reporter) {
	t.Helper()
	rep := reporter.New()
	toks := New(src, rep).Scan()
	return toks, rep
}

func TestScanner_Punctuation(t *testing.T) {
	toks, rep := scanAll(t, "(){},.;?:")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, SEMICOLON, QUESTION, COLON, EOF,
	}, kinds(toks))
}

func TestScanner_TwoCharOperatorsGreedy(t *testing.T) {
	toks, rep := scanAll(t, "!= == <= >= ! = < >")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{
		BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL,
		BANG, EQUAL, LESS, GREATER, EOF,
	}, kinds(toks))
}

func TestScanner_NumbersAlwaysFloat(t *testing.T) {
	toks, rep := scanAll(t, "123 3.14 0.5")
	assert.False(t, rep.HadError())
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 3.14, toks[1].Literal)
	assert.Equal(t, 0.5, toks[2].Literal)
}

func TestScanner_KeywordsVsIdentifiers(t *testing.T) {
	toks, rep := scanAll(t, "var class fun this super classify")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{VAR, CLASS, FUN, THIS, SUPER, IDENTIFIER, EOF}, kinds(toks))
}

func TestScanner_StringLiteral(t *testing.T) {
	toks, rep := scanAll(t, `"hello\nworld"`)
	assert.False(t, rep.HadError())
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, `hello\nworld`, toks[0].Literal)
}

func TestScanner_StringSpanningLines(t *testing.T) {
	toks, rep := scanAll(t, "\"line1\nline2\"\n1")
	assert.False(t, rep.HadError())
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "line1\nline2", toks[0].Literal)
	// the trailing "1" is on the line after the string closes
	assert.Equal(t, 3, toks[1].Line)
}

func TestScanner_UnterminatedString(t *testing.T) {
	_, rep := scanAll(t, `"never closes`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "Unterminated string")
}

func TestScanner_NestedBlockComments(t *testing.T) {
	toks, rep := scanAll(t, "1 /* outer /* inner */ still-outer */ 2")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, kinds(toks))
}

func TestScanner_UnterminatedBlockComment(t *testing.T) {
	_, rep := scanAll(t, "1 /* never closes")
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "Unterminated block comment")
}

func TestScanner_LineComment(t *testing.T) {
	toks, rep := scanAll(t, "1 // trailing comment\n2")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, kinds(toks))
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanner_UnexpectedCharacterDoesNotStopScanning(t *testing.T) {
	toks, rep := scanAll(t, "1 @ 2")
	assert.True(t, rep.HadError())
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, kinds(toks))
}

func TestScanner_EOFLineMatchesLastLine(t *testing.T) {
	toks, _ := scanAll(t, "1\n2\n3")
	last := toks[len(toks)-1]
	assert.Equal(t, EOF, last.Kind)
	assert.Equal(t, 3, last.Line)
}

func TestScanner_TokenLinesNonDecreasing(t *testing.T) {
	toks, rep := scanAll(t, "var a = 1;\nvar b = 2;\nprint a + b;")
	assert.False(t, rep.HadError())
	for i := 1; i < len(toks); i++ {
		assert.GreaterOrEqual(t, toks[i].Line, toks[i-1].Line)
	}
}
