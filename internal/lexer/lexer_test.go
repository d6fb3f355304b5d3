package lexer_test

import (
	"testing"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	ks := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens := lexer.New("(){},.-+;*!=<=>=!=<>", nil).ScanTokens()
	want := []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL, token.BANG_EQUAL,
		token.LESS, token.GREATER, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanTokens_Comment(t *testing.T) {
	tokens := lexer.New("// a whole line\n1", nil).ScanTokens()
	if len(tokens) != 2 || tokens[0].Kind != token.NUMBER {
		t.Fatalf("expected a single NUMBER then EOF, got %v", tokens)
	}
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens := lexer.New(`"hello"`, nil).ScanTokens()
	if tokens[0].Kind != token.STRING || tokens[0].Literal != "hello" {
		t.Fatalf("got %+v", tokens[0])
	}
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	var lines []int
	tokens := lexer.New(`"oops`, func(line int, message string) {
		lines = append(lines, line)
	}).ScanTokens()
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("expected just EOF, got %v", tokens)
	}
	if len(lines) != 1 || lines[0] != 1 {
		t.Fatalf("expected one error reported at line 1, got %v", lines)
	}
}

func TestScanTokens_MultilineString(t *testing.T) {
	tokens := lexer.New("\"a\nb\"\n1", nil).ScanTokens()
	if tokens[0].Literal != "a\nb" {
		t.Fatalf("got %q", tokens[0].Literal)
	}
	if tokens[1].Line != 3 {
		t.Fatalf("expected the number on line 3, got %d", tokens[1].Line)
	}
}

func TestScanTokens_Number(t *testing.T) {
	tokens := lexer.New("123.45", nil).ScanTokens()
	if tokens[0].Kind != token.NUMBER || tokens[0].Literal != 123.45 {
		t.Fatalf("got %+v", tokens[0])
	}
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	tokens := lexer.New("var assert fun notAKeyword", nil).ScanTokens()
	want := []token.Kind{token.VAR, token.ASSERT, token.FUN, token.IDENTIFIER, token.EOF}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	var messages []string
	tokens := lexer.New("1 @ 2", func(_ int, message string) {
		messages = append(messages, message)
	}).ScanTokens()
	if len(messages) != 1 || messages[0] != "Unexpected character." {
		t.Fatalf("got messages %v", messages)
	}
	want := []token.Kind{token.NUMBER, token.NUMBER, token.EOF}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
