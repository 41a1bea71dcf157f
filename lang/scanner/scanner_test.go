package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuukiARIA/akarin/lang/scanner"
	"github.com/YuukiARIA/akarin/lang/token"
)

func scanAll(t *testing.T, src string) ([]token.Kind, []string, []string) {
	t.Helper()
	var s scanner.Scanner
	var errs []string
	s.Init([]byte(src), func(pos token.Position, msg string) {
		errs = append(errs, msg)
	})

	var kinds []token.Kind
	var texts []string
	var v token.Value
	for {
		k := s.Scan(&v)
		if k == token.EOF {
			break
		}
		kinds = append(kinds, k)
		texts = append(texts, v.Text)
	}
	return kinds, texts, errs
}

func TestKeywordsAndPunctuation(t *testing.T) {
	kinds, _, errs := scanAll(t, "if (x) { return 0; } else { }")
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.KW_IF, token.LPAREN, token.SYMBOL, token.RPAREN, token.LBRACE,
		token.KW_RETURN, token.INTEGER, token.SEMI, token.RBRACE,
		token.KW_ELSE, token.LBRACE, token.RBRACE,
	}, kinds)
}

func TestTwoCharOperatorsDisambiguateFromSingleChar(t *testing.T) {
	kinds, _, errs := scanAll(t, "== != <= >= < > = !")
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.EQ, token.NEQ, token.LE, token.GE, token.LT, token.GT,
		token.ASSIGN, token.NOT,
	}, kinds)
}

func TestLineCommentsAreSkipped(t *testing.T) {
	kinds, texts, errs := scanAll(t, "x # this is a comment\ny")
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.SYMBOL, token.SYMBOL}, kinds)
	assert.Equal(t, []string{"x", "y"}, texts)
}

func TestIdentifierTruncatesAtMaxLen(t *testing.T) {
	long := ""
	for i := 0; i < token.MaxIdentLen+10; i++ {
		long += "a"
	}
	_, texts, errs := scanAll(t, long)
	require.Empty(t, errs)
	require.Len(t, texts, 1)
	assert.Len(t, texts[0], token.MaxIdentLen)
}

func TestCharLiteralEscapes(t *testing.T) {
	var s scanner.Scanner
	s.Init([]byte(`'\n' '\t' '\x41' 'a' '\''`), func(token.Position, string) {
		t.Fatal("unexpected lexical error")
	})

	want := []int64{10, 9, 0x41, 'a', '\''}
	var v token.Value
	for _, w := range want {
		k := s.Scan(&v)
		require.Equal(t, token.CHAR, k)
		assert.Equal(t, w, v.Int)
	}
}

func TestUnrecognizedCharacterIsSkippedAndReported(t *testing.T) {
	kinds, _, errs := scanAll(t, "x @ y")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unrecognizable character '@'")
	// scanning continues past the bad byte instead of aborting.
	assert.Equal(t, []token.Kind{token.SYMBOL, token.ILLEGAL, token.SYMBOL}, kinds)
}

func TestIntegerLiteralValue(t *testing.T) {
	var s scanner.Scanner
	s.Init([]byte("12345"), nil)
	var v token.Value
	k := s.Scan(&v)
	require.Equal(t, token.INTEGER, k)
	assert.Equal(t, int64(12345), v.Int)
}

func TestPositionTracksLineAndColumn(t *testing.T) {
	var s scanner.Scanner
	s.Init([]byte("a\nbb c"), nil)
	var v token.Value

	s.Scan(&v) // "a" at line 1
	assert.Equal(t, token.Position{Line: 1, Column: 1}, v.Pos)

	s.Scan(&v) // "bb" at line 2
	assert.Equal(t, token.Position{Line: 2, Column: 1}, v.Pos)

	s.Scan(&v) // "c" at line 2, after "bb "
	assert.Equal(t, token.Position{Line: 2, Column: 4}, v.Pos)
}
