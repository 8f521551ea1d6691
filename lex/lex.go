// Package lex implements the code-page-aware tokenizer of spec.md §4.1.
// Unlike the teacher's ors.Scanner, which always produces the next Oberon
// symbol the same way, this Lexer is driven by a Mode supplied by the
// parser on every call to Next, because the resource script grammar needs
// different delimiting rules depending on what the parser is about to read
// (spec.md §4.1, §4.3 step 1–2).
package lex

import (
	"unicode/utf8"

	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/token"
)

// Mode selects how Next delimits the next token.
type Mode int

const (
	// WhitespaceDelimiterOnly: every run of non-whitespace becomes a
	// single Literal token, used to read an id or a statement's type
	// keyword verbatim (spec.md §4.1).
	WhitespaceDelimiterOnly Mode = iota
	// Normal recognizes numbers, quoted strings, operators, punctuation
	// and literals; a leading '+' is rejected (spec.md §4.1, §9).
	Normal
	// NormalExpectOperator is like Normal but a '+' or '-' following a
	// primary expression is always treated as a binary operator.
	NormalExpectOperator
)

const illegalByte = 0x1A

// Lexer tokenizes resource-script source text under a lex mode chosen by
// the caller on each call to Next. Its position is a single integer so
// that the parser's one-token lookahead (spec.md §9 "Lookahead in the
// parser") can be implemented as a cheap value-type snapshot, exactly as
// the design notes prescribe.
type Lexer struct {
	Source []byte

	pos       int
	line      int
	eof       bool
	codePages *cpage.State
	diags     *diag.List
}

// New creates a Lexer over source. codePages receives #pragma code_page
// updates as they are encountered; diags receives lexical diagnostics.
func New(source []byte, codePages *cpage.State, diags *diag.List) *Lexer {
	return &Lexer{Source: source, line: 1, codePages: codePages, diags: diags}
}

// Snapshot is a cheap copyable lexer position, per spec.md §9.
type Snapshot struct {
	pos  int
	line int
	eof  bool
}

func (l *Lexer) Save() Snapshot {
	return Snapshot{pos: l.pos, line: l.line, eof: l.eof}
}

func (l *Lexer) Restore(s Snapshot) {
	l.pos, l.line, l.eof = s.pos, s.line, s.eof
}

func (l *Lexer) Line() int { return l.line }

func (l *Lexer) atEnd() bool { return l.eof || l.pos >= len(l.Source) }

func (l *Lexer) peekByte() byte {
	if l.pos >= len(l.Source) {
		return 0
	}
	return l.Source[l.pos]
}

func (l *Lexer) peekByteAt(off int) byte {
	if l.pos+off >= len(l.Source) {
		return 0
	}
	return l.Source[l.pos+off]
}

func (l *Lexer) advance() byte {
	b := l.Source[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
	}
	return b
}

// Next returns the next token under mode. It never returns a pragma as a
// token: #pragma code_page directives are consumed internally and update
// codePages, per spec.md §4.1.
func (l *Lexer) Next(mode Mode) token.Token {
	for {
		if l.skipWhitespaceCommentsAndPragmas() {
			continue
		}
		break
	}
	if l.atEnd() {
		return token.Token{Kind: token.EOF, Start: l.pos, End: l.pos, Line: l.line}
	}
	start := l.pos
	startLine := l.line
	b := l.peekByte()

	switch {
	case mode == WhitespaceDelimiterOnly:
		return l.scanWhitespaceDelimited(start, startLine)
	case b == '"':
		return l.scanNarrowString(start, startLine)
	case b == 'L' && l.peekByteAt(1) == '"':
		return l.scanWideString(start, startLine)
	case isDigit(b):
		return l.scanNumber(start, startLine)
	case b == ',':
		l.advance()
		return token.Token{Kind: token.Comma, Start: start, End: l.pos, Line: startLine}
	case b == '(':
		l.advance()
		return token.Token{Kind: token.LParen, Start: start, End: l.pos, Line: startLine}
	case b == ')':
		l.advance()
		return token.Token{Kind: token.RParen, Start: start, End: l.pos, Line: startLine}
	case b == '{':
		l.advance()
		return token.Token{Kind: token.LBrace, Start: start, End: l.pos, Line: startLine}
	case b == '}':
		l.advance()
		return token.Token{Kind: token.RBrace, Start: start, End: l.pos, Line: startLine}
	case b == '|':
		l.advance()
		return token.Token{Kind: token.OpOr, Start: start, End: l.pos, Line: startLine}
	case b == '&':
		l.advance()
		return token.Token{Kind: token.OpAnd, Start: start, End: l.pos, Line: startLine}
	case b == '~':
		l.advance()
		// In Normal mode a '~' or '-' directly before a digit is part of
		// the number literal; litr.ParseNumber folds it into the value.
		if mode == Normal && isDigit(l.peekByte()) {
			return l.scanNumber(start, startLine)
		}
		return token.Token{Kind: token.OpNot, Start: start, End: l.pos, Line: startLine}
	case b == '-':
		l.advance()
		if mode == Normal && isDigit(l.peekByte()) {
			return l.scanNumber(start, startLine)
		}
		return token.Token{Kind: token.OpMinus, Start: start, End: l.pos, Line: startLine}
	case b == '+':
		l.advance()
		if mode == Normal {
			l.diags.Add(diag.New(diag.Warning, diag.ReasonUnsupportedUnaryPlus, spanOf(start, l.pos, startLine)).
				WithNote(spanOf(start, l.pos, startLine), "unary plus is rejected uniformly; remove the leading '+'"))
		}
		return token.Token{Kind: token.OpPlus, Start: start, End: l.pos, Line: startLine}
	default:
		t := l.scanLiteral(start, startLine)
		// BEGIN/END are lexical synonyms of { and } (spec.md §3).
		switch string(l.Source[t.Start:t.End]) {
		case "BEGIN":
			t.Kind = token.LBrace
		case "END":
			t.Kind = token.RBrace
		}
		return t
	}
}

func spanOf(start, end, line int) diag.Span {
	return diag.Span{Start: start, End: end, Line: line}
}

// skipWhitespaceCommentsAndPragmas consumes whitespace, ';'-to-end-of-line
// comments, and #pragma code_page directives. It returns true if anything
// was consumed, so callers loop until a real token boundary is reached.
func (l *Lexer) skipWhitespaceCommentsAndPragmas() bool {
	consumedAny := false
	for !l.atEnd() {
		b := l.peekByte()
		switch {
		case b == illegalByte:
			l.eof = true
			return consumedAny
		case isWhitespace(b):
			l.advance()
			consumedAny = true
		case b == ';':
			for !l.atEnd() && l.peekByte() != '\n' {
				l.advance()
			}
			consumedAny = true
		case b == '#' && l.matchesPragma():
			l.consumePragma()
			consumedAny = true
		default:
			return consumedAny
		}
	}
	return consumedAny
}

func (l *Lexer) matchesPragma() bool {
	const kw = "#pragma"
	if l.pos+len(kw) > len(l.Source) {
		return false
	}
	return string(l.Source[l.pos:l.pos+len(kw)]) == kw
}

// consumePragma parses "#pragma code_page ( arg )" and records a code-page
// change taking effect on the following line. Anything else after '#' is
// skipped to end of line (unrecognized preprocessor leftovers are an
// external collaborator's concern per spec.md §1).
func (l *Lexer) consumePragma() {
	pragmaLine := l.line
	lineStart := l.pos
	for !l.atEnd() && l.peekByte() != '\n' {
		l.advance()
	}
	text := string(l.Source[lineStart:l.pos])
	arg, ok := parseCodePagePragma(text)
	if !ok {
		return
	}
	id, err := cpage.Parse(arg)
	if err != nil {
		l.diags.Add(diag.New(diag.Warning, diag.ReasonUnknownCodePage, spanOf(lineStart, l.pos, pragmaLine)).
			WithDetail(arg))
		return
	}
	l.codePages.SetPragma(pragmaLine+1, id)
}

// parseCodePagePragma extracts the argument of "#pragma code_page(arg)"
// from a single line of source text.
func parseCodePagePragma(line string) (arg string, ok bool) {
	const kw = "code_page"
	i := indexAfterPrefix(line, "#pragma")
	if i < 0 {
		return "", false
	}
	for i < len(line) && line[i] == ' ' {
		i++
	}
	if i+len(kw) > len(line) || line[i:i+len(kw)] != kw {
		return "", false
	}
	i += len(kw)
	open := -1
	for j := i; j < len(line); j++ {
		if line[j] == '(' {
			open = j
			break
		}
	}
	if open < 0 {
		return "", false
	}
	close := -1
	for j := open + 1; j < len(line); j++ {
		if line[j] == ')' {
			close = j
			break
		}
	}
	if close < 0 {
		return "", false
	}
	return trimSpace(line[open+1 : close]), true
}

func indexAfterPrefix(s, prefix string) int {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return -1
	}
	return len(prefix)
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] == ' ' {
		start++
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}

func isWhitespace(b byte) bool {
	if b == illegalByte {
		return false
	}
	return b <= ' ' // any non-illegal control character, per spec.md §4.1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentByte(b byte) bool {
	return b > ' ' && b != ',' && b != '(' && b != ')' && b != '{' && b != '}' &&
		b != '"' && b != '|' && b != '&' && b != '~' && b != ';' && b != illegalByte
}

func (l *Lexer) scanWhitespaceDelimited(start, line int) token.Token {
	for !l.atEnd() && l.peekByte() > ' ' {
		l.advance()
	}
	return token.Token{Kind: token.Literal, Start: start, End: l.pos, Line: line}
}

func (l *Lexer) scanLiteral(start, line int) token.Token {
	for !l.atEnd() && isIdentByte(l.peekByte()) {
		if isDigit(l.peekByte()) && l.pos == start {
			break
		}
		l.advance()
	}
	if l.pos == start {
		l.advance()
		return token.Token{Kind: token.Invalid, Start: start, End: l.pos, Line: line}
	}
	return token.Token{Kind: token.Literal, Start: start, End: l.pos, Line: line}
}

func (l *Lexer) scanNumber(start, line int) token.Token {
	for !l.atEnd() && isIdentByte(l.peekByte()) && l.peekByte() != '+' && l.peekByte() != '-' {
		l.advance()
	}
	return token.Token{Kind: token.Number, Start: start, End: l.pos, Line: line}
}

// scanNarrowString delimits a "..." literal at the lexical level (it does
// not interpret escapes; litr does). A doubled "" is an embedded quote, not
// the closer. The literal may span physical lines: the line on which the
// closing quote appears is not checked, whatever form the line break takes.
func (l *Lexer) scanNarrowString(start, line int) token.Token {
	l.advance() // opening quote
	for !l.atEnd() {
		b := l.peekByte()
		if b == illegalByte {
			l.diags.Add(diag.New(diag.Error, diag.ReasonIllegalControlCharacter, spanOf(start, l.pos, line)))
			break
		}
		if b == '"' {
			// Could be an escaped embedded quote ("") or the closer.
			if l.peekByteAt(1) == '"' {
				l.advance()
				l.advance()
				continue
			}
			l.advance()
			return token.Token{Kind: token.QuotedASCIIString, Start: start, End: l.pos, Line: line}
		}
		if b == '\\' && l.peekByteAt(1) == '"' {
			l.advance()
			l.advance()
			continue
		}
		l.advance()
	}
	l.diags.Add(diag.New(diag.Error, diag.ReasonUnterminatedString, spanOf(start, l.pos, line)))
	return token.Token{Kind: token.QuotedASCIIString, Start: start, End: l.pos, Line: line}
}

func (l *Lexer) scanWideString(start, line int) token.Token {
	l.advance() // 'L'
	l.advance() // opening quote
	for !l.atEnd() {
		b := l.peekByte()
		if b == illegalByte {
			l.diags.Add(diag.New(diag.Error, diag.ReasonIllegalControlCharacter, spanOf(start, l.pos, line)))
			break
		}
		if b == '"' {
			if l.peekByteAt(1) == '"' {
				l.advance()
				l.advance()
				continue
			}
			l.advance()
			return token.Token{Kind: token.QuotedWideString, Start: start, End: l.pos, Line: line}
		}
		if b == '\\' && l.peekByteAt(1) == '"' {
			l.advance()
			l.advance()
			continue
		}
		l.advance()
	}
	l.diags.Add(diag.New(diag.Error, diag.ReasonUnterminatedString, spanOf(start, l.pos, line)))
	return token.Token{Kind: token.QuotedWideString, Start: start, End: l.pos, Line: line}
}

// DecodeRune reads one UTF-8 rune from source at pos, tolerating invalid
// sequences by returning utf8.RuneError with width 1 (litr substitutes
// U+FFFD per spec.md §3/§4.2).
func DecodeRune(source []byte, pos int) (rune, int) {
	return utf8.DecodeRune(source[pos:])
}
