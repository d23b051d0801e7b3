// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jshape

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an in-memory document. Each call to
// Next advances the scanner to the next token, or reports an error.
//
// The scanner keeps a single cursor into the original text that only moves
// forward; a Scanner is single use, and a fresh one must be constructed to
// rescan a document.
type Scanner struct {
	input string
	pos   int // cursor: offset of the next unread byte
	tpos  int // start offset of the current token
	tok   Token
	err   error
}

// NewScanner constructs a new lexical scanner that consumes input.
func NewScanner(input string) *Scanner { return &Scanner{input: input} }

// Next advances s to the next token of the input. It returns false when the
// input is exhausted or a lexical error occurs; after Next returns false,
// Err reports nil for a clean end of input and the error otherwise.
func (s *Scanner) Next() bool {
	s.tok = Invalid
	for s.pos < len(s.input) {
		ch := s.input[s.pos]

		// Discard whitespace.
		if isSpace(ch) {
			s.pos++
			continue
		}
		s.tpos = s.pos

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.pos++
			s.tok = t
			return true
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber()
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString()
		}

		// Handle constants: true, false, null.
		switch ch {
		case 't':
			return s.scanConstant(Boolean, mem.S("true"))
		case 'f':
			return s.scanConstant(Boolean, mem.S("false"))
		case 'n':
			return s.scanConstant(Null, mem.S("null"))
		}
		return s.failf("unexpected %q", ch)
	}
	return false
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that stopped the scan, if any.
func (s *Scanner) Err() error { return s.err }

// Text returns the raw text of the current token. String tokens include
// their enclosing quotes.
func (s *Scanner) Text() string { return s.input[s.tpos:s.pos] }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.tpos, End: s.pos} }

// scanConstant consumes a run of name bytes and requires it to spell out
// the complete literal text in want.
func (s *Scanner) scanConstant(tok Token, want mem.RO) bool {
	start := s.pos
	s.readWhile(isNameByte)
	if got := mem.S(s.input[start:s.pos]); !got.Equal(want) {
		return s.failf("unknown constant %q", got.StringCopy())
	}
	s.tok = tok
	return true
}

// scanString consumes a quoted string. Escape sequences are not decoded,
// but a backslash shields the following byte so that an escaped quote does
// not end the token.
func (s *Scanner) scanString() bool {
	s.pos++ // consume the open quote
	var esc bool
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		s.pos++
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			s.tok = String
			return true
		}
	}
	return s.failf("unterminated string")
}

// scanNumber consumes the longest prefix matching the number grammar: an
// optional minus sign, one or more integer digits, an optional fraction,
// and an optional exponent.
func (s *Scanner) scanNumber() bool {
	if s.input[s.pos] == '-' {
		// A leading sign requires at least one digit after it.
		// Otherwise, the start byte is already a digit.
		s.pos++
		if !s.require(isDigit, "digit") {
			return false
		}
	}

	// Consume the remainder of the integer part.
	s.readWhile(isDigit)

	// If a decimal point follows, consume a fractional part.
	if s.pos < len(s.input) && s.input[s.pos] == '.' {
		s.pos++
		if s.readWhile(isDigit) == 0 {
			return s.failf("no digits after decimal point")
		}
	}

	// If an exponent marker follows, consume the optional sign and the
	// exponent digits.
	if s.pos < len(s.input) && (s.input[s.pos] == 'e' || s.input[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.input) && (s.input[s.pos] == '+' || s.input[s.pos] == '-') {
			s.pos++
		}
		if s.readWhile(isDigit) == 0 {
			return s.failf("missing exponent digits")
		}
	}
	s.tok = Number
	return true
}

// require consumes a single byte matching f from the input, or reports an
// error mentioning the desired label.
func (s *Scanner) require(f func(byte) bool, label string) bool {
	if s.pos >= len(s.input) {
		return s.failf("want %s, got end of input", label)
	} else if ch := s.input[s.pos]; !f(ch) {
		return s.failf("got %q, want %s", ch, label)
	}
	s.pos++
	return true
}

// readWhile consumes bytes matching f until the end of input or until a
// byte not matching f is found, and reports the number of bytes consumed.
// The cursor is left on the first non-matching byte.
func (s *Scanner) readWhile(f func(byte) bool) int {
	start := s.pos
	for s.pos < len(s.input) && f(s.input[s.pos]) {
		s.pos++
	}
	return s.pos - start
}

// A Span describes a contiguous byte range of the input document.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) failf(msg string, args ...any) bool {
	s.err = posError{s.pos, fmt.Errorf(msg, args...)}
	return false
}

func isSpace(ch byte) bool    { return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
