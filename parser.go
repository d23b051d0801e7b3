// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jshape

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// A TokenReader is a source of lexical tokens. Each call to Next advances
// the source to its next token and reports whether one was available; Token
// returns the current token, and Err returns the error that stopped the
// stream, if any. A *Scanner is a TokenReader.
type TokenReader interface {
	Next() bool
	Token() Token
	Err() error
}

// A Parser is a recursive-descent recognizer that checks whether a token
// stream spells out a well-formed JSON document whose root value is an
// object. The parser holds at most one token of lookahead and retains no
// other state between productions; its only product is an error or nil.
type Parser struct {
	tr       TokenReader
	ahead    Token // current or buffered lookahead token
	buffered bool  // whether ahead is an unconsumed lookahead
}

// NewParser constructs a Parser that consumes tokens from tr.
// It panics if tr == nil.
func NewParser(tr TokenReader) *Parser {
	if tr == nil {
		panic("jshape: nil TokenReader")
	}
	return &Parser{tr: tr}
}

// Parse consumes tokens from the source and checks that they form a
// well-formed document. The first mismatch aborts the parse; the returned
// error has concrete type [*SyntaxError] and names the expected and actual
// tokens. Parse does not read past the token that closes the root object.
func (p *Parser) Parse() (err error) {
	defer p.recoverParseError(&err)
	p.parseObject()
	return nil
}

func (p *Parser) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		if err, ok := serr.(*SyntaxError); ok {
			*errp = err
		} else {
			panic(serr)
		}
	}
}

// advance consumes the next token from the stream. If tokens is non-empty
// the token must be one of them; a mismatch or an exhausted stream aborts
// the parse.
func (p *Parser) advance(tokens ...Token) Token {
	if p.buffered {
		p.buffered = false
	} else if !p.tr.Next() {
		err := p.tr.Err()
		if err == nil {
			err = errEndOfInput
		}
		p.syntaxError(err, "%v", tokLabel(tokens, err))
	} else {
		p.ahead = p.tr.Token()
	}
	tok := p.ahead
	if len(tokens) != 0 && !slices.Contains(tokens, tok) {
		p.syntaxError(nil, "%v", tokLabel(tokens, tok))
	}
	return tok
}

// peek reports the next token of the stream without consuming it, failing
// if the stream is already exhausted.
func (p *Parser) peek() Token {
	if !p.buffered {
		if !p.tr.Next() {
			err := p.tr.Err()
			if err == nil {
				err = errEndOfInput
			}
			p.syntaxError(err, "expected a token, got %v", err)
		}
		p.ahead = p.tr.Token()
		p.buffered = true
	}
	return p.ahead
}

// parseObject consumes an object: "{" member ("," member)* "}".
// An object must contain at least one member, so "{}" is rejected.
func (p *Parser) parseObject() {
	p.advance(LBrace)
	p.parseMember()
	for p.peek() == Comma {
		p.advance(Comma)
		p.parseMember()
	}
	p.advance(RBrace)
}

// parseMember consumes a single "key": value object member.
func (p *Parser) parseMember() {
	p.advance(String)
	p.advance(Colon)
	p.parseValue()
}

// parseArray consumes an array: "[" [ value ("," value)* ] "]".
// Unlike objects, an empty array is permitted.
func (p *Parser) parseArray() {
	p.advance(LSquare)
	if p.peek() == RSquare {
		p.advance(RSquare)
		return
	}
	p.parseValue()
	for p.peek() == Comma {
		p.advance(Comma)
		p.parseValue()
	}
	p.advance(RSquare)
}

// parseValue consumes a single value of any type, choosing the production
// from one token of lookahead.
func (p *Parser) parseValue() {
	switch tok := p.peek(); tok {
	case LSquare:
		p.parseArray()
	case LBrace:
		p.parseObject()
	case Number, String, Boolean, Null:
		p.advance(tok)
	default:
		p.syntaxError(nil, "expected a value, got %v", tok)
	}
}

func (p *Parser) syntaxError(err error, msg string, args ...any) {
	panic(&SyntaxError{Message: fmt.Sprintf(msg, args...), err: err})
}

var errEndOfInput = errors.New("end of input")

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, last)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string { return s.Message }

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
