// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jshape_test

import (
	"strings"
	"testing"

	"github.com/cstroik/jshape"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jshape.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jshape.Token{jshape.Boolean, jshape.Boolean, jshape.Null}},

		// Punctuation
		{"{ [ ] } , :", []jshape.Token{
			jshape.LBrace, jshape.LSquare, jshape.RSquare, jshape.RBrace, jshape.Comma, jshape.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jshape.Token{jshape.String, jshape.String, jshape.String}},
		{`"a\"b"`, []jshape.Token{jshape.String}}, // escaped quote does not end the token
		{`"\\" "x"`, []jshape.Token{jshape.String, jshape.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100 042`, []jshape.Token{
			jshape.Number, jshape.Number, jshape.Number, jshape.Number,
			jshape.Number, jshape.Number, jshape.Number, jshape.Number,
		}},

		// Mixed types
		{`{"key": "value"}`, []jshape.Token{
			jshape.LBrace, jshape.String, jshape.Colon, jshape.String, jshape.RBrace,
		}},
		{`{true,"false":-15 null[]}`, []jshape.Token{
			jshape.LBrace, jshape.Boolean, jshape.Comma, jshape.String, jshape.Colon,
			jshape.Number, jshape.Null, jshape.LSquare, jshape.RSquare, jshape.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jshape.Token{
			jshape.LBrace,
			jshape.String, jshape.Colon, jshape.Boolean, jshape.Comma,
			jshape.String, jshape.Colon,
			jshape.LSquare,
			jshape.Null, jshape.Comma, jshape.Number, jshape.Comma, jshape.Number,
			jshape.RSquare,
			jshape.RBrace,
		}},
		{`"a",1,true
     false["b"]
     `, []jshape.Token{
			jshape.String, jshape.Comma, jshape.Number, jshape.Comma, jshape.Boolean,
			jshape.Boolean, jshape.LSquare, jshape.String, jshape.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jshape.Token
		s := jshape.NewScanner(test.input)
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string // required substring of the error
	}{
		{"tru", `unknown constant "tru"`},
		{"truth", `unknown constant "truth"`},
		{"fals", `unknown constant "fals"`},
		{"falsely", `unknown constant "falsely"`},
		{"nul", `unknown constant "nul"`},
		{"nulla", `unknown constant "nulla"`},
		{"@", `unexpected '@'`},
		{"{x}", `unexpected 'x'`},
		{`"no closing quote`, "unterminated string"},
		{`"stops at \"`, "unterminated string"},
		{"-x", `got 'x', want digit`},
		{"-", "want digit, got end of input"},
		{"5.", "no digits after decimal point"},
		{"5.x", "no digits after decimal point"},
		{"1e", "missing exponent digits"},
		{"1e+", "missing exponent digits"},
		{"-2E-", "missing exponent digits"},
	}

	for _, test := range tests {
		s := jshape.NewScanner(test.input)
		for s.Next() {
		}
		if s.Err() == nil {
			t.Errorf("Input %#q: scan succeeded, want error containing %q", test.input, test.want)
		} else if got := s.Err().Error(); !strings.Contains(got, test.want) {
			t.Errorf("Input %#q: got error %q, want %q", test.input, got, test.want)
		}
	}
}

func TestScannerText(t *testing.T) {
	const input = ` {"a" :[-1.5e2,null]} `
	want := []string{"{", `"a"`, ":", "[", "-1.5e2", ",", "null", "]", "}"}

	var got []string
	s := jshape.NewScanner(input)
	for s.Next() {
		got = append(got, s.Text())
	}
	if s.Err() != nil {
		t.Errorf("Next failed: %v", s.Err())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Input: %#q\nText: (-want, +got)\n%s", input, diff)
	}
}

func TestScannerSpan(t *testing.T) {
	type tokSpan struct {
		Tok  jshape.Token
		Span jshape.Span
	}
	tests := []struct {
		input string
		want  []tokSpan
	}{
		{"", nil},
		{"{ }", []tokSpan{
			{jshape.LBrace, jshape.Span{Pos: 0, End: 1}},
			{jshape.RBrace, jshape.Span{Pos: 2, End: 3}},
		}},
		{` "ab" `, []tokSpan{{jshape.String, jshape.Span{Pos: 1, End: 5}}}},
		{"-1e2", []tokSpan{{jshape.Number, jshape.Span{Pos: 0, End: 4}}}},
		{"\n true", []tokSpan{{jshape.Boolean, jshape.Span{Pos: 2, End: 6}}}},
	}
	for _, test := range tests {
		var got []tokSpan
		s := jshape.NewScanner(test.input)
		for s.Next() {
			got = append(got, tokSpan{s.Token(), s.Span()})
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nSpans: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerErrorOffset(t *testing.T) {
	// The offset in a lexical error is the cursor position at the point of
	// failure, which the message reports in text form.
	s := jshape.NewScanner(`{"a": @}`)
	for s.Next() {
	}
	if s.Err() == nil {
		t.Fatal("scan succeeded, want error")
	}
	const want = "unexpected '@' (offset 6)"
	if got := s.Err().Error(); got != want {
		t.Errorf("Err: got %q, want %q", got, want)
	}
}
