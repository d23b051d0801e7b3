// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jshape checks whether a text document conforms to the JSON
// grammar. It recognizes shape only: no value tree is constructed, numbers
// and strings are not decoded, and the result of a check is success or a
// single diagnostic describing the first mismatch.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over an in-memory document.
// Call Next to iterate over the token stream; Next reports false when the
// input is exhausted or a lexical error occurs:
//
//	s := jshape.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// Tokens carry no payload, only a kind; Text and Span report the raw text
// and byte extent of the current token for callers that want them.
//
// # Checking
//
// The Parser type is a recursive-descent recognizer over any TokenReader.
// Its Parse method consumes the stream through one token of lookahead and
// reports nil if the tokens form a well-formed document, or an error of
// concrete type *jshape.SyntaxError describing the first mismatch. The
// Validate function wires a Scanner to a Parser for the common case:
//
//	if err := jshape.Validate(input); err != nil {
//	   log.Fatalf("Invalid document: %v", err)
//	}
//
// # Grammar
//
// The root value must be an object; bare scalars and arrays are rejected.
// An object requires at least one member, so "{}" does not conform, while
// the empty array "[]" is accepted in any value position. This asymmetry
// is part of the recognized grammar and is pinned by the package tests.
package jshape
