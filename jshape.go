// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jshape

// Validate reports whether input conforms to the JSON grammar with an
// object as its root value. It returns nil for a conforming document, or an
// error describing the first lexical or grammatical mismatch found. No
// value tree is built and no token contents are retained.
//
// Validation stops at the token that closes the root object; any input
// after it is not inspected.
func Validate(input string) error {
	return NewParser(NewScanner(input)).Parse()
}
