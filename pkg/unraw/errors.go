/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

package unraw

// ErrorKind classifies why an escape sequence could not be decoded. The
// constants are usable as sentinel errors with errors.Is.
type ErrorKind int

const (
	ErrMalformedUnicode ErrorKind = iota + 1
	ErrMalformedHexadecimal
	ErrCodePointLimit
	ErrOctalDeprecation
	ErrEndOfString
)

var errorMessages = map[ErrorKind]string{
	ErrMalformedUnicode:     "malformed Unicode character escape sequence",
	ErrMalformedHexadecimal: "malformed hexadecimal character escape sequence",
	ErrCodePointLimit:       "Unicode codepoint must not be greater than 0x10FFFF in escape sequence",
	ErrOctalDeprecation: `"0"-prefixed octal literals and octal escape sequences are deprecated; ` +
		`for octal literals use the "0o" prefix instead`,
	ErrEndOfString: "malformed escape sequence at end of string",
}

var errorNames = map[ErrorKind]string{
	ErrMalformedUnicode:     "malformedUnicode",
	ErrMalformedHexadecimal: "malformedHexadecimal",
	ErrCodePointLimit:       "codePointLimit",
	ErrOctalDeprecation:     "octalDeprecation",
	ErrEndOfString:          "endOfString",
}

// Error returns the canonical message, matching the text JavaScript engines
// report for the same input.
func (k ErrorKind) Error() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return "unknown escape sequence error"
}

// Name returns a stable identifier for k, e.g. "malformedUnicode".
func (k ErrorKind) Name() string {
	if name, ok := errorNames[k]; ok {
		return name
	}
	return "unknown"
}

// SyntaxError reports a malformed escape sequence. Offset is the index, in
// UTF-16 code units, of the backslash that starts the sequence.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int
}

func (e *SyntaxError) Error() string {
	return e.Kind.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func newSyntaxError(kind ErrorKind, offset int) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: offset}
}
