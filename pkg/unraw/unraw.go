/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

package unraw

import (
	"unicode/utf16"
)

const maxCodePoint = 0x10FFFF

// SequenceKind tells which rule of the escape grammar matched.
type SequenceKind int

const (
	// Backslash is `\\`.
	Backslash SequenceKind = iota
	// SingleCharacter is one of `\b \f \n \r \t \v` or a lone `\0`.
	SingleCharacter
	// Identity is any other `\c`, which decodes to c itself.
	Identity
	// Hexadecimal is `\xHH`.
	Hexadecimal
	// Unicode is `\uHHHH`.
	Unicode
	// SurrogatePair is a high surrogate `\uHHHH` directly followed by a
	// second `\uHHHH`, consumed as one sequence.
	SurrogatePair
	// CodePoint is `\u{H...}`.
	CodePoint
	// LegacyOctal is `\` followed by up to three octal digits, other than a
	// lone `\0`.
	LegacyOctal
)

var sequenceKindNames = [...]string{
	Backslash:       "backslash",
	SingleCharacter: "single-character",
	Identity:        "identity",
	Hexadecimal:     "hexadecimal",
	Unicode:         "unicode",
	SurrogatePair:   "surrogate-pair",
	CodePoint:       "code-point",
	LegacyOctal:     "legacy-octal",
}

func (k SequenceKind) String() string {
	if k >= 0 && int(k) < len(sequenceKindNames) {
		return sequenceKindNames[k]
	}
	return "unknown"
}

// Sequence is one escape sequence found in raw input.
type Sequence struct {
	Kind SequenceKind
	// Offset is the index of the backslash, Len the number of code units
	// consumed including it.
	Offset int
	Len    int
	// Cooked holds the code units the sequence decodes to.
	Cooked []uint16
}

var singleCharacters = map[uint16]uint16{
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

type scanner struct {
	raw         []uint16
	pos         int
	allowOctals bool
}

// skipText leaves pos on the next backslash, or at the end of input, and
// returns where it started.
func (s *scanner) skipText() int {
	start := s.pos
	for s.pos < len(s.raw) && s.raw[s.pos] != '\\' {
		s.pos++
	}
	return start
}

func (s *scanner) copyText(dst []uint16) []uint16 {
	start := s.skipText()
	return append(dst, s.raw[start:s.pos]...)
}

// escape decodes the sequence whose backslash is at pos, appends the cooked
// units to dst and moves pos past the sequence.
func (s *scanner) escape(dst []uint16) ([]uint16, SequenceKind, error) {
	start := s.pos
	raw := s.raw
	i := start + 1

	if i >= len(raw) {
		return dst, 0, newSyntaxError(ErrEndOfString, start)
	}

	c := raw[i]
	i++

	var kind SequenceKind
	switch c {
	case '\\':
		kind = Backslash
		dst = append(dst, '\\')

	case 'x':
		// Only two units of lookahead, even when the first is not hex.
		v, ok := parseHex(window(raw, i, 2), 2)
		if !ok {
			return dst, 0, newSyntaxError(ErrMalformedHexadecimal, start)
		}
		kind = Hexadecimal
		dst = append(dst, uint16(v))
		i += 2

	case 'u':
		if i < len(raw) && raw[i] == '{' {
			end := i + 1
			for end < len(raw) && raw[end] != '}' {
				end++
			}
			if end == len(raw) {
				return dst, 0, newSyntaxError(ErrMalformedUnicode, start)
			}
			v, overflow, ok := parseCodePoint(raw[i+1 : end])
			if !ok {
				return dst, 0, newSyntaxError(ErrMalformedUnicode, start)
			}
			if overflow {
				return dst, 0, newSyntaxError(ErrCodePointLimit, start)
			}
			kind = CodePoint
			dst = appendCodePoint(dst, v)
			i = end + 1
			break
		}

		hi, ok := parseHex(window(raw, i, 4), 4)
		if ok && isHighSurrogate(hi) && s.hasSurrogateTail(i+4) {
			lo, ok := parseHex(window(raw, i+6, 4), 4)
			if !ok {
				return dst, 0, newSyntaxError(ErrMalformedUnicode, start)
			}
			kind = SurrogatePair
			dst = append(dst, uint16(hi), uint16(lo))
			i += 10
			break
		}
		if !ok {
			return dst, 0, newSyntaxError(ErrMalformedUnicode, start)
		}
		kind = Unicode
		dst = append(dst, uint16(hi))
		i += 4

	case '0', '1', '2', '3', '4', '5', '6', '7':
		// A leading 0-3 takes up to two more octal digits, 4-7 only one,
		// so `\400` is `\40` followed by "0".
		more := 1
		if c <= '3' {
			more = 2
		}
		end := i
		for end < len(raw) && end-i < more && isoctal(raw[end]) {
			end++
		}
		if c == '0' && end == i {
			kind = SingleCharacter
			dst = append(dst, 0)
			break
		}
		if !s.allowOctals {
			return dst, 0, newSyntaxError(ErrOctalDeprecation, start)
		}
		kind = LegacyOctal
		dst = append(dst, uint16(parseOctal(raw[i-1:end])))
		i = end

	default:
		if cooked, ok := singleCharacters[c]; ok {
			kind = SingleCharacter
			dst = append(dst, cooked)
		} else {
			kind = Identity
			dst = append(dst, c)
		}
	}

	s.pos = i
	return dst, kind, nil
}

// hasSurrogateTail reports whether a second `\u` escape, not of the `\u{`
// form, starts at i.
func (s *scanner) hasSurrogateTail(i int) bool {
	return i+2 < len(s.raw) &&
		s.raw[i] == '\\' &&
		s.raw[i+1] == 'u' &&
		s.raw[i+2] != '{'
}

func isHighSurrogate(v rune) bool {
	return 0xD800 <= v && v <= 0xDBFF
}

func appendCodePoint(dst []uint16, v rune) []uint16 {
	if v <= 0xFFFF {
		// Lone surrogates are kept as they are.
		return append(dst, uint16(v))
	}
	r1, r2 := utf16.EncodeRune(v)
	return append(dst, uint16(r1), uint16(r2))
}

// Decode replaces every escape sequence in raw with the code units it
// denotes. Legacy octal escapes such as `\101` are rejected with
// ErrOctalDeprecation unless allowOctals is set; a lone `\0` is always
// accepted.
//
// The first malformed sequence stops decoding and is returned as a
// *SyntaxError, together with a nil slice.
func Decode(raw []uint16, allowOctals bool) ([]uint16, error) {
	s := scanner{raw: raw, allowOctals: allowOctals}
	out := make([]uint16, 0, len(raw))
	for {
		out = s.copyText(out)
		if s.pos >= len(raw) {
			return out, nil
		}
		var err error
		out, _, err = s.escape(out)
		if err != nil {
			return nil, err
		}
	}
}

// Sequences returns every escape sequence in raw, in order. It fails exactly
// where Decode would.
func Sequences(raw []uint16, allowOctals bool) ([]Sequence, error) {
	s := scanner{raw: raw, allowOctals: allowOctals}
	var (
		seqs   []Sequence
		cooked []uint16
	)
	for {
		s.skipText()
		if s.pos >= len(raw) {
			return seqs, nil
		}
		start := s.pos
		n := len(cooked)
		var (
			kind SequenceKind
			err  error
		)
		cooked, kind, err = s.escape(cooked)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, Sequence{
			Kind:   kind,
			Offset: start,
			Len:    s.pos - start,
			Cooked: cooked[n:len(cooked):len(cooked)],
		})
	}
}
