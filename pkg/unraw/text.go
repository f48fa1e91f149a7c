/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

package unraw

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unraw decodes raw with legacy octal escapes disallowed.
func Unraw(raw string) (string, error) {
	return DecodeString(raw, false)
}

// DecodeString is Decode for Go strings. Escapes that produce a valid
// surrogate pair come out as a single rune. Unpaired surrogates are kept in
// their WTF-8 form rather than replaced, so the result may not be valid
// UTF-8.
func DecodeString(raw string, allowOctals bool) (string, error) {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw, nil
	}
	out, err := Decode(StringToUTF16(raw), allowOctals)
	if err != nil {
		return "", err
	}
	return UTF16ToString(out), nil
}

// StringToUTF16 converts text to UTF-16 code units. WTF-8 encoded surrogates
// are read back as single code units; other invalid bytes become U+FFFD.
func StringToUTF16(text string) []uint16 {
	units := make([]uint16, 0, len(text))
	for i := 0; i < len(text); {
		if u, ok := decodeWTF8Surrogate(text[i:]); ok {
			units = append(units, u)
			i += 3
			continue
		}
		r, width := utf8.DecodeRuneInString(text[i:])
		i += width
		if r <= 0xFFFF {
			units = append(units, uint16(r))
		} else {
			r1, r2 := utf16.EncodeRune(r)
			units = append(units, uint16(r1), uint16(r2))
		}
	}
	return units
}

// UTF16ToString converts code units back to a string, combining surrogate
// pairs and writing unpaired surrogates as WTF-8.
func UTF16ToString(units []uint16) string {
	var b strings.Builder
	b.Grow(len(units))
	n := len(units)
	for i := 0; i < n; i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) {
			if r < 0xDC00 && i+1 < n {
				if r2 := rune(units[i+1]); 0xDC00 <= r2 && r2 <= 0xDFFF {
					b.WriteRune(utf16.DecodeRune(r, r2))
					i++
					continue
				}
			}
			writeWTF8Surrogate(&b, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// https://simonsapin.github.io/wtf-8/
func writeWTF8Surrogate(b *strings.Builder, r rune) {
	b.WriteByte(byte(0xE0 | r>>12))
	b.WriteByte(byte(0x80 | (r>>6)&0x3F))
	b.WriteByte(byte(0x80 | r&0x3F))
}

func decodeWTF8Surrogate(s string) (uint16, bool) {
	if len(s) < 3 || s[0] != 0xED || s[1] < 0xA0 || s[1] > 0xBF || s[2]&0xC0 != 0x80 {
		return 0, false
	}
	return uint16(s[0]&0x0F)<<12 | uint16(s[1]&0x3F)<<6 | uint16(s[2]&0x3F), true
}
