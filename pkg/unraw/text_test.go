/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

package unraw

import (
	"strings"
	"testing"
	"unicode/utf8"

	"gotest.tools/v3/assert"
)

func TestUnraw(t *testing.T) {
	tests := []struct {
		raw    string
		cooked string
	}{
		{`\n`, "\n"},
		{`\\`, `\`},
		{`\q`, "q"},
		{`\x41`, "A"},
		{`\u0041`, "A"},
		{`\u{41}`, "A"},
		{`\0`, "\x00"},
		{`caf\xe9`, "café"},
		{`tab\tseparated\tvalues`, "tab\tseparated\tvalues"},
		{"no escapes ✓", "no escapes ✓"},
	}
	for _, tc := range tests {
		got, err := Unraw(tc.raw)
		assert.NilError(t, err)
		assert.Equal(t, got, tc.cooked)
	}

	_, err := Unraw(`\1`)
	assert.ErrorIs(t, err, ErrOctalDeprecation)
	_, err = Unraw(`test\`)
	assert.ErrorIs(t, err, ErrEndOfString)
	_, err = Unraw(`\u{110000}`)
	assert.ErrorIs(t, err, ErrCodePointLimit)
	_, err = Unraw(`\u{}`)
	assert.ErrorIs(t, err, ErrMalformedUnicode)
	_, err = Unraw(`\x4g`)
	assert.ErrorIs(t, err, ErrMalformedHexadecimal)
}

func TestDecodeStringAllowOctals(t *testing.T) {
	got, err := DecodeString(`\1`, true)
	assert.NilError(t, err)
	assert.Equal(t, got, "\x01")

	got, err = DecodeString(`\101\102`, true)
	assert.NilError(t, err)
	assert.Equal(t, got, "AB")
}

func TestDecodeStringScalarValues(t *testing.T) {
	for _, raw := range []string{`\uD800\uDC00`, `\u{10000}`, `\u{000010000}`} {
		got, err := Unraw(raw)
		assert.NilError(t, err)
		assert.Equal(t, utf8.RuneCountInString(got), 1)
		r, _ := utf8.DecodeRuneInString(got)
		assert.Equal(t, r, rune(0x10000))
	}

	got, err := Unraw(`\uD83D\uDE00 and \u{1F600}`)
	assert.NilError(t, err)
	assert.Equal(t, got, "😀 and 😀")
}

func TestDecodeStringLoneSurrogate(t *testing.T) {
	got, err := Unraw(`a\uD800b`)
	assert.NilError(t, err)
	assert.Equal(t, got, "a\xed\xa0\x80b")
	assert.DeepEqual(t, StringToUTF16(got), []uint16{'a', 0xD800, 'b'})

	// A high surrogate escape followed by a code point escape still forms a
	// pair once the units are next to each other.
	got, err = Unraw(`\uDA99\u{DD80}`)
	assert.NilError(t, err)
	assert.Equal(t, got, string(rune(0x0B6580)))
}

func TestDecodeStringPassThrough(t *testing.T) {
	for _, s := range []string{"", "plain", "multi\nline", "日本語", "emoji 😀", "bad \xff byte"} {
		got, err := Unraw(s)
		assert.NilError(t, err)
		assert.Equal(t, got, s)
	}
}

func TestDecodeStringLarge(t *testing.T) {
	raw := strings.Repeat(`ab\n\u{1F600}`, 10000)
	got, err := Unraw(raw)
	assert.NilError(t, err)
	assert.Equal(t, got, strings.Repeat("ab\n😀", 10000))
}

func TestUTF16RoundTrip(t *testing.T) {
	units := []uint16{'x', 0xD83D, 0xDE00, 0xDC00, 0xD800, 0xD800, 0xDFFF, 'y'}
	assert.DeepEqual(t, StringToUTF16(UTF16ToString(units)), units)
	assert.Equal(t, UTF16ToString([]uint16{0xD83D, 0xDE00}), "😀")
	assert.DeepEqual(t, StringToUTF16("😀"), []uint16{0xD83D, 0xDE00})
	assert.DeepEqual(t, StringToUTF16("\xff"), []uint16{0xFFFD})
}

func BenchmarkDecode(b *testing.B) {
	raw := StringToUTF16(strings.Repeat(`plain text \n\t\x41\u0042\u{1F600} `, 1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(raw, false); err != nil {
			b.Fatal(err)
		}
	}
}
