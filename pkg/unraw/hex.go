/*
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright (c) 2009 The Go Authors. All rights reserved.
 * Copyright (c) 2023 Philip Eklöf
 *
 */

/*
 * This code is based on:
 * net/url/url.go (standard library)
 *
 */

package unraw

func ishex(c uint16) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c uint16) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return rune(c - 'A' + 10)
	}
	return 0
}

func isoctal(c uint16) bool {
	return '0' <= c && c <= '7'
}

// parseHex reads exactly n hexadecimal digits. Anything shorter, or any
// non-hex unit in the window, is rejected.
func parseHex(s []uint16, n int) (rune, bool) {
	if len(s) != n {
		return 0, false
	}
	var v rune
	for _, c := range s {
		if !ishex(c) {
			return 0, false
		}
		v = v<<4 | unhex(c)
	}
	return v, true
}

// parseCodePoint reads a hex digit span of any length. overflow is set once
// the value passes maxCodePoint; the remaining digits are still checked.
func parseCodePoint(s []uint16) (v rune, overflow bool, ok bool) {
	if len(s) == 0 {
		return 0, false, false
	}
	for _, c := range s {
		if !ishex(c) {
			return 0, false, false
		}
		if overflow {
			continue
		}
		v = v<<4 | unhex(c)
		if v > maxCodePoint {
			overflow = true
		}
	}
	return v, overflow, true
}

func parseOctal(s []uint16) rune {
	var v rune
	for _, c := range s {
		v = v<<3 | rune(c-'0')
	}
	return v
}

// window returns up to n units starting at i, never reading past the end.
func window(s []uint16, i, n int) []uint16 {
	if i > len(s) {
		return nil
	}
	end := i + n
	if end > len(s) {
		end = len(s)
	}
	return s[i:end]
}
