/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

// Package unraw converts raw escape sequences to the characters they denote,
// undoing what a raw string literal preserves. `\n` (backslash, n) becomes a
// line feed, `\x41` and `\u{41}` become "A", and so on, following the escape
// grammar of ECMAScript string literals.
//
// Input and output are UTF-16 code units, the string model the grammar is
// defined over. DecodeString and Unraw wrap Decode for Go strings.
package unraw
