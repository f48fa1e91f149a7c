/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

// Package textio maps encoding names given on the command line to readers
// and writers that convert from and to UTF-8.
package textio

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const Default = "utf-8"

var encodings = map[string]encoding.Encoding{
	// Bytes pass through untouched, so WTF-8 output survives.
	"utf-8":     encoding.Nop,
	"utf-8-bom": unicode.UTF8BOM,
	// Byte order from the BOM, little endian without one.
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

var aliases = map[string]string{
	"utf8":    "utf-8",
	"utf16":   "utf-16",
	"utf16le": "utf-16le",
	"utf16be": "utf-16be",
}

// Names lists the supported encoding names.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the encoding registered under name, ignoring case.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q, expected one of: %s", name, strings.Join(Names(), ", "))
	}
	return enc, nil
}

// NewReader returns a reader yielding the UTF-8 form of r.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// NewWriter returns a writer that encodes UTF-8 written to it into w. Close
// must be called to flush buffered output; it does not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

// ReadAll reads all of r, decoded from the named encoding.
func ReadAll(r io.Reader, name string) (string, error) {
	dr, err := NewReader(r, name)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(dr)
	if err != nil {
		return "", fmt.Errorf("Failed reading %s input: %w", name, err)
	}
	return string(b), nil
}
