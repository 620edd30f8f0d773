// memory.go

// Copyright (C) 2025  Mike Wright

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package memory implements the 1130's word-addressed core store.
package memory

import "fmt"

// DefaultSizeWords is the standard core size: 32K 16-bit words.
const DefaultSizeWords = 32768

// Violation is returned for any access outside the configured core size.
type Violation struct {
	Addr uint16
}

func (v *Violation) Error() string {
	return fmt.Sprintf("memory violation at address %#04x", v.Addr)
}

// Memory is a bounds-checked store of 16-bit words.
// N.B. The index registers live in words 1-3 of core, so writes there are
// immediately visible as register changes and vice versa.
type Memory struct {
	words []uint16
}

// New returns a zeroed core of the given size in words.
func New(sizeWords int) *Memory {
	return &Memory{words: make([]uint16, sizeWords)}
}

// Size returns the core size in words.
func (m *Memory) Size() int {
	return len(m.words)
}

// ReadWord fetches the word at addr.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if int(addr) >= len(m.words) {
		return 0, &Violation{Addr: addr}
	}
	return m.words[addr], nil
}

// WriteWord stores datum at addr.
func (m *Memory) WriteWord(addr uint16, datum uint16) error {
	if int(addr) >= len(m.words) {
		return &Violation{Addr: addr}
	}
	m.words[addr] = datum
	return nil
}

// Clear zeroes the whole of core.
func (m *Memory) Clear() {
	for i := range m.words {
		m.words[i] = 0
	}
}
