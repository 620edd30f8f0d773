// console.go

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

package main

import (
	"io"
	"strings"
)

// consoleT is the user's console, whether a network connection or the raw
// local terminal.  Both want CR-LF line endings, so every LF written
// through here becomes one.
type consoleT struct {
	rw io.ReadWriter
}

func (c *consoleT) PutChar(b byte) {
	c.rw.Write([]byte{b})
}

func (c *consoleT) PutString(s string) {
	c.rw.Write([]byte(strings.ReplaceAll(s, "\n", "\r\n")))
}

// PutNLString writes a newline, then the string.
func (c *consoleT) PutNLString(s string) {
	c.PutString("\n" + s)
}

// PutStringNL writes the string, then a newline.
func (c *consoleT) PutStringNL(s string) {
	c.PutString(s + "\n")
}

// Write lets the console serve as an echo target for the emulated printer.
func (c *consoleT) Write(p []byte) (int, error) {
	c.PutString(string(p))
	return len(p), nil
}
