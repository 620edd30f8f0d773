// statusCollector_test.go

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
	"testing"
	"time"
)

func TestInstrRate(t *testing.T) {
	if r := instrRate(4096, 100*time.Millisecond); r != 40960 {
		t.Error("Expected 40960 instructions/sec, got ", r)
	}
	if r := instrRate(1000000, time.Second); r != 1000000 {
		t.Error("Expected 1000000 instructions/sec, got ", r)
	}
	if r := instrRate(0, time.Second); r != 0 {
		t.Error("Expected 0 for an idle interval, got ", r)
	}
	// a zero or negative interval must not divide
	if r := instrRate(4096, 0); r != 0 {
		t.Error("Expected 0 for a zero interval, got ", r)
	}
}
