// shift_test.go

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

package cpu

import "testing"

func shiftOp(t *testing.T, c *CPU, op byte, tag byte, mod byte) {
	t.Helper()
	c.SetIar(0x0100)
	poke(t, c, 0x0100, shortWord(op, tag, mod))
	step(t, c)
}

func TestShiftLeftSingle(t *testing.T) {
	c := New()
	c.SetAcc(0x4001)
	shiftOp(t, c, opSL, 0, 0x01)
	st := c.GetState()
	if st.Acc != 0x8002 {
		t.Error("Expected ACC 8002, got ", st.Acc)
	}
	if st.Carry {
		t.Error("Expected carry clear")
	}

	shiftOp(t, c, opSL, 0, 0x01)
	st = c.GetState()
	if st.Acc != 0x0004 {
		t.Error("Expected ACC 0004, got ", st.Acc)
	}
	if !st.Carry {
		t.Error("Expected carry from the top bit")
	}
}

func TestShiftLeftCombined(t *testing.T) {
	c := New()
	c.SetAcc(0x8000)
	c.SetExt(0x0001)
	shiftOp(t, c, opSL, 0, shiftCombinedBit|0x01)
	st := c.GetState()
	if st.Acc != 0x0000 || st.Ext != 0x0002 {
		t.Error("Expected ACC:EXT 0000:0002, got ", st.Acc, st.Ext)
	}
	if !st.Carry {
		t.Error("Expected carry from bit 0 of ACC")
	}
}

func TestShiftRightArithmetic(t *testing.T) {
	c := New()
	c.SetAcc(0x8003)
	shiftOp(t, c, opSR, 0, 0x01)
	st := c.GetState()
	if st.Acc != 0xC001 {
		t.Error("Expected sign fill C001, got ", st.Acc)
	}
	if !st.Carry {
		t.Error("Expected carry from the shifted-out 1")
	}

	// counts past the word width leave only the sign
	c.SetAcc(0x8003)
	shiftOp(t, c, opSR, 0, 0x14)
	if st = c.GetState(); st.Acc != 0xFFFF {
		t.Error("Expected FFFF, got ", st.Acc)
	}
}

func TestShiftRightCombined(t *testing.T) {
	c := New()
	c.SetAcc(0x8000)
	c.SetExt(0x0003)
	shiftOp(t, c, opSR, 0, shiftCombinedBit|0x01)
	st := c.GetState()
	// logical: zero fill from the left
	if st.Acc != 0x4000 || st.Ext != 0x0001 {
		t.Error("Expected ACC:EXT 4000:0001, got ", st.Acc, st.Ext)
	}
	if !st.Carry {
		t.Error("Expected carry from bit 0 of EXT")
	}
}

func TestShiftZeroCountIsNoOp(t *testing.T) {
	c := New()
	c.SetAcc(0x1234)
	c.carry = true
	shiftOp(t, c, opSL, 0, 0x00)
	st := c.GetState()
	if st.Acc != 0x1234 || !st.Carry {
		t.Error("Expected zero-count shift to change nothing, got ", st)
	}
}

// the count comes from the modifier plus the tagged index register
func TestShiftIndexedCount(t *testing.T) {
	c := New()
	c.SetAcc(0x0001)
	c.SetXr(1, 0x0003)
	shiftOp(t, c, opSL, 1, 0x01)
	if st := c.GetState(); st.Acc != 0x0010 {
		t.Error("Expected ACC 0010, got ", st.Acc)
	}
}
