// memref_test.go

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

func TestLoadShort(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100, shortWord(opLD, 0, 0x05))
	poke(t, c, 0x0106, 0xCAFE)
	step(t, c)
	if st := c.GetState(); st.Acc != 0xCAFE {
		t.Error("Expected ACC CAFE, got ", st.Acc)
	}
	if c.Iar() != 0x0101 {
		t.Error("Expected IAR 0101, got ", c.Iar())
	}
}

func TestLoadLongIndirect(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100, longWord1(opLD, 0, true, 0), 0x0400)
	poke(t, c, 0x0400, 0x0500)
	poke(t, c, 0x0500, 0xBEEF)
	step(t, c)
	if st := c.GetState(); st.Acc != 0xBEEF {
		t.Error("Expected ACC BEEF, got ", st.Acc)
	}
	if c.Iar() != 0x0102 {
		t.Error("Expected IAR 0102, got ", c.Iar())
	}
}

func TestLoadStoreDouble(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100,
		longWord1(opLDD, 0, false, 0), 0x0200,
		longWord1(opSTD, 0, false, 0), 0x0300)
	poke(t, c, 0x0200, 0x1122, 0x3344)
	step(t, c)
	st := c.GetState()
	if st.Acc != 0x1122 || st.Ext != 0x3344 {
		t.Error("Expected ACC:EXT 1122:3344, got ", st.Acc, st.Ext)
	}
	step(t, c)
	if peek(t, c, 0x0300) != 0x1122 || peek(t, c, 0x0301) != 0x3344 {
		t.Error("Expected double word stored at 0300")
	}
}

func TestStore(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetAcc(0xABCD)
	poke(t, c, 0x0100, longWord1(opSTO, 0, false, 0), 0x0250)
	step(t, c)
	if peek(t, c, 0x0250) != 0xABCD {
		t.Error("Expected ABCD at 0250")
	}
}

func TestLoadStoreIndex(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100,
		longWord1(opLDX, 2, false, 0), 0x0200,
		longWord1(opSTX, 2, false, 0), 0x0300)
	poke(t, c, 0x0200, 0x0777)
	step(t, c)
	if st := c.GetState(); st.Xr[1] != 0x0777 {
		t.Error("Expected XR2 0777, got ", st.Xr[1])
	}
	step(t, c)
	if peek(t, c, 0x0300) != 0x0777 {
		t.Error("Expected 0777 stored at 0300")
	}
}

// tag 0 names no register, so LDX/STX do nothing
func TestLoadStoreIndexTagZero(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100,
		longWord1(opLDX, 0, false, 0), 0x0200,
		longWord1(opSTX, 0, false, 0), 0x0300)
	poke(t, c, 0x0200, 0x0777)
	poke(t, c, 0x0300, 0x1111)
	step(t, c)
	step(t, c)
	st := c.GetState()
	if st.Xr[0] != 0 || st.Xr[1] != 0 || st.Xr[2] != 0 {
		t.Error("Expected index registers untouched, got ", st.Xr)
	}
	if peek(t, c, 0x0300) != 0x1111 {
		t.Error("Expected 0300 untouched")
	}
	if c.Iar() != 0x0104 {
		t.Error("Expected IAR 0104, got ", c.Iar())
	}
}

func TestLoadStoreStatus(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.carry = true
	poke(t, c, 0x0100,
		longWord1(opSTS, 0, false, 0), 0x0200,
		shortWord(opLDS, 0, 0x05)) // loads from 0x0103 + 5
	poke(t, c, 0x0108, flagCarry|flagOverflow)
	step(t, c)
	if peek(t, c, 0x0200) != flagCarry {
		t.Error("Expected carry bit stored, got ", peek(t, c, 0x0200))
	}
	step(t, c)
	st := c.GetState()
	if !st.Carry || !st.Overflow {
		t.Error("Expected both flags loaded, got ", st)
	}
}
