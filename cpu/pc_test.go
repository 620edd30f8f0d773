// pc_test.go

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

func TestBranchStoreIar(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100, longWord1(opBSI, 0, false, 0), 0x0300)
	step(t, c)
	if peek(t, c, 0x0300) != 0x0102 {
		t.Error("Expected return address 0102 at 0300, got ", peek(t, c, 0x0300))
	}
	if c.Iar() != 0x0301 {
		t.Error("Expected IAR 0301, got ", c.Iar())
	}
}

func TestSkipShortAnyCondition(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetAcc(0x0000)
	// skip when ACC zero or negative
	poke(t, c, 0x0100, shortWord(opBSC, 0, condZero|condMinus))
	step(t, c)
	if c.Iar() != 0x0102 {
		t.Error("Expected skip to 0102, got ", c.Iar())
	}

	c.SetIar(0x0100)
	c.SetAcc(0x0001)
	step(t, c)
	if c.Iar() != 0x0101 {
		t.Error("Expected no skip, got ", c.Iar())
	}
}

func TestBranchLongNoCondition(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetAcc(0x0001)
	// branch unless ACC is zero
	poke(t, c, 0x0100, longWord1(opBSC, 0, false, condZero), 0x0400)
	step(t, c)
	if c.Iar() != 0x0400 {
		t.Error("Expected branch to 0400, got ", c.Iar())
	}

	c.SetIar(0x0100)
	c.SetAcc(0x0000)
	step(t, c)
	if c.Iar() != 0x0102 {
		t.Error("Expected fall through to 0102, got ", c.Iar())
	}
}

func TestBranchUnconditional(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100, longWord1(opBSC, 0, false, 0), 0x0400)
	step(t, c)
	if c.Iar() != 0x0400 {
		t.Error("Expected unconditional branch to 0400, got ", c.Iar())
	}
}

// testing the overflow-off condition resets the indicator
func TestBranchOverflowTestResets(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.overflow = true
	c.SetAcc(0x0001)
	poke(t, c, 0x0100, shortWord(opBSC, 0, condOvflOff))
	step(t, c)
	if c.Iar() != 0x0101 {
		t.Error("Expected no skip with overflow set, got ", c.Iar())
	}
	if c.GetState().Overflow {
		t.Error("Expected overflow reset by the test")
	}
}

func TestBranchCarryOff(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.carry = false
	poke(t, c, 0x0100, shortWord(opBSC, 0, condCarryOff))
	step(t, c)
	if c.Iar() != 0x0102 {
		t.Error("Expected skip with carry off, got ", c.Iar())
	}
}

func TestBranchEven(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetAcc(0x0004)
	poke(t, c, 0x0100, shortWord(opBSC, 0, condEven))
	step(t, c)
	if c.Iar() != 0x0102 {
		t.Error("Expected skip on even ACC, got ", c.Iar())
	}
}

func TestModifyIndexShortJump(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100, shortWord(opMDX, 0, 0x10))
	step(t, c)
	if c.Iar() != 0x0111 {
		t.Error("Expected IAR 0111, got ", c.Iar())
	}
}

func TestModifyIndexRegister(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetXr(1, 0x0005)
	poke(t, c, 0x0100, shortWord(opMDX, 1, 0xFE)) // XR1 -= 2
	step(t, c)
	if st := c.GetState(); st.Xr[0] != 0x0003 {
		t.Error("Expected XR1 0003, got ", st.Xr[0])
	}
	if c.Iar() != 0x0101 {
		t.Error("Expected no skip, got ", c.Iar())
	}
}

func TestModifyIndexSkipOnZero(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetXr(2, 0x0001)
	poke(t, c, 0x0100, shortWord(opMDX, 2, 0xFF)) // XR2--
	step(t, c)
	if st := c.GetState(); st.Xr[1] != 0x0000 {
		t.Error("Expected XR2 0000, got ", st.Xr[1])
	}
	if c.Iar() != 0x0102 {
		t.Error("Expected skip on zero, got ", c.Iar())
	}
}

func TestModifyIndexSkipOnSignChange(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetXr(3, 0x0001)
	poke(t, c, 0x0100, shortWord(opMDX, 3, 0xFD)) // XR3 -= 3
	step(t, c)
	if st := c.GetState(); st.Xr[2] != 0xFFFE {
		t.Error("Expected XR3 FFFE, got ", st.Xr[2])
	}
	if c.Iar() != 0x0102 {
		t.Error("Expected skip on sign change, got ", c.Iar())
	}
}

func TestModifyIndexLongMemory(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	// add 2 to the word at 0x0200
	poke(t, c, 0x0100, longWord1(opMDX, 0, false, 0x02), 0x0200)
	poke(t, c, 0x0200, 0xFFFE)
	step(t, c)
	if peek(t, c, 0x0200) != 0x0000 {
		t.Error("Expected 0000 at 0200, got ", peek(t, c, 0x0200))
	}
	if c.Iar() != 0x0103 {
		t.Error("Expected skip on zero, got ", c.Iar())
	}
}

func TestModifyIndexLongRegister(t *testing.T) {
	c := New()
	c.SetIar(0x0100)
	c.SetXr(1, 0x0010)
	poke(t, c, 0x0100, longWord1(opMDX, 1, false, 0), 0x0200)
	poke(t, c, 0x0200, 0x0025)
	step(t, c)
	if st := c.GetState(); st.Xr[0] != 0x0035 {
		t.Error("Expected XR1 0035, got ", st.Xr[0])
	}
	if c.Iar() != 0x0102 {
		t.Error("Expected no skip, got ", c.Iar())
	}
}
