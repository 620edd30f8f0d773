// pc.go

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

// BSC condition mask bits (in the modifier byte)
const (
	condZero     = 0x20 // ACC is zero
	condMinus    = 0x10 // ACC is negative
	condPlus     = 0x08 // ACC is positive non-zero
	condEven     = 0x04 // ACC is even
	condCarryOff = 0x02 // carry indicator off
	condOvflOff  = 0x01 // overflow indicator off (testing it resets it)

	boscBit = 0x40 // dismiss the in-service interrupt level on a taken branch
)

// progControl executes the branch/skip and index-modify family.
func (c *CPU) progControl(iPtr *decodedInstrT) error {
	switch iPtr.opcode {
	case opBSI:
		eff, err := c.resolveEffAddr(iPtr)
		if err != nil {
			return err
		}
		if err := c.mem.WriteWord(eff, c.iar); err != nil {
			return err
		}
		c.iar = eff + 1

	case opBSC:
		return c.execBSC(iPtr)

	case opMDX:
		return c.execMDX(iPtr)
	}
	return nil
}

// testConditions reports whether any condition named in the mask holds.
// Testing the overflow indicator resets it, as the hardware does.
func (c *CPU) testConditions(mask byte) bool {
	hit := false
	if mask&condZero != 0 && c.acc == 0 {
		hit = true
	}
	if mask&condMinus != 0 && c.acc&0x8000 != 0 {
		hit = true
	}
	if mask&condPlus != 0 && c.acc&0x8000 == 0 && c.acc != 0 {
		hit = true
	}
	if mask&condEven != 0 && c.acc&0x0001 == 0 {
		hit = true
	}
	if mask&condCarryOff != 0 && !c.carry {
		hit = true
	}
	if mask&condOvflOff != 0 {
		if !c.overflow {
			hit = true
		}
		c.overflow = false
	}
	return hit
}

// execBSC: in short format the next word is skipped when ANY masked
// condition holds; in long format the branch is taken when NO masked
// condition holds (an empty mask branches unconditionally).  The BOSC
// variant (modifier bit 0x40) additionally dismisses the interrupt level
// in service when the branch or skip is taken.
func (c *CPU) execBSC(iPtr *decodedInstrT) error {
	taken := false

	if iPtr.long {
		eff, err := c.resolveEffAddr(iPtr)
		if err != nil {
			return err
		}
		if !c.testConditions(iPtr.modifier & 0x3F) {
			c.iar = eff
			taken = true
		}
	} else {
		if c.testConditions(iPtr.modifier & 0x3F) {
			c.iar++
			taken = true
		}
	}

	if taken && iPtr.modifier&boscBit != 0 {
		c.intc.dismiss()
	}
	return nil
}

// execMDX: with tag 0 the short form is an IAR-relative jump and the long
// form adds the sign-extended modifier to the word at the effective
// address; with tag 1-3 the delta (sign-extended modifier in short form,
// the addressed word in long form) is added to the index register.  When
// the modified value becomes zero or changes sign, the next word is
// skipped.
func (c *CPU) execMDX(iPtr *decodedInstrT) error {
	if iPtr.tag == 0 {
		if !iPtr.long {
			c.iar += sexModifier(iPtr.modifier)
			return nil
		}
		eff, err := c.resolveEffAddr(iPtr)
		if err != nil {
			return err
		}
		old, err := c.mem.ReadWord(eff)
		if err != nil {
			return err
		}
		res := old + sexModifier(iPtr.modifier)
		if err := c.mem.WriteWord(eff, res); err != nil {
			return err
		}
		c.mdxSkip(old, res)
		return nil
	}

	var delta uint16
	if iPtr.long {
		eff, err := c.resolveEffAddr(iPtr)
		if err != nil {
			return err
		}
		w, err := c.mem.ReadWord(eff)
		if err != nil {
			return err
		}
		delta = w
	} else {
		delta = sexModifier(iPtr.modifier)
	}

	old := c.xr(iPtr.tag)
	res := old + delta
	c.setXr(iPtr.tag, res)
	c.mdxSkip(old, res)
	return nil
}

func (c *CPU) mdxSkip(old, res uint16) {
	if res == 0 || (res^old)&0x8000 != 0 {
		c.iar++
	}
}
