// shift.go

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

// modifier bit selecting the combined ACC:EXT shift variant
const shiftCombinedBit = 0x40

// shift executes the shift family.  The count is the low six bits of the
// modifier plus the tagged index register; modifier bit 0x40 selects the
// combined ACC:EXT variant.  Carry receives the last bit shifted out; a
// zero count is a no-op leaving the flags untouched.
//
// SL shifts left (SLA single, SLCA combined); SR shifts right (SRA
// arithmetic single, SRT logical combined).
func (c *CPU) shift(iPtr *decodedInstrT) error {
	disp := uint16(iPtr.modifier)
	if iPtr.tag != 0 {
		disp += c.xr(iPtr.tag)
	}
	count := uint(disp & 0x3F)
	if count == 0 {
		return nil
	}

	combined := iPtr.modifier&shiftCombinedBit != 0

	switch iPtr.opcode {
	case opSL:
		if combined {
			wide := uint64(c.accExt()) << count
			c.carry = wide&(1<<32) != 0
			c.setAccExt(uint32(wide))
		} else {
			wide := uint64(c.acc) << count
			c.carry = wide&(1<<16) != 0
			c.acc = uint16(wide)
		}

	case opSR:
		if combined {
			// logical combined right shift, zero fill
			accExt := c.accExt()
			c.carry = (uint64(accExt)>>(count-1))&1 != 0
			c.setAccExt(accExt >> count)
		} else {
			// arithmetic right shift, sign fill
			acc := int16(c.acc)
			c.carry = (int32(acc)>>(count-1))&1 != 0
			c.acc = uint16(acc >> count)
		}
	}
	return nil
}
