// arith.go

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

// arith executes the add/subtract/multiply/divide and logical families.
// Carry is the unsigned carry/borrow out of the top bit; overflow is
// two's-complement signed overflow.  The logical group touches no flags.
func (c *CPU) arith(iPtr *decodedInstrT) error {
	eff, err := c.resolveEffAddr(iPtr)
	if err != nil {
		return err
	}

	operand, err := c.mem.ReadWord(eff)
	if err != nil {
		return err
	}

	switch iPtr.opcode {
	case opA:
		wide := uint32(c.acc) + uint32(operand)
		res := uint16(wide)
		c.carry = wide > 0xFFFF
		c.overflow = (c.acc^res)&(operand^res)&0x8000 != 0
		c.acc = res

	case opAD:
		lo, err := c.mem.ReadWord(eff + 1)
		if err != nil {
			return err
		}
		op32 := uint32(operand)<<16 | uint32(lo)
		accExt := c.accExt()
		wide := uint64(accExt) + uint64(op32)
		res := uint32(wide)
		c.carry = wide > 0xFFFFFFFF
		c.overflow = (accExt^res)&(op32^res)&0x80000000 != 0
		c.setAccExt(res)

	case opS:
		res := c.acc - operand
		c.carry = c.acc < operand
		c.overflow = (c.acc^operand)&(c.acc^res)&0x8000 != 0
		c.acc = res

	case opSD:
		lo, err := c.mem.ReadWord(eff + 1)
		if err != nil {
			return err
		}
		op32 := uint32(operand)<<16 | uint32(lo)
		accExt := c.accExt()
		res := accExt - op32
		c.carry = accExt < op32
		c.overflow = (accExt^op32)&(accExt^res)&0x80000000 != 0
		c.setAccExt(res)

	case opM:
		// signed 16x16 product fills ACC:EXT; no flags
		prod := int32(int16(c.acc)) * int32(int16(operand))
		c.setAccExt(uint32(prod))

	case opD:
		divisor := int16(operand)
		if divisor == 0 {
			return &DivideByZeroError{Addr: eff}
		}
		dividend := int32(c.accExt())
		quotient := dividend / int32(divisor)
		remainder := dividend % int32(divisor)
		if quotient > 32767 || quotient < -32768 {
			// quotient will not fit: flag it and leave the registers alone
			c.overflow = true
			return nil
		}
		c.acc = uint16(quotient)
		c.ext = uint16(remainder)
		c.overflow = false

	case opAND:
		c.acc &= operand

	case opOR:
		c.acc |= operand

	case opEOR:
		c.acc ^= operand
	}
	return nil
}
