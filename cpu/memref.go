// memref.go

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

// loadStore executes the load/store family.  None of these touch carry or
// overflow, except LDS/STS which exist to move the flags themselves.
func (c *CPU) loadStore(iPtr *decodedInstrT) error {
	eff, err := c.resolveEffAddr(iPtr)
	if err != nil {
		return err
	}

	switch iPtr.opcode {
	case opLD:
		w, err := c.mem.ReadWord(eff)
		if err != nil {
			return err
		}
		c.acc = w

	case opLDD:
		hi, err := c.mem.ReadWord(eff)
		if err != nil {
			return err
		}
		lo, err := c.mem.ReadWord(eff + 1)
		if err != nil {
			return err
		}
		c.acc = hi
		c.ext = lo

	case opSTO:
		return c.mem.WriteWord(eff, c.acc)

	case opSTD:
		// probe both words so a bounds failure commits nothing
		if _, err := c.mem.ReadWord(eff); err != nil {
			return err
		}
		if _, err := c.mem.ReadWord(eff + 1); err != nil {
			return err
		}
		c.mem.WriteWord(eff, c.acc)
		c.mem.WriteWord(eff+1, c.ext)

	case opLDX:
		if iPtr.tag == 0 {
			return nil
		}
		w, err := c.mem.ReadWord(eff)
		if err != nil {
			return err
		}
		c.setXr(iPtr.tag, w)

	case opSTX:
		if iPtr.tag == 0 {
			return nil
		}
		return c.mem.WriteWord(eff, c.xr(iPtr.tag))

	case opLDS:
		w, err := c.mem.ReadWord(eff)
		if err != nil {
			return err
		}
		c.flagsFromWord(w)

	case opSTS:
		return c.mem.WriteWord(eff, c.flagsToWord())
	}
	return nil
}
