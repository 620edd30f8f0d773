// resolve.go

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

// sign-extend the 8-bit modifier to a 16-bit displacement
func sexModifier(m byte) uint16 {
	return uint16(int16(int8(m)))
}

// usesTagForIndexing - the index-register instructions use the tag to name
// their target register, not for address indexing.
func usesTagForIndexing(opcode byte) bool {
	switch opcode {
	case opLDX, opSTX, opMDX:
		return false
	}
	return true
}

// resolveEffAddr applies the addressing rules to a decoded instruction and
// returns the final effective address.  The IAR must already have been
// advanced past the instruction.  All arithmetic wraps modulo 2^16.
func (c *CPU) resolveEffAddr(iPtr *decodedInstrT) (uint16, error) {
	var eff uint16

	if iPtr.long {
		eff = iPtr.word2
	} else {
		eff = c.iar + sexModifier(iPtr.modifier)
	}

	if iPtr.tag != 0 && usesTagForIndexing(iPtr.opcode) {
		eff += c.xr(iPtr.tag)
	}

	// single level of indirection, long format only
	if iPtr.indirect {
		w, err := c.mem.ReadWord(eff)
		if err != nil {
			return 0, err
		}
		eff = w
	}

	return eff, nil
}
