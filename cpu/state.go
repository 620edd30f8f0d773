// state.go

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

// status word layout used by LDS/STS
const (
	flagCarry    = 0x8000
	flagOverflow = 0x4000
)

// State is a JSON-serialisable snapshot of the visible machine state.
type State struct {
	Acc        uint16    `json:"acc"`
	Ext        uint16    `json:"ext"`
	Iar        uint16    `json:"iar"`
	Xr         [3]uint16 `json:"xr"`
	Carry      bool      `json:"carry"`
	Overflow   bool      `json:"overflow"`
	Wait       bool      `json:"wait"`
	InstrCount uint64    `json:"instrCount"`

	// CurrentIntLevel is the level now in service, or -1 when none.
	CurrentIntLevel int `json:"currentIntLevel"`
}

// GetState returns a copy of the registers, flags, instruction count and
// in-service interrupt level.
func (c *CPU) GetState() State {
	return State{
		Acc:             c.acc,
		Ext:             c.ext,
		Iar:             c.iar,
		Xr:              [3]uint16{c.xr(1), c.xr(2), c.xr(3)},
		Carry:           c.carry,
		Overflow:        c.overflow,
		Wait:            c.wait,
		InstrCount:      c.instrCount,
		CurrentIntLevel: c.intc.currentLevel(),
	}
}

func (c *CPU) flagsToWord() uint16 {
	var w uint16
	if c.carry {
		w |= flagCarry
	}
	if c.overflow {
		w |= flagOverflow
	}
	return w
}

func (c *CPU) flagsFromWord(w uint16) {
	c.carry = w&flagCarry != 0
	c.overflow = w&flagOverflow != 0
}

// accExt returns ACC:EXT as one 32-bit value.
func (c *CPU) accExt() uint32 {
	return uint32(c.acc)<<16 | uint32(c.ext)
}

func (c *CPU) setAccExt(v uint32) {
	c.acc = uint16(v >> 16)
	c.ext = uint16(v)
}
