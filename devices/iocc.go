// iocc.go

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

package devices

// Function is the 3-bit IOCC function code.
type Function uint8

const (
	Sense Function = iota
	Control
	InitRead
	Read
	InitWrite
	Write
	SenseIlsw
	Reserved
)

func (f Function) String() string {
	switch f {
	case Sense:
		return "Sense"
	case Control:
		return "Control"
	case InitRead:
		return "InitRead"
	case Read:
		return "Read"
	case InitWrite:
		return "InitWrite"
	case Write:
		return "Write"
	case SenseIlsw:
		return "SenseIlsw"
	case Reserved:
		return "Reserved"
	}
	return "Invalid"
}

// Iocc is the two-word I/O Channel Command the XIO instruction addresses.
// Word 0 is the Word Count Address; word 1 packs the device code in its
// five high bits, the function code in the next three, and eight modifier
// bits in the low byte.
type Iocc struct {
	WCA        uint16
	DeviceCode uint8
	Function   Function
	Modifiers  uint8
}

// DecodeIocc unpacks the two IOCC words.
func DecodeIocc(word1, word2 uint16) Iocc {
	return Iocc{
		WCA:        word1,
		DeviceCode: uint8(word2 >> 11),
		Function:   Function((word2 >> 8) & 0x07),
		Modifiers:  uint8(word2),
	}
}

// Encode packs the IOCC back into its two memory words.
func (i Iocc) Encode() (uint16, uint16) {
	word2 := uint16(i.DeviceCode)<<11 | uint16(i.Function&0x07)<<8 | uint16(i.Modifiers)
	return i.WCA, word2
}
