// decoder.go

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

import "fmt"

// First-word layout, bit 0 = MSB:
//   bits 0-4  opcode
//   bit  5    format flag (long when the opcode supports it)
//   bits 6-7  tag (index register selector)
//   bits 8-15 modifier byte
// Long format only: modifier bit 8 is the indirect flag and the second
// word carries the full 16-bit displacement.
const (
	formatBit   = 0x0400
	indirectBit = 0x80
)

type decodedInstrT struct {
	opcode    byte
	mnemonic  string
	instrType int
	long      bool
	tag       byte
	modifier  byte
	indirect  bool
	word2     uint16
	length    uint16 // words consumed: 1 or 2
}

// instructionDecode unpacks one instruction from its fetched word(s).
// word2 is only examined when the first word selects long format.
func instructionDecode(word1, word2 uint16) (*decodedInstrT, bool) {
	chars, found := instructionSet[byte(word1>>11)]
	if !found {
		return nil, false
	}
	d := decodedInstrT{
		opcode:    byte(word1 >> 11),
		mnemonic:  chars.mnemonic,
		instrType: chars.instrType,
		tag:       byte((word1 >> 8) & 0x03),
		modifier:  byte(word1),
		length:    1,
	}
	if chars.longFmt && word1&formatBit != 0 {
		d.long = true
		d.indirect = d.modifier&indirectBit != 0
		d.word2 = word2
		d.length = 2
	}
	return &d, true
}

// Disassemble renders the instruction starting in word1 and returns its
// printable form and length in words.  Unrecognised words disassemble as
// a one-word "???".
func Disassemble(word1, word2 uint16) (string, int) {
	d, ok := instructionDecode(word1, word2)
	if !ok {
		return "???", 1
	}
	text := fmt.Sprintf("%-4s", d.mnemonic)
	if d.long {
		text += " L"
	} else {
		text += "  "
	}
	if d.tag != 0 {
		text += fmt.Sprintf("%d", d.tag)
	} else {
		text += " "
	}
	if d.long {
		text += fmt.Sprintf(" /%04X", d.word2)
		if d.indirect {
			text += " I"
		}
	} else {
		text += fmt.Sprintf(" %+d", int8(d.modifier))
	}
	return text, int(d.length)
}
