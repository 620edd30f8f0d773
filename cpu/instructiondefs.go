// instructiondefs.go

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

// Instruction Types
const (
	instrLoadStore = iota
	instrArith
	instrShift
	instrBranch
	instrIO
	instrControl
)

// 5-bit opcode values
const (
	opXIO  = 0x01
	opSL   = 0x02
	opSR   = 0x03
	opLDS  = 0x04
	opSTS  = 0x05
	opWAIT = 0x06
	opBSI  = 0x08
	opBSC  = 0x09
	opLDX  = 0x0C
	opSTX  = 0x0D
	opMDX  = 0x0E
	opA    = 0x10
	opAD   = 0x11
	opS    = 0x12
	opSD   = 0x13
	opM    = 0x14
	opD    = 0x15
	opLD   = 0x18
	opLDD  = 0x19
	opSTO  = 0x1A
	opSTD  = 0x1B
	opAND  = 0x1C
	opOR   = 0x1D
	opEOR  = 0x1E
)

// instrChars define the characteristics of each instruction
type instrChars struct {
	mnemonic  string
	longFmt   bool // the opcode honours the format flag
	instrType int
}

var instructionSet = map[byte]instrChars{
	opXIO:  {"XIO", true, instrIO},
	opSL:   {"SL", false, instrShift},
	opSR:   {"SR", false, instrShift},
	opLDS:  {"LDS", false, instrLoadStore},
	opSTS:  {"STS", true, instrLoadStore},
	opWAIT: {"WAIT", false, instrControl},
	opBSI:  {"BSI", true, instrBranch},
	opBSC:  {"BSC", true, instrBranch},
	opLDX:  {"LDX", true, instrLoadStore},
	opSTX:  {"STX", true, instrLoadStore},
	opMDX:  {"MDX", true, instrBranch},
	opA:    {"A", true, instrArith},
	opAD:   {"AD", true, instrArith},
	opS:    {"S", true, instrArith},
	opSD:   {"SD", true, instrArith},
	opM:    {"M", true, instrArith},
	opD:    {"D", true, instrArith},
	opLD:   {"LD", true, instrLoadStore},
	opLDD:  {"LDD", true, instrLoadStore},
	opSTO:  {"STO", true, instrLoadStore},
	opSTD:  {"STD", true, instrLoadStore},
	opAND:  {"AND", true, instrArith},
	opOR:   {"OR", true, instrArith},
	opEOR:  {"EOR", true, instrArith},
}
