// printer.go

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

import (
	"io"

	"github.com/wrightmikea/s1130em/memory"
)

const (
	// PrinterCode is the console printer's device code.
	PrinterCode = 2

	printerIntLevel = 4
	printerIlsw     = 0x4000 // block write complete

	prStatusReady = 0x0001
)

// Printer is the character-mode console output device.  Write prints a
// single character from the WCA word; InitWrite prints a whole block
// (negative word count at the WCA, data following it) and raises a
// level-4 completion interrupt.
type Printer struct {
	output []uint16
	echo   io.Writer
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Code() uint8 {
	return PrinterCode
}

func (p *Printer) Name() string {
	return "Console Printer"
}

// SetEcho mirrors every printed character to w (e.g. the operator console).
func (p *Printer) SetEcho(w io.Writer) {
	p.echo = w
}

// Output returns everything printed so far as a string, one character per
// word, low byte significant.
func (p *Printer) Output() string {
	b := make([]byte, len(p.output))
	for i, w := range p.output {
		b[i] = byte(w)
	}
	return string(b)
}

// OutputWords returns the raw printed words.
func (p *Printer) OutputWords() []uint16 {
	return p.output
}

// ClearOutput discards the captured output.
func (p *Printer) ClearOutput() {
	p.output = nil
}

func (p *Printer) printWord(w uint16) {
	p.output = append(p.output, w)
	if p.echo != nil {
		p.echo.Write([]byte{byte(w)})
	}
}

func (p *Printer) Execute(iocc Iocc, mem *memory.Memory, irq Raiser) error {
	switch iocc.Function {
	case Sense:
		return mem.WriteWord(iocc.WCA, prStatusReady)

	case Write:
		ch, err := mem.ReadWord(iocc.WCA)
		if err != nil {
			return err
		}
		p.printWord(ch)
		return nil

	case InitWrite:
		// negative word count at the WCA, data from WCA+1
		wc, err := mem.ReadWord(iocc.WCA)
		if err != nil {
			return err
		}
		count := -int16(wc)
		for i := int16(0); i < count; i++ {
			ch, err := mem.ReadWord(iocc.WCA + 1 + uint16(i))
			if err != nil {
				return err
			}
			p.printWord(ch)
		}
		if irq != nil {
			return irq.RaiseInterrupt(printerIntLevel, PrinterCode, printerIlsw)
		}
		return nil

	default:
		return &UnsupportedFunctionError{DevCode: PrinterCode, Function: iocc.Function}
	}
}

func (p *Printer) Reset() {
	p.output = nil
}

func (p *Printer) Status() Status {
	return Status{Busy: false, Word: prStatusReady}
}
