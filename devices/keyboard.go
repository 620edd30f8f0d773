// keyboard.go

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

import "github.com/wrightmikea/s1130em/memory"

const (
	// KeyboardCode is the console keyboard's device code.
	KeyboardCode = 1

	keyboardIntLevel = 4
	keyboardIlsw     = 0x8000

	kbStatusReady = 0x0001 // a character is buffered
)

// Keyboard is the character-mode console input device.  Programs Sense for
// a ready character and Read it one at a time; each keystroke fed in via
// TypeChar raises a level-4 interrupt once the device is bound to a CPU.
type Keyboard struct {
	buf []uint16
	irq Raiser
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Code() uint8 {
	return KeyboardCode
}

func (k *Keyboard) Name() string {
	return "Console Keyboard"
}

// Bind attaches the interrupt path used for keystroke notification.
func (k *Keyboard) Bind(irq Raiser) {
	k.irq = irq
}

// TypeChar buffers one keystroke and, when bound, raises the keyboard's
// interrupt level.
func (k *Keyboard) TypeChar(ch uint16) error {
	k.buf = append(k.buf, ch)
	if k.irq != nil {
		return k.irq.RaiseInterrupt(keyboardIntLevel, KeyboardCode, keyboardIlsw)
	}
	return nil
}

// TypeString buffers a whole string of keystrokes.
func (k *Keyboard) TypeString(s string) error {
	for _, ch := range s {
		if err := k.TypeChar(uint16(ch)); err != nil {
			return err
		}
	}
	return nil
}

// HasChar reports whether a character is waiting to be read.
func (k *Keyboard) HasChar() bool {
	return len(k.buf) > 0
}

func (k *Keyboard) Execute(iocc Iocc, mem *memory.Memory, irq Raiser) error {
	switch iocc.Function {
	case Sense:
		var status uint16
		if len(k.buf) > 0 {
			status = kbStatusReady
		}
		return mem.WriteWord(iocc.WCA, status)

	case Read:
		if len(k.buf) == 0 {
			return &NoDataError{DevCode: KeyboardCode}
		}
		ch := k.buf[0]
		if err := mem.WriteWord(iocc.WCA, ch); err != nil {
			return err
		}
		k.buf = k.buf[1:]
		return nil

	default:
		return &UnsupportedFunctionError{DevCode: KeyboardCode, Function: iocc.Function}
	}
}

func (k *Keyboard) Reset() {
	k.buf = nil
}

func (k *Keyboard) Status() Status {
	var word uint16
	if len(k.buf) > 0 {
		word = kbStatusReady
	}
	return Status{Busy: false, Word: word}
}
