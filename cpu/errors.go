// errors.go

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

// InvalidOpcodeError is returned when the word at the IAR does not carry a
// recognised opcode.  The IAR is left pointing at the offending word.
type InvalidOpcodeError struct {
	Addr uint16
	Word uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode in word %#04x at address %#04x", e.Word, e.Addr)
}

// DivideByZeroError is returned by the divide instruction; no register or
// memory state is changed.
type DivideByZeroError struct {
	Addr uint16
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("divide by zero at address %#04x", e.Addr)
}

// WaitStateError is returned by Step while the wait flag is set.  It is the
// expected way for a host loop to discover the program has halted.
type WaitStateError struct{}

func (e *WaitStateError) Error() string {
	return "cpu is in wait state"
}

// InvalidInterruptLevelError reports a raise outside the closed 0-5 level
// range, which indicates a programming error in the caller.
type InvalidInterruptLevelError struct {
	Level int
}

func (e *InvalidInterruptLevelError) Error() string {
	return fmt.Sprintf("invalid interrupt level %d", e.Level)
}

// DeviceNotFoundError is returned when an XIO addresses a device code with
// nothing attached.
type DeviceNotFoundError struct {
	Code uint8
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no device attached with code %d", e.Code)
}
