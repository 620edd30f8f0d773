// device.go

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

// Package devices implements the 1130's I/O device contract and the
// standard console and unit-record devices.  The CPU talks to a device
// only through the XIO instruction's IOCC; devices own their buffering
// and signal completion back through an interrupt Raiser.
package devices

import (
	"fmt"

	"github.com/wrightmikea/s1130em/memory"
)

// Raiser is the devices' path back into the interrupt controller.
// Devices that complete a transfer call Raise with their configured
// priority level and an interrupt-level-status-word.
type Raiser interface {
	RaiseInterrupt(level int, devCode uint8, ilsw uint16) error
}

// Status is the device state reported to the host.
type Status struct {
	Busy bool
	Word uint16
}

// Device is the four-operation contract every attached device satisfies.
type Device interface {
	Code() uint8
	Name() string
	Execute(iocc Iocc, mem *memory.Memory, irq Raiser) error
	Reset()
	Status() Status
}

// InterruptSource is satisfied by devices which raise interrupts outside
// an Execute call (e.g. the keyboard on a keystroke).  The CPU binds
// itself to such devices when they are attached.
type InterruptSource interface {
	Bind(irq Raiser)
}

// NoDataError is returned by a Read-class function when the device has
// nothing buffered.
type NoDataError struct {
	DevCode uint8
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("device %d: no data available", e.DevCode)
}

// UnsupportedFunctionError is returned when a device receives an IOCC
// function it does not implement.
type UnsupportedFunctionError struct {
	DevCode  uint8
	Function Function
}

func (e *UnsupportedFunctionError) Error() string {
	return fmt.Sprintf("device %d: unsupported function %s", e.DevCode, e.Function)
}
