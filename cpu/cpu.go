// cpu.go

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

// Package cpu implements the 1130 processor: registers, instruction decode
// and execution, the six-level interrupt controller and the device bus.
//
// The CPU provides no internal locking: exactly one goroutine may drive
// Step/Run and mutate state at a time.  A host that steps on one goroutine
// while inspecting from another must serialise access itself.
package cpu

import (
	"fmt"

	"github.com/wrightmikea/s1130em/devices"
	"github.com/wrightmikea/s1130em/logging"
	"github.com/wrightmikea/s1130em/memory"
)

// CPU is one 1130 processor with its core store, attached devices and
// interrupt controller.
type CPU struct {
	mem *memory.Memory

	// ACC/EXT live here; the index registers live in core words 1-3
	acc, ext uint16
	iar      uint16

	carry, overflow, wait bool

	instrCount uint64

	devs map[uint8]devices.Device
	intc interruptControllerT

	debugLogging bool
}

// New returns a machine with zeroed registers, a zeroed default-size core
// and no devices attached.
func New() *CPU {
	return NewWithMemSize(memory.DefaultSizeWords)
}

// NewWithMemSize returns a machine with the given core size in words.
func NewWithMemSize(sizeWords int) *CPU {
	return &CPU{
		mem:  memory.New(sizeWords),
		devs: make(map[uint8]devices.Device),
	}
}

// SetDebugLogging turns the ring-buffer trace on or off.  The CPU runs
// noticeably faster without it.
func (c *CPU) SetDebugLogging(on bool) {
	c.debugLogging = on
}

// the index registers are core words 1-3; tag must be 1-3

func (c *CPU) xr(tag byte) uint16 {
	w, _ := c.mem.ReadWord(uint16(tag))
	return w
}

func (c *CPU) setXr(tag byte, v uint16) {
	c.mem.WriteWord(uint16(tag), v)
}

// Memory exposes the core store, e.g. for image loading.
func (c *CPU) Memory() *memory.Memory {
	return c.mem
}

// ReadMemory fetches one word of core.
func (c *CPU) ReadMemory(addr uint16) (uint16, error) {
	return c.mem.ReadWord(addr)
}

// WriteMemory stores one word of core.  Writes to words 1-3 update the
// corresponding index register, since those registers live in core.
func (c *CPU) WriteMemory(addr uint16, datum uint16) error {
	return c.mem.WriteWord(addr, datum)
}

// Iar returns the instruction address register.
func (c *CPU) Iar() uint16 {
	return c.iar
}

// SetIar moves the instruction address register.
func (c *CPU) SetIar(addr uint16) {
	c.iar = addr
}

// SetAcc sets the accumulator.
func (c *CPU) SetAcc(v uint16) {
	c.acc = v
}

// SetExt sets the accumulator extension.
func (c *CPU) SetExt(v uint16) {
	c.ext = v
}

// SetXr sets index register 1-3.
func (c *CPU) SetXr(tag int, v uint16) {
	if tag >= 1 && tag <= 3 {
		c.setXr(byte(tag), v)
	}
}

// ClearWait clears the wait flag so that stepping may resume.
func (c *CPU) ClearWait() {
	c.wait = false
}

// Waiting reports whether the machine has executed a WAIT.
func (c *CPU) Waiting() bool {
	return c.wait
}

// Reset returns the machine to its initial zeroed state.  Attached devices
// stay attached but are themselves reset.
func (c *CPU) Reset() {
	c.acc = 0
	c.ext = 0
	c.iar = 0
	c.carry = false
	c.overflow = false
	c.wait = false
	c.instrCount = 0
	c.mem.Clear()
	c.intc.reset()
	c.resetAllDevices()
}

// Step executes exactly one instruction: fetch-decode, resolve, dispatch,
// poll the interrupt controller, count.  A failing instruction commits no
// state change.  Step fails fast with WaitStateError while the wait flag
// is set.
func (c *CPU) Step() error {
	if c.wait {
		return &WaitStateError{}
	}

	iPtr, err := c.fetchAndDecode()
	if err != nil {
		return err
	}

	prevIar := c.iar
	c.iar += iPtr.length

	if err := c.execute(iPtr); err != nil {
		c.iar = prevIar
		return err
	}

	c.pollInterrupts()
	c.instrCount++
	return nil
}

// Run steps until the wait flag is set, an error occurs, or maxSteps
// instructions have executed.  It returns the number of completed steps.
func (c *CPU) Run(maxSteps int) (int, error) {
	for n := 0; n < maxSteps; n++ {
		if c.wait {
			return n, nil
		}
		if err := c.Step(); err != nil {
			return n, err
		}
	}
	return maxSteps, nil
}

func (c *CPU) fetchAndDecode() (*decodedInstrT, error) {
	word1, err := c.mem.ReadWord(c.iar)
	if err != nil {
		return nil, err
	}
	var word2 uint16
	chars, found := instructionSet[byte(word1>>11)]
	if !found {
		return nil, &InvalidOpcodeError{Addr: c.iar, Word: word1}
	}
	if chars.longFmt && word1&formatBit != 0 {
		if word2, err = c.mem.ReadWord(c.iar + 1); err != nil {
			return nil, err
		}
	}
	iPtr, _ := instructionDecode(word1, word2)
	return iPtr, nil
}

func (c *CPU) execute(iPtr *decodedInstrT) (err error) {
	if c.debugLogging {
		logging.DebugPrint(logging.DebugLog, "%s\t\t%s\n", iPtr.mnemonic, c.compactPrintableStatus())
	}
	switch iPtr.instrType {
	case instrLoadStore:
		err = c.loadStore(iPtr)
	case instrArith:
		err = c.arith(iPtr)
	case instrShift:
		err = c.shift(iPtr)
	case instrBranch:
		err = c.progControl(iPtr)
	case instrIO:
		err = c.execXIO(iPtr)
	case instrControl:
		c.wait = true
	}
	return err
}

func (c *CPU) compactPrintableStatus() string {
	return fmt.Sprintf("ACC: %04X EXT: %04X XR1: %04X XR2: %04X XR3: %04X C: %d O: %d IAR: %04X",
		c.acc, c.ext, c.xr(1), c.xr(2), c.xr(3),
		boolToInt(c.carry), boolToInt(c.overflow), c.iar)
}

// PrintableStatus renders the registers and flags for the console.
func (c *CPU) PrintableStatus() string {
	res := fmt.Sprintf("  ACC   EXT   XR1   XR2   XR3   IAR  CRY OVF WT  INT\n")
	res += fmt.Sprintf(" %04X  %04X  %04X  %04X  %04X  %04X   %d   %d   %d  %3d",
		c.acc, c.ext, c.xr(1), c.xr(2), c.xr(3), c.iar,
		boolToInt(c.carry), boolToInt(c.overflow), boolToInt(c.wait),
		c.intc.currentLevel())
	return res
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
