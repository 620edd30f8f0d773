// interrupts.go

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

import "github.com/wrightmikea/s1130em/logging"

const (
	// NumIntLevels is the number of interrupt priority levels; level 0 is
	// the highest priority.
	NumIntLevels = 6

	// intVectorBase is the core address of the level-0 vector word; the
	// vectors for levels 1-5 follow it.
	intVectorBase = 0x0008
)

// interruptT is one raised interrupt making its way from a device queue
// through delivery to dismissal.
type interruptT struct {
	level   int
	devCode uint8
	ilsw    uint16
	svcAddr uint16 // where the return IAR was saved at delivery
}

// interruptControllerT holds six FIFO queues of raised interrupts plus the
// stack of levels currently in service.  Only a strictly higher priority
// (numerically lower) level may preempt the one in service.
type interruptControllerT struct {
	queues    [NumIntLevels][]*interruptT
	inService []*interruptT
}

func (ic *interruptControllerT) raise(level int, devCode uint8, ilsw uint16) error {
	if level < 0 || level >= NumIntLevels {
		return &InvalidInterruptLevelError{Level: level}
	}
	ic.queues[level] = append(ic.queues[level],
		&interruptT{level: level, devCode: devCode, ilsw: ilsw})
	return nil
}

// candidate returns the head of the highest-priority non-empty queue.
func (ic *interruptControllerT) candidate() *interruptT {
	for lvl := 0; lvl < NumIntLevels; lvl++ {
		if len(ic.queues[lvl]) > 0 {
			return ic.queues[lvl][0]
		}
	}
	return nil
}

// currentLevel returns the level now in service, or -1 when none.
func (ic *interruptControllerT) currentLevel() int {
	if len(ic.inService) == 0 {
		return -1
	}
	return ic.inService[len(ic.inService)-1].level
}

// deliver dequeues in, records where the return IAR was saved and pushes it
// onto the in-service stack.
func (ic *interruptControllerT) deliver(in *interruptT, svcAddr uint16) {
	ic.queues[in.level] = ic.queues[in.level][1:]
	in.svcAddr = svcAddr
	ic.inService = append(ic.inService, in)
}

// dismiss pops the interrupt now in service, or returns nil.
func (ic *interruptControllerT) dismiss() *interruptT {
	if len(ic.inService) == 0 {
		return nil
	}
	in := ic.inService[len(ic.inService)-1]
	ic.inService = ic.inService[:len(ic.inService)-1]
	return in
}

func (ic *interruptControllerT) reset() {
	for lvl := range ic.queues {
		ic.queues[lvl] = nil
	}
	ic.inService = nil
}

// RaiseInterrupt queues an interrupt on the given level.  It never blocks;
// delivery happens at the end of an executed instruction.  Devices use this
// as their completion path, and a host may inject interrupts directly.
func (c *CPU) RaiseInterrupt(level int, devCode uint8, ilsw uint16) error {
	return c.intc.raise(level, devCode, ilsw)
}

// ReturnFromInterrupt dismisses the interrupt in service and restores the
// IAR from the word saved at delivery.  With nothing in service it is a
// no-op, so a lower-priority interrupt (if queued) is delivered after the
// next instruction.
func (c *CPU) ReturnFromInterrupt() error {
	in := c.intc.dismiss()
	if in == nil {
		return nil
	}
	w, err := c.mem.ReadWord(in.svcAddr)
	if err != nil {
		return err
	}
	c.iar = w
	return nil
}

// pollInterrupts is called once per executed instruction.  Delivery forces
// a subroutine call through the level's vector word: the handler address is
// read from the vector, the current IAR is stored at the handler address
// and execution continues at the following word.
func (c *CPU) pollInterrupts() {
	in := c.intc.candidate()
	if in == nil {
		return
	}
	if cur := c.intc.currentLevel(); cur != -1 && in.level >= cur {
		return
	}
	handler, err := c.mem.ReadWord(intVectorBase + uint16(in.level))
	if err != nil {
		return
	}
	if err := c.mem.WriteWord(handler, c.iar); err != nil {
		// unusable vector: leave the interrupt queued
		return
	}
	c.intc.deliver(in, handler)
	c.iar = handler + 1
	if c.debugLogging {
		logging.DebugPrint(logging.DebugLog, "<<< Interrupt level %d dev %d ILSW %04X >>>\n",
			in.level, in.devCode, in.ilsw)
	}
}
