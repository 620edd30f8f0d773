// io_test.go

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

import (
	"errors"
	"testing"

	"github.com/wrightmikea/s1130em/devices"
)

// plant an IOCC at 0x0180 and an XIO pointing at it
func xioMachine(t *testing.T, dev uint8, fn devices.Function, mods uint8, wca uint16) *CPU {
	t.Helper()
	c := New()
	c.SetIar(0x0100)
	poke(t, c, 0x0100, longWord1(opXIO, 0, false, 0), 0x0180)
	iocc := devices.Iocc{WCA: wca, DeviceCode: dev, Function: fn, Modifiers: mods}
	w1, w2 := iocc.Encode()
	poke(t, c, 0x0180, w1, w2)
	return c
}

func TestXioKeyboardRead(t *testing.T) {
	c := xioMachine(t, devices.KeyboardCode, devices.Read, 0, 0x0200)
	kb := devices.NewKeyboard()
	kb.TypeChar('A') // buffered before binding, so no interrupt is raised
	c.AttachDevice(kb)
	step(t, c)
	if peek(t, c, 0x0200) != 'A' {
		t.Error("Expected A at the WCA, got ", peek(t, c, 0x0200))
	}
}

func TestXioKeyboardSense(t *testing.T) {
	c := xioMachine(t, devices.KeyboardCode, devices.Sense, 0, 0x0200)
	kb := devices.NewKeyboard()
	c.AttachDevice(kb)
	step(t, c)
	if peek(t, c, 0x0200) != 0 {
		t.Error("Expected not-ready status, got ", peek(t, c, 0x0200))
	}
}

func TestXioPrinterWrite(t *testing.T) {
	c := xioMachine(t, devices.PrinterCode, devices.Write, 0, 0x0200)
	pr := devices.NewPrinter()
	c.AttachDevice(pr)
	poke(t, c, 0x0200, 'H')
	step(t, c)
	if pr.Output() != "H" {
		t.Error("Expected H printed, got ", pr.Output())
	}
}

func TestXioDeviceNotFound(t *testing.T) {
	c := xioMachine(t, 17, devices.Sense, 0, 0x0200)
	err := c.Step()
	var dnf *DeviceNotFoundError
	if !errors.As(err, &dnf) {
		t.Fatal("Expected DeviceNotFoundError, got ", err)
	}
	if dnf.Code != 17 {
		t.Error("Expected code 17, got ", dnf.Code)
	}
	if c.Iar() != 0x0100 {
		t.Error("Expected IAR left at the XIO, got ", c.Iar())
	}
}

func TestXioDeviceErrorLeavesIar(t *testing.T) {
	// reading an empty keyboard fails and the step commits nothing
	c := xioMachine(t, devices.KeyboardCode, devices.Read, 0, 0x0200)
	c.AttachDevice(devices.NewKeyboard())
	err := c.Step()
	var nde *devices.NoDataError
	if !errors.As(err, &nde) {
		t.Fatal("Expected NoDataError, got ", err)
	}
	if c.Iar() != 0x0100 {
		t.Error("Expected IAR left at the XIO, got ", c.Iar())
	}
}

// a rejected function commits nothing and raises nothing
func TestXioUnsupportedFunctionIsHarmless(t *testing.T) {
	c := xioMachine(t, devices.KeyboardCode, devices.Control, 0, 0x0200)
	c.AttachDevice(devices.NewKeyboard())
	c.SetAcc(0x5555)
	poke(t, c, 0x0200, 0x1111)
	err := c.Step()
	var ufe *devices.UnsupportedFunctionError
	if !errors.As(err, &ufe) {
		t.Fatal("Expected UnsupportedFunctionError, got ", err)
	}
	st := c.GetState()
	if st.Iar != 0x0100 || st.Acc != 0x5555 {
		t.Error("Expected state unchanged, got ", st)
	}
	if peek(t, c, 0x0200) != 0x1111 {
		t.Error("Expected memory unchanged")
	}
	if st.CurrentIntLevel != -1 {
		t.Error("Expected no interrupt raised")
	}
}

// a full card-deck read driven by the program, completion signalled by a
// level-4 interrupt and acknowledged over SenseIlsw
func TestXioCardDeckWithInterrupt(t *testing.T) {
	c := New()
	cr := devices.NewCardReader2501()
	cr.LoadCard(devices.CardFromText("HELLO"))
	c.AttachDevice(cr)

	// level-4 handler at 0x0340: just a WAIT
	poke(t, c, intVectorBase+4, 0x0340)
	poke(t, c, 0x0341, shortWord(opWAIT, 0, 0))

	// program: XIO InitRead of 80 columns at 0x0500, then spin
	iocc := devices.Iocc{WCA: 0x0500, DeviceCode: devices.CardReader2501Code,
		Function: devices.InitRead}
	w1, w2 := iocc.Encode()
	poke(t, c, 0x0180, w1, w2)
	poke(t, c, 0x0500, uint16(0x10000-80)) // -80: read the whole card
	c.SetIar(0x0100)
	poke(t, c, 0x0100, longWord1(opXIO, 0, false, 0), 0x0180)

	step(t, c)
	// the read completed and its interrupt was delivered
	if c.GetState().CurrentIntLevel != 4 {
		t.Fatal("Expected level 4 in service, got ", c.GetState().CurrentIntLevel)
	}
	if c.Iar() != 0x0341 {
		t.Error("Expected IAR in the handler, got ", c.Iar())
	}
	if peek(t, c, 0x0501) != 'H' || peek(t, c, 0x0505) != 'O' {
		t.Error("Expected card image at the WCA")
	}
	if peek(t, c, 0x0506) != 0 {
		t.Error("Expected blank columns punched as zero")
	}

	// handler reads the ILSW: op complete plus last card
	ilswIocc := devices.Iocc{WCA: 0x0600, DeviceCode: devices.CardReader2501Code,
		Function: devices.SenseIlsw}
	w1, w2 = ilswIocc.Encode()
	dev, err := c.Device(devices.CardReader2501Code)
	if err != nil {
		t.Fatal("Device lookup failed: ", err)
	}
	if err := dev.Execute(devices.DecodeIocc(w1, w2), c.Memory(), c); err != nil {
		t.Fatal("SenseIlsw failed: ", err)
	}
	if peek(t, c, 0x0600) != 0x1800 {
		t.Error("Expected ILSW 1800, got ", peek(t, c, 0x0600))
	}
}
