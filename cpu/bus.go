// bus.go

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
	"fmt"
	"sort"

	"github.com/wrightmikea/s1130em/devices"
)

// AttachDevice registers a device under its own code, replacing any device
// already attached there.  Devices that raise interrupts outside an XIO
// (such as the keyboard) are bound to this CPU's interrupt controller.
func (c *CPU) AttachDevice(dev devices.Device) {
	c.devs[dev.Code()] = dev
	if src, ok := dev.(devices.InterruptSource); ok {
		src.Bind(c)
	}
}

// Device returns the device attached under code.
func (c *CPU) Device(code uint8) (devices.Device, error) {
	dev, found := c.devs[code]
	if !found {
		return nil, &DeviceNotFoundError{Code: code}
	}
	return dev, nil
}

// DeviceStatus reports the status of the device attached under code.
func (c *CPU) DeviceStatus(code uint8) (devices.Status, error) {
	dev, found := c.devs[code]
	if !found {
		return devices.Status{}, &DeviceNotFoundError{Code: code}
	}
	return dev.Status(), nil
}

func (c *CPU) resetAllDevices() {
	for _, dev := range c.devs {
		dev.Reset()
	}
}

// PrintableDevList lists the attached devices for the console.
func (c *CPU) PrintableDevList() string {
	codes := make([]int, 0, len(c.devs))
	for code := range c.devs {
		codes = append(codes, int(code))
	}
	sort.Ints(codes)
	lst := "Code  Name                 Busy  Status\n"
	for _, code := range codes {
		dev := c.devs[uint8(code)]
		st := dev.Status()
		lst += fmt.Sprintf("%4d  %-20s %4d  %04X\n", code, dev.Name(), boolToInt(st.Busy), st.Word)
	}
	return lst
}
