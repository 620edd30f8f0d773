// io.go

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
	"github.com/wrightmikea/s1130em/devices"
	"github.com/wrightmikea/s1130em/logging"
)

// execXIO resolves the effective address to a two-word IOCC, decodes it,
// and hands it to the addressed device.
func (c *CPU) execXIO(iPtr *decodedInstrT) error {
	eff, err := c.resolveEffAddr(iPtr)
	if err != nil {
		return err
	}

	word1, err := c.mem.ReadWord(eff)
	if err != nil {
		return err
	}
	word2, err := c.mem.ReadWord(eff + 1)
	if err != nil {
		return err
	}

	iocc := devices.DecodeIocc(word1, word2)

	dev, found := c.devs[iocc.DeviceCode]
	if !found {
		return &DeviceNotFoundError{Code: iocc.DeviceCode}
	}

	if c.debugLogging {
		logging.DebugPrint(logging.DevLog, "XIO dev: %d (%s) func: %s WCA: %04X mod: %02X\n",
			iocc.DeviceCode, dev.Name(), iocc.Function, iocc.WCA, iocc.Modifiers)
	}

	return dev.Execute(iocc, c.mem, c)
}
