// loader.go

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

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wrightmikea/s1130em/cpu"
	"github.com/wrightmikea/s1130em/devices"
)

// snapshotT is the on-disk machine snapshot written by SAVE: the register
// file plus every non-zero core word.
type snapshotT struct {
	App     string         `json:"app"`
	Version string         `json:"version"`
	State   cpu.State      `json:"state"`
	Memory  []snapshotWord `json:"memory"`
}

type snapshotWord struct {
	Addr uint16 `json:"addr"`
	Word uint16 `json:"word"`
}

// saveSnapshot writes a JSON snapshot of the machine to filename.
func saveSnapshot(c *cpu.CPU, filename string) string {
	snap := snapshotT{
		App:     appName,
		Version: appVersion,
		State:   c.GetState(),
	}
	for addr := 0; addr < c.Memory().Size(); addr++ {
		w, err := c.ReadMemory(uint16(addr))
		if err != nil {
			return fmt.Sprintf(" *** Error reading core at %04X ***", addr)
		}
		if w != 0 {
			snap.Memory = append(snap.Memory, snapshotWord{Addr: uint16(addr), Word: w})
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Sprintf(" *** Could not create snapshot file <%s> ***", filename)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", " ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Sprintf(" *** Could not write snapshot <%s> ***", filename)
	}
	return fmt.Sprintf("Saved %d words and the register file to <%s>", len(snap.Memory), filename)
}

// loadCardDeck punches one card per line of an ASCII file into the 2501's
// hopper.  Lines starting with # are comments.
func loadCardDeck(cr *devices.CardReader2501, filename string) string {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Sprintf(" *** Could not open card deck <%s> ***", filename)
	}
	defer f.Close()

	var cards []devices.Card
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		cards = append(cards, devices.CardFromText(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Sprintf(" *** Error reading card deck <%s> ***", filename)
	}
	cr.LoadCards(cards)
	return fmt.Sprintf("Loaded %d cards into the 2501 hopper (%d now unread)",
		len(cards), cr.HopperCount())
}
