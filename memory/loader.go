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

package memory

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFromASCIIFile reads a machine-word image of the format produced by the
// cross-assembler: one "<addr> <word>" hex pair per line, '#' comments and
// blank lines ignored.  It returns a user-displayable result message.
func (m *Memory) LoadFromASCIIFile(filename string) string {
	imgFile, err := os.Open(filename)
	if err != nil {
		return fmt.Sprintf(" *** Could not open image file <%s> ***", filename)
	}
	defer imgFile.Close()

	var count, lineNum int
	scanner := bufio.NewScanner(imgFile)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Sprintf(" *** Malformed image line %d in <%s> ***", lineNum, filename)
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 16)
		if err != nil {
			return fmt.Sprintf(" *** Bad address on image line %d in <%s> ***", lineNum, filename)
		}
		word, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 16)
		if err != nil {
			return fmt.Sprintf(" *** Bad word on image line %d in <%s> ***", lineNum, filename)
		}
		if err := m.WriteWord(uint16(addr), uint16(word)); err != nil {
			return fmt.Sprintf(" *** Image line %d outside core: %v ***", lineNum, err)
		}
		count++
	}
	return fmt.Sprintf("Loaded %d words from <%s>", count, filename)
}

// SaveToASCIIFile writes the non-zero part of core in the same format that
// LoadFromASCIIFile reads.
func (m *Memory) SaveToASCIIFile(filename string) string {
	imgFile, err := os.Create(filename)
	if err != nil {
		return fmt.Sprintf(" *** Could not create image file <%s> ***", filename)
	}
	defer imgFile.Close()

	w := bufio.NewWriter(imgFile)
	defer w.Flush()
	var count int
	for addr, word := range m.words {
		if word != 0 {
			fmt.Fprintf(w, "%04X %04X\n", addr, word)
			count++
		}
	}
	return fmt.Sprintf("Saved %d words to <%s>", count, filename)
}
