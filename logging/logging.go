// logging.go

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

// Package logging provides in-memory ring-buffer debug logs which are only
// written out to disk when DebugLogsDump is called (normally at the end of
// a run).  Keeping the logs in memory avoids slowing the CPU down with disk
// I/O on every logged event.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// The known logs
const (
	DebugLog = iota
	DevLog
	numLogs
)

const (
	logLines = 40000
	logPerms = 0644
)

var logFilenames = [numLogs]string{
	"s1130_debug.log",
	"s1130_devices.log",
}

var (
	logMu     sync.Mutex
	logArr    [numLogs][logLines]string
	firstLine [numLogs]int
	lastLine  [numLogs]int
)

// DebugPrint formats a message and appends it to the named ring buffer,
// overwriting the oldest line once the buffer is full.
func DebugPrint(log int, aFmt string, msg ...interface{}) {
	logMu.Lock()

	lastLine[log]++
	if lastLine[log] == logLines {
		lastLine[log] = 0
	}
	if lastLine[log] == firstLine[log] {
		firstLine[log]++
		if firstLine[log] == logLines {
			firstLine[log] = 0
		}
	}
	logArr[log][lastLine[log]] = fmt.Sprintf(aFmt, msg...)

	logMu.Unlock()
}

// DebugLogsDump writes any non-empty logs into the given directory,
// creating it if required.
func DebugLogsDump(dir string) {
	logMu.Lock()
	defer logMu.Unlock()

	os.MkdirAll(dir, 0755)

	for l := range logArr {
		if firstLine[l] == lastLine[l] { // ignore unused or empty logs
			continue
		}
		dumpFile, err := os.OpenFile(filepath.Join(dir, logFilenames[l]),
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, logPerms)
		if err != nil {
			continue
		}
		dumpFile.WriteString(">>> Dumping Debug Log\n\n")
		thisLine := firstLine[l]
		for thisLine != lastLine[l] {
			dumpFile.WriteString(logArr[l][thisLine])
			thisLine++
			if thisLine == logLines {
				thisLine = 0
			}
		}
		dumpFile.WriteString(logArr[l][thisLine])
		dumpFile.WriteString("\n>>> Debug Log Ends\n")
		dumpFile.Close()
	}
}
