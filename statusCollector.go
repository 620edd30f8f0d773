// statusCollector.go

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
	"fmt"
	"log"
	"net"
	"time"
)

// screen rows for the monitored data
const (
	statCPURow  = 3
	statCPURow2 = 5
	statDevRow  = 7
)

// cpuStatT is the per-sample CPU state pushed from the run loop.
type cpuStatT struct {
	iar        uint16
	acc, ext   uint16
	xr         [3]uint16
	instrCount uint64
	waiting    bool
	intLevel   int
}

// devStatT is a device status line pushed when a device is worth showing.
type devStatT struct {
	name string
	busy bool
	word uint16
}

// statusCollector maintains a near real-time status screen on statusAddr,
// formatted with ANSI control sequences.  It runs as a goroutine, listening
// for updates from the run loop and refreshing the relevant screen row on
// each one.
func statusCollector(statusAddr string, cpuChan <-chan cpuStatT, devChan <-chan devStatT) {
	var (
		cpuStats        cpuStatT
		devStats        devStatT
		lastICount, ips uint64
	)
	lastSample := time.Now()

	l, err := net.Listen("tcp", statusAddr)
	if err != nil {
		log.Println("ERROR: Could not listen on status port: ", err.Error())
		return
	}
	defer l.Close()

	for {
		conn, err := l.Accept()
		if err != nil {
			log.Println("ERROR: Could not accept on status port: ", err.Error())
			return
		}

		statusSendString(conn, "\033[2J\033[H")
		statusSendString(conn, "                        S1130 Status\r\n")
		statusSendString(conn, "                        ============")

		for {
			select {
			case cpuStats = <-cpuChan:
				now := time.Now()
				ips = instrRate(cpuStats.instrCount-lastICount, now.Sub(lastSample))
				lastSample = now
				lastICount = cpuStats.instrCount
				statusSendString(conn, fmt.Sprintf("\033[%d;1H\033[K", statCPURow))
				statusSendString(conn, fmt.Sprintf("IAR: %04X   Wait: %d   Int Level: %2d   IPS: %dk/sec",
					cpuStats.iar,
					boolToInt(cpuStats.waiting),
					cpuStats.intLevel,
					ips/1000))
				statusSendString(conn, fmt.Sprintf("\033[%d;1H\033[K", statCPURow2))
				statusSendString(conn, fmt.Sprintf("ACC: %04X   EXT: %04X   XR1: %04X   XR2: %04X   XR3: %04X",
					cpuStats.acc,
					cpuStats.ext,
					cpuStats.xr[0],
					cpuStats.xr[1],
					cpuStats.xr[2]))
			case devStats = <-devChan:
				statusSendString(conn, fmt.Sprintf("\033[%d;1H\033[K", statDevRow))
				statusSendString(conn, fmt.Sprintf("%-20s  Busy: %d  Status: %04X",
					devStats.name,
					boolToInt(devStats.busy),
					devStats.word))
			}
		}
	}
}

// instrRate converts an instruction-count delta over a wall-clock interval
// into instructions per second.  Samples arrive per instruction batch, not
// on a fixed timer, so the interval must be measured.
func instrRate(delta uint64, elapsed time.Duration) uint64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return uint64(float64(delta) / secs)
}

func statusSendString(con net.Conn, s string) {
	con.Write([]byte(s))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
