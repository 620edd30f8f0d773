// s1130em project main.go

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
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/profile"

	"github.com/wrightmikea/s1130em/cpu"
	"github.com/wrightmikea/s1130em/devices"
	"github.com/wrightmikea/s1130em/logging"
)

const (
	// Displayable name of emulator
	appName = "S1130"
	// appVersion number
	appVersion = "v0.1.0"

	// cliBuffSize is the char buffer length for CLI input lines
	cliBuffSize = 135

	cmdUnknown = " *** UNKNOWN COMMAND - Type HE for help ***"

	// stats cadence while running
	statsPeriodInstrs = 4096
)

var (
	// debugLogging - the CPU runs about 3x faster without it
	debugLogging = false

	breakpoints []uint16

	cpuPtr *cpu.CPU
	kb     *devices.Keyboard
	pr     *devices.Printer
	cr     *devices.CardReader2501

	cons consoleT

	cpuStatsChan chan cpuStatT
	devStatsChan chan devStatT
	cliChan      chan byte

	// cliIO directs console keystrokes to the CLI rather than the
	// emulated keyboard
	cliMu sync.RWMutex
	cliIO = true

	// machineMu serialises the run loop against keystrokes arriving for
	// the emulated keyboard; the CPU itself provides no locking
	machineMu sync.Mutex

	profileStop func()
)

// flags
var (
	consoleAddrFlag = flag.String("consoleaddr", "localhost:10000", "network interface/port for console")
	localFlag       = flag.Bool("local", false, "use the local terminal as console instead of listening")
	statusAddrFlag  = flag.String("statusaddr", "localhost:9999", "network interface/port for status monitoring")
	doFlag          = flag.String("do", "", "run script `file` at startup")
	profileFlag     = flag.String("profile", "", "write a cpu|mem profile for this run")
	statsviewFlag   = flag.String("statsview", "", "serve runtime metrics charts on `addr`")
)

func main() {
	flag.Parse()

	switch *profileFlag {
	case "":
	case "cpu":
		profileStop = profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	case "mem":
		profileStop = profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop
	default:
		log.Fatalf("ERROR: unknown -profile type <%s>", *profileFlag)
	}

	if *statsviewFlag != "" {
		viewer.SetConfiguration(viewer.WithAddr(*statsviewFlag))
		mgr := statsview.New()
		go mgr.Start()
		log.Printf("INFO: runtime metrics at http://%s/debug/statsview\n", *statsviewFlag)
	}

	if *localFlag {
		rw, restore, err := makeRawTerminal()
		if err != nil {
			log.Fatal("ERROR: could not set raw terminal mode: ", err)
		}
		defer restore()
		runConsole(rw)
		return
	}

	log.Printf("INFO: %s will not start until console connected to %s\n", appName, *consoleAddrFlag)
	l, err := net.Listen("tcp", *consoleAddrFlag)
	if err != nil {
		log.Fatal("ERROR: Could not listen on console port: ", err)
	}
	defer l.Close()
	for {
		conn, err := l.Accept()
		if err != nil {
			log.Fatal("ERROR: Could not accept on console port: ", err)
		}
		runConsole(conn)
	}
}

// runConsole builds the emulated machine around a connected console and
// drives the CLI until EXIT.
func runConsole(rw io.ReadWriter) {
	cons = consoleT{rw: rw}

	cpuStatsChan = make(chan cpuStatT, 3)
	devStatsChan = make(chan devStatT, 3)
	cliChan = make(chan byte, cliBuffSize)

	// the machine: CPU plus console keyboard, console printer and a 2501
	cpuPtr = cpu.New()
	kb = devices.NewKeyboard()
	pr = devices.NewPrinter()
	cr = devices.NewCardReader2501()
	pr.SetEcho(&cons)
	cpuPtr.AttachDevice(kb)
	cpuPtr.AttachDevice(pr)
	cpuPtr.AttachDevice(cr)

	go consoleListener(rw)
	go statusCollector(*statusAddrFlag, cpuStatsChan, devStatsChan)

	cons.PutChar(asciiFF)
	cons.PutStringNL(" *** Welcome to the S1130 Emulator - Type HE for help ***")

	if *doFlag != "" {
		command := fmt.Sprintf("DO %s", *doFlag)
		log.Printf("INFO: got startup command <%s>\n", command)
		doCommand(command)
	}

	setCliIO(true)
	for {
		cons.PutNLString("S1130> ")
		doCommand(cliGetLine())
	}
}

func setCliIO(on bool) {
	cliMu.Lock()
	cliIO = on
	cliMu.Unlock()
}

func getCliIO() bool {
	cliMu.RLock()
	defer cliMu.RUnlock()
	return cliIO
}

// consoleListener pumps console keystrokes either to the CLI or, while a
// program is running, to the emulated keyboard.  ESCape always returns
// control to the CLI.
func consoleListener(rw io.ReadWriter) {
	b := make([]byte, 80)
	for {
		n, err := rw.Read(b)
		if err != nil || n == 0 {
			log.Println("ERROR: could not read from console: ", err)
			cleanExit()
		}
		for c := 0; c < n; c++ {
			if b[c] == asciiESC {
				setCliIO(true)
				continue // the ESC itself goes nowhere
			}
			if getCliIO() {
				cliChan <- b[c]
			} else {
				machineMu.Lock()
				kb.TypeChar(uint16(b[c]))
				machineMu.Unlock()
			}
		}
	}
}

// cliGetLine gets one line from the console, echoing as it goes and
// honouring backspace/delete.
func cliGetLine() string {
	line := []byte{}
	for {
		cc := <-cliChan
		if cc == asciiCR || cc == asciiLF {
			break
		}
		if (cc == asciiDEL || cc == asciiBS) && len(line) > 0 {
			cons.PutString("\b \b")
			line = line[:len(line)-1]
			continue
		}
		cons.PutChar(cc)
		line = append(line, cc)
	}
	return string(line)
}

// cleanExit tidies up as much as we can and leaves.
func cleanExit() {
	cons.PutNLString(" *** S1130 Emulator stopping at user request ***")
	if profileStop != nil {
		profileStop()
	}
	logging.DebugLogsDump("logs/")
	os.Exit(0)
}

func parseAddr(s string) (uint16, bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

func doCommand(cmd string) {
	words := strings.Split(strings.TrimSpace(cmd), " ")
	if debugLogging {
		logging.DebugPrint(logging.DebugLog, "INFO: doCommand parsed command as <%s>\n", words[0])
	}

	switch words[0] {
	// machine control
	case ".":
		cons.PutNLString(cpuPtr.PrintableStatus())
	case "CO":
		run()
	case "E":
		examine(words)
	case "HE":
		showHelp()
	case "RE":
		reset()
	case "SS":
		singleStep()
	case "ST":
		start(words)

	// emulator commands
	case "BREAK":
		breakSet(words)
	case "CARDS":
		if len(words) < 2 {
			cons.PutNLString(" *** CARDS command requires <deckfile> ***")
			return
		}
		cons.PutNLString(loadCardDeck(cr, words[1]))
	case "DIS":
		disassemble(words)
	case "DO":
		doScript(words)
	case "exit", "EXIT", "QUIT":
		cleanExit()
	case "LOAD":
		if len(words) < 2 {
			cons.PutNLString(" *** LOAD command requires <imagefile> ***")
			return
		}
		cons.PutNLString(cpuPtr.Memory().LoadFromASCIIFile(words[1]))
	case "NOBREAK":
		breakClear(words)
	case "SAVE":
		if len(words) < 2 {
			cons.PutNLString(" *** SAVE command requires <snapshotfile> ***")
			return
		}
		cons.PutNLString(saveSnapshot(cpuPtr, words[1]))
	case "SET":
		set(words)
	case "SH", "SHO", "SHOW":
		show(words)
	case "TYPE":
		typeText(words)
	case "":
		// empty line, no complaint
	default:
		cons.PutNLString(cmdUnknown)
	}
}

/* Commands are below here... */

func breakSet(cmd []string) {
	if len(cmd) != 2 {
		cons.PutNLString(" *** BREAK command requires a single <address> argument ***")
		return
	}
	addr, ok := parseAddr(cmd[1])
	if !ok {
		cons.PutNLString(" *** BREAK command could not parse <address> argument ***")
		return
	}
	breakpoints = append(breakpoints, addr)
	cons.PutNLString("BREAKpoint set")
}

func breakClear(cmd []string) {
	if len(cmd) != 2 {
		cons.PutNLString(" *** NOBREAK command requires a single <address> argument ***")
		return
	}
	addr, ok := parseAddr(cmd[1])
	if !ok {
		cons.PutNLString(" *** NOBREAK command could not parse <address> argument ***")
		return
	}
	for ix, b := range breakpoints {
		if b == addr {
			breakpoints[ix] = breakpoints[len(breakpoints)-1]
			breakpoints = breakpoints[:len(breakpoints)-1]
			cons.PutNLString(" *** Cleared breakpoint ***")
		}
	}
}

func printableBreakpointList() string {
	if len(breakpoints) == 0 {
		return " *** No BREAKpoints are set ***"
	}
	res := "BREAKpoint(s) at: "
	for _, b := range breakpoints {
		res += fmt.Sprintf("%04X ", b)
	}
	return res
}

func disassemble(cmd []string) {
	if len(cmd) < 2 {
		cons.PutNLString(" *** DIS command requires an address ***")
		return
	}
	lowAddr, ok := parseAddr(cmd[1])
	if !ok {
		cons.PutNLString(" *** Invalid address ***")
		return
	}
	highAddr := lowAddr
	if len(cmd) > 2 {
		if highAddr, ok = parseAddr(cmd[2]); !ok {
			cons.PutNLString(" *** Invalid address ***")
			return
		}
	}
	if highAddr < lowAddr {
		cons.PutNLString(" *** Invalid address range ***")
		return
	}
	for addr := lowAddr; addr <= highAddr; {
		word1, err := cpuPtr.ReadMemory(addr)
		if err != nil {
			cons.PutNLString(" *** Address out of range ***")
			return
		}
		word2, _ := cpuPtr.ReadMemory(addr + 1)
		text, length := cpu.Disassemble(word1, word2)
		display := fmt.Sprintf("%04X: %04X", addr, word1)
		if length > 1 {
			display += fmt.Sprintf(" %04X", word2)
		} else {
			display += "     "
		}
		display += "  " + text
		cons.PutNLString(display)
		addr += uint16(length)
		if addr < lowAddr { // wrapped
			return
		}
	}
}

func doScript(cmd []string) {
	if len(cmd) < 2 {
		cons.PutNLString(" *** DO command requires <scriptfile> ***")
		return
	}
	scriptFile, err := os.Open(cmd[1])
	if err != nil {
		cons.PutNLString(" *** Could not open command script ***")
		if debugLogging {
			logging.DebugPrint(logging.DebugLog, "WARN: Could not open command script <%s>\n", cmd[1])
		}
		return
	}
	defer scriptFile.Close()

	scanner := bufio.NewScanner(scriptFile)
	for scanner.Scan() {
		doCmd := scanner.Text()
		if len(doCmd) > 0 && doCmd[0] != '#' {
			cons.PutNLString(doCmd)
			doCommand(doCmd)
		}
	}
}

// examine mimics the E command from classic console CLIs
func examine(cmd []string) {
	if len(cmd) < 2 {
		cons.PutNLString(" *** Examine - missing parameter ***")
		return
	}
	switch cmd[1] {
	case "A":
		st := cpuPtr.GetState()
		prompt := fmt.Sprintf("ACC = %04X - Enter new val or just ENTER> ", st.Acc)
		cons.PutNLString(prompt)
		if resp := cliGetLine(); len(resp) > 0 {
			newVal, ok := parseAddr(resp)
			if !ok {
				cons.PutNLString(" *** Could not parse new ACC value ***")
				return
			}
			cpuPtr.SetAcc(newVal)
			cons.PutNLString(fmt.Sprintf("ACC = %04X", newVal))
		}
	case "X":
		if len(cmd) < 3 {
			cons.PutNLString(" *** Examine Index - invalid XR number ***")
			return
		}
		exXr, err := strconv.Atoi(cmd[2])
		if err != nil || exXr < 1 || exXr > 3 {
			cons.PutNLString(" *** Examine Index - invalid XR number ***")
			return
		}
		st := cpuPtr.GetState()
		prompt := fmt.Sprintf("XR%d = %04X - Enter new val or just ENTER> ", exXr, st.Xr[exXr-1])
		cons.PutNLString(prompt)
		if resp := cliGetLine(); len(resp) > 0 {
			newVal, ok := parseAddr(resp)
			if !ok {
				cons.PutNLString(" *** Could not parse new XR value ***")
				return
			}
			cpuPtr.SetXr(exXr, newVal)
			cons.PutNLString(fmt.Sprintf("XR%d = %04X", exXr, newVal))
		}
	case "M":
		if len(cmd) < 3 {
			cons.PutNLString(" *** Examine Memory - invalid address ***")
			return
		}
		exMem, ok := parseAddr(cmd[2])
		if !ok {
			cons.PutNLString(" *** Examine Memory - invalid address ***")
			return
		}
		w, err := cpuPtr.ReadMemory(exMem)
		if err != nil {
			cons.PutNLString(" *** Examine Memory - address out of range ***")
			return
		}
		prompt := fmt.Sprintf("Location %04X contains %04X - Enter new val or just ENTER> ", exMem, w)
		cons.PutNLString(prompt)
		if resp := cliGetLine(); len(resp) > 0 {
			newVal, ok := parseAddr(resp)
			if !ok {
				cons.PutNLString(" *** Could not parse new value ***")
				return
			}
			cpuPtr.WriteMemory(exMem, newVal)
			cons.PutNLString(fmt.Sprintf("Location %04X = %04X", exMem, newVal))
		}
	case "P":
		prompt := fmt.Sprintf("IAR = %04X - Enter new val or just ENTER> ", cpuPtr.Iar())
		cons.PutNLString(prompt)
		if resp := cliGetLine(); len(resp) > 0 {
			newVal, ok := parseAddr(resp)
			if !ok {
				cons.PutNLString(" *** Could not parse new IAR value ***")
				return
			}
			cpuPtr.SetIar(newVal)
			cons.PutNLString(fmt.Sprintf("IAR = %04X", newVal))
		}
	default:
		cons.PutNLString(" *** Expecting A, X, M, or P for E(xamine) command ***")
	}
}

// reset brings the emulator back to its initial state
func reset() {
	cpuPtr.Reset()
	cons.PutNLString(" *** Machine reset ***")
}

func set(cmd []string) {
	if len(cmd) < 3 {
		cons.PutNLString(" *** Expecting SET subcommand ***")
		return
	}
	switch cmd[1] {
	case "LOGGING":
		switch cmd[2] {
		case "ON":
			debugLogging = true
		case "OFF":
			debugLogging = false
		}
		cpuPtr.SetDebugLogging(debugLogging)
	default:
		cons.PutNLString(" *** Unknown SET subcommand ***")
	}
}

// showHelp - ensure this fits on a 24x80 screen
func showHelp() {
	cons.PutString("\014                          Console Commands" +
		"                               S1130\n" +
		" .                      - Display state of CPU\n" +
		" CO                     - COntinue processing (ESCape to stop)\n" +
		" E A | X <#> | M <addr> | P - Examine/modify ACC/Index/Memory/IAR\n" +
		" HE                     - HElp (show this)\n" +
		" RE                     - REset the machine\n" +
		" SS                     - Single Step one instruction\n" +
		" ST <addr>              - STart processing at specified address\n")
	cons.PutString("\n                          Emulator Commands\n" +
		" BREAK/NOBREAK <addr>   - Set or clear a BREAKpoint\n" +
		" CARDS <file>           - Load an ASCII card deck into the 2501\n" +
		" DIS <from> [<to>]      - DISassemble a core range\n" +
		" DO <file>              - DO (i.e. run) emulator commands from script <file>\n" +
		" EXIT                   - EXIT the emulator\n" +
		" LOAD <file>            - Load an ASCII hex image directly into core\n" +
		" SAVE <file>            - Save a JSON snapshot of the machine\n" +
		" SET LOGGING ON|OFF     - Turn on or off debug logging (dumped end of run)\n" +
		" SHOW BREAK/DEV/LOGGING - SHOW list of BREAKpoints/DEVices configured\n" +
		" TYPE <text>            - Feed keystrokes to the emulated keyboard\n")
}

// show various emulator states to the user
func show(cmd []string) {
	if len(cmd) == 1 {
		cons.PutNLString(" *** SHOW requires argument ***")
		return
	}
	switch cmd[1] {
	case "DEV":
		cons.PutNLString(cpuPtr.PrintableDevList())
	case "BREAK":
		cons.PutNLString(printableBreakpointList())
	case "LOGGING":
		state := "OFF"
		if debugLogging {
			state = "ON"
		}
		cons.PutNLString(fmt.Sprintf("Logging is currently turned %s", state))
	default:
		cons.PutNLString(" *** Invalid SHOW type ***")
	}
}

// singleStep attempts to execute the instruction at the IAR
func singleStep() {
	cons.PutNLString(cpuPtr.PrintableStatus())
	word1, err := cpuPtr.ReadMemory(cpuPtr.Iar())
	if err != nil {
		cons.PutNLString(" *** IAR out of range ***")
		return
	}
	word2, _ := cpuPtr.ReadMemory(cpuPtr.Iar() + 1)
	text, _ := cpu.Disassemble(word1, word2)
	cons.PutNLString(text)
	if err := cpuPtr.Step(); err != nil {
		cons.PutNLString(fmt.Sprintf(" *** Error: %s ***", err))
		return
	}
	cons.PutNLString(cpuPtr.PrintableStatus())
}

// start running at a user-provided IAR
func start(cmd []string) {
	if len(cmd) < 2 {
		cons.PutNLString(" *** ST command requires start address ***")
		return
	}
	newIar, ok := parseAddr(cmd[1])
	if !ok {
		cons.PutNLString(" *** Could not parse new IAR value ***")
		return
	}
	cpuPtr.SetIar(newIar)
	cpuPtr.ClearWait()
	run()
}

// typeText feeds the rest of the line to the emulated keyboard
func typeText(cmd []string) {
	if len(cmd) < 2 {
		cons.PutNLString(" *** TYPE command requires <text> ***")
		return
	}
	text := strings.Join(cmd[1:], " ")
	kb.TypeString(text)
	cons.PutNLString(fmt.Sprintf(" *** %d keystrokes buffered ***", len(text)))
}

// run is the main emulator loop: keystrokes flow to the emulated keyboard
// until the program WAITs, faults, hits a breakpoint or the user ESCapes.
func run() {
	var errDetail string

	setCliIO(false)
	startCount := cpuPtr.GetState().InstrCount
	startTime := time.Now()

RunLoop:
	for {
		machineMu.Lock()
		err := cpuPtr.Step()
		machineMu.Unlock()
		if err != nil {
			errDetail = fmt.Sprintf(" *** %s ***", err)
			break
		}

		if cpuPtr.Waiting() {
			errDetail = " *** Machine entered WAIT state ***"
			break
		}

		// BREAKPOINT?
		if len(breakpoints) > 0 {
			iar := cpuPtr.Iar()
			for _, bAddr := range breakpoints {
				if bAddr == iar {
					errDetail = fmt.Sprintf(" *** BREAKpoint hit at address %04X ***", iar)
					break RunLoop
				}
			}
		}

		// console ESCape?
		if getCliIO() {
			errDetail = " *** Console ESCape ***"
			break
		}

		st := cpuPtr.GetState()
		if st.InstrCount%statsPeriodInstrs == 0 {
			pushStats(st)
		}
	}

	setCliIO(true)

	endState := cpuPtr.GetState()
	pushStats(endState)

	runTime := time.Since(startTime).Seconds()
	instrs := endState.InstrCount - startCount
	avgMips := float64(instrs) / 1000000.0 / runTime

	log.Println(errDetail)
	cons.PutNLString(errDetail)
	if debugLogging {
		logging.DebugPrint(logging.DebugLog, "%s\n", cpuPtr.PrintableStatus())
	}
	cons.PutNLString(cpuPtr.PrintableStatus())

	msg := fmt.Sprintf(" *** %s executed %d instructions, average MIPS: %.1f ***",
		appName, instrs, avgMips)
	log.Println(msg)
	cons.PutNLString(msg)
}

// pushStats offers a sample to the status monitor without ever blocking the
// run loop.
func pushStats(st cpu.State) {
	sample := cpuStatT{
		iar:        st.Iar,
		acc:        st.Acc,
		ext:        st.Ext,
		xr:         st.Xr,
		instrCount: st.InstrCount,
		waiting:    st.Wait,
		intLevel:   st.CurrentIntLevel,
	}
	select {
	case cpuStatsChan <- sample:
	default:
	}
	if crStat, err := cpuPtr.DeviceStatus(devices.CardReader2501Code); err == nil {
		select {
		case devStatsChan <- devStatT{name: "2501 Card Reader", busy: crStat.Busy, word: crStat.Word}:
		default:
		}
	}
}
