// Command nestest runs an iNES ROM headlessly and prints one golden-log-
// format trace line per instruction, in the style of the standard nestest
// automation-mode log (see nes.Emulator.Trace).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brindlefield/nes6502/nes"
)

var (
	flagROM        string
	flagAutomation bool
	flagInstrs     int
	flagLog        bool
)

func main() {
	parseFlags()

	if flagROM == "" {
		log.Fatal("usage: nestest -rom <path>")
	}

	data, err := os.ReadFile(flagROM)
	if err != nil {
		log.Fatalf("unable to open %v\n%v\n", flagROM, err)
	}

	emu, err := nes.New(data)
	if err != nil {
		log.Fatalf("unable to load cartridge: %v\n", err)
	}

	if flagAutomation {
		// nestest's "automation mode": force PC to 0xC000 instead of
		// whatever the cartridge's reset vector says.
		emu.SetPC(0xC000)
	}

	var logger *log.Logger
	if flagLog {
		logger = newFileLogger()
	}

	for i := 0; flagInstrs == 0 || i < flagInstrs; i++ {
		_, stepErr := emu.Step()

		// Step snapshots the instruction's pre-execution state before
		// running it, so Trace is only meaningful after Step returns.
		line := emu.Trace()
		fmt.Println(line)
		if logger != nil {
			logger.Println(line)
		}

		if stepErr != nil {
			log.Printf("stopped after %d instructions: %v\n", i+1, stepErr)
			break
		}
	}
}

func parseFlags() {
	flag.StringVar(&flagROM, "rom", "", "path to an iNES ROM file")
	flag.BoolVar(&flagAutomation, "automation", true, "force PC to 0xC000 (nestest automation mode)")
	flag.IntVar(&flagInstrs, "n", 8991, "number of instructions to run (0 = until halted)")
	flag.BoolVar(&flagLog, "l", false, "also write the trace to a timestamped file under ./logs/")

	flag.Parse()
}

// newFileLogger opens a timestamped log file under ./logs/.
func newFileLogger() *log.Logger {
	if err := os.MkdirAll("./logs", 0755); err != nil {
		log.Fatalf("unable to create logs directory: %v\n", err)
	}

	name := fmt.Sprintf("./logs/nestest-%s.log", time.Now().Format("20060102-150405"))
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if err != nil {
		log.Fatalf("unable to create trace log file: %v\n", err)
	}

	return log.New(f, "", 0)
}
