package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ekarademir/vm16/emulator"
	"github.com/ekarademir/vm16/program"
)

func main() {
	var compile string
	var size int
	var steps int
	var peek string
	var interactive bool
	var defines bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".star program script to load")
	flag.IntVar(&size, "m", emulator.DEFAULT_MEMORY_SIZE, "Main memory size in bytes")
	flag.IntVar(&steps, "n", 0, "Number of instructions to execute")
	flag.StringVar(&peek, "p", "", "Memory address to inspect after the run")
	flag.BoolVar(&interactive, "i", false, "Interactive single-stepping")
	flag.BoolVar(&defines, "D", false, "Dump the predefined script constants")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	image := make([]byte, size)

	// Compile a new memory image.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		image, err = program.LoadScript(inf, compile, size)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	emu := emulator.New(image)
	emu.Verbose = verbose

	if defines {
		for key, value := range emu.Defines() {
			fmt.Printf("%v = %v\n", key, value)
		}
		return
	}

	if interactive {
		if err := stepLoop(emu); err != nil {
			log.Fatal(err)
		}
	} else {
		emu.StepN(steps)
		fmt.Print(emu.String())
	}

	if len(peek) != 0 {
		address, err := strconv.ParseUint(peek, 0, 16)
		if err != nil {
			log.Fatalf("%v: %v", peek, err)
		}
		fmt.Printf("%#04x: % 02x\n", address, emu.Peek(uint16(address), 8))
	}
}

// stepLoop single-steps the emulator from the keyboard: any key executes one
// instruction, 'q' or ctrl-c quits.
func stepLoop(emu *emulator.Emulator) (err error) {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return
	}
	defer term.Restore(int(os.Stdin.Fd()), state)

	key := make([]byte, 1)
	for {
		fmt.Printf("%v\r\n", emu.Disassemble())

		_, err = os.Stdin.Read(key)
		if err != nil {
			return
		}
		if key[0] == 'q' || key[0] == 0x03 {
			return
		}

		emu.Step()
		fmt.Print(strings.ReplaceAll(emu.String(), "\n", "\r\n"))
	}
}
