// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/ezrec/acc20/clock"
	"github.com/ezrec/acc20/console"
	"github.com/ezrec/acc20/cpu"
	"github.com/ezrec/acc20/emulator"
	"github.com/ezrec/acc20/translate"
)

func main() {
	opts, err := parseOptions(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	values, err := opts.inputValues()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if len(opts.lang) != 0 {
		translate.Use(opts.lang)
	}

	// Program text and tape input may share stdin.
	stdin := bufio.NewReader(os.Stdin)

	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose
	emu.SnapshotPath = opts.snapshot

	asm := &cpu.Assembler{Verbose: opts.verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	source := stdin
	if opts.compile != "-" {
		inf, err := os.Open(opts.compile)
		if err != nil {
			log.Fatalf("%v: %v", opts.compile, err)
		}
		defer inf.Close()
		source = bufio.NewReader(inf)
	}

	prog, err := asm.Parse(source)
	if err != nil {
		log.Fatalf("%v: %v", opts.compile, err)
	}
	emu.Program = prog

	if values != nil {
		emu.Feed(values...)
	} else if opts.input == "-" {
		emu.Tape.Input = stdin
	} else {
		inf, err := os.Open(opts.input)
		if err != nil {
			log.Fatalf("%v: %v", opts.input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if opts.output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(opts.output)
		if err != nil {
			log.Fatalf("%v: %v", opts.output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	st := &console.Status{
		Output: os.Stderr,
		Color:  term.IsTerminal(int(os.Stderr.Fd())),
	}

	if opts.listing {
		err = st.Listing(prog)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(opts.restore) != 0 {
		err = emu.Restore(opts.restore)
	} else {
		err = emu.Reset()
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clk := &clock.Clock{Frequency: opts.frequency}
	err = clk.Run(ctx, func() (done bool, err error) {
		done, err = emu.Tick()
		if opts.status {
			serr := st.Print(emu.Cpu, emu.Program)
			if err == nil {
				err = serr
			}
		}
		return
	})
	if errors.Is(err, context.Canceled) {
		log.Printf("interrupted after %d ticks", clk.Ticks)
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if values != nil && emu.Queue.Pending() != 0 {
		log.Printf("%d input values unread", emu.Queue.Pending())
	}
}
