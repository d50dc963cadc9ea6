package main

import (
	"errors"
	"flag"
	"strconv"
	"strings"

	"github.com/ezrec/acc20/translate"
)

var f = translate.From

// options are the command line settings.
type options struct {
	compile   string
	input     string
	output    string
	values    string
	frequency float64
	snapshot  string
	restore   string
	status    bool
	listing   bool
	lang      string
	verbose   bool
}

// parseOptions parses the command line arguments.
func parseOptions(name string, args []string) (opts options, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&opts.compile, "c", "-", "Program to assemble ('-' reads stdin up to the 'end' line)")
	fs.StringVar(&opts.input, "i", "-", "Tape input")
	fs.StringVar(&opts.output, "o", "-", "Tape output")
	fs.StringVar(&opts.values, "I", "", "Comma separated input values, used instead of the tape input")
	fs.Float64Var(&opts.frequency, "f", 1.0, "Clock frequency in ticks per second, 0 for unpaced")
	fs.StringVar(&opts.snapshot, "s", "ram.txt", "RAM snapshot file, rewritten every tick ('' to disable)")
	fs.StringVar(&opts.restore, "r", "", "Load RAM from a snapshot file instead of the program image")
	fs.BoolVar(&opts.status, "t", false, "Print the machine status after every tick")
	fs.BoolVar(&opts.listing, "l", false, "Print the program listing before running")
	fs.StringVar(&opts.lang, "L", "", "Message language, overriding the system locale")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose mode")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() != 0 {
		err = errors.New(f("unknown arguments: %v", fs.Args()))
		return
	}

	return
}

// inputValues returns the -I values, or nil if none were given.
func (opts *options) inputValues() (values []int, err error) {
	if len(strings.TrimSpace(opts.values)) == 0 {
		return
	}

	for _, text := range strings.Split(opts.values, ",") {
		var value int
		value, err = strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			err = errors.New(f("input value '%v' is not a number", text))
			return
		}
		values = append(values, value)
	}

	return
}
