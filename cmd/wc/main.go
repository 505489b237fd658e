package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/midbel/wc"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		set   = pflag.NewFlagSet("wc", pflag.ContinueOnError)
		bytes = set.BoolP("bytes", "c", false, "print the byte count")
		lines = set.BoolP("lines", "l", false, "print the newline count")
		words = set.BoolP("words", "w", false, "print the word count")
	)
	set.SetOutput(stderr)
	set.Usage = func() {
		fmt.Fprintln(stderr, "usage: wc [-clw] <file>")
		set.PrintDefaults()
	}
	if err := set.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		set.Usage()
		return 2
	}
	if set.NArg() != 1 {
		fmt.Fprintf(stderr, "wc: expected one file, got %d\n", set.NArg())
		set.Usage()
		return 2
	}

	var options []wc.Option
	if *bytes {
		options = append(options, wc.WithBytes())
	}
	if *lines {
		options = append(options, wc.WithLines())
	}
	if *words {
		options = append(options, wc.WithWords())
	}
	counter, err := wc.New(options...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	file := set.Arg(0)
	fc, err := wc.ReadFile(file)
	if err != nil {
		fmt.Fprintf(stderr, "wc: could not read file: %s\n", err)
		return 1
	}
	fmt.Fprintln(stdout, counter.Count(file, fc))
	return 0
}
