// This file is part of bf-fast - https://github.com/CredibleOpossum/bf-fast
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
// Copyright 2026 The bf-fast Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/CredibleOpossum/bf-fast/asm"
	"github.com/CredibleOpossum/bf-fast/lang/bf"
	"github.com/CredibleOpossum/bf-fast/vm"
	"github.com/pkg/errors"
)

var (
	live       bool
	tapeSize   int
	radius     int
	configFile string
	disasm     bool
	dump       bool
	interact   bool
	logFile    string
	journal    bool
	verbose    bool
	debug      bool
	history    string
)

// dumpRadius returns the number of cells to dump on each side of the cursor.
// Unless set with -radius, it is chosen to fit the terminal width.
func dumpRadius() int {
	if radius > 0 {
		return radius
	}
	if w := consoleWidth(os.Stderr); w > 0 {
		// "nnnnn:" prefix, then up to 4 columns per cell.
		if r := (w - 8) / 8; r > 0 {
			return r
		}
	}
	return 8
}

// applyConfig sets flags that were not given on the command line to the values
// found in the configuration file.
func applyConfig(c *config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if c.Live != nil && !set["live"] {
		live = *c.Live
	}
	if c.Tape > 0 && !set["tape"] {
		tapeSize = c.Tape
	}
	if c.Radius > 0 && !set["radius"] {
		radius = c.Radius
	}
	if c.Log != "" && !set["log"] {
		logFile = c.Log
	}
	if c.Journal && !set["journal"] {
		journal = true
	}
	history = c.History
}

// openSources returns a reader over the concatenation of the named files, or
// os.Stdin if there are none.
func openSources(names []string) (string, io.Reader, func(), error) {
	if len(names) == 0 {
		return "stdin", os.Stdin, func() {}, nil
	}
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	readers := make([]io.Reader, 0, len(names))
	for _, n := range names {
		f, err := os.Open(n)
		if err != nil {
			closeAll()
			return "", nil, nil, errors.Wrap(err, "open failed")
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return strings.Join(names, "+"), io.MultiReader(readers...), closeAll, nil
}

// execute runs prog and writes its output to w. If live is true, output is
// written as it is produced, otherwise only once the program has terminated.
// Either way, output that is not valid text is an error.
func execute(prog vm.Program, w io.Writer, live bool, opts ...vm.Option) (*vm.Instance, error) {
	if live {
		opts = append(opts, vm.Output(w))
	}
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	if err = i.Run(); err != nil {
		return i, err
	}
	s, err := i.Text()
	if err != nil || live {
		return i, err
	}
	if _, err = io.WriteString(w, s); err != nil {
		return i, errors.Wrap(err, "write failed")
	}
	return i, nil
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if i.PC < len(i.Program) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), Cursor: %v\n", i.PC, i.Program[i.PC], i.Cursor)
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, Cursor: %v\n", i.PC, i.Cursor)
		}
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if dump && i != nil {
			if e := bf.DumpTape(i, dumpRadius(), os.Stderr); err == nil {
				err = e
			}
		}
		atExit(i, err)
	}()

	flag.BoolVar(&live, "live", isTerminal(os.Stdout), "write output as it is produced")
	flag.IntVar(&tapeSize, "tape", vm.DefaultTapeSize, "tape size in cells")
	flag.IntVar(&radius, "radius", 0, "number of cells to dump on each side of the cursor (default fits the terminal)")
	flag.StringVar(&configFile, "config", "", "load settings from CUE file `filename`")
	flag.BoolVar(&disasm, "disasm", false, "print the compiled program instead of running it")
	flag.BoolVar(&dump, "dump", false, "dump the tape around the cursor upon exit")
	flag.BoolVar(&interact, "repl", false, "start an interactive session")
	flag.StringVar(&logFile, "log", "", "also write JSON logs to `filename`")
	flag.BoolVar(&journal, "journal", false, "also log to the systemd journal")
	flag.BoolVar(&verbose, "v", false, "log compilation and run statistics")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	if configFile != "" {
		var c *config
		if c, err = loadConfig(configFile); err != nil {
			return
		}
		applyConfig(c)
	}

	switch {
	case debug:
		logLevel.Set(slog.LevelDebug)
	case verbose:
		logLevel.Set(slog.LevelInfo)
	default:
		logLevel.Set(slog.LevelWarn)
	}
	var lf *os.File
	if logFile != "" {
		if lf, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			err = errors.Wrap(err, "log file")
			return
		}
		defer lf.Close()
	}
	var logger *slog.Logger
	if lf != nil {
		logger = newLogger(os.Stderr, lf, journal)
	} else {
		logger = newLogger(os.Stderr, nil, journal)
	}
	slog.SetDefault(logger)

	opts := []vm.Option{vm.TapeSize(tapeSize)}

	if interact || flag.NArg() == 0 && isTerminal(os.Stdin) {
		err = repl(logger, stdout, history, opts...)
		return
	}

	name, r, closeSources, err := openSources(flag.Args())
	if err != nil {
		return
	}
	defer closeSources()

	start := time.Now()
	prog, err := asm.Assemble(name, r)
	if err != nil {
		return
	}
	logger.Info("compiled", "source", name, "instructions", len(prog), "elapsed", time.Since(start))

	if disasm {
		err = asm.DisassembleAll(prog, stdout)
		return
	}

	start = time.Now()
	i, err = execute(prog, stdout, live, opts...)
	if i != nil {
		logger.Info("run", "source", name, "executed", i.InsCount(), "output", len(i.Output()), "elapsed", time.Since(start))
	}
}
