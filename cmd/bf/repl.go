// This file is part of bf-fast - https://github.com/CredibleOpossum/bf-fast
//
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
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CredibleOpossum/bf-fast/asm"
	"github.com/CredibleOpossum/bf-fast/lang/bf"
	"github.com/CredibleOpossum/bf-fast/vm"
	"github.com/peterh/liner"
)

const (
	promptMain  = "bf> "
	promptCont  = "... "
	historyFile = ".bf_history"
)

const replHelp = `Each entry runs as a new program on a fresh tape.
Entries continue on the next line while brackets are left open.
	:dump	dump the tape of the last program
	:help	show this help
	:quit	exit
`

func historyPath(name string) string {
	if name != "" {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// readEntry reads lines until the brackets of the entry are balanced. It
// returns false when input is closed or aborted.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				slog.Warn("prompt", "error", err)
			}
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if asm.Balance(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

func repl(logger *slog.Logger, stdout *bufio.Writer, hist string, opts ...vm.Option) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist = historyPath(hist); hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				logger.Warn("create history file", "error", err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}

	var last *vm.Instance
	for {
		code, ok := readEntry(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return stdout.Flush()
		}
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return nil
			case ":help":
				stdout.WriteString(replHelp)
			case ":dump":
				if last != nil {
					bf.DumpTape(last, dumpRadius(), stdout)
				}
			default:
				fmt.Fprintln(stdout, "unknown command. Type :help for help.")
			}
			stdout.Flush()
			continue
		}

		i, err := bf.Run("repl", strings.NewReader(code), append(opts, vm.Output(stdout))...)
		if err == nil {
			_, err = i.Text()
		}
		if i != nil {
			last = i
			if out := i.Output(); len(out) > 0 && out[len(out)-1] != '\n' {
				stdout.WriteByte('\n')
			}
		}
		if err != nil {
			fmt.Fprintf(stdout, "error: %v\n", err)
			logger.Debug("repl", "error", fmt.Sprintf("%+v", err))
		}
		stdout.Flush()
	}
}
