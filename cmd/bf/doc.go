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

// The bf command line tool compiles and runs Brainfuck programs with the
// github.com/CredibleOpossum/bf-fast packages.
//
// Usage:
//
//	bf [flags] [file ...]
//
// Source files are concatenated in order of appearance on the command line.
// With no file, bf starts an interactive session if stdin is a terminal and
// reads the program from stdin otherwise.
//
// Flags:
//
//	-config filename
//		  load settings from CUE file filename
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print the compiled program instead of running it
//	-dump
//		  dump the tape around the cursor upon exit
//	-journal
//		  also log to the systemd journal
//	-live
//		  write output as it is produced (default true if stdout is a terminal)
//	-log filename
//		  also write JSON logs to filename
//	-radius int
//		  number of cells to dump on each side of the cursor (default fits the terminal)
//	-repl
//		  start an interactive session
//	-tape int
//		  tape size in cells (default 30000)
//	-v
//		  log compilation and run statistics
//
// -debug: will print full stack traces of errors along with the machine
// registers should the program fail.
//
// -live: when disabled, output is only written once the program terminates
// successfully. A program that fails produces no output at all.
//
// -config: settings are read from a CUE file. Flags given on the command line
// take precedence. All fields are optional:
//
//	live:    true
//	tape:    65536
//	radius:  4
//	history: "/home/me/.bf_history"	// REPL history file, default ~/.bf_history
//	log:     "/var/log/bf.json"
//	journal: false
//
// Interactive sessions: each entry is compiled and run as a new program on a
// fresh tape. An entry spans several lines until all of its brackets are
// closed. Type :help for a list of commands.
package main
