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

// Package bf provides the entry points to evaluate Brainfuck source text in a
// single call, and utility functions to inspect a tape machine running
// Brainfuck programs.
package bf

import (
	"io"
	"os"
	"strings"

	"github.com/CredibleOpossum/bf-fast/asm"
	"github.com/CredibleOpossum/bf-fast/vm"
)

// Evaluate compiles and runs the given source text and returns its output. If
// live is true, the output is also written to os.Stdout as it is produced.
//
// If compilation or execution fails, the returned string is empty and the
// cause of the error, as returned by errors.Cause, is one of vm.ErrMalformed,
// vm.ErrUnimplemented, vm.ErrOutOfBounds or vm.ErrInvalidText.
func Evaluate(source string, live bool) (string, error) {
	var w io.Writer
	if live {
		w = os.Stdout
	}
	return EvaluateTo(source, w)
}

// EvaluateTo is like Evaluate, but the live output is written to w. A nil w
// disables live output. Additional options are passed to vm.New after the
// vm.Output option for w.
func EvaluateTo(source string, w io.Writer, opts ...vm.Option) (string, error) {
	i, err := Run("source", strings.NewReader(source), append([]vm.Option{vm.Output(w)}, opts...)...)
	if err != nil {
		return "", err
	}
	return i.Text()
}

// Run assembles source text read from r, creates a new instance with the given
// options and runs it. The name parameter names the source in error messages.
//
// The returned instance is nil if the program could not be compiled or if the
// instance could not be created. Otherwise it is returned even if Run failed so
// that its state can be inspected.
func Run(name string, r io.Reader, opts ...vm.Option) (*vm.Instance, error) {
	prog, err := asm.Assemble(name, r)
	if err != nil {
		return nil, err
	}
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	return i, i.Run()
}
