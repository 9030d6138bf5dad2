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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/CredibleOpossum/bf-fast/internal/bfi"
	"github.com/CredibleOpossum/bf-fast/vm"
	"github.com/pkg/errors"
)

// Assemble compiles Brainfuck source read from the supplied io.Reader and
// returns the resulting program and error if any. This is the same as
// Compile(Rewrite(Normalize(src))).
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name. Offsets in
// error messages refer to the rewritten source, not to the original text.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	prog, err := Compile(Rewrite(Normalize(string(src))))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return prog, nil
}

// Disassemble writes a disassembly of the instruction in the given program at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(prog vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := bfi.NewErrWriter(w)
	ins := prog[pc]
	ew.WriteString(ins.Op.String())
	if ins.Op.HasArg() {
		ew.WriteByte(' ')
		ew.WriteString(strconv.Itoa(ins.Arg))
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given program
// to the specified io.Writer. Loop bodies are indented. It will return any
// write error.
func DisassembleAll(prog vm.Program, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	depth := 0
	for pc := 0; pc < len(prog); {
		if prog[pc].Op == vm.OpJnz && depth > 0 {
			depth--
		}
		fmt.Fprintf(ew, "%d\t", pc)
		for n := 0; n < depth; n++ {
			ew.WriteString("  ")
		}
		if prog[pc].Op == vm.OpJz {
			depth++
		}
		pc, _ = Disassemble(prog, pc, ew)
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
