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

package vm

import "strconv"

// Opcode identifies the operation of an Instruction.
type Opcode int

// Tape machine opcodes.
const (
	OpRight     Opcode = iota // move cursor right by Arg cells
	OpLeft                    // move cursor left by Arg cells
	OpAdd                     // add Arg to the current cell
	OpSub                     // subtract Arg from the current cell
	OpOut                     // output the current cell
	OpIn                      // read into the current cell (unsupported)
	OpJz                      // jump to Arg if the current cell is 0
	OpJnz                     // jump to Arg if the current cell is not 0
	OpClear                   // set the current cell to 0
	OpScanLeft                // move left until the current cell is 0
	OpScanRight               // move right until the current cell is 0
	opCount
)

var opcodes = [...]string{
	">",
	"<",
	"+",
	"-",
	".",
	",",
	"[",
	"]",
	"clear",
	"scanl",
	"scanr",
}

func (op Opcode) String() string {
	if op < 0 || op >= opCount {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opcodes[op]
}

// HasArg returns true if instructions with this opcode use their Arg field.
func (op Opcode) HasArg() bool {
	switch op {
	case OpRight, OpLeft, OpAdd, OpSub, OpJz, OpJnz:
		return true
	}
	return false
}

// Instruction is a single tape machine instruction. For moves and arithmetic,
// Arg is the magnitude of the operation. For OpJz and OpJnz, it is the index of
// the matching loop instruction in the Program.
type Instruction struct {
	Op  Opcode
	Arg int
}

func (ins Instruction) String() string {
	if !ins.Op.HasArg() {
		return ins.Op.String()
	}
	return ins.Op.String() + " " + strconv.Itoa(ins.Arg)
}

// Program is a sequence of instructions. Execution starts at index 0 and ends
// when the program counter reaches len(Program).
type Program []Instruction
