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

import "github.com/pkg/errors"

func (i *Instance) outOfBounds() error {
	return errors.Wrapf(ErrOutOfBounds, "pc=%d: cursor %d, tape size %d", i.PC, i.Cursor, len(i.tape))
}

// Run starts execution of the program from the current PC and runs it to
// completion.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error. If the program terminates normally, the PC will be equal to
// len(i.Program) and err will be nil.
//
// There is no way to interrupt a program that does not terminate.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "Recovered error @pc=%d/%d, cursor %d/%d", i.PC, len(i.Program), i.Cursor, len(i.tape))
			default:
				panic(e)
			}
		}
	}()
	defer func() {
		if f, ok := i.output.(flusher); ok {
			if ferr := f.Flush(); err == nil && ferr != nil {
				err = errors.Wrap(ferr, "output flush failed")
			}
		}
	}()
	i.insCount = 0
	prog, tape := i.Program, i.tape
	for i.PC < len(prog) {
		ins := prog[i.PC]
		switch ins.Op {
		case OpRight:
			if i.Cursor += ins.Arg; i.Cursor >= len(tape) {
				return i.outOfBounds()
			}
		case OpLeft:
			if i.Cursor -= ins.Arg; i.Cursor < 0 {
				return i.outOfBounds()
			}
		case OpAdd:
			tape[i.Cursor] += byte(ins.Arg)
		case OpSub:
			tape[i.Cursor] -= byte(ins.Arg)
		case OpOut:
			c := tape[i.Cursor]
			i.out = append(i.out, c)
			if i.output != nil {
				if err = i.write(c); err != nil {
					return errors.Wrapf(err, "pc=%d: live output", i.PC)
				}
			}
		case OpIn:
			return errors.Wrapf(ErrUnimplemented, "pc=%d", i.PC)
		case OpJz:
			if tape[i.Cursor] == 0 {
				i.PC = ins.Arg
			}
		case OpJnz:
			if tape[i.Cursor] != 0 {
				i.PC = ins.Arg
			}
		case OpClear:
			tape[i.Cursor] = 0
		case OpScanLeft:
			for tape[i.Cursor] != 0 {
				if i.Cursor--; i.Cursor < 0 {
					return i.outOfBounds()
				}
			}
		case OpScanRight:
			for tape[i.Cursor] != 0 {
				if i.Cursor++; i.Cursor >= len(tape) {
					return i.outOfBounds()
				}
			}
		default:
			return errors.Wrapf(ErrMalformed, "pc=%d: unknown opcode %v", i.PC, ins.Op)
		}
		i.PC++
		i.insCount++
	}
	return nil
}
