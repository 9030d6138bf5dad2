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

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// DefaultTapeSize is the number of cells on the tape unless set otherwise with
// the TapeSize option.
const DefaultTapeSize = 30000

// Instance represents a tape machine instance.
type Instance struct {
	PC       int     // Program Counter
	Cursor   int     // index of the current cell
	Program  Program // compiled program, read only
	tape     []byte
	out      []byte
	output   runeWriter
	insCount int64
}

// Option interface
type Option func(*Instance) error

// TapeSize sets the number of cells of the tape. The default is
// DefaultTapeSize. Setting the size clears the tape.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size %d", size)
		}
		i.tape = make([]byte, size)
		return nil
	}
}

// Output configures the live output writer. Every byte output by the program is
// written to w as soon as it is produced, as the character with the same code
// point (i.e. bytes >= 0x80 are written UTF-8 encoded). If w implements
// Flush() error, it will be flushed after each new line and when Run returns.
//
// A nil writer disables live output. Output is always accumulated and
// available from Output and Text, regardless of this setting.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new tape machine instance for the given program.
//
// The program is checked with Validate before anything else. Options will be
// set by calling SetOptions.
func New(prog Program, opts ...Option) (*Instance, error) {
	if err := Validate(prog); err != nil {
		return nil, err
	}
	i := &Instance{
		Program: prog,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.tape == nil {
		i.tape = make([]byte, DefaultTapeSize)
	}
	return i, nil
}

// Validate checks that all instructions in prog are well formed: known
// opcodes, positive move magnitudes, arithmetic operands in the range 1-255 and
// loop instructions paired with each other. The returned error, if any, has
// ErrMalformed as its cause.
func Validate(prog Program) error {
	for pc, ins := range prog {
		switch ins.Op {
		case OpRight, OpLeft:
			if ins.Arg <= 0 {
				return errors.Wrapf(ErrMalformed, "pc=%d: invalid move %v", pc, ins)
			}
		case OpAdd, OpSub:
			if ins.Arg <= 0 || ins.Arg > 0xff {
				return errors.Wrapf(ErrMalformed, "pc=%d: operand out of range %v", pc, ins)
			}
		case OpJz, OpJnz:
			t := ins.Arg
			if t < 0 || t >= len(prog) {
				return errors.Wrapf(ErrMalformed, "pc=%d: jump target out of range %v", pc, ins)
			}
			want := OpJnz
			if ins.Op == OpJnz {
				want = OpJz
			}
			if m := prog[t]; m.Op != want || m.Arg != pc {
				return errors.Wrapf(ErrMalformed, "pc=%d: unmatched %v (target is %v)", pc, ins, m)
			}
			if ins.Op == OpJz && t < pc || ins.Op == OpJnz && t > pc {
				return errors.Wrapf(ErrMalformed, "pc=%d: backwards loop %v", pc, ins)
			}
		case OpOut, OpIn, OpClear, OpScanLeft, OpScanRight:
		default:
			return errors.Wrapf(ErrMalformed, "pc=%d: unknown opcode %v", pc, ins.Op)
		}
	}
	return nil
}

// Tape returns the tape. Changes to its cells will be reflected in the
// instance.
func (i *Instance) Tape() []byte {
	return i.tape
}

// Output returns the bytes output by the program so far.
func (i *Instance) Output() []byte {
	return i.out
}

// Text returns the program output as a string. If the output is not valid
// UTF-8, it returns an error with cause ErrInvalidText.
func (i *Instance) Text() (string, error) {
	if !utf8.Valid(i.out) {
		return "", errors.Wrapf(ErrInvalidText, "%d bytes of output", len(i.out))
	}
	return string(i.out), nil
}

// InsCount returns the number of instructions executed by the last call to
// Run.
func (i *Instance) InsCount() int64 {
	return i.insCount
}
