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

package vm_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/CredibleOpossum/bf-fast/asm"
	"github.com/CredibleOpossum/bf-fast/vm"
	"github.com/pkg/errors"
)

const helloWorld = "++++++++++[>+++++++>++++++++++>+++>+<<<<-]>++.>+.+++++++..+++.>++.<<+++++++++++++++.>.+++.------.--------.>+.>."

type P = vm.Program

func TestValidate(t *testing.T) {
	var tests = [...]struct {
		name string
		prog P
		ok   bool
	}{
		{"empty", nil, true},
		{"loop", P{{vm.OpJz, 2}, {vm.OpSub, 1}, {vm.OpJnz, 0}}, true},
		{"unresolved", P{{vm.OpJz, -1}, {vm.OpJnz, -1}}, false},
		{"out of range", P{{vm.OpJz, 2}, {vm.OpJnz, 0}}, false},
		{"asymmetric", P{{vm.OpJz, 3}, {vm.OpJz, 2}, {vm.OpJnz, 1}, {vm.OpJnz, 1}}, false},
		{"self", P{{vm.OpJz, 0}}, false},
		{"crossed", P{{vm.OpJnz, 1}, {vm.OpJz, 0}}, false},
		{"moves", P{{vm.OpRight, 3}, {vm.OpLeft, 3}}, true},
		{"negative move", P{{vm.OpRight, -1}}, false},
		{"null move right", P{{vm.OpRight, 0}}, false},
		{"null move left", P{{vm.OpLeft, 0}}, false},
		{"arith range", P{{vm.OpAdd, 1}, {vm.OpSub, 255}}, true},
		{"null add", P{{vm.OpAdd, 0}}, false},
		{"null sub", P{{vm.OpSub, 0}}, false},
		{"large add", P{{vm.OpAdd, 256}}, false},
		{"bad opcode", P{{vm.Opcode(42), 0}}, false},
	}
	for _, test := range tests {
		err := vm.Validate(test.prog)
		if test.ok && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if !test.ok {
			if errors.Cause(err) != vm.ErrMalformed {
				t.Errorf("%s: expected %v, got %v", test.name, vm.ErrMalformed, err)
			}
			if i, err := vm.New(test.prog); err == nil || i != nil {
				t.Errorf("%s: New accepted an invalid program", test.name)
			}
		}
	}
}

// plain io.Writer, without WriteRune
type writer struct {
	b bytes.Buffer
}

func (w *writer) Write(p []byte) (int, error) { return w.b.Write(p) }

func TestOutput_live(t *testing.T) {
	var w writer
	i, err := runAsm(helloWorld, "hello", vm.Output(&w))
	if err != nil {
		t.Fatal(err)
	}
	if w.b.String() != "Hello World!\n" {
		t.Fatalf("expected %q, got %q", "Hello World!\n", w.b.String())
	}
	if string(i.Output()) != w.b.String() {
		t.Fatalf("accumulated output %q differs from live output %q", i.Output(), w.b.String())
	}
}

func TestOutput_latin1(t *testing.T) {
	// 0xe9 is output as the character U+00E9 on the live writer, but
	// accumulated as a single byte.
	code := strings.Repeat("+", 0xe9) + "."
	var w writer
	i, err := runAsm(code, "latin1", vm.Output(&w))
	if err != nil {
		t.Fatal(err)
	}
	if w.b.String() != "é" {
		t.Errorf("live output: expected %q, got %q", "é", w.b.String())
	}
	if !bytes.Equal(i.Output(), []byte{0xe9}) {
		t.Errorf("accumulated output: expected % x, got % x", []byte{0xe9}, i.Output())
	}
	if _, err = i.Text(); errors.Cause(err) != vm.ErrInvalidText {
		t.Errorf("expected %v, got %v", vm.ErrInvalidText, err)
	}
}

func TestOutput_flush(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	prog, err := asm.Assemble("flush", strings.NewReader("++++++++++.>+++++++++++++++++++++++++++++++++."))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(prog, vm.Output(w))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "\n!" {
		t.Fatalf("expected %q, got %q", "\n!", b.String())
	}
}

var errFull = errors.New("disk full")

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errFull }

func TestOutput_error(t *testing.T) {
	i, err := runAsm("+.+.", "fail", vm.Output(failWriter{}))
	if errors.Cause(err) != errFull {
		t.Fatalf("expected %v, got %v", errFull, err)
	}
	if i.PC != 1 {
		t.Errorf("expected error at pc 1, got %d", i.PC)
	}
}

func TestNew_defaults(t *testing.T) {
	i, err := vm.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(i.Tape()) != vm.DefaultTapeSize {
		t.Errorf("expected %d cells, got %d", vm.DefaultTapeSize, len(i.Tape()))
	}
	if err = i.Run(); err != nil {
		t.Fatal(err)
	}
	if s, err := i.Text(); err != nil || s != "" {
		t.Errorf("expected empty output, got %q, %v", s, err)
	}
}
