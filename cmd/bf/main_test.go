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
	"bytes"
	"strings"
	"testing"

	"github.com/CredibleOpossum/bf-fast/asm"
	"github.com/CredibleOpossum/bf-fast/vm"
	"github.com/pkg/errors"
)

func TestExecute(t *testing.T) {
	var tests = [...]struct {
		name string
		src  string
		live bool
		out  string
		err  error
	}{
		{"text", "++++++++[>+++++++++<-]>.", false, "H", nil},
		{"text live", "++++++++[>+++++++++<-]>.", true, "H", nil},
		{"invalid text", strings.Repeat("+", 255) + ".", false, "", vm.ErrInvalidText},
		{"invalid text live", strings.Repeat("+", 255) + ".", true, "ÿ", vm.ErrInvalidText},
		{"failure", "+.<", false, "", vm.ErrOutOfBounds},
		{"failure live", "+.<", true, "\x01", vm.ErrOutOfBounds},
		{"input", "+.,", false, "", vm.ErrUnimplemented},
	}
	for _, test := range tests {
		prog, err := asm.Compile(asm.Rewrite(asm.Normalize(test.src)))
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		var b bytes.Buffer
		i, err := execute(prog, &b, test.live)
		if errors.Cause(err) != test.err {
			t.Errorf("%s: expected error %v, got %v", test.name, test.err, err)
		}
		if i == nil {
			t.Errorf("%s: nil instance", test.name)
		}
		if b.String() != test.out {
			t.Errorf("%s: expected output %q, got %q", test.name, test.out, b.String())
		}
	}
}

func TestExecute_tapeSize(t *testing.T) {
	prog, err := asm.Compile(">>")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = execute(prog, new(bytes.Buffer), false, vm.TapeSize(2)); errors.Cause(err) != vm.ErrOutOfBounds {
		t.Fatalf("expected %v, got %v", vm.ErrOutOfBounds, err)
	}
	if _, err = execute(prog, new(bytes.Buffer), false, vm.TapeSize(0)); err == nil {
		t.Fatal("expected an error for an empty tape")
	}
}
