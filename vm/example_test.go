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
	"fmt"
	"os"
	"strings"

	"github.com/CredibleOpossum/bf-fast/asm"
	"github.com/CredibleOpossum/bf-fast/vm"
	"github.com/pkg/errors"
)

// Shows how to compile a program, run it with live output and inspect the
// machine state afterwards.
func ExampleInstance_Run() {
	prog, err := asm.Assemble("hello", strings.NewReader(helloWorld))
	if err != nil {
		panic(err)
	}

	i, err := vm.New(prog, vm.Output(os.Stdout))
	if err == nil {
		err = i.Run()
	}
	if err != nil {
		panic(err)
	}

	fmt.Println(i.Cursor, i.Tape()[:5])

	// Output:
	// Hello World!
	// 4 [0 87 100 33 10]
}

// Errors returned by Run can be checked against the package error values with
// errors.Cause.
func ExampleInstance_Run_errors() {
	for _, code := range []string{"+[<]", ",", "+++."} {
		prog, err := asm.Assemble("errors", strings.NewReader(code))
		if err != nil {
			panic(err)
		}
		i, err := vm.New(prog)
		if err != nil {
			panic(err)
		}
		err = i.Run()
		switch errors.Cause(err) {
		case nil:
			fmt.Printf("%q: ok\n", code)
		case vm.ErrOutOfBounds:
			fmt.Printf("%q: out of bounds at pc %d\n", code, i.PC)
		case vm.ErrUnimplemented:
			fmt.Printf("%q: no input\n", code)
		default:
			fmt.Printf("%q: %v\n", code, err)
		}
	}

	// Output:
	// "+[<]": out of bounds at pc 1
	// ",": no input
	// "+++.": ok
}
