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

package bf_test

import (
	"fmt"

	"github.com/CredibleOpossum/bf-fast/lang/bf"
)

func ExampleEvaluate() {
	out, err := bf.Evaluate(helloWorld, false)
	if err != nil {
		panic(err)
	}
	fmt.Print(out)

	// Output:
	// Hello World!
}

func ExampleEvaluate_live() {
	// The program writes "Hi" to os.Stdout on its own. The returned string
	// holds the same output.
	out, err := bf.Evaluate("++++++++[>+++++++++<-]>.+++++++++++++++++++++++++++++++++.", true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\n%q\n", out)

	// Output:
	// Hi
	// "Hi"
}
