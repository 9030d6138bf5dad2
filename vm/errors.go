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

package vm

import "github.com/pkg/errors"

// Errors returned by the tape machine and the compiler. Errors returned from
// this package and from the asm package are wrapped with context; use
// errors.Cause to compare them against these values.
var (
	// ErrMalformed is the cause of errors reporting invalid source text or
	// invalid programs: unknown characters, unbalanced brackets or broken jump
	// targets.
	ErrMalformed = errors.New("malformed program")
	// ErrUnimplemented is the cause of the error returned when a program
	// executes an input instruction.
	ErrUnimplemented = errors.New("input is not implemented")
	// ErrOutOfBounds is the cause of errors reporting cursor moves past
	// either end of the tape.
	ErrOutOfBounds = errors.New("tape access out of bounds")
	// ErrInvalidText is returned by Text when the program output is not valid
	// UTF-8.
	ErrInvalidText = errors.New("output is not valid text")
)
