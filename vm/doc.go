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

// Package vm implements the tape machine that runs compiled Brainfuck
// programs.
//
// A Program is a flat slice of Instructions. Loop instructions reference their
// matching counterpart by index, never by pointer: OpJz at position i carries
// the index j of its OpJnz and OpJnz at j carries i. Programs are usually
// produced by the asm package, but any Program that passes Validate can be run.
//
// The machine owns a tape of zero-initialized byte cells (30000 by default,
// see TapeSize) and a cursor into it. Arithmetic on cells wraps modulo 256.
// Unlike most implementations, moving the cursor off the tape does not crash
// the host program: Run returns an error whose cause is ErrOutOfBounds.
//
// The PC is incremented once after each instruction, including jumps. A loop
// start that jumps lands on its loop end and the increment then moves past it;
// a loop end that jumps lands on its loop start and the increment re-enters the
// loop body.
//
// There is no input support: executing OpIn fails with ErrUnimplemented.
package vm
