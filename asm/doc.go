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

// Package asm provides utility functions to compile and disassemble Brainfuck
// programs for the tape machine of package vm.
//
// Compilation happens in three steps:
//
//	Normalize	strip everything but the eight instruction characters
//	Rewrite		replace common loop idioms with shorthand characters
//	Compile		emit instructions, then resolve loop targets
//
// Assemble runs all three steps on the contents of an io.Reader.
//
// Instruction set:
//
//	Instructions with a check mark in the "arg" column use their Arg field.
//	Runs of consecutive moves or consecutive arithmetic instructions compile to
//	a single instruction with the net amount as argument. Runs that cancel out
//	compile to nothing.
//
//	opcode	source	asm	arg	description
//	------	------	---	---	------------------------------------------------------------
//	0	>	>	✓	move cursor right by arg cells
//	1	<	<	✓	move cursor left by arg cells
//	2	+	+	✓	add arg to the current cell, modulo 256
//	3	-	-	✓	subtract arg from the current cell, modulo 256
//	4	.	.		output the current cell
//	5	,	,		input (not implemented, fails at run time)
//	6	[	[	✓	if the current cell is 0, jump to the matching ] at arg
//	7	]	]	✓	if the current cell is not 0, jump to the matching [ at arg
//	8	[-] [+]	clear		set the current cell to 0
//	9	[<]	scanl		move left until the current cell is 0
//	10	[>]	scanr		move right until the current cell is 0
//
// After a jump, execution continues with the instruction following the jump
// target.
//
// Comments:
//
// Any character other than the eight instruction characters is a comment. In
// particular, the shorthand characters produced by Rewrite ('c', 'l' and 'r')
// are discarded by Normalize when they appear in source text.
package asm
