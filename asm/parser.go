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

package asm

import (
	"strconv"
	"strings"

	"github.com/CredibleOpossum/bf-fast/vm"
	"github.com/pkg/errors"
)

// Shorthand characters produced by Rewrite.
const (
	ClearChar     = 'c'
	ScanLeftChar  = 'l'
	ScanRightChar = 'r'
)

// Normalize returns src stripped of all characters that are not one of the
// eight Brainfuck instructions.
func Normalize(src string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '>', '<', '+', '-', '.', ',', '[', ']':
			return r
		}
		return -1
	}, src)
}

var idioms = strings.NewReplacer(
	"[-]", string(ClearChar),
	"[+]", string(ClearChar),
	"[<]", string(ScanLeftChar),
	"[>]", string(ScanRightChar),
)

// Rewrite replaces the clear and scan loop idioms in normalized source text
// with their shorthand characters. Only contiguous idioms are recognized, so
// Rewrite expects the output of Normalize.
func Rewrite(src string) string {
	return idioms.Replace(src)
}

// run returns the net sum of the maximal run of up (+1) and down (-1)
// characters starting at pos and the position just past it.
func run(src string, pos int, up, down byte) (n, end int) {
	for end = pos; end < len(src); end++ {
		switch src[end] {
		case up:
			n++
		case down:
			n--
		default:
			return n, end
		}
	}
	return n, end
}

func malformed(pos int, msg string) error {
	return errors.Wrapf(vm.ErrMalformed, "offset %d: %s", pos, msg)
}

type parser struct {
	prog vm.Program
	offs []int // source offset of each instruction
}

func (p *parser) write(op vm.Opcode, arg int, pos int) {
	p.prog = append(p.prog, vm.Instruction{Op: op, Arg: arg})
	p.offs = append(p.offs, pos)
}

// emit is the first compilation pass. Runs of moves and arithmetic are merged
// into a single instruction; loop instructions are written with a -1 target.
func (p *parser) emit(src string) error {
	for pos := 0; pos < len(src); {
		var n, end int
		switch c := src[pos]; c {
		case '>', '<':
			n, end = run(src, pos, '>', '<')
			switch {
			case n > 0:
				p.write(vm.OpRight, n, pos)
			case n < 0:
				p.write(vm.OpLeft, -n, pos)
			}
			pos = end
			continue
		case '+', '-':
			n, end = run(src, pos, '+', '-')
			switch n = n % 256; {
			case n > 0:
				p.write(vm.OpAdd, n, pos)
			case n < 0:
				p.write(vm.OpSub, -n, pos)
			}
			pos = end
			continue
		case '.':
			p.write(vm.OpOut, 0, pos)
		case ',':
			p.write(vm.OpIn, 0, pos)
		case '[':
			p.write(vm.OpJz, -1, pos)
		case ']':
			p.write(vm.OpJnz, -1, pos)
		case ClearChar:
			p.write(vm.OpClear, 0, pos)
		case ScanLeftChar:
			p.write(vm.OpScanLeft, 0, pos)
		case ScanRightChar:
			p.write(vm.OpScanRight, 0, pos)
		default:
			return malformed(pos, "unexpected character "+strconv.QuoteRune(rune(c)))
		}
		pos++
	}
	return nil
}

// resolve is the second compilation pass. It pairs each loop start with its
// loop end and sets their targets to each other's index.
func (p *parser) resolve() error {
	var open []int
	for pc, ins := range p.prog {
		switch ins.Op {
		case vm.OpJz:
			open = append(open, pc)
		case vm.OpJnz:
			if len(open) == 0 {
				return malformed(p.offs[pc], "unmatched ']'")
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			p.prog[start].Arg = pc
			p.prog[pc].Arg = start
		}
	}
	if len(open) > 0 {
		return malformed(p.offs[open[len(open)-1]], "unmatched '['")
	}
	return nil
}

// Compile compiles rewritten source text, as returned by Rewrite, into a
// Program with resolved loop targets.
//
// Any character that is neither one of the eight instructions nor a shorthand
// character, as well as unbalanced brackets, result in an error with cause
// vm.ErrMalformed. Error messages report offsets in src.
func Compile(src string) (vm.Program, error) {
	p := new(parser)
	if err := p.emit(src); err != nil {
		return nil, err
	}
	if err := p.resolve(); err != nil {
		return nil, err
	}
	return p.prog, nil
}

// Balance returns the number of '[' in src left open at the end of the text.
// If a ']' closes a loop that was never opened, Balance returns a negative
// value.
func Balance(src string) int {
	depth := 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '[':
			depth++
		case ']':
			if depth--; depth < 0 {
				return depth
			}
		}
	}
	return depth
}
