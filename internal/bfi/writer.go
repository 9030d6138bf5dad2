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

// Package bfi - or bf-fast internal, with the plumbing shared by the vm, asm
// and lang packages.
package bfi

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and records the first write error in Err. Once
// Err is set, all writes fail with it and nothing more reaches the underlying
// writer. N counts the bytes actually written.
type ErrWriter struct {
	w   io.Writer
	buf [utf8.UTFMax]byte
	N   int64
	Err error
}

func (w *ErrWriter) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err := w.w.Write(p)
	w.N += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s.
func (w *ErrWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// WriteByte writes a single byte.
func (w *ErrWriter) WriteByte(c byte) error {
	w.buf[0] = c
	_, err := w.Write(w.buf[:1])
	return err
}

// WriteRune writes the UTF-8 encoding of r.
func (w *ErrWriter) WriteRune(r rune) (int, error) {
	if r < utf8.RuneSelf {
		if err := w.WriteByte(byte(r)); err != nil {
			return 0, err
		}
		return 1, nil
	}
	n := utf8.EncodeRune(w.buf[:], r)
	return w.Write(w.buf[:n])
}

// NewErrWriter returns an ErrWriter writing to w. If w is already an
// *ErrWriter, it is returned as is so that errors and counts are shared.
func NewErrWriter(w io.Writer) *ErrWriter {
	if ew, ok := w.(*ErrWriter); ok {
		return ew
	}
	return &ErrWriter{w: w}
}
