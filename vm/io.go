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

	"github.com/CredibleOpossum/bf-fast/internal/bfi"
)

type flusher interface {
	Flush() error
}

type runeWriter interface {
	WriteRune(r rune) (size int, err error)
}

// runeWriterWrapper wraps an io.Writer into a runeWriter. Write errors are
// sticky.
type runeWriterWrapper struct {
	w *bfi.ErrWriter
	u io.Writer
}

func (w *runeWriterWrapper) WriteRune(r rune) (size int, err error) {
	return w.w.WriteRune(r)
}

func (w *runeWriterWrapper) Flush() error {
	if w.w.Err != nil {
		return w.w.Err
	}
	if f, ok := w.u.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter returns either w if it implements runeWriter or wraps it up into
// a runeWriterWrapper
func newWriter(w io.Writer) runeWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case runeWriter:
		return ww
	default:
		return &runeWriterWrapper{bfi.NewErrWriter(w), w}
	}
}

// write writes c to the live output as a character and flushes it on new
// lines.
func (i *Instance) write(c byte) error {
	if _, err := i.output.WriteRune(rune(c)); err != nil {
		return err
	}
	if c == '\n' {
		if f, ok := i.output.(flusher); ok {
			return f.Flush()
		}
	}
	return nil
}
