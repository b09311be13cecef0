// This file is part of lisp60 - https://github.com/db47h/lisp60
//
// Copyright 2017 Denis Bernard <db047h@gmail.com>
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

package lisp

import (
	"io"
	"os"
	"unsafe"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in an arena slot. An object handle is a Cell:
// handles >= 0 are atoms (offsets into the symbol region), handles < 0 are
// cons cells (indices into the heap region, relative to the arena midpoint).
type Cell int32

// CellBits is the size in bits of a Cell.
const CellBits = int(unsafe.Sizeof(Cell(0))) * 8

// DefaultArenaSize is the arena size in cells used when the ArenaSize option
// is not given.
const DefaultArenaSize = 32768

// minArenaSize leaves room for the boot symbol table plus a workable heap.
const minArenaSize = 512

// Option interface
type Option func(*Instance) error

// ArenaSize sets the arena size in cells. The arena is split at its midpoint
// into the symbol region and the heap region, so each region gets half of it.
// The arena cannot be resized once the interpreter has been created.
func ArenaSize(cells int) Option {
	return func(i *Instance) error {
		if i.mid != 0 {
			return errors.New("arena cannot be resized")
		}
		if cells < minArenaSize {
			return errors.Errorf("arena size %d too small, need at least %d cells", cells, minArenaSize)
		}
		i.mem = make([]Cell, cells)
		return nil
	}
}

// Input pushes the given RuneReader on top of the input stack.
func Input(r io.RuneReader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output sets the output Writer.
func Output(w io.Writer) Option {
	return func(i *Instance) error { i.output = newWriter(w); return nil }
}

// Instance represents a lisp60 interpreter instance. It owns the arena, the
// input lookahead and all allocation cursors; instances are therefore safe to
// use concurrently with each other, but a single instance is not safe for
// concurrent use.
type Instance struct {
	mem       []Cell // the arena
	mid       int    // arena midpoint; handles address mem relative to it
	hp        Cell   // heap cursor: offset <= 0 of the lowest live cons slot
	sy        Cell   // symbol cursor: offset >= 0 one past the last terminator
	look      rune   // input lookahead
	tok       []rune // token staging buffer
	input     io.RuneReader
	output    runeWriter
	imageFile string
	evalCount int64
	consCount int64
}

// New creates a new interpreter instance. If img is nil, the symbol region is
// initialized with only the built-in symbol table; otherwise img must be a
// symbol region image obtained from Image or Load, and must itself begin with
// the built-in symbol table at the offsets the evaluator dispatches on.
//
// The fileName parameter names the image file the instance was loaded from
// (or should be saved to); it is recorded verbatim and may be empty.
func New(img Image, fileName string, opts ...Option) (*Instance, error) {
	i := &Instance{imageFile: fileName}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.mem == nil {
		i.mem = make([]Cell, DefaultArenaSize)
	}
	i.mid = len(i.mem) / 2
	if i.output == nil {
		i.output = newWriter(os.Stdout)
	}
	if img == nil {
		img = bootImage
	}
	if len(img) < len(bootImage) {
		return nil, errors.Errorf("image too small: %d cells, need at least %d", len(img), len(bootImage))
	}
	if i.mid+len(img) > len(i.mem) {
		return nil, errors.Errorf("image of %d cells does not fit in a symbol region of %d cells", len(img), len(i.mem)-i.mid)
	}
	if img[len(img)-1] != 0 {
		return nil, errors.New("image: symbol table not null terminated")
	}
	for k := range bootImage {
		if img[k] != bootImage[k] {
			return nil, errors.New("image does not begin with the built-in symbol table")
		}
	}
	copy(i.mem[i.mid:], img)
	i.sy = Cell(len(img))
	return i, nil
}

// SetOptions applies the given options to the instance.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// HeapCells returns the number of heap cells currently in use.
func (i *Instance) HeapCells() int {
	return int(-i.hp)
}

// SymbolCells returns the number of symbol region cells currently in use.
func (i *Instance) SymbolCells() int {
	return int(i.sy)
}

// EvalCount returns the number of evaluator calls since the last Run.
func (i *Instance) EvalCount() int64 {
	return i.evalCount
}

// ConsCount returns the number of cons cells allocated since the last Run,
// including the copies made by the collector.
func (i *Instance) ConsCount() int64 {
	return i.consCount
}

// recoverError converts a panic from the interpreter internals into an error
// annotated with the machine state. Non-error panics are passed through.
func (i *Instance) recoverError(err *error) {
	if e := recover(); e != nil {
		ee, ok := e.(error)
		if !ok {
			panic(e)
		}
		if errors.Cause(ee) == io.EOF {
			*err = ee
			return
		}
		*err = errors.Wrapf(ee, "recovered error @heap=%d/%d, symbols=%d/%d",
			i.HeapCells(), i.mid, i.SymbolCells(), len(i.mem)-i.mid)
	}
}
