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

import "github.com/pkg/errors"

// The arena is a single []Cell addressed relative to its midpoint: the symbol
// region occupies mem[mid:] and grows toward higher indices, the heap region
// occupies mem[:mid] and grows toward lower indices. A pair with handle h < 0
// has its car at slot h and its cdr at slot h+1.

func (i *Instance) slot(h Cell) Cell {
	return i.mem[i.mid+int(h)]
}

func (i *Instance) setSlot(h, v Cell) {
	i.mem[i.mid+int(h)] = v
}

func (i *Instance) car(x Cell) Cell { return i.slot(x) }
func (i *Instance) cdr(x Cell) Cell { return i.slot(x + 1) }

func (i *Instance) caar(x Cell) Cell  { return i.car(i.car(x)) }
func (i *Instance) cadr(x Cell) Cell  { return i.car(i.cdr(x)) }
func (i *Instance) cdar(x Cell) Cell  { return i.cdr(i.car(x)) }
func (i *Instance) caddr(x Cell) Cell { return i.car(i.cdr(i.cdr(x))) }

// cons allocates a new pair at the top of the heap and returns its handle.
// Heap exhaustion is fatal and unwinds to the nearest exported entry point.
func (i *Instance) cons(car, cdr Cell) Cell {
	if i.mid+int(i.hp) < 2 {
		panic(errors.Errorf("heap exhausted (%d cells)", i.mid))
	}
	i.hp -= 2
	i.setSlot(i.hp, car)
	i.setSlot(i.hp+1, cdr)
	i.consCount++
	return i.hp
}

// resetHeap discards all cons cells by resetting the heap cursor to the
// arena midpoint. Interned symbols are not affected.
func (i *Instance) resetHeap() {
	i.hp = 0
}

// ResetHeap discards all cons cells. The REPL does this before reading each
// top-level expression; any handle of a pair obtained earlier is invalidated.
func (i *Instance) ResetHeap() {
	i.resetHeap()
}

// Car returns the car of x. It is defined only on pair handles (x < 0);
// applied to an atom it reads the symbol region, faithfully to the reference
// semantics.
func (i *Instance) Car(x Cell) Cell {
	return i.car(x)
}

// Cdr returns the cdr of x. Like Car, it is defined only on pair handles.
func (i *Instance) Cdr(x Cell) Cell {
	return i.cdr(x)
}

// Cons allocates a new pair and returns its handle. It panics if the heap is
// exhausted; Run recovers such panics, direct callers may have to do the
// same.
func (i *Instance) Cons(car, cdr Cell) Cell {
	return i.cons(car, cdr)
}

// intern canonicalizes the token staged in the scratch buffer. It walks the
// symbol region string by string, comparing character by character; on a miss
// the token is appended at the symbol cursor. Equal tokens always map to the
// same handle, so atom identity is handle equality.
func (i *Instance) intern() Cell {
	var p Cell
	for p < i.sy {
		start := p
		q := 0
		for q < len(i.tok) && i.slot(p) == Cell(i.tok[q]) {
			p++
			q++
		}
		if q == len(i.tok) && i.slot(p) == 0 {
			return start
		}
		for i.slot(p) != 0 {
			p++
		}
		p++
	}
	if i.mid+int(i.sy)+len(i.tok)+1 > len(i.mem) {
		panic(errors.Errorf("symbol region exhausted (%d cells)", len(i.mem)-i.mid))
	}
	start := i.sy
	for _, r := range i.tok {
		i.setSlot(i.sy, Cell(r))
		i.sy++
	}
	i.setSlot(i.sy, 0)
	i.sy++
	return start
}

// Intern returns the atom handle for the given name, interning it first if
// needed. It panics if the symbol region is exhausted.
func (i *Instance) Intern(name string) Cell {
	i.tok = i.tok[:0]
	for _, r := range name {
		i.tok = append(i.tok, r)
	}
	return i.intern()
}

// symbolName decodes the symbol whose characters start at offset x. Handles
// outside the populated symbol region yield an empty string.
func (i *Instance) symbolName(x Cell) string {
	if x < 0 || x >= i.sy {
		return ""
	}
	var s []rune
	for p := x; i.slot(p) != 0; p++ {
		s = append(s, rune(i.slot(p)))
	}
	return string(s)
}
