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

// eval evaluates e in the environment a. Atoms evaluate to their binding,
// QUOTE returns its argument unevaluated, COND and application run under the
// per-call collection protocol: the heap cursor at entry is the pre-mark, and
// gc reclaims everything allocated past it that is not reachable from the
// result.
func (i *Instance) eval(e, a Cell) Cell {
	i.evalCount++
	if e >= 0 {
		return i.assoc(e, a)
	}
	if i.car(e) == SymQuote {
		return i.cadr(e)
	}
	pre := i.hp
	var v Cell
	if i.car(e) == SymCond {
		v = i.evcon(i.cdr(e), a)
	} else {
		v = i.apply(i.car(e), i.evlis(i.cdr(e), a), a)
	}
	return i.gc(pre, v)
}

// apply applies f to the already evaluated argument list x. A pair in
// function position is a (LAMBDA params body) form; the head symbol is never
// inspected, only the shape matters, which is what lets the meta-circular
// evaluator pass quoted lambda lists around. An atom above the primitive
// range names a user function and is resolved through the environment.
func (i *Instance) apply(f, x, a Cell) Cell {
	if f < 0 {
		return i.eval(i.caddr(f), i.pairlis(i.cadr(f), x, a))
	}
	if f > SymEq {
		return i.apply(i.eval(f, a), x, a)
	}
	switch f {
	case SymCar:
		return i.car(i.car(x))
	case SymCdr:
		return i.cdr(i.car(x))
	case SymCons:
		return i.cons(i.car(x), i.cadr(x))
	case SymAtom:
		return i.truth(i.car(x) >= 0)
	case SymEq:
		return i.truth(i.car(x) == i.cadr(x))
	case SymRead:
		return i.readObject(i.nextToken())
	case SymPrint:
		if x < 0 {
			i.printObject(i.car(x))
		} else {
			i.putChar('\n')
		}
		return SymNil
	}
	// NIL, T and the special form names are not functions. In particular this
	// breaks the infinite apply(NIL) recursion of the reference.
	panic(errors.Errorf("apply: %s is not a function", i.symbolName(f)))
}

func (i *Instance) truth(b bool) Cell {
	if b {
		return SymT
	}
	return SymNil
}

// assoc returns the value bound to k in the association list a, or NIL when
// k is unbound. The reference walks off the end of the list instead; treating
// any atom tail as the empty environment is the documented hardening.
func (i *Instance) assoc(k, a Cell) Cell {
	if a >= 0 {
		return SymNil
	}
	if i.caar(a) == k {
		return i.cdar(a)
	}
	return i.assoc(k, i.cdr(a))
}

// evlis evaluates the elements of m left to right. The ordering is
// observable through READ and PRINT and must not change.
func (i *Instance) evlis(m, a Cell) Cell {
	if m >= 0 {
		return SymNil
	}
	v := i.eval(i.car(m), a)
	return i.cons(v, i.evlis(i.cdr(m), a))
}

// pairlis prepends the pairwise bindings of keys x to values y onto a.
func (i *Instance) pairlis(x, y, a Cell) Cell {
	if x >= 0 {
		return a
	}
	return i.cons(i.cons(i.car(x), i.car(y)), i.pairlis(i.cdr(x), i.cdr(y), a))
}

// evcon evaluates the clauses (test body) of c in order and returns the
// evaluated body of the first clause whose test is non-NIL. Falling off the
// clause list yields NIL; programs are expected to end with a (QUOTE T)
// clause.
func (i *Instance) evcon(c, a Cell) Cell {
	if c >= 0 {
		return SymNil
	}
	cl := i.car(c)
	if i.eval(i.car(cl), a) != SymNil {
		return i.eval(i.cadr(cl), a)
	}
	return i.evcon(i.cdr(c), a)
}

// gc is the per-eval copy-and-compact collector. pre is the heap cursor at
// eval entry, x the result of the call body. Live cells allocated past the
// pre-mark are copied to the top of the heap with their handles rewritten as
// if they had been allocated at the pre-mark, then the copies are slid down
// so that live data abuts the cells preserved below pre, and the cursor is
// reset past them. Collection cost is linear in the live data only.
func (i *Instance) gc(pre, x Cell) Cell {
	post := i.hp
	x = i.copyLive(x, pre, pre-post)
	a, b := pre, post
	for i.hp < b {
		a--
		b--
		i.setSlot(a, i.slot(b))
	}
	i.hp = a
	return x
}

// copyLive copies the cells of x allocated past the pre-mark, adding off to
// each fresh handle so that it is valid after the slide. Atoms and cells
// preserved below the pre-mark are returned unchanged. Sharing is not
// preserved: the result is re-treeified, which may occasionally grow the
// copy beyond the transient data it replaces.
func (i *Instance) copyLive(x, pre, off Cell) Cell {
	if x >= pre {
		return x
	}
	return i.cons(i.copyLive(i.car(x), pre, off), i.copyLive(i.cdr(x), pre, off)) + off
}

// Eval evaluates e in the empty environment, running the collection protocol
// of every non-trivial recursive eval on the way.
func (i *Instance) Eval(e Cell) (v Cell, err error) {
	defer i.recoverError(&err)
	return i.eval(e, SymNil), nil
}
