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

// Package lisp implements an interpreter for the LISP of McCarthy's 1960
// paper: uppercase symbolic atoms, QUOTE, COND and LAMBDA, and the
// primitives CAR, CDR, CONS, ATOM, EQ, READ and PRINT. The language is
// purely functional and just large enough to host its own meta-circular
// evaluator.
//
// Objects live in a fixed-size arena of cells addressed relative to its
// midpoint. An object handle is a signed cell whose sign is its type tag:
// handles >= 0 are atoms and index the symbol region, which grows from the
// midpoint toward higher addresses; handles < 0 are cons cells and index the
// heap region, which grows from the midpoint toward lower addresses. Handle
// 0 is NIL, which is at once the empty list, falsehood and the atom whose
// printed form is NIL. Symbols are interned: byte-equal tokens always yield
// the same handle, so EQ is handle comparison.
//
// The evaluator runs a copy-and-compact collection after every non-trivial
// eval call: the heap cursor at entry marks the data to preserve, the result
// is copied to the top of the heap and slid down against the mark, and the
// cursor is reset past it. Collection cost is proportional to the live
// result only, there is no free list and no separate from-space. The REPL
// additionally resets the whole heap before each top-level expression, so
// only interned symbols survive between expressions.
//
// The interpreter reads characters from an io.RuneReader through a
// one-character lookahead and writes to an io.Writer; both are supplied with
// the Input and Output options. When the input is exhausted, Run emits a
// final newline and returns an error whose cause is io.EOF, the normal exit
// condition in most use cases. Faults (arena exhaustion, CAR of an atom
// reaching outside the arena, applying a non-function) are recovered and
// returned as errors annotated with the machine state.
//
// The symbol region can be saved to and restored from small binary image
// files, preserving interned user symbols across runs; see Load, Save and
// Instance.Image. The built-in symbol table occupies a fixed prefix of every
// image, as the evaluator dispatches primitives on exact handle values.
package lisp
