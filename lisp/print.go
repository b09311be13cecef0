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

// dot is the separator printed between the last two elements of an improper
// list. It is U+2219, outside ASCII, so the output writer must be rune aware.
const dot = '∙'

func (i *Instance) putChar(c rune) {
	if _, err := i.output.WriteRune(c); err != nil {
		panic(errors.Wrap(err, "output"))
	}
}

// printObject emits the canonical form of x: atoms print their symbol
// characters, lists print their elements separated by single spaces, and a
// non-nil tail is introduced by the dotted-pair separator.
func (i *Instance) printObject(x Cell) {
	if x >= 0 {
		for p := x; i.slot(p) != 0; p++ {
			i.putChar(rune(i.slot(p)))
		}
		return
	}
	i.putChar('(')
	i.printObject(i.car(x))
	for x = i.cdr(x); x < 0; x = i.cdr(x) {
		i.putChar(' ')
		i.printObject(i.car(x))
	}
	if x != SymNil {
		i.putChar(' ')
		i.putChar(dot)
		i.putChar(' ')
		i.printObject(x)
	}
	i.putChar(')')
}

// Print writes the canonical printed form of x to the output.
func (i *Instance) Print(x Cell) (err error) {
	defer i.recoverError(&err)
	i.printObject(x)
	return nil
}
