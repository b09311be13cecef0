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

// Built-in symbol handles. These are offsets into the symbol region and the
// evaluator dispatches primitives on the exact handle value, so the layout of
// the boot symbol table below is part of the image format. Any atom handle
// strictly greater than SymEq names a user symbol that apply resolves through
// the environment.
const (
	SymNil   Cell = 0  // empty list / false
	SymT     Cell = 4  // canonical truth
	SymQuote Cell = 6  // special form
	SymCond  Cell = 12 // special form
	SymRead  Cell = 17 // primitive
	SymPrint Cell = 22 // primitive
	SymAtom  Cell = 28 // primitive
	SymCar   Cell = 33 // primitive
	SymCdr   Cell = 37 // primitive
	SymCons  Cell = 41 // primitive
	SymEq    Cell = 46 // primitive
)

var bootSymbols = [...]string{
	"NIL",
	"T",
	"QUOTE",
	"COND",
	"READ",
	"PRINT",
	"ATOM",
	"CAR",
	"CDR",
	"CONS",
	"EQ",
}

// bootImage is the initial content of the symbol region: the built-in symbol
// names concatenated with their terminators, one character per cell.
var bootImage Image

func init() {
	for _, s := range bootSymbols {
		for _, r := range s {
			bootImage = append(bootImage, Cell(r))
		}
		bootImage = append(bootImage, 0)
	}
}
