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
	"fmt"
	"io"

	"github.com/db47h/lisp60/internal/lsi"
)

// Dump writes the interned symbols and the live heap cells of i to the
// specified io.Writer, one object per line with its handle.
func Dump(i *Instance, w io.Writer) error {
	ew := lsi.NewErrWriter(w)
	img := i.Image()
	fmt.Fprintf(ew, "symbols: %d cells\n", i.SymbolCells())
	for p := Cell(0); p < i.sy; {
		s := img.DecodeString(p)
		fmt.Fprintf(ew, "%6d: %s\n", p, s)
		p += Cell(len([]rune(s))) + 1
	}
	fmt.Fprintf(ew, "heap: %d cells\n", i.HeapCells())
	for h := i.hp; h < 0; h += 2 {
		fmt.Fprintf(ew, "%6d: %d %d\n", h, i.car(h), i.cdr(h))
	}
	return ew.Err
}
