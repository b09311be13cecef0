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

	"github.com/pkg/errors"
)

// Run starts the read-eval-print loop: reset the heap, read an expression,
// evaluate it in the empty environment, print the result followed by a
// newline, repeat.
//
// When the last input source gets closed, Run emits a final newline and
// returns an error whose cause is io.EOF. This is the normal exit condition
// in most use cases. Any other error (arena exhaustion, an I/O failure, or a
// fault caused by an ill-formed program) is returned wrapped with the
// machine state at the point of the fault.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			ee, ok := e.(error)
			if !ok {
				panic(e)
			}
			if errors.Cause(ee) == io.EOF {
				i.output.WriteRune('\n')
				err = ee
				return
			}
			err = errors.Wrapf(ee, "recovered error @heap=%d/%d, symbols=%d/%d",
				i.HeapCells(), i.mid, i.SymbolCells(), len(i.mem)-i.mid)
		}
	}()
	if i.input == nil {
		return errors.New("no input source")
	}
	i.evalCount, i.consCount = 0, 0
	for {
		i.resetHeap()
		e := i.readObject(i.nextToken())
		v := i.eval(e, SymNil)
		i.printObject(v)
		i.putChar('\n')
	}
}
