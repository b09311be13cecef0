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

package lisp_test

import (
	"io"
	"os"
	"strings"

	"github.com/db47h/lisp60/lisp"
	"github.com/pkg/errors"
)

// Runs a recursive descent to the first atom of a nested list: FF binds a
// quoted lambda list that calls itself through the environment, exercising
// LAMBDA binding, COND and the per-eval collector across many nested calls.
func ExampleInstance_Run() {
	src := `((LAMBDA (FF X) (FF X))
	         (QUOTE (LAMBDA (X) (COND ((ATOM X) X) ((QUOTE T) (FF (CAR X))))))
	         (QUOTE ((A) B C)))
`
	i, err := lisp.New(nil, "",
		lisp.Input(strings.NewReader(src)),
		lisp.Output(os.Stdout))
	if err != nil {
		panic(err)
	}
	// in interactive use, Run returns an error caused by io.EOF when the
	// input gets closed: this is the normal exit condition
	if err = i.Run(); errors.Cause(err) != io.EOF {
		panic(err)
	}

	// Output:
	// A
}
