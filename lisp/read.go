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

// The reader sees the input through a one-character lookahead: getChar
// returns the previous lookahead and replaces it with a freshly read
// character. The lookahead starts out as the NUL rune, which the tokenizer
// discards as whitespace, so no explicit priming is needed.

func (i *Instance) getChar() rune {
	c := i.look
	r, _, err := i.input.ReadRune()
	if err != nil {
		// io.EOF here is the orderly shutdown condition, anything else is an
		// input failure. Both unwind to Run.
		panic(errors.Wrap(err, "input"))
	}
	i.look = r
	return c
}

// nextToken stages the characters of the next token in the scratch buffer
// and returns the character that terminated it. A delimiter is any character
// <= space, or one of the parentheses. The loop folds leading whitespace,
// token accumulation and delimiter detection into a single condition on the
// current character and the lookahead.
func (i *Instance) nextToken() rune {
	var c rune
	i.tok = i.tok[:0]
	for {
		c = i.getChar()
		if c > ' ' {
			i.tok = append(i.tok, c)
		}
		if c <= ' ' || (c > ')' && i.look > ')') {
			continue
		}
		return c
	}
}

// readObject parses the expression introduced by the token that c terminated:
// a sublist if c is an opening paren, the staged atom otherwise.
func (i *Instance) readObject(c rune) Cell {
	if c == '(' {
		return i.readList()
	}
	return i.intern()
}

// readList parses list elements until the closing paren. Only proper lists
// are readable; there is no dotted-pair input syntax.
func (i *Instance) readList() Cell {
	c := i.nextToken()
	if c == ')' {
		return SymNil
	}
	x := i.readObject(c)
	return i.cons(x, i.readList())
}

// Read reads the next expression from the input and returns its handle.
// When the input is exhausted the returned error has io.EOF as its cause.
func (i *Instance) Read() (x Cell, err error) {
	defer i.recoverError(&err)
	if i.input == nil {
		return SymNil, errors.New("no input source")
	}
	return i.readObject(i.nextToken()), nil
}
