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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/lisp60/lisp"
	"github.com/pkg/errors"
)

func assertEqual(t *testing.T, name, expected, got string) {
	t.Helper()
	if expected != got {
		t.Errorf("%v:\nExpected: %q\nGot: %q", name, expected, got)
	}
}

func assertEqualI(t *testing.T, name string, expected, got int) {
	t.Helper()
	if expected != got {
		t.Errorf("%v:\nExpected: %v\nGot: %v", name, expected, got)
	}
}

func runSession(t *testing.T, input string, opts ...lisp.Option) (*lisp.Instance, string, error) {
	t.Helper()
	b := bytes.NewBuffer(nil)
	opts = append([]lisp.Option{lisp.Input(strings.NewReader(input)), lisp.Output(b)}, opts...)
	i, err := lisp.New(nil, "", opts...)
	if err != nil {
		t.Fatal(err)
	}
	err = i.Run()
	return i, b.String(), err
}

var sessions = [...]struct {
	name   string
	input  string
	output string
}{
	{"quote", "(QUOTE A)\n", "A\n"},
	{"car", "(CAR (QUOTE (A B C)))\n", "A\n"},
	{"cdr", "(CDR (QUOTE (A B C)))\n", "(B C)\n"},
	{"cons", "(CONS (QUOTE A) (QUOTE (B C)))\n", "(A B C)\n"},
	{"eq", "(EQ (QUOTE A) (QUOTE A))\n", "T\n"},
	{"eq-distinct", "(EQ (QUOTE A) (QUOTE B))\n", "NIL\n"},
	{"atom", "(ATOM (QUOTE A))\n", "T\n"},
	{"atom-pair", "(ATOM (QUOTE (A)))\n", "NIL\n"},
	{"cond", "(COND ((EQ (QUOTE A) (QUOTE A)) (QUOTE YES)) ((QUOTE T) (QUOTE NO)))\n", "YES\n"},
	{"lambda", "((LAMBDA (X) (CONS X X)) (QUOTE A))\n", "(A ∙ A)\n"},
	{"firstatom", "((LAMBDA (FF X) (FF X)) (QUOTE (LAMBDA (X) (COND ((ATOM X) X) ((QUOTE T) (FF (CAR X)))))) (QUOTE ((A) B C)))\n", "A\n"},
	{"sequence", "(QUOTE A)\n(QUOTE B)\n", "A\nB\n"},
	{"read", "(CONS (READ) (QUOTE (B)))\nA\n", "(A B)\n"},
	{"print-order", "((LAMBDA (A B) (QUOTE DONE)) (PRINT (QUOTE X)) (PRINT (QUOTE Y)))\n", "XYDONE\n"},
	{"print-newline", "(PRINT)\n", "\nNIL\n"},
}

func TestRun_Sessions(t *testing.T) {
	for _, test := range sessions {
		_, got, err := runSession(t, test.input)
		if errors.Cause(err) != io.EOF {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		// Run emits one final newline when the input closes
		assertEqual(t, test.name, test.output+"\n", got)
	}
}

func TestRun_Counters(t *testing.T) {
	i, _, err := runSession(t, "((LAMBDA (X) (CONS X X)) (QUOTE A))\n")
	if errors.Cause(err) != io.EOF {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.EvalCount() == 0 {
		t.Error("EvalCount is zero after a session")
	}
	if i.ConsCount() == 0 {
		t.Error("ConsCount is zero after a session")
	}
	// the REPL resets the heap before reading, and the last read hit EOF
	assertEqualI(t, "heap cells", 0, i.HeapCells())
}

func TestRun_NoInput(t *testing.T) {
	i, err := lisp.New(nil, "", lisp.Output(bytes.NewBuffer(nil)))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err == nil {
		t.Fatal("Unexpected nil error")
	}
}

func TestRun_HeapExhausted(t *testing.T) {
	const depth = 40
	input := strings.Repeat("(CONS (QUOTE A) ", depth) + "(QUOTE NIL)" + strings.Repeat(")", depth) + "\n"
	_, _, err := runSession(t, input, lisp.ArenaSize(512))
	if err == nil || errors.Cause(err) == io.EOF {
		t.Fatalf("expected a heap exhaustion error, got %v", err)
	}
	if !strings.Contains(err.Error(), "heap exhausted") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_MultipleInputs(t *testing.T) {
	b := bytes.NewBuffer(nil)
	i, err := lisp.New(nil, "",
		lisp.Input(strings.NewReader("(QUOTE SECOND)\n")),
		lisp.Input(strings.NewReader("(QUOTE FIRST)\n")),
		lisp.Output(b))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); errors.Cause(err) != io.EOF {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "multiple inputs", "FIRST\nSECOND\n\n", b.String())
}

func TestNew_Errors(t *testing.T) {
	if _, err := lisp.New(lisp.Image{1, 2, 3}, ""); err == nil {
		t.Error("bad image: unexpected nil error")
	}
	if _, err := lisp.New(nil, "", lisp.ArenaSize(16)); err == nil {
		t.Error("tiny arena: unexpected nil error")
	}
	// corrupt the boot prefix of a valid image
	i, err := lisp.New(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	img := i.Image()
	img[0] = 'X'
	if _, err = lisp.New(img, ""); err == nil {
		t.Error("corrupt boot prefix: unexpected nil error")
	}
}

func TestDump(t *testing.T) {
	i, _, err := runSession(t, "(QUOTE (HELLO WORLD))\n")
	if errors.Cause(err) != io.EOF {
		t.Fatalf("unexpected error: %v", err)
	}
	b := bytes.NewBuffer(nil)
	if err = lisp.Dump(i, b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, s := range []string{"symbols:", "NIL", "HELLO", "WORLD", "heap:"} {
		if !strings.Contains(out, s) {
			t.Errorf("dump does not mention %q:\n%s", s, out)
		}
	}
}
