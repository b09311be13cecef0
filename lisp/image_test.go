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
	"path/filepath"
	"testing"

	"github.com/db47h/lisp60/lisp"
	"github.com/pkg/errors"
)

func TestImage_RoundTrip(t *testing.T) {
	for _, bits := range [...]int{32, 64} {
		i, _, err := runSession(t, "(QUOTE (FOO BAR))\n")
		if errors.Cause(err) != io.EOF {
			t.Fatalf("%d bits: unexpected error: %v", bits, err)
		}
		foo := i.Intern("FOO")
		fn := filepath.Join(t.TempDir(), "image")
		if err = lisp.Save(fn, i.Image(), bits); err != nil {
			t.Fatalf("%d bits: %v", bits, err)
		}
		img, err := lisp.Load(fn, bits)
		if err != nil {
			t.Fatalf("%d bits: %v", bits, err)
		}
		j, err := lisp.New(img, fn)
		if err != nil {
			t.Fatalf("%d bits: %v", bits, err)
		}
		assertEqualI(t, "symbol cells", i.SymbolCells(), j.SymbolCells())
		if h := j.Intern("FOO"); h != foo {
			t.Errorf("%d bits: FOO: expected handle %d, got %d", bits, foo, h)
		}
		if j.ImageFile() != fn {
			t.Errorf("%d bits: image file: expected %q, got %q", bits, fn, j.ImageFile())
		}
	}
}

func TestImage_Codec(t *testing.T) {
	i, err := lisp.New(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	img := i.Image()
	assertEqual(t, "decode NIL", "NIL", img.DecodeString(lisp.SymNil))
	assertEqual(t, "decode QUOTE", "QUOTE", img.DecodeString(lisp.SymQuote))
	assertEqual(t, "decode EQ", "EQ", img.DecodeString(lisp.SymEq))
	assertEqual(t, "decode out of range", "", img.DecodeString(lisp.Cell(len(img))))

	scratch := make(lisp.Image, 8)
	scratch.EncodeString(0, "ABC")
	assertEqual(t, "encode", "ABC", scratch.DecodeString(0))
}

func TestImage_BadBits(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image")
	i, err := lisp.New(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if err = lisp.Save(fn, i.Image(), 16); err == nil {
		t.Error("Save: unexpected nil error")
	}
	if err = lisp.Save(fn, i.Image(), 32); err != nil {
		t.Fatal(err)
	}
	if _, err = lisp.Load(fn, 16); err == nil {
		t.Error("Load: unexpected nil error")
	}
}
