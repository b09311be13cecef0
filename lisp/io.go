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
	"unicode/utf8"
)

// runeWriter wraps the WriteRune method. Works the same as
// bufio.Writer.WriteRune.
type runeWriter interface {
	io.Writer
	WriteRune(r rune) (size int, err error)
}

// runeWriterWrapper wraps a plain io.Writer into a runeWriter.
type runeWriterWrapper struct {
	io.Writer
}

func (w *runeWriterWrapper) WriteRune(r rune) (size int, err error) {
	b := [utf8.UTFMax]byte{}
	if r < utf8.RuneSelf {
		return w.Write([]byte{byte(r)})
	}
	l := utf8.EncodeRune(b[:], r)
	return w.Writer.Write(b[0:l])
}

// newWriter returns either w if it implements runeWriter or wraps it up into
// a runeWriterWrapper.
func newWriter(w io.Writer) runeWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case runeWriter:
		return ww
	default:
		return &runeWriterWrapper{w}
	}
}

type multiRuneReader struct {
	readers []io.RuneReader
}

func (mr *multiRuneReader) ReadRune() (r rune, size int, err error) {
	for len(mr.readers) > 0 {
		r, size, err = mr.readers[0].ReadRune()
		if size > 0 || err != io.EOF {
			if err == io.EOF {
				err = nil
			}
			return
		}
		// discard the reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, 0, io.EOF
}

func (mr *multiRuneReader) pushReader(r io.RuneReader) {
	mr.readers = append([]io.RuneReader{r}, mr.readers...)
}

// PushInput sets r as the current input for the interpreter. When this
// reader reaches EOF, the previously pushed reader takes over.
func (i *Instance) PushInput(r io.RuneReader) {
	switch in := i.input.(type) {
	case nil:
		i.input = r
	case *multiRuneReader:
		in.pushReader(r)
	default:
		mr := &multiRuneReader{readers: []io.RuneReader{in}}
		mr.pushReader(r)
		i.input = mr
	}
}
