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

package main

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// upperReader folds lower case input to upper case. The interpreter only
// knows uppercase atoms, so buffered stdin and -with files go through this
// folding; the raw line reader folds case itself.
type upperReader struct {
	r io.RuneReader
}

func (u upperReader) ReadRune() (r rune, size int, err error) {
	r, size, err = u.r.ReadRune()
	if 'a' <= r && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r, size, err
}

// lineReader is the interactive character source: with the terminal in raw
// mode it reads one line at a time with echo, backspace and CTRL-U editing,
// folds input to upper case, and serves the buffered characters one by one.
// CTRL-D on an empty line reports io.EOF.
type lineReader struct {
	in  *bufio.Reader
	out io.Writer
	buf []rune
	pos int
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	return &lineReader{in: bufio.NewReader(in), out: out}
}

func (l *lineReader) ReadRune() (r rune, size int, err error) {
	for l.pos >= len(l.buf) {
		if err = l.readLine(); err != nil {
			return 0, 0, err
		}
	}
	r = l.buf[l.pos]
	l.pos++
	return r, utf8.RuneLen(r), nil
}

func (l *lineReader) echo(s string) {
	io.WriteString(l.out, s)
	if f, ok := l.out.(interface {
		Flush() error
	}); ok {
		f.Flush()
	}
}

func (l *lineReader) readLine() error {
	l.buf = l.buf[:0]
	l.pos = 0
	for {
		c, _, err := l.in.ReadRune()
		if err != nil {
			return err
		}
		switch {
		case c == 4: // CTRL-D
			if len(l.buf) == 0 {
				return io.EOF
			}
		case c == '\r' || c == '\n':
			l.echo("\n")
			l.buf = append(l.buf, '\n')
			return nil
		case c == 8 || c == 127: // backspace
			if n := len(l.buf); n > 0 {
				l.buf = l.buf[:n-1]
				l.echo("\b \b")
			}
		case c == 21: // CTRL-U
			for len(l.buf) > 0 {
				l.buf = l.buf[:len(l.buf)-1]
				l.echo("\b \b")
			}
		case c >= ' ':
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			l.buf = append(l.buf, c)
			l.echo(string(c))
		}
	}
}
