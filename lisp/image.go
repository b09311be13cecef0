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
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Image is a snapshot of the populated symbol region: the built-in symbol
// table followed by the user symbols interned so far. Cons cells are not
// part of an image; the REPL resets the heap before each expression, so
// only interned symbols outlive a session.
type Image []Cell

// Image returns a snapshot of the instance's symbol region.
func (i *Instance) Image() Image {
	img := make(Image, i.sy)
	copy(img, i.mem[i.mid:i.mid+int(i.sy)])
	return img
}

// ImageFile returns the image file name the instance was created with.
func (i *Instance) ImageFile() string {
	return i.imageFile
}

// DecodeString returns the string starting at position start in the image.
// Strings stored in the image are zero terminated. The trailing terminator
// is not returned.
func (img Image) DecodeString(start Cell) string {
	if start < 0 || int(start) >= len(img) {
		return ""
	}
	var s []rune
	for _, c := range img[start:] {
		if c == 0 {
			break
		}
		s = append(s, rune(c))
	}
	return string(s)
}

// EncodeString writes the given string at position start in the image and
// terminates it with a zero cell.
func (img Image) EncodeString(start Cell, s string) {
	pos := int(start)
	for _, r := range s {
		if pos >= len(img) {
			return
		}
		img[pos] = Cell(r)
		pos++
	}
	if pos < len(img) {
		img[pos] = 0
	}
}

// load32 loads a 32 bits image.
func load32(img Image, r io.Reader) error {
	var b = make([]byte, 4)
	for p := range img {
		if _, err := io.ReadFull(r, b); err != nil {
			return errors.Wrap(err, "cell read failed")
		}
		img[p] = Cell(int32(binary.LittleEndian.Uint32(b)))
	}
	return nil
}

// load64 loads a 64 bits image.
func load64(img Image, r io.Reader) error {
	var b = make([]byte, 8)
	for p := range img {
		if _, err := io.ReadFull(r, b); err != nil {
			return errors.Wrap(err, "cell read failed")
		}
		v := int64(binary.LittleEndian.Uint64(b))
		n := Cell(v)
		if int64(n) != v {
			return errors.Errorf("64 bits value %d at image location %d too large", v, p)
		}
		img[p] = n
	}
	return nil
}

// Load loads a symbol region image from file fileName. The cellBits
// parameter specifies the number of bits per Cell in the file; 0 selects the
// native Cell size.
func Load(fileName string, cellBits int) (Image, error) {
	switch cellBits {
	case 0:
		cellBits = CellBits
	case 32, 64:
	default:
		return nil, errors.Errorf("loading of %d bits images is not supported", cellBits)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "fstat failed")
	}
	sz := st.Size()
	if sz > int64((^uint(0))>>1) { // MaxInt
		return nil, errors.Errorf("%v: file too large", fileName)
	}
	img := make(Image, int(sz/int64(cellBits/8)))
	switch cellBits {
	case 32:
		err = load32(img, bufio.NewReader(f))
	case 64:
		err = load64(img, bufio.NewReader(f))
	}
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	return img, nil
}

// Save saves a symbol region image to fileName. The cellBits parameter
// specifies the number of bits per Cell in the file; 0 selects the native
// Cell size.
func Save(fileName string, img Image, cellBits int) (err error) {
	if cellBits == 0 {
		cellBits = CellBits
	}
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		w.Flush()
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	switch cellBits {
	case 32:
		var b [4]byte
		for _, v := range img {
			binary.LittleEndian.PutUint32(b[:], uint32(int32(v)))
			if _, err = w.Write(b[:]); err != nil {
				return errors.Wrap(err, "write failed")
			}
		}
	case 64:
		var b [8]byte
		for _, v := range img {
			binary.LittleEndian.PutUint64(b[:], uint64(int64(v)))
			if _, err = w.Write(b[:]); err != nil {
				return errors.Wrap(err, "write failed")
			}
		}
	default:
		return errors.Errorf("saving to %d bits images is not supported", cellBits)
	}
	return nil
}
