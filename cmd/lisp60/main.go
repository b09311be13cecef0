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
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/db47h/lisp60/lisp"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

type cellSizeBits int

func (sz *cellSizeBits) String() string { return strconv.Itoa(int(*sz)) }
func (sz *cellSizeBits) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrap(err, "integer conversion failed")
	}
	switch n {
	case 32, 64:
		*sz = cellSizeBits(n)
		return nil
	default:
		return errors.Errorf("%d bits cells not supported", n)
	}
}
func (sz *cellSizeBits) Get() interface{} { return *sz }

var (
	noRawIO     bool
	dump        bool
	outFileName string
	srcCellSz   = cellSizeBits(lisp.CellBits)
	dstCellSz   = srcCellSz
)

func setupIO() (raw bool, tearDown func()) {
	var err error
	if !noRawIO {
		tearDown, err = setRawIO()
		if err != nil {
			return false, nil
		}
	}
	return tearDown != nil, tearDown
}

func atExit(err error) {
	glog.Flush()
	if err == nil {
		return
	}
	if glog.V(1) {
		fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *lisp.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(err)
	}()

	var withFiles fileList

	fileName := flag.String("image", "", "Load symbol image from file `filename`")
	flag.Var(&srcCellSz, "ibits", "cell size in bits of loaded symbol image")
	size := flag.Int("size", lisp.DefaultArenaSize, "arena size in cells")
	flag.BoolVar(&dump, "dump", false, "dump interned symbols and live heap cells upon exit")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.StringVar(&outFileName, "o", "", "`filename` to use when saving the symbol image")
	flag.Var(&dstCellSz, "obits", "cell size in bits of saved symbol image")
	execStats := flag.Bool("stats", false, "print evaluator statistics upon exit")

	flag.Parse()

	// try to switch the terminal to raw mode.
	rawtty, ioTearDownFn := setupIO()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}

	var opts = []lisp.Option{
		lisp.ArenaSize(*size),
		lisp.Output(stdout),
	}

	if rawtty {
		// with the terminal in raw mode we handle echo, backspace and CTRL-D
		// ourselves, and fold input to upper case as we go.
		opts = append(opts, lisp.Input(newLineReader(os.Stdin, stdout)))
	} else {
		opts = append(opts, lisp.Input(upperReader{bufio.NewReader(os.Stdin)}))
	}

	// append -with files to the input stack in reverse order so that they
	// load in order of appearance on the command line.
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(withFiles[n])
		if err != nil {
			return
		}
		opts = append(opts, lisp.Input(upperReader{bufio.NewReader(f)}))
	}

	var img lisp.Image
	if *fileName != "" {
		img, err = lisp.Load(*fileName, int(srcCellSz))
		if err != nil {
			return
		}
		glog.V(1).Infof("loaded %d symbol cells from %s", len(img), *fileName)
	}

	i, err = lisp.New(img, outFileName, opts...)
	if err != nil {
		return
	}
	if err = i.Run(); errors.Cause(err) == io.EOF {
		err = nil
	}
	if *execStats {
		fmt.Fprintf(os.Stderr, "%d eval calls, %d cells allocated, %d symbol cells interned.\n",
			i.EvalCount(), i.ConsCount(), i.SymbolCells())
	}
	if err != nil {
		return
	}
	if dump {
		stdout.Flush()
		if err = lisp.Dump(i, os.Stdout); err != nil {
			return
		}
	}
	if outFileName != "" {
		if err = lisp.Save(outFileName, i.Image(), int(dstCellSz)); err != nil {
			return
		}
		glog.V(1).Infof("saved %d symbol cells to %s", i.SymbolCells(), outFileName)
	}
}
