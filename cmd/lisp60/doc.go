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

// The lisp60 command line tool is an interactive front end for the package
// github.com/db47h/lisp60/lisp: a read-eval-print loop for McCarthy's 1960
// LISP.
//
// Usage:
//
//	-dump
//		  dump interned symbols and live heap cells upon exit
//	-ibits value
//		  cell size in bits of loaded symbol image (default 32)
//	-image filename
//		  Load symbol image from file filename
//	-noraw
//		  disable raw terminal IO
//	-o filename
//		  filename to use when saving the symbol image
//	-obits value
//		  cell size in bits of saved symbol image (default 32)
//	-size int
//		  arena size in cells (default 32768)
//	-stats
//		  print evaluator statistics upon exit
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// The standard glog flags (-v, -logtostderr, ...) are also accepted; image
// load/save diagnostics are logged at -v=1, and -v=1 or higher switches
// error reports to the long form with stack traces.
//
// -noraw: upon startup, lisp60 switches the terminal to raw mode and
// provides echo, backspace and CTRL-U line editing itself, with lower case
// input folded to upper case. This flag disables raw mode; input is then
// read line-buffered from stdin, still case folded. Raw mode is also skipped
// when stdin is not a terminal.
//
// -with: after initializing the arena, lisp60 feeds the specified files to
// the interpreter before reading stdin. If specified multiple times, files
// are read in order of appearance on the command line. A session typically
// keeps function definitions in such files, quoted and bound through LAMBDA
// application.
//
// -image, -o, -ibits, -obits: the symbol region of the arena (the interned
// symbols, never the transient heap) can be saved at exit and loaded at
// startup as a small binary image, with 32 or 64 bits per cell on disk.
// Images must begin with the built-in symbol table: the evaluator dispatches
// primitives on exact symbol handles, so the boot prefix is part of the
// image format and is verified on load.
//
// End of input (CTRL-D at the start of a line in raw mode) prints a final
// newline and exits successfully. Evaluator faults are reported on stderr
// and exit with status 1.
package main
