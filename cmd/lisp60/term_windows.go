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

//go:build windows

package main

import "github.com/pkg/errors"

// raw console IO is not implemented on Windows; the caller falls back to
// buffered line input.
func setRawIO() (func(), error) {
	return nil, errors.New("raw console IO not supported")
}
