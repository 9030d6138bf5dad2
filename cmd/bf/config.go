// This file is part of bf-fast - https://github.com/CredibleOpossum/bf-fast
//
// Copyright 2026 The bf-fast Authors
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
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pkg/errors"
)

const configSchema = `
live?:    bool
tape?:    int & >0
radius?:  int & >=0
history?: string
log?:     string
journal?: bool
`

// config holds the settings read from a CUE configuration file. Fields left
// out of the file keep their zero value.
type config struct {
	Live    *bool  `json:"live"`
	Tape    int    `json:"tape"`
	Radius  int    `json:"radius"`
	History string `json:"history"`
	Log     string `json:"log"`
	Journal bool   `json:"journal"`
}

// loadConfig loads and validates the CUE configuration file fileName.
func loadConfig(fileName string) (*config, error) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return parseConfig(fileName, content)
}

func parseConfig(fileName string, content []byte) (*config, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + configSchema + "})")
	if err := schema.Err(); err != nil {
		return nil, errors.Wrap(err, "config schema")
	}
	value := ctx.CompileBytes(content, cue.Filename(fileName))
	if err := value.Err(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	value = schema.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	var c config
	if err := value.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return &c, nil
}
