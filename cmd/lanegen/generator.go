// Copyright 2025 go-highway Authors
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
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"
)

// outputFile pairs a generated file name with the emitter that writes it.
type outputFile struct {
	name string
	emit func(*bytes.Buffer, *Family)
}

// outputFiles lists the generated files, one per responsibility group.
var outputFiles = []outputFile{
	{"vectors.gen.go", emitVectors},
	{"arith.gen.go", emitArith},
	{"bitops.gen.go", emitBitops},
	{"convert.gen.go", emitConvert},
}

// Generator orchestrates the code generation process.
type Generator struct {
	ConfigFile string // Type table (lanes.yaml)
	OutputDir  string // Output directory
	Log        logrus.FieldLogger
}

// Run loads the type table and writes every generated file.
func (g *Generator) Run() error {
	log := g.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	table, err := LoadTable(g.ConfigFile)
	if err != nil {
		return err
	}
	fam := BuildFamily(table)
	log.WithFields(logrus.Fields{
		"package":     fam.Package,
		"types":       len(fam.Types),
		"conversions": len(fam.Conversions),
	}).Info("expanded type table")

	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	for _, out := range outputFiles {
		src, err := render(out, fam)
		if err != nil {
			return err
		}
		path := filepath.Join(g.OutputDir, out.name)
		if err := os.WriteFile(path, src, 0644); err != nil {
			return errors.Wrapf(err, "write %s", out.name)
		}
		log.WithFields(logrus.Fields{"file": path, "bytes": len(src)}).Debug("wrote file")
	}
	return nil
}

// render emits one file and formats it.
func render(out outputFile, fam *Family) ([]byte, error) {
	var buf bytes.Buffer
	out.emit(&buf, fam)
	src, err := imports.Process(out.name, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "format %s", out.name)
	}
	return src, nil
}
