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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Kind is the scalar kind of a lane.
type Kind string

const (
	KindUnsigned Kind = "u"
	KindSigned   Kind = "i"
	KindFloat    Kind = "f"
	KindBool     Kind = "b"
)

// Shape is one row of the type table: a lane width, a lane count and the
// numeric kinds that get a vector type of that shape.
type Shape struct {
	Bits  int    `yaml:"bits"`
	Lanes int    `yaml:"lanes"`
	Kinds []Kind `yaml:"kinds"`
}

// Table is the parsed contents of lanes.yaml.
type Table struct {
	Package string   `yaml:"package"`
	Shapes  []Shape  `yaml:"shapes"`
	Resize  [][2]int `yaml:"resize"`
}

// LoadTable reads and validates a type table.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read type table")
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a type table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return nil, errors.Wrap(err, "parse type table")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every shape is representable and unique.
func (t *Table) Validate() error {
	if t.Package == "" {
		return errors.New("type table: package is required")
	}
	if len(t.Shapes) == 0 {
		return errors.New("type table: no shapes")
	}
	seen := make(map[[2]int]bool)
	for i, s := range t.Shapes {
		switch s.Bits {
		case 8, 16, 32, 64:
		default:
			return errors.Errorf("type table: shape %d: unsupported lane width %d", i, s.Bits)
		}
		switch s.Lanes {
		case 2, 4, 8, 16, 32:
		default:
			return errors.Errorf("type table: shape %d: unsupported lane count %d", i, s.Lanes)
		}
		key := [2]int{s.Bits, s.Lanes}
		if seen[key] {
			return errors.Errorf("type table: shape %dx%d declared twice", s.Bits, s.Lanes)
		}
		seen[key] = true
		if len(s.Kinds) == 0 {
			return errors.Errorf("type table: shape %dx%d has no kinds", s.Bits, s.Lanes)
		}
		for _, k := range s.Kinds {
			switch k {
			case KindUnsigned, KindSigned:
			case KindFloat:
				if s.Bits != 32 && s.Bits != 64 {
					return errors.Errorf("type table: shape %dx%d: no %d-bit float type", s.Bits, s.Lanes, s.Bits)
				}
			default:
				return errors.Errorf("type table: shape %dx%d: unknown kind %q", s.Bits, s.Lanes, k)
			}
		}
	}
	for _, r := range t.Resize {
		if r[0] >= r[1] {
			return errors.Errorf("type table: resize pair %v must go from narrow to wide", r)
		}
	}
	return nil
}
