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
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// VecType describes one generated vector type.
type VecType struct {
	Name  string // "F32x4"
	Elem  string // "float32"
	Kind  Kind
	Bits  int
	Lanes int

	// Bool is the boolean sibling; nil for boolean types.
	Bool *VecType

	// Siblings are the numeric types sharing this boolean type's shape,
	// used for the typed masked blends. Empty for numeric types.
	Siblings []*VecType
}

// IsBool reports whether t is a boolean vector type.
func (t *VecType) IsBool() bool { return t.Kind == KindBool }

// IsFloat reports whether t has float lanes.
func (t *VecType) IsFloat() bool { return t.Kind == KindFloat }

// IsInteger reports whether t has unsigned or signed lanes.
func (t *VecType) IsInteger() bool {
	return t.Kind == KindUnsigned || t.Kind == KindSigned
}

// UElem is the unsigned scalar of the same width, used for bit masks.
func (t *VecType) UElem() string { return fmt.Sprintf("uint%d", t.Bits) }

// Params returns the constructor parameter list "x0, x1, ...".
func (t *VecType) Params() string {
	return strings.Join(lo.Times(t.Lanes, func(i int) string {
		return fmt.Sprintf("x%d", i)
	}), ", ")
}

// Conversion is one generated conversion method.
type Conversion struct {
	Method string // "ToI", "ToF64"
	From   *VecType
	To     *VecType
}

// Family is the fully expanded type family.
type Family struct {
	Package     string
	Types       []*VecType
	Conversions []Conversion
}

// Numeric returns the non-boolean types in table order.
func (f *Family) Numeric() []*VecType {
	return lo.Filter(f.Types, func(t *VecType, _ int) bool { return !t.IsBool() })
}

// Integer returns the unsigned and signed types in table order.
func (f *Family) Integer() []*VecType {
	return lo.Filter(f.Types, func(t *VecType, _ int) bool { return t.IsInteger() })
}

// Bools returns the boolean types in table order.
func (f *Family) Bools() []*VecType {
	return lo.Filter(f.Types, func(t *VecType, _ int) bool { return t.IsBool() })
}

// Lookup returns the type with the given kind and shape.
func (f *Family) Lookup(kind Kind, bits, lanes int) (*VecType, bool) {
	return lo.Find(f.Types, func(t *VecType) bool {
		return t.Kind == kind && t.Bits == bits && t.Lanes == lanes
	})
}

// ConversionsFrom returns the conversions whose receiver is t.
func (f *Family) ConversionsFrom(t *VecType) []Conversion {
	return lo.Filter(f.Conversions, func(c Conversion, _ int) bool { return c.From == t })
}

var kindPrefix = map[Kind]string{
	KindUnsigned: "U",
	KindSigned:   "I",
	KindFloat:    "F",
	KindBool:     "Bool",
}

var kindElem = map[Kind]string{
	KindUnsigned: "uint",
	KindSigned:   "int",
	KindFloat:    "float",
	KindBool:     "int",
}

func newVecType(kind Kind, bits, lanes int) *VecType {
	return &VecType{
		Name:  fmt.Sprintf("%s%dx%d", kindPrefix[kind], bits, lanes),
		Elem:  fmt.Sprintf("%s%d", kindElem[kind], bits),
		Kind:  kind,
		Bits:  bits,
		Lanes: lanes,
	}
}

// sameShapeTargets lists, for each receiver kind, the conversions to other
// kinds of the same shape in emission order.
var sameShapeTargets = map[Kind][]Kind{
	KindUnsigned: {KindSigned, KindFloat},
	KindSigned:   {KindUnsigned, KindFloat},
	KindFloat:    {KindSigned, KindUnsigned},
	KindBool:     {KindSigned, KindUnsigned},
}

// BuildFamily expands a validated table into the list of types to emit.
// Types keep table order; within a shape the numeric kinds come first in
// the order listed, followed by the boolean sibling.
func BuildFamily(t *Table) *Family {
	fam := &Family{Package: t.Package}

	for _, s := range t.Shapes {
		b := newVecType(KindBool, s.Bits, s.Lanes)
		for _, k := range s.Kinds {
			vt := newVecType(k, s.Bits, s.Lanes)
			vt.Bool = b
			b.Siblings = append(b.Siblings, vt)
			fam.Types = append(fam.Types, vt)
		}
		fam.Types = append(fam.Types, b)
	}

	for _, from := range fam.Types {
		for _, k := range sameShapeTargets[from.Kind] {
			if to, ok := fam.Lookup(k, from.Bits, from.Lanes); ok {
				fam.Conversions = append(fam.Conversions, Conversion{
					Method: "To" + kindPrefix[k],
					From:   from,
					To:     to,
				})
			}
		}
		if from.IsBool() {
			continue
		}
		for _, r := range t.Resize {
			var bits int
			switch from.Bits {
			case r[0]:
				bits = r[1]
			case r[1]:
				bits = r[0]
			default:
				continue
			}
			if to, ok := fam.Lookup(from.Kind, bits, from.Lanes); ok {
				fam.Conversions = append(fam.Conversions, Conversion{
					Method: fmt.Sprintf("To%s%d", kindPrefix[from.Kind], bits),
					From:   from,
					To:     to,
				})
			}
		}
	}
	return fam
}
