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
	"fmt"
)

// Each emit* function writes one generated file body. The output is already
// gofmt-clean; imports.Process only normalizes it.

func emitHeader(buf *bytes.Buffer, pkg string) {
	fmt.Fprintf(buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n", pkg)
}

func emitDoc(buf *bytes.Buffer, doc ...string) {
	for _, line := range doc {
		fmt.Fprintf(buf, "// %s\n", line)
	}
}

// emitLaneLoop writes a method computing every lane of a new result r.
func emitLaneLoop(buf *bytes.Buffer, t *VecType, sig, result, expr string, doc ...string) {
	fmt.Fprintf(buf, "\n")
	emitDoc(buf, doc...)
	fmt.Fprintf(buf, "func (v %s) %s %s {\n", t.Name, sig, result)
	fmt.Fprintf(buf, "\tvar r %s\n", result)
	fmt.Fprintf(buf, "\tfor i := range v {\n")
	fmt.Fprintf(buf, "\t\tr[i] = %s\n", expr)
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\treturn r\n")
	fmt.Fprintf(buf, "}\n")
}

// emitVectors writes the type declarations, constructors, lane access and load/store.
func emitVectors(buf *bytes.Buffer, fam *Family) {
	emitHeader(buf, fam.Package)
	for _, t := range fam.Types {
		n := t.Lanes
		fmt.Fprintf(buf, "\n")
		if t.IsBool() {
			emitDoc(buf,
				fmt.Sprintf("%s is a vector of %d boolean lanes stored as %s.", t.Name, n, t.Elem),
				"A lane is false when it is 0 and true otherwise; comparisons produce -1 for true.")
		} else {
			emitDoc(buf, fmt.Sprintf("%s is a vector of %d %s lanes.", t.Name, n, t.Elem))
		}
		fmt.Fprintf(buf, "type %s [%d]%s\n", t.Name, n, t.Elem)

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, fmt.Sprintf("New%s builds a vector from its lanes in index order.", t.Name))
		fmt.Fprintf(buf, "func New%s(%s %s) %s {\n", t.Name, t.Params(), t.Elem, t.Name)
		fmt.Fprintf(buf, "\treturn %s{%s}\n", t.Name, t.Params())
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, fmt.Sprintf("Splat%s returns a vector with every lane set to x.", t.Name))
		fmt.Fprintf(buf, "func Splat%s(x %s) %s {\n", t.Name, t.Elem, t.Name)
		fmt.Fprintf(buf, "\tvar r %s\n", t.Name)
		fmt.Fprintf(buf, "\tfor i := range r {\n")
		fmt.Fprintf(buf, "\t\tr[i] = x\n")
		fmt.Fprintf(buf, "\t}\n")
		fmt.Fprintf(buf, "\treturn r\n")
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf,
			fmt.Sprintf("Load%s reads %d consecutive lanes starting at src[idx].", t.Name, n),
			fmt.Sprintf("It panics with a *LaneError if src[idx:idx+%d] is out of range.", n))
		fmt.Fprintf(buf, "func Load%s(src []%s, idx int) %s {\n", t.Name, t.Elem, t.Name)
		fmt.Fprintf(buf, "\tcheckSpan(\"Load%s\", idx, %d, len(src))\n", t.Name, n)
		fmt.Fprintf(buf, "\tvar r %s\n", t.Name)
		fmt.Fprintf(buf, "\tcopy(r[:], src[idx : idx+%d])\n", n)
		fmt.Fprintf(buf, "\treturn r\n")
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, fmt.Sprintf("NumLanes returns %d.", n))
		fmt.Fprintf(buf, "func (%s) NumLanes() int {\n", t.Name)
		fmt.Fprintf(buf, "\treturn %d\n", n)
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf,
			"Store writes the lanes of v to dst starting at dst[idx].",
			fmt.Sprintf("It panics with a *LaneError, writing nothing, if dst[idx:idx+%d] is out of range.", n))
		fmt.Fprintf(buf, "func (v %s) Store(dst []%s, idx int) {\n", t.Name, t.Elem)
		fmt.Fprintf(buf, "\tcheckSpan(\"%s.Store\", idx, %d, len(dst))\n", t.Name, n)
		fmt.Fprintf(buf, "\tcopy(dst[idx : idx+%d], v[:])\n", n)
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, fmt.Sprintf("Extract returns lane idx of v. It panics with a *LaneError unless 0 <= idx < %d.", n))
		fmt.Fprintf(buf, "func (v %s) Extract(idx int) %s {\n", t.Name, t.Elem)
		fmt.Fprintf(buf, "\tcheckLane(\"%s.Extract\", idx, %d)\n", t.Name, n)
		fmt.Fprintf(buf, "\treturn v[idx]\n")
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf,
			"Replace returns a copy of v with lane idx set to x.",
			fmt.Sprintf("It panics with a *LaneError unless 0 <= idx < %d.", n))
		fmt.Fprintf(buf, "func (v %s) Replace(idx int, x %s) %s {\n", t.Name, t.Elem, t.Name)
		fmt.Fprintf(buf, "\tcheckLane(\"%s.Replace\", idx, %d)\n", t.Name, n)
		fmt.Fprintf(buf, "\tv[idx] = x\n")
		fmt.Fprintf(buf, "\treturn v\n")
		fmt.Fprintf(buf, "}\n")
	}
}

// emitArith writes arithmetic, min/max, comparisons and reductions for numeric types.
func emitArith(buf *bytes.Buffer, fam *Family) {
	emitHeader(buf, fam.Package)
	for _, t := range fam.Numeric() {
		w := fmt.Sprintf("(w %s)", t.Name)

		emitLaneLoop(buf, t, "Add"+w, t.Name, "v[i] + w[i]", "Add returns the lane-wise sum v + w.")
		emitLaneLoop(buf, t, "Sub"+w, t.Name, "v[i] - w[i]", "Sub returns the lane-wise difference v - w.")
		emitLaneLoop(buf, t, "Mul"+w, t.Name, "v[i] * w[i]", "Mul returns the lane-wise product v * w.")
		if t.IsFloat() {
			emitLaneLoop(buf, t, "Div"+w, t.Name, "v[i] / w[i]",
				"Div returns the lane-wise quotient v / w.",
				"Division by zero gives ±Inf or NaN as defined by IEEE 754.")
		} else {
			emitLaneLoop(buf, t, "Div"+w, t.Name, "v[i] / w[i]",
				"Div returns the lane-wise quotient v / w, truncated toward zero.",
				"It panics with a runtime error if any lane of w is zero.")
		}

		for _, op := range []struct{ name, cmp, what string }{
			{"Min", "<", "minimum"},
			{"Max", ">", "maximum"},
		} {
			fmt.Fprintf(buf, "\n")
			emitDoc(buf,
				fmt.Sprintf("%s returns the lane-wise %s of v and w.", op.name, op.what),
				fmt.Sprintf("Lanes where v[i] %s w[i] is false, ties and NaN included, take w[i].", op.cmp))
			fmt.Fprintf(buf, "func (v %s) %s(w %s) %s {\n", t.Name, op.name, t.Name, t.Name)
			fmt.Fprintf(buf, "\tvar r %s\n", t.Name)
			fmt.Fprintf(buf, "\tfor i := range v {\n")
			fmt.Fprintf(buf, "\t\tif v[i] %s w[i] {\n", op.cmp)
			fmt.Fprintf(buf, "\t\t\tr[i] = v[i]\n")
			fmt.Fprintf(buf, "\t\t} else {\n")
			fmt.Fprintf(buf, "\t\t\tr[i] = w[i]\n")
			fmt.Fprintf(buf, "\t\t}\n")
			fmt.Fprintf(buf, "\t}\n")
			fmt.Fprintf(buf, "\treturn r\n")
			fmt.Fprintf(buf, "}\n")
		}

		for _, op := range []struct{ name, cmp string }{
			{"Eq", "=="},
			{"Ne", "!="},
			{"Lt", "<"},
			{"Le", "<="},
			{"Gt", ">"},
			{"Ge", ">="},
		} {
			emitLaneLoop(buf, t, op.name+w, t.Bool.Name,
				fmt.Sprintf("boolLane[%s](v[i] %s w[i])", t.Bool.Elem, op.cmp),
				fmt.Sprintf("%s reports v[i] %s w[i] for each lane as -1 (true) or 0 (false).", op.name, op.cmp))
		}

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, "ReduceSum returns the sum of all lanes, added in index order.")
		fmt.Fprintf(buf, "func (v %s) ReduceSum() %s {\n", t.Name, t.Elem)
		fmt.Fprintf(buf, "\tvar sum %s\n", t.Elem)
		fmt.Fprintf(buf, "\tfor _, x := range v {\n")
		fmt.Fprintf(buf, "\t\tsum += x\n")
		fmt.Fprintf(buf, "\t}\n")
		fmt.Fprintf(buf, "\treturn sum\n")
		fmt.Fprintf(buf, "}\n")

		if t.IsFloat() {
			sqrt := fmt.Sprintf("sqrtF%d", t.Bits)
			emitLaneLoop(buf, t, "Sqrt()", t.Name, sqrt+"(v[i])",
				"Sqrt returns the square root of each lane.")
			emitLaneLoop(buf, t, "ApproxRSqrt()", t.Name, "1 / "+sqrt+"(v[i])",
				"ApproxRSqrt returns 1/sqrt(x) for each lane.",
				"The portable implementation is exact; callers must not rely on that.")
			emitLaneLoop(buf, t, "ApproxReciprocal()", t.Name, "1 / v[i]",
				"ApproxReciprocal returns 1/x for each lane.",
				"The portable implementation is exact; callers must not rely on that.")
		}
	}
}

// emitBitops writes bit logic, shifts and masked selects for integer and boolean types.
func emitBitops(buf *bytes.Buffer, fam *Family) {
	emitHeader(buf, fam.Package)
	for _, t := range fam.Types {
		if t.IsFloat() {
			continue
		}
		w := fmt.Sprintf("(w %s)", t.Name)

		emitLaneLoop(buf, t, "And"+w, t.Name, "v[i] & w[i]", "And returns the lane-wise bitwise AND of v and w.")
		emitLaneLoop(buf, t, "Or"+w, t.Name, "v[i] | w[i]", "Or returns the lane-wise bitwise OR of v and w.")
		emitLaneLoop(buf, t, "Xor"+w, t.Name, "v[i] ^ w[i]", "Xor returns the lane-wise bitwise XOR of v and w.")
		emitLaneLoop(buf, t, "Not()", t.Name, "^v[i]", "Not returns the bitwise complement of each lane.")

		if t.IsInteger() {
			emitLaneLoop(buf, t, "Shl(n uint)", t.Name, "v[i] << n",
				"Shl shifts every lane left by n bits.",
				fmt.Sprintf("Counts of %d or more shift every bit out and give 0.", t.Bits))
			if t.Kind == KindSigned {
				emitLaneLoop(buf, t, "Shr(n uint)", t.Name, "v[i] >> n",
					"Shr shifts every lane right by n bits, replicating the sign bit.",
					fmt.Sprintf("Counts of %d or more give 0 for non-negative lanes and -1 for negative lanes.", t.Bits))
			} else {
				emitLaneLoop(buf, t, "Shr(n uint)", t.Name, "v[i] >> n",
					"Shr shifts every lane right by n bits, filling with zeros.",
					fmt.Sprintf("Counts of %d or more give 0.", t.Bits))
			}
		}

		emitLaneLoop(buf, t, fmt.Sprintf("Select(then, els %s)", t.Name), t.Name, "blend(v[i], then[i], els[i])",
			"Select blends then and els using v as a per-bit mask: each result bit",
			"comes from then where the bit of v is set and from els where it is clear.",
			"It is a lane-wise conditional select only when every lane of v is 0 or all ones.")

		if !t.IsBool() {
			continue
		}

		for _, s := range t.Siblings {
			var expr string
			switch s.Kind {
			case KindFloat:
				expr = fmt.Sprintf("blendF%d(%s(v[i]), then[i], els[i])", s.Bits, s.UElem())
			case KindUnsigned:
				expr = fmt.Sprintf("blend(%s(v[i]), then[i], els[i])", s.Elem)
			default:
				expr = "blend(v[i], then[i], els[i])"
			}
			emitLaneLoop(buf, t, fmt.Sprintf("Select%s(then, els %s)", kindPrefix[s.Kind], s.Name), s.Name, expr,
				fmt.Sprintf("Select%s is Select for %s lanes: a per-bit blend of then and els under v.", kindPrefix[s.Kind], s.Name),
				"With v = a.Gt(b), lane i is then[i] if a[i] > b[i] and els[i] otherwise.")
		}

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, "All reports whether every lane is true (nonzero).")
		fmt.Fprintf(buf, "func (v %s) All() bool {\n", t.Name)
		fmt.Fprintf(buf, "\tfor _, x := range v {\n")
		fmt.Fprintf(buf, "\t\tif x == 0 {\n")
		fmt.Fprintf(buf, "\t\t\treturn false\n")
		fmt.Fprintf(buf, "\t\t}\n")
		fmt.Fprintf(buf, "\t}\n")
		fmt.Fprintf(buf, "\treturn true\n")
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, "Any reports whether at least one lane is true (nonzero).")
		fmt.Fprintf(buf, "func (v %s) Any() bool {\n", t.Name)
		fmt.Fprintf(buf, "\tfor _, x := range v {\n")
		fmt.Fprintf(buf, "\t\tif x != 0 {\n")
		fmt.Fprintf(buf, "\t\t\treturn true\n")
		fmt.Fprintf(buf, "\t\t}\n")
		fmt.Fprintf(buf, "\t}\n")
		fmt.Fprintf(buf, "\treturn false\n")
		fmt.Fprintf(buf, "}\n")

		fmt.Fprintf(buf, "\n")
		emitDoc(buf, "CountTrue returns the number of true (nonzero) lanes.")
		fmt.Fprintf(buf, "func (v %s) CountTrue() int {\n", t.Name)
		fmt.Fprintf(buf, "\tcount := 0\n")
		fmt.Fprintf(buf, "\tfor _, x := range v {\n")
		fmt.Fprintf(buf, "\t\tif x != 0 {\n")
		fmt.Fprintf(buf, "\t\t\tcount++\n")
		fmt.Fprintf(buf, "\t\t}\n")
		fmt.Fprintf(buf, "\t}\n")
		fmt.Fprintf(buf, "\treturn count\n")
		fmt.Fprintf(buf, "}\n")
	}
}

// conversionDoc describes the numeric rule a conversion follows.
func conversionDoc(c Conversion) []string {
	from, to := c.From, c.To
	switch {
	case from.IsBool():
		return []string{
			fmt.Sprintf("%s returns the stored value of each boolean lane as %s.", c.Method, to.Elem),
			"No normalization happens: a true lane keeps whatever nonzero value it holds.",
		}
	case from.Bits > to.Bits && from.IsFloat():
		return []string{fmt.Sprintf("%s rounds each lane to the nearest %s.", c.Method, to.Elem)}
	case from.Bits > to.Bits:
		return []string{fmt.Sprintf("%s narrows each lane to %s, keeping the low %d bits.", c.Method, to.Elem, to.Bits)}
	case from.Bits < to.Bits && from.IsFloat():
		return []string{fmt.Sprintf("%s widens each lane to %s exactly.", c.Method, to.Elem)}
	case from.Bits < to.Bits && from.Kind == KindSigned:
		return []string{fmt.Sprintf("%s sign-extends each lane to %s.", c.Method, to.Elem)}
	case from.Bits < to.Bits:
		return []string{fmt.Sprintf("%s zero-extends each lane to %s.", c.Method, to.Elem)}
	case from.IsFloat():
		return []string{
			fmt.Sprintf("%s converts each lane to %s, truncating toward zero.", c.Method, to.Elem),
			fmt.Sprintf("Lanes outside the %s range give implementation-defined results.", to.Elem),
		}
	case to.IsFloat():
		return []string{fmt.Sprintf("%s converts each lane to the nearest %s.", c.Method, to.Elem)}
	default:
		return []string{fmt.Sprintf("%s reinterprets each lane as %s (two's complement).", c.Method, to.Elem)}
	}
}

// emitConvert writes the kind and width conversions.
func emitConvert(buf *bytes.Buffer, fam *Family) {
	emitHeader(buf, fam.Package)
	for _, c := range fam.Conversions {
		emitLaneLoop(buf, c.From, c.Method+"()", c.To.Name,
			fmt.Sprintf("%s(v[i])", c.To.Elem), conversionDoc(c)...)
	}
}
