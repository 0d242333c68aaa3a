package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const laneTable = "../../hwy/lanes.yaml"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLoadTable(t *testing.T) {
	table, err := LoadTable(laneTable)
	require.NoError(t, err)
	assert.Equal(t, "hwy", table.Package)
	assert.Len(t, table.Shapes, 9)
	assert.Equal(t, [][2]int{{32, 64}}, table.Resize)
	assert.Equal(t, Shape{Bits: 32, Lanes: 2, Kinds: []Kind{KindUnsigned, KindSigned, KindFloat}}, table.Shapes[0])
}

func TestLoadTableMissing(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read type table")
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no package", "shapes: [{bits: 32, lanes: 4, kinds: [f]}]", "package is required"},
		{"no shapes", "package: p", "no shapes"},
		{"bad width", "package: p\nshapes: [{bits: 12, lanes: 4, kinds: [u]}]", "unsupported lane width 12"},
		{"bad lanes", "package: p\nshapes: [{bits: 32, lanes: 3, kinds: [u]}]", "unsupported lane count 3"},
		{"duplicate", "package: p\nshapes: [{bits: 32, lanes: 4, kinds: [u]}, {bits: 32, lanes: 4, kinds: [i]}]", "declared twice"},
		{"no kinds", "package: p\nshapes: [{bits: 8, lanes: 16}]", "has no kinds"},
		{"small float", "package: p\nshapes: [{bits: 16, lanes: 8, kinds: [f]}]", "no 16-bit float type"},
		{"unknown kind", "package: p\nshapes: [{bits: 8, lanes: 16, kinds: [q]}]", `unknown kind "q"`},
		{"resize backwards", "package: p\nshapes: [{bits: 32, lanes: 4, kinds: [u]}]\nresize: [[64, 32]]", "narrow to wide"},
		{"unknown field", "package: p\ntypes: []", "parse type table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildFamily(t *testing.T) {
	table, err := LoadTable(laneTable)
	require.NoError(t, err)
	fam := BuildFamily(table)

	assert.Len(t, fam.Types, 32)
	assert.Len(t, fam.Numeric(), 23)
	assert.Len(t, fam.Integer(), 18)
	assert.Len(t, fam.Bools(), 9)
	assert.Len(t, fam.Conversions, 68)

	names := lo.Map(fam.Types[:4], func(vt *VecType, _ int) string { return vt.Name })
	assert.Equal(t, []string{"U32x2", "I32x2", "F32x2", "Bool32x2"}, names)

	f32x4, ok := fam.Lookup(KindFloat, 32, 4)
	require.True(t, ok)
	assert.Equal(t, "float32", f32x4.Elem)
	assert.Equal(t, "uint32", f32x4.UElem())
	require.NotNil(t, f32x4.Bool)
	assert.Equal(t, "Bool32x4", f32x4.Bool.Name)
	assert.Equal(t, "int32", f32x4.Bool.Elem)

	siblings := lo.Map(f32x4.Bool.Siblings, func(vt *VecType, _ int) string { return vt.Name })
	assert.Equal(t, []string{"U32x4", "I32x4", "F32x4"}, siblings)

	_, ok = fam.Lookup(KindFloat, 16, 8)
	assert.False(t, ok, "no 16-bit float type")
}

func TestConversionsFrom(t *testing.T) {
	table, err := LoadTable(laneTable)
	require.NoError(t, err)
	fam := BuildFamily(table)

	methods := func(kind Kind, bits, lanes int) []string {
		vt, ok := fam.Lookup(kind, bits, lanes)
		require.True(t, ok)
		return lo.Map(fam.ConversionsFrom(vt), func(c Conversion, _ int) string {
			return c.Method + "->" + c.To.Name
		})
	}

	tests := []struct {
		name  string
		kind  Kind
		bits  int
		lanes int
		want  []string
	}{
		{"F32x4", KindFloat, 32, 4, []string{"ToI->I32x4", "ToU->U32x4", "ToF64->F64x4"}},
		{"I64x2", KindSigned, 64, 2, []string{"ToU->U64x2", "ToF->F64x2", "ToI32->I32x2"}},
		{"F32x8 has no 64-bit sibling", KindFloat, 32, 8, []string{"ToI->I32x8", "ToU->U32x8"}},
		{"U8x16", KindUnsigned, 8, 16, []string{"ToI->I8x16"}},
		{"Bool16x16", KindBool, 16, 16, []string{"ToI->I16x16", "ToU->U16x16"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, methods(tt.kind, tt.bits, tt.lanes))
		})
	}
}

func TestParams(t *testing.T) {
	vt := newVecType(KindSigned, 64, 2)
	assert.Equal(t, "I64x2", vt.Name)
	assert.Equal(t, "x0, x1", vt.Params())
}

func TestGenerate(t *testing.T) {
	tmpDir := t.TempDir()
	gen := &Generator{
		ConfigFile: laneTable,
		OutputDir:  tmpDir,
		Log:        quietLogger(),
	}
	require.NoError(t, gen.Run())

	want := map[string][]string{
		"vectors.gen.go": {
			"type F32x4 [4]float32",
			"type Bool8x32 [32]int8",
			"func NewI64x2(x0, x1 int64) I64x2",
			"func LoadU8x32(src []uint8, idx int) U8x32",
			"func (v U16x8) Store(dst []uint16, idx int)",
			"func (v F64x4) Extract(idx int) float64",
			"func (v Bool32x4) Replace(idx int, x int32) Bool32x4",
		},
		"arith.gen.go": {
			"func (v F32x4) Add(w F32x4) F32x4",
			"func (v I8x32) Min(w I8x32) I8x32",
			"func (v U64x4) Lt(w U64x4) Bool64x4",
			"func (v F64x2) Sqrt() F64x2",
			"func (v U16x16) ReduceSum() uint16",
		},
		"bitops.gen.go": {
			"func (v U8x32) Shl(n uint) U8x32",
			"func (v I32x4) Select(then, els I32x4) I32x4",
			"func (v Bool32x4) SelectF(then, els F32x4) F32x4",
			"func (v Bool8x16) CountTrue() int",
		},
		"convert.gen.go": {
			"func (v F32x4) ToI() I32x4",
			"func (v F64x2) ToF32() F32x2",
			"func (v Bool16x8) ToU() U16x8",
		},
	}

	fset := token.NewFileSet()
	for name, sigs := range want {
		path := filepath.Join(tmpDir, name)
		content, err := os.ReadFile(path)
		require.NoError(t, err, "read %s", name)
		src := string(content)

		assert.True(t, strings.HasPrefix(src, "// Code generated by lanegen. DO NOT EDIT.\n"), "%s: missing generated header", name)
		file, err := parser.ParseFile(fset, path, content, parser.ParseComments)
		require.NoError(t, err, "%s does not parse", name)
		assert.Equal(t, "hwy", file.Name.Name)
		assert.Empty(t, file.Imports, "%s: generated files are import-free", name)

		for _, sig := range sigs {
			assert.Contains(t, src, sig, "%s", name)
		}
	}

	// Float types have no bit ops; bool types have no arithmetic.
	bitops, _ := os.ReadFile(filepath.Join(tmpDir, "bitops.gen.go"))
	assert.NotContains(t, string(bitops), "func (v F32x4) And(")
	arith, _ := os.ReadFile(filepath.Join(tmpDir, "arith.gen.go"))
	assert.NotContains(t, string(arith), "func (v Bool32x4) Add(")
}

func TestGenerateSmallTable(t *testing.T) {
	tmpDir := t.TempDir()
	config := filepath.Join(tmpDir, "lanes.yaml")
	require.NoError(t, os.WriteFile(config, []byte("package: lanes\nshapes:\n  - {bits: 16, lanes: 2, kinds: [i]}\n"), 0644))

	out := filepath.Join(tmpDir, "out")
	gen := &Generator{ConfigFile: config, OutputDir: out, Log: quietLogger()}
	require.NoError(t, gen.Run())

	vectors, err := os.ReadFile(filepath.Join(out, "vectors.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(vectors), "package lanes")
	assert.Contains(t, string(vectors), "type I16x2 [2]int16")
	assert.Contains(t, string(vectors), "type Bool16x2 [2]int16")
	assert.NotContains(t, string(vectors), "U16x2")

	convert, err := os.ReadFile(filepath.Join(out, "convert.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(convert), "func (v Bool16x2) ToI() I16x2")
	assert.NotContains(t, string(convert), "ToU()")
}

func TestRootCmd(t *testing.T) {
	tmpDir := t.TempDir()
	var stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", laneTable, "--output", tmpDir, "-v"})
	require.NoError(t, cmd.Execute())

	for _, out := range outputFiles {
		assert.FileExists(t, filepath.Join(tmpDir, out.name))
	}
	assert.Contains(t, stderr.String(), "expanded type table")
	assert.Contains(t, stderr.String(), "wrote file")

	cmd = newRootCmd()
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", filepath.Join(tmpDir, "missing.yaml")})
	assert.Error(t, cmd.Execute())
}
