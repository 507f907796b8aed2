package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestParseBasicRecord(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record scalar=float64
type Link struct {
	Mass float64
	Pos  contig.Vec3
}

//contig:record scalar=float64
type Robot struct {
	Links   []Link    `+"`contig:\"dyn\"`"+`
	Scalars []float64 `+"`contig:\"dyn\"`"+`
}
`)

	records, pkg, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", pkg)
	require.Len(t, records, 2)

	link := records[0]
	assert.Equal(t, "Link", link.Name)
	assert.Equal(t, "float64", link.Scalar)
	require.Len(t, link.Fields, 2)
	assert.Equal(t, KindScalar, link.Fields[0].Type.Kind)
	assert.Equal(t, KindVec3, link.Fields[1].Type.Kind)

	robot := records[1]
	require.Len(t, robot.Fields, 2)
	assert.Equal(t, KindDynArray, robot.Fields[0].Type.Kind)
	assert.Equal(t, KindRecord, robot.Fields[0].Type.Elem.Kind)
	assert.Equal(t, "Link", robot.Fields[0].Type.Elem.Record)
	assert.Equal(t, KindScalar, robot.Fields[1].Type.Elem.Kind)
}

func TestParseNestedDynArray(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record
type Nested struct {
	Rows [][]float64 `+"`contig:\"dyn,elem=dyn\"`"+`
}
`)

	records, _, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rows := records[0].Fields[0].Type
	assert.Equal(t, KindDynArray, rows.Kind)
	assert.Equal(t, KindDynArray, rows.Elem.Kind)
	assert.Equal(t, KindScalar, rows.Elem.Elem.Kind)
}

func TestParseGonumFields(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record scalar=float64
type State struct {
	Q    gonum.Vector   `+"`contig:\"len\"`"+`
	Mats []gonum.Matrix `+"`contig:\"dyn,elem=shape\"`"+`
}
`)

	records, _, err := ParseFile(path)
	require.NoError(t, err)

	fields := records[0].Fields
	assert.Equal(t, KindVector, fields[0].Type.Kind)
	assert.Equal(t, KindDynArray, fields[1].Type.Kind)
	assert.Equal(t, KindMatrix, fields[1].Type.Elem.Kind)
}

func TestRejectElemOnlyDynamic(t *testing.T) {
	// A fixed-size array of runtime-sized elements has no home in
	// the layout contract.
	path := writeSource(t, `package demo

//contig:record
type Bad struct {
	Coeffs [3]gonum.Vector `+"`contig:\"elem=len\"`"+`
}
`)

	_, _, err := ParseFile(path)
	assert.ErrorIs(t, err, ErrElemOnlyDynamic)
}

func TestRejectElemFlagWithoutDyn(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record
type Bad struct {
	V gonum.Vector `+"`contig:\"elem=len\"`"+`
}
`)

	_, _, err := ParseFile(path)
	assert.ErrorIs(t, err, ErrElemOnlyDynamic)
}

func TestRejectMissingDynFlag(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record
type Bad struct {
	Scalars []float64
}
`)

	_, _, err := ParseFile(path)
	assert.ErrorContains(t, err, `require the contig:"dyn" flag`)
}

func TestRejectScalarMismatch(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record scalar=float32
type Bad struct {
	Mass float64
}
`)

	_, _, err := ParseFile(path)
	assert.ErrorContains(t, err, "does not match record scalar")
}

func TestRejectUnknownRecord(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record
type Robot struct {
	Links []Link `+"`contig:\"dyn\"`"+`
}
`)

	_, _, err := ParseFile(path)
	assert.ErrorContains(t, err, "unknown record type Link")
}

func TestRejectRecordCycle(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record
type A struct {
	Bs []B `+"`contig:\"dyn\"`"+`
}

//contig:record
type B struct {
	As []A `+"`contig:\"dyn\"`"+`
}
`)

	_, _, err := ParseFile(path)
	assert.ErrorContains(t, err, "record cycle")
}

func TestRejectGonumWithFloat32(t *testing.T) {
	path := writeSource(t, `package demo

//contig:record scalar=float32
type Bad struct {
	Q gonum.Vector `+"`contig:\"len\"`"+`
}
`)

	_, _, err := ParseFile(path)
	assert.ErrorContains(t, err, "gonum adapters pack float64")
}

func TestNonRecordTypesIgnored(t *testing.T) {
	path := writeSource(t, `package demo

type Plain struct {
	X int
}

//contig:record
type Rec struct {
	Mass float64
}
`)

	records, _, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Rec", records[0].Name)
}

func TestLoadOptionalConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOptional(filepath.Join(dir, "contiggen.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "records_contig.go"), cfg.OutputPath(filepath.Join(dir, "records.go")))

	path := filepath.Join(dir, "contiggen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: gen.go\npackage: robots\n"), 0o644))

	cfg, err = LoadOptional(path)
	require.NoError(t, err)
	assert.Equal(t, "robots", cfg.Package)
	assert.Equal(t, filepath.Join(dir, "gen.go"), cfg.OutputPath(filepath.Join(dir, "records.go")))
}

func TestCheckModule(t *testing.T) {
	dir := t.TempDir()
	gomod := filepath.Join(dir, "go.mod")

	require.NoError(t, os.WriteFile(gomod, []byte("module example.com/robots\n\ngo 1.25\n\nrequire github.com/contig-ml/contig v0.1.0\n"), 0o644))
	assert.NoError(t, CheckModule(dir))

	require.NoError(t, os.WriteFile(gomod, []byte("module example.com/robots\n\ngo 1.25\n"), 0o644))
	assert.ErrorContains(t, CheckModule(dir), "does not require")
}
