// Package codegen emits the aggregate configuration, layout, and view
// types for parsed record descriptions, plus a packable adapter per
// record so records compose as dynamic-array elements.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/contig-ml/contig/internal/schema"
)

//go:embed record.tmpl
var templateFS embed.FS

var recordTemplate = template.Must(template.ParseFS(templateFS, "record.tmpl"))

// Generator emits one generated Go file per input schema file.
type Generator struct {
	pkg    string // output package name
	source string // input file name, recorded in the generated header
}

// NewGenerator creates a generator for the given output package and
// source file name.
func NewGenerator(pkg, source string) *Generator {
	return &Generator{pkg: pkg, source: source}
}

// fileModel is the template input for one generated file.
type fileModel struct {
	Package   string
	Source    string
	NeedGonum bool
	Records   []recordModel
}

type recordModel struct {
	Name   string
	Scalar string
	Fields []fieldModel
}

// fieldModel carries the fully resolved type expressions for one
// record field.
type fieldModel struct {
	Name       string // exported field name, doubles as accessor name
	Var        string // local/layout-field base name
	AdapterVar string // package-level adapter variable
	Adapter    string // adapter construction expression
	Config     string // configuration type expression
	Layout     string // layout type expression
	View       string // read-only view type expression
	MutView    string // mutable view type expression
}

// Generate renders and gofmt-formats the file for the given records.
func (g *Generator) Generate(records []*schema.Record) ([]byte, error) {
	model := fileModel{Package: g.pkg, Source: g.source}
	for _, rec := range records {
		Logger().Debug("generating record",
			zap.String("record", rec.Name),
			zap.String("scalar", rec.Scalar),
			zap.Int("fields", len(rec.Fields)))
		rm := recordModel{Name: rec.Name, Scalar: rec.Scalar}
		for _, field := range rec.Fields {
			exprs := resolveExprs(field.Type, rec.Scalar)
			if usesGonum(field.Type) {
				model.NeedGonum = true
			}
			rm.Fields = append(rm.Fields, fieldModel{
				Name:       field.Name,
				Var:        lowerFirst(field.Name),
				AdapterVar: "type" + rec.Name + field.Name,
				Adapter:    exprs.adapter,
				Config:     exprs.config,
				Layout:     exprs.layout,
				View:       exprs.view,
				MutView:    exprs.mutView,
			})
		}
		model.Records = append(model.Records, rm)
	}

	var buf bytes.Buffer
	if err := recordTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: generated code does not parse: %w", err)
	}
	return src, nil
}

// typeExprs are the Go type expressions a field type resolves to.
type typeExprs struct {
	adapter string
	config  string
	layout  string
	view    string
	mutView string
}

// resolveExprs maps a field type to its adapter and aggregate type
// expressions, recursing through dynamic-array nesting.
func resolveExprs(ft schema.FieldType, scalar string) typeExprs {
	switch ft.Kind {
	case schema.KindScalar:
		return typeExprs{
			adapter: "contig.Scalar[" + scalar + "]{}",
			config:  "struct{}",
			layout:  "contig.ScalarLayout",
			view:    "contig.ScalarView[" + scalar + "]",
			mutView: "contig.ScalarMutView[" + scalar + "]",
		}
	case schema.KindVec3:
		return typeExprs{
			adapter: "contig.Vec3[" + scalar + "]{}",
			config:  "struct{}",
			layout:  "contig.Vec3Layout",
			view:    "contig.Vec3View[" + scalar + "]",
			mutView: "contig.Vec3MutView[" + scalar + "]",
		}
	case schema.KindVector:
		return typeExprs{
			adapter: "gonum.Vector{}",
			config:  "gonum.VectorConfig",
			layout:  "gonum.VectorLayout",
			view:    "mat.Vector",
			mutView: "*mat.VecDense",
		}
	case schema.KindMatrix:
		return typeExprs{
			adapter: "gonum.Matrix{}",
			config:  "gonum.MatrixConfig",
			layout:  "gonum.MatrixLayout",
			view:    "mat.Matrix",
			mutView: "*mat.Dense",
		}
	case schema.KindRecord:
		return typeExprs{
			adapter: ft.Record + "Type{}",
			config:  ft.Record + "Config",
			layout:  ft.Record + "Layout",
			view:    ft.Record + "View",
			mutView: ft.Record + "MutView",
		}
	case schema.KindDynArray:
		elem := resolveExprs(*ft.Elem, scalar)
		args := strings.Join([]string{scalar, elem.config, elem.layout, elem.view, elem.mutView}, ", ")
		return typeExprs{
			adapter: "contig.NewDynArray(" + elem.adapter + ")",
			config:  "contig.DynArrayConfig[" + elem.config + "]",
			layout:  "contig.DynArrayLayout[" + elem.layout + "]",
			view:    "contig.DynArrayView[" + args + "]",
			mutView: "contig.DynArrayMutView[" + args + "]",
		}
	default:
		panic(fmt.Sprintf("codegen: unknown field kind %v", ft.Kind))
	}
}

func usesGonum(ft schema.FieldType) bool {
	switch ft.Kind {
	case schema.KindVector, schema.KindMatrix:
		return true
	case schema.KindDynArray:
		return usesGonum(*ft.Elem)
	default:
		return false
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
