// Package schema parses annotated record descriptions for the
// contiggen generator.
//
// A record is a Go struct whose declaration carries a
// "//contig:record" directive. Field tags flag runtime sizing:
//
//	//contig:record scalar=float64
//	type Robot struct {
//		Links   []Link    `contig:"dyn"`
//		Scalars []float64 `contig:"dyn"`
//	}
//
// Recognized field types are the record scalar itself, contig.Vec3,
// gonum.Vector, gonum.Matrix, slices of any recognized type, and
// other records declared in the same file.
package schema

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
)

// Directive marks a struct as a packable record description.
const Directive = "contig:record"

// ErrElemOnlyDynamic reports a field whose element is flagged as
// runtime-sized without the field itself being dynamic. The layout
// contract has no home for per-element sizing under a statically
// sized parent, so such fields are rejected outright.
var ErrElemOnlyDynamic = errors.New("schema: element-only dynamic sizing without a dynamic parent is unsupported")

// Kind identifies the packable adapter a field maps to.
type Kind int

const (
	KindScalar Kind = iota
	KindVec3
	KindDynArray
	KindVector
	KindMatrix
	KindRecord
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVec3:
		return "vec3"
	case KindDynArray:
		return "dynarray"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// FieldType is the recursive type of a record field.
type FieldType struct {
	Kind   Kind
	Elem   *FieldType // element type when Kind == KindDynArray
	Record string     // record name when Kind == KindRecord
}

// Dynamic reports whether the type carries runtime sizing anywhere.
func (t FieldType) Dynamic() bool {
	switch t.Kind {
	case KindDynArray, KindVector, KindMatrix, KindRecord:
		return true
	default:
		return false
	}
}

// Field is one named record field.
type Field struct {
	Name string
	Type FieldType
}

// Record is one parsed record description.
type Record struct {
	Name   string
	Scalar string // "float32" or "float64"
	Fields []Field
}

// flags is the parsed form of a contig struct tag.
type flags struct {
	dyn   bool   // field has a runtime element count
	ln    bool   // field has a runtime length (gonum vector)
	shape bool   // field has a runtime shape (gonum matrix)
	elem  string // element flag: "dyn", "len", or "shape"
}

// parseFlags parses a contig:"..." tag value into its flags.
func parseFlags(tag string) (flags, error) {
	var f flags
	if tag == "" {
		return f, nil
	}
	for _, part := range strings.Split(tag, ",") {
		switch {
		case part == "dyn":
			f.dyn = true
		case part == "len":
			f.ln = true
		case part == "shape":
			f.shape = true
		case strings.HasPrefix(part, "elem="):
			f.elem = strings.TrimPrefix(part, "elem=")
			if f.elem != "dyn" && f.elem != "len" && f.elem != "shape" {
				return f, fmt.Errorf("schema: unknown element flag %q", f.elem)
			}
		default:
			return f, fmt.Errorf("schema: unknown flag %q", part)
		}
	}
	return f, nil
}

// ParseFile parses a Go source file and returns every record
// description it declares, in declaration order, along with the
// file's package name.
func ParseFile(filename string) ([]*Record, string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, "", fmt.Errorf("schema: %w", err)
	}

	records, err := extractRecords(file)
	if err != nil {
		return nil, "", err
	}
	if err := resolve(records); err != nil {
		return nil, "", err
	}
	return records, file.Name.Name, nil
}

func extractRecords(file *ast.File) ([]*Record, error) {
	var records []*Record

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		scalar, found, err := findDirective(genDecl.Doc)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("schema: %s directive on non-struct type %s", Directive, typeSpec.Name.Name)
			}

			rec := &Record{Name: typeSpec.Name.Name, Scalar: scalar}
			for _, field := range structType.Fields.List {
				if len(field.Names) == 0 {
					return nil, fmt.Errorf("schema: record %s has an embedded field; records need named fields", rec.Name)
				}
				fl, err := parseFieldFlags(field)
				if err != nil {
					return nil, fmt.Errorf("schema: record %s: %w", rec.Name, err)
				}
				ft, err := parseFieldType(field.Type, scalar)
				if err != nil {
					return nil, fmt.Errorf("schema: record %s field %s: %w", rec.Name, field.Names[0].Name, err)
				}
				if err := checkFlags(fl, ft); err != nil {
					return nil, fmt.Errorf("schema: record %s field %s: %w", rec.Name, field.Names[0].Name, err)
				}
				for _, name := range field.Names {
					rec.Fields = append(rec.Fields, Field{Name: name.Name, Type: ft})
				}
			}
			records = append(records, rec)
		}
	}

	return records, nil
}

// findDirective scans a declaration's doc comment for the
// contig:record directive and returns the declared scalar type,
// defaulting to float64.
func findDirective(doc *ast.CommentGroup) (scalar string, found bool, err error) {
	if doc == nil {
		return "", false, nil
	}
	for _, comment := range doc.List {
		text := strings.TrimPrefix(comment.Text, "//")
		if !strings.HasPrefix(text, Directive) {
			continue
		}
		scalar = "float64"
		for _, param := range strings.Fields(text)[1:] {
			k, v, ok := strings.Cut(param, "=")
			if ok && k == "scalar" {
				scalar = v
			}
		}
		if scalar != "float32" && scalar != "float64" {
			return "", false, fmt.Errorf("schema: unsupported scalar type %q", scalar)
		}
		return scalar, true, nil
	}
	return "", false, nil
}

func parseFieldFlags(field *ast.Field) (flags, error) {
	if field.Tag == nil {
		return flags{}, nil
	}
	tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	return parseFlags(tag.Get("contig"))
}

// parseFieldType maps an AST type expression to a FieldType.
func parseFieldType(expr ast.Expr, scalar string) (FieldType, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if t.Name == "float32" || t.Name == "float64" {
			if t.Name != scalar {
				return FieldType{}, fmt.Errorf("scalar type %s does not match record scalar %s", t.Name, scalar)
			}
			return FieldType{Kind: KindScalar}, nil
		}
		// Another record in the same file; resolved after parsing.
		return FieldType{Kind: KindRecord, Record: t.Name}, nil

	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return FieldType{}, fmt.Errorf("unsupported field type")
		}
		switch pkg.Name + "." + t.Sel.Name {
		case "contig.Vec3":
			return FieldType{Kind: KindVec3}, nil
		case "gonum.Vector":
			return FieldType{Kind: KindVector}, nil
		case "gonum.Matrix":
			return FieldType{Kind: KindMatrix}, nil
		}
		return FieldType{}, fmt.Errorf("unsupported field type %s.%s", pkg.Name, t.Sel.Name)

	case *ast.IndexExpr:
		// Instantiated generic such as contig.Vec3[float64].
		return parseFieldType(t.X, scalar)

	case *ast.ArrayType:
		if t.Len != nil {
			// A fixed-size array would need per-element runtime sizing
			// under a statically sized parent.
			return FieldType{}, ErrElemOnlyDynamic
		}
		elem, err := parseFieldType(t.Elt, scalar)
		if err != nil {
			return FieldType{}, err
		}
		return FieldType{Kind: KindDynArray, Elem: &elem}, nil
	}

	return FieldType{}, fmt.Errorf("unsupported field type")
}

// checkFlags validates the declared sizing flags against the field's
// type structure, mirroring the explicit flag model of the record
// directive: dynamic sizing must be declared, and declarations must
// match the type.
func checkFlags(fl flags, ft FieldType) error {
	if fl.elem != "" && !fl.dyn {
		return ErrElemOnlyDynamic
	}

	switch ft.Kind {
	case KindDynArray:
		if !fl.dyn {
			return errors.New(`slice fields require the contig:"dyn" flag`)
		}
		return checkElemFlag(fl.elem, *ft.Elem)
	case KindVector:
		if !fl.ln {
			return errors.New(`gonum.Vector fields require the contig:"len" flag`)
		}
	case KindMatrix:
		if !fl.shape {
			return errors.New(`gonum.Matrix fields require the contig:"shape" flag`)
		}
	default:
		if fl.dyn || fl.ln || fl.shape {
			return fmt.Errorf("%s field carries a runtime sizing flag but is statically sized", ft.Kind)
		}
	}
	return nil
}

func checkElemFlag(elem string, et FieldType) error {
	switch et.Kind {
	case KindDynArray:
		if elem != "dyn" {
			return errors.New(`slice-of-slice fields require the contig:"dyn,elem=dyn" flag`)
		}
	case KindVector:
		if elem != "len" {
			return errors.New(`slices of gonum.Vector require the contig:"dyn,elem=len" flag`)
		}
	case KindMatrix:
		if elem != "shape" {
			return errors.New(`slices of gonum.Matrix require the contig:"dyn,elem=shape" flag`)
		}
	default:
		if elem != "" {
			return fmt.Errorf("element flag %q does not match %s element", elem, et.Kind)
		}
	}
	return nil
}

// resolve checks record references: every referenced record must be
// declared in the same file with the same scalar, gonum adapters are
// float64 only, and records must not contain themselves.
func resolve(records []*Record) error {
	byName := make(map[string]*Record, len(records))
	for _, rec := range records {
		if byName[rec.Name] != nil {
			return fmt.Errorf("schema: record %s declared twice", rec.Name)
		}
		byName[rec.Name] = rec
	}

	for _, rec := range records {
		for _, field := range rec.Fields {
			if err := resolveType(field.Type, rec, byName, map[string]bool{rec.Name: true}); err != nil {
				return fmt.Errorf("schema: record %s field %s: %w", rec.Name, field.Name, err)
			}
		}
	}
	return nil
}

func resolveType(ft FieldType, rec *Record, byName map[string]*Record, seen map[string]bool) error {
	switch ft.Kind {
	case KindVector, KindMatrix:
		if rec.Scalar != "float64" {
			return fmt.Errorf("gonum adapters pack float64 buffers, record scalar is %s", rec.Scalar)
		}
	case KindDynArray:
		return resolveType(*ft.Elem, rec, byName, seen)
	case KindRecord:
		ref := byName[ft.Record]
		if ref == nil {
			return fmt.Errorf("unknown record type %s", ft.Record)
		}
		if ref.Scalar != rec.Scalar {
			return fmt.Errorf("record %s packs %s buffers, record %s packs %s", ft.Record, ref.Scalar, rec.Name, rec.Scalar)
		}
		if seen[ft.Record] {
			return fmt.Errorf("record cycle through %s", ft.Record)
		}
		seen[ft.Record] = true
		for _, field := range ref.Fields {
			if err := resolveType(field.Type, ref, byName, seen); err != nil {
				return err
			}
		}
		delete(seen, ft.Record)
	}
	return nil
}
