// Package extract is the static-analysis front end: it walks Go source for
// handler functions and schema types marked with stonehm directives and
// populates the documentation registries from their doc comments, signatures
// and field lists.
//
// A handler is any function whose doc comment carries a //stonehm:handler
// directive; any words after the directive become the operation's tags. A
// schema type is any type declaration carrying //stonehm:schema. Directive
// lines are stripped before doc parsing.
package extract

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/melito/stonehm/registry"
	"github.com/melito/stonehm/signature"
)

const (
	handlerDirective = "stonehm:handler"
	schemaDirective  = "stonehm:schema"
)

// Config controls which packages are loaded.
type Config struct {
	// Dir is the working directory for package resolution. Empty means the
	// process working directory.
	Dir string

	// Patterns are the package patterns to load, defaulting to ["./..."].
	Patterns []string
}

// Load resolves and parses the configured packages. Syntax errors in a
// package surface as an error; extraction needs well-formed files.
func Load(cfg Config) ([]*packages.Package, error) {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	pcfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  cfg.Dir,
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("extract: load packages: %w", err)
	}
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			return nil, fmt.Errorf("extract: package %s: %v", pkg.PkgPath, perr)
		}
	}
	return pkgs, nil
}

// Populate walks every file of every package and registers the handlers and
// types found there.
func Populate(pkgs []*packages.Package, handlers *registry.Registry, typeReg *registry.TypeRegistry) error {
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			if err := PopulateFile(file, handlers, typeReg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run loads the configured packages and populates both registries.
func Run(cfg Config, handlers *registry.Registry, typeReg *registry.TypeRegistry) error {
	pkgs, err := Load(cfg)
	if err != nil {
		return err
	}
	return Populate(pkgs, handlers, typeReg)
}

// PopulateFile registers the marked handlers and types of a single parsed
// file. It is the unit Populate applies per file and is usable directly
// with files from go/parser.
func PopulateFile(file *ast.File, handlers *registry.Registry, typeReg *registry.TypeRegistry) error {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if err := extractHandler(d, handlers); err != nil {
				return err
			}
		case *ast.GenDecl:
			extractTypes(d, typeReg)
		}
	}
	return nil
}

func extractHandler(fn *ast.FuncDecl, handlers *registry.Registry) error {
	tags, ok := directive(fn.Doc, handlerDirective)
	if !ok {
		return nil
	}

	docLines := docText(fn.Doc)
	params := paramList(fn.Type.Params)
	ret := returnExpr(fn.Type.Results)

	if err := handlers.RegisterHandler(fn.Name.Name, docLines, params, ret, tags...); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	return nil
}

func extractTypes(decl *ast.GenDecl, typeReg *registry.TypeRegistry) {
	for _, s := range decl.Specs {
		ts, ok := s.(*ast.TypeSpec)
		if !ok {
			continue
		}
		// the directive may sit on the grouped decl or the spec itself
		if _, ok := directive(ts.Doc, schemaDirective); !ok {
			if _, ok := directive(decl.Doc, schemaDirective); !ok {
				continue
			}
		}
		typeReg.Register(typeDef(ts))
	}
}

func typeDef(ts *ast.TypeSpec) registry.TypeDef {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return registry.TypeDef{Name: ts.Name.Name, Kind: registry.KindOpaque}
	}

	def := registry.TypeDef{Name: ts.Name.Name, Kind: registry.KindStruct}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			// embedded fields are not modeled
			continue
		}
		token := types.ExprString(field.Type)
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			fieldName := jsonFieldName(field, name.Name)
			if fieldName == "" {
				continue
			}
			def.Fields = append(def.Fields, registry.Field{Name: fieldName, Type: token})
		}
	}
	return def
}

// jsonFieldName resolves the emitted property name from the json struct tag,
// falling back to the Go field name. A json:"-" tag drops the field.
func jsonFieldName(field *ast.Field, fallback string) string {
	if field.Tag == nil {
		return fallback
	}
	tag := strings.Trim(field.Tag.Value, "`")
	jsonTag, ok := lookupTag(tag, "json")
	if !ok {
		return fallback
	}
	name, _, _ := strings.Cut(jsonTag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return fallback
	}
	return name
}

// lookupTag is the struct-tag lookup from reflect.StructTag, inlined so the
// parser works on raw AST tag literals.
func lookupTag(tag, key string) (string, bool) {
	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		tag = tag[i:]
		if tag == "" {
			break
		}
		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}
		name := tag[:i]
		tag = tag[i+1:]

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			break
		}
		value := tag[1:i]
		tag = tag[i+1:]

		if name == key {
			return value, true
		}
	}
	return "", false
}

func paramList(fields *ast.FieldList) []signature.Param {
	if fields == nil {
		return nil
	}
	var params []signature.Param
	for _, field := range fields.List {
		expr := typeExpr(field.Type)
		if len(field.Names) == 0 {
			params = append(params, signature.Param{Type: expr})
			continue
		}
		for _, name := range field.Names {
			params = append(params, signature.Param{Binding: name.Name, Type: expr})
		}
	}
	return params
}

// returnExpr builds the return-type tree. A single result is used directly.
// Two results where the second is a concrete error type become a Result
// tree, matching the wrapper the signature extractor recognizes; a plain
// builtin error second result carries no documentable payload, so only the
// first result is kept.
func returnExpr(results *ast.FieldList) *signature.TypeExpr {
	if results == nil || len(results.List) == 0 {
		return nil
	}

	var exprs []signature.TypeExpr
	for _, field := range results.List {
		e := typeExpr(field.Type)
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for range n {
			exprs = append(exprs, e)
		}
	}

	if len(exprs) == 1 {
		return &exprs[0]
	}
	if len(exprs) == 2 {
		if exprs[1].Name == "error" && len(exprs[1].Args) == 0 {
			return &exprs[0]
		}
		return &signature.TypeExpr{Name: "Result", Args: exprs}
	}
	return &exprs[0]
}

// typeExpr converts an AST type expression to the extractor's syntactic
// tree. Shapes beyond identifiers, selectors, pointers and generic
// instantiations are flattened to their printed form.
func typeExpr(expr ast.Expr) signature.TypeExpr {
	switch e := expr.(type) {
	case *ast.Ident:
		return signature.TypeExpr{Name: e.Name}
	case *ast.SelectorExpr:
		return signature.TypeExpr{Name: types.ExprString(e.X) + "." + e.Sel.Name}
	case *ast.StarExpr:
		return signature.TypeExpr{Name: "*", Args: []signature.TypeExpr{typeExpr(e.X)}}
	case *ast.IndexExpr:
		head := typeExpr(e.X)
		head.Args = []signature.TypeExpr{typeExpr(e.Index)}
		return head
	case *ast.IndexListExpr:
		head := typeExpr(e.X)
		for _, idx := range e.Indices {
			head.Args = append(head.Args, typeExpr(idx))
		}
		return head
	default:
		return signature.TypeExpr{Name: types.ExprString(expr)}
	}
}

// directive reports whether the comment group carries the named directive
// and returns the directive's arguments.
func directive(doc *ast.CommentGroup, name string) ([]string, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if !strings.HasPrefix(text, name) {
			continue
		}
		rest := text[len(name):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return strings.Fields(rest), true
	}
	return nil, false
}

// docText returns the doc comment lines with comment markers and directive
// lines removed.
func docText(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var lines []string
	for _, c := range doc.List {
		text := c.Text
		if after, ok := strings.CutPrefix(text, "//"); ok {
			if isDirective(after) {
				continue
			}
			lines = append(lines, strings.TrimPrefix(after, " "))
			continue
		}
		// block comment
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
		for _, l := range strings.Split(text, "\n") {
			lines = append(lines, strings.TrimPrefix(strings.TrimSpace(l), "* "))
		}
	}
	return lines
}

func isDirective(text string) bool {
	return strings.HasPrefix(text, handlerDirective) || strings.HasPrefix(text, schemaDirective)
}
