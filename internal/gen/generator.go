package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"flatregex-generator/internal/analyze"
	"flatregex-generator/internal/attr"
	"flatregex-generator/internal/common"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the lowercased struct name to form the
	// generated filename (before ".go").
	Suffix string
	// RuntimeImport is the import path of the flatregex runtime package.
	RuntimeImport string
	// GenerateComments enables explanatory comments on generated methods.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           "_flatregex",
		RuntimeImport:    "flatregex-generator/flatregex",
		GenerateComments: true,
	}
}

// Generator generates UnmarshalJSON methods from annotated struct specs.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph

	// contextPkgPath is the package path currently being generated into.
	// Types from that package are referenced without a qualifier.
	contextPkgPath string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in (the struct's package dir).
	Dir string
	// Filename is the name of the file (e.g., "routerstatus_flatregex.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per annotated struct.
func (g *Generator) Generate(graph *analyze.TypeGraph, specs []attr.StructSpec) ([]GeneratedFile, error) {
	g.graph = graph

	var files []GeneratedFile

	for i := range specs {
		file, err := g.generateStruct(&specs[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", specs[i].QualifiedName(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateStruct generates the UnmarshalJSON file for a single struct.
func (g *Generator) generateStruct(spec *attr.StructSpec) (*GeneratedFile, error) {
	g.contextPkgPath = spec.PkgPath

	data := g.buildTemplateData(spec)

	var buf bytes.Buffer
	if err := unmarshalTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		// This is intentionally non-fatal for the write attempt.
		if spec.Dir != "" {
			_ = writeDebugUnformatted(spec.Dir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Dir:      spec.Dir,
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      spec.Dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the unmarshal template.
type templateData struct {
	PackageName      string
	Filename         string
	StdImports       []importSpec
	Imports          []importSpec
	StructName       string
	PatternVar       string
	PatternLit       string
	PatternFieldName string
	MapMake          string
	Plain            []plainData
	ResidualBody     string
	GenerateComments bool
}

// plainData describes one exact-match field in the template.
type plainData struct {
	GoName  string
	KeyLit  string
	SeenVar string

	Required bool
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// buildTemplateData constructs the template data for one struct spec.
func (g *Generator) buildTemplateData(spec *attr.StructSpec) *templateData {
	imports := map[string]importSpec{
		"encoding/json":        {Path: "encoding/json"},
		"regexp":               {Path: "regexp"},
		g.config.RuntimeImport: {Path: g.config.RuntimeImport},
	}

	data := &templateData{
		PackageName:      spec.PkgName,
		Filename:         g.filename(spec),
		StructName:       spec.Name(),
		PatternVar:       "flatregex" + spec.Name() + "Pattern",
		PatternLit:       patternLiteral(spec.Pattern.Pattern),
		PatternFieldName: spec.Pattern.GoName,
		MapMake:          g.mapMakeExpr(spec.Pattern.MapType, imports),
		GenerateComments: g.config.GenerateComments,
	}

	for _, f := range spec.Plain {
		data.Plain = append(data.Plain, plainData{
			GoName:   f.GoName,
			KeyLit:   strconv.Quote(f.JSONKey),
			SeenVar:  "seen" + f.GoName,
			Required: f.Required,
		})
	}

	data.ResidualBody = g.buildResidualBody(spec, data.PatternVar, imports)

	// Convert imports map to sorted slices, stdlib first as gofmt groups them
	for _, imp := range imports {
		if g.stdImport(imp.Path) {
			data.StdImports = append(data.StdImports, imp)
		} else {
			data.Imports = append(data.Imports, imp)
		}
	}

	sort.Slice(data.StdImports, func(i, j int) bool {
		return data.StdImports[i].Path < data.StdImports[j].Path
	})
	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

// stdImport reports whether the path looks like a standard library package:
// not the runtime package, not an analyzed module package, and no dot in
// the first path element.
func (g *Generator) stdImport(path string) bool {
	if path == g.config.RuntimeImport {
		return false
	}

	if g.graph != nil {
		if _, ok := g.graph.Packages[path]; ok {
			return false
		}
	}

	first := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		first = path[:i]
	}

	return !strings.Contains(first, ".")
}

// buildResidualBody renders the closure tail that routes keys not matching
// any plain field: key construction, textual view, pattern test, decode,
// insert. Lines are indented for the closure body (two tabs).
func (g *Generator) buildResidualBody(
	spec *attr.StructSpec,
	patternVar string,
	imports map[string]importSpec,
) string {
	mapType := spec.Pattern.MapType
	field := "v." + spec.Pattern.GoName
	structLit := strconv.Quote(spec.Name())
	valType := g.typeRefString(mapType.ElemType, imports)
	keyType := g.typeRefString(mapType.KeyType, imports)

	var b strings.Builder

	keyExpr := "key"

	switch {
	case spec.Pattern.KeyAccess == "":
		// Direct view: the wire key is the text to match.
		fmt.Fprintf(&b, "if !%s.MatchString(key) {\n", patternVar)
		b.WriteString("\t\t\treturn nil\n")
		b.WriteString("\t\t}\n\n")

		if spec.Pattern.KeyKind == attr.KeyKindTextual {
			keyExpr = keyType + "(key)"
		}

	case spec.Pattern.KeyKind == attr.KeyKindTextUnmarshaler:
		fmt.Fprintf(&b, "var mk %s\n", keyType)
		b.WriteString("\t\tif kerr := mk.UnmarshalText([]byte(key)); kerr != nil {\n")
		fmt.Fprintf(&b, "\t\t\treturn &flatregex.KeyAccessError{Struct: %s, Key: key, Err: kerr}\n", structLit)
		b.WriteString("\t\t}\n\n")

		g.writeKeyAccessMatch(&b, spec, patternVar, structLit)

		keyExpr = "mk"

	default:
		// Textual key with an explicit key access override.
		fmt.Fprintf(&b, "mk := %s(key)\n\n", keyType)

		g.writeKeyAccessMatch(&b, spec, patternVar, structLit)

		keyExpr = "mk"
	}

	fmt.Fprintf(&b, "\t\tvar elem %s\n", valType)
	b.WriteString("\t\tif err := json.Unmarshal(value, &elem); err != nil {\n")
	b.WriteString("\t\t\treturn err\n")
	b.WriteString("\t\t}\n")
	fmt.Fprintf(&b, "\t\t%s[%s] = elem\n\n", field, keyExpr)
	b.WriteString("\t\treturn nil")

	return b.String()
}

// writeKeyAccessMatch emits the key access call and pattern test for keys
// that need an explicit textual view.
func (g *Generator) writeKeyAccessMatch(
	b *strings.Builder,
	spec *attr.StructSpec,
	patternVar, structLit string,
) {
	fmt.Fprintf(b, "\t\tkeyText, kerr := %s(&mk)\n", spec.Pattern.KeyAccess)
	b.WriteString("\t\tif kerr != nil {\n")
	fmt.Fprintf(b, "\t\t\treturn &flatregex.KeyAccessError{Struct: %s, Key: key, Err: kerr}\n", structLit)
	b.WriteString("\t\t}\n\n")
	fmt.Fprintf(b, "\t\tif !%s.MatchString(keyText) {\n", patternVar)
	b.WriteString("\t\t\treturn nil\n")
	b.WriteString("\t\t}\n\n")
}

// mapMakeExpr renders the expression that resets the pattern field to a
// fresh empty container.
func (g *Generator) mapMakeExpr(mapType *analyze.TypeInfo, imports map[string]importSpec) string {
	if mapType.IsNamed() {
		return "make(" + g.typeRefString(mapType, imports) + ")"
	}

	key := g.typeRefString(mapType.KeyType, imports)
	val := g.typeRefString(mapType.ElemType, imports)

	return "make(map[" + key + "]" + val + ")"
}

// patternLiteral renders the pattern as a Go string literal, preferring a
// raw literal so character classes stay readable.
func patternLiteral(pattern string) string {
	if !strings.Contains(pattern, "`") {
		return "`" + pattern + "`"
	}

	return strconv.Quote(pattern)
}

// getPkgName returns the package name for a given package path.
// It tries to look up the name from the type graph, falling back to the path base alias.
func (g *Generator) getPkgName(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	if g.graph != nil {
		if pkgInfo, ok := g.graph.Packages[pkgPath]; ok {
			return pkgInfo.Name
		}
	}

	return common.PkgAlias(pkgPath)
}

func (g *Generator) filename(spec *attr.StructSpec) string {
	return strings.ToLower(spec.Name()) + g.config.Suffix + ".go"
}

func (g *Generator) addImport(imports map[string]importSpec, pkgPath string) {
	if pkgPath == "" {
		return
	}

	imports[pkgPath] = importSpec{
		Alias: g.getPkgName(pkgPath),
		Path:  pkgPath,
	}
}

// typeRefString renders a type reference valid inside the package being
// generated into, registering imports for cross-package types.
func (g *Generator) typeRefString(t *analyze.TypeInfo, imports map[string]importSpec) string {
	if t == nil {
		return "any"
	}

	switch t.Kind {
	case analyze.TypeKindBasic:
		return t.ID.Name

	case analyze.TypeKindPointer:
		return "*" + g.typeRefString(t.ElemType, imports)

	case analyze.TypeKindSlice:
		return "[]" + g.typeRefString(t.ElemType, imports)

	case analyze.TypeKindMap:
		if t.IsNamed() {
			return g.qualifiedName(t, imports)
		}

		key := g.typeRefString(t.KeyType, imports)
		val := g.typeRefString(t.ElemType, imports)

		return "map[" + key + "]" + val

	case analyze.TypeKindStruct, analyze.TypeKindExternal, analyze.TypeKindAlias:
		if t.IsNamed() {
			return g.qualifiedName(t, imports)
		}

		if t.Kind == analyze.TypeKindAlias && t.Underlying != nil {
			return g.typeRefString(t.Underlying, imports)
		}

		return "any"

	default:
		return "any"
	}
}

// qualifiedName renders a named type, omitting the qualifier for types from
// the package being generated into.
func (g *Generator) qualifiedName(t *analyze.TypeInfo, imports map[string]importSpec) string {
	if t.ID.PkgPath == "" || t.ID.PkgPath == g.contextPkgPath {
		return t.ID.Name
	}

	g.addImport(imports, t.ID.PkgPath)

	return g.getPkgName(t.ID.PkgPath) + "." + t.ID.Name
}

// Template for the generated file

var unmarshalTemplate = template.Must(template.New("unmarshal").Parse(`// Code generated by flatregex-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .StdImports}}	"{{.Path}}"
{{end}}
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

var {{.PatternVar}} = regexp.MustCompile({{.PatternLit}})

{{if .GenerateComments}}// UnmarshalJSON decodes a JSON object into {{.StructName}}. Known keys are
// assigned to their fields; residual keys matching {{.PatternLit}} are
// collected into {{.PatternFieldName}}; all other keys are discarded.
{{end}}func (v *{{.StructName}}) UnmarshalJSON(data []byte) error {
	if flatregex.IsNull(data) {
		return nil
	}
{{if .Plain}}
	var (
{{range .Plain}}		{{.SeenVar}} bool
{{end}}	)
{{end}}
	v.{{.PatternFieldName}} = {{.MapMake}}

	err := flatregex.EachMember("{{.StructName}}", data, func(key string, value json.RawMessage) error {
{{if .Plain}}		switch key {
{{range .Plain}}		case {{.KeyLit}}:
			if {{.SeenVar}} {
				return &flatregex.DuplicateFieldError{Struct: "{{$.StructName}}", Field: {{.KeyLit}}}
			}
			{{.SeenVar}} = true

			return json.Unmarshal(value, &v.{{.GoName}})
{{end}}		}

{{end}}		{{.ResidualBody}}
	})
	if err != nil {
		return err
	}
{{range .Plain}}{{if .Required}}
	if !{{.SeenVar}} {
		return &flatregex.MissingFieldError{Struct: "{{$.StructName}}", Field: {{.KeyLit}}}
	}
{{end}}{{end}}
	return nil
}
`))
