package attr

import (
	"flatregex-generator/internal/analyze"
)

// Tag names recognized on struct fields.
const (
	// TagPattern holds the regular expression for the pattern field.
	TagPattern = "flatregex"
	// TagKeyAccess names the key access function for non-textual map keys.
	TagKeyAccess = "flatkey"
)

//go:generate go tool stringer -type=KeyKind -output=keykind_string.go

// KeyKind classifies how the generated code obtains a map key and its
// textual view from the wire key.
type KeyKind int

const (
	KeyKindInvalid KeyKind = iota

	// KeyKindString is the builtin string type; the wire key is used as-is.
	KeyKindString
	// KeyKindTextual is a named type whose underlying type is string; the
	// key is built by conversion and the wire key is the textual view.
	KeyKindTextual
	// KeyKindTextUnmarshaler builds the key via UnmarshalText; the textual
	// view for pattern matching comes from the flatkey function.
	KeyKindTextUnmarshaler
)

// StructSpec describes one annotated struct ready for generation.
type StructSpec struct {
	// Type is the analyzed struct type.
	Type *analyze.TypeInfo
	// PkgPath, PkgName and Dir locate the package the struct belongs to.
	// Generated files are written into Dir since methods must live in the
	// defining package.
	PkgPath string
	PkgName string
	Dir     string
	// Plain lists the fields matched by exact JSON key.
	Plain []PlainField
	// Pattern is the single pattern field.
	Pattern PatternField
}

// Name returns the struct's type name.
func (s *StructSpec) Name() string {
	return s.Type.ID.Name
}

// QualifiedName returns "pkgpath.Name" for diagnostics.
func (s *StructSpec) QualifiedName() string {
	return s.Type.ID.String()
}

// PlainField is a struct field identified by an exact JSON key.
type PlainField struct {
	// GoName is the Go field name.
	GoName string
	// JSONKey is the wire key (json tag name or field name).
	JSONKey string
	// Required is true when absence of the key fails deserialization.
	// Pointer fields and fields tagged omitempty tolerate absence.
	Required bool
	// Type is the analyzed field type.
	Type *analyze.TypeInfo
}

// PatternField is the single map field that absorbs keys by pattern match.
type PatternField struct {
	// GoName is the Go field name.
	GoName string
	// Pattern is the validated regular expression source.
	Pattern string
	// KeyAccess is the optional key access function name, defined in the
	// struct's own package. Empty means the wire key is matched directly.
	KeyAccess string
	// MapType is the analyzed map type of the field.
	MapType *analyze.TypeInfo
	// KeyKind classifies the map key type.
	KeyKind KeyKind
}
