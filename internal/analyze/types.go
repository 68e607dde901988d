package analyze

import (
	"go/types"
	"reflect"
	"slices"
	"strings"

	"flatregex-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "flatregex-generator/examples/router"
	Name    string // e.g., "RouterStatus"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindMap               // map from key type to element type
	TypeKindAlias             // named type wrapping another
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or map[K]V)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	KeyType    *TypeInfo   // For maps, the key type
	ElemType   *TypeInfo   // For pointers, slices and maps, the element type
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type (for capability checks)
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsString returns true if this type is the builtin string type.
func (t *TypeInfo) IsString() bool {
	return t.Kind == TypeKindBasic && t.ID.Name == "string"
}

// UnderlyingString returns true if this type is string, or a named type whose
// underlying type is string. Such keys have a direct textual view on the wire.
func (t *TypeInfo) UnderlyingString() bool {
	if t.IsString() {
		return true
	}

	if t.Kind == TypeKindAlias && t.Underlying != nil {
		return t.Underlying.IsString()
	}

	// Named string types from other packages come back as external; fall
	// back to go/types for those.
	if t.GoType != nil {
		if basic, ok := t.GoType.Underlying().(*types.Basic); ok {
			return basic.Kind() == types.String
		}
	}

	return false
}

// ImplementsTextUnmarshaler reports whether *T (or T) has an
// UnmarshalText([]byte) error method.
func (t *TypeInfo) ImplementsTextUnmarshaler() bool {
	if t.GoType == nil {
		return false
	}

	return hasMethod(t.GoType, "UnmarshalText", textUnmarshalerSig)
}

// textUnmarshalerSig matches func([]byte) error.
func textUnmarshalerSig(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	slice, ok := sig.Params().At(0).Type().(*types.Slice)
	if !ok {
		return false
	}

	if basic, ok := slice.Elem().(*types.Basic); !ok || basic.Kind() != types.Byte {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}

// hasMethod checks the method set of *T for a method with the given name and
// a signature accepted by match.
func hasMethod(t types.Type, name string, match func(*types.Signature) bool) bool {
	mset := types.NewMethodSet(types.NewPointer(t))
	for i := 0; i < mset.Len(); i++ {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || fn.Name() != name {
			continue
		}

		if sig, ok := fn.Type().(*types.Signature); ok && match(sig) {
			return true
		}
	}

	return false
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *FieldInfo) JSONName() string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		// Parse first part before comma
		for i := 0; i < len(tag); i++ {
			if tag[i] == ',' {
				if i == 0 {
					return f.Name
				}

				return tag[:i]
			}
		}

		return tag
	}

	return f.Name
}

// JSONSkipped returns true if the field is excluded from JSON entirely.
func (f *FieldInfo) JSONSkipped() bool {
	return f.Tag.Get("json") == "-"
}

// JSONOmitEmpty returns true if the json tag carries the omitempty option.
func (f *FieldInfo) JSONOmitEmpty() bool {
	tag := f.Tag.Get("json")

	opts := strings.Split(tag, ",")
	return slices.Contains(opts[1:], "omitempty")
}

// HasTag returns true if the field declares the tag, even with an empty
// value. An explicitly empty tag is present, not absent.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// FuncInfo describes a package-level function.
type FuncInfo struct {
	Name      string
	PkgPath   string
	Signature *types.Signature
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// GetFunc returns the FuncInfo for a package-level function, or nil.
func (g *TypeGraph) GetFunc(pkgPath, name string) *FuncInfo {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	for _, fn := range pkg.Funcs {
		if fn.Name == name {
			return fn
		}
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string      // Import path
	Name  string      // Package name
	Dir   string      // Directory holding the package's source files
	Types []TypeID    // Named types defined in this package
	Funcs []*FuncInfo // Package-level functions defined in this package
}
