package attr

import (
	"fmt"
	"go/types"
	"regexp"
	"sort"

	"flatregex-generator/internal/analyze"
	"flatregex-generator/internal/common"
	"flatregex-generator/internal/diagnostic"
)

// Scan walks the type graph and returns a StructSpec for every struct
// carrying a flatregex annotation, plus diagnostics for every malformed
// annotation. Structs without any flatregex tag are not targets and are
// skipped silently. Specs are returned in deterministic order.
func Scan(graph *analyze.TypeGraph) ([]StructSpec, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	var specs []StructSpec

	if graph == nil {
		diags.AddError("graph_is_nil", "type graph is nil", "", "")
		return nil, diags
	}

	var pkgPaths []string
	for p := range graph.Packages {
		pkgPaths = append(pkgPaths, p)
	}

	sort.Strings(pkgPaths)

	for _, pkgPath := range pkgPaths {
		pkgInfo := graph.Packages[pkgPath]

		for _, typeID := range pkgInfo.Types {
			info := graph.GetType(typeID)
			if info == nil || info.Kind != analyze.TypeKindStruct {
				continue
			}

			spec, ok := readStruct(info, pkgInfo, graph, diags)
			if ok {
				specs = append(specs, spec)
			}
		}
	}

	return specs, diags
}

// readStruct builds the StructSpec for one struct, or reports why it can't.
// The bool result is false both for non-targets and for invalid targets;
// invalid targets additionally produce error diagnostics.
func readStruct(
	info *analyze.TypeInfo,
	pkgInfo *analyze.PackageInfo,
	graph *analyze.TypeGraph,
	diags *diagnostic.Diagnostics,
) (StructSpec, bool) {
	structName := info.ID.String()

	var tagged []*analyze.FieldInfo
	for i := range info.Fields {
		if info.Fields[i].HasTag(TagPattern) {
			tagged = append(tagged, &info.Fields[i])
		}
	}

	if common.IsEmpty(tagged) {
		return StructSpec{}, false
	}

	if common.IsMultiple(tagged) {
		names := make([]string, 0, len(tagged))
		for _, f := range tagged {
			names = append(names, f.Name)
		}

		diags.AddError("pattern_duplicate_field",
			fmt.Sprintf("at most one flatregex field is allowed, found %d: %v", len(tagged), names),
			structName, "")

		return StructSpec{}, false
	}

	field := tagged[0]
	before := len(diags.Errors)

	pattern, re := validatePattern(field, structName, diags)
	keyKind := validateMapField(field, structName, diags)
	keyAccess := validateKeyAccess(field, pkgInfo, graph, keyKind, structName, diags)
	plain := collectPlainFields(info, field, re, structName, diags)

	if len(diags.Errors) > before {
		return StructSpec{}, false
	}

	return StructSpec{
		Type:    info,
		PkgPath: pkgInfo.Path,
		PkgName: pkgInfo.Name,
		Dir:     pkgInfo.Dir,
		Plain:   plain,
		Pattern: PatternField{
			GoName:    field.Name,
			Pattern:   pattern,
			KeyAccess: keyAccess,
			MapType:   field.Type,
			KeyKind:   keyKind,
		},
	}, true
}

// validatePattern checks the pattern attribute and compiles it. The compiled
// regexp is returned for shadowing checks; nil when invalid.
func validatePattern(
	field *analyze.FieldInfo,
	structName string,
	diags *diagnostic.Diagnostics,
) (string, *regexp.Regexp) {
	pattern := field.GetTag(TagPattern)
	if pattern == "" {
		diags.AddError("pattern_missing",
			"flatregex tag must carry a non-empty regular expression",
			structName, field.Name)

		return "", nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		diags.AddError("pattern_invalid_regex",
			fmt.Sprintf("invalid regular expression %q: %v", pattern, err),
			structName, field.Name)

		return pattern, nil
	}

	return pattern, re
}

// validateMapField checks that the tagged field is a map with a usable key
// type and a decodable value type, and classifies the key.
func validateMapField(
	field *analyze.FieldInfo,
	structName string,
	diags *diagnostic.Diagnostics,
) KeyKind {
	mapType := field.Type
	if mapType == nil || mapType.Kind != analyze.TypeKindMap {
		diags.AddError("pattern_not_a_map",
			fmt.Sprintf("flatregex field must be a map type, got %s", analyze.TypeString(mapType)),
			structName, field.Name)

		return KeyKindInvalid
	}

	if mapType.ElemType != nil && mapType.ElemType.Kind == analyze.TypeKindUnknown {
		diags.AddError("pattern_bad_value",
			fmt.Sprintf("map value type %s cannot be decoded from JSON", analyze.TypeString(mapType.ElemType)),
			structName, field.Name)
	}

	key := mapType.KeyType

	switch {
	case key == nil:
		diags.AddError("pattern_not_a_map", "map key type is unknown", structName, field.Name)
		return KeyKindInvalid

	case key.IsString():
		return KeyKindString

	case key.UnderlyingString():
		return KeyKindTextual

	case key.ImplementsTextUnmarshaler():
		return KeyKindTextUnmarshaler

	default:
		diags.AddError("key_not_textual",
			fmt.Sprintf("map key type %s is neither textual nor an encoding.TextUnmarshaler",
				analyze.TypeString(key)),
			structName, field.Name)

		return KeyKindInvalid
	}
}

// validateKeyAccess resolves the optional flatkey function. For
// TextUnmarshaler keys the function is mandatory since the wire key is not
// the textual view of the constructed key.
func validateKeyAccess(
	field *analyze.FieldInfo,
	pkgInfo *analyze.PackageInfo,
	graph *analyze.TypeGraph,
	keyKind KeyKind,
	structName string,
	diags *diagnostic.Diagnostics,
) string {
	name := field.GetTag(TagKeyAccess)

	if name == "" {
		if keyKind == KeyKindTextUnmarshaler {
			diags.AddError("flatkey_missing",
				"map key type has no direct textual view; declare a flatkey function",
				structName, field.Name)
		}

		return ""
	}

	fn := graph.GetFunc(pkgInfo.Path, name)
	if fn == nil {
		diags.AddError("flatkey_not_found",
			fmt.Sprintf("flatkey function %q not found in package %s", name, pkgInfo.Path),
			structName, field.Name)

		return name
	}

	if !keyAccessSignatureOK(fn, field.Type) {
		diags.AddError("flatkey_bad_signature",
			fmt.Sprintf("flatkey function %q must have signature func(*K) (string, error)", name),
			structName, field.Name)
	}

	return name
}

// keyAccessSignatureOK checks fn against func(*K) (string, error) where K is
// the map's key type. Signature details are only checked when full go/types
// information is available.
func keyAccessSignatureOK(fn *analyze.FuncInfo, mapType *analyze.TypeInfo) bool {
	sig := fn.Signature
	if sig == nil {
		return true
	}

	if sig.Params().Len() != 1 || sig.Results().Len() != 2 {
		return false
	}

	ptr, ok := sig.Params().At(0).Type().(*types.Pointer)
	if !ok {
		return false
	}

	if mapType != nil && mapType.KeyType != nil && mapType.KeyType.GoType != nil {
		if !types.Identical(ptr.Elem(), mapType.KeyType.GoType) {
			return false
		}
	}

	str, ok := sig.Results().At(0).Type().(*types.Basic)
	if !ok || str.Kind() != types.String {
		return false
	}

	return types.Identical(sig.Results().At(1).Type(), types.Universe.Lookup("error").Type())
}

// collectPlainFields gathers the exact-match fields and flags key conflicts.
// A plain key that also matches the pattern is legal (plain fields win) but
// worth a warning since the map will never see it.
func collectPlainFields(
	info *analyze.TypeInfo,
	patternField *analyze.FieldInfo,
	re *regexp.Regexp,
	structName string,
	diags *diagnostic.Diagnostics,
) []PlainField {
	var plain []PlainField

	seen := make(map[string]string) // JSON key -> Go field name

	for i := range info.Fields {
		f := &info.Fields[i]

		if f.Name == patternField.Name || f.JSONSkipped() {
			continue
		}

		if f.Embedded {
			diags.AddError("embedded_unsupported",
				fmt.Sprintf("embedded field %s is not supported on flatregex structs", f.Name),
				structName, f.Name)

			continue
		}

		key := f.JSONName()
		if prev, dup := seen[key]; dup {
			diags.AddError("plain_key_conflict",
				fmt.Sprintf("fields %s and %s both map to JSON key %q", prev, f.Name, key),
				structName, f.Name)

			continue
		}

		seen[key] = f.Name

		if re != nil && re.MatchString(key) {
			diags.AddWarning("pattern_shadows_plain",
				fmt.Sprintf("plain field key %q also matches the pattern; the plain field wins", key),
				structName, f.Name)
		}

		required := f.Type != nil && f.Type.Kind != analyze.TypeKindPointer && !f.JSONOmitEmpty()

		plain = append(plain, PlainField{
			GoName:   f.Name,
			JSONKey:  key,
			Required: required,
			Type:     f.Type,
		})
	}

	return plain
}
