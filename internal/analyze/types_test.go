package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "string", TypeID{Name: "string"}.String())
	assert.Equal(t, "pkg/path.Name", TypeID{PkgPath: "pkg/path", Name: "Name"}.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_JSONName(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"no tag", ``, "Field"},
		{"plain tag", `json:"wire_name"`, "wire_name"},
		{"tag with options", `json:"wire_name,omitempty"`, "wire_name"},
		{"options only", `json:",omitempty"`, "Field"},
		{"other tags", `yaml:"other"`, "Field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FieldInfo{Name: "Field", Tag: reflect.StructTag(tt.tag)}
			assert.Equal(t, tt.want, f.JSONName())
		})
	}
}

func TestFieldInfo_JSONSkipped(t *testing.T) {
	skipped := FieldInfo{Tag: reflect.StructTag(`json:"-"`)}
	assert.True(t, skipped.JSONSkipped())

	// "-," means the literal key "-".
	dash := FieldInfo{Tag: reflect.StructTag(`json:"-,"`)}
	assert.False(t, dash.JSONSkipped())

	named := FieldInfo{Tag: reflect.StructTag(`json:"id"`)}
	assert.False(t, named.JSONSkipped())
}

func TestFieldInfo_HasTag(t *testing.T) {
	tagged := FieldInfo{Tag: reflect.StructTag(`flatregex:"port_[0-9]+"`)}
	assert.True(t, tagged.HasTag("flatregex"))
	assert.False(t, tagged.HasTag("flatkey"))

	// An empty value still counts as a declared tag.
	empty := FieldInfo{Tag: reflect.StructTag(`flatregex:""`)}
	assert.True(t, empty.HasTag("flatregex"))

	var untagged FieldInfo
	assert.False(t, untagged.HasTag("flatregex"))
}

func TestFieldInfo_JSONOmitEmpty(t *testing.T) {
	assert.True(t, (&FieldInfo{Tag: reflect.StructTag(`json:"id,omitempty"`)}).JSONOmitEmpty())
	assert.True(t, (&FieldInfo{Tag: reflect.StructTag(`json:",omitempty"`)}).JSONOmitEmpty())
	assert.False(t, (&FieldInfo{Tag: reflect.StructTag(`json:"id"`)}).JSONOmitEmpty())
	assert.False(t, (&FieldInfo{Tag: reflect.StructTag(``)}).JSONOmitEmpty())
}

func TestTypeInfo_UnderlyingString(t *testing.T) {
	str := &TypeInfo{ID: TypeID{Name: "string"}, Kind: TypeKindBasic}
	assert.True(t, str.IsString())
	assert.True(t, str.UnderlyingString())

	named := &TypeInfo{
		ID:         TypeID{PkgPath: "p", Name: "Key"},
		Kind:       TypeKindAlias,
		Underlying: str,
	}
	assert.False(t, named.IsString())
	assert.True(t, named.UnderlyingString())

	i := &TypeInfo{ID: TypeID{Name: "int"}, Kind: TypeKindBasic}
	assert.False(t, i.UnderlyingString())
}
