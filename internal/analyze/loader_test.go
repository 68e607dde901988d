package analyze

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portsPkg = "flatregex-generator/examples/ports"

func loadPorts(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(portsPkg)
	require.NoError(t, err)

	return graph
}

func TestLoadPackages_PackageInfo(t *testing.T) {
	graph := loadPorts(t)

	pkg, ok := graph.Packages[portsPkg]
	require.True(t, ok, spew.Sdump(graph.Packages))

	assert.Equal(t, "ports", pkg.Name)
	assert.Equal(t, "ports", filepath.Base(pkg.Dir))
	assert.NotEmpty(t, pkg.Types)
}

func TestLoadPackages_StructFields(t *testing.T) {
	graph := loadPorts(t)

	info := graph.GetType(TypeID{PkgPath: portsPkg, Name: "PanelStatus"})
	require.NotNil(t, info)
	assert.Equal(t, TypeKindStruct, info.Kind)

	require.Len(t, info.Fields, 2)

	model := info.Fields[0]
	assert.Equal(t, "Model", model.Name)
	assert.Equal(t, "model", model.JSONName())
	assert.True(t, model.Type.IsString())

	leds := info.Fields[1]
	assert.Equal(t, "Leds", leds.Name)
	assert.Equal(t, "led_[0-9]+", leds.GetTag("flatregex"))
	assert.Equal(t, "RawKeyText", leds.GetTag("flatkey"))
	require.Equal(t, TypeKindMap, leds.Type.Kind)
	assert.Equal(t, "RawKey", leds.Type.KeyType.ID.Name)
}

func TestLoadPackages_NamedStringKey(t *testing.T) {
	graph := loadPorts(t)

	info := graph.GetType(TypeID{PkgPath: portsPkg, Name: "RawKey"})
	require.NotNil(t, info)

	assert.Equal(t, TypeKindAlias, info.Kind)
	assert.False(t, info.IsString())
	assert.True(t, info.UnderlyingString())
}

func TestLoadPackages_TextUnmarshalerDetection(t *testing.T) {
	graph := loadPorts(t)

	portID := graph.GetType(TypeID{PkgPath: portsPkg, Name: "PortID"})
	require.NotNil(t, portID)
	assert.Equal(t, TypeKindStruct, portID.Kind)
	assert.True(t, portID.ImplementsTextUnmarshaler())

	rawKey := graph.GetType(TypeID{PkgPath: portsPkg, Name: "RawKey"})
	require.NotNil(t, rawKey)
	assert.False(t, rawKey.ImplementsTextUnmarshaler())
}

func TestLoadPackages_PackageFuncs(t *testing.T) {
	graph := loadPorts(t)

	fn := graph.GetFunc(portsPkg, "RawKeyText")
	require.NotNil(t, fn)
	require.NotNil(t, fn.Signature)
	assert.Equal(t, 1, fn.Signature.Params().Len())
	assert.Equal(t, 2, fn.Signature.Results().Len())

	require.NotNil(t, graph.GetFunc(portsPkg, "PortIDText"))

	// Methods are not package-level functions.
	assert.Nil(t, graph.GetFunc(portsPkg, "UnmarshalText"))
	assert.Nil(t, graph.GetFunc(portsPkg, "UnmarshalJSON"))
}

func TestLoadPackages_BadPattern(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("flatregex-generator/does/not/exist")
	assert.Error(t, err)
}
