package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlicePredicates(t *testing.T) {
	var empty []int
	one := []string{"a"}
	many := []int{1, 2, 3}

	assert.True(t, IsEmpty(empty))
	assert.False(t, IsEmpty(one))

	assert.True(t, IsMultiple(many))
	assert.False(t, IsMultiple(one))
	assert.False(t, IsMultiple(empty))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	z, ok := First([]int(nil))
	assert.False(t, ok)
	assert.Zero(t, z)
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "packages", PkgAlias("golang.org/x/tools/go/packages"))
	assert.Equal(t, "time", PkgAlias("time"))
}
