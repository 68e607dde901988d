package flatregex

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEachMember_ArrivalOrder(t *testing.T) {
	data := []byte(`{"b":1,"a":2,"c":3}`)

	var keys []string
	err := EachMember("T", data, func(key string, value json.RawMessage) error {
		keys = append(keys, key)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, keys)
}

func TestEachMember_RawValues(t *testing.T) {
	data := []byte(`{"n":1.5,"s":"x","o":{"deep":[1,2]},"a":[true,null]}`)

	got := map[string]string{}
	err := EachMember("T", data, func(key string, value json.RawMessage) error {
		got[key] = string(value)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "1.5", got["n"])
	assert.Equal(t, `"x"`, got["s"])
	assert.JSONEq(t, `{"deep":[1,2]}`, got["o"])
	assert.JSONEq(t, `[true,null]`, got["a"])
}

func TestEachMember_DuplicateKeysPassedThrough(t *testing.T) {
	data := []byte(`{"k":1,"k":2}`)

	var values []string
	err := EachMember("T", data, func(key string, value json.RawMessage) error {
		require.Equal(t, "k", key)
		values = append(values, string(value))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, values)
}

func TestEachMember_NotAnObject(t *testing.T) {
	for _, data := range []string{`[1,2]`, `"str"`, `42`, `true`, `null`} {
		err := EachMember("RouterStatus", []byte(data), func(string, json.RawMessage) error {
			t.Fatalf("callback invoked for %s", data)
			return nil
		})

		var typeErr *TypeError
		require.ErrorAs(t, err, &typeErr, "input %s", data)
		assert.Equal(t, "RouterStatus", typeErr.Struct)
	}
}

func TestEachMember_CallbackErrorAborts(t *testing.T) {
	data := []byte(`{"a":1,"b":2,"c":3}`)
	boom := errors.New("boom")

	calls := 0
	err := EachMember("T", data, func(key string, value json.RawMessage) error {
		calls++
		if key == "b" {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestEachMember_TruncatedInput(t *testing.T) {
	err := EachMember("T", []byte(`{"a":1,`), func(string, json.RawMessage) error {
		return nil
	})

	assert.Error(t, err)
}

func TestEachMember_EmptyObject(t *testing.T) {
	err := EachMember("T", []byte(`{}`), func(string, json.RawMessage) error {
		t.Fatal("callback invoked for empty object")
		return nil
	})

	assert.NoError(t, err)
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull([]byte("null")))
	assert.True(t, IsNull([]byte("  null\n")))
	assert.False(t, IsNull([]byte("{}")))
	assert.False(t, IsNull([]byte(`"null"`)))
	assert.False(t, IsNull(nil))
}
