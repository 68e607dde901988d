package flatregex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `RouterStatus: missing required field "id"`,
		(&MissingFieldError{Struct: "RouterStatus", Field: "id"}).Error())

	assert.Equal(t, `RouterStatus: duplicate field "id"`,
		(&DuplicateFieldError{Struct: "RouterStatus", Field: "id"}).Error())

	assert.Equal(t, "RouterStatus: expected JSON object, got [",
		(&TypeError{Struct: "RouterStatus", Got: "["}).Error())
}

func TestKeyAccessError_Unwrap(t *testing.T) {
	cause := errors.New("not valid")
	err := &KeyAccessError{Struct: "PanelStatus", Key: "led_1", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"led_1"`)
	assert.Contains(t, err.Error(), "not valid")
}
