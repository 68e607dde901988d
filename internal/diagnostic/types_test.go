package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	d := &Diagnostics{}

	assert.False(t, d.HasErrors())
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("shadow", "key also matches pattern", "Status", "Port0")
	assert.False(t, d.HasErrors())
	assert.True(t, d.IsValid())

	d.AddError("bad_regex", "invalid expression", "Status", "Ports")
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_regex")
	assert.Contains(t, err.Error(), "Status")
}

func TestDiagnostics_Merge(t *testing.T) {
	a := &Diagnostics{}
	a.AddError("e1", "first", "A", "")

	b := Diagnostics{}
	b.AddError("e2", "second", "B", "")
	b.AddWarning("w1", "warn", "B", "F")
	b.AddInfo("i1", "info", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "e2", a.Errors[1].Code)
}

func TestDiagnostic_String(t *testing.T) {
	full := Diagnostic{
		Severity: DiagnosticError,
		Code:     "bad_regex",
		Message:  "invalid expression",
		Struct:   "Status",
		Field:    "Ports",
	}
	assert.Equal(t, "[Status] Ports: [bad_regex] invalid expression", full.String())

	bare := Diagnostic{Message: "just a message"}
	assert.Equal(t, "just a message", bare.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(99).String())
}
