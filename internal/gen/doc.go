// Package gen provides deterministic Go code generation for flatregex
// UnmarshalJSON methods.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Codegen patterns:
//   - Package-level compiled pattern (validated upstream, MustCompile safe)
//   - Exact-key switch over plain fields with seen-flags for duplicates
//   - Residual key routing: pattern test, decode, insert in arrival order
//   - Key construction variants (string, conversion, TextUnmarshaler)
//   - Key access function calls wrapped in KeyAccessError
//   - Required-field checks after the input is fully consumed
package gen
