// Package attr reads and validates flatregex struct-tag annotations.
//
// A target struct carries exactly one map-typed field tagged with
// `flatregex:"<pattern>"`, optionally paired with `flatkey:"<FuncName>"`
// when the map key type has no direct textual view. Package attr turns the
// analyzed type graph into StructSpec values for the generator, rejecting
// malformed annotations through the diagnostic package.
//
// Validation rules:
//   - at most one flatregex field per struct (more is an error)
//   - the pattern must be non-empty and compile as an RE2 regexp
//   - the tagged field must be a map type
//   - the map key must be textual (string or named string type), implement
//     encoding.TextUnmarshaler with a flatkey function, or be rejected
//   - a flatkey function must exist in the same package with signature
//     func(*K) (string, error)
package attr
