// Package analyze loads Go packages and builds the type graph consumed by
// the annotation reader and the generator.
//
// It wraps golang.org/x/tools/go/packages and flattens go/types information
// into TypeInfo values: struct fields with raw tags, map key/value types,
// and package-level function signatures (used to validate flatkey
// functions).
package analyze
