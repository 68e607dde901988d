// Package flatregex is the runtime support library for code produced by
// flatregex-generator.
//
// Generated UnmarshalJSON methods walk a JSON object with EachMember and
// report failures through the error types defined here. The package has no
// generator-side dependencies and is the only import a consuming project
// needs at runtime.
package flatregex
