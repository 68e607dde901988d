// Package diagnostic provides structured errors and warnings for the
// flatregex generator.
//
// Key capabilities:
//   - Definition errors (bad pattern, wrong field type, missing key access fn)
//   - Warnings for suspicious but generatable annotations
//   - Struct/field context on every message for precise reporting
package diagnostic
