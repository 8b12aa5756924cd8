// Package spec defines the OpenAPI 3.0 document model produced by stonehm.
//
// The types here mirror the OpenAPI object model directly: a Document holds
// Info, Paths, and Components; a PathItem holds one Operation per HTTP method;
// Operations reference reusable Schemas through "#/components/schemas/" refs.
// Every type carries yaml and json struct tags so a Document serializes to
// either format without translation.
//
// Documents are plain data. Construction and aggregation live in the builder
// package; this package only adds deep copying (for consistent snapshots of a
// document that is still being assembled) and serialization helpers.
package spec
