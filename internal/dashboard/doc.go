// Package dashboard derives the course-administration dashboard values
// from a loaded record.Snapshot.
//
// Everything here is a pure function over in-memory collections: no I/O,
// no mutation of inputs, total over well-formed records. Malformed or
// missing optional fields degrade to documented sentinels (0, Unknown, the
// draft status) instead of failing. The engine only ever reflects the
// shape of whatever the store client last successfully returned.
//
// Foreign keys are resolved through O(1) lookup indexes built once per
// snapshot (see Indexes); reference strings are decoded exclusively via
// internal/ref.
package dashboard
