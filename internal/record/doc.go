// Package record defines the typed domain entities held in the remote
// record store and the in-memory snapshot the dashboard derives from.
//
// The store itself is schemaless: every record is a bag of named fields
// plus store-assigned metadata (_id, _created, _changed). This package pins
// that bag down to one explicit struct per entity. Absent, null, and empty
// string are a single "no value" case for all derived logic, so optional
// string fields are plain strings and only the paid flag, where absence
// matters separately from false at display time, is a pointer.
//
// record imports nothing internal. Type definitions live here so that
// store, dashboard, and cli can all share them without cycles.
package record
