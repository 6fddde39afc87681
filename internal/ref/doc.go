// Package ref encodes and decodes cross-collection reference strings.
//
// The backing record store has no native relations. A foreign key is stored
// as a full URL whose path names the target collection and whose final
// segment is the referenced record identifier, a 24-character lowercase
// hexadecimal token.
//
// This package is the only place reference strings are parsed or built.
// All other internal packages resolve foreign keys through Decode; none of
// them may parse a reference ad hoc. ref imports nothing internal, keeping
// it the foundational layer with no circular dependencies.
package ref
