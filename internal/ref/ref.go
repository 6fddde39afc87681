package ref

import (
	"regexp"
	"strings"
)

// IDLength is the length of a record identifier: a generated object id
// rendered as lowercase hexadecimal.
const IDLength = 24

// idPattern matches a bare record identifier.
var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// IsID reports whether s is a well-formed record identifier.
func IsID(s string) bool {
	return idPattern.MatchString(s)
}

// Encode builds the reference string for a record in a collection.
//
// The result is an absolute URL of the form <base>/rest/<collection>/<id>.
// Encode is pure and total; callers are responsible for validating that
// collection and id are non-empty before persisting the result.
func Encode(base, collection, id string) string {
	return strings.TrimRight(base, "/") + "/rest/" + collection + "/" + id
}

// Decode extracts the record identifier from a reference string.
//
// It returns the trailing identifier-shaped path segment and true, or
// ("", false) when s is empty, malformed, or carries no identifier.
// Decode never fails loudly: a dangling or garbage reference is "no
// relation", not an error. Trailing slashes, query parameters, and
// fragments are ignored.
func Decode(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if !idPattern.MatchString(s) {
		return "", false
	}
	return s, true
}
