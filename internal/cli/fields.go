package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/ref"
)

// parseFields turns repeated --set key=value flags into a field map.
// Values are inferred as bool, int, or float where they parse as one;
// everything else stays a string. An empty value clears the field.
func parseFields(pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field %q: expected key=value", pair)
		}
		fields[key] = inferValue(value)
	}
	return fields, nil
}

func inferValue(s string) any {
	// Numbers before booleans: ParseBool would eat "1" and "0".
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// encodeReferences re-encodes bare record identifiers in reference fields
// as full reference strings against the configured store.
//
// Users pass plain ids on the command line; the store must only ever see
// encoded references. Values that are already reference strings (or
// anything else) pass through untouched.
func encodeReferences(fields map[string]any, base string, cols record.Collections) {
	targets := map[string]record.Collection{
		"room":        cols.Rooms,
		"instructor":  cols.Instructors,
		"participant": cols.Participants,
		"course":      cols.Courses,
	}
	for name, collection := range targets {
		value, ok := fields[name].(string)
		if !ok || !ref.IsID(value) {
			continue
		}
		fields[name] = ref.Encode(base, string(collection), value)
	}
}

// logical collection names accepted on the command line, mapped to the
// configured tokens by collectionByName.
var collectionNames = []string{"rooms", "instructors", "courses", "participants", "registrations"}

func collectionByName(cols record.Collections, name string) (record.Collection, error) {
	switch name {
	case "rooms":
		return cols.Rooms, nil
	case "instructors":
		return cols.Instructors, nil
	case "courses":
		return cols.Courses, nil
	case "participants":
		return cols.Participants, nil
	case "registrations":
		return cols.Registrations, nil
	default:
		return "", fmt.Errorf("unknown collection %q: must be one of %v", name, collectionNames)
	}
}
