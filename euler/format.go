package euler

import "strings"

// NotFoundMessage is the canonical rendering of the failure outcome,
// suitable for printing when a strategy returns ErrNotFound.
const NotFoundMessage = "euler path not found"

// FormatFleury renders a walk in the hyphen-joined convention of the Fleury
// family: "v0-v1-...-vn".
func FormatFleury(path []string) string {
	return strings.Join(path, "-")
}

// FormatHierholzer renders a walk in the arrow-joined convention of the
// Hierholzer family: "v0 -> v1 -> ... -> vn".
func FormatHierholzer(path []string) string {
	return strings.Join(path, " -> ")
}
