package changeset

import "fmt"

// Category identifies one independent axis of a change set.
type Category uint8

const (
	// CategoryDeletions covers positions removed from the old collection state.
	CategoryDeletions Category = iota

	// CategoryInsertions covers positions added in the new collection state.
	CategoryInsertions

	// CategoryChanges covers positions modified in place.
	CategoryChanges

	numCategories = 3
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryDeletions:
		return "deletions"
	case CategoryInsertions:
		return "insertions"
	case CategoryChanges:
		return "changes"
	default:
		return "unknown"
	}
}

// index returns the cache slot index for the category.
// Panics on a value outside the declared constants, matching the usual
// treatment of invalid enum values in indexed lookups.
func (c Category) index() int {
	if c >= numCategories {
		panic(fmt.Sprintf("changeset: invalid category %d", c))
	}
	return int(c)
}
