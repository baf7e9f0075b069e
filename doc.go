// Package changeset decodes collection-mutation notifications lazily.
//
// A change set describes how an ordered collection was mutated: which
// positions were deleted, which were inserted, and which were modified in
// place. The change data itself is produced elsewhere (a diffing engine, a
// sync service, a storage layer) and handed to this package in a compact
// encoding: per category, a flat sequence of (start, length) pairs, each
// pair naming a contiguous block of affected positions.
//
// The package provides:
//
//   - Lazy decoding of the compact encoding into ordered [Range] lists
//   - On-demand expansion of ranges into ordered absolute index lists
//   - Two caching tiers so the raw data source is queried at most once
//     per category, no matter how often either representation is read
//   - An explicit absent-vs-populated result contract, so "no changes in
//     this category" is never confused with "changes present"
//
// Basic usage:
//
//	view := changeset.NewView(provider)
//
//	// Compact form: ranges of deleted positions.
//	ranges, err := view.DeletionRanges()
//
//	// Expanded form: every deleted position individually.
//	indices, err := view.Deletions()
//
//	// A nil result with a nil error means the category has no changes.
//	if ranges == nil {
//	    // nothing was deleted
//	}
//
// Providers:
//
// Raw range data is supplied by a [Provider], an external collaborator that
// owns the underlying change data. A View never inspects how the data is
// produced or stored; it only asks, once per category, for the flat pair
// sequence. The subpackages jsonchange and diffchange adapt common change
// sources (JSON payloads, unified diffs) to the Provider interface.
//
// Concurrency:
//
// A View fills its caches with unsynchronized check-then-write sequences.
// Confine a View to a single goroutine, or serialize first access to each
// category externally. Once a category has been read, the cached results
// never change.
package changeset
