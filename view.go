package changeset

import (
	"fmt"
	"math"
)

// maxIndices caps the expanded size of a single category. Downstream
// consumers address the expanded list by 32-bit position, so the cap stays
// at the 32-bit signed maximum regardless of the platform's int width.
const maxIndices = uint64(math.MaxInt32)

// rawSlot caches one category's provider response.
type rawSlot struct {
	fetched bool
	present bool     // provider had data for the category
	flat    []uint64 // flat (start, length) pairs, meaningful when present
}

// rangeSlot caches one category's decoded ranges.
// An empty decoded list is distinct from a slot that has not decoded yet.
type rangeSlot struct {
	decoded bool
	ranges  []Range
}

// indexSlot caches one category's expanded indices.
type indexSlot struct {
	expanded bool
	indices  []uint64
}

// View is a lazy decoder over one collection change set. Each of the three
// categories is fetched from the provider at most once, on the first read of
// either its range or its index accessor, and both decoded representations
// are cached for the life of the View.
//
// A View is not safe for concurrent use; see the package documentation.
type View struct {
	provider Provider

	raw     [numCategories]rawSlot
	ranges  [numCategories]rangeSlot
	indices [numCategories]indexSlot
}

// NewView creates a View over the given provider. A nil provider yields a
// view that reports every category absent.
func NewView(p Provider) *View {
	return &View{provider: p}
}

// Ranges returns the category's changes as compact ranges, in provider
// order. A nil result with a nil error means the category has no changes;
// a returned slice is never empty. The provider is queried on first access
// and the decoded list cached for subsequent calls.
//
// An odd-length flat sequence from the provider is a contract violation and
// returns an error wrapping ErrMalformedRanges; silently dropping the
// trailing element would corrupt range boundaries.
func (v *View) Ranges(cat Category) ([]Range, error) {
	ranges, err := v.decodedRanges(cat)
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		return nil, nil
	}
	return ranges, nil
}

// Indices returns every affected position in the category individually:
// each range flattened in range order, ascending within the range. A nil
// result with a nil error means the category has no changes; a returned
// slice is never empty. The expansion is computed once and cached.
//
// If the summed range lengths exceed the 32-bit index cap, Indices returns
// an error wrapping ErrIndexSpaceOverflow. The ranges themselves remain
// valid and retrievable through Ranges; only the expansion is refused, and
// nothing is cached for the failed expansion.
func (v *View) Indices(cat Category) ([]uint64, error) {
	slot := &v.indices[cat.index()]
	if !slot.expanded {
		ranges, err := v.decodedRanges(cat)
		if err != nil {
			return nil, err
		}
		indices, err := expandRanges(ranges)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cat, err)
		}
		slot.expanded = true
		slot.indices = indices
	}
	if len(slot.indices) == 0 {
		return nil, nil
	}
	return slot.indices, nil
}

// DeletionRanges returns the deleted positions as compact ranges, or nil if
// nothing was deleted.
func (v *View) DeletionRanges() ([]Range, error) {
	return v.Ranges(CategoryDeletions)
}

// InsertionRanges returns the inserted positions as compact ranges, or nil
// if nothing was inserted.
func (v *View) InsertionRanges() ([]Range, error) {
	return v.Ranges(CategoryInsertions)
}

// ChangeRanges returns the in-place modified positions as compact ranges,
// or nil if nothing was modified.
func (v *View) ChangeRanges() ([]Range, error) {
	return v.Ranges(CategoryChanges)
}

// Deletions returns every deleted position individually, or nil if nothing
// was deleted.
func (v *View) Deletions() ([]uint64, error) {
	return v.Indices(CategoryDeletions)
}

// Insertions returns every inserted position individually, or nil if
// nothing was inserted.
func (v *View) Insertions() ([]uint64, error) {
	return v.Indices(CategoryInsertions)
}

// Changes returns every in-place modified position individually, or nil if
// nothing was modified.
func (v *View) Changes() ([]uint64, error) {
	return v.Indices(CategoryChanges)
}

// fetchRaw queries the provider for the category's flat sequence, once.
func (v *View) fetchRaw(cat Category) *rawSlot {
	slot := &v.raw[cat.index()]
	if slot.fetched {
		return slot
	}
	slot.fetched = true
	if v.provider != nil {
		slot.flat, slot.present = v.provider.FetchRanges(cat)
	}
	return slot
}

// decodedRanges returns the category's decoded range list, fetching from
// the provider on first use. The returned slice may be empty; emptiness is
// not collapsed to absent here.
//
// On a decode failure the raw fetch stays cached (the provider is never
// re-invoked) but the range slot is left undecoded, so a retry re-decodes
// the stored sequence and deterministically returns the same error.
func (v *View) decodedRanges(cat Category) ([]Range, error) {
	slot := &v.ranges[cat.index()]
	if slot.decoded {
		return slot.ranges, nil
	}
	raw := v.fetchRaw(cat)
	if !raw.present {
		slot.decoded = true
		return nil, nil
	}
	ranges, err := decodeFlat(raw.flat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cat, err)
	}
	slot.decoded = true
	slot.ranges = ranges
	return ranges, nil
}

// decodeFlat interprets a flat sequence of (start, length) pairs as ranges.
// Zero-length pairs are degenerate and dropped.
func decodeFlat(flat []uint64) ([]Range, error) {
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrMalformedRanges, len(flat))
	}
	var ranges []Range
	for i := 0; i < len(flat); i += 2 {
		if flat[i+1] == 0 {
			continue
		}
		ranges = append(ranges, Range{Start: flat[i], Length: flat[i+1]})
	}
	return ranges, nil
}

// expandRanges flattens ranges into absolute positions, range order first,
// ascending within each range. The total is bounded before allocating; the
// check is wrap-safe for arbitrary uint64 lengths.
func expandRanges(ranges []Range) ([]uint64, error) {
	var total uint64
	for _, r := range ranges {
		if r.Length > maxIndices-total {
			return nil, fmt.Errorf("%w: limit %d", ErrIndexSpaceOverflow, maxIndices)
		}
		total += r.Length
	}
	if total == 0 {
		return nil, nil
	}
	indices := make([]uint64, 0, total)
	for _, r := range ranges {
		for j := uint64(0); j < r.Length; j++ {
			indices = append(indices, r.Start+j)
		}
	}
	return indices, nil
}
