package changeset

// Provider supplies raw range data for change-set categories. It is the
// boundary to whatever external collaborator owns the change data; that
// collaborator is entirely responsible for the data's lifetime and for
// producing ranges that are ascending and non-overlapping.
//
// FetchRanges returns a category's ranges as a flat sequence of
// (start, length) pairs: element 2i is the start position and element 2i+1
// the length of the i-th range. The boolean reports whether the category had
// recorded data at all: false means "no changes recorded", which is distinct
// from (empty, true) meaning "recorded, zero entries" — though both decode
// to an absent public result.
//
// A View calls FetchRanges at most once per category, and never retries.
type Provider interface {
	FetchRanges(cat Category) ([]uint64, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(cat Category) ([]uint64, bool)

// FetchRanges calls f(cat).
func (f ProviderFunc) FetchRanges(cat Category) ([]uint64, bool) {
	return f(cat)
}
