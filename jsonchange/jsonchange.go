package jsonchange

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/changeset"
)

// Payload keys, one per category.
const (
	keyDeletions     = "deletions"
	keyInsertions    = "insertions"
	keyModifications = "modifications"
)

// keyFor maps a category to its payload key.
func keyFor(cat changeset.Category) string {
	switch cat {
	case changeset.CategoryDeletions:
		return keyDeletions
	case changeset.CategoryInsertions:
		return keyInsertions
	default:
		return keyModifications
	}
}

// Provider reads flat range sequences out of a JSON change payload.
// It implements changeset.Provider; a category whose key is missing or not
// an array reports as unrecorded.
type Provider struct {
	payload []byte
}

// New creates a Provider over a JSON change payload. The payload is not
// validated or parsed up front; categories are read on demand.
func New(payload []byte) *Provider {
	return &Provider{payload: payload}
}

// FetchRanges returns the category's flat (start, length) sequence from the
// payload, and false if the payload has no array for the category.
func (p *Provider) FetchRanges(cat changeset.Category) ([]uint64, bool) {
	res := gjson.GetBytes(p.payload, keyFor(cat))
	if !res.IsArray() {
		return nil, false
	}
	arr := res.Array()
	flat := make([]uint64, len(arr))
	for i, el := range arr {
		flat[i] = el.Uint()
	}
	return flat, true
}

// Marshal re-encodes a view's decoded ranges as a JSON change payload in
// the shape accepted by New. Categories with no changes are omitted.
func Marshal(v *changeset.View) ([]byte, error) {
	out := []byte("{}")
	categories := []changeset.Category{
		changeset.CategoryDeletions,
		changeset.CategoryInsertions,
		changeset.CategoryChanges,
	}
	for _, cat := range categories {
		ranges, err := v.Ranges(cat)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", cat, err)
		}
		if ranges == nil {
			continue
		}
		flat := make([]uint64, 0, len(ranges)*2)
		for _, r := range ranges {
			flat = append(flat, r.Start, r.Length)
		}
		out, err = sjson.SetBytes(out, keyFor(cat), flat)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", cat, err)
		}
	}
	return out, nil
}
