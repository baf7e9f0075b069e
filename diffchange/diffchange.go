package diffchange

import (
	"bytes"
	"fmt"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/dshills/changeset"
)

// Parse converts a single-file unified diff into a change-set provider.
func Parse(patch []byte) (changeset.Provider, error) {
	fd, err := diff.ParseFileDiff(patch)
	if err != nil {
		return nil, fmt.Errorf("parse diff: %w", err)
	}
	return FromFileDiff(fd), nil
}

// FromFileDiff converts a parsed file diff into a change-set provider.
// Categories the diff never touches report as unrecorded.
func FromFileDiff(fd *diff.FileDiff) changeset.Provider {
	b := &builder{flat: make(map[changeset.Category][]uint64)}
	for _, hunk := range fd.Hunks {
		b.addHunk(hunk)
	}
	flat := b.flat
	return changeset.ProviderFunc(func(cat changeset.Category) ([]uint64, bool) {
		seq, ok := flat[cat]
		return seq, ok
	})
}

// builder accumulates flat (start, length) sequences per category.
type builder struct {
	flat map[changeset.Category][]uint64
}

// add appends a range to a category, extending the previous range when the
// new one starts exactly where it ended.
func (b *builder) add(cat changeset.Category, start int64, length uint64) {
	if length == 0 {
		return
	}
	flat := b.flat[cat]
	if n := len(flat); n >= 2 && flat[n-2]+flat[n-1] == uint64(start) {
		flat[n-1] += length
		b.flat[cat] = flat
		return
	}
	b.flat[cat] = append(flat, uint64(start), length)
}

// addHunk reduces one hunk body to category ranges. Line positions are
// tracked 1-based as in the hunk header and emitted 0-based.
func (b *builder) addHunk(h *diff.Hunk) {
	orig := int64(h.OrigStartLine) - 1
	updated := int64(h.NewStartLine) - 1
	lines := bytes.Split(h.Body, []byte("\n"))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if len(line) == 0 {
			continue // trailing newline artifact
		}
		switch line[0] {
		case '-':
			deleted := int64(0)
			for i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '-' {
				deleted++
				i++
			}
			added := int64(0)
			for i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '+' {
				added++
				i++
			}
			i--

			modified := min(deleted, added)
			b.add(changeset.CategoryChanges, updated, uint64(modified))
			b.add(changeset.CategoryDeletions, orig+modified, uint64(deleted-modified))
			b.add(changeset.CategoryInsertions, updated+modified, uint64(added-modified))
			orig += deleted
			updated += added
		case '+':
			added := int64(0)
			for i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '+' {
				added++
				i++
			}
			i--

			b.add(changeset.CategoryInsertions, updated, uint64(added))
			updated += added
		case '\\':
			// "\ No newline at end of file" carries no position.
		default:
			orig++
			updated++
		}
	}
}
