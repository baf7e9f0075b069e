package diffchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/changeset"
)

func mustView(t *testing.T, patch string) *changeset.View {
	t.Helper()
	p, err := Parse([]byte(patch))
	require.NoError(t, err)
	return changeset.NewView(p)
}

func TestParseModificationAndDeletion(t *testing.T) {
	v := mustView(t, `--- a/greeting.txt
+++ b/greeting.txt
@@ -1,5 +1,5 @@
 hello
-old line
+new line
 middle
-gone
 tail
`)

	changes, err := v.Changes()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, changes, "replaced line is a modification in the new file")

	deletions, err := v.Deletions()
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, deletions, "removed line is indexed against the old file")

	insertions, err := v.Insertions()
	require.NoError(t, err)
	assert.Nil(t, insertions)
}

func TestParsePureInsertion(t *testing.T) {
	v := mustView(t, `--- a/list.txt
+++ b/list.txt
@@ -1,2 +1,4 @@
 one
+two
+three
 four
`)

	ranges, err := v.InsertionRanges()
	require.NoError(t, err)
	assert.Equal(t, []changeset.Range{{Start: 1, Length: 2}}, ranges)

	indices, err := v.Insertions()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, indices)

	deletions, err := v.Deletions()
	require.NoError(t, err)
	assert.Nil(t, deletions)
}

func TestParseNewFile(t *testing.T) {
	v := mustView(t, `--- /dev/null
+++ b/new.txt
@@ -0,0 +1,3 @@
+a
+b
+c
`)

	ranges, err := v.InsertionRanges()
	require.NoError(t, err)
	assert.Equal(t, []changeset.Range{{Start: 0, Length: 3}}, ranges)
}

func TestParseUnevenReplace(t *testing.T) {
	// Three lines replaced by one: the overlap is a modification, the
	// remainder a deletion.
	v := mustView(t, `--- a/f.txt
+++ b/f.txt
@@ -1,4 +1,2 @@
 keep
-x
-y
-z
+w
`)

	changes, err := v.Changes()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, changes)

	deletions, err := v.DeletionRanges()
	require.NoError(t, err)
	assert.Equal(t, []changeset.Range{{Start: 2, Length: 2}}, deletions)
}

func TestParseMultipleHunks(t *testing.T) {
	v := mustView(t, `--- a/long.txt
+++ b/long.txt
@@ -1,3 +1,4 @@
+first
 a
 b
 c
@@ -10,3 +11,3 @@
 x
-mid
+MID
 z
`)

	insertions, err := v.Insertions()
	require.NoError(t, err)
	assert.Equal(t, []uint64{0}, insertions)

	changes, err := v.Changes()
	require.NoError(t, err)
	assert.Equal(t, []uint64{11}, changes)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not a diff"))
	assert.Error(t, err)
}

func TestFromFileDiffEmpty(t *testing.T) {
	v := mustView(t, `--- a/same.txt
+++ b/same.txt
@@ -1,2 +1,2 @@
 a
 b
`)

	for _, cat := range []changeset.Category{
		changeset.CategoryDeletions,
		changeset.CategoryInsertions,
		changeset.CategoryChanges,
	} {
		ranges, err := v.Ranges(cat)
		require.NoError(t, err)
		assert.Nil(t, ranges)
	}
}
