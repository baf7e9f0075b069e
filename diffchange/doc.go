// Package diffchange derives change-set providers from unified diffs.
//
// A unified diff is the output of an external diffing engine; this package
// does not compare content itself. It walks the hunks of a parsed file diff
// and reduces them to the three change-set categories:
//
//   - deleted lines become deletion ranges against the old file
//   - added lines become insertion ranges against the new file
//   - a delete run immediately followed by an add run is treated as an
//     in-place modification of the overlapping line count, reported
//     against the new file
//
// All positions are 0-based line numbers. Adjacent ranges within a category
// are coalesced, producing the compact encoding the changeset package
// decodes:
//
//	provider, err := diffchange.Parse(patch)
//	if err != nil {
//	    return err
//	}
//	view := changeset.NewView(provider)
//	deleted, err := view.Deletions()
package diffchange
