// Package jsonchange adapts JSON change payloads to the changeset provider
// contract.
//
// Change sources that cross a process or network boundary commonly deliver
// their change sets as JSON documents of flat range arrays:
//
//	{
//	    "deletions": [5, 3, 10, 1],
//	    "insertions": [0, 2],
//	    "modifications": []
//	}
//
// Each array is the compact pairwise encoding the changeset package decodes:
// element 2i is a range's start position, element 2i+1 its length. A missing
// key means the category recorded no changes; an empty array means the
// category was recorded with zero entries. Both surface as absent through a
// [changeset.View], but the distinction is preserved across the boundary.
//
// Lookups are lazy: nothing is parsed until a View first touches a
// category, and each category is read from the document at most once.
// Array elements must be non-negative integers; the payload producer owns
// that contract.
package jsonchange
