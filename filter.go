package main

import (
	"fmt"
	"unicode/utf8"
)

// idFilter is a set of record ids to exclude from the statistics
type idFilter map[string]struct{}

// newIDFilter builds an exclusion set from the --filter-id values.
// Order is irrelevant and duplicates are harmless
func newIDFilter(ids []string) idFilter {
	filter := make(idFilter, len(ids))
	for _, id := range ids {
		filter[id] = struct{}{}
	}
	return filter
}

// Excludes decides whether the record with the given raw id bytes is excluded.
// An id that is not valid UTF-8 indicates corrupt or unsupported input and
// aborts the whole run: skipping past it would make a garbled report look
// complete
func (f idFilter) Excludes(id []byte) (bool, error) {
	if !utf8.Valid(id) {
		return false, fmt.Errorf("record id is not valid UTF-8: %q", id)
	}
	if len(f) == 0 {
		return false, nil
	}
	_, found := f[string(id)]
	return found, nil
}
