package sorter

import "sort"

// bucketSet is an ordered mapping from origin to the records classified
// under it. Iteration order is fixed at construction time by merging the
// user priority list with the declaration order of the origins, so bucket
// traversal stays deterministic.
type bucketSet struct {
	order   []Origin
	records map[Origin][]*ImportRecord
}

func newBucketSet(priority []Origin) *bucketSet {
	set := &bucketSet{records: make(map[Origin][]*ImportRecord, len(allOrigins))}
	seen := make(map[Origin]bool, len(allOrigins))
	for _, origin := range priority {
		if !seen[origin] {
			seen[origin] = true
			set.order = append(set.order, origin)
		}
	}
	for _, origin := range allOrigins {
		if !seen[origin] {
			seen[origin] = true
			set.order = append(set.order, origin)
		}
	}
	return set
}

func (b *bucketSet) add(record *ImportRecord) {
	b.records[record.Origin] = append(b.records[record.Origin], record)
}

// sortRecordsByPath reorders records by cleaned path text. Size policies
// are handled separately once rendered lengths are known.
func sortRecordsByPath(records []*ImportRecord, policy SortPolicy) {
	switch policy {
	case SortAscending:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CleanedPathText < records[j].CleanedPathText
		})
	case SortDescending:
		sort.SliceStable(records, func(i, j int) bool {
			return records[j].CleanedPathText < records[i].CleanedPathText
		})
	}
}

// sortRecordsBySize reorders records by rendered statement length.
func sortRecordsBySize(records []*ImportRecord, policy SortPolicy) {
	switch policy {
	case SortShorterFirst:
		sort.SliceStable(records, func(i, j int) bool {
			return len(records[i].RenderedText) < len(records[j].RenderedText)
		})
	case SortLongerFirst:
		sort.SliceStable(records, func(i, j int) bool {
			return len(records[j].RenderedText) < len(records[i].RenderedText)
		})
	}
}

// sortNamedBindings reorders a record's named bindings in place. Lexical
// policies compare the alias-resolved name and collapse each display form
// to it; size policies compare display-form length and leave the display
// form intact.
func sortNamedBindings(record *ImportRecord, policy SortPolicy) {
	pairs := record.NamedBindings
	switch policy {
	case SortAscending, SortDescending:
		ascending := policy == SortAscending
		sort.SliceStable(pairs, func(i, j int) bool {
			if ascending {
				return pairs[i].Compare < pairs[j].Compare
			}
			return pairs[j].Compare < pairs[i].Compare
		})
		for i := range pairs {
			pairs[i].Display = pairs[i].Compare
		}
	case SortShorterFirst:
		sort.SliceStable(pairs, func(i, j int) bool {
			return len(pairs[i].Display) < len(pairs[j].Display)
		})
	case SortLongerFirst:
		sort.SliceStable(pairs, func(i, j int) bool {
			return len(pairs[j].Display) < len(pairs[i].Display)
		})
	}
}
