package queue

import "github.com/google/uuid"

// Group is the ordered work for one stock id inside a batch.
type Group struct {
	StockID string
	Entries []*Entry
}

// Deduplicate splits a batch into per-stock work groups and the duplicate
// entries that can be settled without running. Input order is preserved:
// for every stock id the first non-delete entry survives, later non-delete
// entries for the same stock id are duplicates, and delete entries always
// survive.
func Deduplicate(batch []*Entry) (groups []Group, duplicates []*Entry) {
	index := make(map[string]int)
	seenAction := make(map[string]bool)

	for _, e := range batch {
		if !e.IsDelete() {
			if seenAction[e.StockID()] {
				duplicates = append(duplicates, e)
				continue
			}
			seenAction[e.StockID()] = true
		}

		i, ok := index[e.StockID()]
		if !ok {
			i = len(groups)
			index[e.StockID()] = i
			groups = append(groups, Group{StockID: e.StockID()})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	return groups, duplicates
}

func IDs(entries []*Entry) []uuid.UUID {
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID()
	}
	return ids
}
