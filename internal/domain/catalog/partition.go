package catalog

// SizeChange is one size routed into a reconciliation set. Current holds the
// snapshot mapping when the size was already synced.
type SizeChange struct {
	Size     string
	Display  string
	Quantity int
	Current  OptionMapping
}

// Renamed reports whether the attribute mapping now resolves the size to a
// different display name than the one last synced.
func (c SizeChange) Renamed() bool {
	return c.Current.HasOptionValue() && c.Current.MappingOption != c.Display
}

type Plan struct {
	NeedAdd    []SizeChange
	NeedUpdate []SizeChange
	NeedDelete []SizeChange
}

func (p Plan) HasUpserts() bool {
	return len(p.NeedAdd) > 0 || len(p.NeedUpdate) > 0
}

// PartitionSizes splits the sizes of record and snapshot into disjoint add,
// update and delete sets whose union is every size seen on either side.
//
// A size in both is an update unless its quantity is zero and
// deleteOutStock is set, in which case it is a delete. A size only in the
// snapshot is a delete. A size only in the record is an add, except a
// zero-quantity size under deleteOutStock, which is routed to delete so it
// is never materialized.
func PartitionSizes(record StockRecord, snapshot *Snapshot, namer OptionNamer, deleteOutStock bool) Plan {
	namer = namerOrIdentity(namer)

	var plan Plan
	inRecord := make(map[string]struct{}, len(record.Sizes))

	for _, s := range record.Sizes {
		inRecord[s.Size] = struct{}{}
		qty := max(s.Quantity, 0)
		change := SizeChange{Size: s.Size, Display: namer.Resolve(s.Size), Quantity: qty}

		var current OptionMapping
		synced := false
		if snapshot != nil {
			current, synced = snapshot.Option(s.Size)
		}
		outOfStock := qty == 0 && deleteOutStock

		switch {
		case synced && outOfStock:
			change.Current = current
			plan.NeedDelete = append(plan.NeedDelete, change)
		case synced:
			change.Current = current
			plan.NeedUpdate = append(plan.NeedUpdate, change)
		case outOfStock:
			plan.NeedDelete = append(plan.NeedDelete, change)
		default:
			plan.NeedAdd = append(plan.NeedAdd, change)
		}
	}

	if snapshot != nil {
		for _, o := range snapshot.options {
			if _, ok := inRecord[o.OriginalOption]; ok {
				continue
			}
			plan.NeedDelete = append(plan.NeedDelete, SizeChange{
				Size:    o.OriginalOption,
				Display: o.MappingOption,
				Current: o,
			})
		}
	}

	return plan
}
