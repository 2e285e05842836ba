package catalog

// InventoryReason is the fixed reason attached to every adjustment.
const InventoryReason = "correction"

// InventoryQuantityName is the storefront quantity bucket being adjusted.
const InventoryQuantityName = "available"

// InventoryTarget pairs the quantity the retailer wants with the quantity
// last observed on the storefront for one inventory item.
type InventoryTarget struct {
	InventoryItemID string
	Size            string
	Desired         int
	Observed        int
}

func (t InventoryTarget) Delta() int {
	return t.Desired - t.Observed
}

type InventoryChange struct {
	InventoryItemID string
	Size            string
	Delta           int
}

// Deltas turns targets into adjustment instructions, dropping items already
// at their desired quantity.
func Deltas(targets []InventoryTarget) []InventoryChange {
	out := make([]InventoryChange, 0, len(targets))
	for _, t := range targets {
		if t.InventoryItemID == "" {
			continue
		}
		if d := t.Delta(); d != 0 {
			out = append(out, InventoryChange{InventoryItemID: t.InventoryItemID, Size: t.Size, Delta: d})
		}
	}
	return out
}

// CreationTargets seeds every mapped size from a zero baseline.
func CreationTargets(options []OptionMapping, record StockRecord) []InventoryTarget {
	return UpdateTargets(options, record, nil)
}

// UpdateTargets compares desired quantities with live observed quantities
// keyed by inventory item id. A missing observation counts as zero.
//
// Sizes resolved to one display name share a variant, so their quantities
// are summed into a single target per inventory item.
func UpdateTargets(options []OptionMapping, record StockRecord, observed map[string]int) []InventoryTarget {
	out := make([]InventoryTarget, 0, len(options))
	index := make(map[string]int, len(options))
	for _, o := range options {
		if o.InventoryItemID == "" {
			continue
		}
		desired, _ := record.Quantity(o.OriginalOption)
		if i, ok := index[o.InventoryItemID]; ok {
			out[i].Desired += desired
			continue
		}
		index[o.InventoryItemID] = len(out)
		out = append(out, InventoryTarget{
			InventoryItemID: o.InventoryItemID,
			Size:            targetSize(o),
			Desired:         desired,
			Observed:        observed[o.InventoryItemID],
		})
	}
	return out
}

func targetSize(o OptionMapping) string {
	if o.MappingOption != "" {
		return o.MappingOption
	}
	return o.OriginalOption
}
