package catalog

// OptionNamer resolves the storefront display name for a retailer size.
type OptionNamer interface {
	Resolve(size string) string
}

type identityNamer struct{}

func (identityNamer) Resolve(size string) string { return size }

func namerOrIdentity(n OptionNamer) OptionNamer {
	if n == nil {
		return identityNamer{}
	}
	return n
}

// MapSizesToOptions links each retailer size to the storefront option value
// and, when it already exists, the variant carrying that value. Matching is
// done on the resolved display name. Unmatched ids are left empty.
func MapSizesToOptions(sizes []string, namer OptionNamer, state ProductState) []OptionMapping {
	namer = namerOrIdentity(namer)

	valueByName := make(map[string]OptionValue, len(state.OptionValues))
	for _, v := range state.OptionValues {
		if _, ok := valueByName[v.Name]; !ok {
			valueByName[v.Name] = v
		}
	}
	variantByName := make(map[string]Variant, len(state.Variants))
	for _, v := range state.Variants {
		if _, ok := variantByName[v.OptionValueName]; !ok {
			variantByName[v.OptionValueName] = v
		}
	}

	out := make([]OptionMapping, 0, len(sizes))
	for _, size := range sizes {
		display := namer.Resolve(size)
		m := OptionMapping{
			OriginalOption: size,
			MappingOption:  display,
		}
		if v, ok := valueByName[display]; ok {
			m.ProductOptionID = state.OptionID
			m.ProductOptionValueID = v.ID
		}
		if v, ok := variantByName[display]; ok {
			m.ProductVariantID = v.ID
			m.InventoryItemID = v.InventoryItemID
		}
		out = append(out, m)
	}
	return out
}

// DisplayNames resolves every size, dropping repeated display names while
// keeping first-seen order.
func DisplayNames(sizes []string, namer OptionNamer) []string {
	namer = namerOrIdentity(namer)
	seen := make(map[string]struct{}, len(sizes))
	out := make([]string, 0, len(sizes))
	for _, size := range sizes {
		d := namer.Resolve(size)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
