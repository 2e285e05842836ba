package catalog

// OptionValue is one value of the storefront "Size" option.
type OptionValue struct {
	ID   string
	Name string
}

// Variant is a storefront variant as observed live. Stock is read per
// location through the storefront's inventory levels, not from here.
type Variant struct {
	ID              string
	OptionValueName string
	InventoryItemID string
	Price           string
	CompareAtPrice  string
}

// ProductState is the live storefront view of one product.
type ProductState struct {
	ID           string
	OptionID     string
	OptionValues []OptionValue
	Variants     []Variant
	MediaIDs     []string
}

func (p ProductState) VariantByID(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
