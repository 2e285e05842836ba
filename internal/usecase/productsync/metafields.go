package productsync

import (
	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/usecase/shared"
)

const MetafieldNamespace = "retailer"

type metafieldSpec struct {
	key   string
	name  string
	typ   string
	value func(rec catalog.StockRecord) string
}

var metafieldSchema = []metafieldSpec{
	{key: "stock_id", name: "Retailer stock id", typ: "single_line_text_field", value: func(r catalog.StockRecord) string { return r.ID }},
	{key: "brand", name: "Retailer brand", typ: "single_line_text_field", value: func(r catalog.StockRecord) string { return r.Brand }},
	{key: "category_id", name: "Retailer category", typ: "single_line_text_field", value: func(r catalog.StockRecord) string { return r.CategoryID }},
	{key: "original_price", name: "Retailer original price", typ: "number_decimal", value: func(r catalog.StockRecord) string { return catalog.FormatAmount(r.OriginalPrice) }},
}

// MetafieldDefinitions lists the definitions every installed shop needs.
func MetafieldDefinitions() []shared.MetafieldDefinition {
	out := make([]shared.MetafieldDefinition, len(metafieldSchema))
	for i, s := range metafieldSchema {
		out[i] = shared.MetafieldDefinition{Namespace: MetafieldNamespace, Key: s.key, Name: s.name, Type: s.typ}
	}
	return out
}

// metafieldsFor splits the schema into values to set and keys to delete
// because their computed value is empty.
func metafieldsFor(rec catalog.StockRecord) (set []shared.Metafield, del []shared.MetafieldKey) {
	for _, s := range metafieldSchema {
		v := s.value(rec)
		if v == "" {
			del = append(del, shared.MetafieldKey{Namespace: MetafieldNamespace, Key: s.key})
			continue
		}
		set = append(set, shared.Metafield{Namespace: MetafieldNamespace, Key: s.key, Type: s.typ, Value: v})
	}
	return set, del
}
