package productsync

import (
	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/usecase/shared"
)

func productStatus(g settings.GeneralSetting) shared.ProductStatus {
	if g.ProductAsDraft {
		return shared.ProductDraft
	}
	return shared.ProductActive
}

func mediaOf(rec catalog.StockRecord) []shared.Media {
	out := make([]shared.Media, 0, len(rec.Images))
	for _, url := range rec.Images {
		if url == "" {
			continue
		}
		out = append(out, shared.Media{URL: url, Alt: rec.Name})
	}
	return out
}

// listedSizes are the retailer sizes that become option values: every size,
// minus zero-quantity ones when out-of-stock sizes are deleted.
func listedSizes(rec catalog.StockRecord, deleteOutStock bool) []string {
	out := make([]string, 0, len(rec.Sizes))
	for _, s := range rec.Sizes {
		if deleteOutStock && s.Quantity <= 0 {
			continue
		}
		out = append(out, s.Size)
	}
	return out
}

func buildCreateInput(sc *settings.SyncContext, rec catalog.StockRecord) shared.ProductInput {
	g := sc.General()
	title := rec.Title(g.IncludeBrand)
	in := shared.ProductInput{
		Title:        &title,
		Vendor:       rec.Brand,
		Status:       productStatus(g),
		OptionValues: catalog.DisplayNames(listedSizes(rec, g.DeleteOutStock), sc.Attributes()),
	}
	in.Metafields, _ = metafieldsFor(rec)
	if sc.Sync().Description {
		desc := rec.Description
		in.Description = &desc
	}
	if sc.Sync().Images {
		in.Media = mediaOf(rec)
	}
	if m, ok := sc.Category(rec.CategoryID); ok {
		in.CollectionID = m.DropShipperID
	}
	return in
}

// buildUpdateInput only carries the fields the shop keeps in sync. Media is
// handled separately because it needs the existing files removed first.
func buildUpdateInput(sc *settings.SyncContext, rec catalog.StockRecord) shared.ProductInput {
	g := sc.General()
	s := sc.Sync()
	in := shared.ProductInput{Vendor: rec.Brand}
	if s.Title {
		title := rec.Title(g.IncludeBrand)
		in.Title = &title
	}
	if s.Description {
		desc := rec.Description
		in.Description = &desc
	}
	if s.Categories {
		if m, ok := sc.Category(rec.CategoryID); ok {
			in.CollectionID = m.DropShipperID
		}
	}
	return in
}

type variantPrice struct {
	price          string
	compareAtPrice string
}

func priceOf(sc *settings.SyncContext, rec catalog.StockRecord) variantPrice {
	rule := sc.PriceRule(rec.CategoryID)
	return variantPrice{
		price:          catalog.FormatAmount(rule.Price(rec.SellingPrice)),
		compareAtPrice: catalog.FormatAmount(rule.CompareAtPrice(rec.OriginalPrice)),
	}
}

func variantSKU(rec catalog.StockRecord, size string) string {
	return rec.ID + "-" + size
}

// newVariants builds inputs for mapped sizes whose option value exists but
// has no variant yet. Sizes sharing one display name produce one variant.
func newVariants(rec catalog.StockRecord, mappings []catalog.OptionMapping, p variantPrice) []shared.VariantInput {
	seen := make(map[string]struct{})
	var out []shared.VariantInput
	for _, m := range mappings {
		if !m.HasOptionValue() || m.HasVariant() {
			continue
		}
		if _, ok := seen[m.MappingOption]; ok {
			continue
		}
		seen[m.MappingOption] = struct{}{}
		out = append(out, shared.VariantInput{
			OptionValue:    m.MappingOption,
			Price:          p.price,
			CompareAtPrice: p.compareAtPrice,
			SKU:            variantSKU(rec, m.OriginalOption),
		})
	}
	return out
}

// stalePrices builds price updates for existing variants whose live price
// differs from the computed one.
func stalePrices(mappings []catalog.OptionMapping, state catalog.ProductState, p variantPrice) []shared.VariantInput {
	seen := make(map[string]struct{})
	var out []shared.VariantInput
	for _, m := range mappings {
		if !m.HasVariant() {
			continue
		}
		if _, ok := seen[m.ProductVariantID]; ok {
			continue
		}
		seen[m.ProductVariantID] = struct{}{}
		if live, ok := state.VariantByID(m.ProductVariantID); ok && live.Price == p.price && live.CompareAtPrice == p.compareAtPrice {
			continue
		}
		out = append(out, shared.VariantInput{
			ID:             m.ProductVariantID,
			OptionValue:    m.MappingOption,
			Price:          p.price,
			CompareAtPrice: p.compareAtPrice,
		})
	}
	return out
}

// optionUpdate derives the single option mutation for a plan. Values still
// used by a kept size are never deleted, and values already present are not
// re-added.
func optionUpdate(plan catalog.Plan, state catalog.ProductState) shared.OptionUpdate {
	up := shared.OptionUpdate{OptionID: state.OptionID}

	existing := make(map[string]struct{}, len(state.OptionValues))
	liveIDs := make(map[string]struct{}, len(state.OptionValues))
	for _, v := range state.OptionValues {
		existing[v.Name] = struct{}{}
		liveIDs[v.ID] = struct{}{}
	}
	kept := make(map[string]struct{})
	ensure := func(display string) {
		kept[display] = struct{}{}
		if _, ok := existing[display]; ok {
			return
		}
		existing[display] = struct{}{}
		up.Add = append(up.Add, display)
	}

	for _, c := range plan.NeedUpdate {
		_, live := liveIDs[c.Current.ProductOptionValueID]
		if c.Renamed() && live {
			if _, taken := existing[c.Display]; !taken {
				up.Rename = append(up.Rename, catalog.OptionValue{ID: c.Current.ProductOptionValueID, Name: c.Display})
				existing[c.Display] = struct{}{}
			}
		}
		ensure(c.Display)
	}
	for _, c := range plan.NeedAdd {
		ensure(c.Display)
	}

	deleted := make(map[string]struct{})
	for _, c := range plan.NeedDelete {
		if _, ok := liveIDs[c.Current.ProductOptionValueID]; !ok {
			continue
		}
		if _, ok := kept[c.Current.MappingOption]; ok {
			continue
		}
		if _, ok := deleted[c.Current.ProductOptionValueID]; ok {
			continue
		}
		deleted[c.Current.ProductOptionValueID] = struct{}{}
		up.Delete = append(up.Delete, c.Current.ProductOptionValueID)
	}
	return up
}

func keptSizes(plan catalog.Plan) []string {
	out := make([]string, 0, len(plan.NeedAdd)+len(plan.NeedUpdate))
	for _, c := range plan.NeedUpdate {
		out = append(out, c.Size)
	}
	for _, c := range plan.NeedAdd {
		out = append(out, c.Size)
	}
	return out
}
