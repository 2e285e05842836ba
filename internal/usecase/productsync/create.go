package productsync

import (
	"context"
	"log/slog"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

func (h *Handlers) Create(ctx context.Context, sc *settings.SyncContext, stockID string) Outcome {
	rec, err := h.fetchStock(ctx, sc, stockID)
	if errs.Is(err, shared.ErrStockNotFound) {
		return succeeded("stock no longer exists upstream")
	}
	if err != nil {
		return retry(err, "fetch retailer stock")
	}

	snap, err := h.snapshots.Find(ctx, sc.ShopID(), stockID)
	if err != nil {
		return retry(err, "load snapshot")
	}
	if snap != nil {
		return h.reconcile(ctx, sc, rec, snap)
	}

	if !sc.AllowsBrand(rec.Brand) {
		return succeeded("brand not in filter")
	}
	if sc.General().DeleteOutStock && rec.TotalQuantity() == 0 {
		return succeeded("out of stock")
	}

	return h.createProduct(ctx, sc, rec)
}

// createProduct materializes rec on the storefront. A product left behind by
// an earlier partial attempt is adopted through the identity record instead of
// being created twice.
func (h *Handlers) createProduct(ctx context.Context, sc *settings.SyncContext, rec catalog.StockRecord) Outcome {
	log := h.log(sc, rec.ID)
	creds := sc.Credentials()

	state, adopted, err := h.adoptProduct(ctx, sc, rec.ID)
	if err != nil {
		return retry(err, "look up existing product")
	}

	if !adopted {
		created, err := h.storefront.CreateProduct(ctx, creds, buildCreateInput(sc, rec))
		if err != nil {
			return retry(err, "create product")
		}
		state = created
		log.Info("storefront product created", slog.String("product_id", state.ID))

		if err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Identities().Remember(ctx, sc.ShopID(), rec.ID, state.ID, h.clock.Now())
		}); err != nil {
			return retry(err, "remember product identity")
		}
	} else {
		log.Info("adopting storefront product from earlier attempt", slog.String("product_id", state.ID))
	}

	if err := h.storefront.PublishProduct(ctx, creds, state.ID, sc.PublicationID()); err != nil {
		return retry(err, "publish product")
	}

	sizes := listedSizes(rec, sc.General().DeleteOutStock)
	mappings := catalog.MapSizesToOptions(sizes, sc.Attributes(), state)

	if adopted {
		plan := catalog.PartitionSizes(rec, nil, sc.Attributes(), sc.General().DeleteOutStock)
		if up := optionUpdate(plan, state); len(up.Add) > 0 {
			up.Rename, up.Delete = nil, nil
			if state, err = h.storefront.UpdateOptionValues(ctx, creds, state.ID, up); err != nil {
				return retry(err, "add option values")
			}
			mappings = catalog.MapSizesToOptions(sizes, sc.Attributes(), state)
		}
	}

	prices := priceOf(sc, rec)
	if variants := newVariants(rec, mappings, prices); len(variants) > 0 {
		if state, err = h.storefront.CreateVariants(ctx, creds, state.ID, variants); err != nil {
			return retry(err, "create variants")
		}
		mappings = catalog.MapSizesToOptions(sizes, sc.Attributes(), state)
	}
	// the storefront seeds one variant with the product; it has no price yet
	if stale := stalePrices(mappings, state, prices); len(stale) > 0 {
		if err := h.storefront.UpdateVariants(ctx, creds, state.ID, stale); err != nil {
			return retry(err, "price variants")
		}
	}

	targets := catalog.CreationTargets(mappings, rec)
	if adopted {
		observed, err := h.observedLevels(ctx, sc, mappings)
		if err != nil {
			return retry(err, "read inventory levels")
		}
		targets = catalog.UpdateTargets(mappings, rec, observed)
	}
	if err := h.adjustInventory(ctx, sc, targets); err != nil {
		return retry(err, "adjust inventory")
	}

	snap, err := catalog.NewSnapshot(sc.ShopID(), rec, state.ID, mappings, h.clock.Now())
	if err != nil {
		return retry(err, "build snapshot")
	}
	if err := h.saveSnapshot(ctx, snap); err != nil {
		return retry(err, "save snapshot")
	}
	return succeeded("product created")
}

func (h *Handlers) adoptProduct(ctx context.Context, sc *settings.SyncContext, stockID string) (catalog.ProductState, bool, error) {
	productID, err := h.identities.Find(ctx, sc.ShopID(), stockID)
	if err != nil || productID == "" {
		return catalog.ProductState{}, false, err
	}
	state, err := h.storefront.GetProduct(ctx, sc.Credentials(), productID)
	if err != nil || state == nil {
		return catalog.ProductState{}, false, err
	}
	return *state, true, nil
}

// observedLevels reads live available quantities at the batch location for
// every mapped inventory item.
func (h *Handlers) observedLevels(ctx context.Context, sc *settings.SyncContext, mappings []catalog.OptionMapping) (map[string]int, error) {
	seen := make(map[string]struct{}, len(mappings))
	var ids []string
	for _, m := range mappings {
		if m.InventoryItemID == "" {
			continue
		}
		if _, ok := seen[m.InventoryItemID]; ok {
			continue
		}
		seen[m.InventoryItemID] = struct{}{}
		ids = append(ids, m.InventoryItemID)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return h.storefront.InventoryLevels(ctx, sc.Credentials(), sc.LocationID(), ids)
}

func (h *Handlers) adjustInventory(ctx context.Context, sc *settings.SyncContext, targets []catalog.InventoryTarget) error {
	changes := catalog.Deltas(targets)
	if len(changes) == 0 {
		return nil
	}
	return h.storefront.AdjustInventory(ctx, sc.Credentials(), shared.InventoryAdjustment{
		LocationID: sc.LocationID(),
		Reason:     catalog.InventoryReason,
		Name:       catalog.InventoryQuantityName,
		Changes:    changes,
	})
}
