package productsync

import (
	"context"
	"errors"
	"log/slog"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

func (h *Handlers) Update(ctx context.Context, sc *settings.SyncContext, stockID string) Outcome {
	snap, err := h.snapshots.Find(ctx, sc.ShopID(), stockID)
	if err != nil {
		return retry(err, "load snapshot")
	}

	rec, err := h.fetchStock(ctx, sc, stockID)
	switch {
	case errs.Is(err, shared.ErrStockNotFound):
		if snap == nil {
			return succeeded("stock missing and never synced")
		}
		if h.missingStock == MissingStockDelete {
			return h.remove(ctx, sc, stockID, snap.ProductID(), true)
		}
		return retry(err, "stock missing upstream")
	case err != nil:
		return retry(err, "fetch retailer stock")
	}

	if snap == nil {
		if !sc.AllowsBrand(rec.Brand) {
			return succeeded("brand not in filter")
		}
		if sc.General().DeleteOutStock && rec.TotalQuantity() == 0 {
			return succeeded("out of stock")
		}
		return h.createProduct(ctx, sc, rec)
	}
	return h.reconcile(ctx, sc, rec, snap)
}

// reconcile converges an already-synced product onto rec.
func (h *Handlers) reconcile(ctx context.Context, sc *settings.SyncContext, rec catalog.StockRecord, snap *catalog.Snapshot) Outcome {
	log := h.log(sc, rec.ID)
	creds := sc.Credentials()
	g := sc.General()

	if !sc.AllowsBrand(rec.Brand) {
		return h.remove(ctx, sc, rec.ID, snap.ProductID(), false)
	}

	plan := catalog.PartitionSizes(rec, snap, sc.Attributes(), g.DeleteOutStock)
	if !plan.HasUpserts() {
		return h.remove(ctx, sc, rec.ID, snap.ProductID(), false)
	}

	live, err := h.storefront.GetProduct(ctx, creds, snap.ProductID())
	if err != nil {
		return retry(err, "load storefront product")
	}
	if live == nil {
		log.Warn("storefront product vanished, recreating", slog.String("product_id", snap.ProductID()))
		if err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Snapshots().Delete(ctx, sc.ShopID(), rec.ID)
		}); err != nil {
			return retry(err, "drop stale snapshot")
		}
		return h.createProduct(ctx, sc, rec)
	}
	state := *live

	var failures []error
	fail := func(err error, msg string) {
		log.Warn(msg, slog.String("error", err.Error()))
		failures = append(failures, errs.Wrap(err, msg))
	}

	in := buildUpdateInput(sc, rec)
	if sc.Sync().Images {
		// no partial media update exists: drop everything, then re-add
		if err := h.storefront.DeleteFiles(ctx, creds, state.MediaIDs); err != nil {
			fail(err, "delete product media")
		} else {
			in.Media = mediaOf(rec)
		}
	}
	if err := h.storefront.UpdateProduct(ctx, creds, state.ID, in); err != nil {
		fail(err, "update product")
	}

	if sc.Sync().Metafields {
		set, del := metafieldsFor(rec)
		if len(del) > 0 {
			if err := h.storefront.DeleteMetafields(ctx, creds, state.ID, del); err != nil {
				fail(err, "delete metafields")
			}
		}
		if err := h.storefront.SetMetafields(ctx, creds, state.ID, set); err != nil {
			fail(err, "set metafields")
		}
	}

	if up := optionUpdate(plan, state); !up.IsEmpty() {
		next, err := h.storefront.UpdateOptionValues(ctx, creds, state.ID, up)
		if err != nil {
			fail(err, "update option values")
		} else {
			state = next
		}
	}

	sizes := keptSizes(plan)
	mappings := catalog.MapSizesToOptions(sizes, sc.Attributes(), state)
	prices := priceOf(sc, rec)

	if variants := newVariants(rec, mappings, prices); len(variants) > 0 {
		next, err := h.storefront.CreateVariants(ctx, creds, state.ID, variants)
		if err != nil {
			fail(err, "create variants")
		} else {
			state = next
			mappings = catalog.MapSizesToOptions(sizes, sc.Attributes(), state)
		}
	}
	if stale := stalePrices(mappings, state, prices); len(stale) > 0 {
		if err := h.storefront.UpdateVariants(ctx, creds, state.ID, stale); err != nil {
			fail(err, "update variant prices")
		}
	}

	// observed quantities are read live at the batch location, never taken
	// from the snapshot
	if observed, err := h.observedLevels(ctx, sc, mappings); err != nil {
		fail(err, "read inventory levels")
	} else if err := h.adjustInventory(ctx, sc, catalog.UpdateTargets(mappings, rec, observed)); err != nil {
		fail(err, "adjust inventory")
	}

	snap.Refresh(rec, h.clock.Now())
	if err := snap.ReplaceOptions(mappings); err != nil {
		return retry(err, "build snapshot")
	}
	if err := h.saveSnapshot(ctx, snap); err != nil {
		failures = append(failures, errs.Wrap(err, "save snapshot"))
	}

	if len(failures) > 0 {
		return retry(errors.Join(failures...), "partial update")
	}
	return succeeded("product updated")
}
