package productsync

import (
	"context"

	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

// Delete handles an upstream deletion. The identity record goes with it.
func (h *Handlers) Delete(ctx context.Context, sc *settings.SyncContext, stockID string) Outcome {
	snap, err := h.snapshots.Find(ctx, sc.ShopID(), stockID)
	if err != nil {
		return retry(err, "load snapshot")
	}
	if snap != nil {
		return h.remove(ctx, sc, stockID, snap.ProductID(), true)
	}

	productID, err := h.identities.Find(ctx, sc.ShopID(), stockID)
	if err != nil {
		return retry(err, "load product identity")
	}
	if productID == "" {
		return succeeded("nothing synced")
	}
	return h.remove(ctx, sc, stockID, productID, true)
}

// remove deletes the product's files and the product, then the snapshot.
// Local state is only dropped once the storefront confirmed the deletion.
func (h *Handlers) remove(ctx context.Context, sc *settings.SyncContext, stockID, productID string, forgetIdentity bool) Outcome {
	creds := sc.Credentials()

	live, err := h.storefront.GetProduct(ctx, creds, productID)
	if err != nil {
		return retry(err, "load storefront product")
	}
	if live != nil {
		if err := h.storefront.DeleteFiles(ctx, creds, live.MediaIDs); err != nil {
			return retry(err, "delete product media")
		}
		if err := h.storefront.DeleteProduct(ctx, creds, productID); err != nil && !errs.Is(err, shared.ErrProductGone) {
			return retry(err, "delete product")
		}
	}

	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Snapshots().Delete(ctx, sc.ShopID(), stockID); err != nil {
			return err
		}
		if forgetIdentity {
			return tx.Identities().Forget(ctx, sc.ShopID(), stockID)
		}
		return nil
	})
	if err != nil {
		return retry(err, "drop snapshot")
	}

	if forgetIdentity {
		return succeeded("product deleted")
	}
	return succeeded("product removed by filter")
}
