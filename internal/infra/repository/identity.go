package repository

import (
	"context"
	"time"

	"catalog-sync/internal/infra"
	"catalog-sync/internal/pkg/pgconv"
)

type IdentityRepository struct {
	db DBTX
}

func NewIdentityRepository(db DBTX) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) Find(ctx context.Context, shopID, stockID string) (string, error) {
	var productID string
	err := r.db.QueryRow(ctx, `SELECT product_id FROM product_identities WHERE shop_id = $1 AND stock_id = $2`,
		shopID, stockID).Scan(&productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to find product identity", err)
	}
	return productID, nil
}

func (r *IdentityRepository) Remember(ctx context.Context, shopID, stockID, productID string, now time.Time) error {
	_, err := r.db.Exec(ctx, `INSERT INTO product_identities (shop_id, stock_id, product_id, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shop_id, stock_id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			updated_at = EXCLUDED.updated_at`, shopID, stockID, productID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to remember product identity", err)
	}
	return nil
}

func (r *IdentityRepository) Forget(ctx context.Context, shopID, stockID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM product_identities WHERE shop_id = $1 AND stock_id = $2`,
		shopID, stockID); err != nil {
		return infra.WrapRepoErr("failed to forget product identity", err)
	}
	return nil
}

func (r *IdentityRepository) DeleteByShop(ctx context.Context, shopID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_identities WHERE shop_id = $1`, shopID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete product identities", err)
	}
	return tag.RowsAffected(), nil
}
