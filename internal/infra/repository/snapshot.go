package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/infra"
	"catalog-sync/internal/pkg/pgconv"
	"catalog-sync/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type SnapshotRepository struct {
	db DBTX
}

func NewSnapshotRepository(db DBTX) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Find(ctx context.Context, shopID, stockID string) (*catalog.Snapshot, error) {
	var (
		productID, brand, categoryID string
		sizes                        []string
		hasOutOfStock                bool
		updatedAt                    time.Time
	)
	err := r.db.QueryRow(ctx, `SELECT product_id, brand, category_id, sizes, has_option_out_of_stock, updated_at
		FROM catalog_snapshots
		WHERE shop_id = $1 AND stock_id = $2`, shopID, stockID).
		Scan(&productID, &brand, &categoryID, &sizes, &hasOutOfStock, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find snapshot", err)
	}

	rows, err := r.db.Query(ctx, `SELECT original_option, mapping_option, product_option_id,
			product_option_value_id, product_variant_id, inventory_item_id
		FROM option_mappings
		WHERE shop_id = $1 AND stock_id = $2
		ORDER BY position`, shopID, stockID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load option mappings", err)
	}
	options, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.OptionMapping, error) {
		var m catalog.OptionMapping
		err := row.Scan(&m.OriginalOption, &m.MappingOption, &m.ProductOptionID,
			&m.ProductOptionValueID, &m.ProductVariantID, &m.InventoryItemID)
		return m, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan option mappings", err)
	}

	return catalog.ReconstructSnapshot(shopID, stockID, productID, brand, categoryID,
		sizes, hasOutOfStock, options, updatedAt), nil
}

// Save must run inside a transaction; the mapping rows are replaced wholesale.
func (r *SnapshotRepository) Save(ctx context.Context, s *catalog.Snapshot) error {
	sizes := s.Sizes()
	if sizes == nil {
		sizes = []string{}
	}
	_, err := r.db.Exec(ctx, `INSERT INTO catalog_snapshots
			(shop_id, stock_id, product_id, brand, category_id, sizes, has_option_out_of_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (shop_id, stock_id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			brand = EXCLUDED.brand,
			category_id = EXCLUDED.category_id,
			sizes = EXCLUDED.sizes,
			has_option_out_of_stock = EXCLUDED.has_option_out_of_stock,
			updated_at = EXCLUDED.updated_at`,
		s.ShopID(), s.StockID(), s.ProductID(), s.Brand(), s.CategoryID(),
		sizes, s.HasOptionOutOfStock(), s.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to upsert snapshot", err)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM option_mappings WHERE shop_id = $1 AND stock_id = $2`,
		s.ShopID(), s.StockID()); err != nil {
		return infra.WrapRepoErr("failed to clear option mappings", err)
	}

	options := s.Options()
	if len(options) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, o := range options {
		batch.Queue(`INSERT INTO option_mappings
				(shop_id, stock_id, position, original_option, mapping_option, product_option_id,
				 product_option_value_id, product_variant_id, inventory_item_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			s.ShopID(), s.StockID(), i, o.OriginalOption, o.MappingOption, o.ProductOptionID,
			o.ProductOptionValueID, o.ProductVariantID, o.InventoryItemID)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to insert option mappings", err)
	}
	return nil
}

// Delete removes the snapshot; option mappings go with it by cascade.
func (r *SnapshotRepository) Delete(ctx context.Context, shopID, stockID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM catalog_snapshots WHERE shop_id = $1 AND stock_id = $2`,
		shopID, stockID); err != nil {
		return infra.WrapRepoErr("failed to delete snapshot", err)
	}
	return nil
}

func (r *SnapshotRepository) ListStockIDs(ctx context.Context, shopID string, filter shared.SnapshotFilter, after string, limit int) ([]string, error) {
	var (
		where = []string{"shop_id = $1", "stock_id > $2"}
		args  = []any{shopID, after}
	)
	if len(filter.Brands) > 0 {
		lowered := make([]string, len(filter.Brands))
		for i, b := range filter.Brands {
			lowered[i] = strings.ToLower(strings.TrimSpace(b))
		}
		args = append(args, lowered)
		where = append(where, "lower(brand) = ANY($"+strconv.Itoa(len(args))+")")
	}
	if len(filter.CategoryIDs) > 0 {
		args = append(args, filter.CategoryIDs)
		where = append(where, "category_id = ANY($"+strconv.Itoa(len(args))+")")
	}
	args = append(args, limit)

	query := `SELECT stock_id FROM catalog_snapshots WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY stock_id LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list snapshot stock ids", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan snapshot stock ids", err)
	}
	return ids, nil
}

func (r *SnapshotRepository) DeleteByShop(ctx context.Context, shopID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM catalog_snapshots WHERE shop_id = $1`, shopID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete snapshots", err)
	}
	return tag.RowsAffected(), nil
}
