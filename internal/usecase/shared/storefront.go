package shared

import (
	"context"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/errs"
)

var (
	// ErrAlreadyExists marks storefront rejections for duplicate definitions.
	ErrAlreadyExists = errs.New("already exists on storefront")
	// ErrProductGone marks mutations against a product the storefront no
	// longer has.
	ErrProductGone = errs.New("storefront product not found")
)

const SizeOptionName = "Size"

type ProductStatus string

const (
	ProductActive ProductStatus = "ACTIVE"
	ProductDraft  ProductStatus = "DRAFT"
)

type Metafield struct {
	Namespace string
	Key       string
	Type      string
	Value     string
}

type MetafieldKey struct {
	Namespace string
	Key       string
}

type MetafieldDefinition struct {
	Namespace string
	Key       string
	Name      string
	Type      string
}

type Media struct {
	URL string
	Alt string
}

// ProductInput carries the product-level fields. Nil pointers and nil slices
// leave the storefront value untouched on update.
type ProductInput struct {
	Title        *string
	Description  *string
	Vendor       string
	ProductType  string
	Status       ProductStatus
	CollectionID string
	OptionValues []string
	Media        []Media
	Metafields   []Metafield
}

// OptionUpdate changes the values of the Size option in one call.
type OptionUpdate struct {
	OptionID string
	Add      []string
	Rename   []catalog.OptionValue
	Delete   []string
}

func (u OptionUpdate) IsEmpty() bool {
	return len(u.Add) == 0 && len(u.Rename) == 0 && len(u.Delete) == 0
}

type VariantInput struct {
	ID             string
	OptionValue    string
	Price          string
	CompareAtPrice string
	SKU            string
}

type InventoryAdjustment struct {
	LocationID string
	Reason     string
	Name       string
	Changes    []catalog.InventoryChange
}

type Storefront interface {
	PrimaryLocationID(ctx context.Context, creds settings.Credentials) (string, error)
	OnlineStorePublicationID(ctx context.Context, creds settings.Credentials) (string, error)

	// GetProduct returns nil without error when the product does not exist.
	GetProduct(ctx context.Context, creds settings.Credentials, productID string) (*catalog.ProductState, error)
	CreateProduct(ctx context.Context, creds settings.Credentials, in ProductInput) (catalog.ProductState, error)
	UpdateProduct(ctx context.Context, creds settings.Credentials, productID string, in ProductInput) error
	DeleteProduct(ctx context.Context, creds settings.Credentials, productID string) error
	PublishProduct(ctx context.Context, creds settings.Credentials, productID, publicationID string) error
	DeleteFiles(ctx context.Context, creds settings.Credentials, fileIDs []string) error

	UpdateOptionValues(ctx context.Context, creds settings.Credentials, productID string, up OptionUpdate) (catalog.ProductState, error)
	CreateVariants(ctx context.Context, creds settings.Credentials, productID string, variants []VariantInput) (catalog.ProductState, error)
	UpdateVariants(ctx context.Context, creds settings.Credentials, productID string, variants []VariantInput) error
	// InventoryLevels returns the available quantity of each inventory item at
	// one location. Items not stocked there are omitted.
	InventoryLevels(ctx context.Context, creds settings.Credentials, locationID string, inventoryItemIDs []string) (map[string]int, error)
	AdjustInventory(ctx context.Context, creds settings.Credentials, adj InventoryAdjustment) error

	SetMetafields(ctx context.Context, creds settings.Credentials, productID string, fields []Metafield) error
	DeleteMetafields(ctx context.Context, creds settings.Credentials, productID string, keys []MetafieldKey) error
	CreateMetafieldDefinition(ctx context.Context, creds settings.Credentials, def MetafieldDefinition) error
}
