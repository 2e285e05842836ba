package settings

import (
	"errors"
	"fmt"

	"catalog-sync/internal/domain/catalog"
)

var (
	ErrIncompleteSettings = errors.New("incomplete sync settings")
	ErrShopInactive       = errors.New("shop integration is disabled")
	ErrNoBrands           = errors.New("no brands enabled")
)

type SyncContextInput struct {
	Shop          *Shop
	Brands        BrandFilter
	Categories    CategoryMappings
	Attributes    AttributeMapping
	General       *GeneralSetting
	Sync          *SyncSetting
	LocationID    string
	PublicationID string
}

// SyncContext is the immutable, validated view of everything a batch needs
// about its shop. It is built once per batch and shared by every handler.
type SyncContext struct {
	shop          Shop
	brands        BrandFilter
	categories    CategoryMappings
	attributes    AttributeMapping
	general       GeneralSetting
	sync          SyncSetting
	locationID    string
	publicationID string
}

func NewSyncContext(in SyncContextInput) (*SyncContext, error) {
	if in.Shop == nil {
		return nil, fmt.Errorf("%w: shop not found", ErrIncompleteSettings)
	}
	if !in.Shop.IsActive() {
		return nil, ErrShopInactive
	}
	if in.Brands.IsEmpty() {
		return nil, ErrNoBrands
	}
	if in.General == nil {
		return nil, fmt.Errorf("%w: general setting missing", ErrIncompleteSettings)
	}
	if in.LocationID == "" {
		return nil, fmt.Errorf("%w: no default location", ErrIncompleteSettings)
	}
	if in.PublicationID == "" {
		return nil, fmt.Errorf("%w: no online store publication", ErrIncompleteSettings)
	}

	sync := DefaultSyncSetting()
	if in.Sync != nil {
		sync = *in.Sync
	}

	categories := make(CategoryMappings, len(in.Categories))
	copy(categories, in.Categories)
	overrides := make([]OptionOverride, len(in.Attributes.Options))
	copy(overrides, in.Attributes.Options)

	return &SyncContext{
		shop:          *in.Shop,
		brands:        in.Brands,
		categories:    categories,
		attributes:    AttributeMapping{Options: overrides},
		general:       *in.General,
		sync:          sync,
		locationID:    in.LocationID,
		publicationID: in.PublicationID,
	}, nil
}

func (c *SyncContext) Shop() Shop                   { return c.shop }
func (c *SyncContext) ShopID() string               { return c.shop.ID }
func (c *SyncContext) Credentials() Credentials     { return c.shop.Credentials() }
func (c *SyncContext) Brands() BrandFilter          { return c.brands }
func (c *SyncContext) Attributes() AttributeMapping { return c.attributes }
func (c *SyncContext) General() GeneralSetting      { return c.general }
func (c *SyncContext) Sync() SyncSetting            { return c.sync }
func (c *SyncContext) LocationID() string           { return c.locationID }
func (c *SyncContext) PublicationID() string        { return c.publicationID }

func (c *SyncContext) AllowsBrand(brand string) bool {
	return c.brands.Allows(brand)
}

func (c *SyncContext) Category(retailerID string) (CategoryMapping, bool) {
	return c.categories.Find(retailerID)
}

// PriceRule combines the category margin with the shop currency settings.
func (c *SyncContext) PriceRule(retailerCategoryID string) catalog.PriceRule {
	rule := catalog.PriceRule{
		Margin:       1,
		CurrencyRate: c.general.CurrencyRate,
		Rounding:     c.general.PricesRounding,
	}
	if m, ok := c.categories.Find(retailerCategoryID); ok {
		rule.Margin = m.Margin
	}
	return rule
}
