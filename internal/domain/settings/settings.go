package settings

import (
	"sort"
	"strings"

	"catalog-sync/internal/domain/catalog"
)

// Shop is one storefront installation.
type Shop struct {
	ID             string
	Domain         string
	AccessToken    string
	RetailerAPIKey string
	Enabled        bool
}

func (s Shop) IsActive() bool {
	return s.Enabled && s.Domain != "" && s.AccessToken != ""
}

// Credentials are what the storefront client needs to act for a shop.
func (s Shop) Credentials() Credentials {
	return Credentials{ShopDomain: s.Domain, AccessToken: s.AccessToken}
}

type Credentials struct {
	ShopDomain  string
	AccessToken string
}

// BrandFilter is the set of retailer brands a shop wants listed. Brand names
// compare case-insensitively.
type BrandFilter struct {
	brands map[string]string
}

func NewBrandFilter(brands []string) BrandFilter {
	f := BrandFilter{brands: make(map[string]string, len(brands))}
	for _, b := range brands {
		key := normalizeBrand(b)
		if key == "" {
			continue
		}
		if _, ok := f.brands[key]; !ok {
			f.brands[key] = strings.TrimSpace(b)
		}
	}
	return f
}

func (f BrandFilter) Allows(brand string) bool {
	_, ok := f.brands[normalizeBrand(brand)]
	return ok
}

func (f BrandFilter) IsEmpty() bool {
	return len(f.brands) == 0
}

func (f BrandFilter) Brands() []string {
	out := make([]string, 0, len(f.brands))
	for _, b := range f.brands {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

func normalizeBrand(b string) string {
	return strings.ToLower(strings.TrimSpace(b))
}

// CategoryMapping maps a retailer category onto a storefront collection with
// a price margin.
type CategoryMapping struct {
	RetailerID    string
	DropShipperID string
	Margin        float64
}

type CategoryMappings []CategoryMapping

func (m CategoryMappings) Find(retailerID string) (CategoryMapping, bool) {
	for _, c := range m {
		if c.RetailerID == retailerID {
			return c, true
		}
	}
	return CategoryMapping{}, false
}

type OptionOverride struct {
	RetailerOptionName    string
	DropshipperOptionName string
}

// AttributeMapping renames retailer sizes before they reach the storefront.
type AttributeMapping struct {
	Options []OptionOverride
}

// Resolve returns the override for size. The first matching row wins; with no
// match, or an empty override, the raw size is returned.
func (a AttributeMapping) Resolve(size string) string {
	for _, o := range a.Options {
		if o.RetailerOptionName != size {
			continue
		}
		if name := strings.TrimSpace(o.DropshipperOptionName); name != "" {
			return name
		}
		return size
	}
	return size
}

var _ catalog.OptionNamer = AttributeMapping{}

type GeneralSetting struct {
	IncludeBrand   bool
	DeleteOutStock bool
	ProductAsDraft bool
	PricesRounding catalog.RoundingPolicy
	Currency       string
	CurrencyRate   float64
}

// SyncSetting toggles which product fields follow the retailer after the
// product is created.
type SyncSetting struct {
	Title       bool
	Description bool
	Images      bool
	Categories  bool
	Metafields  bool
}

// DefaultSyncSetting syncs every field.
func DefaultSyncSetting() SyncSetting {
	return SyncSetting{Title: true, Description: true, Images: true, Categories: true, Metafields: true}
}
