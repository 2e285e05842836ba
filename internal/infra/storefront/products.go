package storefront

import (
	"context"
	"strings"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

const onlineStoreName = "Online Store"

type productNode struct {
	ID      string `json:"id"`
	Options []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		OptionValues []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"optionValues"`
	} `json:"options"`
	Variants struct {
		Nodes []variantNode `json:"nodes"`
	} `json:"variants"`
	Media struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
	} `json:"media"`
}

type variantNode struct {
	ID              string  `json:"id"`
	Price           string  `json:"price"`
	CompareAtPrice  *string `json:"compareAtPrice"`
	SelectedOptions []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"selectedOptions"`
	InventoryItem struct {
		ID string `json:"id"`
	} `json:"inventoryItem"`
}

func (n productNode) toState() catalog.ProductState {
	state := catalog.ProductState{ID: n.ID}

	optionIdx := -1
	for i, o := range n.Options {
		if strings.EqualFold(o.Name, shared.SizeOptionName) {
			optionIdx = i
			break
		}
	}
	if optionIdx < 0 && len(n.Options) > 0 {
		optionIdx = 0
	}
	optionName := ""
	if optionIdx >= 0 {
		opt := n.Options[optionIdx]
		optionName = opt.Name
		state.OptionID = opt.ID
		for _, v := range opt.OptionValues {
			state.OptionValues = append(state.OptionValues, catalog.OptionValue{ID: v.ID, Name: v.Name})
		}
	}

	for _, v := range n.Variants.Nodes {
		variant := catalog.Variant{
			ID:              v.ID,
			InventoryItemID: v.InventoryItem.ID,
			Price:           v.Price,
		}
		if v.CompareAtPrice != nil {
			variant.CompareAtPrice = *v.CompareAtPrice
		}
		for _, so := range v.SelectedOptions {
			if so.Name == optionName {
				variant.OptionValueName = so.Value
				break
			}
		}
		state.Variants = append(state.Variants, variant)
	}

	for _, m := range n.Media.Nodes {
		state.MediaIDs = append(state.MediaIDs, m.ID)
	}
	return state
}

func (c *Client) PrimaryLocationID(ctx context.Context, creds settings.Credentials) (string, error) {
	return c.cached(creds.ShopDomain+"|location", func() (string, error) {
		var out struct {
			Location *struct {
				ID string `json:"id"`
			} `json:"location"`
		}
		if err := c.do(ctx, creds, primaryLocationQuery, nil, &out); err != nil {
			return "", errs.Wrap(err, "query primary location")
		}
		if out.Location == nil {
			return "", nil
		}
		return out.Location.ID, nil
	})
}

func (c *Client) OnlineStorePublicationID(ctx context.Context, creds settings.Credentials) (string, error) {
	return c.cached(creds.ShopDomain+"|publication", func() (string, error) {
		var out struct {
			Publications struct {
				Nodes []struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"nodes"`
			} `json:"publications"`
		}
		if err := c.do(ctx, creds, publicationsQuery, nil, &out); err != nil {
			return "", errs.Wrap(err, "query publications")
		}
		for _, p := range out.Publications.Nodes {
			if p.Name == onlineStoreName {
				return p.ID, nil
			}
		}
		return "", nil
	})
}

func (c *Client) GetProduct(ctx context.Context, creds settings.Credentials, productID string) (*catalog.ProductState, error) {
	var out struct {
		Product *productNode `json:"product"`
	}
	if err := c.do(ctx, creds, productQuery, map[string]any{"id": productID}, &out); err != nil {
		return nil, errs.Wrap(err, "query product")
	}
	if out.Product == nil {
		return nil, nil
	}
	state := out.Product.toState()
	return &state, nil
}

func (c *Client) CreateProduct(ctx context.Context, creds settings.Credentials, in shared.ProductInput) (catalog.ProductState, error) {
	product := productFieldsOf(in)
	if len(in.OptionValues) > 0 {
		values := make([]map[string]any, len(in.OptionValues))
		for i, v := range in.OptionValues {
			values[i] = map[string]any{"name": v}
		}
		product["productOptions"] = []map[string]any{{"name": shared.SizeOptionName, "values": values}}
	}
	if len(in.Metafields) > 0 {
		fields := make([]map[string]any, len(in.Metafields))
		for i, m := range in.Metafields {
			fields[i] = map[string]any{"namespace": m.Namespace, "key": m.Key, "type": m.Type, "value": m.Value}
		}
		product["metafields"] = fields
	}

	var out struct {
		ProductCreate struct {
			Product    *productNode `json:"product"`
			UserErrors []UserError  `json:"userErrors"`
		} `json:"productCreate"`
	}
	vars := map[string]any{"product": product, "media": mediaInputs(in.Media)}
	if err := c.do(ctx, creds, productCreateMutation, vars, &out); err != nil {
		return catalog.ProductState{}, errs.Wrap(err, "productCreate")
	}
	if err := checkUserErrors("productCreate", out.ProductCreate.UserErrors); err != nil {
		return catalog.ProductState{}, err
	}
	if out.ProductCreate.Product == nil {
		return catalog.ProductState{}, errs.New("productCreate returned no product")
	}
	return out.ProductCreate.Product.toState(), nil
}

func (c *Client) UpdateProduct(ctx context.Context, creds settings.Credentials, productID string, in shared.ProductInput) error {
	product := productFieldsOf(in)
	product["id"] = productID

	var out struct {
		ProductUpdate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"productUpdate"`
	}
	vars := map[string]any{"product": product, "media": mediaInputs(in.Media)}
	if err := c.do(ctx, creds, productUpdateMutation, vars, &out); err != nil {
		return errs.Wrap(err, "productUpdate")
	}
	return checkUserErrors("productUpdate", out.ProductUpdate.UserErrors)
}

func (c *Client) DeleteProduct(ctx context.Context, creds settings.Credentials, productID string) error {
	var out struct {
		ProductDelete struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"productDelete"`
	}
	vars := map[string]any{"input": map[string]any{"id": productID}}
	if err := c.do(ctx, creds, productDeleteMutation, vars, &out); err != nil {
		return errs.Wrap(err, "productDelete")
	}
	return checkUserErrors("productDelete", out.ProductDelete.UserErrors)
}

func (c *Client) PublishProduct(ctx context.Context, creds settings.Credentials, productID, publicationID string) error {
	var out struct {
		PublishablePublish struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"publishablePublish"`
	}
	vars := map[string]any{
		"id":    productID,
		"input": []map[string]any{{"publicationId": publicationID}},
	}
	if err := c.do(ctx, creds, publishMutation, vars, &out); err != nil {
		return errs.Wrap(err, "publishablePublish")
	}
	return checkUserErrors("publishablePublish", out.PublishablePublish.UserErrors)
}

func (c *Client) DeleteFiles(ctx context.Context, creds settings.Credentials, fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}
	var out struct {
		FileDelete struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"fileDelete"`
	}
	if err := c.do(ctx, creds, fileDeleteMutation, map[string]any{"fileIds": fileIDs}, &out); err != nil {
		return errs.Wrap(err, "fileDelete")
	}
	return checkUserErrors("fileDelete", out.FileDelete.UserErrors)
}

func (c *Client) UpdateOptionValues(ctx context.Context, creds settings.Credentials, productID string, up shared.OptionUpdate) (catalog.ProductState, error) {
	vars := map[string]any{
		"productId": productID,
		"option":    map[string]any{"id": up.OptionID},
	}
	if len(up.Add) > 0 {
		add := make([]map[string]any, len(up.Add))
		for i, name := range up.Add {
			add[i] = map[string]any{"name": name}
		}
		vars["optionValuesToAdd"] = add
	}
	if len(up.Rename) > 0 {
		rename := make([]map[string]any, len(up.Rename))
		for i, v := range up.Rename {
			rename[i] = map[string]any{"id": v.ID, "name": v.Name}
		}
		vars["optionValuesToUpdate"] = rename
	}
	if len(up.Delete) > 0 {
		vars["optionValuesToDelete"] = up.Delete
	}

	var out struct {
		ProductOptionUpdate struct {
			Product    *productNode `json:"product"`
			UserErrors []UserError  `json:"userErrors"`
		} `json:"productOptionUpdate"`
	}
	if err := c.do(ctx, creds, optionUpdateMutation, vars, &out); err != nil {
		return catalog.ProductState{}, errs.Wrap(err, "productOptionUpdate")
	}
	if err := checkUserErrors("productOptionUpdate", out.ProductOptionUpdate.UserErrors); err != nil {
		return catalog.ProductState{}, err
	}
	if out.ProductOptionUpdate.Product == nil {
		return catalog.ProductState{}, errs.New("productOptionUpdate returned no product")
	}
	return out.ProductOptionUpdate.Product.toState(), nil
}

func (c *Client) CreateVariants(ctx context.Context, creds settings.Credentials, productID string, variants []shared.VariantInput) (catalog.ProductState, error) {
	inputs := make([]map[string]any, len(variants))
	for i, v := range variants {
		in := variantInput(v)
		in["optionValues"] = []map[string]any{{"optionName": shared.SizeOptionName, "name": v.OptionValue}}
		in["inventoryItem"] = map[string]any{"sku": v.SKU, "tracked": true}
		inputs[i] = in
	}

	var out struct {
		ProductVariantsBulkCreate struct {
			Product    *productNode `json:"product"`
			UserErrors []UserError  `json:"userErrors"`
		} `json:"productVariantsBulkCreate"`
	}
	vars := map[string]any{"productId": productID, "variants": inputs}
	if err := c.do(ctx, creds, variantsBulkCreateMutation, vars, &out); err != nil {
		return catalog.ProductState{}, errs.Wrap(err, "productVariantsBulkCreate")
	}
	if err := checkUserErrors("productVariantsBulkCreate", out.ProductVariantsBulkCreate.UserErrors); err != nil {
		return catalog.ProductState{}, err
	}
	if out.ProductVariantsBulkCreate.Product == nil {
		return catalog.ProductState{}, errs.New("productVariantsBulkCreate returned no product")
	}
	return out.ProductVariantsBulkCreate.Product.toState(), nil
}

func (c *Client) UpdateVariants(ctx context.Context, creds settings.Credentials, productID string, variants []shared.VariantInput) error {
	inputs := make([]map[string]any, len(variants))
	for i, v := range variants {
		in := variantInput(v)
		in["id"] = v.ID
		inputs[i] = in
	}

	var out struct {
		ProductVariantsBulkUpdate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"productVariantsBulkUpdate"`
	}
	vars := map[string]any{"productId": productID, "variants": inputs}
	if err := c.do(ctx, creds, variantsBulkUpdateMutation, vars, &out); err != nil {
		return errs.Wrap(err, "productVariantsBulkUpdate")
	}
	return checkUserErrors("productVariantsBulkUpdate", out.ProductVariantsBulkUpdate.UserErrors)
}

// maxNodesPerQuery is the storefront's cap on ids in one nodes() lookup.
const maxNodesPerQuery = 250

func (c *Client) InventoryLevels(ctx context.Context, creds settings.Credentials, locationID string, inventoryItemIDs []string) (map[string]int, error) {
	levels := make(map[string]int, len(inventoryItemIDs))
	for start := 0; start < len(inventoryItemIDs); start += maxNodesPerQuery {
		ids := inventoryItemIDs[start:min(start+maxNodesPerQuery, len(inventoryItemIDs))]
		var out struct {
			Nodes []*struct {
				ID             string `json:"id"`
				InventoryLevel *struct {
					Quantities []struct {
						Name     string `json:"name"`
						Quantity int    `json:"quantity"`
					} `json:"quantities"`
				} `json:"inventoryLevel"`
			} `json:"nodes"`
		}
		vars := map[string]any{"ids": ids, "locationId": locationID}
		if err := c.do(ctx, creds, inventoryLevelsQuery, vars, &out); err != nil {
			return nil, errs.Wrap(err, "query inventory levels")
		}
		for _, n := range out.Nodes {
			if n == nil || n.InventoryLevel == nil {
				continue
			}
			for _, q := range n.InventoryLevel.Quantities {
				if q.Name == catalog.InventoryQuantityName {
					levels[n.ID] = q.Quantity
				}
			}
		}
	}
	return levels, nil
}

func (c *Client) AdjustInventory(ctx context.Context, creds settings.Credentials, adj shared.InventoryAdjustment) error {
	if len(adj.Changes) == 0 {
		return nil
	}
	changes := make([]map[string]any, len(adj.Changes))
	for i, ch := range adj.Changes {
		changes[i] = map[string]any{
			"delta":           ch.Delta,
			"inventoryItemId": ch.InventoryItemID,
			"locationId":      adj.LocationID,
		}
	}

	var out struct {
		InventoryAdjustQuantities struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"inventoryAdjustQuantities"`
	}
	vars := map[string]any{"input": map[string]any{
		"reason":  adj.Reason,
		"name":    adj.Name,
		"changes": changes,
	}}
	if err := c.do(ctx, creds, inventoryAdjustMutation, vars, &out); err != nil {
		return errs.Wrap(err, "inventoryAdjustQuantities")
	}
	return checkUserErrors("inventoryAdjustQuantities", out.InventoryAdjustQuantities.UserErrors)
}

func (c *Client) SetMetafields(ctx context.Context, creds settings.Credentials, productID string, fields []shared.Metafield) error {
	if len(fields) == 0 {
		return nil
	}
	inputs := make([]map[string]any, len(fields))
	for i, f := range fields {
		inputs[i] = map[string]any{
			"ownerId":   productID,
			"namespace": f.Namespace,
			"key":       f.Key,
			"type":      f.Type,
			"value":     f.Value,
		}
	}

	var out struct {
		MetafieldsSet struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"metafieldsSet"`
	}
	if err := c.do(ctx, creds, metafieldsSetMutation, map[string]any{"metafields": inputs}, &out); err != nil {
		return errs.Wrap(err, "metafieldsSet")
	}
	return checkUserErrors("metafieldsSet", out.MetafieldsSet.UserErrors)
}

func (c *Client) DeleteMetafields(ctx context.Context, creds settings.Credentials, productID string, keys []shared.MetafieldKey) error {
	if len(keys) == 0 {
		return nil
	}
	inputs := make([]map[string]any, len(keys))
	for i, k := range keys {
		inputs[i] = map[string]any{"ownerId": productID, "namespace": k.Namespace, "key": k.Key}
	}

	var out struct {
		MetafieldsDelete struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"metafieldsDelete"`
	}
	if err := c.do(ctx, creds, metafieldsDeleteMutation, map[string]any{"metafields": inputs}, &out); err != nil {
		return errs.Wrap(err, "metafieldsDelete")
	}
	return checkUserErrors("metafieldsDelete", out.MetafieldsDelete.UserErrors)
}

func (c *Client) CreateMetafieldDefinition(ctx context.Context, creds settings.Credentials, def shared.MetafieldDefinition) error {
	var out struct {
		MetafieldDefinitionCreate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"metafieldDefinitionCreate"`
	}
	vars := map[string]any{"definition": map[string]any{
		"name":      def.Name,
		"namespace": def.Namespace,
		"key":       def.Key,
		"type":      def.Type,
		"ownerType": "PRODUCT",
	}}
	if err := c.do(ctx, creds, metafieldDefinitionCreateMutation, vars, &out); err != nil {
		return errs.Wrap(err, "metafieldDefinitionCreate")
	}
	return checkUserErrors("metafieldDefinitionCreate", out.MetafieldDefinitionCreate.UserErrors)
}

// productFieldsOf maps the fields shared by create and update. Nil pointers
// and empty strings are left out so the storefront keeps its value.
func productFieldsOf(in shared.ProductInput) map[string]any {
	product := map[string]any{}
	if in.Title != nil {
		product["title"] = *in.Title
	}
	if in.Description != nil {
		product["descriptionHtml"] = *in.Description
	}
	if in.Vendor != "" {
		product["vendor"] = in.Vendor
	}
	if in.ProductType != "" {
		product["productType"] = in.ProductType
	}
	if in.Status != "" {
		product["status"] = string(in.Status)
	}
	if in.CollectionID != "" {
		product["collectionsToJoin"] = []string{in.CollectionID}
	}
	return product
}

func mediaInputs(media []shared.Media) []map[string]any {
	if len(media) == 0 {
		return nil
	}
	out := make([]map[string]any, len(media))
	for i, m := range media {
		out[i] = map[string]any{"originalSource": m.URL, "alt": m.Alt, "mediaContentType": "IMAGE"}
	}
	return out
}

func variantInput(v shared.VariantInput) map[string]any {
	in := map[string]any{}
	if v.Price != "" {
		in["price"] = v.Price
	}
	if v.CompareAtPrice != "" {
		in["compareAtPrice"] = v.CompareAtPrice
	}
	return in
}
