package retailer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

// Client reads stock records from the retailer catalog API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

var _ shared.Retailer = (*Client)(nil)

func NewClient(cfg config.RetailerConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

type sizeDTO struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type stockDTO struct {
	ID            string    `json:"id"`
	Brand         string    `json:"brand"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Images        []string  `json:"images"`
	CategoryID    string    `json:"category_id"`
	SellingPrice  float64   `json:"selling_price"`
	OriginalPrice float64   `json:"original_price"`
	Sizes         []sizeDTO `json:"sizes"`
}

func (d stockDTO) toRecord() catalog.StockRecord {
	sizes := make([]catalog.SizeQuantity, len(d.Sizes))
	for i, s := range d.Sizes {
		sizes[i] = catalog.SizeQuantity{Size: s.Size, Quantity: s.Quantity}
	}
	return catalog.StockRecord{
		ID:            d.ID,
		Brand:         d.Brand,
		Name:          d.Name,
		Description:   d.Description,
		Images:        d.Images,
		CategoryID:    d.CategoryID,
		SellingPrice:  d.SellingPrice,
		OriginalPrice: d.OriginalPrice,
		Sizes:         sizes,
	}
}

type pageDTO struct {
	Items []stockDTO `json:"items"`
	Total int        `json:"total"`
}

func (c *Client) GetStock(ctx context.Context, apiKey, stockID string) (catalog.StockRecord, error) {
	var dto stockDTO
	if err := c.get(ctx, apiKey, "/stocks/"+url.PathEscape(stockID), nil, &dto); err != nil {
		return catalog.StockRecord{}, err
	}
	if dto.ID == "" {
		dto.ID = stockID
	}
	return dto.toRecord(), nil
}

func (c *Client) ListStock(ctx context.Context, apiKey string, offset, limit int) (shared.StockPage, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var dto pageDTO
	if err := c.get(ctx, apiKey, "/stocks", q, &dto); err != nil {
		return shared.StockPage{}, err
	}
	page := shared.StockPage{Total: dto.Total, Items: make([]catalog.StockRecord, len(dto.Items))}
	for i, item := range dto.Items {
		page.Items[i] = item.toRecord()
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, apiKey, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errs.Wrap(err, "build retailer request")
	}
	req.Header.Set("X-Api-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "call retailer api"), errs.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return shared.ErrStockNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("retailer api returned %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return errs.Mark(err, errs.ErrUnavailable)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode retailer response")
	}
	return nil
}
