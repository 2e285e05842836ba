package response

import (
	"time"

	"catalog-sync/internal/usecase/commands"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BatchResponse struct {
	ShopID     string `json:"shopId"`
	Skipped    string `json:"skipped,omitempty"`
	Selected   int    `json:"selected"`
	Claimed    int    `json:"claimed"`
	Duplicates int    `json:"duplicates"`
	Succeeded  int    `json:"succeeded"`
	Retrying   int    `json:"retrying"`
	Failed     int    `json:"failed"`
}

func FromBatchResult(r productsync.BatchResult) *BatchResponse {
	resp := &BatchResponse{}
	_ = copier.Copy(resp, &r)
	return resp
}

type QueueStatsResponse struct {
	ShopID  string         `json:"shopId"`
	Counts  map[string]int `json:"counts"`
	Pending int            `json:"pending"`
	Total   int            `json:"total"`
}

func FromQueueStats(s *queries.QueueStats) *QueueStatsResponse {
	resp := &QueueStatsResponse{}
	_ = copier.CopyWithOption(resp, s, copier.Option{DeepCopy: true})
	return resp
}

type OptionMappingResponse struct {
	OriginalOption       string `json:"originalOption"`
	MappingOption        string `json:"mappingOption"`
	ProductOptionID      string `json:"productOptionId,omitempty"`
	ProductOptionValueID string `json:"productOptionValueId,omitempty"`
	ProductVariantID     string `json:"productVariantId,omitempty"`
	InventoryItemID      string `json:"inventoryItemId,omitempty"`
}

type SnapshotResponse struct {
	ShopID              string                  `json:"shopId"`
	StockID             string                  `json:"stockId"`
	ProductID           string                  `json:"productId"`
	Brand               string                  `json:"brand"`
	CategoryID          string                  `json:"categoryId"`
	Sizes               []string                `json:"sizes"`
	HasOptionOutOfStock bool                    `json:"hasOptionOutOfStock"`
	Options             []OptionMappingResponse `json:"options"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

func FromSnapshotView(v *queries.SnapshotView) *SnapshotResponse {
	resp := &SnapshotResponse{}
	_ = copier.CopyWithOption(resp, v, copier.Option{DeepCopy: true})
	return resp
}

type EnqueueResponse struct {
	ID string `json:"id"`
}

func FromEntryID(id uuid.UUID) *EnqueueResponse {
	return &EnqueueResponse{ID: id.String()}
}

type ImportResponse struct {
	Scanned  int `json:"scanned"`
	Enqueued int `json:"enqueued"`
}

func FromImportResult(r *commands.ImportResult) *ImportResponse {
	resp := &ImportResponse{}
	_ = copier.Copy(resp, r)
	return resp
}

type RequeueResponse struct {
	Scope    string `json:"scope"`
	Enqueued int    `json:"enqueued"`
}

type UninstallResponse struct {
	QueueEntries int64 `json:"queueEntries"`
	Snapshots    int64 `json:"snapshots"`
	Identities   int64 `json:"identities"`
}

func FromUninstallResult(r *commands.UninstallResult) *UninstallResponse {
	resp := &UninstallResponse{}
	_ = copier.Copy(resp, r)
	return resp
}

type MetafieldResponse struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
}

func FromMetafieldResult(r *commands.MetafieldResult) *MetafieldResponse {
	resp := &MetafieldResponse{}
	_ = copier.Copy(resp, r)
	return resp
}
