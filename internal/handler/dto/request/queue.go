package request

import (
	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/usecase/commands"
)

type EnqueueRequest struct {
	StockID string `json:"stockId" binding:"required,max=255"`
	Action  string `json:"action" binding:"required,oneof=create update delete"`
}

func (r *EnqueueRequest) ToDomain() (string, queue.Status, error) {
	action, err := queue.ParseStatus(r.Action)
	if err != nil {
		return "", "", err
	}
	return r.StockID, action, nil
}

type RequeueRequest struct {
	Scope  string   `json:"scope" binding:"required,oneof=brands categories all"`
	Values []string `json:"values" binding:"omitempty,max=1000,dive,required"`
}

func (r *RequeueRequest) ToDomain() (commands.RequeueScope, []string) {
	return commands.RequeueScope(r.Scope), r.Values
}
