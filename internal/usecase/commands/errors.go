package commands

import (
	"catalog-sync/internal/pkg/errs"
)

var (
	ErrShopNotFound    = errs.Mark(errs.New("shop not found"), errs.ErrNotFound)
	ErrInvalidIntent   = errs.Mark(errs.New("invalid queue intent"), errs.ErrInvalidArgument)
	ErrInvalidScope    = errs.Mark(errs.New("invalid requeue scope"), errs.ErrInvalidArgument)
	ErrNoRequeueValues = errs.Mark(errs.New("requeue scope needs at least one value"), errs.ErrInvalidArgument)
)
