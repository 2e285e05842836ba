package storefront

import (
	"fmt"
	"strings"

	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

// ErrThrottled is returned once the retry budget is spent on 429 or
// THROTTLED responses.
var ErrThrottled = errs.Mark(errs.New("storefront api throttled"), errs.ErrUnavailable)

type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
}

// UserErrors is a mutation that the storefront accepted at the transport
// level but rejected with a non-empty userErrors list.
type UserErrors struct {
	Operation string
	Errors    []UserError
}

func (e *UserErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, ue := range e.Errors {
		msg := strings.TrimSpace(ue.Message)
		if len(ue.Field) == 0 {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(ue.Field, "."), msg))
	}
	return fmt.Sprintf("storefront %s failed: %s", e.Operation, strings.Join(parts, "; "))
}

// HTTPError is a non-200 answer from the GraphQL endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("storefront api returned %d: %s", e.StatusCode, e.Body)
}

type GraphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// QueryErrors is a top-level GraphQL "errors" array.
type QueryErrors []GraphQLError

func (e QueryErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ge := range e {
		msgs[i] = ge.Message
	}
	return "storefront graphql errors: " + strings.Join(msgs, "; ")
}

func (e QueryErrors) throttled() bool {
	for _, ge := range e {
		if ge.Extensions.Code == "THROTTLED" {
			return true
		}
	}
	return false
}

func checkUserErrors(op string, list []UserError) error {
	if len(list) == 0 {
		return nil
	}
	err := error(&UserErrors{Operation: op, Errors: list})
	for _, ue := range list {
		if ue.Code == "TAKEN" {
			return errs.Mark(err, shared.ErrAlreadyExists)
		}
		if isGone(ue) {
			return errs.Mark(err, shared.ErrProductGone)
		}
	}
	return err
}

func isGone(ue UserError) bool {
	switch ue.Code {
	case "PRODUCT_DOES_NOT_EXIST", "PRODUCT_NOT_FOUND", "NOT_FOUND":
		return true
	}
	return strings.Contains(strings.ToLower(ue.Message), "does not exist")
}
