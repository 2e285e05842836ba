package httperr

import (
	"net/http"

	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps classification marks to an HTTP status.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, shared.ErrAlreadyExists):
		return http.StatusConflict
	case errs.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Abort picks the status from err. Server errors hide the cause from the
// client.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		AbortWithError(c, status, err, msg, nil)
		return
	}
	AbortWithError(c, status, err, msg, err.Error())
}
