package httperr

import (
	"net/http"

	"vehicle-parking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the response body.
const (
	CodeValidation   = "validation"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeCapacity     = "capacity"
	CodeForbidden    = "forbidden"
	CodeUnauthorized = "unauthorized"
	CodeInternal     = "internal"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err by its category. Uncategorized errors become a 500 whose
// message does not leak err.
func Abort(c *gin.Context, err error) {
	status, code := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = internalMessage
	}
	AbortWithError(c, status, code, err, msg, nil)
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, CodeValidation, err, msg, nil)
}

func StatusOf(err error) (int, string) {
	switch errs.Category(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest, CodeValidation
	case errs.ErrNotFound:
		return http.StatusNotFound, CodeNotFound
	case errs.ErrCapacity:
		return http.StatusConflict, CodeCapacity
	case errs.ErrConflict:
		return http.StatusConflict, CodeConflict
	case errs.ErrForbidden:
		return http.StatusForbidden, CodeForbidden
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized, CodeUnauthorized
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
