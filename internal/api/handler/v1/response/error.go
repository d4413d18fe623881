package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/odolbodol/adboard/internal/api/handler/v1/request"
)

// Err is the error body of every failed response: a human-readable
// message, plus the dotted path of the failing field when the failure
// is a validation one.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
}

func (e *Err) Error() string {
	return e.Message
}

// ErrBadRequest builds a 400 from a binding or validation error. When
// the cause is a request.FieldError, the failing field is included.
func ErrBadRequest(err error) *Err {
	e := &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}

	var fieldErr *request.FieldError
	if errors.As(err, &fieldErr) {
		e.Field = fieldErr.Field
	}

	return e
}

// ErrInternalServerError logs the real error and returns a generic
// body. Internals are never leaked to the caller.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.StatusCode, err)
}
