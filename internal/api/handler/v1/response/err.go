package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int
	err        error

	ErrorMsg string   `json:"error"`
	Details  []string `json:"details,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		err:        err,
		ErrorMsg:   err.Error(),
	}
}

// ErrValidationFailed renders a 400 with the flat list of field
// violations, one string per violated field or row.
func ErrValidationFailed(details []string) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		ErrorMsg:   "Validation failed",
		Details:    details,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		err:        err,
		ErrorMsg:   "wrong credentials",
	}
}

func ErrPermissionDenied() *Err {
	return &Err{
		statusCode: http.StatusForbidden,
		ErrorMsg:   "permission denied",
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		err:        err,
		ErrorMsg:   err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		statusCode: http.StatusInternalServerError,
		err:        err,
		ErrorMsg:   "internal server error",
	}
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(e.err))
	}

	ctx.AbortWithStatusJSON(e.statusCode, e)
}
