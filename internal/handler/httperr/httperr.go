package httperr

import (
	"errors"
	"net/http"

	"coupon-market/internal/pkg/apperr"

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

// AbortWithAppError maps a service-layer failure onto an HTTP response.
// InvalidParameter failures carry their field errors in the detail payload.
func AbortWithAppError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	var detail any
	if len(appErr.Fields) > 0 {
		detail = appErr.Fields
	}
	AbortWithError(c, statusOf(appErr.Category), err, appErr.Message, detail)
}

func statusOf(category apperr.Category) int {
	switch category {
	case apperr.BadInput, apperr.InvalidParameter:
		return http.StatusBadRequest
	case apperr.NameAlreadyExists, apperr.EmailAlreadyExists, apperr.GeneralError:
		return http.StatusConflict
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
