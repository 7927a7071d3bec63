package api

import (
	"errors"
	"net/http"
	"strconv"

	"coupon-market/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var errAccessDenied = errors.New("access denied")

// pathID parses the numeric :id segment, aborting with 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
