package response

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"filmoteka/internal/domain"

	"github.com/gin-gonic/gin"
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the uniform error envelope.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// PathID parses the named path parameter as an id. On failure it writes a
// 400 envelope and reports false, so handlers can just return.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// HandleError maps the domain error taxonomy onto HTTP error envelopes.
// Anything outside the taxonomy is logged and reported as a 500.
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrReferenceNotFound):
		Error(c, http.StatusNotFound, "REFERENCE_NOT_FOUND", err.Error())
	default:
		log.Printf("unexpected error on %s: %v", c.FullPath(), err)
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
