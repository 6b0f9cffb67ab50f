package response

import (
	"errors"
	"net/http"

	"github.com/HemantKumar01/ARKane-Wallet/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Error     string `json:"error"`
}

// OK sends a 200 response with the given body. Response shapes are part of
// the wire contract, so bodies are emitted as-is with no envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Error:     appErr.Message,
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Error:     "Internal server error",
	})
}
