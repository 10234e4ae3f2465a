package errors

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error body returned by the API
type Response struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// AbortWithError writes the error to the gin context as a JSON response,
// mapping the error code to an HTTP status. Non-coded errors surface as
// INTERNAL without leaking their cause to the client.
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	code := GetCode(err)
	resp := Response{
		Code:    code.String(),
		Message: GetMessage(err),
	}

	var coded *Error
	if As(err, &coded) {
		resp.Meta = coded.Meta
	} else {
		resp.Message = "internal error"
	}

	c.AbortWithStatusJSON(code.HTTPStatus(), gin.H{"error": resp})
}
