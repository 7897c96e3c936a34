package httperr

import (
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

// AbortWithText renders a plain-text error body. The receipt submission
// contract returns validation messages as text, not the JSON envelope.
func AbortWithText(c *gin.Context, status int, err error, body string) {
	if err == nil {
		panic("AbortWithText: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
	})
	c.String(status, body)
	c.Abort()
}

// AbortWithJSON renders an exact JSON body where the contract pins the shape
// (e.g. the points-lookup 404 detail object).
func AbortWithJSON(c *gin.Context, status int, err error, body any) {
	if err == nil {
		panic("AbortWithJSON: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
	})
	c.AbortWithStatusJSON(status, body)
}
