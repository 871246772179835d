package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
	// Hint 已知故障的处理建议（缺表、缺 bucket、权限）
	Hint string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func (e *BizError) WithHint(hint string) *BizError {
	e.Hint = hint
	return e
}

func BadRequest(msg string) *BizError   { return NewError(http.StatusBadRequest, msg) }
func NotFound(msg string) *BizError     { return NewError(http.StatusNotFound, msg) }
func Unauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }
func Conflict(msg string) *BizError     { return NewError(http.StatusConflict, msg) }

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
