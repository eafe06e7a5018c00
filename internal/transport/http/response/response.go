package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booknest/internal/domain"
)

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New keeps data non-null on the wire.
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// JSON writes a success envelope with the given HTTP status.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, OK(data))
}

// Fail maps a service error to its HTTP status and envelope. Anything that is
// not an AppError is a storage or programming fault and comes out as a 500
// without leaking the cause.
func Fail(c *gin.Context, err error) {
	var ae *domain.AppError
	if errors.As(err, &ae) {
		c.JSON(ae.Code, Error(ae.Code, ae.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, Error(CodeServerError, ""))
}

// AbortFail is Fail for middleware.
func AbortFail(c *gin.Context, err error) {
	var ae *domain.AppError
	if errors.As(err, &ae) {
		c.AbortWithStatusJSON(ae.Code, Error(ae.Code, ae.Error()))
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Error(CodeServerError, ""))
}
