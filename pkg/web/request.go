package web

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate 绑定请求载荷并执行声明式校验
// 失败时以统一响应结构写出 400，返回值指示是否继续处理
func BindAndValidate(c *gin.Context, obj any) bool {
	err := c.ShouldBind(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		Error(c, http.StatusBadRequest, CodeInvalidParam, verrs.Error())
	} else {
		Error(c, http.StatusBadRequest, CodeInvalidParam, "invalid request payload: "+err.Error())
	}
	return false
}

// GetQuery 读取查询参数，缺失或为空时回退到默认值
func GetQuery(c *gin.Context, key, defaultValue string) string {
	if val := c.Query(key); val != "" {
		return val
	}
	return defaultValue
}
