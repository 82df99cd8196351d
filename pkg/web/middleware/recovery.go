package middleware

import (
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/xopenapi/pkg/logger"
)

// Recovery 适配 pkg/logger 的异常恢复中间件
// stack 为 true 时在恢复日志中附带调用栈
func Recovery(l logger.Logger, stack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// 检查连接是否断开
				var brokenPipe bool
				if ne, ok := err.(*net.OpError); ok {
					if se, ok := ne.Err.(*os.SyscallError); ok {
						if strings.Contains(strings.ToLower(se.Error()), "broken pipe") || strings.Contains(strings.ToLower(se.Error()), "connection reset by peer") {
							brokenPipe = true
						}
					}
				}

				httpRequest, _ := httputil.DumpRequest(c.Request, false)
				if brokenPipe {
					l.Error("http broken pipe",
						"error", err,
						"request", string(httpRequest),
					)
					if e, ok := err.(error); ok {
						c.Error(e)
					}
					c.Abort()
					return
				}

				if stack {
					l.Error("http recovery from panic",
						"error", err,
						"request", string(httpRequest),
						"stack", string(debug.Stack()),
					)
				} else {
					l.Error("http recovery from panic",
						"error", err,
						"request", string(httpRequest),
					)
				}

				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
