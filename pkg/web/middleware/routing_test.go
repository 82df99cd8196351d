package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/xopenapi/pkg/gateway"
	"github.com/lk2023060901/xopenapi/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// tableResolver 按路径查表的测试解析器
type tableResolver map[string]*gateway.RoutingContext

func (t tableResolver) Resolve(r *http.Request) (*gateway.RoutingContext, error) {
	rc, ok := t[r.URL.Path]
	if !ok {
		return nil, errors.Newf("no route for %s", r.URL.Path)
	}
	return rc, nil
}

// petSpec 测试规范
type petSpec struct{}

func (petSpec) BasePath() string { return "/v1" }
func (petSpec) Routes() []gateway.Route {
	return []gateway.Route{{Path: "/pets/{id}", Method: http.MethodGet}}
}

// petOpSpec 测试 operation
type petOpSpec struct{}

func (petOpSpec) OperationID() string { return "getPet" }
func (petOpSpec) Handler() gateway.Handler {
	return func(ctx context.Context, req *gateway.Request) (any, error) {
		return map[string]string{"name": "Rex"}, nil
	}
}
func (petOpSpec) URIParser() gateway.URIParser { return nil }
func (petOpSpec) Mimetype() string             { return "" }

// petRegistry 测试注册表
type petRegistry struct{}

func (petRegistry) Resolve(spec gateway.Specification, path, method string) (gateway.OperationSpec, error) {
	return petOpSpec{}, nil
}

// TestRoutingMiddlewareEndToEnd 测试路由中间件与网关调度的端到端链路
func TestRoutingMiddlewareEndToEnd(t *testing.T) {
	app := gateway.NewApp(
		gateway.WithRegistry(petRegistry{}),
		gateway.WithLogger(logger.NewNoop()),
	)
	if _, err := app.AddAPI(petSpec{}); err != nil {
		t.Fatalf("AddAPI failed: %v", err)
	}

	resolver := tableResolver{
		"/v1/pets/1": {APIBasePath: "/v1", OperationID: "getPet"},
	}

	engine := gin.New()
	engine.Use(Routing(resolver))
	engine.Any("/*any", gin.WrapH(app))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pets/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"name":"Rex"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

// TestRoutingMiddlewareUnresolved 测试解析失败时附加空路由信息
func TestRoutingMiddlewareUnresolved(t *testing.T) {
	var captured *gateway.RoutingContext

	engine := gin.New()
	engine.Use(Routing(tableResolver{}))
	engine.GET("/miss", func(c *gin.Context) {
		captured, _ = gateway.RoutingContextFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/miss", nil))

	if captured == nil {
		t.Fatal("expected empty routing context to be attached")
	}
	if captured.OperationID != "" || captured.APIBasePath != "" {
		t.Errorf("expected empty routing context, got %+v", captured)
	}
}

// TestRequestID 测试请求标识中间件
func TestRequestID(t *testing.T) {
	var fromCtx string

	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		fromCtx = RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if fromCtx == "" {
		t.Fatal("expected request id in context")
	}
	if rec.Header().Get(HeaderRequestID) != fromCtx {
		t.Error("response header and context request id mismatch")
	}

	// 透传调用方的 request id
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "caller-id")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if fromCtx != "caller-id" {
		t.Errorf("expected caller-id to be kept, got %s", fromCtx)
	}

	// 提取器生成日志字段
	ctx := context.WithValue(context.Background(), requestIDKey{}, "rid-1")
	fields := RequestIDExtractor(ctx)
	if len(fields) != 1 {
		t.Fatalf("expected one field, got %d", len(fields))
	}
}
