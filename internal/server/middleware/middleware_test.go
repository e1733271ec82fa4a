package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"rephraser/internal/pkg/ctxutil"
	"rephraser/internal/pkg/id"
	"rephraser/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	Convey("RequestID", t, func() {
		var fromCtx, fromGin string
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) {
			fromCtx = ctxutil.RequestID(c.Request.Context())
			fromGin = c.GetString(RequestIDKey)
			c.Status(http.StatusOK)
		})

		Convey("生成新的 ID 并写入各处", func() {
			w := serve(r, http.MethodGet, "/", nil)
			rid := w.Header().Get(RequestIDHeader)
			So(id.IsValid(rid), ShouldBeTrue)
			So(fromCtx, ShouldEqual, rid)
			So(fromGin, ShouldEqual, rid)
		})

		Convey("复用调用方传入的合法 ID", func() {
			in := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
			w := serve(r, http.MethodGet, "/", map[string]string{RequestIDHeader: in})
			So(w.Header().Get(RequestIDHeader), ShouldEqual, in)
			So(fromCtx, ShouldEqual, in)
		})

		Convey("忽略非法 ID", func() {
			w := serve(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "evil\r\nheader"})
			So(w.Header().Get(RequestIDHeader), ShouldNotEqual, "evil\r\nheader")
			So(id.IsValid(w.Header().Get(RequestIDHeader)), ShouldBeTrue)
		})
	})
}

func TestRecovery(t *testing.T) {
	Convey("Recovery 将 panic 转为 500", t, func() {
		r := gin.New()
		r.Use(Recovery())
		r.GET("/panic", func(c *gin.Context) { panic("boom") })

		w := serve(r, http.MethodGet, "/panic", nil)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, `"detail":"Internal Server Error"`)
	})
}

func TestCORS(t *testing.T) {
	Convey("CORS", t, func() {
		r := gin.New()
		r.Use(CORS())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.OPTIONS("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

		Convey("添加 CORS 头", func() {
			w := serve(r, http.MethodGet, "/", nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
			So(w.Header().Get("Access-Control-Allow-Methods"), ShouldEqual, "GET, POST, OPTIONS")
		})

		Convey("OPTIONS 预检直接返回 204", func() {
			w := serve(r, http.MethodOptions, "/", nil)
			So(w.Code, ShouldEqual, http.StatusNoContent)
		})
	})
}

func TestLogger(t *testing.T) {
	Convey("Logger 不影响响应", t, func() {
		r := gin.New()
		r.Use(RequestID(), Logger())
		r.GET("/", func(c *gin.Context) { c.String(http.StatusAccepted, "ok") })

		w := serve(r, http.MethodGet, "/?q=1", nil)
		So(w.Code, ShouldEqual, http.StatusAccepted)
		So(w.Body.String(), ShouldEqual, "ok")
	})
}

func TestMetrics(t *testing.T) {
	Convey("Metrics 按路由模板计数", t, func() {
		r := gin.New()
		r.Use(Metrics())
		r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

		counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "200")
		before := testutil.ToFloat64(counter)

		serve(r, http.MethodGet, "/items/1", nil)
		serve(r, http.MethodGet, "/items/2", nil)
		So(testutil.ToFloat64(counter), ShouldEqual, before+2)

		Convey("未匹配的路由归入 unmatched", func() {
			unmatched := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
			u0 := testutil.ToFloat64(unmatched)
			serve(r, http.MethodGet, "/nope", nil)
			So(testutil.ToFloat64(unmatched), ShouldEqual, u0+1)
		})
	})
}
