package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jewelhub/internal/constants"
	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

func decodeStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestResolveAllowedOriginCases(t *testing.T) {
	cases := []struct {
		name        string
		origin      string
		allowed     []string
		credentials bool
		want        string
	}{
		{name: "wildcard", origin: "https://shop.example.com", allowed: []string{"*"}, want: "*"},
		{name: "wildcard echoes with credentials", origin: "https://shop.example.com", allowed: []string{"*"}, credentials: true, want: "https://shop.example.com"},
		{name: "allow list hit", origin: "https://admin.example.com", allowed: []string{"https://shop.example.com", "https://admin.example.com"}, want: "https://admin.example.com"},
		{name: "allow list miss", origin: "https://evil.example.com", allowed: []string{"https://shop.example.com"}, want: ""},
	}
	for _, tc := range cases {
		if got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.credentials); got != tc.want {
			t.Fatalf("%s: want %q got %q", tc.name, tc.want, got)
		}
	}
}

func TestRequestIDMiddlewareEchoesAndGenerates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "catalog-req-1")
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) != "catalog-req-1" || w.Body.String() != "catalog-req-1" {
		t.Fatalf("request id should be echoed, header=%s body=%s", w.Header().Get(requestIDHeader), w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(requestIDHeader)
	if generated == "" || generated != w.Body.String() {
		t.Fatalf("generated request id should be set on header and context, header=%s body=%s", generated, w.Body.String())
	}
}

func TestJWTAuthMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware("secret", nil))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	if code := decodeStatusCode(t, w); code != 401 {
		t.Fatalf("missing token want 401 got %d", code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)
	if code := decodeStatusCode(t, w); code != 401 {
		t.Fatalf("malformed token want 401 got %d", code)
	}
}

func newTenantScopeEngine(role, boundShopID string, enforce bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handlershared.ContextKeyCredentialID, "cred-1")
		c.Set(handlershared.ContextKeyRole, role)
		c.Set(handlershared.ContextKeyJewelerShopID, boundShopID)
		c.Next()
	})
	r.GET("/jeweler/:shop_id/ping", TenantScopeMiddleware(enforce), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})
	return r
}

func TestTenantScopeMiddleware(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		bound   string
		path    string
		enforce bool
		want    int
	}{
		{name: "own shop", role: constants.RoleJewelerAdmin, bound: "1", path: "/jeweler/1/ping", enforce: true, want: 0},
		{name: "other shop", role: constants.RoleJewelerAdmin, bound: "1", path: "/jeweler/2/ping", enforce: true, want: 403},
		{name: "unbound jeweler", role: constants.RoleJewelerAdmin, bound: "", path: "/jeweler/1/ping", enforce: true, want: 403},
		{name: "super admin", role: constants.RoleSuperAdmin, bound: "", path: "/jeweler/5/ping", enforce: true, want: 0},
		{name: "not enforced", role: constants.RoleJewelerAdmin, bound: "1", path: "/jeweler/2/ping", enforce: false, want: 0},
	}
	for _, tc := range cases {
		r := newTenantScopeEngine(tc.role, tc.bound, tc.enforce)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if code := decodeStatusCode(t, w); code != tc.want {
			t.Fatalf("%s: want %d got %d", tc.name, tc.want, code)
		}
	}
}

func TestRequireInitializedFollowsLoaderState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	loader := service.NewLoaderService(service.LoaderRepositories{}, nil, 0)
	r := gin.New()
	r.GET("/catalog", RequireInitialized(loader), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	if code := decodeStatusCode(t, w); code != 503 {
		t.Fatalf("catalog while loading want 503 got %d", code)
	}

	loader.MarkInitialized()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	if code := decodeStatusCode(t, w); code != 0 {
		t.Fatalf("catalog after init want 0 got %d", code)
	}
}

func TestAdminRBACMiddlewarePassesWhenNotEnforced(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/products", AdminRBACMiddleware(nil, false), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products", nil))
	if code := decodeStatusCode(t, w); code != 0 {
		t.Fatalf("rbac disabled want 0 got %d", code)
	}
}
