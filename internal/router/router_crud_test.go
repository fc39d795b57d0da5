package router

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type productView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    *string `json:"price"`
	Category string  `json:"category"`
	MinOrder int     `json:"min_order"`
}

func decodeData(t *testing.T, resp envelope, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, dest); err != nil {
		t.Fatalf("unmarshal data failed: %v body=%s", err, resp.Data)
	}
}

func TestAdminProductLifecycle(t *testing.T) {
	env := newRouterTestEnv(t, false, true)
	token := env.login(t, "admin", "123")

	invalid := env.do(t, http.MethodPost, "/api/v1/admin/products", token, gin.H{"price": "10"})
	if invalid.StatusCode != 400 {
		t.Fatalf("product without name want 400 got %d", invalid.StatusCode)
	}

	created := env.do(t, http.MethodPost, "/api/v1/admin/products", token, gin.H{
		"name":     "Sapphire Halo Ring",
		"category": "Rings",
		"price":    "1200",
	})
	if created.StatusCode != 0 {
		t.Fatalf("create product want 0 got %d (%s)", created.StatusCode, created.Msg)
	}
	var product productView
	decodeData(t, created, &product)
	if product.ID == "" || product.MinOrder != 1 {
		t.Fatalf("unexpected created product: %+v", product)
	}

	updated := env.do(t, http.MethodPut, "/api/v1/admin/products/"+product.ID, token, gin.H{
		"name":      "Sapphire Halo Ring II",
		"category":  "Rings",
		"price":     "1300.5",
		"min_order": 2,
	})
	if updated.StatusCode != 0 {
		t.Fatalf("update product want 0 got %d (%s)", updated.StatusCode, updated.Msg)
	}
	decodeData(t, updated, &product)
	if product.Name != "Sapphire Halo Ring II" || product.Price == nil || *product.Price != "1300.50" {
		t.Fatalf("unexpected updated product: %+v", product)
	}

	if resp := env.do(t, http.MethodDelete, "/api/v1/admin/products/"+product.ID, token, nil); resp.StatusCode != 0 {
		t.Fatalf("delete product want 0 got %d", resp.StatusCode)
	}
	if resp := env.do(t, http.MethodGet, "/api/v1/admin/products/"+product.ID, token, nil); resp.StatusCode != 404 {
		t.Fatalf("deleted product want 404 got %d", resp.StatusCode)
	}
	if resp := env.do(t, http.MethodDelete, "/api/v1/admin/products/missing", token, nil); resp.StatusCode != 404 {
		t.Fatalf("delete missing product want 404 got %d", resp.StatusCode)
	}
}

func TestJewelerOwnProductAppearsInPreview(t *testing.T) {
	env := newRouterTestEnv(t, false, true)
	token := env.login(t, "diamond_palace", "diamond123")

	created := env.do(t, http.MethodPost, "/api/v1/jeweler/1/products", token, gin.H{
		"name":     "House Signet Ring",
		"category": "Rings",
		"price":    "1000",
	})
	if created.StatusCode != 0 {
		t.Fatalf("create own product want 0 got %d (%s)", created.StatusCode, created.Msg)
	}
	var own productView
	decodeData(t, created, &own)
	if !strings.HasPrefix(own.ID, "jp-") {
		t.Fatalf("own product id should use jp- prefix, got %s", own.ID)
	}

	preview := env.do(t, http.MethodGet, "/api/v1/jeweler/1/catalog/preview", token, nil)
	if preview.StatusCode != 0 {
		t.Fatalf("preview want 0 got %d", preview.StatusCode)
	}
	var items []productView
	decodeData(t, preview, &items)
	var found *productView
	for i := range items {
		if items[i].ID == own.ID {
			found = &items[i]
		}
	}
	if found == nil {
		t.Fatalf("own product missing from preview")
	}
	if found.Price == nil || *found.Price != "1150.00" {
		t.Fatalf("own product price should carry 15%% markup, got %v", found.Price)
	}

	other := env.do(t, http.MethodGet, "/api/v1/jeweler/2/products/"+own.ID, token, nil)
	if other.StatusCode != 404 {
		t.Fatalf("own product read from another shop want 404 got %d", other.StatusCode)
	}
}

func TestJewelerSettingsEnablePublicPrices(t *testing.T) {
	env := newRouterTestEnv(t, false, true)
	token := env.login(t, "crown_jewelers", "crown123")

	before := env.do(t, http.MethodGet, "/api/v1/public/shops/2/catalog", "", nil)
	if before.StatusCode != 0 {
		t.Fatalf("catalog want 0 got %d", before.StatusCode)
	}
	if strings.Contains(string(before.Data), `"price"`) {
		t.Fatalf("prices should be hidden without settings: %s", before.Data)
	}

	invalid := env.do(t, http.MethodPut, "/api/v1/jeweler/2/settings", token, gin.H{"price_markup_percent": "150"})
	if invalid.StatusCode != 400 {
		t.Fatalf("markup over 100 want 400 got %d", invalid.StatusCode)
	}

	saved := env.do(t, http.MethodPut, "/api/v1/jeweler/2/settings", token, gin.H{
		"price_markup_percent":  "10",
		"show_price_in_catalog": true,
	})
	if saved.StatusCode != 0 {
		t.Fatalf("save settings want 0 got %d (%s)", saved.StatusCode, saved.Msg)
	}
	var settings struct {
		StoreName    string `json:"store_name"`
		PrimaryColor string `json:"primary_color"`
	}
	decodeData(t, saved, &settings)
	if settings.StoreName != "Crown Jewelers" || settings.PrimaryColor != "#1e3a5f" {
		t.Fatalf("blank settings fields should fall back to profile: %+v", settings)
	}

	after := env.do(t, http.MethodGet, "/api/v1/public/shops/2/catalog", "", nil)
	var data struct {
		Items []productView `json:"items"`
	}
	decodeData(t, after, &data)
	if len(data.Items) == 0 || data.Items[0].ID != "1" {
		t.Fatalf("unexpected catalog items: %+v", data.Items)
	}
	if data.Items[0].Price == nil || *data.Items[0].Price != "13750.00" {
		t.Fatalf("product 1 price want 13750.00 got %v", data.Items[0].Price)
	}
}

func TestAdminCredentialLifecycle(t *testing.T) {
	env := newRouterTestEnv(t, false, true)
	token := env.login(t, "admin", "123")

	weak := env.do(t, http.MethodPost, "/api/v1/admin/credentials", token, gin.H{
		"username":        "eternal_gems",
		"password":        "weak",
		"jeweler_shop_id": "3",
	})
	if weak.StatusCode != 400 {
		t.Fatalf("weak password want 400 got %d", weak.StatusCode)
	}

	duplicate := env.do(t, http.MethodPost, "/api/v1/admin/credentials", token, gin.H{
		"username":        "diamond_palace",
		"password":        "emerald2024",
		"jeweler_shop_id": "3",
	})
	if duplicate.StatusCode != 400 {
		t.Fatalf("duplicate username want 400 got %d", duplicate.StatusCode)
	}

	unknownShop := env.do(t, http.MethodPost, "/api/v1/admin/credentials", token, gin.H{
		"username":        "ghost",
		"password":        "emerald2024",
		"jeweler_shop_id": "999",
	})
	if unknownShop.StatusCode != 404 {
		t.Fatalf("unknown shop want 404 got %d", unknownShop.StatusCode)
	}

	created := env.do(t, http.MethodPost, "/api/v1/admin/credentials", token, gin.H{
		"username":        "eternal_gems",
		"password":        "emerald2024",
		"jeweler_shop_id": "3",
	})
	if created.StatusCode != 0 {
		t.Fatalf("create credential want 0 got %d (%s)", created.StatusCode, created.Msg)
	}
	var credential struct {
		ID            string `json:"id"`
		JewelerShopID string `json:"jeweler_shop_id"`
	}
	decodeData(t, created, &credential)
	if credential.ID == "" || credential.JewelerShopID != "3" {
		t.Fatalf("unexpected credential: %+v", credential)
	}

	jewelerToken := env.login(t, "eternal_gems", "emerald2024")
	dashboard := env.do(t, http.MethodGet, "/api/v1/jeweler/3/dashboard", jewelerToken, nil)
	if dashboard.StatusCode != 0 {
		t.Fatalf("new jeweler dashboard want 0 got %d", dashboard.StatusCode)
	}

	if resp := env.do(t, http.MethodDelete, "/api/v1/admin/credentials/"+credential.ID, token, nil); resp.StatusCode != 0 {
		t.Fatalf("delete credential want 0 got %d", resp.StatusCode)
	}
	if resp := env.do(t, http.MethodGet, "/api/v1/jeweler/3/dashboard", jewelerToken, nil); resp.StatusCode != 401 {
		t.Fatalf("deleted credential token want 401 got %d", resp.StatusCode)
	}
}
