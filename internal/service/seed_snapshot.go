package service

import (
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/models"

	"github.com/shopspring/decimal"
)

// SeedCredential 种子凭证（明文密码，写入时哈希，不走密码策略）
type SeedCredential struct {
	ID            string
	Username      string
	Password      string
	Role          string
	JewelerShopID string
}

// SeedSnapshot 初始加载数据快照
type SeedSnapshot struct {
	Products       []models.Product
	Shops          []models.JewelerShop
	Settings       []models.TenantSettings
	TenantProducts []models.TenantProduct
	Visibility     []models.VisibilityOverride
	Counter        models.DashboardCounter
	Credentials    []SeedCredential
}

func seedProduct(position int64, id, name, description string, price int64, category, imageURL string, inStock bool, minOrder int, createdAt, updatedAt string) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       models.NewMoneyFromInt(price),
		Category:    category,
		ImageURL:    imageURL,
		ImageURLs:   models.StringArray{imageURL},
		InStock:     inStock,
		MinOrder:    minOrder,
		Position:    position,
		CreatedAt:   models.MustDate(createdAt),
		UpdatedAt:   models.MustDate(updatedAt),
	}
}

func seedShop(id, name, owner, email, phone, address, city, state string, active bool, joined string, orders int64) models.JewelerShop {
	return models.JewelerShop{
		ID:          id,
		Name:        name,
		OwnerName:   owner,
		Email:       email,
		Phone:       phone,
		Address:     address,
		City:        city,
		State:       state,
		IsActive:    active,
		JoinedDate:  models.MustDate(joined),
		TotalOrders: orders,
	}
}

// DefaultSeedSnapshot 平台初始数据
func DefaultSeedSnapshot() *SeedSnapshot {
	products := []models.Product{
		seedProduct(1, "1", "Brilliant Cut Diamond Ring",
			"Exquisite 2-carat brilliant cut diamond set in 18k white gold. Perfect for engagement or special occasions.",
			12500, "Rings", "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=400&h=400&fit=crop", true, 5, "2024-01-15", "2024-01-20"),
		seedProduct(2, "2", "Princess Cut Solitaire",
			"Elegant princess cut diamond solitaire necklace with platinum chain. A timeless classic.",
			8900, "Necklaces", "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400&h=400&fit=crop", true, 3, "2024-01-10", "2024-01-18"),
		seedProduct(3, "3", "Diamond Tennis Bracelet",
			"Stunning 5-carat total weight diamond tennis bracelet. Premium quality stones.",
			15800, "Bracelets", "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=400&h=400&fit=crop", true, 2, "2024-01-08", "2024-01-15"),
		seedProduct(4, "4", "Emerald Cut Studs",
			"Sophisticated emerald cut diamond stud earrings. 1.5 carats each.",
			6500, "Earrings", "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=400&fit=crop", true, 10, "2024-01-05", "2024-01-12"),
		seedProduct(5, "5", "Oval Diamond Pendant",
			"Beautiful oval cut diamond pendant with delicate gold chain. Perfect centerpiece.",
			7200, "Necklaces", "https://images.unsplash.com/photo-1602751584552-8ba73aad10e1?w=400&h=400&fit=crop", false, 5, "2024-01-03", "2024-01-10"),
		seedProduct(6, "6", "Marquise Diamond Ring",
			"Vintage-inspired marquise cut diamond ring with intricate band detailing.",
			9800, "Rings", "https://images.unsplash.com/photo-1603561591411-07134e71a2a9?w=400&h=400&fit=crop", true, 4, "2024-01-01", "2024-01-08"),
	}

	shops := []models.JewelerShop{
		seedShop("1", "Diamond Palace", "Robert Chen", "robert@diamondpalace.com", "+1 (555) 123-4567", "123 Luxury Lane", "New York", "NY", true, "2023-06-15", 156),
		seedShop("2", "Crown Jewelers", "Sarah Mitchell", "sarah@crownjewelers.com", "+1 (555) 234-5678", "456 Royal Street", "Los Angeles", "CA", true, "2023-08-20", 89),
		seedShop("3", "Eternal Gems", "Michael Johnson", "michael@eternalgems.com", "+1 (555) 345-6789", "789 Diamond Drive", "Chicago", "IL", true, "2023-10-05", 67),
		seedShop("4", "Radiant Treasures", "Emily Davis", "emily@radianttreasures.com", "+1 (555) 456-7890", "321 Sparkle Avenue", "Miami", "FL", false, "2023-11-12", 23),
		seedShop("5", "Prestige Diamonds", "James Wilson", "james@prestigediamonds.com", "+1 (555) 567-8901", "654 Elite Boulevard", "Houston", "TX", true, "2023-12-01", 45),
	}

	palace := fillSettingsDefaults(&shops[0], models.TenantSettings{
		ShopID:             shops[0].ID,
		Tagline:            "Timeless diamonds for every occasion",
		PriceMarkupPercent: decimal.NewFromInt(15),
		ShowPriceInCatalog: true,
	})

	ownImage := "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=400&h=400&fit=crop"
	tenantProducts := []models.TenantProduct{
		{
			ID:            constants.TenantProductIDPrefix + "1",
			JewelerShopID: "1",
			Name:          "Palace Signature Halo Ring",
			Description:   "House-designed halo ring with a 1-carat center stone and pave band.",
			Price:         models.NewMoneyFromInt(11200),
			Category:      "Rings",
			ImageURL:      ownImage,
			ImageURLs:     models.StringArray{ownImage},
			InStock:       true,
			MinOrder:      2,
			IsOwnProduct:  true,
			Position:      1,
			CreatedAt:     models.MustDate("2024-02-01"),
			UpdatedAt:     models.MustDate("2024-02-01"),
		},
		{
			ID:            constants.TenantProductIDPrefix + "2",
			JewelerShopID: "1",
			Name:          "Palace Pearl Drop Earrings",
			Description:   "South sea pearls suspended from diamond-set white gold hooks.",
			Price:         models.NewMoneyFromInt(4300),
			Category:      "Earrings",
			ImageURL:      ownImage,
			ImageURLs:     models.StringArray{ownImage},
			InStock:       true,
			MinOrder:      4,
			IsOwnProduct:  true,
			Position:      2,
			CreatedAt:     models.MustDate("2024-02-05"),
			UpdatedAt:     models.MustDate("2024-02-05"),
		},
	}

	return &SeedSnapshot{
		Products:       products,
		Shops:          shops,
		Settings:       []models.TenantSettings{palace},
		TenantProducts: tenantProducts,
		Visibility: []models.VisibilityOverride{
			{ProductID: "4", JewelerShopID: "1", IsVisible: false},
		},
		// 看板快照值，与店铺记录数无关
		Counter: models.DashboardCounter{
			TotalShops:  48,
			ActiveShops: 42,
			Revenue:     models.NewMoneyFromInt(2840000),
		},
		Credentials: []SeedCredential{
			{ID: "admin-1", Username: "admin", Password: "123", Role: constants.RoleSuperAdmin},
			{ID: "jeweler-1", Username: "diamond_palace", Password: "diamond123", Role: constants.RoleJewelerAdmin, JewelerShopID: "1"},
			{ID: "jeweler-2", Username: "crown_jewelers", Password: "crown123", Role: constants.RoleJewelerAdmin, JewelerShopID: "2"},
		},
	}
}
