package service

import (
	"strings"

	"github.com/jewelhub/internal/models"
)

// ProductInput 商品创建/更新参数（平台商品与店铺商品共用）
type ProductInput struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	Category    string       `json:"category"`
	ImageURL    string       `json:"image_url"`
	ImageURLs   []string     `json:"image_urls"`
	InStock     *bool        `json:"in_stock"`
	MinOrder    int          `json:"min_order"`
}

// normalizedProduct 校验后的商品字段
type normalizedProduct struct {
	Name        string
	Description string
	Price       models.Money
	Category    string
	ImageURL    string
	ImageURLs   models.StringArray
	InStock     bool
	MinOrder    int
}

func normalizeProductInput(input ProductInput, defaultImageURL string) (normalizedProduct, error) {
	result := normalizedProduct{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		InStock:     true,
		MinOrder:    input.MinOrder,
	}
	if result.Name == "" {
		return result, newValidationError("name", "required")
	}
	if result.Category == "" {
		return result, newValidationError("category", "required")
	}
	if input.Price.IsNegative() {
		return result, newValidationError("price", "must be >= 0")
	}
	result.Price = models.NewMoneyFromDecimal(input.Price.Decimal)
	if result.MinOrder == 0 {
		result.MinOrder = 1
	}
	if result.MinOrder < 1 {
		return result, newValidationError("min_order", "must be >= 1")
	}
	if input.InStock != nil {
		result.InStock = *input.InStock
	}

	images := make(models.StringArray, 0, len(input.ImageURLs)+1)
	for _, raw := range input.ImageURLs {
		if url := strings.TrimSpace(raw); url != "" {
			images = append(images, url)
		}
	}
	if len(images) == 0 {
		if url := strings.TrimSpace(input.ImageURL); url != "" {
			images = append(images, url)
		}
	}
	if len(images) == 0 && strings.TrimSpace(defaultImageURL) != "" {
		images = append(images, strings.TrimSpace(defaultImageURL))
	}
	// 首图即主图
	if len(images) > 0 {
		result.ImageURL = images[0]
	}
	result.ImageURLs = images
	return result, nil
}
