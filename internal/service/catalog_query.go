package service

import (
	"sort"
	"strings"

	"github.com/jewelhub/internal/constants"
)

// CatalogQuery 目录查询条件（解析之后在调用侧应用）
type CatalogQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

type catalogEntry interface {
	display() ProductDisplay
}

// ApplyCatalogQuery 按搜索、分类、排序过滤目录条目，返回新切片
func ApplyCatalogQuery[T catalogEntry](items []T, query CatalogQuery) []T {
	search := strings.ToLower(strings.TrimSpace(query.Search))
	category := strings.TrimSpace(query.Category)
	if strings.EqualFold(category, constants.CategoryAll) {
		category = ""
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		d := item.display()
		if category != "" && d.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Description), search) {
			continue
		}
		result = append(result, item)
	}

	less := catalogLess(strings.TrimSpace(query.Sort))
	if less != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return less(result[i].display(), result[j].display())
		})
	}
	return result
}

// 无价格的条目在价格排序中视为相等，保持原有顺序
func catalogLess(sortKey string) func(a, b ProductDisplay) bool {
	switch sortKey {
	case constants.SortNewest:
		return func(a, b ProductDisplay) bool { return a.CreatedAt.After(b.CreatedAt.Time) }
	case constants.SortOldest:
		return func(a, b ProductDisplay) bool { return a.CreatedAt.Before(b.CreatedAt.Time) }
	case constants.SortPriceLow:
		return func(a, b ProductDisplay) bool {
			if a.Price == nil || b.Price == nil {
				return false
			}
			return a.Price.LessThan(b.Price.Decimal)
		}
	case constants.SortPriceHigh:
		return func(a, b ProductDisplay) bool {
			if a.Price == nil || b.Price == nil {
				return false
			}
			return a.Price.GreaterThan(b.Price.Decimal)
		}
	case constants.SortNameAsc:
		return func(a, b ProductDisplay) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case constants.SortNameDesc:
		return func(a, b ProductDisplay) bool { return strings.ToLower(a.Name) > strings.ToLower(b.Name) }
	default:
		return nil
	}
}

// CatalogCategories 返回条目中出现的分类（去重、排序）
func CatalogCategories[T catalogEntry](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	categories := make([]string, 0)
	for _, item := range items {
		category := strings.TrimSpace(item.display().Category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
