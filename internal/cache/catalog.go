package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// 平台目录写入时递增全局代数，店铺相关写入递增店铺版本；旧版本的键不再被读取
const catalogGenerationKey = "catalog:generation"

// CatalogVersion 解析目录缓存版本，须在读取数据库之前获取
type CatalogVersion struct {
	Generation int64
	Shop       int64
}

func shopVersionKey(shopID string) string {
	return "catalog:version:" + shopID
}

func resolvedCatalogKey(version CatalogVersion, shopID string) string {
	return fmt.Sprintf("catalog:resolved:%d:%d:%s", version.Generation, version.Shop, shopID)
}

// CurrentCatalogVersion 读取店铺当前目录版本
func CurrentCatalogVersion(ctx context.Context, shopID string) (CatalogVersion, error) {
	if !Enabled() || strings.TrimSpace(shopID) == "" {
		return CatalogVersion{}, nil
	}
	generation, err := GetInt64(ctx, catalogGenerationKey)
	if err != nil {
		return CatalogVersion{}, err
	}
	shop, err := GetInt64(ctx, shopVersionKey(shopID))
	if err != nil {
		return CatalogVersion{}, err
	}
	return CatalogVersion{Generation: generation, Shop: shop}, nil
}

// GetResolvedCatalog 按版本读取店铺解析目录缓存
func GetResolvedCatalog(ctx context.Context, shopID string, version CatalogVersion, dest interface{}) (bool, error) {
	if !Enabled() || shopID == "" {
		return false, nil
	}
	return GetJSON(ctx, resolvedCatalogKey(version, shopID), dest)
}

// SetResolvedCatalog 按读取前获取的版本写入缓存；期间若有写入，版本已前进，该键不会再被命中
func SetResolvedCatalog(ctx context.Context, shopID string, version CatalogVersion, value interface{}, ttl time.Duration) error {
	if !Enabled() || shopID == "" {
		return nil
	}
	return SetJSON(ctx, resolvedCatalogKey(version, shopID), value, ttl)
}

// InvalidateShopCatalog 递增店铺版本，使该店铺的解析目录失效
func InvalidateShopCatalog(ctx context.Context, shopID string) error {
	if !Enabled() || shopID == "" {
		return nil
	}
	_, err := Incr(ctx, shopVersionKey(shopID))
	return err
}

// InvalidateAllCatalogs 递增全局代数，使全部店铺的解析目录失效
func InvalidateAllCatalogs(ctx context.Context) error {
	_, err := Incr(ctx, catalogGenerationKey)
	return err
}
