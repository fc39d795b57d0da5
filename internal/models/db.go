package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSQLiteDSN 默认内存库，进程退出即丢弃
const DefaultSQLiteDSN = "file::memory:?cache=shared"

var DB *gorm.DB

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// OpenDB 按驱动打开数据库连接
func OpenDB(driver, dsn string, pool DBPoolConfig, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	normalized := strings.ToLower(strings.TrimSpace(driver))
	var dialector gorm.Dialector
	switch normalized {
	case "", "sqlite":
		if strings.TrimSpace(dsn) == "" {
			dsn = DefaultSQLiteDSN
		}
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyDBPool(sqlDB, pool)
	return db, nil
}

// InitDB 初始化全局数据库连接
func InitDB(driver, dsn string, pool DBPoolConfig) error {
	db, err := OpenDB(driver, dsn, pool, gormlogger.Warn)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	// 内存 SQLite 在最后一个连接关闭时即被销毁，空闲连接不能过期
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

// AllModels 返回需要迁移的模型
func AllModels() []interface{} {
	return []interface{}{
		&JewelerShop{},
		&TenantSettings{},
		&Product{},
		&TenantProduct{},
		&VisibilityOverride{},
		&Credential{},
		&DashboardCounter{},
		&CatalogAuditLog{},
	}
}

// AutoMigrate 自动迁移所有数据库表
func AutoMigrate() error {
	return MigrateDB(DB)
}

// MigrateDB 在指定连接上迁移
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	return db.AutoMigrate(AllModels()...)
}
