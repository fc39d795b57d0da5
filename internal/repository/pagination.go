package repository

import "gorm.io/gorm"

func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}

// countAndFind 先统计总数再分页查询
func countAndFind(query *gorm.DB, page, pageSize int, dest interface{}) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	if err := applyPagination(query, page, pageSize).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func likePattern(search string) string {
	return "%" + search + "%"
}
