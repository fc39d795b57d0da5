package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout 日历日期格式（仅精确到天）
const DateLayout = "2006-01-02"

// JSON 通用 JSON 对象类型
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = make(JSON)
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported json source: %T", value)
	}
}

// StringArray 字符串数组类型，用于存储图片列表
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = StringArray{}
		return nil
	case []byte:
		if len(v) == 0 {
			*s = StringArray{}
			return nil
		}
		return json.Unmarshal(v, s)
	case string:
		if v == "" {
			*s = StringArray{}
			return nil
		}
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported string array source: %T", value)
	}
}

// Date 日历日期，JSON 与数据库均以 YYYY-MM-DD 表示
type Date struct {
	time.Time
}

// NewDate 截断到 UTC 日期
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today 当天日期
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate 解析 YYYY-MM-DD
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// MustDate 解析固定日期，仅用于种子数据
func MustDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// String 返回 YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON 输出日期字符串
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON 解析日期字符串
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 用于数据库写入
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan 用于数据库读取
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("unsupported date source: %T", value)
	}
}

func (d *Date) scanString(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*d = Date{}
		return nil
	}
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
