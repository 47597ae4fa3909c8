package domain

import (
	"fmt"
	"strings"
)

// Order 排序方向枚举。SQL 片段只从 Clause 取，绝不拼接调用方原始输入
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder 非法值一律回落 desc，不报错
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), "asc") {
		return OrderAsc
	}
	return OrderDesc
}

func (o Order) Clause() string {
	if o == OrderAsc {
		return "ASC"
	}
	return "DESC"
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListParams 列表查询参数，默认值见 Normalize
type ListParams struct {
	Limit  int
	Offset int
	Order  Order
}

// Normalize limit 压到 [1,100]（零值给 20），offset 负数归零，order 回落 desc
func (p ListParams) Normalize() ListParams {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Order != OrderAsc {
		p.Order = OrderDesc
	}
	return p
}

// CacheKey 对规范化后的参数生成确定性 key；不同参数组合必不相同
func (p ListParams) CacheKey(entity string) string {
	p = p.Normalize()
	return fmt.Sprintf("%s%d:%d:%s", ListNamespace(entity), p.Limit, p.Offset, p.Order)
}

// ListNamespace 实体的列表缓存命名空间前缀，整体失效按它扫
func ListNamespace(entity string) string {
	return entity + ":list:"
}
