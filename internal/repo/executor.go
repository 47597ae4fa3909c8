package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-shop-services/internal/domain"
)

// ListSpec 列表/详情查询的表和连接元数据，两个服务共用同一套执行器
type ListSpec struct {
	Table  string // 例 "products AS p"
	Select string // 目标投影，引用表名称取别名
	Join   string // LEFT JOIN，引用悬空时行仍在、名称为 NULL
	IDCol  string // 主键列（带别名），排序与点查都用它
}

// listRows 按 id 排序分页查询；排序片段只来自 Order 枚举
func listRows[T any](ctx context.Context, db *gorm.DB, s ListSpec, p domain.ListParams) ([]T, error) {
	rows := make([]T, 0, p.Limit)
	err := db.WithContext(ctx).
		Table(s.Table).
		Select(s.Select).
		Joins(s.Join).
		Order(s.IDCol + " " + p.Order.Clause()).
		Limit(p.Limit).
		Offset(p.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func getRow[T any](ctx context.Context, db *gorm.DB, s ListSpec, id uint) (*T, error) {
	var row T
	err := db.WithContext(ctx).
		Table(s.Table).
		Select(s.Select).
		Joins(s.Join).
		Where(s.IDCol+" = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// wrapWriteErr 唯一约束冲突统一转 ErrConflict，其余原样
func wrapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		return err
	}
	if isDupKey(err) {
		return domain.ErrConflict
	}
	return err
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动/版本差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
