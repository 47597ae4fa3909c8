package cache

import (
	"context"
	"time"
)

// Store 缓存后端抽象。redis 为线上实现，memory 供测试与无 redis 的本地环境
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePrefix 删除整个前缀下的所有 key（命名空间失效）
	DeletePrefix(ctx context.Context, prefix string) error
}
