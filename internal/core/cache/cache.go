package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

type Cache struct {
	store Store
	sf    singleflight.Group
}

func New(store Store) *Cache {
	return &Cache{store: store}
}

// GetOrLoad 读穿：命中直接返回；未命中回源并以 ttl 写回。
// 缓存读写出错按未命中/静默处理，回源错误原样上抛且不写缓存。
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, ok, err := c.store.Get(ctx, key); err == nil && ok {
		return b, nil
	}
	// single flight 合并并发回源
	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		_ = c.store.Set(ctx, key, b, ttl)
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// InvalidateNamespace 清掉实体整个列表命名空间；调用方对错误只记日志不回滚
func (c *Cache) InvalidateNamespace(ctx context.Context, prefix string) error {
	return c.store.DeletePrefix(ctx, prefix)
}
