package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrLoadMissThenHit(t *testing.T) {
	c := New(NewMemory())
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		return []byte(`[1,2,3]`), nil
	}

	b, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(b))

	b, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(b))
	assert.Equal(t, 1, calls, "第二次应命中缓存，不再回源")
}

func TestLoaderErrorNotCached(t *testing.T) {
	c := New(NewMemory())
	ctx := context.Background()

	calls := 0
	boom := errors.New("db down")
	load := func(context.Context) ([]byte, error) {
		calls++
		return nil, boom
	}

	_, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	assert.ErrorIs(t, err, boom)

	// 失败不得写缓存，下一次仍回源
	_, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestMemoryTTLExpiry(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidateNamespace(t *testing.T) {
	s := NewMemory()
	c := New(s)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "products:list:20:0:desc", []byte("a"), time.Minute))
	require.NoError(t, s.Set(ctx, "products:list:50:20:asc", []byte("b"), time.Minute))
	require.NoError(t, s.Set(ctx, "users:list:20:0:desc", []byte("c"), time.Minute))

	require.NoError(t, c.InvalidateNamespace(ctx, "products:list:"))

	_, ok, _ := s.Get(ctx, "products:list:20:0:desc")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "products:list:50:20:asc")
	assert.False(t, ok)
	// 其他实体的命名空间不受影响
	_, ok, _ = s.Get(ctx, "users:list:20:0:desc")
	assert.True(t, ok)
}

type view struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestGetOrLoadJSONTransparency(t *testing.T) {
	c := New(NewMemory())
	ctx := context.Background()

	src := []view{{1, "a"}, {2, "b"}}
	load := func(context.Context) ([]view, error) { return src, nil }

	fresh, err := GetOrLoadJSON(c, ctx, "k", time.Minute, load)
	require.NoError(t, err)
	cached, err := GetOrLoadJSON(c, ctx, "k", time.Minute, load)
	require.NoError(t, err)
	// 命中与回源结果必须同形
	assert.Equal(t, fresh, cached)
	assert.Equal(t, src, cached)
}

func TestGetOrLoadJSONEmptySliceStaysEmpty(t *testing.T) {
	c := New(NewMemory())
	ctx := context.Background()

	load := func(context.Context) ([]view, error) { return []view{}, nil }
	out, err := GetOrLoadJSON(c, ctx, "k", time.Minute, load)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out, 0)
}

// failStore 读写都失败的后端：读穿必须降级为直接回源
type failStore struct{}

func (failStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache unreachable")
}
func (failStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache unreachable")
}
func (failStore) DeletePrefix(context.Context, string) error {
	return errors.New("cache unreachable")
}

func TestCacheFailureFallsThroughToLoader(t *testing.T) {
	c := New(failStore{})
	ctx := context.Background()

	b, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("v"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v", string(b))

	assert.Error(t, c.InvalidateNamespace(ctx, "k:"))
}
