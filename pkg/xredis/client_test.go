package xredis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type object struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T) (*client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	return Wrap(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestClient_Obj(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestClient(t)

	require.NoError(t, c.SetObj(ctx, "user:1", object{ID: 1, Name: "alice"}, time.Minute))

	var got object
	require.NoError(t, c.GetObj(ctx, "user:1", &got))
	require.Equal(t, object{ID: 1, Name: "alice"}, got)

	ok, err := c.Exist(ctx, "user:1")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	require.ErrorIs(t, c.GetObj(ctx, "user:1", &got), ErrNil)
}

func TestClient_Del(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	require.NoError(t, c.SetObj(ctx, "user:2", object{ID: 2}, 0))
	require.NoError(t, c.Del(ctx, "user:2", "missing"))

	ok, err := c.Exist(ctx, "user:2")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = c.Get(ctx, "user:2")
	require.ErrorIs(t, err, ErrNil)
}
