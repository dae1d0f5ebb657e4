package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClient_FailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	var out map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &out))
	c.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute)
	c.Delete(ctx, "k")
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedis_BehavesLikeMiss(t *testing.T) {
	// Nothing listens on port 1.
	c := New("127.0.0.1:1", "", 0, "test:")
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.SetJSON(ctx, "k", 1, time.Minute)
	var out int
	assert.False(t, c.GetJSON(ctx, "k", &out))
	c.Delete(ctx, "k")
}
