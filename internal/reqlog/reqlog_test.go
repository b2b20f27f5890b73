package reqlog

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_CollectsInOrder(t *testing.T) {
	ctx, fields := New(context.Background())

	Add(ctx, "outcome", "ok", "search", true)
	Add(ctx, slog.Int("docs", 3))

	attrs := fields.Attrs()
	require.Len(t, attrs, 3)
	assert.Equal(t, "outcome", attrs[0].Key)
	assert.Equal(t, "ok", attrs[0].Value.String())
	assert.True(t, attrs[1].Value.Bool())
	assert.Equal(t, int64(3), attrs[2].Value.Int64())
}

func TestAdd_WithoutFields(t *testing.T) {
	assert.NotPanics(t, func() {
		Add(context.Background(), "outcome", "ok")
	})
}

func TestAttrs_ReturnsCopy(t *testing.T) {
	ctx, fields := New(context.Background())
	Add(ctx, "a", 1)

	attrs := fields.Attrs()
	attrs[0] = slog.String("b", "x")

	assert.Equal(t, "a", fields.Attrs()[0].Key)
}

func TestAdd_Concurrent(t *testing.T) {
	ctx, fields := New(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Add(ctx, "n", i)
		}()
	}
	wg.Wait()

	assert.Len(t, fields.Attrs(), 50)
}
