package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedTime = time.Date(2024, 1, 19, 10, 30, 0, 0, time.UTC)

func handle(t *testing.T, h slog.Handler, level slog.Level, msg string, attrs ...slog.Attr) string {
	t.Helper()
	var buf bytes.Buffer
	th := h.(*TextHandler)
	th.w = &buf

	r := slog.NewRecord(fixedTime, level, msg, 0)
	r.AddAttrs(attrs...)
	require.NoError(t, h.Handle(context.Background(), r))
	return buf.String()
}

func TestTextHandler_Format(t *testing.T) {
	h := NewTextHandler(nil, nil)

	out := handle(t, h, slog.LevelInfo, "server started", slog.Int("port", 8080), slog.String("host", "localhost"))

	assert.Equal(t, "2024-01-19T10:30:00Z: [INFO] server started port=8080 host=localhost\n", out)
}

func TestTextHandler_Values(t *testing.T) {
	h := NewTextHandler(nil, nil)
	id, err := primitive.ObjectIDFromHex("65a000000000000000000001")
	require.NoError(t, err)

	out := handle(t, h, slog.LevelWarn, "values",
		slog.String("quoted", "has space"),
		slog.String("empty", ""),
		slog.Uint64("u", 7),
		slog.Float64("f", 1.5),
		slog.Bool("b", true),
		slog.Duration("d", 1500*time.Millisecond),
		slog.Time("t", fixedTime),
		slog.Any("err", errors.New("boom")),
		slog.Any("id", id),
		slog.Group("g", slog.Int("a", 1), slog.String("b", "x")),
	)

	for _, want := range []string{
		`quoted="has space"`,
		`empty=""`,
		"u=7",
		"f=1.5",
		"b=true",
		"d=1.5s",
		"t=2024-01-19T10:30:00Z",
		"err=boom",
		`id="ObjectID(\"65a000000000000000000001\")"`,
		"g={a=1 b=x}",
	} {
		assert.Contains(t, out, want)
	}
}

func TestTextHandler_Level(t *testing.T) {
	h := NewTextHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestTextHandler_WithAttrsAndGroup(t *testing.T) {
	base := NewTextHandler(nil, nil)

	withAttrs := base.WithAttrs([]slog.Attr{slog.String("component", "listing")})
	grouped := withAttrs.WithGroup("req")

	assert.Contains(t, handle(t, withAttrs, slog.LevelInfo, "m", slog.Int("n", 1)), "m component=listing n=1")
	assert.Contains(t, handle(t, grouped, slog.LevelInfo, "m", slog.Int("n", 1)), "m component=listing req.n=1")
	assert.NotContains(t, handle(t, base, slog.LevelInfo, "m"), "component")
	assert.Same(t, grouped, grouped.WithGroup(""))
}

func TestTextHandler_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewTextHandler(&buf, nil))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.With("worker", i).Info("tick")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "\n"))
}
