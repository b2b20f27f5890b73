// Package reqlog carries request-scoped log attributes from the code that
// serves a request back to the access log written when it completes.
package reqlog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type key struct{}

// Fields collects the attributes added while serving one request.
type Fields struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// New returns a context that collects attributes into the returned Fields.
func New(ctx context.Context) (context.Context, *Fields) {
	f := &Fields{}
	return context.WithValue(ctx, key{}, f), f
}

// Add records key/value pairs, in slog's alternating form, on the request
// carried by ctx. It does nothing when ctx carries no Fields.
func Add(ctx context.Context, args ...any) {
	f, ok := ctx.Value(key{}).(*Fields)
	if !ok {
		return
	}

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "", 0)
	r.Add(args...)

	f.mu.Lock()
	defer f.mu.Unlock()
	r.Attrs(func(a slog.Attr) bool {
		f.attrs = append(f.attrs, a)
		return true
	})
}

// Attrs returns a copy of the collected attributes in insertion order.
func (f *Fields) Attrs() []slog.Attr {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]slog.Attr(nil), f.attrs...)
}
