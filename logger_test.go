package pathgeom

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return buf
}

func TestLoggerDefault(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(l)
	assert.Same(t, l, Logger())
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestLogRedundantClose(t *testing.T) {
	buf := captureLogs(t)
	p := unitSquare(NonZero)
	p.ClosePath()
	assert.Equal(t, 5, p.NumElements())
	assert.Contains(t, buf.String(), "path: ignoring redundant close")
	assert.Contains(t, buf.String(), "last=ClosePath")
}

func TestLogFlattenLimit(t *testing.T) {
	buf := captureLogs(t)
	p := NewPath(NonZero)
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(50, 100), Pt(100, 0))
	collect(NewFlatteningIterator(p.Iterator(), 0.001, 1))
	assert.Contains(t, buf.String(), "flatten: depth limit reached")
	assert.Contains(t, buf.String(), "limit=1")

	buf.Reset()
	collect(p.FlatIterator(1))
	assert.Empty(t, buf.String())
}
