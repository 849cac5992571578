//go:build !easyspot_debug

package easyspot

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/easyspot/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRelease_NoTracking(t *testing.T) {
	assert.False(t, Debug)
	assert.False(t, Configuration().Debug)

	b := Allocate(64)
	assert.Equal(t, 0, LiveCount())
	assert.Equal(t, 0, LiveBytes())
	assert.Nil(t, LiveBlocks())
	b.Drop()
}

func TestRelease_ReportLeaks(t *testing.T) {
	b := Allocate(64)
	defer b.Drop()

	var buf bytes.Buffer
	assert.Equal(t, 0, ReportLeaks(&buf))
	assert.Equal(t, "easyspot: leak check needs a build with -tags easyspot_debug\n", buf.String())
}

func TestRelease_StaleRefUnchecked(t *testing.T) {
	Configure(WithBacking(BackingGoHeap))
	t.Cleanup(func() { Configure() })

	b := Allocate(8)
	r := AsRef[uint64](b)
	r.Store(99)
	b.Drop()

	// Go-heap memory stays reachable through r, so the stale read is
	// well defined here and must not fault.
	assert.Equal(t, uint64(99), r.Load())
}

func TestRelease_GoHeapDoubleDrop(t *testing.T) {
	Configure(WithBacking(BackingGoHeap))
	t.Cleanup(func() { Configure() })

	b := Allocate(8)
	b.Drop()

	testutil.ExpectFault(t, "easyspot: release failed", func() {
		b.Drop()
	})
}

func TestRelease_NoAllocationLogging(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithLogger(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	t.Cleanup(func() { Configure() })

	b := Allocate(8)
	b.Drop()

	assert.Empty(t, buf.String())
}
