package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

func TestSourceBridgesEvents(t *testing.T) {
	in := make(chan core.Event, 1)
	source := NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, source.Start(ctx))

	sent := core.Event{Type: core.EventModify, Path: "notes.json", Timestamp: time.Now().Unix()}
	in <- sent

	select {
	case got := <-source.Events():
		assert.Equal(t, sent.String(), got.String())
	case <-time.After(2 * time.Second):
		t.Fatal("no event bridged")
	}
}

func TestSourceClosesWhenInputCloses(t *testing.T) {
	in := make(chan core.Event)
	source := NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, source.Start(ctx))

	close(in)

	select {
	case _, ok := <-source.Events():
		assert.False(t, ok, "output channel should close with the input")
	case <-time.After(2 * time.Second):
		t.Fatal("output channel never closed")
	}
}
