package progrock_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/stow/internal/adapters/telemetry/progrock"
	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
)

type captureWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertexNamed(name string) []*vprogrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []*vprogrock.Vertex
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			if v.Name == name {
				out = append(out, v)
			}
		}
	}
	return out
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	_, vertex := recorder.Record(t.Context(), "discover https://github.com/x/foo")
	_, err := vertex.Stdout().Write([]byte("Cloning into 'foo'...\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelDebug, "discovered 2 packages")
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}

func TestRecorder_Record(t *testing.T) {
	w := &captureWriter{}
	recorder := progrock.NewRecorder(w)

	ctx, vertex := recorder.Record(t.Context(), "discover repo")

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, vertex, fromCtx)

	vertex.Cached()
	vertex.Complete(nil)

	recorded := w.vertexNamed("discover repo")
	require.NotEmpty(t, recorded)
	assert.True(t, recorded[len(recorded)-1].Cached)
	assert.NotNil(t, recorded[len(recorded)-1].Completed)

	require.NoError(t, recorder.Close())
	assert.True(t, w.closed)
}

func TestRecorder_CompleteWithError(t *testing.T) {
	w := &captureWriter{}
	recorder := progrock.NewRecorder(w)

	_, vertex := recorder.Record(t.Context(), "failing")
	vertex.Complete(errors.New("git command failed"))

	recorded := w.vertexNamed("failing")
	require.NotEmpty(t, recorded)
	last := recorded[len(recorded)-1]
	require.NotNil(t, last.Error)
	assert.Equal(t, "git command failed", *last.Error)
}
