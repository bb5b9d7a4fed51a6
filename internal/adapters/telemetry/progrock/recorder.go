// Package progrock records lockfile and repository discovery progress as
// progrock vertices.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/stow/internal/core/ports"
)

// Recorder hands out one vertex per lockfile being planned and per
// repository being discovered.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New returns a Recorder backed by an in-memory tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder returns a Recorder streaming status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex such as "lockfile Cargo.lock" or
// "discover <url>#<commit>". The digest of the name is the vertex id, so a
// repository requested again reports against its original vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes pending updates to the writer.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
