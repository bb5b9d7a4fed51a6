package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/stow/internal/core/domain"
)

// Vertex is the progress record of one lockfile or one repository discovery.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout receives the output of git commands run for the vertex.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr receives git diagnostics.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log appends a "[level] msg" line to the vertex output.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level, msg)
}

// Complete finishes the vertex; a non-nil err marks it failed.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks a repository answered from an earlier discovery.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
