// Package dedup accumulates fetch operations across lockfiles, dropping repeats.
package dedup

import "go.trai.ch/stow/internal/core/domain"

// Deduplicator keeps the first occurrence of every distinct source.
// It is not safe for concurrent use.
type Deduplicator struct {
	seen       map[domain.Source]struct{}
	sources    []domain.Source
	suppressed int
}

// New creates an empty Deduplicator.
func New() *Deduplicator {
	return &Deduplicator{seen: make(map[domain.Source]struct{})}
}

// Merge appends the sources of incoming that were not seen before, in order,
// and returns how many were dropped.
func (d *Deduplicator) Merge(incoming []domain.Source) int {
	dropped := 0
	for _, src := range incoming {
		if _, ok := d.seen[src]; ok {
			dropped++
			continue
		}
		d.seen[src] = struct{}{}
		d.sources = append(d.sources, src)
	}
	d.suppressed += dropped
	return dropped
}

// Sources returns the accumulated sources in first-seen order.
func (d *Deduplicator) Sources() []domain.Source {
	return d.sources
}

// Suppressed returns the total number of dropped duplicates.
func (d *Deduplicator) Suppressed() int {
	return d.suppressed
}
