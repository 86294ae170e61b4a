package model

import "sync"

// SnapshotToPool returns a snapshot to the pool for reuse
func SnapshotToPool(snapshot [][]Cell, pool *SnapshotPool) {
	if pool == nil {
		return
	}

	pool.Put(snapshot)
}

// SnapshotPool recycles the buffers renderers pull each frame
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &[][]Cell{}
			},
		},
	}
}

// Take fills a pooled buffer with the current state of g
func (p *SnapshotPool) Take(g *Grid) [][]Cell {
	buf := p.pool.Get().(*[][]Cell)
	return g.Snapshot(*buf)
}

// Put returns a snapshot to the pool
func (p *SnapshotPool) Put(snapshot [][]Cell) {
	p.pool.Put(&snapshot)
}

// TakeSnapshot copies g using pool when one is given
func TakeSnapshot(g *Grid, pool *SnapshotPool) [][]Cell {
	if pool == nil {
		return g.Snapshot(nil)
	}
	return pool.Take(g)
}
