package instancing

import (
	"fmt"

	"github.com/Faultbox/instancer/pkg/math"
)

// PoolStats reports pool activity since creation.
type PoolStats struct {
	Allocations int // Arrays created because no free array of that length existed
	Reuses      int // Arrays handed out from the free lists
	Retained    int // Arrays currently held by the pool
}

// MatrixPool recycles matrix arrays by exact length. It never resizes an
// array and never evicts, so retained memory follows the historical maximum
// per length.
type MatrixPool struct {
	free  map[int][][]math.Mat4
	stats PoolStats
}

// NewMatrixPool creates an empty pool.
func NewMatrixPool() *MatrixPool {
	return &MatrixPool{free: make(map[int][][]math.Mat4)}
}

// Acquire returns an array of exactly n matrices. A recycled array keeps
// whatever it held before; the caller must overwrite every slot.
func (p *MatrixPool) Acquire(n int) []math.Mat4 {
	if n < 0 {
		panic(fmt.Sprintf("instancing: acquire negative length %d", n))
	}
	stack := p.free[n]
	if last := len(stack) - 1; last >= 0 {
		arr := stack[last]
		stack[last] = nil
		p.free[n] = stack[:last]
		p.stats.Reuses++
		p.stats.Retained--
		return arr
	}
	p.stats.Allocations++
	return make([]math.Mat4, n)
}

// Release hands arr back to the pool; the caller must drop its reference.
// Releasing an array twice, or one still used by a batch, corrupts the pool.
func (p *MatrixPool) Release(arr []math.Mat4) {
	if arr == nil {
		return
	}
	n := len(arr)
	p.free[n] = append(p.free[n], arr)
	p.stats.Retained++
}

// Free returns the number of retained arrays of length n.
func (p *MatrixPool) Free(n int) int {
	return len(p.free[n])
}

// Stats returns a snapshot of the counters.
func (p *MatrixPool) Stats() PoolStats {
	return p.stats
}
