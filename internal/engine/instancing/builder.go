package instancing

import (
	"fmt"

	"github.com/Faultbox/instancer/pkg/math"
)

// Batch is one instanced draw: a key, one world matrix per group member and
// the group bounds copied at build time.
type Batch struct {
	Key      GroupKey
	Matrices []math.Mat4
	Bounds   math.AABB
}

// Builder turns registry groups into batches, drawing matrix storage from a
// MatrixPool.
type Builder struct {
	pool    *MatrixPool
	batches []Batch
}

// NewBuilder creates a builder backed by pool.
func NewBuilder(pool *MatrixPool) *Builder {
	return &Builder{pool: pool}
}

// RefreshMatrices returns every current matrix array to the pool, then
// builds one batch per registry group with slot i holding the current
// world matrix of member i. The new set replaces the old one once complete.
func (b *Builder) RefreshMatrices(reg *Registry) {
	b.releaseAll()

	groups := reg.Groups()
	next := make([]Batch, 0, len(groups))
	for _, g := range groups {
		n := len(g.Members)
		if n == 0 {
			panic(fmt.Sprintf("instancing: empty group %s", g.Key))
		}

		matrices := b.pool.Acquire(n)
		for i, t := range g.Members {
			matrices[i] = t.LocalToWorld()
		}
		next = append(next, Batch{Key: g.Key, Matrices: matrices, Bounds: g.Bounds})
	}
	b.batches = next
}

// Batches returns the current batch set in registry order.
func (b *Builder) Batches() []Batch {
	return b.batches
}

// Release returns all matrix arrays to the pool and empties the batch set.
func (b *Builder) Release() {
	b.releaseAll()
	b.batches = nil
}

func (b *Builder) releaseAll() {
	for i := range b.batches {
		b.pool.Release(b.batches[i].Matrices)
		b.batches[i].Matrices = nil
	}
}
