package renderer

import (
	"github.com/Faultbox/instancer/pkg/math"
)

// BoxVertex is one vertex of the stand-in box mesh: position and face
// normal.
type BoxVertex struct {
	Position [3]float32
	Normal   [3]float32
}

// boxFaces lists each face as its normal and four corner indices (in
// math.AABB.Corners order), counter-clockwise seen from outside.
var boxFaces = [6]struct {
	normal  [3]float32
	corners [4]int
}{
	{[3]float32{0, -1, 0}, [4]int{0, 1, 2, 3}}, // bottom
	{[3]float32{0, 1, 0}, [4]int{4, 7, 6, 5}},  // top
	{[3]float32{0, 0, -1}, [4]int{0, 4, 5, 1}}, // back
	{[3]float32{0, 0, 1}, [4]int{3, 2, 6, 7}},  // front
	{[3]float32{-1, 0, 0}, [4]int{0, 3, 7, 4}}, // left
	{[3]float32{1, 0, 0}, [4]int{1, 5, 6, 2}},  // right
}

// BoxGeometry builds an indexed triangle box filling b. The viewer draws
// every mesh as its local bounds.
func BoxGeometry(b math.AABB) ([]BoxVertex, []uint32) {
	corners := b.Corners()
	vertices := make([]BoxVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, face := range boxFaces {
		base := uint32(len(vertices))
		for _, ci := range face.corners {
			c := corners[ci]
			vertices = append(vertices, BoxVertex{
				Position: [3]float32{c.X, c.Y, c.Z},
				Normal:   face.normal,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
