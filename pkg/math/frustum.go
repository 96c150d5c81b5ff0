package math

// Plane is n·p + d = 0 with a unit normal.
type Plane struct {
	Normal   Vec3
	Distance float32
}

// SignedDistance returns the distance from p to the plane; positive is on
// the side the normal points to.
func (p Plane) SignedDistance(point Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// Frustum holds the six view-frustum planes. Every normal points into the
// frustum, so a point is inside when all signed distances are >= 0.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromMatrix extracts the frustum of a combined projection * view
// matrix (Gribb/Hartmann, OpenGL clip space).
func FrustumFromMatrix(m Mat4) Frustum {
	// Row i of a column-major matrix is (m[i], m[4+i], m[8+i], m[12+i]).
	row := func(i int) [4]float32 {
		return [4]float32{m[i], m[4+i], m[8+i], m[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	combine := func(a, b [4]float32, sign float32) Plane {
		p := Plane{
			Normal:   Vec3{a[0] + sign*b[0], a[1] + sign*b[1], a[2] + sign*b[2]},
			Distance: a[3] + sign*b[3],
		}
		if l := p.Normal.Length(); l > 0 {
			p.Normal = p.Normal.Scale(1 / l)
			p.Distance /= l
		}
		return p
	}

	var f Frustum
	f.Planes[FrustumLeft] = combine(r3, r0, 1)
	f.Planes[FrustumRight] = combine(r3, r0, -1)
	f.Planes[FrustumBottom] = combine(r3, r1, 1)
	f.Planes[FrustumTop] = combine(r3, r1, -1)
	f.Planes[FrustumNear] = combine(r3, r2, 1)
	f.Planes[FrustumFar] = combine(r3, r2, -1)
	return f
}

// IntersectsAABB reports whether the box is inside or intersecting the
// frustum. It returns false only when the box lies entirely on the outer
// side of at least one plane, so it never rejects a visible box.
func (f Frustum) IntersectsAABB(b AABB) bool {
	for _, p := range f.Planes {
		// Corner furthest along the plane normal.
		v := b.Min
		if p.Normal.X >= 0 {
			v.X = b.Max.X
		}
		if p.Normal.Y >= 0 {
			v.Y = b.Max.Y
		}
		if p.Normal.Z >= 0 {
			v.Z = b.Max.Z
		}
		if p.SignedDistance(v) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p is inside all six planes.
func (f Frustum) ContainsPoint(point Vec3) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(point) < 0 {
			return false
		}
	}
	return true
}
