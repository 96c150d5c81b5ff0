package math

// AABB is an axis-aligned bounding box stored as min/max corners.
type AABB struct {
	Min, Max Vec3
}

// NewAABBFromCenterSize creates a box from its center and full size.
func NewAABBFromCenterSize(center, size Vec3) AABB {
	half := size.Abs().Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// AABBFromPoint returns a degenerate box containing a single point.
func AABBFromPoint(p Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// Center returns the box center.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the full size along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Extents returns the half-size along each axis.
func (b AABB) Extents() Vec3 {
	return b.Size().Scale(0.5)
}

// Encapsulate returns the smallest box containing both b and other.
func (b AABB) Encapsulate(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// EncapsulatePoint returns the smallest box containing b and p.
func (b AABB) EncapsulatePoint(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Contains reports whether other lies entirely inside b (boundaries included).
func (b AABB) Contains(other AABB) bool {
	return other.Min.X >= b.Min.X && other.Min.Y >= b.Min.Y && other.Min.Z >= b.Min.Z &&
		other.Max.X <= b.Max.X && other.Max.Y <= b.Max.Y && other.Max.Z <= b.Max.Z
}

// Transform returns the world-space box enclosing b after applying m.
// Uses the center/extents form so only one point is transformed.
func (b AABB) Transform(m Mat4) AABB {
	c := m.TransformPoint(b.Center())
	e := b.Extents()

	// Row i, column j of a column-major matrix lives at m[j*4+i].
	ext := Vec3{
		X: abs32(m[0])*e.X + abs32(m[4])*e.Y + abs32(m[8])*e.Z,
		Y: abs32(m[1])*e.X + abs32(m[5])*e.Y + abs32(m[9])*e.Z,
		Z: abs32(m[2])*e.X + abs32(m[6])*e.Y + abs32(m[10])*e.Z,
	}
	return AABB{Min: c.Sub(ext), Max: c.Add(ext)}
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
	}
}
