package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes where a ray meets a shape.
type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastBox intersects a ray with an axis-aligned box using the slab method.
// The ray direction must be normalized. A ray starting inside the box hits
// the far face.
func RaycastBox(ray rl.Ray, box AABB, maxDistance float32) (RaycastHit, bool) {
	origin, direction := ray.Position, ray.Direction
	min, max := box.Min, box.Max

	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o, d := component(origin, axis), component(direction, axis)
		lo, hi := component(min, axis), component(max, axis)
		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if box.Contains(origin) {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case abs(point.X-min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case abs(point.X-max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case abs(point.Y-min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case abs(point.Y-max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case abs(point.Z-min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// RaycastSphere intersects a ray with a sphere. The ray direction must be normalized.
func RaycastSphere(ray rl.Ray, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	origin, direction := ray.Position, ray.Direction

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
