package physics2d

import "math"

// EdgeSide names which edge of the struck body a bullet's swept segment
// crossed, as returned by bulletNearestHit. BulletHitEvent does not carry it.
type EdgeSide int

const (
	EdgeNone EdgeSide = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e EdgeSide) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// bulletNearestHit probes bullet's travel segment (PrevPosition -> Position)
// against every target's four edges using the line-equation coefficients
// integrateBullet precomputed, picking the nearest crossing by Manhattan
// distance from PrevPosition across all targets and all four edges. Ties
// are broken by probe order (min-X before max-X before min-Y before max-Y,
// targets walked in the order they were first stashed this sub-step).
// Grounded on the teacher's raycastBox slab test (internal/physics/raycast.go),
// generalized from a parametric ray (tmin, tmax per axis) to the spec's
// explicit per-edge line-equation probe so an axis-aligned bullet's
// undefined ratio can be skipped outright rather than guarded with an
// epsilon.
func bulletNearestHit(bullet *Body, targets []*Body) (point Vec2, edge EdgeSide, target *Body, ok bool) {
	bd := bullet.bullet
	bestDist := math.Inf(1)

	consider := func(pt Vec2, e EdgeSide, t *Body) {
		if !withinSweptSegment(bd.PrevPosition, bullet.Position, pt) {
			return
		}
		d := abs(pt.X-bd.PrevPosition.X) + abs(pt.Y-bd.PrevPosition.Y)
		if d < bestDist {
			bestDist = d
			point, edge, target, ok = pt, e, t, true
		}
	}

	for _, t := range targets {
		if bd.Force.X != 0 {
			if y := -bd.coefAB*t.Bounds.Min.X - bd.coefCB; y > t.Bounds.Min.Y && y < t.Bounds.Max.Y {
				consider(Vec2{X: t.Bounds.Min.X, Y: y}, EdgeLeft, t)
			}
			if y := -bd.coefAB*t.Bounds.Max.X - bd.coefCB; y > t.Bounds.Min.Y && y < t.Bounds.Max.Y {
				consider(Vec2{X: t.Bounds.Max.X, Y: y}, EdgeRight, t)
			}
		}
		if bd.Force.Y != 0 {
			if x := -bd.coefBA*t.Bounds.Min.Y - bd.coefCA; x > t.Bounds.Min.X && x < t.Bounds.Max.X {
				consider(Vec2{X: x, Y: t.Bounds.Min.Y}, EdgeTop, t)
			}
			if x := -bd.coefBA*t.Bounds.Max.Y - bd.coefCA; x > t.Bounds.Min.X && x < t.Bounds.Max.X {
				consider(Vec2{X: x, Y: t.Bounds.Max.Y}, EdgeBottom, t)
			}
		}
	}
	return
}

func withinSweptSegment(from, to, pt Vec2) bool {
	minX, maxX := from.X, to.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := from.Y, to.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return pt.X >= minX && pt.X <= maxX && pt.Y >= minY && pt.Y <= maxY
}
