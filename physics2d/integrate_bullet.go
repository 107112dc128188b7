package physics2d

// integrateBullet advances a bullet body along its straight-line travel
// vector for one sub-step. Grounded on the teacher's raycast probe
// (internal/physics/raycast.go), generalized from a one-shot ray query into
// a per-step swept segment: PrevPosition/Position become the segment the
// narrow phase sweeps against the world, rather than an origin/direction
// pair handed to a single Raycast call.
func integrateBullet(b *Body, delta float64) {
	bd := b.bullet
	bd.PrevPosition = b.Position

	disp := bd.Force.Scale(delta)
	b.Position = b.Position.Add(disp)
	b.IsUpdated = true
	recomputeBulletLine(b)

	if bd.LongOfLifeActive {
		bd.Long += disp.Length()
		if bd.Long >= bd.LongOfLife {
			return
		}
	}

	// bounds is the swept segment's axis-aligned hull: a bullet has no size
	// of its own, only the line it travels along this sub-step.
	b.Bounds = Rect{
		Min: Vec2{X: min(bd.PrevPosition.X, b.Position.X), Y: min(bd.PrevPosition.Y, b.Position.Y)},
		Max: Vec2{X: max(bd.PrevPosition.X, b.Position.X), Y: max(bd.PrevPosition.Y, b.Position.Y)},
	}
}

// recomputeBulletLine refreshes the travel line's a*x + b*y + c = 0
// coefficients and the two reduced forms the narrow phase's edge probes
// read. An axis-aligned bullet makes one ratio's denominator zero; that
// branch is left untouched and the narrow phase skips the corresponding
// probe by checking the Force component directly rather than trusting a
// stale coefficient.
func recomputeBulletLine(b *Body) {
	bd := b.bullet
	a := -bd.Force.Y
	bCoef := bd.Force.X
	c := b.Position.X*bd.Force.Y - b.Position.Y*bd.Force.X

	if bCoef != 0 {
		bd.coefAB = a / bCoef
		bd.coefCB = c / bCoef
	}
	if a != 0 {
		bd.coefBA = bCoef / a
		bd.coefCA = c / a
	}
}

// expired reports whether a life-limited bullet has traveled its full
// budget and should be queued for removal at the next purge stage.
func (bd *bulletData) expired() bool {
	return bd.LongOfLifeActive && bd.Long >= bd.LongOfLife
}
