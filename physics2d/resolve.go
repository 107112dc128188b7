package physics2d

// resolveContacts applies a positional correction to the dynamic side of
// every (Static, Player|Bounce) contact found this sub-step. Grounded on
// the teacher's AABB.Resolve/calculatePushOut (internal/physics/aabb.go,
// internal/components/charactercontroller.go), generalized from those
// single min-overlap-axis heuristics into the ordered disambiguation below:
// full containment on one axis forces resolution onto the other, a rising
// player passes through whatever it is pushing up into, a near-square
// overlap while falling is read as a landing, and only once none of those
// apply does the correction fall back to the smaller-penetration axis with
// sign taken from the two centers' relative position.
func resolveContacts(contacts []contact) {
	for _, c := range contacts {
		resolveOverlap(c.BodyA, c.BodyB, c.Isect)
	}
}

// resolveOverlap resolves one STATIC/dynamic contact in place.
func resolveOverlap(bodyA, bodyB *Body, isect intersection) {
	var stat, resolved *Body
	if bodyA.Type == Static {
		stat, resolved = bodyA, bodyB
	} else {
		stat, resolved = bodyB, bodyA
	}

	correction := Vec2{X: isect.Width, Y: isect.Height}
	needMinFix := true

	// 1. Containment on X: resolved's X extent strictly inside static's.
	if resolved.Bounds.Min.X > stat.Bounds.Min.X && resolved.Bounds.Max.X < stat.Bounds.Max.X {
		correction.X = 0
		needMinFix = false
	}
	// 2. Containment on Y.
	if resolved.Bounds.Min.Y > stat.Bounds.Min.Y && resolved.Bounds.Max.Y < stat.Bounds.Max.Y {
		correction.Y = 0
		needMinFix = false
	}

	above := resolved.Position.Y < stat.Position.Y
	left := resolved.Position.X < stat.Position.X

	// 3. Jump-through for players going up.
	if correction.Y != 0 && above && resolved.Type == Player &&
		resolved.player.MoveDirectionY == -1 && !resolved.player.IsOnGround {
		correction.Y = 0
		needMinFix = false
	}

	// 4. Landing bias.
	if correction.Y != 0 && above && moveDirectionY(resolved) == 1 && correction.Y < correction.X {
		correction.X = 0
		needMinFix = false
	}

	// 5. Min-axis fallback.
	if needMinFix {
		if correction.X < correction.Y {
			correction.Y = 0
		} else {
			correction.X = 0
		}
	}

	// 6. Sign: the correction points from the static toward the resolved
	// body along whichever axis survived.
	if above {
		correction.Y = -correction.Y
	}
	if left {
		correction.X = -correction.X
	}

	newPos := resolved.Position.Add(correction)
	updateCollision(resolved, correction, newPos)
	resolved.Position = newPos
	resolved.Bounds = translateRect(resolved.Bounds, correction)
	resolved.IsUpdated = true
}

func moveDirectionY(b *Body) int {
	switch b.Type {
	case Player:
		return b.player.MoveDirectionY
	case Bounce:
		return b.bounce.MoveDirectionY
	default:
		return 0
	}
}

// updateCollision applies the per-type post-collision response; newPos is
// the resolved body's position after this correction is applied.
func updateCollision(b *Body, correction Vec2, newPos Vec2) {
	switch b.Type {
	case Player:
		updatePlayerCollision(b.player, correction, newPos)
	case Bounce:
		updateBounceCollision(b.bounce, correction)
	}
}

func updatePlayerCollision(pd *playerData, correction Vec2, newPos Vec2) {
	if correction.X != 0 {
		pd.JumpInitDir = 0
	}
	switch {
	case correction.Y < 0: // contact from below the static: ground under the player
		pd.IsOnGround = true
		pd.JumpInitDir = 0
		pd.JumpTimerActive = false
		pd.FallTimerActive = false
		pd.LastGroundPositionY = newPos.Y
	case correction.Y > 0: // ceiling
		pd.JumpTimerActive = false
		pd.JumpInitDir = 0
	}
}

func updateBounceCollision(bd *bounceData, correction Vec2) {
	if correction.X != 0 {
		bounceSideResponse(bd, correction.X)
	}
	switch {
	case correction.Y < 0:
		bounceFloorResponse(bd)
	case correction.Y > 0:
		bd.Force.Y = -bd.Force.Y
	}
}

// bounceSideResponse implements the X axis's decaying-scale response,
// reproducing the source's documented off-by-one: the <=3 guard lets the
// counter take one more step past the cap (to 4) on the tick it pins
// force.x to zero, after which the guard itself stops any further change.
func bounceSideResponse(bd *bounceData, correctionX float64) {
	if bd.CountCollisionsFixX > 3 {
		return
	}
	if bd.CountCollisionsFixX == 3 {
		bd.Force.X = 0
	} else {
		bd.Force.X *= 0.5 - 0.1*float64(bd.CountCollisionsFixX)
		if bd.Force.X != 0 && sign(bd.Force.X) != sign(correctionX) {
			bd.Force.X = -bd.Force.X
		}
	}
	bd.CountCollisionsFixX++
}

// bounceFloorResponse implements the Y axis's floor response: a decaying
// rebound speed until the fix-count cap, then the body is pinned at rest.
func bounceFloorResponse(bd *bounceData) {
	if bd.CountCollisionsFixY >= 3 {
		bd.Force.Y = 0
		bd.MoveDirectionY = 0
		return
	}
	bd.ReboundSpeed *= 0.5 - 0.15*float64(bd.CountCollisionsFixY)
	bd.Force.Y = bd.ReboundSpeed
	bd.CountCollisionsFixY++
}
