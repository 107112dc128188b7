package physics2d

// integratePlayer advances a player body for one sub-step: horizontal
// movement driven directly by forceX, plus a vertical state machine that is
// either grounded, riding a closed-form jump parabola, or in free fall.
// Grounded on the teacher's CharacterController.SimpleMove/Move
// (internal/components/charactercontroller.go), generalized from that
// controller's per-frame velocity integration to the spec's closed-form
// jump/fall position formulas driven directly by elapsed timers.
func integratePlayer(b *Body, delta float64) {
	pd := b.player
	changed := false

	if pd.ForceX != 0 {
		b.Position.X += pd.ForceX * delta
		changed = true
		if pd.IsOnGround {
			// Nudge off the floor so next tick's resolve stage has to
			// re-earn IsOnGround via an actual PLAYER<->STATIC contact
			// from below, rather than trusting a stale flag forever.
			b.Position.Y += 1
			pd.IsOnGround = false
		}
	}

	pd.MoveDirectionY = 0

	switch {
	case pd.JumpTimerActive:
		pd.JumpTimer += delta
		t := pd.JumpTimer - pd.JumpCoef
		b.Position.Y = pd.LastGroundPositionY + pd.Gravity*t*t - pd.JumpDistance
		pd.MoveDirectionY = sign(t)
		changed = true

	case !pd.IsOnGround && pd.FallTimerActive:
		pd.FallTimer += delta
		b.Position.Y = pd.LastGroundPositionY + pd.Gravity*pd.FallTimer*pd.FallTimer
		pd.MoveDirectionY = 1
		changed = true
	}

	if changed {
		b.Bounds = RectFromCenter(b.Position, pd.Size)
		b.IsUpdated = true
	}
}

// armFallTimers is the pipeline's afterUpdate pass: any player left neither
// grounded nor riding an active jump or fall timer after this sub-step's
// resolve (having walked off a ledge, or spawned in mid-air) gets its fall
// timer armed so the next integrate call free-falls it instead of freezing
// in place.
func armFallTimers(bodies []*Body) {
	for _, b := range bodies {
		if b.Type != Player {
			continue
		}
		pd := b.player
		if pd.IsOnGround || pd.JumpTimerActive || pd.FallTimerActive {
			continue
		}
		pd.FallTimerActive = true
		pd.FallTimer = 0
	}
}

// Move sets a player body's horizontal force from a direction in {-1, +1}.
// 0 is undefined input per the engine's contract (the host calls Stop
// instead); a no-op on non-player bodies. While airborne, choosing the
// direction opposite the one latched at jump start halves the resulting
// force and forfeits that latch — air control is reduced once you commit
// to reversing mid-jump.
func (b *Body) Move(dir int) {
	if b.Type != Player || dir == 0 {
		return
	}
	pd := b.player
	pd.ForceX = pd.MoveSpeed * float64(dir)
	if !pd.IsOnGround && dir != pd.JumpInitDir {
		pd.ForceX *= 0.5
		pd.JumpInitDir = 0
	}
	b.IsUpdated = true
}

// Stop clears a player body's horizontal force. The host must call this
// (or Move with a nonzero direction) to change horizontal motion: forceX
// persists across ticks until explicitly overwritten.
func (b *Body) Stop() {
	if b.Type != Player {
		return
	}
	b.player.ForceX = 0
	b.IsUpdated = true
}

// Jump starts a player body's jump arc if it is currently grounded. A no-op
// while airborne or on non-player bodies.
func (b *Body) Jump() {
	if b.Type != Player || !b.player.IsOnGround {
		return
	}
	pd := b.player
	pd.JumpTimerActive = true
	pd.JumpTimer = 0
	pd.LastGroundPositionY = b.Position.Y
	pd.JumpInitDir = sign(pd.ForceX)
	pd.IsOnGround = false
	b.IsUpdated = true
}
