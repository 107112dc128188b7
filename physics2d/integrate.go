package physics2d

// integrate is the pipeline's first stage: advance every non-static body by
// delta according to its type, then flag anyone whose position has left
// bounds and any bullet that has exhausted its travel budget this sub-step.
// Both are queued for removal at the very next purge stage, within the same
// sub-step. Static bodies never move and are skipped entirely, matching the
// teacher's split between PhysicsWorld.Statics and PhysicsWorld.Objects
// (internal/physics/world.go) where only the latter group is ever
// integrated.
func integrate(bodies []*Body, delta float64, bounds Rect) (events []OutOfWorldEvent, expiredBulletIDs []int) {
	for _, b := range bodies {
		switch b.Type {
		case Bullet:
			integrateBullet(b, delta)
			if b.bullet.expired() {
				expiredBulletIDs = append(expiredBulletIDs, b.ID)
				continue
			}
		case Bounce:
			integrateBounce(b, delta)
		case Player:
			integratePlayer(b, delta)
		default:
			continue
		}
		if outOfBounds(b.Position, bounds) {
			events = append(events, OutOfWorldEvent{BodyID: b.ID})
		}
	}
	return events, expiredBulletIDs
}

func outOfBounds(p Vec2, bounds Rect) bool {
	return p.X < bounds.Min.X || p.X > bounds.Max.X || p.Y < bounds.Min.Y || p.Y > bounds.Max.Y
}
