package physics2d

// contact is a candidate pair the narrow phase found genuinely overlapping
// and that isn't a sensor or a bullet: exactly one of BodyA/BodyB is always
// the non-STATIC side, since canCollide guarantees the pair has exactly one
// STATIC member.
type contact struct {
	BodyA, BodyB *Body
	Isect        intersection
}

// detect is the pipeline's detect stage: walk every candidate pair exactly
// once, classifying each as a sensor overlap, a bullet/target stash, or a
// solid contact. Grounded on the teacher's shape-type dispatch in
// resolveCollision (internal/physics/world.go), generalized from a
// sphere/box switch to a static/player/bounce/bullet switch.
func detect(pairs []*pairEntry) (sensors []SensorEvent, contacts []contact, bulletOrder []*Body, bulletTargets map[int][]*Body) {
	bulletTargets = make(map[int][]*Body)
	seen := make(map[int]bool)

	for _, pair := range pairs {
		a, b := pair.BodyA, pair.BodyB
		isect := intersect(a.Bounds, b.Bounds)
		if isect.Width < 0 || isect.Height < 0 {
			continue
		}
		switch {
		case a.IsSensor() || b.IsSensor():
			sensors = append(sensors, SensorEvent{BodyAID: a.ID, BodyBID: b.ID})
		case a.Type == Bullet:
			stashBulletTarget(a, b, bulletTargets, &bulletOrder, seen)
		case b.Type == Bullet:
			stashBulletTarget(b, a, bulletTargets, &bulletOrder, seen)
		default:
			contacts = append(contacts, contact{BodyA: a, BodyB: b, Isect: isect})
		}
	}
	return
}

func stashBulletTarget(bullet, target *Body, targets map[int][]*Body, order *[]*Body, seen map[int]bool) {
	if !seen[bullet.ID] {
		seen[bullet.ID] = true
		*order = append(*order, bullet)
	}
	targets[bullet.ID] = append(targets[bullet.ID], target)
}

// resolveBullets is the bullet half of narrow-phase resolution (still part
// of the detect stage per spec: bullet hits are determined here, one sub-step
// before the purge stage that actually removes them). For each bullet that
// found at least one target this sub-step, it picks the nearest edge
// crossing across all of them and decides whether the bullet survives:
// a budgeted bullet that strikes PLAYER or BOUNCE keeps traveling
// (grenade-shrapnel semantics); anything else is queued for removal.
func resolveBullets(order []*Body, targets map[int][]*Body) (hits []BulletHitEvent, toRemove []int) {
	for _, bullet := range order {
		point, _, target, ok := bulletNearestHit(bullet, targets[bullet.ID])
		if !ok {
			continue
		}
		hits = append(hits, BulletHitEvent{BulletID: bullet.ID, OtherID: target.ID, Point: point})
		if !bullet.bullet.LongOfLifeActive || target.Type == Static {
			toRemove = append(toRemove, bullet.ID)
		}
	}
	return
}
