package physics2d

import (
	"log"
	"math"
)

// maxSubStepMillis caps a single internal integration step, matching the
// sub-stepping law: a Step call larger than this is broken into multiple
// internal steps so fast-moving bullets can't tunnel through thin geometry
// in one pass. Units are milliseconds throughout this package.
const maxSubStepMillis = 33.0

// forceScale converts the points/second force units the host-facing
// factory methods accept into the points/millisecond units the integrators
// use internally.
const forceScale = 1000.0

// OutOfWorldEvent reports a body whose position left the world's bounds
// during a Step call's integrate stage. The body is queued for removal the
// moment this event is produced.
type OutOfWorldEvent struct {
	BodyID int
}

// SensorEvent reports a sensor body overlapping another body during a
// Step call. Sensors never receive a positional correction.
type SensorEvent struct {
	BodyAID int
	BodyBID int
}

// BulletHitEvent reports a bullet body's swept segment crossing a solid
// edge during a Step call. Point is the nearest-edge crossing; a bullet
// with no life budget, or one that struck a STATIC body, is
// queued for removal the moment this event is produced. A budgeted bullet
// that struck PLAYER or BOUNCE survives and keeps traveling.
type BulletHitEvent struct {
	BulletID int
	OtherID  int
	Point    Vec2
}

// StepResult collects everything a Step call observed, in the order the
// pipeline stages produced it: out-of-world first (in body order), then
// sensor overlaps, then bullet hits (both in candidate-pair order).
type StepResult struct {
	OutOfWorld []OutOfWorldEvent
	Sensors    []SensorEvent
	BulletHits []BulletHitEvent
}

// WorldConfig configures a new World. Bounds defaults to infinite on both
// axes when nil.
type WorldConfig struct {
	Gravity float64 `json:"gravity"`
	Bounds  *Rect   `json:"bounds,omitempty"`
}

// World owns every Body in one simulation and the broad-phase Grid
// indexing them. A World is single-threaded: it performs no I/O, starts
// no goroutines, and belongs to exactly one caller for its lifetime.
// Grounded on the teacher's PhysicsWorld (internal/physics/world.go),
// generalized from its Objects/Kinematics/Statics split into one ordered
// Body slice plus a BodyType tag, and from its per-frame grid rebuild to
// the incremental Grid this package implements.
type World struct {
	bodies   []*Body
	byID     map[int]*Body
	toRemove map[int]bool
	grid     *Grid
	nextID   int

	Bounds         Rect
	DefaultGravity float64

	logger *log.Logger
}

// NewWorld constructs an empty World from cfg.
func NewWorld(cfg WorldConfig) *World {
	bounds := Rect{
		Min: Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
		Max: Vec2{X: math.Inf(1), Y: math.Inf(1)},
	}
	if cfg.Bounds != nil {
		bounds = *cfg.Bounds
	}
	return &World{
		byID:           make(map[int]*Body),
		toRemove:       make(map[int]bool),
		grid:           newGrid(),
		Bounds:         bounds,
		DefaultGravity: cfg.Gravity,
	}
}

// SetLogger attaches a logger for diagnostic output (e.g. a body removed
// twice in the same tick). A nil logger, the default, disables logging
// entirely — this package never logs to a process-global logger.
func (w *World) SetLogger(l *log.Logger) {
	w.logger = l
}

func (w *World) logf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Printf(format, args...)
	}
}

func (w *World) addBody(b *Body) {
	w.bodies = append(w.bodies, b)
	w.byID[b.ID] = b
}

// GetBody looks up a body by id.
func (w *World) GetBody(id int) (*Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// Bodies returns the World's live bodies in creation order. The slice is
// owned by the World; callers must not retain it across a Step call.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// CreateStaticBody adds an immovable body centered at pos with the given
// size. sensor marks it as overlap-only: it raises SensorEvents and is
// never corrected against.
func (w *World) CreateStaticBody(pos, size Vec2, sensor bool, userData any) *Body {
	b := &Body{
		ID:       w.allocID(),
		Type:     Static,
		Position: pos,
		Bounds:   RectFromCenter(pos, size),
		UserData: userData,
		static:   &staticData{Size: size, IsSensor: sensor},
	}
	w.addBody(b)
	return b
}

// CreatePlayerBody adds a player-controlled body. Gravity is injected from
// the World. moveSpeed defaults to 0.4 points/ms and jumpDistance to
// height*1.1 when zero; jumpCoef is derived as sqrt(jumpDistance/gravity).
func (w *World) CreatePlayerBody(pos, size Vec2, moveSpeed, jumpDistance float64, userData any) *Body {
	if moveSpeed == 0 {
		moveSpeed = 0.4
	}
	if jumpDistance == 0 {
		jumpDistance = size.Y * 1.1
	}
	gravity := w.DefaultGravity
	b := &Body{
		ID:       w.allocID(),
		Type:     Player,
		Position: pos,
		Bounds:   RectFromCenter(pos, size),
		UserData: userData,
		player: &playerData{
			Size:                size,
			NormalBounds:        RectFromCenter(Vec2{}, size),
			MoveSpeed:           moveSpeed,
			JumpDistance:        jumpDistance,
			Gravity:             gravity,
			JumpCoef:            math.Sqrt(jumpDistance / gravity),
			LastGroundPositionY: pos.Y,
		},
	}
	w.addBody(b)
	return b
}

// CreateBounceBody adds a rebounding body. force is in points/second and is
// scaled to points/ms on ingest. Gravity is injected from the World.
// reboundSpeed (the upward force applied the instant the body lands) has no
// host-facing input in the spec's external interface; it defaults to the
// negated magnitude of the initial vertical force, or -0.3 if the body
// starts with no vertical force at all.
func (w *World) CreateBounceBody(pos, size Vec2, force Vec2, userData any) *Body {
	scaled := Vec2{X: force.X / forceScale, Y: force.Y / forceScale}
	rebound := -abs(scaled.Y)
	if rebound == 0 {
		rebound = -0.3
	}
	b := &Body{
		ID:       w.allocID(),
		Type:     Bounce,
		Position: pos,
		Bounds:   RectFromCenter(pos, size),
		UserData: userData,
		bounce: &bounceData{
			Size:         size,
			NormalBounds: RectFromCenter(Vec2{}, size),
			Force:        scaled,
			Gravity:      w.DefaultGravity,
			ReboundSpeed: rebound,
		},
	}
	w.addBody(b)
	return b
}

// CreateBulletBody adds a bullet: a body with no size of its own that
// travels in a straight line at the given force (points/second, scaled to
// points/ms) and is swept against the world rather than resolved by
// overlap. ownerID, if non-zero, excludes that body from the bullet's
// candidate pairs so a shooter can't hit itself. longOfLife, if positive,
// despawns the bullet once it has traveled that far.
func (w *World) CreateBulletBody(pos Vec2, force Vec2, ownerID int, longOfLife float64, userData any) *Body {
	scaled := Vec2{X: force.X / forceScale, Y: force.Y / forceScale}
	b := &Body{
		ID:        w.allocID(),
		Type:      Bullet,
		Position:  pos,
		Bounds:    Rect{Min: pos, Max: pos},
		UserData:  userData,
		IsUpdated: true,
		bullet: &bulletData{
			PrevPosition: pos,
			Force:        scaled,
			OwnerID:      ownerID,
		},
	}
	if longOfLife > 0 {
		b.bullet.LongOfLifeActive = true
		b.bullet.LongOfLife = longOfLife
	}
	recomputeBulletLine(b)
	w.addBody(b)
	return b
}

// RemoveBody queues id for removal at the purge stage of the next internal
// step, which runs after that step's integrate stage. Removal is deferred
// rather than immediate so a body can be safely
// removed from within a callback driven by this tick's StepResult without
// invalidating the slice Bodies() returned. Calling it more than once
// before the next Step, or on an id already gone, is a no-op.
func (w *World) RemoveBody(id int) {
	if w.toRemove[id] {
		w.logf("physics2d: body %d already queued for removal", id)
	}
	w.toRemove[id] = true
}

// purge is the pipeline's purge stage: splice out every body queued via
// RemoveBody or an out-of-world/bullet-hit/bullet-expiry flag from this or
// the previous sub-step, unregistering each from the Grid first so its
// pairs are released.
func (w *World) purge() {
	if len(w.toRemove) == 0 {
		return
	}
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if w.toRemove[b.ID] {
			w.grid.removeBody(b)
			delete(w.byID, b.ID)
			continue
		}
		kept = append(kept, b)
	}
	w.bodies = kept
	w.toRemove = make(map[int]bool)
}

// Step advances the world by delta milliseconds, internally broken into
// sub-steps of at most maxSubStepMillis so that fast bullets can't skip
// over thin static geometry in a single pass. Events from every sub-step
// are concatenated in the order they occurred.
func (w *World) Step(delta float64) StepResult {
	var result StepResult
	remaining := delta
	for remaining > 0 {
		dt := remaining
		if dt > maxSubStepMillis {
			dt = maxSubStepMillis
		}
		remaining -= dt

		sub := w.step(dt)
		result.OutOfWorld = append(result.OutOfWorld, sub.OutOfWorld...)
		result.Sensors = append(result.Sensors, sub.Sensors...)
		result.BulletHits = append(result.BulletHits, sub.BulletHits...)
	}
	return result
}

// step is one internal sub-step: integrate, purge, re-index, detect and
// resolve, then arm fall timers for anyone left airborne.
func (w *World) step(delta float64) StepResult {
	outOfWorld, expiredBullets := integrate(w.bodies, delta, w.Bounds)
	for _, ev := range outOfWorld {
		w.toRemove[ev.BodyID] = true
	}
	for _, id := range expiredBullets {
		w.toRemove[id] = true
	}

	w.purge()
	w.grid.update(w.bodies)

	sensors, contacts, bulletOrder, bulletTargets := detect(w.grid.sortedPairs())
	bulletHits, bulletRemovals := resolveBullets(bulletOrder, bulletTargets)
	for _, id := range bulletRemovals {
		w.toRemove[id] = true
	}
	resolveContacts(contacts)

	armFallTimers(w.bodies)

	return StepResult{OutOfWorld: outOfWorld, Sensors: sensors, BulletHits: bulletHits}
}
