package physics2d

import "testing"

func TestWorldPlayerLandsOnStaticFloor(t *testing.T) {
	w := NewWorld(WorldConfig{Gravity: 0.001})
	floor := w.CreateStaticBody(Vec2{X: 0, Y: 200}, Vec2{X: 1000, Y: 40}, false, nil)
	player := w.CreatePlayerBody(Vec2{X: 0, Y: 0}, Vec2{X: 20, Y: 40}, 0, 0, nil)

	landed := false
	for i := 0; i < 200 && !landed; i++ {
		w.Step(16)
		landed = player.player.IsOnGround
	}

	if !landed {
		t.Fatal("expected the player to land on the floor within 200 steps")
	}
	if player.Position.Y != 160 {
		t.Errorf("expected the player centered at Y=160 (floor top minus half height), got %v", player.Position.Y)
	}
	_ = floor
}

func TestWorldRisingPlayerPassesThroughAnyStatic(t *testing.T) {
	w := NewWorld(WorldConfig{Gravity: 0.01})
	platform := w.CreateStaticBody(Vec2{X: 0, Y: 100}, Vec2{X: 200, Y: 20}, false, nil)
	player := w.CreatePlayerBody(Vec2{X: 0, Y: 95}, Vec2{X: 20, Y: 30}, 0, 0, nil)
	player.player.IsOnGround = true
	player.Jump()

	w.Step(16)

	if player.player.IsOnGround {
		t.Error("a rising player should pass through a static body pushing up into it, not land on it")
	}
	wantY := 95.0 + 0.01*(16.0-player.player.JumpCoef)*(16.0-player.player.JumpCoef) - player.player.JumpDistance
	if player.Position.Y != wantY {
		t.Errorf("expected the jump parabola uncorrected at %v, got %v", wantY, player.Position.Y)
	}
	_ = platform
}

func TestWorldBulletHitsStaticAndIsRemovedOneSubStepLater(t *testing.T) {
	w := NewWorld(WorldConfig{})
	wall := w.CreateStaticBody(Vec2{X: 500, Y: 0}, Vec2{X: 100, Y: 100}, false, nil)
	bullet := w.CreateBulletBody(Vec2{X: 0, Y: 0}, Vec2{X: 5000, Y: 0}, 0, 0, nil)

	res1 := w.Step(16)
	if len(res1.BulletHits) != 0 {
		t.Fatalf("expected no hit yet, got %d", len(res1.BulletHits))
	}
	if bullet.Position.X != 80 {
		t.Errorf("expected the bullet at X=80 after 16ms, got %v", bullet.Position.X)
	}

	res2 := w.Step(100)
	if len(res2.BulletHits) != 1 {
		t.Fatalf("expected exactly 1 bullet hit across the sub-steps in this call, got %d", len(res2.BulletHits))
	}
	hit := res2.BulletHits[0]
	if hit.OtherID != wall.ID {
		t.Errorf("expected the bullet to hit the wall (%d), got %d", wall.ID, hit.OtherID)
	}
	if hit.Point != (Vec2{X: 450, Y: 0}) {
		t.Errorf("expected the nearest edge crossing at (450,0), got %v", hit.Point)
	}
	if bullet.Position.X != 580 {
		t.Errorf("expected the bullet to have traveled one more sub-step to X=580 before being purged, got %v", bullet.Position.X)
	}
	if _, ok := w.GetBody(bullet.ID); ok {
		t.Error("expected the bullet purged by the end of the call that reported its hit")
	}
}

func TestWorldBulletDespawnsAtEndOfLife(t *testing.T) {
	w := NewWorld(WorldConfig{})
	bullet := w.CreateBulletBody(Vec2{X: 0, Y: 0}, Vec2{X: 1000, Y: 0}, 0, 20, nil)

	if _, ok := w.GetBody(bullet.ID); !ok {
		t.Fatal("expected the bullet to exist right after creation")
	}

	w.Step(32) // one sub-step: travels 32 units, past its 20-unit budget

	if _, ok := w.GetBody(bullet.ID); ok {
		t.Error("expected a bullet with no remaining travel budget to be purged once it expires")
	}
}

func TestWorldBulletIgnoresOwner(t *testing.T) {
	w := NewWorld(WorldConfig{})
	owner := w.CreatePlayerBody(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 10}, 0, 0, nil)
	bullet := w.CreateBulletBody(Vec2{X: 0, Y: 0}, Vec2{X: 1000, Y: 0}, owner.ID, 0, nil)

	res := w.Step(16)

	if len(res.BulletHits) != 0 {
		t.Errorf("expected the bullet's owner to be excluded from its candidate pairs, got %d hits", len(res.BulletHits))
	}
	if bullet.Position.X != 16 {
		t.Errorf("expected the bullet at X=16, got %v", bullet.Position.X)
	}
	if _, ok := w.GetBody(owner.ID); !ok {
		t.Error("the owner should be untouched by its own bullet")
	}
}

func TestWorldRemoveBodyIsDeferred(t *testing.T) {
	w := NewWorld(WorldConfig{})
	b := w.CreateStaticBody(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 10}, false, nil)

	w.RemoveBody(b.ID)
	if _, ok := w.GetBody(b.ID); !ok {
		t.Fatal("expected the body to still exist before the next step purges it")
	}

	w.Step(1)
	if _, ok := w.GetBody(b.ID); ok {
		t.Error("expected the body to be gone after a step ran the purge stage")
	}
}

func TestWorldBounceFirstFloorContactHalvesRebound(t *testing.T) {
	w := NewWorld(WorldConfig{})
	w.CreateStaticBody(Vec2{X: 0, Y: 50}, Vec2{X: 1000, Y: 20}, false, nil)
	ball := w.CreateBounceBody(Vec2{X: 0, Y: 30}, Vec2{X: 10, Y: 10}, Vec2{X: 0, Y: 5000}, nil)

	w.Step(2)

	if ball.bounce.Force.Y != -2.5 {
		t.Errorf("expected rebound force -2.5 after the first floor contact, got %v", ball.bounce.Force.Y)
	}
	if ball.Position.Y != 35 {
		t.Errorf("expected the ball pushed out to Y=35, got %v", ball.Position.Y)
	}
	if ball.bounce.CountCollisionsFixY != 1 {
		t.Errorf("expected the Y fix-count at 1, got %d", ball.bounce.CountCollisionsFixY)
	}
}
