package physics2d

import "testing"

func newTestBody(id int, typ BodyType, pos, size Vec2) *Body {
	return &Body{
		ID:       id,
		Type:     typ,
		Position: pos,
		Bounds:   RectFromCenter(pos, size),
	}
}

func TestGridRegisterCreatesPair(t *testing.T) {
	g := newGrid()
	a := newTestBody(1, Static, Vec2{X: 0, Y: 0}, Vec2{X: 100, Y: 100})
	a.static = &staticData{}
	b := newTestBody(2, Player, Vec2{X: 10, Y: 10}, Vec2{X: 20, Y: 20})
	b.player = &playerData{}

	g.update([]*Body{a, b})

	if len(g.pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(g.pairs))
	}
	key := pairKeyString(a.ID, b.ID)
	e, ok := g.pairs[key]
	if !ok {
		t.Fatalf("expected pair %s to exist", key)
	}
	if e.BodyA.ID != 1 || e.BodyB.ID != 2 {
		t.Errorf("expected BodyA=1 BodyB=2, got %d/%d", e.BodyA.ID, e.BodyB.ID)
	}
}

func TestGridSameTypeNeverPairs(t *testing.T) {
	g := newGrid()
	a := newTestBody(1, Player, Vec2{X: 0, Y: 0}, Vec2{X: 50, Y: 50})
	a.player = &playerData{}
	b := newTestBody(2, Player, Vec2{X: 5, Y: 5}, Vec2{X: 50, Y: 50})
	b.player = &playerData{}

	g.update([]*Body{a, b})

	if len(g.pairs) != 0 {
		t.Fatalf("expected 0 pairs between same-type bodies, got %d", len(g.pairs))
	}
}

func TestGridPairReleasedAndReformedByMigration(t *testing.T) {
	g := newGrid()
	// Both bodies span the region boundaries at x=512 and y=0 so they share
	// four regions; region size is 512 per regionShift.
	a := newTestBody(1, Static, Vec2{X: 500, Y: 0}, Vec2{X: 40, Y: 40})
	a.static = &staticData{}
	b := newTestBody(2, Player, Vec2{X: 520, Y: 0}, Vec2{X: 40, Y: 40})
	b.player = &playerData{}

	bodies := []*Body{a, b}
	g.update(bodies)
	if len(g.pairs) != 1 {
		t.Fatalf("expected 1 pair after initial registration, got %d", len(g.pairs))
	}

	// Move b far away so it no longer shares any region with a.
	b.Position = Vec2{X: 5000, Y: 5000}
	b.Bounds = RectFromCenter(b.Position, Vec2{X: 40, Y: 40})
	b.IsUpdated = true
	g.update(bodies)

	if len(g.pairs) != 0 {
		t.Fatalf("expected pair to be released after migration, got %d pairs", len(g.pairs))
	}

	// Move b back.
	b.Position = Vec2{X: 520, Y: 0}
	b.Bounds = RectFromCenter(b.Position, Vec2{X: 40, Y: 40})
	b.IsUpdated = true
	g.update(bodies)

	if len(g.pairs) != 1 {
		t.Fatalf("expected pair to reform after migrating back, got %d pairs", len(g.pairs))
	}
}

func TestGridRemoveBodyReleasesPairs(t *testing.T) {
	g := newGrid()
	a := newTestBody(1, Static, Vec2{X: 0, Y: 0}, Vec2{X: 100, Y: 100})
	a.static = &staticData{}
	b := newTestBody(2, Player, Vec2{X: 10, Y: 10}, Vec2{X: 20, Y: 20})
	b.player = &playerData{}

	g.update([]*Body{a, b})
	if len(g.pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(g.pairs))
	}

	g.removeBody(b)
	if len(g.pairs) != 0 {
		t.Fatalf("expected 0 pairs after removal, got %d", len(g.pairs))
	}
	if b.Regions != nil {
		t.Errorf("expected Regions cleared after removeBody, got %v", b.Regions)
	}
}

func TestGridSortedPairsDeterministic(t *testing.T) {
	g := newGrid()
	stat := newTestBody(1, Static, Vec2{X: 0, Y: 0}, Vec2{X: 1000, Y: 1000})
	stat.static = &staticData{}
	p1 := newTestBody(3, Player, Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 10})
	p1.player = &playerData{}
	p2 := newTestBody(2, Player, Vec2{X: 5, Y: 5}, Vec2{X: 10, Y: 10})
	p2.player = &playerData{}

	g.update([]*Body{stat, p1, p2})

	pairs := g.sortedPairs()
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].BodyB.ID > pairs[1].BodyB.ID {
		t.Errorf("expected pairs sorted by BodyB id, got %d then %d", pairs[0].BodyB.ID, pairs[1].BodyB.ID)
	}
}
