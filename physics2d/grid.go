package physics2d

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// regionShift turns a floored world coordinate into a region index via an
// arithmetic right shift — region size is 512 (2^9), per spec. Go's >> on
// a signed integer is already an arithmetic shift, so this floors toward
// -Inf for negative inputs the same way the teacher's posToCell
// (internal/physics/world.go) floors via integer division by CellSize,
// generalized from that teacher's float divide to the spec's required
// shift semantics.
const regionShift = 9

func regionIndex(v float64) int64 {
	return int64(math.Floor(v)) >> regionShift
}

func regionKeyString(sx, sy int64) string {
	return fmt.Sprintf("%d:%d", sx, sy)
}

// bodyRegions returns the region keys a body's Bounds overlaps, in the
// (y, x) scan order the region-list equality check depends on.
func bodyRegions(b *Body) []string {
	minX, maxX := regionIndex(b.Bounds.Min.X), regionIndex(b.Bounds.Max.X)
	minY, maxY := regionIndex(b.Bounds.Min.Y), regionIndex(b.Bounds.Max.Y)

	regions := make([]string, 0, (maxX-minX+1)*(maxY-minY+1))
	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			regions = append(regions, regionKeyString(sx, sy))
		}
	}
	return regions
}

func joinRegions(regions []string) string {
	return strings.Join(regions, ",")
}

func pairKeyString(idA, idB int) string {
	lo, hi := idA, idB
	if hi < lo {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("%d:%d", lo, hi)
}

// pairEntry is a broad-phase candidate pair with a reference count of how
// many regions the two bodies currently co-reside in. BodyA always holds
// the smaller id, matching the pair key's "a<b" convention.
type pairEntry struct {
	Key          string
	BodyA, BodyB *Body
	Count        int
}

// Grid is the region-hashed broad phase: a reference-counted pair registry
// that survives incremental region migrations (spec.md §2/§4.2). Grounded
// on the teacher's spatial hash (internal/physics/world.go's grid +
// CollisionPair, internal/compute/broadphase.go's candidate-pair shape),
// generalized from "rebuild every frame" to incremental re-indexing so a
// pair is born exactly when two bodies first share a region and dies
// exactly when they no longer share any.
type Grid struct {
	hash  map[string][]*Body
	pairs map[string]*pairEntry
}

func newGrid() *Grid {
	return &Grid{
		hash:  make(map[string][]*Body),
		pairs: make(map[string]*pairEntry),
	}
}

func (g *Grid) incrementPair(a, b *Body) {
	key := pairKeyString(a.ID, b.ID)
	if e, ok := g.pairs[key]; ok {
		e.Count++
		return
	}
	lo, hi := a, b
	if b.ID < a.ID {
		lo, hi = b, a
	}
	g.pairs[key] = &pairEntry{Key: key, BodyA: lo, BodyB: hi, Count: 1}
}

func (g *Grid) decrementPair(a, b *Body) {
	key := pairKeyString(a.ID, b.ID)
	e, ok := g.pairs[key]
	if !ok {
		return
	}
	if e.Count <= 1 {
		delete(g.pairs, key)
		return
	}
	e.Count--
}

// addToRegion appends body to region's occupant list then pairs it against
// every other occupant that passes canCollide, incrementing an existing
// pair or creating one at count 1.
func (g *Grid) addToRegion(region string, body *Body) {
	g.hash[region] = append(g.hash[region], body)
	for _, other := range g.hash[region] {
		if other == body {
			continue
		}
		if canCollide(body, other) {
			g.incrementPair(body, other)
		}
	}
}

// removeFromRegion splices body out of region's occupant list then
// decrements (or deletes at count 1) every pair against the bodies that
// remained in that region.
func (g *Grid) removeFromRegion(region string, body *Body) {
	list := g.hash[region]
	idx := -1
	for i, b := range list {
		if b == body {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	list = append(list[:idx], list[idx+1:]...)
	if len(list) == 0 {
		delete(g.hash, region)
	} else {
		g.hash[region] = list
	}
	for _, other := range list {
		g.decrementPair(body, other)
	}
}

func (g *Grid) register(body *Body) {
	regions := bodyRegions(body)
	for _, r := range regions {
		g.addToRegion(r, body)
	}
	body.Regions = regions
	body.RegionsString = joinRegions(regions)
}

func (g *Grid) reindex(body *Body, newRegions []string) {
	oldSet := make(map[string]bool, len(body.Regions))
	for _, r := range body.Regions {
		oldSet[r] = true
	}
	newSet := make(map[string]bool, len(newRegions))
	for _, r := range newRegions {
		newSet[r] = true
	}

	for _, r := range body.Regions {
		if !newSet[r] {
			g.removeFromRegion(r, body)
		}
	}
	for _, r := range newRegions {
		if !oldSet[r] {
			g.addToRegion(r, body)
		}
	}

	body.Regions = newRegions
	body.RegionsString = joinRegions(newRegions)
}

// removeBody unregisters body from every region it occupies and clears its
// region bookkeeping, as if it had never been registered.
func (g *Grid) removeBody(body *Body) {
	for _, r := range body.Regions {
		g.removeFromRegion(r, body)
	}
	body.Regions = nil
	body.RegionsString = ""
}

// update is the broad-phase re-index stage: register newly-seen bodies,
// then re-index anything flagged IsUpdated whose coarse cell membership
// actually changed.
func (g *Grid) update(bodies []*Body) {
	for _, body := range bodies {
		if body.Regions == nil {
			g.register(body)
		}
		if body.Type == Static {
			continue
		}
		if !body.IsUpdated {
			continue
		}
		if body.Type != Bullet {
			body.IsUpdated = false
		}
		newRegions := bodyRegions(body)
		if joinRegions(newRegions) != body.RegionsString {
			g.reindex(body, newRegions)
		}
	}
}

// sortedPairs returns the current candidate pairs in a deterministic order
// (by ascending id pair), independent of Go's randomized map iteration —
// required for the "candidate pairs are iterated in order" sensor-event
// ordering law.
func (g *Grid) sortedPairs() []*pairEntry {
	out := make([]*pairEntry, 0, len(g.pairs))
	for _, e := range g.pairs {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BodyA.ID != out[j].BodyA.ID {
			return out[i].BodyA.ID < out[j].BodyA.ID
		}
		return out[i].BodyB.ID < out[j].BodyB.ID
	})
	return out
}
