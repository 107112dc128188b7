package physics2d

// QueryPoint returns every body whose Bounds contains p, in Bodies() order.
// Read-only: it never flags IsUpdated or touches the Grid. Grounded on the
// teacher's Raycast (internal/physics/raycast.go), generalized from a
// single-ray query into a linear bounds scan since a 2D point query has no
// swept segment to slab-test.
func (w *World) QueryPoint(p Vec2) []*Body {
	var hits []*Body
	for _, b := range w.bodies {
		if p.X >= b.Bounds.Min.X && p.X <= b.Bounds.Max.X &&
			p.Y >= b.Bounds.Min.Y && p.Y <= b.Bounds.Max.Y {
			hits = append(hits, b)
		}
	}
	return hits
}

// QueryRect returns every body whose Bounds overlaps r, in Bodies() order.
func (w *World) QueryRect(r Rect) []*Body {
	var hits []*Body
	for _, b := range w.bodies {
		isect := intersect(b.Bounds, r)
		if isect.Width > 0 && isect.Height > 0 {
			hits = append(hits, b)
		}
	}
	return hits
}
