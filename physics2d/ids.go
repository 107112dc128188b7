package physics2d

// nextID mirrors the teacher's atomic UID counter
// (internal/engine/gameobject.go's uidCounter), simplified to a plain
// per-World field: spec.md §5 scopes the id allocator to "a per-world
// counter is acceptable", and a World is single-threaded and owned by one
// caller for its lifetime, so the atomic.AddUint64 the teacher needs for
// its process-wide counter would be dead weight here.
func (w *World) allocID() int {
	w.nextID++
	return w.nextID
}
