package studio

// SourceRegistry tracks the set of uploaded source identifiers.
//
// Identifiers are deduplicated; insertion order is kept so the first uploaded
// source can drive artifact title derivation. Sources are never removed.
type SourceRegistry struct {
	ids  []string
	seen map[string]struct{}
}

// NewSourceRegistry creates an empty registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{seen: make(map[string]struct{})}
}

// Add inserts a source identifier and reports whether it was newly inserted.
// Duplicate inserts are observable no-ops.
func (r *SourceRegistry) Add(id string) bool {
	if _, ok := r.seen[id]; ok {
		return false
	}
	r.seen[id] = struct{}{}
	r.ids = append(r.ids, id)
	return true
}

// Size returns the number of distinct sources.
func (r *SourceRegistry) Size() int {
	return len(r.ids)
}

// First returns the first uploaded source identifier, or false when empty.
func (r *SourceRegistry) First() (string, bool) {
	if len(r.ids) == 0 {
		return "", false
	}
	return r.ids[0], true
}

// List returns the source identifiers in insertion order.
func (r *SourceRegistry) List() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
