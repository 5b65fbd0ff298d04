package resource

// Set is an ordered set of resources keyed by Resource.Key. Insertion order
// is preserved; re-adding an already present resource is a no-op.
type Set struct {
	keys  map[string]struct{}
	items []Resource
}

// NewSet creates an empty resource set.
func NewSet() *Set {
	return &Set{keys: make(map[string]struct{})}
}

// Add inserts the resource unless an equal one is already present. It reports
// whether the resource was added.
func (s *Set) Add(res Resource) bool {
	if res == nil {
		return false
	}

	key := res.Key()
	if _, ok := s.keys[key]; ok {
		return false
	}

	s.keys[key] = struct{}{}
	s.items = append(s.items, res)

	return true
}

// Contains reports whether a resource with the same key is present.
func (s *Set) Contains(res Resource) bool {
	if res == nil {
		return false
	}

	_, ok := s.keys[res.Key()]

	return ok
}

// ContainsKey reports whether the given key is present.
func (s *Set) ContainsKey(key string) bool {
	_, ok := s.keys[key]

	return ok
}

// Len returns the number of resources in the set.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the resources in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *Set) Items() []Resource {
	items := make([]Resource, len(s.items))
	copy(items, s.items)

	return items
}
