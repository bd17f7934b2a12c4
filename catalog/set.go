package catalog

// Set is an insertion-ordered set of modules keyed by name.
// The zero value is an empty set ready to use.
type Set struct {
	index   map[string]struct{}
	modules []Module
}

// NewSet returns a set holding modules, dropping duplicate names.
func NewSet(modules ...Module) *Set {
	s := &Set{}
	s.Add(modules...)
	return s
}

// Add inserts modules whose names are not in the set yet. The first module
// added under a name wins.
func (s *Set) Add(modules ...Module) {
	if s.index == nil {
		s.index = make(map[string]struct{}, len(modules))
	}
	for _, m := range modules {
		if _, ok := s.index[m.Name]; ok {
			continue
		}
		s.index[m.Name] = struct{}{}
		s.modules = append(s.modules, m)
	}
}

// Union adds every module of other to s.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	s.Add(other.modules...)
}

// Contains reports whether a module with m's name is in the set.
func (s *Set) Contains(m Module) bool {
	_, ok := s.index[m.Name]
	return ok
}

// Len returns the number of modules.
func (s *Set) Len() int {
	return len(s.modules)
}

// IsEmpty reports whether the set has no modules.
func (s *Set) IsEmpty() bool {
	return len(s.modules) == 0
}

// Modules returns the modules in insertion order. The returned slice is a copy.
func (s *Set) Modules() []Module {
	out := make([]Module, len(s.modules))
	copy(out, s.modules)
	return out
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return NewSet(s.modules...)
}
