package golwjgl

import "fmt"

// DependencyHandler receives resolved coordinates. It stands for the build
// system's dependency graph: each call adds one dependency to the named
// bucket (a Gradle configuration, a Maven scope, a Bazel maven.install
// repository, ...).
type DependencyHandler interface {
	AddDependency(bucket string, dep Coordinate) error
}

// DependencyHandlerFunc adapts a function to DependencyHandler.
type DependencyHandlerFunc func(bucket string, dep Coordinate) error

// AddDependency calls f(bucket, dep).
func (f DependencyHandlerFunc) AddDependency(bucket string, dep Coordinate) error {
	return f(bucket, dep)
}

// Install adds the implementation coordinates to r.ImplementationBucket
// and the runtime coordinates to r.RuntimeBucket, in that order. It stops
// at the first error.
func (r *Result) Install(h DependencyHandler) error {
	if h == nil {
		return ErrNoHandler
	}
	for _, dep := range r.Implementation {
		if err := h.AddDependency(r.ImplementationBucket, dep); err != nil {
			return fmt.Errorf("add %s to %s: %w", dep, r.ImplementationBucket, err)
		}
	}
	for _, dep := range r.Runtime {
		if err := h.AddDependency(r.RuntimeBucket, dep); err != nil {
			return fmt.Errorf("add %s to %s: %w", dep, r.RuntimeBucket, err)
		}
	}
	return nil
}

// Buckets is an in-memory DependencyHandler that records coordinates per
// bucket in the order they were added.
// The zero value is ready to use.
type Buckets struct {
	names []string
	deps  map[string][]Coordinate
}

// AddDependency records dep under bucket. It never fails.
func (b *Buckets) AddDependency(bucket string, dep Coordinate) error {
	if b.deps == nil {
		b.deps = make(map[string][]Coordinate)
	}
	if _, ok := b.deps[bucket]; !ok {
		b.names = append(b.names, bucket)
	}
	b.deps[bucket] = append(b.deps[bucket], dep)
	return nil
}

// Get returns the coordinates recorded under bucket.
func (b *Buckets) Get(bucket string) []Coordinate {
	return append([]Coordinate(nil), b.deps[bucket]...)
}

// Names returns the bucket names in first-use order.
func (b *Buckets) Names() []string {
	return append([]string(nil), b.names...)
}

// Len returns the total number of recorded coordinates.
func (b *Buckets) Len() int {
	n := 0
	for _, deps := range b.deps {
		n += len(deps)
	}
	return n
}
