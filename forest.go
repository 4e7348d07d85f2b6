package aoc

import (
	"iter"
	"slices"

	"github.com/pingcap/errors"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
	"tailscale.com/util/set"
)

// ErrNotFound is returned when an operation names an element that was never
// added to a Forest.
var ErrNotFound = errors.New("element not found")

// Forest is a disjoint-set forest (union-find) over values of type T. It
// partitions every added element into components that only ever get merged.
//
// Find uses path compression and Merge uses union by rank, so a sequence of
// operations runs in near-constant amortized time per operation.
//
// A Forest is not safe for concurrent use. Find rewrites parent links, so
// even lookups must be serialized by the caller.
type Forest[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	// components maps each root to the members of its tree. Only roots have
	// an entry.
	components map[T]set.Set[T]
}

// New returns a Forest with each of items in its own component.
func New[T comparable](items ...T) *Forest[T] {
	f := &Forest[T]{
		parent:     make(map[T]T, len(items)),
		rank:       make(map[T]int, len(items)),
		components: make(map[T]set.Set[T], len(items)),
	}
	for _, it := range items {
		f.Add(it)
	}
	return f
}

// Add inserts item as a singleton component. It does nothing if item is
// already present.
func (f *Forest[T]) Add(item T) {
	if f.Contains(item) {
		return
	}
	f.parent[item] = item
	f.rank[item] = 0
	s := make(set.Set[T], 1)
	s.Add(item)
	f.components[item] = s
}

// Contains reports whether item has been added.
func (f *Forest[T]) Contains(item T) bool {
	_, ok := f.parent[item]
	return ok
}

// Size returns the number of elements in the forest.
func (f *Forest[T]) Size() int {
	return len(f.parent)
}

// Len returns the number of components.
func (f *Forest[T]) Len() int {
	return len(f.components)
}

// Find returns the representative of item's component.
func (f *Forest[T]) Find(item T) (T, error) {
	if !f.Contains(item) {
		var zero T
		return zero, errors.Annotatef(ErrNotFound, "find %v", item)
	}
	return f.root(item), nil
}

// root walks to the root of x and then points every node on the way directly
// at it. x must be present.
func (f *Forest[T]) root(x T) T {
	r := x
	for p := f.parent[r]; p != r; p = f.parent[r] {
		r = p
	}
	for x != r {
		x, f.parent[x] = f.parent[x], r
	}
	return r
}

// Merge joins the components containing a and b. It reports whether two
// distinct components were joined; merging elements that already share a
// component is a no-op.
func (f *Forest[T]) Merge(a, b T) (bool, error) {
	if !f.Contains(a) {
		return false, errors.Annotatef(ErrNotFound, "merge %v", a)
	}
	if !f.Contains(b) {
		return false, errors.Annotatef(ErrNotFound, "merge %v", b)
	}
	ra, rb := f.root(a), f.root(b)
	if ra == rb {
		return false, nil
	}
	switch ka, kb := f.rank[ra], f.rank[rb]; {
	case ka > kb:
		ra, rb = rb, ra
	case ka == kb:
		f.rank[rb]++
	}
	// ra is absorbed into rb.
	f.parent[ra] = rb
	f.components[rb].AddSet(f.components[ra])
	delete(f.components, ra)
	return true, nil
}

// Connected reports whether a and b are in the same component.
func (f *Forest[T]) Connected(a, b T) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// ComponentOf returns a copy of the members of item's component.
func (f *Forest[T]) ComponentOf(item T) (set.Set[T], error) {
	if !f.Contains(item) {
		return nil, errors.Annotatef(ErrNotFound, "component of %v", item)
	}
	return f.components[f.root(item)].Clone(), nil
}

// Components returns a snapshot of every component in unspecified order.
// The returned sets are owned by the caller and are not affected by later
// merges.
func (f *Forest[T]) Components() []set.Set[T] {
	out := make([]set.Set[T], 0, len(f.components))
	for _, s := range f.components {
		out = append(out, s.Clone())
	}
	return out
}

// Roots returns the representative of every component in unspecified order.
func (f *Forest[T]) Roots() []T {
	return maps.Keys(f.components)
}

// ComponentSizes returns the size of every component, largest first.
func (f *Forest[T]) ComponentSizes() []int {
	sizes := make([]int, 0, len(f.components))
	for _, s := range f.components {
		sizes = append(sizes, s.Len())
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes
}

// Elements returns a sequence of every element in unspecified order. The
// sequence may be ranged over more than once. The forest must not be
// modified while the sequence is being iterated.
func (f *Forest[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range f.parent {
			if !yield(e) {
				return
			}
		}
	}
}

// Hash returns a fingerprint of the current partition, keyed by root. Find
// does not change it.
func (f *Forest[T]) Hash() deephash.Sum {
	return deephash.Hash(&f.components)
}
