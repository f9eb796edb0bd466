package parray

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"unsafe"
)

// Seq is a persistent indexed sequence of elements of type T.
//
// A sequence created by
//
//	Seq[int]{}
//
// is a valid object and behaves like an empty sequence with default
// configuration. Every mutating operation returns a new sequence sharing
// all unchanged subtrees with its receiver; the receiver itself is never
// observably changed. The *Mut variants additionally re-use uniquely owned
// nodes in place, which has the same observable semantics but avoids
// allocations for single-handle workloads.
//
// Methods that take or return positions use zero-based element indexes.
type Seq[T any] struct {
	root   *node[T]
	length int
	cfg    Config
}

// New creates an empty sequence with default configuration.
func New[T any]() Seq[T] {
	return Seq[T]{}
}

// NewWith creates an empty sequence with validated configuration.
func NewWith[T any](cfg Config) (Seq[T], error) {
	if err := cfg.validate(); err != nil {
		return Seq[T]{}, err
	}
	return Seq[T]{cfg: cfg.normalized()}, nil
}

// FromSlice creates a sequence containing the elements of xs in order,
// with default configuration. The elements are copied; later changes to xs
// do not affect the sequence.
func FromSlice[T any](xs []T) Seq[T] {
	seq, err := FromSliceWith(Config{}, xs)
	assert(err == nil, "default configuration must validate")
	return seq
}

// FromSliceWith creates a sequence containing the elements of xs in
// order, with validated configuration. The tree is built bottom-up from
// runs of the configured leaf cap, so the result is balanced from the
// start.
func FromSliceWith[T any](cfg Config, xs []T) (Seq[T], error) {
	seq, err := NewWith[T](cfg)
	if err != nil {
		return Seq[T]{}, err
	}
	if len(xs) == 0 {
		return seq, nil
	}
	runCap := seq.leafCap()
	leaves := make([]*node[T], 0, (len(xs)+runCap-1)/runCap)
	sizes := make([]int, 0, len(leaves))
	for start := 0; start < len(xs); start += runCap {
		end := min(start+runCap, len(xs))
		leaves = append(leaves, newLeaf(append([]T(nil), xs[start:end]...)))
		sizes = append(sizes, end-start)
	}
	seq.root = buildBottomUp(leaves, sizes)
	seq.length = len(xs)
	return seq, nil
}

// --- Configuration accessors -----------------------------------------------

// The zero value of Seq carries a zero Config; these accessors resolve the
// defaults lazily so that Seq[T]{} stays a valid empty sequence.

func (s Seq[T]) shared() bool {
	return s.cfg.Ownership == Shared
}

func (s Seq[T]) leafCap() int {
	if s.cfg.LeafCap == 0 {
		return DefaultLeafCap
	}
	return s.cfg.LeafCap
}

func (s Seq[T]) autoRebalance() bool {
	return !s.cfg.DisableAutoRebalance
}

// Config returns a copy of the effective sequence configuration.
func (s Seq[T]) Config() Config {
	return s.cfg.normalized()
}

// --- Read access -------------------------------------------------------------

// Len returns the number of elements in the sequence.
func (s Seq[T]) Len() int {
	return s.length
}

// IsEmpty reports whether the sequence has no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.length == 0
}

// Get returns the element at index i, or an out-of-bounds error for
// i ≥ Len().
func (s Seq[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.length {
		var zero T
		return zero, indexError(i, s.length)
	}
	leaf, off := s.locate(s.root, i)
	return leaf.items[off], nil
}

// Slice collects all elements into a fresh slice in index order.
func (s Seq[T]) Slice() []T {
	out := make([]T, 0, s.length)
	s.eachLeafRun(func(items []T) bool {
		out = append(out, items...)
		return true
	})
	return out
}

// eachLeafRun visits the element runs of all leaves in index order.
// Iteration stops when the callback returns false.
func (s Seq[T]) eachLeafRun(f func(items []T) bool) {
	if s.root == nil {
		return
	}
	var stack []*node[T]
	n := s.root
	for {
		if n.isLeaf() {
			if !f(n.items) {
				return
			}
			if len(stack) == 0 {
				return
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, n.right)
		n = n.left
	}
}

// Footprint returns an approximation of the bytes owned by this sequence,
// counting element storage plus node overhead. Subtrees shared with other
// versions are attributed fully to every version referencing them.
func (s Seq[T]) Footprint() int {
	var x T
	elemSize := int(unsafe.Sizeof(x))
	nodeSize := int(unsafe.Sizeof(node[T]{}))
	leaves := (s.length + s.leafCap() - 1) / s.leafCap()
	if leaves == 0 {
		leaves = 1
	}
	// leaves-1 branches for a fully paired-up tree
	return int(unsafe.Sizeof(s)) + (2*leaves-1)*nodeSize + s.length*elemSize
}

// height returns the total height of the sequence's tree.
func (s Seq[T]) height() int {
	if s.root == nil {
		return 1
	}
	return s.root.height()
}

// --- Handle sharing ----------------------------------------------------------

// Clone returns a second handle to the same sequence value. Cloning is
// O(1); under the Shared discipline the clone may be passed to another
// goroutine and both handles used independently.
func (s Seq[T]) Clone() Seq[T] {
	if s.root != nil {
		retain(s.root, s.shared())
	}
	return s
}

// --- Mutating operations (persistent) ---------------------------------------

// Set returns a new sequence with the element at index i replaced by x,
// or an out-of-bounds error for i ≥ Len(). The receiver is unchanged.
func (s Seq[T]) Set(i int, x T) (Seq[T], error) {
	if i < 0 || i >= s.length {
		return Seq[T]{cfg: s.cfg}, indexError(i, s.length)
	}
	return s.withRoot(s.setNode(s.root, i, x), s.length), nil
}

// Insert returns a new sequence of length Len()+1 with x inserted before
// index i, or an out-of-bounds error for i > Len(). Inserting at Len()
// appends.
func (s Seq[T]) Insert(i int, x T) (Seq[T], error) {
	if i < 0 || i > s.length {
		return Seq[T]{cfg: s.cfg}, indexError(i, s.length)
	}
	root := s.insertNode(s.rootOrEmpty(), i, x)
	if s.autoRebalance() {
		root = s.rebalanced(root)
	}
	return s.withRoot(root, s.length+1), nil
}

// Delete returns a new sequence of length Len()-1 without the element at
// index i, or an out-of-bounds error for i ≥ Len().
func (s Seq[T]) Delete(i int) (Seq[T], error) {
	if i < 0 || i >= s.length {
		return Seq[T]{cfg: s.cfg}, indexError(i, s.length)
	}
	root := s.deleteNode(s.root, i)
	if s.autoRebalance() {
		root = s.rebalanced(root)
	}
	return s.withRoot(root, s.length-1), nil
}

// Prepend returns a new sequence with x inserted at the front.
func (s Seq[T]) Prepend(x T) Seq[T] {
	seq, err := s.Insert(0, x)
	assert(err == nil, "prepend index cannot be out of bounds")
	return seq
}

// Push returns a new sequence with x appended at the back.
func (s Seq[T]) Push(x T) Seq[T] {
	seq, err := s.Insert(s.length, x)
	assert(err == nil, "push index cannot be out of bounds")
	return seq
}

// Split splits the sequence right before index i and returns both halves:
// the left one with the first i elements, the right one with the rest.
// It returns an out-of-bounds error for i > Len(); the receiver stays
// usable in every case.
func (s Seq[T]) Split(i int) (Seq[T], Seq[T], error) {
	if i < 0 || i > s.length {
		return Seq[T]{cfg: s.cfg}, Seq[T]{cfg: s.cfg}, indexError(i, s.length)
	}
	if i == 0 {
		return s.withRoot(nil, 0), s.Clone(), nil
	}
	if i == s.length {
		return s.Clone(), s.withRoot(nil, 0), nil
	}
	left, right := s.splitNode(s.root, i)
	return s.withRoot(left, i), s.withRoot(right, s.length-i), nil
}

// Concat concatenates another sequence onto this one and returns the
// combined sequence. Both inputs stay valid. The sequences must use the
// same ownership discipline and leaf cap, since the result shares leaves
// with both inputs; the result carries the receiver's configuration.
func (s Seq[T]) Concat(other Seq[T]) (Seq[T], error) {
	if s.cfg.Ownership != other.cfg.Ownership {
		return Seq[T]{cfg: s.cfg}, fmt.Errorf("%w: cannot concat %s and %s sequences",
			ErrIncompatibleConfig, s.cfg.Ownership, other.cfg.Ownership)
	}
	if s.leafCap() != other.leafCap() {
		return Seq[T]{cfg: s.cfg}, fmt.Errorf("%w: cannot concat leaf caps %d and %d",
			ErrIncompatibleConfig, s.leafCap(), other.leafCap())
	}
	if s.length == 0 {
		out := other.Clone()
		out.cfg = s.cfg
		return out, nil
	}
	if other.length == 0 {
		return s.Clone(), nil
	}
	root := newBranchWeight(s.length, retain(s.root, s.shared()), retain(other.root, s.shared()))
	if s.autoRebalance() {
		root = s.rebalanced(root)
	}
	return s.withRoot(root, s.length+other.length), nil
}

// Rebalance rebuilds the tree from its leaves into minimal height and
// returns the rebalanced sequence. Intended for callers that disable
// auto-rebalance on hot paths.
func (s Seq[T]) Rebalance() Seq[T] {
	if s.root == nil || s.root.isLeaf() {
		return s.Clone()
	}
	return s.withRoot(s.rebuild(s.root), s.length)
}

// --- Internal helpers --------------------------------------------------------

// withRoot derives a handle with the same configuration around an owned
// root.
func (s Seq[T]) withRoot(root *node[T], length int) Seq[T] {
	return Seq[T]{root: root, length: length, cfg: s.cfg}
}

// rootOrEmpty materializes the canonical empty-leaf root for zero-value
// handles. The fresh leaf is owned by the operation that asked for it.
func (s Seq[T]) rootOrEmpty() *node[T] {
	if s.root != nil {
		return s.root
	}
	return newLeaf[T](nil)
}

func indexError(i, length int) error {
	return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfBounds, i, length)
}
