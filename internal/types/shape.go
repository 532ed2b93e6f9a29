// Package types defines the descriptor value types of the Lumen resource
// core: tensor shapes and layouts, element data types, image formats and
// memory alignment constraints. All of them are immutable after construction.
package types

import "fmt"

// MaxRank is the maximum tensor rank the core supports. It bounds the
// fixed-size stride arrays in the requirements structures, which are part of
// the stable binary contract.
const MaxRank = 15

// TensorShape is an ordered sequence of positive extents with an optional
// per-axis layout. Extents are immutable; the constructor and all accessors
// copy defensively.
type TensorShape struct {
	extents []int64
	layout  TensorLayout
}

// MakeTensorShape builds a shape from extents and an optional layout.
// Every extent must be positive, rank must be in [1, MaxRank], and when a
// layout is present its rank must match the number of extents.
func MakeTensorShape(extents []int64, layout TensorLayout) (TensorShape, error) {
	if len(extents) == 0 {
		return TensorShape{}, fmt.Errorf("%w: shape must have at least one extent", ErrInvalidArgument)
	}
	if len(extents) > MaxRank {
		return TensorShape{}, fmt.Errorf("%w: rank %d exceeds maximum %d", ErrInvalidArgument, len(extents), MaxRank)
	}
	if !layout.IsNone() && layout.Rank() != len(extents) {
		return TensorShape{}, fmt.Errorf("%w: layout %s has rank %d, shape has rank %d",
			ErrInvalidArgument, layout, layout.Rank(), len(extents))
	}
	for i, e := range extents {
		if e <= 0 {
			return TensorShape{}, fmt.Errorf("%w: extent at index %d is %d (must be > 0)", ErrInvalidArgument, i, e)
		}
	}
	s := TensorShape{
		extents: make([]int64, len(extents)),
		layout:  layout,
	}
	copy(s.extents, extents)
	return s, nil
}

// Rank returns the number of axes.
func (s TensorShape) Rank() int {
	return len(s.extents)
}

// Extent returns the extent of axis i.
func (s TensorShape) Extent(i int) int64 {
	return s.extents[i]
}

// Extents returns a copy of the extents.
func (s TensorShape) Extents() []int64 {
	out := make([]int64, len(s.extents))
	copy(out, s.extents)
	return out
}

// Layout returns the axis layout, LayoutNone if untagged.
func (s TensorShape) Layout() TensorLayout {
	return s.layout
}

// NumElements returns the total number of elements.
func (s TensorShape) NumElements() int64 {
	n := int64(1)
	for _, e := range s.extents {
		n *= e
	}
	return n
}

// Equal reports whether two shapes have identical extents and layout.
func (s TensorShape) Equal(other TensorShape) bool {
	if s.layout != other.layout || len(s.extents) != len(other.extents) {
		return false
	}
	for i := range s.extents {
		if s.extents[i] != other.extents[i] {
			return false
		}
	}
	return true
}

func (s TensorShape) String() string {
	if s.layout.IsNone() {
		return fmt.Sprintf("%v", s.extents)
	}
	return fmt.Sprintf("%v(%s)", s.extents, s.layout)
}
