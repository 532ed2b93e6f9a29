package types

import (
	"fmt"
	"strings"
)

// TensorLayout tags each axis of a tensor with a one-letter semantic label.
// It is an immutable value; the zero value means "no layout".
//
// Recognized labels:
//
//	N  batch (number of samples/images)
//	H  height (rows)
//	W  width (columns)
//	C  channel
//	D  depth
//	F  frame
type TensorLayout string

// Common layouts.
const (
	LayoutNone TensorLayout = ""
	LayoutW    TensorLayout = "W"
	LayoutHW   TensorLayout = "HW"
	LayoutHWC  TensorLayout = "HWC"
	LayoutCHW  TensorLayout = "CHW"
	LayoutNW   TensorLayout = "NW"
	LayoutNHW  TensorLayout = "NHW"
	LayoutNHWC TensorLayout = "NHWC"
	LayoutNCHW TensorLayout = "NCHW"
)

const layoutLabels = "NHWCDF"

// MakeTensorLayout builds a layout from a label string, validating that every
// label is recognized and appears at most once.
func MakeTensorLayout(labels string) (TensorLayout, error) {
	for i, r := range labels {
		if !strings.ContainsRune(layoutLabels, r) {
			return LayoutNone, fmt.Errorf("%w: unknown axis label %q at index %d", ErrInvalidArgument, string(r), i)
		}
		if strings.ContainsRune(labels[i+1:], r) {
			return LayoutNone, fmt.Errorf("%w: duplicate axis label %q", ErrInvalidArgument, string(r))
		}
	}
	return TensorLayout(labels), nil
}

// Rank returns the number of tagged axes.
func (l TensorLayout) Rank() int {
	return len(l)
}

// Find returns the axis index of the given label, or -1 if the layout does
// not tag it.
func (l TensorLayout) Find(label byte) int {
	return strings.IndexByte(string(l), label)
}

// HasLabel reports whether the layout tags an axis with the given label.
func (l TensorLayout) HasLabel(label byte) bool {
	return l.Find(label) >= 0
}

// IsNone reports whether the layout is empty.
func (l TensorLayout) IsNone() bool {
	return len(l) == 0
}

func (l TensorLayout) String() string {
	if l.IsNone() {
		return "none"
	}
	return string(l)
}
