package types

import "fmt"

// Default alignments used when a MemAlignment component is zero. The base
// default matches common device allocation granularity; the row default keeps
// rows 4-byte aligned for copy engines.
const (
	DefaultBaseAlign int64 = 256
	DefaultRowAlign  int64 = 4
)

// MemAlignment describes the alignment constraints a buffer must satisfy:
// base-address alignment and row-stride alignment, both powers of two.
// A zero component means "use the default".
type MemAlignment struct {
	baseAlign int64
	rowAlign  int64
}

// MakeMemAlignment builds a MemAlignment, validating that non-zero components
// are powers of two.
func MakeMemAlignment(baseAlign, rowAlign int64) (MemAlignment, error) {
	if !isPow2OrZero(baseAlign) {
		return MemAlignment{}, fmt.Errorf("%w: base alignment %d is not a power of two", ErrInvalidArgument, baseAlign)
	}
	if !isPow2OrZero(rowAlign) {
		return MemAlignment{}, fmt.Errorf("%w: row alignment %d is not a power of two", ErrInvalidArgument, rowAlign)
	}
	return MemAlignment{baseAlign: baseAlign, rowAlign: rowAlign}, nil
}

// BaseAlign returns the effective base-address alignment.
func (m MemAlignment) BaseAlign() int64 {
	if m.baseAlign == 0 {
		return DefaultBaseAlign
	}
	return m.baseAlign
}

// RowAlign returns the effective row-stride alignment.
func (m MemAlignment) RowAlign() int64 {
	if m.rowAlign == 0 {
		return DefaultRowAlign
	}
	return m.rowAlign
}

func (m MemAlignment) String() string {
	return fmt.Sprintf("base=%d row=%d", m.BaseAlign(), m.RowAlign())
}

// AlignUp rounds v up to the next multiple of align. align must be a power of
// two.
func AlignUp(v, align int64) int64 {
	return (v + align - 1) &^ (align - 1)
}

func isPow2OrZero(v int64) bool {
	return v >= 0 && v&(v-1) == 0
}
