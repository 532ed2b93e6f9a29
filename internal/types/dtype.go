package types

import "fmt"

// ComponentKind classifies the scalar component of a DataType.
type ComponentKind int

// Supported component kinds.
const (
	Unsigned ComponentKind = iota
	Signed
	Float
)

func (k ComponentKind) String() string {
	switch k {
	case Unsigned:
		return "u"
	case Signed:
		return "s"
	case Float:
		return "f"
	default:
		return "?"
	}
}

// DataType describes one tensor element or one image pixel sample: a scalar
// component kind, the component width in bits and the number of packed
// channels. It determines the element size used in all stride math.
type DataType struct {
	kind     ComponentKind
	bits     int32
	channels int32
}

// Predefined data types.
var (
	U8    = DataType{Unsigned, 8, 1}
	U8x2  = DataType{Unsigned, 8, 2}
	U8x3  = DataType{Unsigned, 8, 3}
	U8x4  = DataType{Unsigned, 8, 4}
	U16   = DataType{Unsigned, 16, 1}
	S8    = DataType{Signed, 8, 1}
	S16   = DataType{Signed, 16, 1}
	S32   = DataType{Signed, 32, 1}
	S64   = DataType{Signed, 64, 1}
	F32   = DataType{Float, 32, 1}
	F32x3 = DataType{Float, 32, 3}
	F32x4 = DataType{Float, 32, 4}
	F64   = DataType{Float, 64, 1}
)

// MakeDataType builds a DataType, validating that the component width is a
// supported multiple of 8 and the channel count is in [1, 4].
func MakeDataType(kind ComponentKind, bits, channels int32) (DataType, error) {
	switch bits {
	case 8, 16, 32, 64:
	default:
		return DataType{}, fmt.Errorf("%w: unsupported component width %d bits", ErrInvalidArgument, bits)
	}
	if channels < 1 || channels > 4 {
		return DataType{}, fmt.Errorf("%w: channel count %d out of range [1,4]", ErrInvalidArgument, channels)
	}
	if kind == Float && bits < 32 {
		return DataType{}, fmt.Errorf("%w: float components must be at least 32 bits, got %d", ErrInvalidArgument, bits)
	}
	return DataType{kind: kind, bits: bits, channels: channels}, nil
}

// Kind returns the scalar component kind.
func (dt DataType) Kind() ComponentKind {
	return dt.kind
}

// Bits returns the component width in bits.
func (dt DataType) Bits() int32 {
	return dt.bits
}

// Channels returns the number of packed channels.
func (dt DataType) Channels() int32 {
	return dt.channels
}

// Size returns the byte size of one element, all channels included.
func (dt DataType) Size() int64 {
	return int64(dt.bits/8) * int64(dt.channels)
}

// IsZero reports whether the data type is the zero value (no valid type).
func (dt DataType) IsZero() bool {
	return dt.bits == 0
}

func (dt DataType) String() string {
	if dt.IsZero() {
		return "none"
	}
	if dt.channels == 1 {
		return fmt.Sprintf("%s%d", dt.kind, dt.bits)
	}
	return fmt.Sprintf("%s%dx%d", dt.kind, dt.bits, dt.channels)
}
