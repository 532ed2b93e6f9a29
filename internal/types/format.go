package types

import "fmt"

// MaxPlanes is the maximum number of planes an image format may have.
const MaxPlanes = 4

// Plane describes one plane of an image format: its sample data type and its
// subsampling relative to the full image resolution, expressed as log2
// ratios (0 = full resolution, 1 = half, ...).
type Plane struct {
	DataType DataType
	SubsampX int32
	SubsampY int32
}

// ImageFormat describes the pixel layout of an image as one or more planes.
// Plane count and subsampling factors are fixed at construction.
type ImageFormat struct {
	planes []Plane
}

// Predefined image formats.
var (
	// GRAY8 is single-plane 8-bit grayscale.
	GRAY8 = mustFormat(Plane{DataType: U8})
	// GRAY16 is single-plane 16-bit grayscale.
	GRAY16 = mustFormat(Plane{DataType: U16})
	// RGB8 is single-plane interleaved 8-bit RGB.
	RGB8 = mustFormat(Plane{DataType: U8x3})
	// RGBA8 is single-plane interleaved 8-bit RGBA.
	RGBA8 = mustFormat(Plane{DataType: U8x4})
	// RGBf32 is single-plane interleaved float RGB.
	RGBf32 = mustFormat(Plane{DataType: F32x3})
	// NV12 is semi-planar YUV 4:2:0: a full-resolution Y plane followed by an
	// interleaved UV plane at half resolution in both directions.
	NV12 = mustFormat(
		Plane{DataType: U8},
		Plane{DataType: U8x2, SubsampX: 1, SubsampY: 1},
	)
	// YUV420p is planar YUV 4:2:0 with separate half-resolution U and V planes.
	YUV420p = mustFormat(
		Plane{DataType: U8},
		Plane{DataType: U8, SubsampX: 1, SubsampY: 1},
		Plane{DataType: U8, SubsampX: 1, SubsampY: 1},
	)
)

// MakeImageFormat builds a format from its planes. The first plane must be at
// full resolution.
func MakeImageFormat(planes ...Plane) (ImageFormat, error) {
	if len(planes) == 0 {
		return ImageFormat{}, fmt.Errorf("%w: image format must have at least one plane", ErrInvalidArgument)
	}
	if len(planes) > MaxPlanes {
		return ImageFormat{}, fmt.Errorf("%w: plane count %d exceeds maximum %d", ErrInvalidArgument, len(planes), MaxPlanes)
	}
	if planes[0].SubsampX != 0 || planes[0].SubsampY != 0 {
		return ImageFormat{}, fmt.Errorf("%w: first plane must be at full resolution", ErrInvalidArgument)
	}
	for i, p := range planes {
		if p.DataType.IsZero() {
			return ImageFormat{}, fmt.Errorf("%w: plane %d has no data type", ErrInvalidArgument, i)
		}
		if p.SubsampX < 0 || p.SubsampX > 2 || p.SubsampY < 0 || p.SubsampY > 2 {
			return ImageFormat{}, fmt.Errorf("%w: plane %d subsampling out of range [0,2]", ErrInvalidArgument, i)
		}
	}
	f := ImageFormat{planes: make([]Plane, len(planes))}
	copy(f.planes, planes)
	return f, nil
}

func mustFormat(planes ...Plane) ImageFormat {
	f, err := MakeImageFormat(planes...)
	if err != nil {
		panic(err)
	}
	return f
}

// NumPlanes returns the plane count.
func (f ImageFormat) NumPlanes() int {
	return len(f.planes)
}

// PlaneDataType returns the sample data type of plane p.
func (f ImageFormat) PlaneDataType(p int) DataType {
	return f.planes[p].DataType
}

// PlaneWidth returns the width of plane p for a full-resolution width w.
func (f ImageFormat) PlaneWidth(w int64, p int) int64 {
	return w >> f.planes[p].SubsampX
}

// PlaneHeight returns the height of plane p for a full-resolution height h.
func (f ImageFormat) PlaneHeight(h int64, p int) int64 {
	return h >> f.planes[p].SubsampY
}

// PlaneSubsampX returns the log2 horizontal subsampling ratio of plane p.
func (f ImageFormat) PlaneSubsampX(p int) int32 {
	return f.planes[p].SubsampX
}

// PlaneSubsampY returns the log2 vertical subsampling ratio of plane p.
func (f ImageFormat) PlaneSubsampY(p int) int32 {
	return f.planes[p].SubsampY
}

// NumChannels returns the total channel count across all planes.
func (f ImageFormat) NumChannels() int32 {
	var n int32
	for _, p := range f.planes {
		n += p.DataType.Channels()
	}
	return n
}

// IsZero reports whether the format is the zero value (no valid format).
func (f ImageFormat) IsZero() bool {
	return len(f.planes) == 0
}

// Equal reports whether two formats have identical planes.
func (f ImageFormat) Equal(other ImageFormat) bool {
	if len(f.planes) != len(other.planes) {
		return false
	}
	for i := range f.planes {
		if f.planes[i] != other.planes[i] {
			return false
		}
	}
	return true
}
