package core

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lumen-cv/lumen/internal/types"
)

// Property-based checks over the requirements calculator: determinism,
// row-stride alignment and a lower bound on the total size.

func genRowAlign() gopter.Gen {
	return gen.OneConstOf(int64(1), int64(2), int64(4), int64(8), int64(16), int64(32), int64(64))
}

// TestCalcRequirements_Deterministic verifies repeated calls with identical
// inputs yield bit-identical requirements.
func TestCalcRequirements_Deterministic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("identical inputs give bit-identical requirements", prop.ForAll(
		func(n, h, w, rowAlign int64) bool {
			shape, err := types.MakeTensorShape([]int64{n, h, w}, types.LayoutNHW)
			if err != nil {
				return false
			}
			align, err := types.MakeMemAlignment(256, rowAlign)
			if err != nil {
				return false
			}

			a, errA := CalcTensorRequirements(shape, types.U8, align)
			b, errB := CalcTensorRequirements(shape, types.U8, align)
			return errA == nil && errB == nil && reflect.DeepEqual(a, b)
		},
		gen.Int64Range(1, 16),
		gen.Int64Range(1, 64),
		gen.Int64Range(1, 64),
		genRowAlign(),
	))

	properties.TestingRun(t)
}

// TestCalcRequirements_RowAlignment verifies every computed row stride is a
// multiple of the configured row alignment.
func TestCalcRequirements_RowAlignment(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("row stride is a multiple of the row alignment", prop.ForAll(
		func(n, h, w, rowAlign int64) bool {
			shape, err := types.MakeTensorShape([]int64{n, h, w}, types.LayoutNHW)
			if err != nil {
				return false
			}
			align, err := types.MakeMemAlignment(256, rowAlign)
			if err != nil {
				return false
			}

			reqs, err := CalcTensorRequirements(shape, types.U8, align)
			if err != nil {
				return false
			}
			return reqs.Strides[1]%rowAlign == 0
		},
		gen.Int64Range(1, 16),
		gen.Int64Range(1, 64),
		gen.Int64Range(1, 64),
		genRowAlign(),
	))

	properties.TestingRun(t)
}

// TestCalcRequirements_TotalSizeBound verifies the padded total size always
// covers the packed element count.
func TestCalcRequirements_TotalSizeBound(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total size covers the packed element count", prop.ForAll(
		func(n, h, w, rowAlign int64) bool {
			shape, err := types.MakeTensorShape([]int64{n, h, w}, types.LayoutNHW)
			if err != nil {
				return false
			}
			align, err := types.MakeMemAlignment(256, rowAlign)
			if err != nil {
				return false
			}

			reqs, err := CalcTensorRequirements(shape, types.F32, align)
			if err != nil {
				return false
			}
			return reqs.TotalBytes >= shape.NumElements()*types.F32.Size()
		},
		gen.Int64Range(1, 16),
		gen.Int64Range(1, 64),
		gen.Int64Range(1, 64),
		genRowAlign(),
	))

	properties.TestingRun(t)
}
