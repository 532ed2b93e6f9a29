package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumen-cv/lumen/internal/core"
	"github.com/lumen-cv/lumen/internal/types"
)

var dtypeNames = map[string]types.DataType{
	"u8":    types.U8,
	"u8x2":  types.U8x2,
	"u8x3":  types.U8x3,
	"u8x4":  types.U8x4,
	"u16":   types.U16,
	"s8":    types.S8,
	"s16":   types.S16,
	"s32":   types.S32,
	"s64":   types.S64,
	"f32":   types.F32,
	"f32x3": types.F32x3,
	"f32x4": types.F32x4,
	"f64":   types.F64,
}

var formatNames = map[string]types.ImageFormat{
	"gray8":   types.GRAY8,
	"gray16":  types.GRAY16,
	"rgb8":    types.RGB8,
	"rgba8":   types.RGBA8,
	"rgbf32":  types.RGBf32,
	"nv12":    types.NV12,
	"yuv420p": types.YUV420p,
}

// calcCmd computes the buffer layout for a tensor description.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute buffer requirements for a tensor",
	Long: `Compute the memory layout (strides, alignment, total size) a tensor
with the given shape, layout and element type would require.

Examples:
  lumen calc --shape 5,48,32 --dtype u8
  lumen calc --shape 1,1080,1920,3 --layout NHWC --dtype u8 --row-align 32`,
	SilenceUsage: true,
	RunE:         runCalc,
}

var calcImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Compute buffer requirements for an image",
	Long: `Compute the per-plane memory layout an image with the given size and
pixel format would require.

Examples:
  lumen calc image --width 1920 --height 1080 --format nv12
  lumen calc image --width 640 --height 480 --format rgb8 --row-align 32`,
	SilenceUsage: true,
	RunE:         runCalcImage,
}

func parseShape(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	extents := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad extent %q: %w", p, err)
		}
		extents = append(extents, v)
	}
	return extents, nil
}

func alignmentFromFlags(cmd *cobra.Command) (types.MemAlignment, error) {
	base, _ := cmd.Flags().GetInt64("base-align")
	row, _ := cmd.Flags().GetInt64("row-align")
	return types.MakeMemAlignment(base, row)
}

func runCalc(cmd *cobra.Command, args []string) error {
	shapeStr, _ := cmd.Flags().GetString("shape")
	layoutStr, _ := cmd.Flags().GetString("layout")
	dtypeStr, _ := cmd.Flags().GetString("dtype")

	extents, err := parseShape(shapeStr)
	if err != nil {
		return err
	}
	layout, err := types.MakeTensorLayout(layoutStr)
	if err != nil {
		return err
	}
	shape, err := types.MakeTensorShape(extents, layout)
	if err != nil {
		return err
	}
	dtype, ok := dtypeNames[strings.ToLower(dtypeStr)]
	if !ok {
		return fmt.Errorf("unknown dtype %q", dtypeStr)
	}
	align, err := alignmentFromFlags(cmd)
	if err != nil {
		return err
	}

	slog.Debug("computing tensor requirements",
		"shape", shape.String(), "dtype", dtype.String())

	reqs, err := core.CalcTensorRequirements(shape, dtype, align)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Shape:       %s\n", reqs.Shape)
	fmt.Fprintf(out, "DType:       %s\n", reqs.DType)
	fmt.Fprintf(out, "Base align:  %d\n", reqs.BaseAlign)
	fmt.Fprintf(out, "Row align:   %d\n", reqs.RowAlign)
	fmt.Fprintf(out, "Strides:     %v\n", reqs.Strides[:reqs.Rank])
	fmt.Fprintf(out, "Total bytes: %d\n", reqs.TotalBytes)
	return nil
}

func runCalcImage(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt64("width")
	height, _ := cmd.Flags().GetInt64("height")
	formatStr, _ := cmd.Flags().GetString("format")

	format, ok := formatNames[strings.ToLower(formatStr)]
	if !ok {
		return fmt.Errorf("unknown format %q", formatStr)
	}
	align, err := alignmentFromFlags(cmd)
	if err != nil {
		return err
	}

	slog.Debug("computing image requirements",
		"width", width, "height", height, "format", formatStr)

	reqs, err := core.CalcImageRequirements(width, height, format, align)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Size:        %dx%d\n", width, height)
	fmt.Fprintf(out, "Planes:      %d\n", format.NumPlanes())
	for p := 0; p < format.NumPlanes(); p++ {
		pl := reqs.Planes[p]
		fmt.Fprintf(out, "  plane %d:   offset=%d rowStride=%d extent=%dx%d\n",
			p, pl.Offset, pl.RowStride, pl.Width, pl.Height)
	}
	fmt.Fprintf(out, "Base align:  %d\n", reqs.BaseAlign)
	fmt.Fprintf(out, "Row align:   %d\n", reqs.RowAlign)
	fmt.Fprintf(out, "Total bytes: %d\n", reqs.TotalBytes)
	return nil
}

func init() {
	calcCmd.Flags().String("shape", "", "comma-separated extents, e.g. 5,48,32 (required)")
	calcCmd.Flags().String("layout", "", "axis labels, e.g. NHWC (optional)")
	calcCmd.Flags().String("dtype", "u8", "element type, e.g. u8, f32, u8x3")
	calcCmd.Flags().Int64("base-align", 0, "base address alignment in bytes (0 = default)")
	calcCmd.Flags().Int64("row-align", 0, "row stride alignment in bytes (0 = default)")
	_ = calcCmd.MarkFlagRequired("shape")

	calcImageCmd.Flags().Int64("width", 0, "image width in pixels (required)")
	calcImageCmd.Flags().Int64("height", 0, "image height in pixels (required)")
	calcImageCmd.Flags().String("format", "rgb8", "pixel format, e.g. rgb8, nv12, yuv420p")
	calcImageCmd.Flags().Int64("base-align", 0, "base address alignment in bytes (0 = default)")
	calcImageCmd.Flags().Int64("row-align", 0, "row stride alignment in bytes (0 = default)")
	_ = calcImageCmd.MarkFlagRequired("width")
	_ = calcImageCmd.MarkFlagRequired("height")

	calcCmd.AddCommand(calcImageCmd)
	rootCmd.AddCommand(calcCmd)
}
