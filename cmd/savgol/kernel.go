package main

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/savgol/internal/logging"
	"github.com/katalvlaran/savgol/savgol"
)

type kernelOptions struct {
	width, height int
	hdeg, vdeg    int
	originX       int
	originY       int
	json          bool
}

// KernelOutput is the --json form of a kernel.
type KernelOutput struct {
	Width        int         `json:"width"`
	Height       int         `json:"height"`
	HorDegree    int         `json:"hor_degree"`
	VertDegree   int         `json:"vert_degree"`
	Origin       [2]int      `json:"origin"`
	Rotations    int         `json:"rotations"`
	Coefficients []float64   `json:"coefficients"`
	Weights      [][]float32 `json:"weights"`
}

func newKernelCmd(a *app) *cobra.Command {
	var opts kernelOptions
	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print a Savitzky-Golay kernel",
		Long: `Print the convolution kernel for a window, degree pair and origin.

Examples:
  # 5x5 quadratic kernel at the center
  savgol kernel --width 5 --height 5 --hdeg 2 --vdeg 2

  # Left border of a 7-point cubic row filter, as JSON
  savgol kernel --width 7 --height 1 --hdeg 3 --vdeg 0 --origin-x 0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runKernel(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 0, "window width (default from config)")
	f.IntVar(&opts.height, "height", 0, "window height (default from config)")
	f.IntVar(&opts.hdeg, "hdeg", 0, "horizontal degree (default from config)")
	f.IntVar(&opts.vdeg, "vdeg", 0, "vertical degree (default from config)")
	f.IntVar(&opts.originX, "origin-x", 0, "origin column (default: window center)")
	f.IntVar(&opts.originY, "origin-y", 0, "origin row (default: window center)")
	f.BoolVar(&opts.json, "json", false, "print JSON instead of text")

	return cmd
}

func (a *app) runKernel(cmd *cobra.Command, opts kernelOptions) error {
	flags := cmd.Flags()
	size := a.cfg.Size()
	hdeg, vdeg := a.cfg.Degree.Horizontal, a.cfg.Degree.Vertical
	if flags.Changed("width") {
		size.X = opts.width
	}
	if flags.Changed("height") {
		size.Y = opts.height
	}
	if flags.Changed("hdeg") {
		hdeg = opts.hdeg
	}
	if flags.Changed("vdeg") {
		vdeg = opts.vdeg
	}
	origin := image.Pt(size.X/2, size.Y/2)
	if flags.Changed("origin-x") {
		origin.X = opts.originX
	}
	if flags.Changed("origin-y") {
		origin.Y = opts.originY
	}

	fields := logging.KernelFields(size, origin, hdeg, vdeg)
	k, err := savgol.NewKernel(size, origin, hdeg, vdeg)
	if err != nil {
		a.log.Error("failed to build kernel", append(fields, zap.Error(err))...)

		return err
	}
	a.log.Info("kernel built", append(fields, zap.Int("rotations", k.NumRotations()))...)

	if opts.json {
		return writeKernelJSON(cmd.OutOrStdout(), k)
	}

	return writeKernelText(cmd.OutOrStdout(), k)
}

func kernelRows(k *savgol.Kernel) [][]float32 {
	data := k.Data()
	rows := make([][]float32, k.Height())
	for y := range rows {
		rows[y] = append([]float32(nil), data[y*k.Width():(y+1)*k.Width()]...)
	}

	return rows
}

func writeKernelJSON(w io.Writer, k *savgol.Kernel) error {
	out := KernelOutput{
		Width:        k.Width(),
		Height:       k.Height(),
		HorDegree:    k.HorizontalDegree(),
		VertDegree:   k.VerticalDegree(),
		Origin:       [2]int{k.Origin().X, k.Origin().Y},
		Rotations:    k.NumRotations(),
		Coefficients: k.Coefficients(),
		Weights:      kernelRows(k),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode kernel: %w", err)
	}

	return nil
}

func writeKernelText(w io.Writer, k *savgol.Kernel) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# window %dx%d, degrees (%d,%d), origin %v\n",
		k.Width(), k.Height(), k.HorizontalDegree(), k.VerticalDegree(), k.Origin())
	for _, row := range kernelRows(k) {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%10.6f", v)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
