package main

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/katalvlaran/savgol/savgol"
)

type filterOptions struct {
	width, height int
	hdeg, vdeg    int
}

func newFilterCmd(a *app) *cobra.Command {
	var opts filterOptions
	cmd := &cobra.Command{
		Use:   "filter <input> <output.png>",
		Short: "Smooth an image with a Savitzky-Golay kernel",
		Long: `Decode an image (PNG, JPEG, GIF, TIFF, BMP, WebP), convert it to gray,
smooth it and write the result as PNG.

The window is clamped to the image and each degree to window-1. Pixels near
the borders use the same window shifted inward, with the origin moved to the
pixel's position in it.

Examples:
  # 7x7 quadratic smoothing
  savgol filter --width 7 --height 7 scan.tiff smooth.png

  # Row-only cubic smoothing with settings from a file
  savgol --config savgol.yaml filter --height 1 --vdeg 0 page.png out.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFilter(cmd, opts, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 0, "window width (default from config)")
	f.IntVar(&opts.height, "height", 0, "window height (default from config)")
	f.IntVar(&opts.hdeg, "hdeg", 0, "horizontal degree (default from config)")
	f.IntVar(&opts.vdeg, "vdeg", 0, "vertical degree (default from config)")

	return cmd
}

func (a *app) runFilter(cmd *cobra.Command, opts filterOptions, in, out string) error {
	flags := cmd.Flags()
	window := a.cfg.Size()
	hdeg, vdeg := a.cfg.Degree.Horizontal, a.cfg.Degree.Vertical
	if flags.Changed("width") {
		window.X = opts.width
	}
	if flags.Changed("height") {
		window.Y = opts.height
	}
	if flags.Changed("hdeg") {
		hdeg = opts.hdeg
	}
	if flags.Changed("vdeg") {
		vdeg = opts.vdeg
	}

	src, format, err := decodeImage(in)
	if err != nil {
		a.log.Error("failed to decode input", zap.String("path", in), zap.Error(err))

		return err
	}
	gray := toGray(src)
	a.log.Debug("input decoded",
		zap.String("path", in),
		zap.String("format", format),
		zap.Stringer("bounds", gray.Bounds()),
	)

	start := time.Now()
	dst, err := savgol.Filter(gray, window, hdeg, vdeg)
	if err != nil {
		a.log.Error("failed to filter", zap.Stringer("window", window), zap.Error(err))

		return err
	}
	a.log.Info("image filtered",
		zap.String("input", in),
		zap.Stringer("bounds", dst.Bounds()),
		zap.Stringer("window", window),
		zap.Int("hdeg", hdeg),
		zap.Int("vdeg", vdeg),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := encodePNG(out, dst); err != nil {
		a.log.Error("failed to write output", zap.String("path", out), zap.Error(err))

		return err
	}

	return nil
}

func decodeImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return img, format, nil
}

// toGray returns img as *image.Gray, converting through the color model
// when it is not gray already.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, img, b.Min, draw.Src)

	return g
}

func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()

		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	return nil
}
