// Package main implements the savgol CLI: print Savitzky-Golay kernels and
// smooth grayscale images with them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
