// Package savgol builds multi-dimensional Savitzky-Golay convolution kernels
// and applies them to grayscale images.
//
// 🚀 What is a Savitzky-Golay kernel?
//
//	Fit a bivariate polynomial of degrees (horDegree, vertDegree) to the
//	samples of a W×H window by least squares and read the fit back at one
//	"origin" sample. The fitted value is linear in the samples, so it is a
//	weighted sum: those W·H weights are the kernel. Convolving an image with
//	it smooths noise while preserving any polynomial within the degree pair.
//
// ✨ Key features:
//   - one Givens QR factorization per (window, degrees), reused for every
//     origin through RecalcForOrigin
//   - O(numTerms·numDataPoints) rotation storage instead of an explicit Q
//   - kernel weights in a 16-byte aligned float32 buffer
//   - Filter: border-aware smoothing of *image.Gray, one recalculation per
//     distinct origin
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/savgol/savgol"
//
//	k, err := savgol.NewKernel(image.Pt(5, 5), image.Pt(2, 2), 2, 2)
//	if err != nil {
//	  return err
//	}
//	weights := k.Data() // row-major, len 25
//
//	k.RecalcForOrigin(image.Pt(0, 2)) // left border column
//
//	smooth, err := savgol.Filter(gray, image.Pt(7, 7), 2, 2)
//
// Performance:
//
//   - NewKernel:       O(numTerms²·numDataPoints)
//   - RecalcForOrigin: O(numTerms·numDataPoints), no allocation
//
// Errors are sentinels matching ErrInvalidArgument; a zero pivot at solve
// time is an internal invariant violation and panics.
package savgol
