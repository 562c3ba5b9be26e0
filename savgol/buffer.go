// SPDX-License-Identifier: MIT

package savgol

import "unsafe"

// BufferAlignment is the byte alignment of the first element of every
// AlignedBuffer: four float32 lanes, the width of the vector loads the
// convolution loop is written for.
const BufferAlignment = 16

// floatSize is unsafe.Sizeof(float32(0)).
const floatSize = 4

// AlignedBuffer is a fixed-length float32 slice whose first element sits on a
// BufferAlignment boundary.
//
// Implementation:
//   - Over-allocate by BufferAlignment/floatSize−1 elements and reslice at the
//     first aligned element. The Go heap does not move objects, so the
//     alignment holds for the buffer's lifetime.
//   - Capacity is capped at the length; appending to Floats() copies.
type AlignedBuffer struct {
	data []float32
}

// NewAlignedBuffer allocates n zeroed float32 values. n ≤ 0 yields an empty
// buffer.
func NewAlignedBuffer(n int) *AlignedBuffer {
	if n <= 0 {
		return &AlignedBuffer{}
	}
	const pad = BufferAlignment/floatSize - 1
	raw := make([]float32, n+pad)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) % BufferAlignment; rem != 0 {
		off = int((BufferAlignment - rem) / floatSize)
	}

	return &AlignedBuffer{data: raw[off : off+n : off+n]}
}

// Len returns the number of elements.
func (b *AlignedBuffer) Len() int { return len(b.data) }

// Floats returns the aligned slice itself; writes go to the buffer.
func (b *AlignedBuffer) Floats() []float32 { return b.data }

// At returns element i.
func (b *AlignedBuffer) At(i int) float32 { return b.data[i] }

// IsAligned reports whether the first element is BufferAlignment-aligned.
// An empty buffer is trivially aligned.
func (b *AlignedBuffer) IsAligned() bool {
	if len(b.data) == 0 {
		return true
	}

	return uintptr(unsafe.Pointer(&b.data[0]))%BufferAlignment == 0
}

// Clone returns an independently allocated, aligned copy.
func (b *AlignedBuffer) Clone() *AlignedBuffer {
	c := NewAlignedBuffer(len(b.data))
	copy(c.data, b.data)

	return c
}
