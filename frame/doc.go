// Package frame provides the strided pixel storage consumed by the motion
// compensation layer.
//
// A Plane owns a padded allocation of 8-bit or 16-bit cells. Slice is a
// read-only anchor into a plane that may reach into the padding (the
// interpolation filters read three samples before and four after the block).
// Region is a mutable rectangle that is always fully inside the allocation.
// Strides are expressed in cells; AsmStride converts them to the byte strides
// used by raw-pointer kernels.
package frame
