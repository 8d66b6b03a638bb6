// Package mc provides sub-pixel motion compensation with run-time selection
// of accelerated routines.
//
// Three operations cover inter prediction: [Put] interpolates a block
// straight into a destination region, [Prepare] interpolates into a
// high-precision intermediate buffer, and [Average] combines two such
// buffers into the final bi-predicted block.
//
// Every call looks up a routine for the capability [Level], the
// (horizontal, vertical) [FilterMode] pair and the pixel type. Levels,
// mode pairs or pixel types without an accelerated routine use the portable
// implementation; results are byte-identical either way.
//
// Arguments are checked the same way on every path. A destination may share
// a plane with its source as long as no written sample is also read.
// Invalid calls panic at every level.
//
// Builds with the mcverify tag run every call through [Verify], which checks
// each result against the portable implementation and panics with a
// [*MismatchError] on divergence. [New] with [WithVerification] does the
// same for a single dispatcher. The purego tag disables all accelerated
// routines.
package mc
