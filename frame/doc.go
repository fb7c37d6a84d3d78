// Package frame provides the brightness buffer consumed by the trace
// extraction pipeline.
//
// A [Buffer] is a row-major W x H grid of 8-bit brightness values, one per
// pixel, as handed over by an external image-enhancement stage (grayscale
// conversion, thresholding and cleanup happen before this package). The
// pipeline treats the buffer as read-only; [Buffer.Set] exists for tests
// and producers.
//
// [FromImage] and [FromGray] bridge from the standard image package for
// callers that load captures from files. They only convert to luma; they do
// not denoise or binarize.
package frame
