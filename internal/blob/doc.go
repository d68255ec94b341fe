// Package blob implements per-frame color-blob detection.
//
// A detection pass turns one Frame into a binary mask Frame and an ordered list
// of fixed-size Regions. The pass runs in three stages that always execute in
// the same order and never feed back into each other:
//
//  1. Classification: every pixel is marked foreground (opaque green) when its
//     channels fall inside the target thresholds, background (opaque black)
//     otherwise.
//  2. Density accumulation: every foreground pixel that is far enough from the
//     frame border scans a square window around itself and increments the
//     density of every foreground pixel inside that window.
//  3. Region extraction: the density grid is scanned row-major. Each cell above
//     the density threshold is painted green in the output mask and proposes a
//     box centered on itself; the box is kept only if it does not overlap a box
//     that was already kept.
//
// # Coordinate System
//
// Frames are row-major with (0,0) at the top-left corner. X grows to the right,
// Y grows downward. Region coordinates may fall partly or entirely outside the
// frame when the triggering pixel is near an edge; they are never clamped.
//
// # Pixel Format
//
// Pixels are packed 32-bit values in 0xAARRGGBB order. The alpha channel is
// carried through but never inspected by the classifier.
//
// # Thread Safety
//
// A Detector only holds its Params. Detect allocates every buffer it writes to
// and keeps no reference to the input frame, so one Detector may be shared by
// any number of goroutines.
//
// # Error Handling
//
// Detect returns an error wrapping ErrInvalidInput when the frame is empty or
// its pixel buffer does not match its declared dimensions. It never returns a
// partial result.
package blob
