// Package imaging bridges Go images and detection frames.
//
// It loads and caches images from disk, converts them to and from the packed
// blob.Frame representation, samples and classifies colors, and renders the
// side-by-side overlay that shows the original frame next to its mask with
// every detected region outlined.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Images whose bounds do not start at the origin are shifted so that the first
// pixel becomes (0,0) in the resulting frame.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Every other function is stateless and
// allocates the images it returns.
//
// # Color Representation
//
// Colors are reported as:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// HSL conversion is done with go-colorful.
//
// # Error Handling
//
// Functions return errors for coordinates outside the frame, regions that do
// not intersect the frame, unreadable files, and encoding failures.
package imaging
