// Package server implements the MCP (Model Context Protocol) server for
// color-blob detection.
//
// The server exposes the detector in package blob as a set of tools so that
// MCP clients can run detection on image files, inspect the density field,
// and look at rendered results.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - blob_load: Load image and get metadata
//   - blob_detect: Detect regions, with density statistics and an optional mask
//   - blob_render: Original and mask side by side with regions outlined
//   - blob_classify_color: Classify a pixel or hex color against the target color
//   - blob_crop_region: Crop one detected region from the original
//   - blob_density_at: Accumulated density at one pixel
//
// Every tool that runs detection accepts optional overrides for the
// detection parameters (max_red, min_green, max_blue, radius,
// density_threshold, box_size). Unset parameters keep their defaults.
//
// # Image Caching
//
// Decoded frames are cached by path for the lifetime of the process, so
// repeated tool calls on one file decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Diagnostics go to the logger passed to New, never to stdout.
package server
