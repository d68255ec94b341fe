package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "blob_load", "blob_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warning("server", "tool failed", map[string]interface{}{
			"tool":  params.Name,
			"error": err.Error(),
		})
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case "blob_load":
		return s.handleBlobLoad(args)
	case "blob_detect":
		return s.handleBlobDetect(args)
	case "blob_render":
		return s.handleBlobRender(args)
	case "blob_classify_color":
		return s.handleBlobClassifyColor(args)
	case "blob_crop_region":
		return s.handleBlobCropRegion(args)
	case "blob_density_at":
		return s.handleBlobDensityAt(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// paramOverrides carries optional detection parameters. Unset fields keep
// the server's defaults.
type paramOverrides struct {
	MaxRed           *int `json:"max_red"`
	MinGreen         *int `json:"min_green"`
	MaxBlue          *int `json:"max_blue"`
	Radius           *int `json:"radius"`
	DensityThreshold *int `json:"density_threshold"`
	BoxSize          *int `json:"box_size"`
}

func (o paramOverrides) empty() bool {
	return o.MaxRed == nil && o.MinGreen == nil && o.MaxBlue == nil &&
		o.Radius == nil && o.DensityThreshold == nil && o.BoxSize == nil
}

// detectorFor returns the default detector, or a new one when any parameter
// is overridden.
func (s *Server) detectorFor(o paramOverrides) (*blob.Detector, error) {
	if o.empty() {
		return s.detector, nil
	}

	p := s.detector.Params()
	channels := []struct {
		name string
		v    *int
		dst  *uint8
	}{
		{"max_red", o.MaxRed, &p.MaxRed},
		{"min_green", o.MinGreen, &p.MinGreen},
		{"max_blue", o.MaxBlue, &p.MaxBlue},
	}
	for _, c := range channels {
		if c.v == nil {
			continue
		}
		if *c.v < 0 || *c.v > 255 {
			return nil, fmt.Errorf("%w: %s must be 0-255, got %d", blob.ErrInvalidInput, c.name, *c.v)
		}
		*c.dst = uint8(*c.v)
	}
	if o.Radius != nil {
		p.Radius = *o.Radius
	}
	if o.DensityThreshold != nil {
		p.DensityThreshold = *o.DensityThreshold
	}
	if o.BoxSize != nil {
		p.BoxSize = *o.BoxSize
	}
	return blob.New(p)
}

// detect loads path and runs detection with the requested parameters.
func (s *Server) detect(path string, o paramOverrides) (blob.Frame, *blob.Detector, *blob.Result, error) {
	det, err := s.detectorFor(o)
	if err != nil {
		return blob.Frame{}, nil, nil, err
	}
	f, err := s.cache.Load(path)
	if err != nil {
		return blob.Frame{}, nil, nil, err
	}
	res, err := det.Detect(f)
	if err != nil {
		return blob.Frame{}, nil, nil, err
	}
	return f, det, res, nil
}

// === Image Information ===

type blobLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleBlobLoad(args json.RawMessage) (interface{}, error) {
	var a blobLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Detection ===

type blobDetectArgs struct {
	Path        string  `json:"path"`
	IncludeMask bool    `json:"include_mask"`
	MaskScale   float64 `json:"mask_scale"`
	paramOverrides
}

// RegionInfo describes one detected region.
type RegionInfo struct {
	Index int `json:"index"`
	blob.Region
	CenterX   int    `json:"center_x"`
	CenterY   int    `json:"center_y"`
	MeanColor string `json:"mean_color,omitempty"`
}

// DetectResult is returned by blob_detect.
type DetectResult struct {
	Path    string                `json:"path"`
	Width   int                   `json:"width"`
	Height  int                   `json:"height"`
	Params  blob.Params           `json:"params"`
	Count   int                   `json:"count"`
	Regions []RegionInfo          `json:"regions"`
	Stats   blob.Stats            `json:"stats"`
	Mask    *imaging.EncodedImage `json:"mask,omitempty"`
}

func (s *Server) handleBlobDetect(args json.RawMessage) (interface{}, error) {
	var a blobDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaskScale == 0 {
		a.MaskScale = 1.0
	}

	f, det, res, err := s.detect(a.Path, a.paramOverrides)
	if err != nil {
		return nil, err
	}

	out := &DetectResult{
		Path:    a.Path,
		Width:   f.Width,
		Height:  f.Height,
		Params:  det.Params(),
		Count:   len(res.Regions),
		Regions: make([]RegionInfo, 0, len(res.Regions)),
		Stats:   det.Summarize(res),
	}
	for i, r := range res.Regions {
		c := r.Center()
		info := RegionInfo{Index: i, Region: r, CenterX: c.X, CenterY: c.Y}
		if rc, err := imaging.RegionColor(f, r, det.Params()); err == nil {
			info.MeanColor = rc.Hex
		}
		out.Regions = append(out.Regions, info)
	}

	if a.IncludeMask {
		enc, err := imaging.EncodePNG(imaging.FrameToImage(res.Mask), a.MaskScale)
		if err != nil {
			return nil, err
		}
		out.Mask = enc
	}

	s.log.Info("server", "detection complete", map[string]interface{}{
		"path":    a.Path,
		"regions": out.Count,
	})
	return out, nil
}

type blobRenderArgs struct {
	Path     string  `json:"path"`
	Scale    float64 `json:"scale"`
	Labels   bool    `json:"labels"`
	BoxColor string  `json:"box_color"`
	Gap      *int    `json:"gap"`
	paramOverrides
}

// RenderResult is returned by blob_render.
type RenderResult struct {
	imaging.EncodedImage
	Count int `json:"count"`
}

func (s *Server) handleBlobRender(args json.RawMessage) (interface{}, error) {
	var a blobRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	f, _, res, err := s.detect(a.Path, a.paramOverrides)
	if err != nil {
		return nil, err
	}

	opts := imaging.DefaultOverlayOptions()
	opts.Labels = a.Labels
	if a.BoxColor != "" {
		opts.BoxColor = a.BoxColor
	}
	if a.Gap != nil {
		opts.Gap = *a.Gap
	}

	img, err := imaging.RenderOverlay(f, res.Mask, res.Regions, opts)
	if err != nil {
		return nil, err
	}
	enc, err := imaging.EncodePNG(img, a.Scale)
	if err != nil {
		return nil, err
	}
	return &RenderResult{EncodedImage: *enc, Count: len(res.Regions)}, nil
}

// === Color ===

type blobClassifyColorArgs struct {
	Path string `json:"path"`
	X    *int   `json:"x"`
	Y    *int   `json:"y"`
	Hex  string `json:"hex"`
	paramOverrides
}

func (s *Server) handleBlobClassifyColor(args json.RawMessage) (interface{}, error) {
	var a blobClassifyColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	det, err := s.detectorFor(a.paramOverrides)
	if err != nil {
		return nil, err
	}

	if a.Hex != "" {
		return imaging.ClassifyHex(a.Hex, det.Params())
	}
	if a.Path == "" || a.X == nil || a.Y == nil {
		return nil, fmt.Errorf("%w: either hex or path with x and y is required", blob.ErrInvalidInput)
	}

	f, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(f, *a.X, *a.Y, det.Params())
}

// === Regions ===

type blobCropRegionArgs struct {
	Path  string  `json:"path"`
	Index int     `json:"index"`
	Scale float64 `json:"scale"`
	paramOverrides
}

// CropRegionResult is returned by blob_crop_region.
type CropRegionResult struct {
	imaging.CropResult
	Region blob.Region          `json:"region"`
	Color  *imaging.ColorResult `json:"color"`
}

func (s *Server) handleBlobCropRegion(args json.RawMessage) (interface{}, error) {
	var a blobCropRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	f, det, res, err := s.detect(a.Path, a.paramOverrides)
	if err != nil {
		return nil, err
	}
	if a.Index < 0 || a.Index >= len(res.Regions) {
		return nil, fmt.Errorf("region index %d out of range: %d regions detected", a.Index, len(res.Regions))
	}

	region := res.Regions[a.Index]
	crop, err := imaging.CropRegion(f, region, a.Scale)
	if err != nil {
		return nil, err
	}
	rc, err := imaging.RegionColor(f, region, det.Params())
	if err != nil {
		return nil, err
	}
	return &CropRegionResult{CropResult: *crop, Region: region, Color: rc}, nil
}

type blobDensityAtArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	paramOverrides
}

// DensityResult is returned by blob_density_at.
type DensityResult struct {
	X          int  `json:"x"`
	Y          int  `json:"y"`
	Foreground bool `json:"foreground"`
	Density    int  `json:"density"`
	Threshold  int  `json:"threshold"`
	Hot        bool `json:"hot"`
}

func (s *Server) handleBlobDensityAt(args json.RawMessage) (interface{}, error) {
	var a blobDensityAtArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	f, det, res, err := s.detect(a.Path, a.paramOverrides)
	if err != nil {
		return nil, err
	}
	if a.X < 0 || a.X >= f.Width || a.Y < 0 || a.Y >= f.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside frame bounds %dx%d", a.X, a.Y, f.Width, f.Height)
	}

	density := res.Density.At(a.X, a.Y)
	threshold := det.Params().DensityThreshold
	return &DensityResult{
		X:          a.X,
		Y:          a.Y,
		Foreground: res.Classified.At(a.X, a.Y) == blob.Foreground,
		Density:    density,
		Threshold:  threshold,
		Hot:        density > threshold,
	}, nil
}
