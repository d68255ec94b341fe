package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// withParamProperties adds the optional detection parameter overrides to props.
func withParamProperties(props map[string]interface{}) map[string]interface{} {
	params := map[string]string{
		"max_red":           "Largest red channel value counted as target color (0-255). Default 80",
		"min_green":         "Green channel must exceed this value (0-255). Default 100",
		"max_blue":          "Largest blue channel value counted as target color (0-255). Default 80",
		"radius":            "Neighborhood radius for density accumulation. Default 5",
		"density_threshold": "Density must exceed this value to seed a region. Default 40",
		"box_size":          "Side length of every reported region. Default 14",
	}
	for name, desc := range params {
		props[name] = map[string]interface{}{
			"type":        "integer",
			"description": desc,
		}
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "blob_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "blob_detect",
			Description: "Detect dense patches of the target green color and return one fixed-size box per patch, in scan order, with density statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withParamProperties(map[string]interface{}{
					"path": pathProperty(),
					"include_mask": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the detection mask as base64 PNG. Default false",
						"default":     false,
					},
					"mask_scale": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor for the returned mask. Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "blob_render",
			Description: "Render the original image and the detection mask side by side with detected regions outlined, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withParamProperties(map[string]interface{}{
					"path": pathProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw each region's index next to its outline. Default false",
						"default":     false,
					},
					"box_color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color as #RRGGBB. Default #FF0000",
						"default":     "#FF0000",
					},
					"gap": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels between the two panels. Default 10",
						"default":     10,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "blob_classify_color",
			Description: "Report whether a pixel or a hex color counts as the target color, with its hex, RGB and HSL values. Give either hex, or path with x and y.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withParamProperties(map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RRGGBB, used instead of path/x/y",
					},
				}),
			},
		},
		{
			Name:        "blob_crop_region",
			Description: "Run detection and return one detected region, cropped from the original image, with its mean color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withParamProperties(map[string]interface{}{
					"path": pathProperty(),
					"index": map[string]interface{}{
						"type":        "integer",
						"description": "Index of the region in blob_detect's result (0-based)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path", "index"},
			},
		},
		{
			Name:        "blob_density_at",
			Description: "Report the accumulated target-color density at a pixel and whether it exceeds the region threshold.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withParamProperties(map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
