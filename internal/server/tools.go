package server

import "github.com/ironsheep/ocr-markdown-mcp/internal/ocr"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "ocr_image",
			Description: "Run OCR on an image file and write the recognized text as a Markdown document " +
				"next to the image, together with a YAML snapshot of the result tree. " +
				"Returns the paths of both output files.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Recognition language code (e.g., \"ch\", \"en\", \"japan\", \"korean\")",
						"default":     ocr.DefaultLanguage,
					},
				},
				"required": []string{"image_path", "language"},
			},
		},
	}
}
