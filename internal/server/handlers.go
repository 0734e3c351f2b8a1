package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/ocr-markdown-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke.
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

type ocrImageArgs struct {
	ImagePath string `json:"image_path"`
	Language  string `json:"language"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The success response carries the two output paths as separate text
// contents:
//
//	{
//	  "content": [
//	    {"type": "text", "text": "<markdown path>"},
//	    {"type": "text", "text": "<snapshot path>"}
//	  ]
//	}
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if params.Name != "ocr_image" {
		return s.errorResponse(req.ID, -32601, fmt.Sprintf("Tool not found: %s", params.Name), "")
	}

	var args ocrImageArgs
	if err := json.Unmarshal(params.Arguments, &args); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}
	if args.ImagePath == "" {
		return s.errorResponse(req.ID, -32602, "Invalid params", "image_path is required")
	}
	if args.Language == "" {
		args.Language = ocr.DefaultLanguage
	}

	result, err := s.processor.Process(args.ImagePath, args.Language)
	if err != nil {
		return s.errorResponse(req.ID, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": result.MarkdownPath},
				{"type": "text", "text": result.SnapshotPath},
			},
		},
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}
