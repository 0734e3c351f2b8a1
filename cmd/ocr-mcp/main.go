package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/ocr-markdown-mcp/internal/config"
	"github.com/ironsheep/ocr-markdown-mcp/internal/ocr"
	"github.com/ironsheep/ocr-markdown-mcp/internal/pipeline"
	"github.com/ironsheep/ocr-markdown-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "0.5.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("ocr-markdown-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("ocr-markdown-mcp - MCP server for OCR to Markdown conversion")
			fmt.Println()
			fmt.Println("Usage: ocr-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  OCR_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.DebugLogging {
		log.Printf("OCR MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	engines := ocr.NewCache(ocr.NewTesseractEngine, ocr.Options{})
	defer engines.Close()

	srv := server.New(pipeline.New(engines))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
