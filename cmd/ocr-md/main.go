package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ironsheep/ocr-markdown-mcp/internal/cli"
	"github.com/ironsheep/ocr-markdown-mcp/internal/config"
	"github.com/ironsheep/ocr-markdown-mcp/internal/ocr"
)

func usage() {
	fmt.Println("ocr-md - OCR an image and save the text as Markdown")
	fmt.Println()
	fmt.Println("Usage: ocr-md [options] <image>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -o, --output PATH    Output file path (default: <image>.md)")
	fmt.Println("  --no-fast            Enable text-line orientation classification")
	fmt.Println("  --cpu                Force CPU inference")
	fmt.Println("  --gpu                Force GPU inference")
	fmt.Println("  --ocr-version V      Model version: PP-OCRv4 (default) or PP-OCRv5")
	fmt.Println("  --max-size N         Detector side-length limit in pixels (default: 640)")
	fmt.Println("  --hpi                Enable high-performance inference")
}

func main() {
	config.Load()

	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage()
			return
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := cli.Run(opts, ocr.NewTesseractEngine, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
