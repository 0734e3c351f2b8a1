package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/ocr-markdown-mcp/internal/config"
	"github.com/ironsheep/ocr-markdown-mcp/internal/format"
	"github.com/ironsheep/ocr-markdown-mcp/internal/ocr"
)

// DefaultMaxSize is the default detector side-length limit.
const DefaultMaxSize = 640

// Options holds the parsed command line.
type Options struct {
	ImagePath  string
	OutputPath string

	// FastMode disables text-line orientation classification.
	FastMode bool

	// UseGPU is nil for auto-detection, otherwise the explicit
	// --gpu/--cpu choice.
	UseGPU *bool

	OCRVersion string
	MaxSize    int
	EnableHPI  bool
}

// Parse reads flags and the positional image path from args. It
// returns flag.ErrHelp when help was requested.
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet("ocr-md", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := &Options{}
	fs.StringVar(&opts.OutputPath, "o", "", "output file path (default: <image>.md)")
	fs.StringVar(&opts.OutputPath, "output", "", "output file path (default: <image>.md)")
	noFast := fs.Bool("no-fast", false, "enable text-line orientation classification")
	useCPU := fs.Bool("cpu", false, "force CPU inference")
	useGPU := fs.Bool("gpu", false, "force GPU inference")
	fs.StringVar(&opts.OCRVersion, "ocr-version", ocr.VersionV4, "model version (PP-OCRv4 or PP-OCRv5)")
	fs.IntVar(&opts.MaxSize, "max-size", DefaultMaxSize, "detector side-length limit in pixels")
	fs.BoolVar(&opts.EnableHPI, "hpi", false, "enable high-performance inference")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *useCPU && *useGPU {
		return nil, errors.New("--cpu and --gpu are mutually exclusive")
	}
	if *useCPU {
		v := false
		opts.UseGPU = &v
	}
	if *useGPU {
		v := true
		opts.UseGPU = &v
	}
	opts.FastMode = !*noFast

	switch opts.OCRVersion {
	case ocr.VersionV4, ocr.VersionV5:
	default:
		return nil, fmt.Errorf("invalid --ocr-version %q (want %s or %s)",
			opts.OCRVersion, ocr.VersionV4, ocr.VersionV5)
	}
	if opts.MaxSize <= 0 {
		return nil, fmt.Errorf("invalid --max-size %d", opts.MaxSize)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, errors.New("exactly one image path is required")
	}
	opts.ImagePath = rest[0]

	return opts, nil
}

// Run executes one OCR pass per opts, constructing the engine through
// factory. Progress and device notices go to stdout; fallback
// warnings go to stderr.
func Run(opts *Options, factory ocr.Factory, stdout, stderr io.Writer) error {
	info, err := os.Stat(opts.ImagePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", opts.ImagePath)
		}
		return fmt.Errorf("failed to access image file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is not a file: %s", opts.ImagePath)
	}

	useGPU := false
	if opts.UseGPU != nil {
		useGPU = *opts.UseGPU
	} else {
		useGPU = gpuAvailable()
		if useGPU {
			fmt.Fprintln(stdout, "GPU detected. Using GPU for inference.")
		} else {
			fmt.Fprintln(stdout, "GPU not available. Falling back to CPU.")
		}
	}

	engineOpts := ocr.Options{
		Language:            ocr.DefaultLanguage,
		Version:             opts.OCRVersion,
		DetLimitSideLen:     opts.MaxSize,
		TextlineOrientation: !opts.FastMode,
		EnableHPI:           opts.EnableHPI,
	}
	if useGPU {
		engineOpts.Device = "gpu:0"
		config.RequestGPU()
	} else {
		engineOpts.Device = "cpu"
		config.ForceCPU()
	}

	engine, err := factory(engineOpts)
	if err != nil && useGPU && ocr.Classify(err) == ocr.KindGPU {
		fmt.Fprintf(stderr, "GPU initialization failed: %v\n", err)
		fmt.Fprintln(stderr, "Falling back to CPU...")
		engineOpts.Device = "cpu"
		config.ForceCPU()
		engine, err = factory(engineOpts)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize OCR engine: %w", err)
	}
	defer engine.Close()

	pages, err := engine.Recognize(opts.ImagePath)
	if err != nil {
		return fmt.Errorf("OCR failed for %s: %w", opts.ImagePath, err)
	}

	var texts []string
	if len(pages) > 0 {
		texts = pages[0].Texts()
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = opts.ImagePath + ".md"
	}
	markdown := format.Markdown(opts.ImagePath, "", texts)
	if err := os.WriteFile(outputPath, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if opts.EnableHPI {
		fmt.Fprintln(stdout, "Note: High-Performance Inference (HPI) enabled.")
	}
	fmt.Fprintf(stdout, "OCR completed. Output saved to: %s\n", outputPath)
	return nil
}

// gpuAvailable reports whether a GPU inference device exists. The
// current backend is CPU-only, so auto-detection always lands on CPU.
func gpuAvailable() bool {
	return false
}
