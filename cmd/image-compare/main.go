package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/dtom7/image-compare/internal/comparator"
	"github.com/dtom7/image-compare/internal/logger"
	"github.com/dtom7/image-compare/internal/regions"
)

// Exit codes.
const (
	exitMatch    = 0
	exitError    = 1
	exitMismatch = 2
)

func main() {
	cfg, logFilePath := parseFlags()

	logFile, err := logger.Init(logFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(exitError)
	}

	os.Exit(run(cfg, logFile.Close))
}

// run executes the comparison and maps its outcome to an exit code. It is
// split from main so the deferred close runs before os.Exit.
func run(cfg *comparator.Config, closeLog func() error) int {
	defer closeLog()

	if err := validateConfig(cfg); err != nil {
		log.Printf("Configuration error: %v", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return exitError
	}

	report, err := comparator.Run(cfg)
	if err != nil {
		log.Printf("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		return exitError
	}
	if !report.AllMatched() {
		return exitMismatch
	}
	return exitMatch
}

// parseFlags defines and parses command-line flags, returning them
// in a Config struct along with the log file path.
func parseFlags() (*comparator.Config, string) {
	cfg := &comparator.Config{}
	var logFilePath string

	pflag.StringVarP(&cfg.ExpectedPath, "expected", "e", "", "Path to the expected image (a directory with --batch).")
	pflag.StringVarP(&cfg.ActualPath, "actual", "a", "", "Path to the actual image (a directory with --batch).")
	pflag.StringVarP(&cfg.OutputPath, "output", "o", "", "Result image path, or output directory with --batch. Defaults to ./result.png or ./output.")
	pflag.BoolVarP(&cfg.Batch, "batch", "b", false, "Compare every PNG in the expected directory with the same file in the actual directory.")
	pflag.IntVarP(&cfg.CPUCores, "cpu-cores", "c", runtime.NumCPU(), "Number of CPU cores to use in batch mode.")
	pflag.IntVarP(&cfg.JumpThreshold, "jump", "j", regions.DefaultJumpThreshold, "Largest gap in pixels bridged between differing pixels of one region.")
	pflag.Float64VarP(&cfg.AllowedDifferencePercent, "allowed-percent", "p", 0, "Percentage of differing pixels still reported as a match.")
	pflag.IntVarP(&cfg.MinimumRegionArea, "min-area", "m", regions.DefaultMinimumRegionArea, "Regions with a smaller bounding rectangle area are ignored.")
	pflag.StringVar(&cfg.OutlineColor, "color", "#ff0000", "Hex color of the rectangles drawn around differences.")
	pflag.StringVar(&logFilePath, "log-file", "image-compare.log", "Path to the log file. Empty disables logging.")

	pflag.Parse()

	if cfg.OutputPath == "" {
		if cfg.Batch {
			cfg.OutputPath = "./output"
		} else {
			cfg.OutputPath = "./result.png"
		}
	}
	return cfg, logFilePath
}

// validateConfig checks if the provided configuration is valid.
func validateConfig(cfg *comparator.Config) error {
	if cfg.ExpectedPath == "" {
		return fmt.Errorf("--expected/-e flag is required")
	}
	if cfg.ActualPath == "" {
		return fmt.Errorf("--actual/-a flag is required")
	}
	for _, path := range []string{cfg.ExpectedPath, cfg.ActualPath} {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return fmt.Errorf("input does not exist: %s", path)
		}
		if err != nil {
			return err
		}
		if cfg.Batch && !info.IsDir() {
			return fmt.Errorf("--batch requires directories, got file: %s", path)
		}
		if !cfg.Batch && info.IsDir() {
			return fmt.Errorf("input is a directory, use --batch: %s", path)
		}
	}
	if cfg.JumpThreshold < 0 {
		return fmt.Errorf("--jump must not be negative")
	}
	if cfg.AllowedDifferencePercent < 0 || cfg.AllowedDifferencePercent > 100 {
		return fmt.Errorf("--allowed-percent must be between 0 and 100")
	}
	if cfg.MinimumRegionArea < 0 {
		return fmt.Errorf("--min-area must not be negative")
	}
	if cfg.CPUCores <= 0 {
		return fmt.Errorf("--cpu-cores must be a positive integer")
	}
	if _, err := comparator.ParseColor(cfg.OutlineColor); err != nil {
		return err
	}
	if !cfg.Batch {
		if _, err := comparator.NewImageEncoder(comparator.OutputFormat(cfg.OutputPath)); err != nil {
			return err
		}
	}
	return nil
}
