package comparator

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/dtom7/image-compare/internal/regions"
)

// Run is the main application logic. It returns a report of all
// comparisons; a mismatch is not an error.
func Run(cfg *Config) (*Report, error) {
	regionsCfg, err := cfg.RegionsConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Batch {
		return runBatch(cfg, regionsCfg)
	}
	return runSingle(cfg, regionsCfg)
}

func runSingle(cfg *Config, regionsCfg regions.Config) (*Report, error) {
	log.Printf("Comparing %s against %s.", cfg.ActualPath, cfg.ExpectedPath)
	startTime := time.Now()

	res, err := CompareFiles(cfg.ExpectedPath, cfg.ActualPath, regionsCfg)
	if err != nil {
		return nil, err
	}
	log.Printf("Comparison took %s, state: %s.", time.Since(startTime), res.State)

	report := &Report{}
	report.Add(res, nil)
	fmt.Println(describe(filepath.Base(cfg.ActualPath), res, nil))

	if res.State == StateMismatch {
		if err := saveImage(res.Image, cfg.OutputPath); err != nil {
			return report, fmt.Errorf("failed to save result image: %w", err)
		}
		log.Printf("Saved result image to %s", cfg.OutputPath)
		fmt.Printf("Result image written to %s\n", cfg.OutputPath)
	}
	return report, nil
}

func runBatch(cfg *Config, regionsCfg regions.Config) (*Report, error) {
	log.Printf("Starting batch comparison with %d CPU cores.", cfg.CPUCores)
	runtime.GOMAXPROCS(cfg.CPUCores)

	pairs, err := findPairs(cfg.ExpectedPath, cfg.ActualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list expected images: %w", err)
	}
	report := &Report{}
	if len(pairs) == 0 {
		fmt.Println("No PNG images found in the expected directory.")
		return report, nil
	}
	fmt.Printf("Found %d image pairs.\n", len(pairs))

	jobs := make(chan imagePair, len(pairs))
	results := make(chan pairResult, cfg.CPUCores)

	var processedPairs, mismatchedPairs int64
	totalPairs := int64(len(pairs))

	var wg sync.WaitGroup
	for i := 0; i < cfg.CPUCores; i++ {
		wg.Add(1)
		go worker(&wg, jobs, results, regionsCfg, &processedPairs)
	}

	var spinnerWg sync.WaitGroup
	spinnerWg.Add(1)
	done := make(chan struct{})
	startTime := time.Now()

	go func() {
		defer spinnerWg.Done()
		s := spinner.New()
		s.Spinner = spinner.Dot
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		progress := func() string {
			return fmt.Sprintf("%d/%d pairs compared, %s",
				atomic.LoadInt64(&processedPairs), totalPairs,
				mismatchStyle.Render(fmt.Sprintf("%d mismatched", atomic.LoadInt64(&mismatchedPairs))))
		}
		for {
			select {
			case <-done:
				fmt.Printf("\r%s Comparison complete: %s.\n", matchStyle.Render("✓"), progress())
				return
			case <-ticker.C:
				s, _ = s.Update(spinner.TickMsg{})
				fmt.Printf("\r%s %s...", s.View(), progress())
			}
		}
	}()

	for _, pair := range pairs {
		jobs <- pair
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	lines := saveResults(results, cfg.OutputPath, report, &mismatchedPairs)
	close(done)
	spinnerWg.Wait()

	duration := time.Since(startTime)
	log.Printf("Comparison of all pairs took %s.", duration)

	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Printf("Total processing time: %s\n", durationStyle.Render(fmt.Sprintf("%.4fs", duration.Seconds())))
	fmt.Println(report)
	log.Println("Processing complete.")
	return report, nil
}

// saveResults drains the results channel while the workers are still
// running. The annotated image of every mismatch is written to outputDir as
// soon as it arrives and then dropped, so only one image per worker is held
// at a time. Outcomes are tallied into report and returned as printable
// lines in pair-name order.
func saveResults(results <-chan pairResult, outputDir string, report *Report, mismatched *int64) []string {
	type line struct{ name, text string }
	var collected []line
	for r := range results {
		if r.Err != nil {
			log.Printf("Error comparing %s: %v", r.Pair.Name, r.Err)
		}
		report.Add(r.Result, r.Err)
		collected = append(collected, line{r.Pair.Name, describe(r.Pair.Name, r.Result, r.Err)})

		if r.Err != nil || r.Result.State != StateMismatch {
			continue
		}
		atomic.AddInt64(mismatched, 1)
		path := filepath.Join(outputDir, r.Pair.Name)
		if err := saveImage(r.Result.Image, path); err != nil {
			log.Printf("Error saving %s: %v", path, err)
		} else {
			log.Printf("Saved result image to %s", path)
		}
		r.Result.Image = nil
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].name < collected[j].name })
	lines := make([]string, len(collected))
	for i, l := range collected {
		lines[i] = l.text
	}
	return lines
}
