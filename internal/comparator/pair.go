package comparator

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// imagePair is an expected image and the actual image it is checked
// against. Name is the file name shared by both.
type imagePair struct {
	Name         string
	ExpectedPath string
	ActualPath   string
}

// findPairs pairs every PNG file in expectedDir with the file of the same
// name in actualDir. A missing actual file is not an error here; it surfaces
// when the pair is compared.
func findPairs(expectedDir, actualDir string) ([]imagePair, error) {
	entries, err := os.ReadDir(expectedDir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory: %w", err)
	}

	pairs := []imagePair{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !isPNG(name) {
			log.Printf("Skipping %s: not a PNG file.", name)
			continue
		}
		pairs = append(pairs, imagePair{
			Name:         name,
			ExpectedPath: filepath.Join(expectedDir, name),
			ActualPath:   filepath.Join(actualDir, name),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
	return pairs, nil
}
