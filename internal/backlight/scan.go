package backlight

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/periphd/halboard/internal/sysfsutil"
)

// Candidate is one accepted /sys/class/backlight/* entry.
type Candidate struct {
	Name          string
	MaxBrightness int
	BrightnessPath string
	MaxPath       string
}

// Scan enumerates /sys/class/backlight/*, reading max_brightness for each.
// A device whose max_brightness can't be read is skipped (logged).
func Scan(root string) []Candidate {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Printf("[backlight] scan: %s: %v", root, err)
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []Candidate
	for _, n := range names {
		dir := filepath.Join(root, n)
		maxPath := filepath.Join(dir, "max_brightness")
		max, err := sysfsutil.ReadInt(maxPath)
		if err != nil {
			log.Printf("[backlight] skip %s: %v", dir, err)
			continue
		}
		out = append(out, Candidate{
			Name:           n,
			MaxBrightness:  max,
			BrightnessPath: filepath.Join(dir, "brightness"),
			MaxPath:        maxPath,
		})
	}
	return out
}
