package screen

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/periphd/halboard/internal/sysfsutil"
)

// defaultExclusions hides the board's primary display controller so only
// auxiliary framebuffers (small SPI/I2C panels, cover displays) are
// surfaced. Matched against the fb's "name" attribute, exact string.
var defaultExclusions = map[string]bool{
	"vc4drmfb":    true,
	"simpledrmfb": true,
}

// FBCandidate is one accepted /sys/class/graphics/fb* entry, ready to be
// turned into a Driver by the caller once it has assigned a dense index.
type FBCandidate struct {
	SysfsDir string
	Name     string
	Width    int
	Height   int
	BPP      int
	DevPath  string
}

// ScanFramebuffers enumerates /sys/class/graphics/fb* in directory order,
// rejecting (logging, skipping) any entry missing a required attribute or
// matching the exclusion list. Rejections never abort the scan.
func ScanFramebuffers(root string) []FBCandidate {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Printf("[screen] scan: %s: %v", root, err)
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []FBCandidate
	for _, n := range names {
		dir := filepath.Join(root, n)
		c, err := readCandidate(dir)
		if err != nil {
			log.Printf("[screen] skip %s: %v", dir, err)
			continue
		}
		if defaultExclusions[c.Name] {
			log.Printf("[screen] skip %s: %q is excluded (primary display)", dir, c.Name)
			continue
		}
		out = append(out, *c)
	}
	return out
}

func readCandidate(dir string) (*FBCandidate, error) {
	name, err := sysfsutil.ReadString(filepath.Join(dir, "name"))
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	bpp, err := sysfsutil.ReadInt(filepath.Join(dir, "bits_per_pixel"))
	if err != nil {
		return nil, fmt.Errorf("bits_per_pixel: %w", err)
	}
	w, h, err := sysfsutil.ReadPair(filepath.Join(dir, "virtual_size"))
	if err != nil {
		return nil, fmt.Errorf("virtual_size: %w", err)
	}
	dev, err := sysfsutil.ResolveSymlink(dir, "device")
	if err != nil {
		return nil, fmt.Errorf("device: %w", err)
	}
	return &FBCandidate{SysfsDir: dir, Name: name, Width: w, Height: h, BPP: bpp, DevPath: dev}, nil
}
