// Package sysfsutil holds the small set of sysfs text-file helpers shared
// by the framebuffer, IIO and backlight scanners. Every read here is a
// short, synchronous file read -- per spec this never suspends the caller.
package sysfsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadString reads path and returns its content with surrounding whitespace
// trimmed. Most sysfs attribute files are newline-terminated single values.
func ReadString(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ReadInt reads path and parses it as a base-10 integer.
func ReadInt(path string) (int, error) {
	s, err := ReadString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ReadFloat reads path and parses it as a float, used for scale/offset
// channel attributes.
func ReadFloat(path string) (float64, error) {
	s, err := ReadString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ReadPair reads path expecting the fixed "A,B" decimal format used by
// fb*/virtual_size, and returns the two integers.
func ReadPair(path string) (int, int, error) {
	s, err := ReadString(path)
	if err != nil {
		return 0, 0, err
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%s: expected A,B got %q", path, s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", path, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", path, err)
	}
	return a, b, nil
}

// WriteString overwrites path with s, no trailing newline. Matches the
// kernel's expectation that sysfs attribute writes are single values.
func WriteString(path, s string) error {
	return os.WriteFile(path, []byte(s), 0644)
}

// ResolveSymlink resolves the "device" symlink child of dir into an
// absolute path. fb* and backlight* both expose this pattern.
func ResolveSymlink(dir, name string) (string, error) {
	link := filepath.Join(dir, name)
	target, err := os.Readlink(link)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.Clean(target), nil
}

// Exists reports whether path can be stat'ed successfully. Used by the IIO
// channel prober, where a missing file is a normal, silent "absent axis".
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
