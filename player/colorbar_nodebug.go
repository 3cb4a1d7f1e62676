//go:build !debug

package player

import "image"

// drawBarLabels is a no-op in production builds; see colorbar_debug.go.
func drawBarLabels(img *image.RGBA, width, topH int, names []string) {}
