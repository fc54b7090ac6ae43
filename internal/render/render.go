// Package render converts block sequences into binary documents. Two
// renderers share the contract: neither reorders nor drops blocks, and both
// map every block variant to a native primitive of their format.
package render

import (
	"fmt"
	"strconv"

	"github.com/verolabs/docforge/internal/block"
)

// Renderer walks a block sequence and produces a complete document.
type Renderer interface {
	Render(blocks []block.Block, page block.PageConfig) ([]byte, error)
}

// bodySize is the default run size in points when a run does not set one.
const bodySize = 11.0

// headingSize maps heading levels to point sizes.
func headingSize(level int) float64 {
	if level >= 2 {
		return 13
	}
	return 16
}

// runSize resolves a run's effective size.
func runSize(r block.Run) float64 {
	if r.Size > 0 {
		return r.Size
	}
	return bodySize
}

// hexRGB parses a hex color such as "003366" into components. Invalid input
// is reported rather than silently rendered black: a malformed block is a
// generation failure.
func hexRGB(hex string) (r, g, b int, err error) {
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("bad color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad color %q", hex)
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), nil
}
