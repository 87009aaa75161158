// Package layout is the responsive layout engine shared by all test screens.
// It maps (window width, window height, region specs) to a tree of named,
// pairwise non-overlapping rectangles. The tree is the single source of
// truth for both drawing and pointer hit-testing: screens never re-derive
// control rectangles from render code.
//
// The computation is deterministic and cheap, so it is simply recomputed on
// every resize event and page change; nothing is memoized or persisted.
package layout

import (
	"github.com/neuroedu/tui-statlab/internal/core"
)

// Design constants shared by all screens, in cells.
const (
	// MinWidth and MinHeight are the smallest window the engine lays out
	// for. Smaller windows are laid out as if they had these dimensions;
	// regions keep their minimum sizes and the tree extends past the
	// visible area rather than letting panels collapse into each other.
	MinWidth  = 60
	MinHeight = 20

	// HMargin is the horizontal margin applied to every band.
	HMargin = 2

	// BandGap is the vertical gap between adjacent bands.
	BandGap = 1
)

// Region describes one horizontal band of a screen, top to bottom.
type Region struct {
	Name string
	Min  int     // minimum height in cells; never shrunk below this
	Max  int     // optional height cap; 0 means unbounded
	Flex float64 // share of leftover height; 0 means fixed at Min
}

// Tree is the computed layout: an ordered set of named bands.
type Tree struct {
	Width  int // effective width used for the computation
	Height int // effective height used for the computation

	names []string
	rects map[string]core.Rect
}

// Compute lays out the given regions as vertically stacked bands within a
// window of the given size. Same inputs always produce the same tree.
//
// Each band gets at least its declared minimum height. Leftover height is
// distributed proportionally to the Flex weights, respecting Max caps.
// If the window is shorter than the sum of minimums plus gaps, the bands
// keep their minimums: the guarantee is that no two bands ever overlap,
// not that they all fit on screen.
func Compute(width, height int, regions []Region) Tree {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}

	t := Tree{
		Width:  width,
		Height: height,
		rects:  make(map[string]core.Rect, len(regions)),
	}

	heights := distribute(height, regions)

	y := 0
	for i, reg := range regions {
		if i > 0 {
			y += BandGap
		}
		r := core.NewRect(HMargin, y, width-2*HMargin, heights[i])
		t.names = append(t.names, reg.Name)
		t.rects[reg.Name] = r
		y += heights[i]
	}

	return t
}

// distribute returns the height of each region.
func distribute(height int, regions []Region) []int {
	heights := make([]int, len(regions))
	minTotal := 0
	for i, reg := range regions {
		heights[i] = reg.Min
		minTotal += reg.Min
	}
	gaps := 0
	if len(regions) > 1 {
		gaps = (len(regions) - 1) * BandGap
	}

	leftover := height - minTotal - gaps
	if leftover <= 0 {
		return heights
	}

	// Water-filling: hand out leftover by flex weight; regions that hit
	// their cap drop out and the remainder is re-distributed.
	active := make([]bool, len(regions))
	flexTotal := 0.0
	for i, reg := range regions {
		if reg.Flex > 0 {
			active[i] = true
			flexTotal += reg.Flex
		}
	}

	for leftover > 0 && flexTotal > 0 {
		distributed := 0
		capped := false
		for i, reg := range regions {
			if !active[i] {
				continue
			}
			share := int(float64(leftover) * reg.Flex / flexTotal)
			if share == 0 {
				share = 1 // always make progress on tiny remainders
			}
			if distributed+share > leftover {
				share = leftover - distributed
			}
			if reg.Max > 0 && heights[i]+share >= reg.Max {
				share = reg.Max - heights[i]
				active[i] = false
				flexTotal -= reg.Flex
				capped = true
			}
			heights[i] += share
			distributed += share
		}
		leftover -= distributed
		if distributed == 0 && !capped {
			break
		}
	}

	return heights
}

// Rect returns the band with the given name. The zero Rect is returned for
// unknown names, which draws and hit-tests as nothing.
func (t Tree) Rect(name string) core.Rect {
	return t.rects[name]
}

// Names returns the band names in top-to-bottom order.
func (t Tree) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// TotalHeight returns the bottom edge of the lowest band.
func (t Tree) TotalHeight() int {
	h := 0
	for _, name := range t.names {
		if b := t.rects[name].Bottom(); b > h {
			h = b
		}
	}
	return h
}

// CenterIn returns a w×h rectangle centered inside r, clamped so it never
// exceeds r's bounds.
func CenterIn(r core.Rect, w, h int) core.Rect {
	if w > r.W {
		w = r.W
	}
	if h > r.H {
		h = r.H
	}
	return core.NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Columns splits r into n equal-width columns separated by gap cells.
// Column widths never go below 1.
func Columns(r core.Rect, n, gap int) []core.Rect {
	if n <= 0 {
		return nil
	}
	w := (r.W - (n-1)*gap) / n
	if w < 1 {
		w = 1
	}
	cols := make([]core.Rect, n)
	for i := 0; i < n; i++ {
		cols[i] = core.NewRect(r.X+i*(w+gap), r.Y, w, r.H)
	}
	return cols
}

// Rows splits r into n single-cell-high rows starting at r.Y, separated by
// gap cells. Used to place slider rows and table rows inside a band.
func Rows(r core.Rect, n, gap int) []core.Rect {
	if n <= 0 {
		return nil
	}
	rows := make([]core.Rect, n)
	for i := 0; i < n; i++ {
		rows[i] = core.NewRect(r.X, r.Y+i*(1+gap), r.W, 1)
	}
	return rows
}

// SliderTrack computes a slider track rectangle inside a row: the label
// occupies labelW cells on the left, the value readout valueW cells on the
// right, and the track fills the middle, never narrower than minTrack.
func SliderTrack(row core.Rect, labelW, valueW, minTrack int) core.Rect {
	w := row.W - labelW - valueW - 2
	if w < minTrack {
		w = minTrack
	}
	return core.NewRect(row.X+labelW+1, row.Y, w, 1)
}
