package atlas

// Allocator hands out disjoint rectangles inside a fixed region.
//
// Allocate returns a rectangle of exactly w×h pixels that lies within the
// region and does not overlap any rectangle returned before, or false when
// no such placement exists. A failed allocation leaves the state unchanged.
type Allocator interface {
	Allocate(w, h int) (Rect, bool)
}

// Padding is the empty space, in pixels, the default allocator keeps
// between glyphs and along the atlas border.
const Padding = 1

// ShelfAllocator implements shelf-based rectangle packing.
//
// Rectangles are placed left to right on horizontal shelves. A shelf is as
// tall as the tallest rectangle placed on it; when nothing fits on the
// existing shelves a new one is opened below the last.
type ShelfAllocator struct {
	width   int     // Total width of the atlas
	height  int     // Total height of the atlas
	border  int     // Empty margin along the atlas edges
	padding int     // Gap between rectangles
	shelves []shelf // List of shelves

	usedArea int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// NewShelfAllocator creates an allocator for a width×height region with
// the given border and inter-rectangle padding.
func NewShelfAllocator(width, height, border, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		border:  border,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate implements Allocator.
//
// The algorithm:
//  1. Try to fit on an existing shelf with enough height
//  2. Grow the last shelf if the item is taller and there is room below
//  3. Otherwise open a new shelf; fail if it would cross the border
func (a *ShelfAllocator) Allocate(w, h int) (Rect, bool) {
	if w <= 0 || h <= 0 {
		return Rect{}, false
	}
	right := a.width - a.border
	bottom := a.height - a.border

	for i := range a.shelves {
		s := &a.shelves[i]

		if s.x+w > right {
			continue
		}

		if h > s.height {
			// Only the last shelf has free space below it.
			if i != len(a.shelves)-1 || s.y+h > bottom {
				continue
			}
			s.height = h
		}

		r := Rect{X: s.x, Y: s.y, Width: w, Height: h}
		s.x += w + a.padding
		a.usedArea += w * h
		return r, true
	}

	y := a.border
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		y = last.y + last.height + a.padding
	}
	if y+h > bottom || a.border+w > right {
		return Rect{}, false
	}

	a.shelves = append(a.shelves, shelf{y: y, height: h, x: a.border + w + a.padding})
	a.usedArea += w * h
	return Rect{X: a.border, Y: y, Width: w, Height: h}, true
}

// Reset clears all allocations, allowing the allocator to be reused.
func (a *ShelfAllocator) Reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
}

// Utilization returns the fraction of atlas area covered by allocations
// (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// UsedArea returns the total area used by allocations.
func (a *ShelfAllocator) UsedArea() int {
	return a.usedArea
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}
