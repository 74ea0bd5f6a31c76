package segment

import "sort"

// Box is an axis-aligned bounding box in working-resolution pixel
// coordinates, with MinX <= MaxX and MinY <= MaxY. Coordinates are
// inclusive on both ends.
type Box struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Area returns the box extent product (MaxX-MinX)*(MaxY-MinY). A
// single-pixel component has area 0.
func (b Box) Area() int {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// union returns the smallest box covering both a and b.
func (b Box) union(o Box) Box {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// near reports whether the two boxes, each dilated by dist on every side,
// intersect on both axes. A gap of exactly 2*dist still counts as near.
func (b Box) near(o Box, dist int) bool {
	return b.MinX-dist <= o.MaxX+dist && o.MinX-dist <= b.MaxX+dist &&
		b.MinY-dist <= o.MaxY+dist && o.MinY-dist <= b.MaxY+dist
}

// AggregateBoxes computes one bounding box per canonical label in the grid.
// Boxes are returned in first-seen (row-major) order of their labels.
func AggregateBoxes(grid *LabelGrid) []Box {
	index := make(map[int32]int)
	boxes := make([]Box, 0, 32)

	for y := 0; y < grid.Height; y++ {
		row := grid.Labels[y*grid.Width : (y+1)*grid.Width]
		for x, label := range row {
			if label == 0 {
				continue
			}
			i, ok := index[label]
			if !ok {
				index[label] = len(boxes)
				boxes = append(boxes, Box{MinX: x, MinY: y, MaxX: x, MaxY: y})
				continue
			}
			b := &boxes[i]
			if x < b.MinX {
				b.MinX = x
			}
			if x > b.MaxX {
				b.MaxX = x
			}
			if y > b.MaxY {
				b.MaxY = y
			}
			// MinY can only shrink on first sight in row-major order.
		}
	}

	return boxes
}

// FilterNoise discards boxes whose area is at or below minArea. Specks of
// dust and isolated marks rarely exceed a few hundred square pixels at
// working resolution.
func FilterNoise(boxes []Box, minArea int) []Box {
	kept := boxes[:0]
	for _, b := range boxes {
		if b.Area() > minArea {
			kept = append(kept, b)
		}
	}
	return kept
}

// MergeNearby repeatedly merges pairs of boxes that lie within dist of
// each other until no pair qualifies, and returns the surviving boxes.
//
// Each pass scans all pairs; on the first near pair found, the second box
// is absorbed into the first and the scan restarts. Every merge strictly
// reduces the set size, so the loop terminates. Boxes are sorted by origin
// before each pass so the result does not depend on the caller's ordering.
//
// The scan is O(n²) per pass and O(n³) worst case overall, which is fine
// for the few dozen regions a document page yields.
func MergeNearby(boxes []Box, dist int) []Box {
	merged := make([]Box, len(boxes))
	copy(merged, boxes)

	for {
		sort.Slice(merged, func(i, j int) bool {
			if merged[i].MinY != merged[j].MinY {
				return merged[i].MinY < merged[j].MinY
			}
			return merged[i].MinX < merged[j].MinX
		})

		found := false
	scan:
		for i := 0; i < len(merged); i++ {
			for j := i + 1; j < len(merged); j++ {
				if merged[i].near(merged[j], dist) {
					merged[i] = merged[i].union(merged[j])
					merged = append(merged[:j], merged[j+1:]...)
					found = true
					break scan
				}
			}
		}
		if !found {
			return merged
		}
	}
}
