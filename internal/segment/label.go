package segment

import "image"

// LabelGrid assigns every pixel of a binarized image an integer component
// label. Zero means background; positive values identify connected ink
// components. The grid is a flat row-major slice addressed by y*Width+x.
type LabelGrid struct {
	Width  int
	Height int
	Labels []int32
}

// At returns the label at (x, y). No bounds checking is performed.
func (g *LabelGrid) At(x, y int) int32 {
	return g.Labels[y*g.Width+x]
}

// equivalences tracks which provisional labels belong to the same
// component. It is a union-find over label indices: parent[l] points
// toward the canonical label, unions attach the larger root under the
// smaller, so a component always resolves to the smallest label ever
// merged into it.
type equivalences struct {
	parent []int32
}

func newEquivalences() *equivalences {
	// Index 0 is the background pseudo-label and never unioned.
	return &equivalences{parent: make([]int32, 1, 64)}
}

// fresh allocates the next provisional label.
func (e *equivalences) fresh() int32 {
	l := int32(len(e.parent))
	e.parent = append(e.parent, l)
	return l
}

// find resolves a label to its canonical root, compressing the path walked.
func (e *equivalences) find(l int32) int32 {
	root := l
	for e.parent[root] != root {
		root = e.parent[root]
	}
	for e.parent[l] != root {
		l, e.parent[l] = e.parent[l], root
	}
	return root
}

// union records that a and b label the same component.
func (e *equivalences) union(a, b int32) {
	ra, rb := e.find(a), e.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		e.parent[rb] = ra
	} else {
		e.parent[ra] = rb
	}
}

// Label runs two-pass connected-component labeling over a binarized image
// (ink = 0-valued channel) and returns a grid of canonical labels.
//
// The first pass scans pixels in row-major order and inspects only the
// four causal neighbors of each ink pixel: left, top, top-left, and
// top-right. This asymmetric mask is sufficient for a single top-to-bottom,
// left-to-right scan because the bottom-right adjacency of a pixel is
// observed when that neighbor is itself visited. An ink pixel with no
// labeled neighbor gets a fresh label; otherwise it takes the minimum
// neighbor label and the remaining neighbor labels are recorded as
// equivalent to it.
//
// The second pass rewrites every non-zero cell with its resolved canonical
// label.
func Label(img *image.RGBA) *LabelGrid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	grid := &LabelGrid{
		Width:  width,
		Height: height,
		Labels: make([]int32, width*height),
	}
	eq := newEquivalences()

	ink := func(x, y int) bool {
		return img.Pix[img.PixOffset(x, y)] == 0
	}

	var neighbors [4]int32
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !ink(x, y) {
				continue
			}

			n := 0
			if x > 0 && ink(x-1, y) {
				neighbors[n] = grid.At(x-1, y)
				n++
			}
			if y > 0 {
				if ink(x, y-1) {
					neighbors[n] = grid.At(x, y-1)
					n++
				}
				if x > 0 && ink(x-1, y-1) {
					neighbors[n] = grid.At(x-1, y-1)
					n++
				}
				if x < width-1 && ink(x+1, y-1) {
					neighbors[n] = grid.At(x+1, y-1)
					n++
				}
			}

			var label int32
			if n == 0 {
				label = eq.fresh()
			} else {
				label = neighbors[0]
				for i := 1; i < n; i++ {
					if neighbors[i] < label {
						label = neighbors[i]
					}
				}
				for i := 0; i < n; i++ {
					if neighbors[i] != label {
						eq.union(neighbors[i], label)
					}
				}
			}
			grid.Labels[y*width+x] = label
		}
	}

	for i, l := range grid.Labels {
		if l != 0 {
			grid.Labels[i] = eq.find(l)
		}
	}

	return grid
}
