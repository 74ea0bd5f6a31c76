package segment

import (
	"reflect"
	"testing"
)

func TestAggregateBoxes(t *testing.T) {
	grid := Label(binaryImage([]string{
		".##.....",
		".##...#.",
		"......#.",
	}))

	boxes := AggregateBoxes(grid)

	if len(boxes) != 2 {
		t.Fatalf("Expected 2 boxes, got %d", len(boxes))
	}
	if boxes[0] != (Box{MinX: 1, MinY: 0, MaxX: 2, MaxY: 1}) {
		t.Errorf("First box extent wrong: %+v", boxes[0])
	}
	if boxes[1] != (Box{MinX: 6, MinY: 1, MaxX: 6, MaxY: 2}) {
		t.Errorf("Second box extent wrong: %+v", boxes[1])
	}
}

func TestBoxArea(t *testing.T) {
	tests := []struct {
		box  Box
		want int
	}{
		{Box{0, 0, 0, 0}, 0},     // single pixel
		{Box{0, 0, 20, 20}, 400}, // 21x21 component
		{Box{10, 10, 31, 31}, 441},
	}
	for _, tt := range tests {
		if got := tt.box.Area(); got != tt.want {
			t.Errorf("Area(%+v): got %d, want %d", tt.box, got, tt.want)
		}
	}
}

func TestFilterNoise(t *testing.T) {
	boxes := []Box{
		{0, 0, 20, 20},     // area 400: at threshold, dropped
		{0, 0, 21, 21},     // area 441: kept
		{50, 50, 52, 52},   // speck, dropped
		{100, 100, 200, 150}, // kept
	}

	kept := FilterNoise(boxes, 400)

	if len(kept) != 2 {
		t.Fatalf("Expected 2 surviving boxes, got %d", len(kept))
	}
	if kept[0] != (Box{0, 0, 21, 21}) || kept[1] != (Box{100, 100, 200, 150}) {
		t.Errorf("Wrong boxes survived: %+v", kept)
	}
}

func TestMergeNearby_ClosePairMerges(t *testing.T) {
	// Horizontal gap of 40px between edges; each box dilated by 30 makes
	// the padded rectangles overlap, so they merge into one union.
	boxes := []Box{
		{0, 0, 50, 30},
		{90, 5, 140, 35},
	}

	merged := MergeNearby(boxes, 30)

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged box, got %d", len(merged))
	}
	if merged[0] != (Box{0, 0, 140, 35}) {
		t.Errorf("Merged box should be the union, got %+v", merged[0])
	}
}

func TestMergeNearby_FarPairStaysSeparate(t *testing.T) {
	// Gap of 70px exceeds twice the merge distance.
	boxes := []Box{
		{0, 0, 50, 30},
		{120, 0, 170, 30},
	}

	merged := MergeNearby(boxes, 30)

	if len(merged) != 2 {
		t.Errorf("Expected 2 separate boxes, got %d", len(merged))
	}
}

func TestMergeNearby_DiagonalSeparation(t *testing.T) {
	// Boxes close horizontally but far vertically must not merge:
	// proximity requires overlap on both axes.
	boxes := []Box{
		{0, 0, 50, 30},
		{60, 200, 110, 230},
	}

	merged := MergeNearby(boxes, 30)

	if len(merged) != 2 {
		t.Errorf("Axis-disjoint boxes should not merge, got %d", len(merged))
	}
}

func TestMergeNearby_Transitive(t *testing.T) {
	// A chain a-b-c where only adjacent pairs are close: merging a and b
	// produces a union close to c, so all three collapse to one.
	boxes := []Box{
		{0, 0, 40, 20},
		{80, 0, 120, 20},
		{160, 0, 200, 20},
	}

	merged := MergeNearby(boxes, 30)

	if len(merged) != 1 {
		t.Fatalf("Chain should collapse to 1 box, got %d", len(merged))
	}
	if merged[0] != (Box{0, 0, 200, 20}) {
		t.Errorf("Expected union of chain, got %+v", merged[0])
	}
}

func TestMergeNearby_Idempotent(t *testing.T) {
	boxes := []Box{
		{0, 0, 50, 30},
		{200, 0, 260, 40},
		{0, 300, 80, 340},
		{210, 310, 280, 350},
	}

	once := MergeNearby(boxes, 30)
	twice := MergeNearby(once, 30)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Merging its own output must be a no-op:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeNearby_OrderIndependent(t *testing.T) {
	a := []Box{{0, 0, 50, 30}, {300, 300, 350, 330}, {90, 5, 140, 35}}
	b := []Box{{90, 5, 140, 35}, {0, 0, 50, 30}, {300, 300, 350, 330}}

	ma := MergeNearby(a, 30)
	mb := MergeNearby(b, 30)

	if !reflect.DeepEqual(ma, mb) {
		t.Errorf("Result must not depend on input order:\n%+v\n%+v", ma, mb)
	}
}

func TestMergeNearby_Empty(t *testing.T) {
	if got := MergeNearby(nil, 30); len(got) != 0 {
		t.Errorf("Empty input should stay empty, got %+v", got)
	}
}
