package renderer

import "testing"

func TestIndexSetsReferenceValidVertices(t *testing.T) {
	for name, indices := range map[string][]uint16{
		"full":     pentagonIndices,
		"detached": detachedIndices,
	} {
		if len(indices)%3 != 0 {
			t.Errorf("%s index count %d is not a whole number of triangles", name, len(indices))
		}
		for i, idx := range indices {
			if int(idx) >= len(pentagonVertices) {
				t.Errorf("%s index %d references vertex %d, only %d exist", name, i, idx, len(pentagonVertices))
			}
		}
	}
}

func TestNewMeshIndicesPadsOddCounts(t *testing.T) {
	full := newMeshIndices(pentagonIndices)
	if full.count != 9 {
		t.Errorf("got full count %d, want 9", full.count)
	}
	if len(full.data) != 10 {
		t.Errorf("got %d padded full indices, want 10", len(full.data))
	}
	if full.data[9] != 0 {
		t.Errorf("got padding index %d, want 0", full.data[9])
	}

	detached := newMeshIndices(detachedIndices)
	if detached.count != 6 {
		t.Errorf("got detached count %d, want 6", detached.count)
	}
	if len(detached.data) != 6 {
		t.Errorf("got %d detached indices, want 6 with no padding", len(detached.data))
	}
}

func TestPadIndicesLeavesEvenCountsAlone(t *testing.T) {
	even := []uint16{0, 1, 2, 0, 2, 3}
	padded := padIndices(even)
	if len(padded) != len(even) {
		t.Fatalf("got %d indices, want %d", len(padded), len(even))
	}
	if &padded[0] != &even[0] {
		t.Error("even input should be returned as is, not copied")
	}
}
