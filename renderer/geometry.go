package renderer

// Index sets for the pentagon. The full set fans three triangles from
// the last vertex; the detached set drops the middle triangle so the
// gap is visible while a lever is held.
var (
	pentagonIndices = []uint16{
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
	}
	detachedIndices = []uint16{
		0, 1, 4,
		2, 3, 4,
	}
)

// meshIndices pairs the padded upload data with the logical index
// count that the draw call uses.
type meshIndices struct {
	data  []uint16
	count uint32
}

func newMeshIndices(raw []uint16) meshIndices {
	return meshIndices{
		data:  padIndices(raw),
		count: uint32(len(raw)),
	}
}

// padIndices appends a trailing zero index when needed so the byte
// length of the upload is a multiple of four, as buffer creation
// requires. The padding index is never drawn.
func padIndices(indices []uint16) []uint16 {
	if len(indices)%2 == 0 {
		return indices
	}
	padded := make([]uint16, len(indices)+1)
	copy(padded, indices)
	return padded
}
