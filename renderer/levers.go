package renderer

// Levers is a bitfield of input toggles that select alternate render
// state while held.
type Levers uint32

const (
	// Lever1 switches to the detached index set.
	Lever1 Levers = 1 << iota
	// Lever2 is reserved for a future toggle.
	Lever2
)

// Set returns l with the given levers raised.
func (l Levers) Set(flags Levers) Levers { return l | flags }

// Clear returns l with the given levers lowered.
func (l Levers) Clear(flags Levers) Levers { return l &^ flags }

// Has reports whether all the given levers are raised.
func (l Levers) Has(flags Levers) bool { return l&flags == flags }
