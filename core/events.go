package core

// Event is a window event delivered by the event loop. Concrete types
// form a closed set; consumers switch on them.
type Event interface {
	isEvent()
}

// Action describes whether a key went down or up.
type Action int

const (
	Press Action = iota
	Release
)

// CursorMoved reports the cursor position in physical pixels.
type CursorMoved struct {
	X, Y float64
}

// KeyEvent reports a key press or release. Key repeats are not delivered.
type KeyEvent struct {
	Key    Key
	Action Action
}

// Resized reports a new framebuffer size in physical pixels.
type Resized struct {
	Width, Height int
}

// ScaleFactorChanged reports the framebuffer size after a DPI change.
type ScaleFactorChanged struct {
	Width, Height int
}

// CloseRequested is sent when the user asks the window to close.
type CloseRequested struct{}

func (CursorMoved) isEvent()        {}
func (KeyEvent) isEvent()           {}
func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (CloseRequested) isEvent()     {}
