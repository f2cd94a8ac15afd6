package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GPU surface must stay on the main OS thread.
	runtime.LockOSThread()
}

// Window wraps a GLFW window created without a client API, so its surface
// can be handed to WebGPU. Width and Height track the framebuffer size in
// physical pixels.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	events []Event
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     800,
		Height:    600,
		Title:     "Learn WGPU",
		Resizable: true,
		VSync:     true,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window := &Window{
		Handle: handle,
		Title:  config.Title,
	}
	window.Width, window.Height = handle.GetFramebufferSize()
	window.installCallbacks()

	return window, nil
}

// installCallbacks translates GLFW callbacks into queued events, drained
// by PollEvents in arrival order.
func (w *Window) installCallbacks() {
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, CursorMoved{X: x, Y: y})
	})

	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.events = append(w.events, KeyEvent{Key: Key(key), Action: Press})
		case glfw.Release:
			w.events = append(w.events, KeyEvent{Key: Key(key), Action: Release})
		}
	})

	w.Handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width = width
		w.Height = height
		w.events = append(w.events, Resized{Width: width, Height: height})
	})

	w.Handle.SetContentScaleCallback(func(_ *glfw.Window, _, _ float32) {
		// A DPI change arrives with the same physical size semantics as a
		// resize; requery the framebuffer and report the new size.
		width, height := w.Handle.GetFramebufferSize()
		w.Width = width
		w.Height = height
		w.events = append(w.events, ScaleFactorChanged{Width: width, Height: height})
	})

	w.Handle.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, CloseRequested{})
	})
}

// PollEvents processes pending OS events and returns everything queued
// since the last call, in arrival order.
func (w *Window) PollEvents() []Event {
	glfw.PollEvents()
	drained := w.events
	w.events = nil
	return drained
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

// RequestClose asks the event loop to exit after the current iteration.
func (w *Window) RequestClose() {
	w.Handle.SetShouldClose(true)
}

// FramebufferSize returns the current window size in physical pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Key identifies a keyboard key, using GLFW key codes.
type Key int

const (
	KeySpace  = Key(glfw.KeySpace)
	KeyEscape = Key(glfw.KeyEscape)
	KeyEnter  = Key(glfw.KeyEnter)
	KeyTab    = Key(glfw.KeyTab)
	KeyLeft   = Key(glfw.KeyLeft)
	KeyRight  = Key(glfw.KeyRight)
	KeyUp     = Key(glfw.KeyUp)
	KeyDown   = Key(glfw.KeyDown)
)
