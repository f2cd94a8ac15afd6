package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/ekarademir/wgu-learning-book/core"
	"github.com/ekarademir/wgu-learning-book/webgpu"
)

// application is the part of the renderer state the frame loop drives.
type application interface {
	Input(core.Event) bool
	Update()
	Render() error
	Resize(width, height int)
	Size() (int, int)
}

type exitReason int

const (
	exitNone exitReason = iota
	exitCloseRequested
	exitEscape
	exitOutOfMemory
)

const fpsReportInterval = 10 * time.Second

// handleEvent offers the event to the application first. Unconsumed
// events fall through to window-level handling: close and escape end
// the loop, size changes reconfigure the surface.
func handleEvent(app application, event core.Event) exitReason {
	if app.Input(event) {
		return exitNone
	}
	switch ev := event.(type) {
	case core.CloseRequested:
		return exitCloseRequested
	case core.KeyEvent:
		if ev.Key == core.KeyEscape && ev.Action == core.Press {
			return exitEscape
		}
	case core.Resized:
		app.Resize(ev.Width, ev.Height)
	case core.ScaleFactorChanged:
		app.Resize(ev.Width, ev.Height)
	}
	return exitNone
}

// renderFrame draws once and decides what a frame failure means. A
// lost surface is rebuilt at the current size, out of memory ends the
// program, an outdated or timed out frame is skipped.
func renderFrame(app application) exitReason {
	err := app.Render()
	if err == nil {
		return exitNone
	}
	switch {
	case errors.Is(err, webgpu.ErrSurfaceLost):
		width, height := app.Size()
		app.Resize(width, height)
	case errors.Is(err, webgpu.ErrOutOfMemory):
		return exitOutOfMemory
	case errors.Is(err, webgpu.ErrSurfaceOutdated), errors.Is(err, webgpu.ErrAcquireTimeout):
		slog.Debug("skipping frame", "error", err)
	default:
		slog.Error("render failed", "error", err)
	}
	return exitNone
}

// run is the frame loop: drain events, update, render, repeat until
// something asks to exit.
func run(window *core.Window, app application) exitReason {
	frames := 0
	lastReport := time.Now()

	for !window.ShouldClose() {
		for _, event := range window.PollEvents() {
			if reason := handleEvent(app, event); reason != exitNone {
				return reason
			}
		}

		app.Update()
		if reason := renderFrame(app); reason != exitNone {
			return reason
		}

		frames++
		if elapsed := time.Since(lastReport); elapsed >= fpsReportInterval {
			slog.Debug("frame rate", "fps", float64(frames)/elapsed.Seconds())
			frames = 0
			lastReport = time.Now()
		}
	}
	return exitCloseRequested
}

func logExit(reason exitReason) {
	switch reason {
	case exitCloseRequested:
		slog.Debug("Close request received.")
	case exitEscape:
		slog.Debug("Escape received")
	case exitOutOfMemory:
		slog.Debug("System is OOM")
	}
	slog.Info("Bye")
}
