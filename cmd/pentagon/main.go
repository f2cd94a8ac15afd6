package main

import (
	"log/slog"
	"os"

	"github.com/ekarademir/wgu-learning-book/core"
	"github.com/ekarademir/wgu-learning-book/renderer"
)

func main() {
	core.InitLogging()

	config := core.DefaultWindowConfig()
	window, err := core.NewWindow(config)
	if err != nil {
		slog.Error("can't create window", "error", err)
		os.Exit(1)
	}
	defer window.Destroy()

	state, err := renderer.New(window, config.VSync)
	if err != nil {
		slog.Error("can't initialize renderer", "error", err)
		os.Exit(1)
	}
	defer state.Release()

	logExit(run(window, state))
}
