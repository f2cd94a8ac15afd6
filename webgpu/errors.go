package webgpu

import (
	"errors"
	"fmt"
	"strings"
)

// Frame acquisition errors, classified from the driver's report.
// The event loop decides the recovery policy per kind:
//
//   - ErrSurfaceLost: the swapchain must be rebuilt at the current size.
//   - ErrSurfaceOutdated: the surface no longer matches the window; the
//     frame is skipped and the next resize or retry fixes it.
//   - ErrAcquireTimeout: transient; the next frame retries.
//   - ErrOutOfMemory: fatal at runtime; the process should exit cleanly.
var (
	ErrSurfaceLost     = errors.New("surface lost")
	ErrSurfaceOutdated = errors.New("surface outdated")
	ErrAcquireTimeout  = errors.New("frame acquisition timed out")
	ErrOutOfMemory     = errors.New("out of GPU memory")
)

// classifyFrameError maps a raw acquisition error from the binding onto
// the error kinds above, preserving the original message. Errors that
// match no kind are returned unwrapped for the caller to log.
func classifyFrameError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "oom"):
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "outdated") || strings.Contains(msg, "suboptimal"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %v", ErrAcquireTimeout, err)
	default:
		return err
	}
}
