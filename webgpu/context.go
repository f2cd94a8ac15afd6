// Package webgpu is the graphics API layer: device negotiation, swapchain
// management, buffers, textures and pipelines on top of WebGPU.
package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"

	"github.com/ekarademir/wgu-learning-book/core"
)

// Context owns the GPU handles negotiated from a window surface: the
// instance, surface, adapter, logical device, queue, and the current
// swapchain configuration. All handles are created once at startup and
// released in reverse creation order.
type Context struct {
	Instance *wgpu.Instance
	Surface  *wgpu.Surface
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue

	// Format is the adapter's preferred surface texture format.
	Format wgpu.TextureFormat

	// Config mirrors the current swapchain state; width and height track
	// the window's physical size and are rewritten on every resize.
	Config wgpu.SurfaceConfiguration

	alphaMode   wgpu.CompositeAlphaMode
	presentMode wgpu.PresentMode
}

// NewContext negotiates a GPU context for the window. The six steps run
// serialized and none are retried; a failure at any step aborts startup.
func NewContext(window *core.Window, vsync bool) (*Context, error) {
	c := &Context{}

	// The instance targets the platform's primary backends.
	c.Instance = wgpu.CreateInstance(nil)

	// Surface lifetime must not exceed the window's; the caller keeps the
	// window alive for as long as the context exists.
	c.Surface = c.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window.Handle))

	adapter, err := c.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: c.Surface,
	})
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("can't initialize adapter with the surface: %w", err)
	}
	c.Adapter = adapter

	caps := c.Surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 {
		c.Release()
		return nil, fmt.Errorf("can't get surface preferred texture format")
	}
	c.Format = caps.Formats[0]
	c.alphaMode = caps.AlphaModes[0]

	c.presentMode = wgpu.PresentModeFifo
	if !vsync {
		c.presentMode = wgpu.PresentModeImmediate
	}

	// No optional features, default limits.
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Render Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	c.Device = device
	c.Queue = device.GetQueue()

	width, height := window.FramebufferSize()
	c.Config = c.configFor(width, height)
	c.Surface.Configure(c.Adapter, c.Device, &c.Config)

	return c, nil
}

// configFor builds the swapchain configuration for a physical size.
// Everything except width and height is fixed for the context's lifetime.
func (c *Context) configFor(width, height int) wgpu.SurfaceConfiguration {
	return wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      c.Format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: c.presentMode,
		AlphaMode:   c.alphaMode,
	}
}

// Resize rebuilds the swapchain at the new physical size. Zero-sized
// windows (minimized) are ignored.
func (c *Context) Resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	c.Config.Width = uint32(width)
	c.Config.Height = uint32(height)
	c.Surface.Configure(c.Adapter, c.Device, &c.Config)
}

// AcquireFrame returns the current swapchain texture and a default view
// of it. Acquisition failures are classified into the frame error kinds.
// The caller releases both via ReleaseFrame on every exit path.
func (c *Context) AcquireFrame() (*wgpu.Texture, *wgpu.TextureView, error) {
	frame, err := c.Surface.GetCurrentTexture()
	if err != nil {
		return nil, nil, classifyFrameError(err)
	}
	view, err := frame.CreateView(nil)
	if err != nil {
		frame.Release()
		return nil, nil, classifyFrameError(err)
	}
	return frame, view, nil
}

// Present shows the most recently submitted frame.
func (c *Context) Present() {
	c.Surface.Present()
}

// ReleaseFrame releases a frame acquired by AcquireFrame.
func ReleaseFrame(frame *wgpu.Texture, view *wgpu.TextureView) {
	if view != nil {
		view.Release()
	}
	if frame != nil {
		frame.Release()
	}
}

// Release frees every handle the context owns, in reverse creation order.
func (c *Context) Release() {
	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
		c.Queue = nil
	}
	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}
	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}
	if c.Instance != nil {
		c.Instance.Release()
		c.Instance = nil
	}
}
