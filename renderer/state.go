package renderer

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/ekarademir/wgu-learning-book/core"
	"github.com/ekarademir/wgu-learning-book/math"
	"github.com/ekarademir/wgu-learning-book/textures"
	"github.com/ekarademir/wgu-learning-book/webgpu"
)

//go:embed shader.wgsl
var shaderSource string

//go:embed tree.png
var treePNG []byte

// ClearColor fills the frame before the pentagon is drawn.
var ClearColor = core.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// State owns every GPU resource the pentagon needs and tracks the
// input state that selects between the two index sets.
type State struct {
	ctx      *webgpu.Context
	pipeline *wgpu.RenderPipeline
	diffuse  *webgpu.Texture

	vertexBuffer *wgpu.Buffer

	indexBuffer      *wgpu.Buffer
	numIndices       uint32
	otherIndexBuffer *wgpu.Buffer
	otherNumIndices  uint32

	levers   Levers
	mousePos math.Vec2

	width  int
	height int
}

// New bootstraps the GPU context and uploads every static resource.
// Any failure here is fatal to the caller; nothing is retried.
func New(window *core.Window, vsync bool) (*State, error) {
	ctx, err := webgpu.NewContext(window, vsync)
	if err != nil {
		return nil, err
	}

	s := &State{ctx: ctx}
	if err := s.createResources(); err != nil {
		s.Release()
		return nil, err
	}

	s.width, s.height = window.FramebufferSize()
	slog.Debug("renderer ready", "width", s.width, "height", s.height)
	return s, nil
}

func (s *State) createResources() error {
	img, err := textures.DecodeRGBA(treePNG)
	if err != nil {
		return fmt.Errorf("can't decode diffuse image: %w", err)
	}
	s.diffuse, err = webgpu.NewTexture(s.ctx.Device, s.ctx.Queue, img, "Diffuse Texture")
	if err != nil {
		return err
	}

	s.pipeline, err = webgpu.NewRenderPipeline(s.ctx.Device, webgpu.PipelineConfig{
		Label:            "Render Pipeline",
		ShaderSource:     shaderSource,
		ColorFormat:      s.ctx.Format,
		VertexLayout:     VertexBufferLayout(),
		BindGroupLayouts: []*wgpu.BindGroupLayout{s.diffuse.BindGroupLayout()},
	})
	if err != nil {
		return err
	}

	s.vertexBuffer, err = webgpu.NewVertexBuffer(s.ctx.Device, "Vertex Buffer", wgpu.ToBytes(pentagonVertices))
	if err != nil {
		return err
	}

	full := newMeshIndices(pentagonIndices)
	s.indexBuffer, err = webgpu.NewIndexBuffer(s.ctx.Device, "Index Buffer", full.data)
	if err != nil {
		return err
	}
	s.numIndices = full.count

	detached := newMeshIndices(detachedIndices)
	s.otherIndexBuffer, err = webgpu.NewIndexBuffer(s.ctx.Device, "Other Index Buffer", detached.data)
	if err != nil {
		return err
	}
	s.otherNumIndices = detached.count

	return nil
}

// Input consumes window events the renderer cares about. It returns
// true when the event was handled and the caller should not act on it.
func (s *State) Input(event core.Event) bool {
	switch ev := event.(type) {
	case core.CursorMoved:
		s.mousePos = math.NewVec2(ev.X, ev.Y)
		return true
	case core.KeyEvent:
		if ev.Key != core.KeySpace {
			return false
		}
		switch ev.Action {
		case core.Press:
			s.levers = s.levers.Set(Lever1)
		case core.Release:
			s.levers = s.levers.Clear(Lever1)
		}
		return true
	}
	return false
}

// Update advances per-frame simulation state. The pentagon is static,
// so there is nothing to do yet.
func (s *State) Update() {}

// Resize reconfigures the surface for the new framebuffer size. Zero
// dimensions are ignored so minimized windows don't invalidate the
// surface.
func (s *State) Resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	s.width = width
	s.height = height
	s.ctx.Resize(width, height)
}

// Size returns the framebuffer size the surface is configured for.
func (s *State) Size() (int, int) {
	return s.width, s.height
}

// MousePos returns the last observed cursor position in window
// coordinates.
func (s *State) MousePos() math.Vec2 {
	return s.mousePos
}

// Levers returns the currently raised levers.
func (s *State) Levers() Levers {
	return s.levers
}

func (s *State) currentIndexBuffer() (*wgpu.Buffer, uint32) {
	if s.levers.Has(Lever1) {
		return s.otherIndexBuffer, s.otherNumIndices
	}
	return s.indexBuffer, s.numIndices
}

// Render draws one frame: clear, then the pentagon with whichever
// index set the levers select. Frame acquisition errors are returned
// to the caller, which decides whether to reconfigure, skip, or exit.
func (s *State) Render() error {
	frame, view, err := s.ctx.AcquireFrame()
	if err != nil {
		return err
	}
	defer webgpu.ReleaseFrame(frame, view)

	encoder, err := s.ctx.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})
	if err != nil {
		return fmt.Errorf("can't create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(clearPass(view, ClearColor))
	pass.SetPipeline(s.pipeline)
	pass.SetBindGroup(0, s.diffuse.BindGroup(), nil)
	pass.SetVertexBuffer(0, s.vertexBuffer, 0, wgpu.WholeSize)
	indexBuffer, numIndices := s.currentIndexBuffer()
	pass.SetIndexBuffer(indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(numIndices, 1, 0, 0, 0)
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("can't finish command encoder: %w", err)
	}
	defer cmd.Release()

	s.ctx.Queue.Submit(cmd)
	s.ctx.Present()
	return nil
}

// clearPass builds a single-attachment render pass that clears the
// frame to the given color before drawing.
func clearPass(view *wgpu.TextureView, clear core.Color) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: clear.R,
					G: clear.G,
					B: clear.B,
					A: clear.A,
				},
			},
		},
	}
}

// Release frees every GPU resource in reverse creation order.
func (s *State) Release() {
	if s.otherIndexBuffer != nil {
		s.otherIndexBuffer.Release()
	}
	if s.indexBuffer != nil {
		s.indexBuffer.Release()
	}
	if s.vertexBuffer != nil {
		s.vertexBuffer.Release()
	}
	if s.pipeline != nil {
		s.pipeline.Release()
	}
	if s.diffuse != nil {
		s.diffuse.Release()
	}
	if s.ctx != nil {
		s.ctx.Release()
	}
}
